package latex

import "github.com/jonathan/resume-builder/internal/types"

// Template aliases the document-level template tag so callers can stay on
// one import.
type Template = types.Template

// Supported template families.
const (
	Modern  = types.TemplateModern
	Classic = types.TemplateClassic
)

// modernSkeleton is the moderncv-based template. Every [TOKEN] is replaced
// by literal substitution; the generator guarantees none survive.
const modernSkeleton = `\documentclass[11pt,a4paper,sans]{moderncv}
\moderncvstyle{classic}
\moderncvcolor{blue}

\usepackage[scale=0.85]{geometry}
\usepackage{multicol}

% Personal data
\name{[FIRST_NAME]}{[LAST_NAME]}
\title{[JOB_ROLE]}
\address{[LOCATION]}{}{}
\phone{[PHONE]}
\email{[EMAIL]}
\social[linkedin]{[LINKEDIN]}
\social[github]{[GITHUB]}

\begin{document}
\makecvtitle

\section{Professional Summary}
\cvitem{}{[PROFESSIONAL_SUMMARY]}

\section{Experience}
[WORK_EXPERIENCE]

\section{Education}
[EDUCATION]

\section{Skills}
\cvitem{Technical}{[TECHNICAL_SKILLS]}
\cvitem{Languages}{[LANGUAGES]}

\section{Projects}
[PROJECTS]

\end{document}
`

// classicSkeleton is the plain article-class template.
const classicSkeleton = `\documentclass[11pt,a4paper]{article}
\usepackage[utf8]{inputenc}
\usepackage[margin=1in]{geometry}
\usepackage{enumitem}
\usepackage{titlesec}
\usepackage{hyperref}

\titleformat{\section}{\large\bfseries}{}{0em}{}[\titlerule]
\titleformat{\subsection}{\bfseries}{}{0em}{}

\begin{document}

\begin{center}
{\Large\bfseries [FIRST_NAME] [LAST_NAME]}\\
[JOB_ROLE]\\
[LOCATION] | [PHONE] | [EMAIL]\\
LinkedIn: [LINKEDIN] | GitHub: [GITHUB]
\end{center}

\section{Professional Summary}
[PROFESSIONAL_SUMMARY]

\section{Experience}
[WORK_EXPERIENCE]

\section{Education}
[EDUCATION]

\section{Skills}
\textbf{Technical Skills:} [TECHNICAL_SKILLS]\\
\textbf{Languages:} [LANGUAGES]

\section{Projects}
[PROJECTS]

\end{document}
`

// Defaults substituted for empty resume fields so the output is always
// syntactically complete LaTeX, even for a freshly created resume.
const (
	defaultFirstName = "John"
	defaultLastName  = "Doe"
	defaultJobRole   = "Professional"
	defaultLocation  = "City, Country"
	defaultPhone     = "+1 (555) 123-4567"
	defaultEmail     = "john.doe@email.com"
	defaultLinkedIn  = "linkedin.com/in/johndoe"
	defaultGitHub    = "github.com/johndoe"
	defaultSummary   = "Experienced professional with a strong background in technology and innovation."
	defaultTechnical = "Programming, Software Development"
	defaultLanguages = "English"
)
