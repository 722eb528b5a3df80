package latex

import (
	"log"
	"regexp"
	"strings"
)

// Dialect identifies which template grammar a LaTeX source belongs to.
type Dialect string

// Recognized dialects. Unknown builds on the classic extraction routine as
// a best-effort fallback.
const (
	DialectModern  Dialect = "modern"
	DialectClassic Dialect = "classic"
)

// DetectDialect inspects a LaTeX source for the marker macros of the modern
// (moderncv) template family. Anything else is handled by the classic
// routine.
func DetectDialect(source string) Dialect {
	if strings.Contains(source, `\documentclass`) && strings.Contains(source, "moderncv") {
		return DialectModern
	}
	return DialectClassic
}

// runStep executes one extraction step, logging instead of failing if the
// step panics. Every step is independent: a failure in one section must not
// abort extraction of the others.
func runStep(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("latex: %s extraction failed: %v", name, r)
		}
	}()
	fn()
}

// sectionBody returns the content between \section{heading} and the next
// \section or \end{document}. An empty string means the section is absent.
func sectionBody(source, heading string) string {
	re := regexp.MustCompile(`(?s)\\section\{` + regexp.QuoteMeta(heading) + `\}(.*?)(?:\\section\{|\\end\{document\})`)
	m := re.FindStringSubmatch(source)
	if m == nil {
		return ""
	}
	return m[1]
}

// splitEntries splits a section body on the repeating entry macro and
// returns one chunk per entry, each starting just after the macro name.
// Content before the first occurrence is discarded.
func splitEntries(body, macro string) []string {
	parts := strings.Split(body, macro)
	if len(parts) <= 1 {
		return nil
	}
	return parts[1:]
}

// scanBraceArgs reads up to n balanced {...} argument groups from the start
// of s, skipping whitespace between them. Escaped braces (\{ and \}) inside
// an argument do not affect nesting. It reports the extracted arguments and
// whether all n were found.
func scanBraceArgs(s string, n int) ([]string, bool) {
	args := make([]string, 0, n)
	i := 0
	for len(args) < n {
		for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
			i++
		}
		if i >= len(s) || s[i] != '{' {
			return args, false
		}
		i++
		start := i
		depth := 1
		for i < len(s) && depth > 0 {
			switch s[i] {
			case '\\':
				i++ // the escaped character is argument content
			case '{':
				depth++
			case '}':
				depth--
			}
			i++
		}
		if depth != 0 {
			return args, false
		}
		args = append(args, s[start:i-1])
	}
	return args, true
}

// macroArgs locates the first occurrence of macro in s and scans n brace
// arguments following it.
func macroArgs(s, macro string, n int) ([]string, bool) {
	idx := strings.Index(s, macro)
	if idx < 0 {
		return nil, false
	}
	return scanBraceArgs(s[idx+len(macro):], n)
}

// splitDates parses a "start -- end" range. A literal Present (any case)
// end marks the entry current/ongoing and clears the end date.
func splitDates(s string) (start, end string, current bool) {
	s = strings.TrimSpace(Unescape(s))
	if s == "" {
		return "", "", false
	}
	if !strings.Contains(s, "--") {
		return s, "", false
	}
	parts := strings.SplitN(s, "--", 2)
	start = strings.TrimSpace(parts[0])
	end = strings.TrimSpace(parts[1])
	if strings.EqualFold(end, "present") {
		return start, "", true
	}
	return start, end, false
}

// reconstructDescription turns the grammar's entry body back into the data
// model's description convention: \item lines become "• " bullets, other
// non-empty lines plain paragraph lines.
func reconstructDescription(body string) string {
	lines := strings.Split(body, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(line, `\item`); ok {
			out = append(out, "• "+strings.TrimSpace(Unescape(rest)))
			continue
		}
		out = append(out, Unescape(line))
	}
	return strings.Join(out, "\n")
}

// splitCommaList splits a comma-joined macro payload into trimmed,
// unescaped items, dropping empties.
func splitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(Unescape(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// technologiesPrefix anchors the projects grammar's technology tag line.
const technologiesPrefix = "Technologies:"

// splitTechnologies separates the Technologies line from the rest of a
// project entry body. The remaining lines are the project description.
func splitTechnologies(body string) (rest string, technologies []string) {
	lines := strings.Split(body, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if payload, ok := strings.CutPrefix(trimmed, technologiesPrefix); ok {
			payload = strings.TrimSpace(payload)
			if payload != "N/A" {
				technologies = splitCommaList(payload)
			}
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n"), technologies
}

// defaultPlaceholders is the set of values the generator substitutes for
// empty fields. The parser treats them as absent rather than fabricating
// data the user never entered.
var defaultPlaceholders = map[string]struct{}{
	defaultFirstName: {},
	defaultLastName:  {},
	defaultJobRole:   {},
	defaultLocation:  {},
	defaultPhone:     {},
	defaultEmail:     {},
	defaultLinkedIn:  {},
	defaultGitHub:    {},
	defaultSummary:   {},
	defaultTechnical: {},
	defaultLanguages: {},
}

// cleanField trims and unescapes an extracted value, discarding template
// default placeholders.
func cleanField(s string) string {
	s = strings.TrimSpace(Unescape(s))
	if _, ok := defaultPlaceholders[s]; ok {
		return ""
	}
	return s
}

// cleanSkillList drops a list that is exactly a template default payload.
func cleanSkillList(payload string) []string {
	if _, ok := defaultPlaceholders[strings.TrimSpace(payload)]; ok {
		return nil
	}
	return splitCommaList(payload)
}
