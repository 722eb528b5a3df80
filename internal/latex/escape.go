// Package latex implements the two fixed resume template grammars: a
// generator that renders structured resume data to LaTeX source and a
// best-effort parser that inverts it.
package latex

import "strings"

// Escape escapes special LaTeX characters in text
// Special characters: \ { } $ & % # ^ _ ~
func Escape(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2) // Pre-allocate space for potential escaping

	for _, r := range text {
		switch r {
		case '\\':
			result.WriteString(`\textbackslash{}`)
		case '{':
			result.WriteString(`\{`)
		case '}':
			result.WriteString(`\}`)
		case '$':
			result.WriteString(`\$`)
		case '&':
			result.WriteString(`\&`)
		case '%':
			result.WriteString(`\%`)
		case '#':
			result.WriteString(`\#`)
		case '^':
			result.WriteString(`\textasciicircum{}`)
		case '_':
			result.WriteString(`\_`)
		case '~':
			result.WriteString(`\textasciitilde{}`)
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

// unescaper inverts Escape. Multi-character sequences come first so the
// replacer prefers them over the bare backslash forms.
var unescaper = strings.NewReplacer(
	`\textbackslash{}`, `\`,
	`\textasciicircum{}`, `^`,
	`\textasciitilde{}`, `~`,
	`\{`, `{`,
	`\}`, `}`,
	`\$`, `$`,
	`\&`, `&`,
	`\%`, `%`,
	`\#`, `#`,
	`\_`, `_`,
)

// Unescape reverses Escape so extracted field values compare equal to the
// text they were generated from.
func Unescape(text string) string {
	if text == "" {
		return ""
	}
	return unescaper.Replace(text)
}
