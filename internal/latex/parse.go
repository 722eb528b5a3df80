package latex

import "github.com/jonathan/resume-builder/internal/types"

// Parse extracts structured resume data from LaTeX source. It is the
// best-effort inverse of Generate: the grammar is the closed set of the two
// template families, and any field that cannot be confidently extracted is
// left absent rather than guessed. Parse never fails; malformed input
// simply yields a sparser document.
//
// Callers should merge the result onto an existing document: an absent
// field means "nothing found", not "clear this".
func Parse(source string) *types.ResumeDocument {
	doc := &types.ResumeDocument{}
	if source == "" {
		return doc
	}

	switch DetectDialect(source) {
	case DialectModern:
		doc.SelectedTemplate = Modern
		parseModern(source, doc)
	default:
		doc.SelectedTemplate = Classic
		parseClassic(source, doc)
	}
	return doc
}
