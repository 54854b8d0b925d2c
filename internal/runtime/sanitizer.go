package runtime

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/najia/pkg/domain"
)

// MaxQuerySize bounds the question text in bytes.
const MaxQuerySize = 4096

// SanitizeQuery rejects oversized or malformed question text and strips
// control characters other than newline, tab and carriage return. Queries
// end up in logs, terminals and the journal.
func SanitizeQuery(method domain.Method, query string) (string, error) {
	if len(query) > MaxQuerySize {
		// Rejected rather than truncated: a cut query could select a different target.
		return "", domain.InvalidInput(method, "query is %d bytes, limit is %d", len(query), MaxQuerySize)
	}
	if !utf8.ValidString(query) {
		return "", domain.InvalidInput(method, "query is not valid UTF-8")
	}

	if strings.IndexFunc(query, unsafeControl) < 0 {
		return query, nil
	}

	var b strings.Builder
	b.Grow(len(query))
	for _, r := range query {
		if !unsafeControl(r) {
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

func unsafeControl(r rune) bool {
	return unicode.IsControl(r) && r != '\n' && r != '\t' && r != '\r'
}
