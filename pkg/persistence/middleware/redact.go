package middleware

import (
	"context"
	"regexp"

	"github.com/aretw0/najia/pkg/domain"
	"github.com/aretw0/najia/pkg/ports"
)

const mask = "***"

type redactMiddleware struct {
	next     ports.ReadingStore
	patterns []*regexp.Regexp
}

// NewRedactMiddleware masks parts of the query before a reading is saved.
// With no patterns the whole query is masked. Redaction is one-way; the
// evaluation already recorded on the reading is kept as cast.
func NewRedactMiddleware(patternStrings []string) (Middleware, error) {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, err
		}
		patterns[i] = re
	}
	return func(next ports.ReadingStore) ports.ReadingStore {
		return &redactMiddleware{next: next, patterns: patterns}
	}, nil
}

func (m *redactMiddleware) redact(query string) string {
	if query == "" {
		return ""
	}
	if len(m.patterns) == 0 {
		return mask
	}
	for _, p := range m.patterns {
		query = p.ReplaceAllString(query, mask)
	}
	return query
}

func (m *redactMiddleware) Save(ctx context.Context, reading *domain.Reading) error {
	// Copy to avoid side effects on the reading returned to the caller.
	cloned := *reading
	cloned.Case.Query = m.redact(reading.Case.Query)
	return m.next.Save(ctx, &cloned)
}

func (m *redactMiddleware) Load(ctx context.Context, id string) (*domain.Reading, error) {
	return m.next.Load(ctx, id)
}

func (m *redactMiddleware) Delete(ctx context.Context, id string) error {
	return m.next.Delete(ctx, id)
}

func (m *redactMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}
