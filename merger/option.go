package merger

import (
	"log/slog"
	"time"
)

// DefaultSymbolsPage is the page receiving symbol masters with no counterpart in the output
const DefaultSymbolsPage = "Symbols"

type Option func(*Merger)

// WithReuseStyleID makes merged collection entries keep the source identifier
func WithReuseStyleID(reuse bool) Option {
	return func(m *Merger) {
		m.reuseStyleID = reuse
	}
}

// WithSymbolsPage sets the name of the page holding injected symbol masters
func WithSymbolsPage(name string) Option {
	return func(m *Merger) {
		if name != "" {
			m.symbolsPage = name
		}
	}
}

// WithReplaceFirst replaces only the first occurrence of every placeholder
func WithReplaceFirst(first bool) Option {
	return func(m *Merger) {
		m.replaceFirst = first
	}
}

// WithData sets the placeholder values used by text substitution
func WithData(data map[string]string) Option {
	return func(m *Merger) {
		m.data = data
	}
}

// WithResolver replaces the name based layer correspondence
func WithResolver(resolver Resolver) Option {
	return func(m *Merger) {
		if resolver != nil {
			m.resolver = resolver
		}
	}
}

// WithLogger sets the structured logger reporting merge progress
func WithLogger(logger *slog.Logger) Option {
	return func(m *Merger) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithClock sets the time source for the {{date}} and {{time}} placeholders
func WithClock(now func() time.Time) Option {
	return func(m *Merger) {
		if now != nil {
			m.now = now
		}
	}
}

// WithIDGenerator sets the identifier generator used for created pages
func WithIDGenerator(newID func() string) Option {
	return func(m *Merger) {
		if newID != nil {
			m.newID = newID
		}
	}
}
