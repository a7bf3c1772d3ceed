package events

import (
	"context"
	"strings"

	"github.com/ryanuber/go-glob"
)

// Filter forwards events whose type matches at least one glob pattern.
// Without patterns, everything is forwarded.
type Filter struct {
	Next     Publisher
	Patterns []string
}

// ParsePatterns splits a comma separated list of glob patterns.
func ParsePatterns(s string) []string {
	var patterns []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}

	return patterns
}

func (f Filter) Publish(ctx context.Context, events ...Event) error {
	if len(f.Patterns) == 0 {
		return f.Next.Publish(ctx, events...)
	}

	var matching []Event
	for _, e := range events {
		if f.matches(e.Type) {
			matching = append(matching, e)
		}
	}

	if len(matching) == 0 {
		return nil
	}

	return f.Next.Publish(ctx, matching...)
}

func (f Filter) matches(eventType string) bool {
	for _, p := range f.Patterns {
		if glob.Glob(p, eventType) {
			return true
		}
	}
	return false
}
