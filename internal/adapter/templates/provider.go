// Package templates implements the section generator port with static
// template sets. Section content is deterministic for a given text; only the
// cosmetic per-section delay varies, simulating incremental generation while
// the full list is still delivered as one unit.
package templates

import (
	"context"
	"fmt"
	"html"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/HassanElshazlyEida/Stunning/internal/domain/prompt"
)

// Static synthesizes sections from a fixed template set.
type Static struct {
	set          []sectionTemplate
	sectionDelay time.Duration
}

// NewStatic creates a Static provider for the named template set.
func NewStatic(setName string, sectionDelay time.Duration) (*Static, error) {
	set, ok := sets[setName]
	if !ok {
		return nil, fmt.Errorf("unknown template set %q (available: %s)", setName, strings.Join(SetNames(), ", "))
	}
	return &Static{set: set, sectionDelay: sectionDelay}, nil
}

// SetNames returns the available template set names.
func SetNames() []string {
	names := make([]string, 0, len(sets))
	for name := range sets {
		names = append(names, name)
	}
	return names
}

// Synthesize renders every template in the set with text substituted for the
// topic placeholder. The delay between sections respects ctx cancellation;
// no partial list is ever returned.
func (s *Static) Synthesize(ctx context.Context, text string) ([]prompt.Section, error) {
	topic := html.EscapeString(text)

	sections := make([]prompt.Section, 0, len(s.set))
	for _, tmpl := range s.set {
		if err := s.pause(ctx); err != nil {
			return nil, err
		}
		sections = append(sections, prompt.Section{
			Title:   tmpl.title,
			Content: strings.ReplaceAll(tmpl.content, topicPlaceholder, topic),
		})
	}
	return sections, nil
}

// pause sleeps for the configured per-section delay with ±25% jitter.
func (s *Static) pause(ctx context.Context) error {
	if s.sectionDelay <= 0 {
		return nil
	}
	jitter := 0.75 + rand.Float64()*0.5
	d := time.Duration(float64(s.sectionDelay) * jitter)

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
