// Package generator defines the section generator port: the template provider
// that turns an idea text into page sections.
package generator

import (
	"context"

	"github.com/HassanElshazlyEida/Stunning/internal/domain/prompt"
)

// Provider produces the ordered section list for an idea text.
// Implementations are deterministic in content; any simulated generation
// delay must respect ctx cancellation. The returned slice is always
// complete; callers never receive partial results.
type Provider interface {
	Synthesize(ctx context.Context, text string) ([]prompt.Section, error)
}
