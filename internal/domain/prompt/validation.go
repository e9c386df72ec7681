package prompt

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/HassanElshazlyEida/Stunning/internal/domain"
)

// MaxTextLength caps the idea text. Section templates embed the text verbatim,
// so an unbounded value would bloat every generated section.
const MaxTextLength = 2000

// ValidateText checks an idea text shared by create and update requests.
// Violations are reported before any store or generator call is made.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text is required: %w", domain.ErrValidation)
	}
	if len(text) > MaxTextLength {
		return fmt.Errorf("text exceeds %d characters: %w", MaxTextLength, domain.ErrValidation)
	}
	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return fmt.Errorf("text contains control characters: %w", domain.ErrValidation)
		}
	}
	return nil
}

// ValidateCreateRequest validates the fields of a prompt creation request.
func ValidateCreateRequest(req CreateRequest) error {
	if err := ValidateText(req.Text); err != nil {
		return err
	}
	if len(req.SessionID) > 128 {
		return fmt.Errorf("sessionId exceeds 128 characters: %w", domain.ErrValidation)
	}
	return nil
}

// ValidateUpdateRequest validates the fields of a prompt update request.
func ValidateUpdateRequest(req UpdateRequest) error {
	return ValidateText(req.Text)
}
