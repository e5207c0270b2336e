package validation

import (
	"fmt"
	"strings"

	"github.com/dailyforge/journal_backend/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// denylist holds the prohibited substrings. Matching is case-insensitive and
// substring-based, so "HackAThon" is rejected too.
var denylist = []string{"badword", "hack", "xxx"}

// CleanField validates a single reflection field and returns it trimmed.
// It fails when the text contains a denylisted substring or is empty after
// trimming. Pure function, no I/O.
func CleanField(fieldName, raw string) (string, error) {
	lowered := strings.ToLower(raw)
	for _, banned := range denylist {
		if strings.Contains(lowered, banned) {
			return "", fmt.Errorf("%w: field %q contains prohibited content", apperrors.ErrValidation, fieldName)
		}
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%w: field %q must not be empty", apperrors.ErrValidation, fieldName)
	}
	return trimmed, nil
}

// ContainsDenylisted reports whether the text carries prohibited content.
func ContainsDenylisted(raw string) bool {
	lowered := strings.ToLower(raw)
	for _, banned := range denylist {
		if strings.Contains(lowered, banned) {
			return true
		}
	}
	return false
}

// RegisterContentRules registers the custom binding rules on the given
// validator engine. Call once at startup against gin's binding validator so
// DTO tags like `binding:"nodenylist"` work.
func RegisterContentRules(v *validator.Validate) error {
	return v.RegisterValidation("nodenylist", func(fl validator.FieldLevel) bool {
		return !ContainsDenylisted(fl.Field().String())
	})
}
