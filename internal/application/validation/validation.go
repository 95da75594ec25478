// Package validation implements the required-field presence checks run
// before any store call. Ordinary fields are checked by non-emptiness; bool
// flags are carried as *bool so an explicit false passes while an absent
// flag fails. No type coercion, range or cross-field checks happen here.
package validation

import (
	"fmt"
	"sort"
	"strings"

	apperrors "github.com/sorrisolabs/odonto-backend/pkg/errors"
)

// Required checks each named field for presence. Supported kinds: string
// (empty fails), int64 and float64 (zero fails), *bool (nil fails). Any other
// value fails when nil. The error lists every missing field, sorted, so the
// message is deterministic.
func Required(fields map[string]any) error {
	var missing []string
	for name, value := range fields {
		if !present(value) {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	sort.Strings(missing)
	return apperrors.NewValidationError(fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")))
}

// RequiredID checks a path identifier
func RequiredID(id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("missing required field: id")
	}
	return nil
}

// RequiredText checks a search term
func RequiredText(text string) error {
	if text == "" {
		return apperrors.NewValidationError("missing required field: texto")
	}
	return nil
}

func present(value any) bool {
	switch v := value.(type) {
	case string:
		return v != ""
	case int64:
		return v != 0
	case float64:
		return v != 0
	case *bool:
		return v != nil
	default:
		return v != nil
	}
}
