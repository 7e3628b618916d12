package utils

import (
	"errors"
	"regexp"
	"unicode/utf8"
)

const maxSelectionLength = 100

var (
	// country and region names: letters of any script, spaces and the
	// punctuation found in UN names ("Côte d'Ivoire", "Korea, Rep.")
	validSelectionPattern = regexp.MustCompile(`^[\p{L}\p{M}0-9 ,.'()&-]+$`)

	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// ValidateSelection checks a dropdown value before it is looked up. An
// empty value is allowed and means the default selection.
func ValidateSelection(value string) error {
	if value == "" {
		return nil
	}
	if !utf8.ValidString(value) {
		return errors.New("selection is not valid UTF-8")
	}
	if utf8.RuneCountInString(value) > maxSelectionLength {
		return errors.New("selection too long (max 100 characters)")
	}
	if htmlTagPattern.MatchString(value) || !validSelectionPattern.MatchString(value) {
		return errors.New("selection contains invalid characters")
	}
	return nil
}
