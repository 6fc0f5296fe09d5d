package service

import (
	"fmt"
	"unicode/utf8"

	"github.com/ideahub/ideahub/internal/db"
)

func inChoices(value string, choices []string) bool {
	for _, c := range choices {
		if value == c {
			return true
		}
	}
	return false
}

func validateChoice(field, value string, choices []string) error {
	if !inChoices(value, choices) {
		return &db.ValidationError{Field: field, Reason: fmt.Sprintf("%q is not a valid choice", value)}
	}
	return nil
}

// validateMaxLen bounds the length in characters, not bytes; the column
// limits are varchar(n) character counts.
func validateMaxLen(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return &db.ValidationError{Field: field, Reason: fmt.Sprintf("exceeds %d characters", max)}
	}
	return nil
}

func validateRequired(field, value string) error {
	if value == "" {
		return &db.ValidationError{Field: field, Reason: "is required"}
	}
	return nil
}
