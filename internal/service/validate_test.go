package service

import (
	"strings"
	"testing"

	"github.com/ideahub/ideahub/internal/db"
)

func TestValidateChoice(t *testing.T) {
	choices := []string{"draft", "published"}

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid choice", value: "draft", wantErr: false},
		{name: "invalid choice", value: "pending", wantErr: true},
		{name: "empty value", value: "", wantErr: true},
		{name: "case sensitive", value: "Draft", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateChoice("status", tt.value, choices)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateChoice(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && !db.IsValidation(err) {
				t.Errorf("validateChoice(%q) error type = %T, want ValidationError", tt.value, err)
			}
		})
	}
}

func TestValidateMaxLen(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		max     int
		wantErr bool
	}{
		{name: "under limit", value: "short", max: 10, wantErr: false},
		{name: "at limit", value: "exactly10!", max: 10, wantErr: false},
		{name: "over limit", value: "eleven chars", max: 10, wantErr: true},
		{name: "empty", value: "", max: 10, wantErr: false},
		{name: "multibyte at limit", value: strings.Repeat("é", 10), max: 10, wantErr: false},
		{name: "multibyte over limit", value: strings.Repeat("é", 11), max: 10, wantErr: true},
		{name: "accented bio within bound", value: strings.Repeat("é", 300), max: 500, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateMaxLen("field", tt.value, tt.max)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateMaxLen(%q, %d) error = %v, wantErr %v", tt.value, tt.max, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRequired(t *testing.T) {
	if err := validateRequired("email", "someone@example.com"); err != nil {
		t.Errorf("validateRequired() with value error = %v, want nil", err)
	}

	err := validateRequired("email", "")
	if !db.IsValidation(err) {
		t.Errorf("validateRequired() empty error = %v, want ValidationError", err)
	}
}
