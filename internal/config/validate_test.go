package config

import (
	"strings"
	"testing"
)

func TestValidationErrorsError(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var errs ValidationErrors
		if errs.Error() != "" {
			t.Errorf("Error() = %q", errs.Error())
		}
	})

	t.Run("single", func(t *testing.T) {
		errs := ValidationErrors{{Field: "format", Message: "is required"}}
		if errs.Error() != "format: is required" {
			t.Errorf("Error() = %q", errs.Error())
		}
	})

	t.Run("multiple", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "format", Message: "is required"},
			{Field: "model", Message: "is required"},
		}
		got := errs.Error()
		if !strings.Contains(got, "validation errors:") {
			t.Errorf("Error() = %q", got)
		}
		if !strings.Contains(got, "format: is required") || !strings.Contains(got, "model: is required") {
			t.Errorf("Error() = %q, want both errors listed", got)
		}
	})
}

func TestValidator(t *testing.T) {
	v := NewValidator()
	if v.HasErrors() {
		t.Error("new validator should have no errors")
	}
	if v.Error() != nil {
		t.Error("Error() should be nil with no errors")
	}

	v.AddError("field", "bad")
	if !v.HasErrors() {
		t.Error("HasErrors should be true after AddError")
	}
	if len(v.Errors()) != 1 {
		t.Errorf("Errors() = %v", v.Errors())
	}
	if v.Error() == nil {
		t.Error("Error() should be non-nil")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default is valid", *DefaultConfig(), false},
		{"empty name", Config{App: AppConfig{Name: ""}}, true},
		{"whitespace in name", Config{App: AppConfig{Name: "bad name"}}, true},
		{"too long name", Config{App: AppConfig{Name: strings.Repeat("x", 51)}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
