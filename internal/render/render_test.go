package render

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/khaled-yousef-TV/ai-test-generator/internal/apperrors"
)

func sampleCases() []TestCase {
	return []TestCase{
		{
			Name:  "Successful login",
			Given: []string{"User is on login page", "User has valid credentials"},
			When:  []string{"User enters email", "User enters password", "User clicks login"},
			Then:  []string{"User is redirected to dashboard"},
		},
		{
			Name:  "Invalid password",
			Given: []string{"User is on login page"},
			When:  []string{"User enters a wrong password"},
			Then:  []string{"An error message is shown"},
		},
	}
}

func TestRenderGherkin(t *testing.T) {
	out, err := Render(sampleCases(), FormatGherkin, "Login")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	wantLines := []string{
		"Feature: Login",
		"Scenario: Successful login",
		"Given User is on login page",
		"When User clicks login",
		"Then User is redirected to dashboard",
	}
	pos := 0
	for _, line := range wantLines {
		idx := strings.Index(out[pos:], line)
		if idx < 0 {
			t.Fatalf("output missing %q after position %d:\n%s", line, pos, out)
		}
		pos += idx + len(line)
	}
}

func TestRenderGherkinSingleRecordLineOrder(t *testing.T) {
	cases := []TestCase{{
		Name:  "Successful login",
		Given: []string{"User is on login page"},
		When:  []string{"User clicks login"},
		Then:  []string{"User sees dashboard"},
	}}

	out, err := Render(cases, FormatGherkin, "Login")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var got []string
	for _, line := range strings.Split(out, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			got = append(got, trimmed)
		}
	}
	want := []string{
		"Feature: Login",
		"Scenario: Successful login",
		"Given User is on login page",
		"When User clicks login",
		"Then User sees dashboard",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %v, want %v", got, want)
	}
}

func TestRenderPytest(t *testing.T) {
	out, err := Render(sampleCases(), FormatPytest, "Login")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, want := range []string{
		"Test cases for Login",
		"import pytest",
		"def test_successful_login():",
		"def test_invalid_password():",
		"# Arrange",
		"# Act",
		"# Assert",
		"# User is on login page",
		"assert True",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTestNG(t *testing.T) {
	out, err := Render(sampleCases(), FormatTestNG, "Login")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, want := range []string{
		"import org.testng.Assert;",
		"import org.testng.annotations.Test;",
		"public class LoginTest {",
		"@Test",
		"public void testSuccessfulLogin() {",
		"public void testInvalidPassword() {",
		"Assert.assertTrue(true);",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderPlain(t *testing.T) {
	out, err := Render(sampleCases(), FormatPlain, "Login")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, want := range []string{
		"Test Cases for: Login",
		"Test Case #1: Successful login",
		"Test Case #2: Invalid password",
		"Preconditions:",
		"• User is on login page",
		"Steps:",
		"1. User enters email",
		"Expected Results:",
		"✓ User is redirected to dashboard",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderJSONRoundTrip(t *testing.T) {
	cases := sampleCases()

	out, err := Render(cases, FormatJSON, "Login")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var parsed Suite
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed.Feature != "Login" {
		t.Errorf("feature = %q, want Login", parsed.Feature)
	}
	if !reflect.DeepEqual(parsed.TestCases, cases) {
		t.Errorf("test_cases round trip mismatch:\ngot  %+v\nwant %+v", parsed.TestCases, cases)
	}
}

func TestRenderJSONPreservesExtraFields(t *testing.T) {
	doc := `{"name":"Edge","given":["g"],"when":["w"],"then":["t"],"priority":"high","tags":["auth",1]}`

	var tc TestCase
	if err := json.Unmarshal([]byte(doc), &tc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if tc.Name != "Edge" {
		t.Errorf("Name = %q", tc.Name)
	}
	if string(tc.Extra["priority"]) != `"high"` {
		t.Errorf("priority extra field = %s", tc.Extra["priority"])
	}

	out, err := Render([]TestCase{tc}, FormatJSON, "X")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, `"priority": "high"`) {
		t.Errorf("extra field lost in output:\n%s", out)
	}

	// Raw bytes are reindented by MarshalIndent, so compare decoded values.
	var parsed struct {
		TestCases []map[string]any `json:"test_cases"`
	}
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("reparse: %v", err)
	}
	var original map[string]any
	if err := json.Unmarshal([]byte(doc), &original); err != nil {
		t.Fatalf("parse input doc: %v", err)
	}
	if !reflect.DeepEqual(parsed.TestCases[0], original) {
		t.Errorf("record changed across round trip:\ngot  %+v\nwant %+v", parsed.TestCases[0], original)
	}
}

func TestRenderEmptyRecords(t *testing.T) {
	for _, format := range Formats() {
		t.Run(format, func(t *testing.T) {
			out, err := Render(nil, Format(format), "X")
			if err != nil {
				t.Fatalf("Render with no records: %v", err)
			}
			if out == "" {
				t.Error("expected boilerplate output for empty record list")
			}
		})
	}
}

func TestRenderEmptyRecordsJSONEnvelope(t *testing.T) {
	out, err := Render(nil, FormatJSON, "X")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var parsed struct {
		Feature   string            `json:"feature"`
		TestCases []json.RawMessage `json:"test_cases"`
	}
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.TestCases == nil {
		t.Error("test_cases should be an empty array, not null")
	}
}

func TestRenderUnsupportedFormat(t *testing.T) {
	_, err := Render(sampleCases(), Format("not-a-format"), "X")
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}

	var ufe *UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("error type = %T, want *UnsupportedFormatError", err)
	}
	if ufe.Format != "not-a-format" {
		t.Errorf("Format = %q", ufe.Format)
	}
	if !reflect.DeepEqual(ufe.Supported, Formats()) {
		t.Errorf("Supported = %v, want %v", ufe.Supported, Formats())
	}
	if !apperrors.IsInvalidInput(err) {
		t.Error("UnsupportedFormatError should unwrap to ErrInvalidInput")
	}
}

func TestRenderCaseSensitiveTokens(t *testing.T) {
	_, err := Render(sampleCases(), Format("Gherkin"), "X")
	if err == nil {
		t.Error("format tokens are case-sensitive; Gherkin should be rejected")
	}
}

func TestRenderDeterministic(t *testing.T) {
	cases := sampleCases()
	cases[0].Extra = map[string]json.RawMessage{
		"b": json.RawMessage(`2`),
		"a": json.RawMessage(`1`),
		"c": json.RawMessage(`3`),
	}

	for _, format := range Formats() {
		t.Run(format, func(t *testing.T) {
			first, err := Render(cases, Format(format), "Login")
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			for i := 0; i < 10; i++ {
				again, err := Render(cases, Format(format), "Login")
				if err != nil {
					t.Fatalf("Render: %v", err)
				}
				if again != first {
					t.Fatal("output differs between identical calls")
				}
			}
		})
	}
}

func TestRenderDoesNotMutateRecords(t *testing.T) {
	cases := sampleCases()
	snapshot := sampleCases()

	for _, format := range Formats() {
		if _, err := Render(cases, Format(format), "Login"); err != nil {
			t.Fatalf("Render(%s): %v", format, err)
		}
	}

	if !reflect.DeepEqual(cases, snapshot) {
		t.Error("Render mutated its input records")
	}
}

func TestRenderUnnamedRecords(t *testing.T) {
	cases := []TestCase{{Given: []string{"g"}, When: []string{"w"}, Then: []string{"t"}}}

	out, err := Render(cases, FormatGherkin, "X")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "Scenario: Unnamed Scenario") {
		t.Errorf("missing fallback scenario name:\n%s", out)
	}
}

func TestFormatExtension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatGherkin, ".feature"},
		{FormatPytest, ".py"},
		{FormatTestNG, ".java"},
		{FormatPlain, ".txt"},
		{FormatJSON, ".json"},
		{Format("bogus"), ".txt"},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Extension(%s) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormatIsValid(t *testing.T) {
	for _, token := range Formats() {
		if !Format(token).IsValid() {
			t.Errorf("%s should be valid", token)
		}
	}
	if Format("xml").IsValid() {
		t.Error("xml should not be valid")
	}
}
