package edgecase

import "regexp"

// DefaultRules returns the built-in keyword rule table.
// Adding a rule is a single entry: label, pattern, hints.
func DefaultRules() []Rule {
	return []Rule{
		{
			Label:   "Input",
			Pattern: regexp.MustCompile(`input|enter|type|field|form`),
			Hints: []string{
				"Empty input",
				"Whitespace-only input",
				"Maximum length input",
				"Special characters",
				"Unicode/emoji characters",
				"SQL injection attempt",
				"XSS script injection",
			},
		},
		{
			Label:   "Number",
			Pattern: regexp.MustCompile(`number|amount|count|quantity|price|age`),
			Hints: []string{
				"Zero value",
				"Negative numbers",
				"Decimal numbers",
				"Very large numbers",
				"Non-numeric input",
				"Leading zeros",
			},
		},
		{
			Label:   "Date",
			Pattern: regexp.MustCompile(`date|time|schedule|deadline|expire`),
			Hints: []string{
				"Past dates",
				"Future dates far ahead",
				"Leap year dates (Feb 29)",
				"End of month (31st)",
				"Timezone edge cases",
				"Daylight saving transitions",
				"Invalid date format",
			},
		},
		{
			Label:   "Email",
			Pattern: regexp.MustCompile(`email|e-mail`),
			Hints: []string{
				"Invalid email format",
				"Email without @ symbol",
				"Email with multiple @ symbols",
				"Very long email address",
				"Email with special characters",
				"Uppercase email",
			},
		},
		{
			Label:   "Password",
			Pattern: regexp.MustCompile(`password|pin|secret`),
			Hints: []string{
				"Minimum length boundary",
				"Maximum length boundary",
				"No uppercase letters",
				"No lowercase letters",
				"No numbers",
				"No special characters",
				"Common/weak passwords",
				"Password with spaces",
			},
		},
		{
			Label:   "File",
			Pattern: regexp.MustCompile(`file|upload|download|attachment`),
			Hints: []string{
				"Empty file",
				"Very large file",
				"Unsupported file type",
				"Corrupted file",
				"File with special characters in name",
				"File with very long name",
				"Multiple files at once",
			},
		},
		{
			Label:   "List",
			Pattern: regexp.MustCompile(`list|items|results|records`),
			Hints: []string{
				"Empty list",
				"Single item",
				"Maximum number of items",
				"Duplicate items",
				"Sorted/unsorted data",
			},
		},
		{
			Label:   "Search",
			Pattern: regexp.MustCompile(`search|find|filter|query`),
			Hints: []string{
				"No results found",
				"Exact match",
				"Partial match",
				"Case sensitivity",
				"Special characters in search",
				"Very long search query",
			},
		},
		{
			Label:   "Login",
			Pattern: regexp.MustCompile(`login|logout|auth|session|token`),
			Hints: []string{
				"Invalid credentials",
				"Expired session",
				"Concurrent sessions",
				"Session timeout",
				"Remember me functionality",
				"Account locked",
			},
		},
		{
			Label:   "Payment",
			Pattern: regexp.MustCompile(`payment|pay|checkout|card|transaction`),
			Hints: []string{
				"Insufficient funds",
				"Expired card",
				"Invalid card number",
				"Payment timeout",
				"Duplicate payment",
				"Refund scenarios",
			},
		},
		{
			Label:   "Api",
			Pattern: regexp.MustCompile(`api|request|response|connection|network`),
			Hints: []string{
				"Network timeout",
				"Connection lost",
				"Slow network",
				"API rate limiting",
				"Invalid API response",
			},
		},
	}
}

// UniversalHints returns edge cases that apply to most scenarios,
// regardless of which keyword rules match.
func UniversalHints() []string {
	return []string{
		"Concurrent user actions",
		"Browser back button",
		"Page refresh during operation",
		"Multiple rapid clicks",
		"Mobile device viewport",
		"Screen reader accessibility",
	}
}
