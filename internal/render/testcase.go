package render

import (
	"encoding/json"
)

// TestCase represents one generated scenario. A renderer never mutates
// a TestCase; every format is a pure function over the record list.
type TestCase struct {
	Name  string
	Given []string
	When  []string
	Then  []string

	// Extra holds fields that are not part of the core record shape.
	// They survive a JSON round trip untouched.
	Extra map[string]json.RawMessage
}

// Suite is the JSON envelope for a list of test cases.
type Suite struct {
	Feature   string     `json:"feature"`
	TestCases []TestCase `json:"test_cases"`
}

// MarshalJSON emits the core fields plus any extra fields. Keys are
// serialized in sorted order, so output is byte-stable for equal input.
func (tc TestCase) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(tc.Extra)+4)
	for k, v := range tc.Extra {
		fields[k] = v
	}

	var err error
	if fields["name"], err = json.Marshal(tc.Name); err != nil {
		return nil, err
	}
	if fields["given"], err = json.Marshal(emptyIfNil(tc.Given)); err != nil {
		return nil, err
	}
	if fields["when"], err = json.Marshal(emptyIfNil(tc.When)); err != nil {
		return nil, err
	}
	if fields["then"], err = json.Marshal(emptyIfNil(tc.Then)); err != nil {
		return nil, err
	}

	return json.Marshal(fields)
}

// UnmarshalJSON fills the core fields and stashes everything else in Extra.
func (tc *TestCase) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*tc = TestCase{}
	for key, raw := range fields {
		var err error
		switch key {
		case "name":
			err = json.Unmarshal(raw, &tc.Name)
		case "given":
			err = json.Unmarshal(raw, &tc.Given)
		case "when":
			err = json.Unmarshal(raw, &tc.When)
		case "then":
			err = json.Unmarshal(raw, &tc.Then)
		default:
			if tc.Extra == nil {
				tc.Extra = make(map[string]json.RawMessage)
			}
			tc.Extra[key] = raw
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func emptyIfNil(steps []string) []string {
	if steps == nil {
		return []string{}
	}
	return steps
}
