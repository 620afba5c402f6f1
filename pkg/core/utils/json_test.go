package utils

import "testing"

type tieResponse struct {
	Selected   *string `json:"selected_canonical_name"`
	Confidence float64 `json:"confidence"`
}

func TestSmartParseCleanJSON(t *testing.T) {
	var out tieResponse
	_, err := SmartParse(`{"selected_canonical_name": "Total revenue", "confidence": 0.9}`, &out)
	if err != nil {
		t.Fatal(err)
	}
	if out.Selected == nil || *out.Selected != "Total revenue" || out.Confidence != 0.9 {
		t.Errorf("parsed = %+v", out)
	}
}

func TestSmartParseFencedOutput(t *testing.T) {
	input := "Here is my answer:\n```json\n{\"selected_canonical_name\": \"Net income\", \"confidence\": 0.8}\n```\nHope that helps."
	var out tieResponse
	if _, err := SmartParse(input, &out); err != nil {
		t.Fatal(err)
	}
	if out.Selected == nil || *out.Selected != "Net income" {
		t.Errorf("parsed = %+v", out)
	}
}

func TestSmartParseRepairsSingleQuotes(t *testing.T) {
	var out tieResponse
	if _, err := SmartParse(`{'selected_canonical_name': 'Gross profit', 'confidence': 0.7,}`, &out); err != nil {
		t.Fatal(err)
	}
	if out.Selected == nil || *out.Selected != "Gross profit" {
		t.Errorf("parsed = %+v", out)
	}
}

func TestSmartParseNullSelection(t *testing.T) {
	var out tieResponse
	if _, err := SmartParse(`{"selected_canonical_name": null, "confidence": 0.3}`, &out); err != nil {
		t.Fatal(err)
	}
	if out.Selected != nil {
		t.Errorf("selected = %v, want nil", *out.Selected)
	}
}

func TestSmartParseRejectsGarbage(t *testing.T) {
	var out tieResponse
	if _, err := SmartParse("I could not decide between the options.", &out); err == nil {
		t.Error("prose without JSON must fail to parse")
	}
}

func TestStripFencesIsolatesObject(t *testing.T) {
	got := StripFences("noise before {\"a\": 1} noise after")
	if got != `{"a": 1}` {
		t.Errorf("StripFences = %q", got)
	}
}
