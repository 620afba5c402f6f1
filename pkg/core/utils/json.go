// Package utils carries the lenient JSON handling used for language-model
// output. Local models routinely emit fenced, single-quoted, or trailing-
// comma JSON; the parse chain here recovers the usable cases instead of
// failing the row.
package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// RepairJSON attempts to fix common JSON errors from LLM outputs: missing
// quotes around keys, single quotes, unclosed brackets, trailing commas,
// comments, markdown fences.
func RepairJSON(malformed string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformed)
	if err != nil {
		return "", fmt.Errorf("JSON_REPAIR_FAILED: %v", err)
	}
	return repaired, nil
}

// StripFences removes markdown code fences and isolates the outermost JSON
// object from surrounding prose.
func StripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	s = strings.TrimSpace(s)
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		s = s[start : end+1]
	}
	return s
}

// SmartParse tries multiple strategies to decode model output into schema:
// standard JSON, then repaired JSON, then Hjson (most lenient). Returns the
// string that decoded successfully.
func SmartParse(input string, schema interface{}) (string, error) {
	input = StripFences(input)

	if err := json.Unmarshal([]byte(input), schema); err == nil {
		return input, nil
	}

	if repaired, err := RepairJSON(input); err == nil {
		if err := json.Unmarshal([]byte(repaired), schema); err == nil {
			return repaired, nil
		}
	}

	var loose interface{}
	if err := hjson.Unmarshal([]byte(input), &loose); err == nil {
		if b, err := json.Marshal(loose); err == nil {
			if err := json.Unmarshal(b, schema); err == nil {
				return string(b), nil
			}
		}
	}

	return "", fmt.Errorf("SMART_PARSE_FAILED: all parsing strategies failed")
}
