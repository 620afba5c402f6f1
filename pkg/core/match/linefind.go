package match

import (
	"regexp"
	"strings"
)

var numericPattern = regexp.MustCompile(`[\d,$()]+\d{2,}`)

// FindLabelLine searches source text for a row label and returns the line
// number (1-indexed), 0 when absent. Table rows (lines starting with |) that
// carry numeric values win over bare table rows, which win over numeric
// paragraph lines, which win over the first plain occurrence. Used to stamp
// source positions onto mapping results for audit.
func FindLabelLine(source string, label string) int {
	if label == "" || source == "" {
		return 0
	}

	lines := strings.Split(source, "\n")
	searchLabel := strings.TrimSpace(strings.ToLower(label))

	var tableWithNumeric, tableMatch, numericMatch, firstMatch int

	for i, line := range lines {
		if !strings.Contains(strings.ToLower(line), searchLabel) {
			continue
		}

		lineNum := i + 1
		isTableRow := strings.HasPrefix(strings.TrimSpace(line), "|")
		hasNumbers := numericPattern.MatchString(line)

		if isTableRow && hasNumbers && tableWithNumeric == 0 {
			tableWithNumeric = lineNum
		}
		if isTableRow && tableMatch == 0 {
			tableMatch = lineNum
		}
		if !isTableRow && hasNumbers && numericMatch == 0 {
			numericMatch = lineNum
		}
		if firstMatch == 0 {
			firstMatch = lineNum
		}
	}

	switch {
	case tableWithNumeric > 0:
		return tableWithNumeric
	case tableMatch > 0:
		return tableMatch
	case numericMatch > 0:
		return numericMatch
	default:
		return firstMatch
	}
}
