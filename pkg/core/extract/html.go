// Package extract adapts source filing tables (inline-XBRL HTML, Markdown)
// into the extracted-statement record the mapping pipeline consumes.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"finmap/pkg/core/filing"
)

var (
	// periodLabelRe accepts the date forms statement headers use.
	periodLabelRe = regexp.MustCompile(`(?i)((January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4})|(\d{4}-\d{2}-\d{2})`)

	numberRe = regexp.MustCompile(`^\(?-?[\d,]+(\.\d+)?\)?$`)
)

// ParseHTMLStatement reads one statement table from inline-XBRL HTML. Row
// IDs come from ix:nonfraction name attributes when present, otherwise
// from the row label; the table's caption and unit line become the header
// text.
func ParseHTMLStatement(html string, ticker string, st filing.StatementType, period filing.PeriodType) (*filing.ExtractedStatement, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("EXTRACT_HTML_ERROR: %w", err)
	}
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("EXTRACT_HTML_ERROR: no table element found")
	}

	out := &filing.ExtractedStatement{
		Ticker:    ticker,
		Statement: st,
		Period:    period,
		Values:    make(map[string]map[string]float64),
		Labels:    make(map[string]string),
		TotalRows: make(map[string]bool),
	}

	// Header: caption plus the leading rows without numeric cells carry the
	// unit phrase and the period labels.
	var headerParts []string
	if cap := doc.Find("caption").First(); cap.Length() > 0 {
		headerParts = append(headerParts, cleanText(cap.Text()))
	}

	var periods []string
	table.Find("tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		rowText := cleanText(tr.Text())
		if hasNumericCell(tr) {
			return false
		}
		headerParts = append(headerParts, rowText)
		for _, m := range periodLabelRe.FindAllString(rowText, -1) {
			periods = append(periods, m)
		}
		return true
	})
	out.HeaderText = strings.Join(headerParts, "; ")
	out.Periods = periods

	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		if !hasNumericCell(tr) {
			return
		}
		label := cleanText(tr.Find("td, th").First().Text())
		if label == "" {
			return
		}

		rowID := label
		if name, ok := tr.Find(`ix\:nonfraction`).First().Attr("name"); ok {
			rowID = name
		}
		if _, dup := out.Values[rowID]; dup {
			rowID = fmt.Sprintf("%s#%d", rowID, len(out.RowIDs))
		}

		vec := make(map[string]float64)
		col := 0
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			text := cleanText(td.Text())
			v, ok := ParseNumber(text)
			if !ok {
				return
			}
			if col < len(out.Periods) {
				vec[out.Periods[col]] = v
			}
			col++
		})
		if len(vec) == 0 {
			return
		}

		out.RowIDs = append(out.RowIDs, rowID)
		out.Labels[rowID] = label
		out.Values[rowID] = vec
		if isTotalRowMarkup(tr, label) {
			out.TotalRows[rowID] = true
		}
	})

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// isTotalRowMarkup flags rows the filing visually marks as totals: a
// border-top rule on the number cells or a label starting with "Total".
func isTotalRowMarkup(tr *goquery.Selection, label string) bool {
	if strings.HasPrefix(strings.ToLower(label), "total") {
		return true
	}
	marked := false
	tr.Find("td").Each(func(_ int, td *goquery.Selection) {
		if style, ok := td.Attr("style"); ok && strings.Contains(style, "border-top") {
			marked = true
		}
	})
	return marked
}

func hasNumericCell(tr *goquery.Selection) bool {
	found := false
	tr.Find("td").Each(func(_ int, td *goquery.Selection) {
		if _, ok := ParseNumber(cleanText(td.Text())); ok {
			found = true
		}
	})
	return found
}

// ParseNumber reads a filing-formatted number: thousands commas, leading
// currency symbol, parentheses for negatives. Dashes and empty cells are
// not numbers.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSpace(s)
	if s == "" || s == "-" || s == "—" || s == "–" {
		return 0, false
	}
	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = s[1 : len(s)-1]
	}
	if !numberRe.MatchString(s) {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	var v float64
	if _, err := fmt.Sscanf(s, "%f", &v); err != nil {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}
