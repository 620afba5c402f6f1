package extract

import (
	"testing"

	"finmap/pkg/core/filing"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1,234", 1234, true},
		{"$ 5,000", 5000, true},
		{"(345)", -345, true},
		{"1.23", 1.23, true},
		{"—", 0, false},
		{"-", 0, false},
		{"", 0, false},
		{"Revenue", 0, false},
		{"(1,000.50)", -1000.50, true},
	}
	for _, tc := range cases {
		got, ok := ParseNumber(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseNumber(%q) = %v,%v, want %v,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

const sampleMarkdown = `Consolidated Statements of Operations

(In millions, except per share data)

| | December 31, 2024 | December 31, 2023 |
|---|---|---|
| Net revenue | 5,000 | 4,500 |
| Cost of sales | (3,000) | (2,700) |
| Operating expenses: | | |
| Total gross profit | 2,000 | 1,800 |
`

func TestParseMarkdownStatement(t *testing.T) {
	st, err := ParseMarkdownStatement(sampleMarkdown, "ACME", filing.IncomeStatement, filing.Annual)
	if err != nil {
		t.Fatal(err)
	}

	if len(st.Periods) != 2 || st.Periods[0] != "December 31, 2024" {
		t.Fatalf("periods = %v", st.Periods)
	}
	if len(st.RowIDs) != 3 {
		t.Fatalf("rows = %v, want 3 (section heading skipped)", st.RowIDs)
	}
	if v, ok := st.RowValue("Net revenue", "December 31, 2024"); !ok || v != 5000 {
		t.Errorf("Net revenue 2024 = %v,%v, want 5000", v, ok)
	}
	if v, _ := st.RowValue("Cost of sales", "December 31, 2023"); v != -2700 {
		t.Errorf("Cost of sales 2023 = %v, want -2700", v)
	}
	if !st.TotalRows["Total gross profit"] {
		t.Error("total marker not set for the Total row")
	}
	if st.HeaderText == "" {
		t.Error("header text missing")
	}
}

const sampleHTML = `
<table>
  <caption>Consolidated Balance Sheets (In thousands)</caption>
  <tr><th></th><th>2024-12-31</th><th>2023-12-31</th></tr>
  <tr>
    <td>Cash and cash equivalents</td>
    <td><ix:nonfraction name="us-gaap:CashAndCashEquivalentsAtCarryingValue">12,500</ix:nonfraction></td>
    <td>10,100</td>
  </tr>
  <tr>
    <td>Total assets</td>
    <td style="border-top: 1px solid">45,000</td>
    <td>41,000</td>
  </tr>
</table>`

func TestParseHTMLStatement(t *testing.T) {
	st, err := ParseHTMLStatement(sampleHTML, "ACME", filing.BalanceSheet, filing.Annual)
	if err != nil {
		t.Fatal(err)
	}

	if len(st.Periods) != 2 || st.Periods[0] != "2024-12-31" {
		t.Fatalf("periods = %v", st.Periods)
	}
	if len(st.RowIDs) != 2 {
		t.Fatalf("rows = %v, want 2", st.RowIDs)
	}
	// The ix:nonfraction concept becomes the row ID.
	if st.RowIDs[0] != "us-gaap:CashAndCashEquivalentsAtCarryingValue" {
		t.Errorf("row ID = %q, want the tagged concept", st.RowIDs[0])
	}
	if v, ok := st.RowValue(st.RowIDs[0], "2024-12-31"); !ok || v != 12500 {
		t.Errorf("cash 2024 = %v,%v, want 12500", v, ok)
	}
	if !st.TotalRows["Total assets"] {
		t.Error("bordered Total row not flagged")
	}
	if st.HeaderText == "" {
		t.Error("header text missing")
	}
}

func TestParseHTMLNoTable(t *testing.T) {
	if _, err := ParseHTMLStatement("<p>nothing here</p>", "ACME", filing.IncomeStatement, filing.Annual); err == nil {
		t.Error("expected error for HTML without a table")
	}
}

func TestParseMarkdownNoTable(t *testing.T) {
	if _, err := ParseMarkdownStatement("just prose, no table", "ACME", filing.IncomeStatement, filing.Annual); err == nil {
		t.Error("expected error for Markdown without a table")
	}
}
