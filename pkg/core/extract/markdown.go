package extract

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"finmap/pkg/core/filing"
)

var mdParser = goldmark.New(goldmark.WithExtensions(extension.Table))

// ParseMarkdownStatement reads the first pipe table of a Markdown document
// into an extracted statement. Text above the table becomes the header
// text; first-column cells become row labels and row IDs.
func ParseMarkdownStatement(source string, ticker string, st filing.StatementType, period filing.PeriodType) (*filing.ExtractedStatement, error) {
	src := []byte(source)
	doc := mdParser.Parser().Parse(text.NewReader(src))

	out := &filing.ExtractedStatement{
		Ticker:    ticker,
		Statement: st,
		Period:    period,
		Values:    make(map[string]map[string]float64),
		Labels:    make(map[string]string),
		TotalRows: make(map[string]bool),
	}

	var table *east.Table
	var headerParts []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if t, ok := n.(*east.Table); ok {
			table = t
			break
		}
		if p, ok := n.(*ast.Paragraph); ok {
			headerParts = append(headerParts, nodeText(p, src))
		}
	}
	if table == nil {
		return nil, fmt.Errorf("EXTRACT_MD_ERROR: no table found in document")
	}

	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		cells := cellTexts(row, src)
		if len(cells) == 0 {
			continue
		}
		switch row.(type) {
		case *east.TableHeader:
			headerParts = append(headerParts, cells[0])
			for _, c := range cells[1:] {
				if c != "" {
					out.Periods = append(out.Periods, c)
				}
			}
		case *east.TableRow:
			label := cells[0]
			if label == "" {
				continue
			}
			vec := make(map[string]float64)
			for i, c := range cells[1:] {
				if i >= len(out.Periods) {
					break
				}
				if v, ok := ParseNumber(c); ok {
					vec[out.Periods[i]] = v
				}
			}
			if len(vec) == 0 {
				// Section heading row ("Operating expenses:").
				continue
			}
			rowID := label
			if _, dup := out.Values[rowID]; dup {
				rowID = fmt.Sprintf("%s#%d", rowID, len(out.RowIDs))
			}
			out.RowIDs = append(out.RowIDs, rowID)
			out.Labels[rowID] = label
			out.Values[rowID] = vec
			if strings.HasPrefix(strings.ToLower(label), "total") {
				out.TotalRows[rowID] = true
			}
		}
	}
	out.HeaderText = strings.Join(headerParts, "; ")

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

func cellTexts(row ast.Node, src []byte) []string {
	var out []string
	for c := row.FirstChild(); c != nil; c = c.NextSibling() {
		if cell, ok := c.(*east.TableCell); ok {
			out = append(out, nodeText(cell, src))
		}
	}
	return out
}

func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(src))
		} else {
			b.WriteString(nodeText(c, src))
		}
	}
	return cleanText(b.String())
}
