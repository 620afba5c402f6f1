package store

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"finmap/pkg/core/filing"
	"finmap/pkg/core/pipeline"
)

// StatementBlock is the serialized form of one mapped statement, carrying
// both the canonical table and the raw rows it was built from.
type StatementBlock struct {
	Available   bool        `json:"available"`
	Columns     []string    `json:"columns"`
	RowNames    []string    `json:"row_names"`
	Data        [][]float64 `json:"data"`
	RawRowNames []string    `json:"raw_row_names"`
	RawData     [][]float64 `json:"raw_data"`
	RawRowCount int         `json:"raw_row_count"`
}

// Document is the persisted output of a mapping run for one company.
type Document struct {
	Ticker         string                    `json:"ticker"`
	PeriodType     filing.PeriodType         `json:"period_type"`
	Currency       string                    `json:"currency"`
	CollectionDate string                    `json:"collection_date"`
	Statements     map[string]StatementBlock `json:"statements"`
}

// NewDocument builds an empty document with every statement marked
// unavailable.
func NewDocument(ticker string, period filing.PeriodType, currency string) *Document {
	doc := &Document{
		Ticker:         ticker,
		PeriodType:     period,
		Currency:       currency,
		CollectionDate: time.Now().UTC().Format("2006-01-02"),
		Statements:     make(map[string]StatementBlock, 3),
	}
	for _, st := range []filing.StatementType{filing.IncomeStatement, filing.BalanceSheet, filing.CashFlow} {
		doc.Statements[string(st)] = StatementBlock{Available: false}
	}
	return doc
}

// AddResult attaches one pipeline result and its source rows to the
// document.
func (d *Document) AddResult(st *filing.ExtractedStatement, res *pipeline.Result) {
	block := StatementBlock{
		Available:   true,
		Columns:     res.Table.Columns,
		RowNames:    res.Table.RowNames,
		Data:        sanitizeMatrix(res.Table.Data),
		RawRowCount: len(st.RowIDs),
	}
	for _, rowID := range st.RowIDs {
		block.RawRowNames = append(block.RawRowNames, st.Label(rowID))
		vec := make([]float64, len(res.Table.Columns))
		for ci, period := range res.Table.Columns {
			if v, ok := st.RowValue(rowID, period); ok {
				vec[ci] = v
			}
		}
		block.RawData = append(block.RawData, vec)
	}
	block.RawData = sanitizeMatrix(block.RawData)
	d.Statements[string(st.Statement)] = block
}

// Marshal renders the document as indented JSON. Non-finite cells are
// zeroed first; encoding/json cannot represent them and downstream readers
// expect numbers everywhere.
func (d *Document) Marshal() ([]byte, error) {
	for name, block := range d.Statements {
		block.Data = sanitizeMatrix(block.Data)
		block.RawData = sanitizeMatrix(block.RawData)
		d.Statements[name] = block
	}
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("STORE_MARSHAL_ERROR: %w", err)
	}
	return data, nil
}

// UnmarshalDocument parses a stored document, tolerating null cells from
// older writers.
func UnmarshalDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("STORE_PARSE_ERROR: %w", err)
	}
	for name, block := range doc.Statements {
		block.Data = sanitizeMatrix(block.Data)
		block.RawData = sanitizeMatrix(block.RawData)
		doc.Statements[name] = block
	}
	return &doc, nil
}

// sanitizeMatrix replaces NaN and infinite cells with zero so the document
// is always valid JSON and always loadable downstream.
func sanitizeMatrix(m [][]float64) [][]float64 {
	for _, row := range m {
		for i, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				row[i] = 0
			}
		}
	}
	return m
}
