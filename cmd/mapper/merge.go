package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"finmap/pkg/core/filing"
	"finmap/pkg/core/merge"
	"finmap/pkg/core/pipeline"
)

var (
	mergeStatement string
	mergeOutput    string
	mergeFYGroups  []string
	mergeFixQ4     bool
)

var mergeCmd = &cobra.Command{
	Use:   "merge <table.json>...",
	Short: "Stack mapped tables into one multi-period history",
	Long: `Merge mapped tables from several filings of the same company into one
table: union of periods newest first, canonical row order, zeros where a
filing lacks a fact, all-zero rows dropped.

With --fix-q4, fiscal years whose fourth-quarter column holds cumulative
full-year values are converted to discrete quarters. Fiscal year groups
are given as FY:Q4,Q3,Q2,Q1 column labels:

  mapper merge q1.json q2.json q3.json q4.json --statement income \
    --fix-q4 --fy 2024:2024-12-31,2024-09-30,2024-06-30,2024-03-31`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringVar(&mergeStatement, "statement", "income", "statement type: income, balance, cashflow")
	mergeCmd.Flags().StringVar(&mergeOutput, "out", "merged.json", "output path")
	mergeCmd.Flags().BoolVar(&mergeFixQ4, "fix-q4", false, "repair cumulative fourth-quarter columns")
	mergeCmd.Flags().StringSliceVar(&mergeFYGroups, "fy", nil, "fiscal year column groups, FY:Q4,Q3,Q2,Q1")
}

func runMerge(cmd *cobra.Command, args []string) error {
	st, err := parseStatementType(mergeStatement)
	if err != nil {
		return err
	}

	var tables []*pipeline.MappedTable
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		var t pipeline.MappedTable
		if err := json.Unmarshal(data, &t); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		if t.Statement == "" {
			t.Statement = st
		}
		tables = append(tables, &t)
	}

	merged, err := merge.Stack(st, tables)
	if err != nil {
		return err
	}

	if mergeFixQ4 && st != filing.BalanceSheet {
		groups, err := parseFYGroups(mergeFYGroups)
		if err != nil {
			return err
		}
		merged.Table = merge.AdjustQuarterlyCumulative(merged.Table, groups)
	}

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(mergeOutput, data, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Printf("Merged %d tables: %d facts x %d periods, %d restatements -> %s\n",
		len(tables), len(merged.Table.RowNames), len(merged.Table.Columns),
		len(merged.Restatements), mergeOutput)
	return nil
}

func parseFYGroups(specs []string) (map[string][]string, error) {
	groups := make(map[string][]string, len(specs))
	for _, s := range specs {
		fy, cols, ok := strings.Cut(s, ":")
		if !ok {
			return nil, fmt.Errorf("bad --fy value %q, want FY:Q4,Q3,Q2,Q1", s)
		}
		parts := strings.Split(cols, ",")
		if len(parts) != 4 {
			return nil, fmt.Errorf("bad --fy value %q, want exactly four columns", s)
		}
		groups[fy] = parts
	}
	return groups, nil
}
