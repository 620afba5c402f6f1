package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"finmap/pkg/core/agent"
	"finmap/pkg/core/config"
	"finmap/pkg/core/extract"
	"finmap/pkg/core/filing"
	"finmap/pkg/core/match"
	"finmap/pkg/core/pipeline"
	"finmap/pkg/core/store"
	"finmap/pkg/core/temporal"
)

var (
	runTicker    string
	runStatement string
	runPeriod    string
	runCurrency  string
	runHistory   []string
	runOutput    string
	runCacheDir  string
	runNoLLM     bool
	runTimeout   time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run <statement-file>",
	Short: "Map one extracted statement onto the canonical vocabulary",
	Long: `Run the full mapping pipeline on one statement.

The input may be the extracted-statement JSON record, an inline-XBRL HTML
table, or a Markdown pipe table (chosen by file extension).

Example:
  mapper run aapl_income.json --ticker AAPL --statement income --period quarterly
  mapper run msft_balance.html --ticker MSFT --statement balance --history msft_2023.json`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runTicker, "ticker", "", "company ticker (required)")
	runCmd.Flags().StringVar(&runStatement, "statement", "income", "statement type: income, balance, cashflow")
	runCmd.Flags().StringVar(&runPeriod, "period", "annual", "period type: annual, quarterly")
	runCmd.Flags().StringVar(&runCurrency, "currency", "USD", "reporting currency")
	runCmd.Flags().StringSliceVar(&runHistory, "history", nil, "historical filing JSON files for temporal validation")
	runCmd.Flags().StringVar(&runOutput, "out", "", "output document path (default: cache only)")
	runCmd.Flags().StringVar(&runCacheDir, "cache-dir", "", "document cache directory")
	runCmd.Flags().BoolVar(&runNoLLM, "no-llm", false, "disable the tie-break agent")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 10*time.Minute, "overall run timeout")
	_ = runCmd.MarkFlagRequired("ticker")
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), runTimeout)
	defer cancel()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if runNoLLM {
		cfg.LLMEnabled = false
	}

	stType, err := parseStatementType(runStatement)
	if err != nil {
		return err
	}
	pdType := filing.Annual
	if strings.EqualFold(runPeriod, "quarterly") {
		pdType = filing.Quarterly
	}

	st, source, err := loadStatement(args[0], runTicker, stType, pdType)
	if err != nil {
		return err
	}

	var history []temporal.HistoricalFiling
	for _, path := range runHistory {
		h, err := loadHistory(path)
		if err != nil {
			return fmt.Errorf("history %s: %w", path, err)
		}
		history = append(history, *h)
	}

	var agentClient *agent.Client
	if cfg.LLMEnabled {
		primary := agent.NewOllamaProvider(cfg.LLMBaseURL, cfg.LLMModel, 30*time.Second)
		var fallback agent.Provider
		if strings.HasPrefix(cfg.LLMFallbackModel, "gemini") {
			fallback = agent.NewGeminiProvider(cfg.LLMFallbackModel)
		} else if cfg.LLMFallbackModel != "" {
			fallback = agent.NewOllamaProvider(cfg.LLMBaseURL, cfg.LLMFallbackModel, 30*time.Second)
		}
		agentClient = agent.NewClient(primary, fallback, 30*time.Second)
	}

	p, err := pipeline.New(cfg, agentClient)
	if err != nil {
		return err
	}

	res, err := p.Run(ctx, st, history)
	if err != nil {
		return err
	}

	fmt.Printf("Run %s: mapped %d/%d rows, filled %d canonical facts (%d agent calls)\n",
		res.RunID, res.Stats.RowsMapped, res.Stats.RowsIn, res.Stats.CanonicalFilled, res.Stats.AgentCalls)
	if verbose {
		for name, b := range res.Bindings {
			loc := ""
			if source != "" && b.HumanLabel != "" {
				if line := match.FindLabelLine(source, b.HumanLabel); line > 0 {
					loc = fmt.Sprintf(" line %d", line)
				}
			}
			fmt.Printf("  %-40s <- %s (%.1f)%s\n", name, b.RowID, b.TotalScore, loc)
		}
		for _, row := range res.Unmapped {
			fmt.Printf("  unmapped: %s\n", row)
		}
	}

	doc := store.NewDocument(runTicker, pdType, runCurrency)
	doc.AddResult(st, res)

	cache := store.NewResultCache(store.GetPool(), runCacheDir)
	if err := cache.Save(ctx, doc); err != nil {
		return err
	}
	if runOutput != "" {
		data, err := doc.Marshal()
		if err != nil {
			return err
		}
		if err := os.WriteFile(runOutput, data, 0644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Printf("Document written to %s\n", runOutput)
	}
	return nil
}

func parseStatementType(s string) (filing.StatementType, error) {
	switch strings.ToLower(s) {
	case "income", "income_statement":
		return filing.IncomeStatement, nil
	case "balance", "balance_sheet":
		return filing.BalanceSheet, nil
	case "cashflow", "cash_flow":
		return filing.CashFlow, nil
	}
	return "", fmt.Errorf("unknown statement type %q", s)
}

// loadStatement picks the adapter by extension. For text formats the raw
// source comes back too so verbose output can point at source lines.
func loadStatement(path, ticker string, st filing.StatementType, pd filing.PeriodType) (*filing.ExtractedStatement, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read statement: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		rec, err := extract.ParseHTMLStatement(string(data), ticker, st, pd)
		return rec, string(data), err
	case ".md", ".markdown":
		rec, err := extract.ParseMarkdownStatement(string(data), ticker, st, pd)
		return rec, string(data), err
	default:
		var rec filing.ExtractedStatement
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, "", fmt.Errorf("parse statement JSON: %w", err)
		}
		rec.Ticker = ticker
		rec.Statement = st
		rec.Period = pd
		return &rec, "", nil
	}
}

func loadHistory(path string) (*temporal.HistoricalFiling, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var h temporal.HistoricalFiling
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, err
	}
	return &h, nil
}
