package pipeline

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"finmap/pkg/core/agent"
	"finmap/pkg/core/catalog"
	"finmap/pkg/core/config"
	"finmap/pkg/core/filing"
	"finmap/pkg/core/match"
	"finmap/pkg/core/summation"
	"finmap/pkg/core/temporal"
	"finmap/pkg/core/units"
)

// Pipeline maps one extracted statement onto its canonical vocabulary.
// Construct with New; a Pipeline is not safe for concurrent Run calls
// because the agent availability cache is per-run state.
type Pipeline struct {
	cfg       *config.Config
	detector  *units.Detector
	checker   *summation.Checker
	validator *temporal.Validator
	agent     *agent.Client

	agentDownLogged bool
}

// New builds a pipeline from config. The agent client may be nil, which
// disables tie-break and discovery regardless of config.
func New(cfg *config.Config, agentClient *agent.Client) (*Pipeline, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{
		cfg:       cfg,
		detector:  units.NewDetector(),
		checker:   summation.NewChecker(cfg.SummationTolerance),
		validator: temporal.NewValidator(cfg.TemporalTolerance),
		agent:     agentClient,
	}, nil
}

// rowState tracks one source row through the selection loop.
type rowState struct {
	rowID      string
	candidates []*match.Candidate // sorted descending by total
	locked     bool
	bound      *match.Candidate
	viaAgent   bool
}

// Run executes the full mapping for one statement. history may be nil.
func (p *Pipeline) Run(ctx context.Context, st *filing.ExtractedStatement, history []temporal.HistoricalFiling) (*Result, error) {
	if err := st.Validate(); err != nil {
		return nil, &InputError{Reason: err.Error()}
	}

	cat, err := catalog.ForStatement(st.Statement)
	if err != nil {
		return nil, &InputError{Reason: err.Error()}
	}

	// Normalization scales values in place; work on a copy so the caller's
	// record survives and a re-run reproduces the same output.
	st = st.CloneValues()
	p.agentDownLogged = false

	res := newResult(st)
	res.Stats.RowsIn = len(st.RowIDs)

	// Units first: every later stage compares normalized values.
	res.Units = p.detector.Normalize(st)
	res.Warnings = append(res.Warnings, res.Units.Warnings...)

	// Regex matching.
	matcher := match.NewMatcher(cat)
	states := make([]*rowState, 0, len(st.RowIDs))
	for _, rowID := range st.RowIDs {
		states = append(states, &rowState{
			rowID:      rowID,
			candidates: matcher.MatchRow(rowID, st.Label(rowID)),
		})
	}

	// Temporal validation.
	if p.cfg.TemporalEnabled && len(history) > 0 {
		for _, s := range states {
			p.validator.Score(st, s.rowID, s.candidates, history)
		}
	}

	// Summation analysis.
	if p.cfg.SummationEnabled {
		findings := p.checker.Analyze(st)
		for _, s := range states {
			p.checker.Apply(s.rowID, s.candidates, findings)
		}
	}

	// Later stages changed component scores; restore descending order.
	for _, s := range states {
		sortCandidates(s.candidates)
	}

	claimed := make(map[string]bool, cat.Len())
	p.selectBindings(ctx, st, states, claimed, res)

	if p.cfg.DiscoveryEnabled {
		p.discover(ctx, st, cat, states, claimed, res)
	}

	res.Table = buildTable(st, cat, states)
	for _, s := range states {
		if s.bound == nil {
			res.Unmapped = append(res.Unmapped, s.rowID)
		}
	}
	res.Stats.RowsMapped = len(st.RowIDs) - len(res.Unmapped)
	res.Stats.RowsUnmapped = len(res.Unmapped)
	if res.Stats.RowsIn > 0 {
		res.Stats.MappedPercent = 100 * float64(res.Stats.RowsMapped) / float64(res.Stats.RowsIn)
	}
	res.Stats.CanonicalFilled = len(res.Bindings)
	for _, row := range res.Table.Data {
		for _, v := range row {
			if v != 0 {
				res.Stats.NonZeroCanonicalRows++
				break
			}
		}
	}
	res.Stats.MissingExpected = p.missingExpected(st.Statement, res)
	res.Elapsed = time.Since(res.StartedAt).String()

	if len(res.Stats.MissingExpected) > 0 {
		log.Printf("[WARNING] LOW_COVERAGE: %s %s left %d expected canonical facts unfilled: %v",
			st.Ticker, st.Statement, len(res.Stats.MissingExpected), res.Stats.MissingExpected)
	}
	return res, nil
}

// missingExpected lists the configured expected facts the run did not bind.
func (p *Pipeline) missingExpected(st filing.StatementType, res *Result) []string {
	var missing []string
	for _, name := range p.cfg.ExpectedFacts[string(st)] {
		if _, ok := res.Bindings[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// selectBindings runs the greedy selection loop: rows lock in descending
// order of their best candidate's total, and each canonical fact is claimed
// at most once.
func (p *Pipeline) selectBindings(ctx context.Context, st *filing.ExtractedStatement, states []*rowState, claimed map[string]bool, res *Result) {
	order := make([]*rowState, 0, len(states))
	for _, s := range states {
		if len(s.candidates) > 0 {
			order = append(order, s)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].candidates[0].TotalScore() > order[j].candidates[0].TotalScore()
	})

	for _, s := range order {
		open := openCandidates(s.candidates, claimed)
		if len(open) == 0 {
			continue
		}
		pick := open[0]

		if p.shouldAskAgent(open) {
			chosen, ok := p.resolveTie(ctx, st, s, open, res)
			if ok {
				if chosen == nil {
					// Agent declined the row entirely.
					continue
				}
				if chosen != pick {
					res.Stats.AgentOverrides++
				}
				pick = chosen
				s.viaAgent = true
			}
		}

		s.locked = true
		s.bound = pick
		claimed[pick.CanonicalName()] = true
		res.Bindings[pick.CanonicalName()] = newBinding(pick, st.Label(s.rowID), s.viaAgent, false)
	}
}

// shouldAskAgent applies the ambiguity and low-confidence triggers to the
// unclaimed candidate list.
func (p *Pipeline) shouldAskAgent(open []*match.Candidate) bool {
	if p.agent == nil || !p.cfg.LLMEnabled {
		return false
	}
	top := open[0].TotalScore()
	if top < p.cfg.LLMLowConfidenceThreshold {
		return true
	}
	if len(open) >= 2 && top-open[1].TotalScore() < p.cfg.LLMAmbiguityThreshold {
		return true
	}
	return false
}

// resolveTie asks the agent to pick among the open candidates. The second
// return is false when the agent was unusable and the heuristic pick
// should stand untouched.
func (p *Pipeline) resolveTie(ctx context.Context, st *filing.ExtractedStatement, s *rowState, open []*match.Candidate, res *Result) (*match.Candidate, bool) {
	if !p.agent.Available(ctx) {
		if !p.agentDownLogged {
			p.agentDownLogged = true
			res.Warnings = append(res.Warnings, ErrAgentUnavailable.Error())
			log.Printf("[WARNING] %v, continuing on heuristic scores", ErrAgentUnavailable)
		}
		return nil, false
	}

	req := buildTieRequest(st, s, open)
	res.Stats.AgentCalls++
	resp, err := p.agent.ResolveTie(ctx, req)
	if err != nil {
		res.Warnings = append(res.Warnings, stageError("agent", err))
		log.Printf("[WARNING] agent tie-break failed for %s: %v", s.rowID, err)
		return nil, false
	}

	if resp.SelectedCanonicalName == nil {
		return nil, true
	}
	for _, cand := range open {
		if cand.CanonicalName() == *resp.SelectedCanonicalName {
			cand.AgentScore = resp.Confidence * agentScoreWeight
			cand.SetContext("agent_reasoning", resp.Reasoning)
			return cand, true
		}
	}
	return nil, false
}

// agentScoreWeight converts model confidence (0..1) into score points.
const agentScoreWeight = 30.0

func buildTieRequest(st *filing.ExtractedStatement, s *rowState, open []*match.Candidate) *agent.Request {
	req := &agent.Request{
		RowIdx:     s.rowID,
		HumanLabel: st.Label(s.rowID),
		RowValues:  st.Values[s.rowID],
		Neighbors:  neighborRows(st, s.rowID, 3),
	}
	for _, cand := range open {
		cs := agent.CandidateSummary{
			CanonicalName:  cand.CanonicalName(),
			PatternFamily:  string(cand.Family),
			RegexScore:     cand.RegexScore,
			TemporalScore:  cand.TemporalScore,
			SummationScore: cand.SummationScore,
			TotalScore:     cand.TotalScore(),
		}
		if cand.Dimensional {
			cs.Hints = "row is a dimensional breakdown"
		}
		req.Candidates = append(req.Candidates, cs)

		if d, ok := cand.Context[temporal.DetailKey].(temporal.Detail); ok && req.TemporalSummary == "" {
			req.TemporalSummary = fmt.Sprintf("%d of %d historical comparisons matched, %d mismatched",
				d.MatchedYears, d.Comparisons, d.Mismatches)
		}
		if f, ok := cand.Context[summation.FindingKey].(*summation.Finding); ok && req.SummationSummary == "" {
			req.SummationSummary = fmt.Sprintf("row sums %d components via %s (confidence %.2f)",
				len(f.Components), f.Method, f.Confidence)
		}
	}
	return req
}

// neighborRows returns up to limit rows surrounding rowID, for prompt
// context.
func neighborRows(st *filing.ExtractedStatement, rowID string, limit int) []agent.Neighbor {
	idx := -1
	for i, id := range st.RowIDs {
		if id == rowID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	var out []agent.Neighbor
	for _, i := range []int{idx - 1, idx + 1, idx - 2, idx + 2} {
		if len(out) >= limit {
			break
		}
		if i < 0 || i >= len(st.RowIDs) {
			continue
		}
		out = append(out, agent.Neighbor{RowID: st.RowIDs[i], Label: st.Label(st.RowIDs[i])})
	}
	return out
}

// discover runs the end-of-run pass binding leftover rows to the expected
// canonical facts the main loop left unfilled.
func (p *Pipeline) discover(ctx context.Context, st *filing.ExtractedStatement, cat *catalog.Catalog, states []*rowState, claimed map[string]bool, res *Result) {
	if p.agent == nil || !p.cfg.LLMEnabled || !p.agent.Available(ctx) {
		return
	}

	req := &agent.DiscoveryRequest{StatementType: string(st.Statement)}
	for _, s := range states {
		if s.bound != nil {
			continue
		}
		req.UnmappedRows = append(req.UnmappedRows, agent.DiscoveryRow{
			RowIdx:     s.rowID,
			HumanLabel: st.Label(s.rowID),
			RowValues:  st.Values[s.rowID],
		})
	}
	expected := p.cfg.ExpectedFacts[string(st.Statement)]
	if len(expected) == 0 {
		expected = cat.CanonicalNames()
	}
	for _, name := range expected {
		if !claimed[name] && cat.Lookup(name) != nil {
			req.OpenCanonicals = append(req.OpenCanonicals, name)
		}
	}
	if len(req.UnmappedRows) == 0 || len(req.OpenCanonicals) == 0 {
		return
	}

	res.Stats.AgentCalls++
	bindings, err := p.agent.Discover(ctx, req)
	if err != nil {
		res.Warnings = append(res.Warnings, stageError("discovery", err))
		log.Printf("[WARNING] discovery pass failed: %v", err)
		return
	}

	byRow := make(map[string]*rowState, len(states))
	for _, s := range states {
		byRow[s.rowID] = s
	}
	for _, b := range bindings {
		s := byRow[b.RowIdx]
		if s == nil || s.bound != nil || claimed[b.CanonicalName] {
			continue
		}
		entry := cat.Lookup(b.CanonicalName)
		if entry == nil {
			continue
		}
		cand := &match.Candidate{
			RowID:      s.rowID,
			Entry:      entry,
			Family:     match.FamilyAgent,
			AgentScore: b.Confidence * agentScoreWeight,
		}
		cand.SetContext("agent_reasoning", b.Reasoning)
		s.bound = cand
		s.locked = true
		claimed[b.CanonicalName] = true
		res.Stats.DiscoveryBinds++
		res.Bindings[b.CanonicalName] = newBinding(cand, st.Label(s.rowID), true, true)
		log.Printf("Discovery bound %s -> %q (confidence %.2f)", s.rowID, b.CanonicalName, b.Confidence)
	}
}

// buildTable materializes the zero-initialized canonical table and copies
// bound row values in.
func buildTable(st *filing.ExtractedStatement, cat *catalog.Catalog, states []*rowState) *MappedTable {
	table := &MappedTable{
		Statement: st.Statement,
		RowNames:  cat.CanonicalNames(),
		Columns:   append([]string(nil), st.Periods...),
		Data:      make([][]float64, cat.Len()),
	}
	for i := range table.Data {
		table.Data[i] = make([]float64, len(table.Columns))
	}
	for _, s := range states {
		if s.bound == nil {
			continue
		}
		ri := cat.IndexOf(s.bound.CanonicalName())
		if ri < 0 {
			continue
		}
		for ci, period := range table.Columns {
			if v, ok := st.RowValue(s.rowID, period); ok {
				table.Data[ri][ci] = v
			}
		}
	}
	return table
}

func openCandidates(cands []*match.Candidate, claimed map[string]bool) []*match.Candidate {
	var open []*match.Candidate
	for _, c := range cands {
		if !claimed[c.CanonicalName()] {
			open = append(open, c)
		}
	}
	return open
}

func sortCandidates(cands []*match.Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].TotalScore() > cands[j].TotalScore()
	})
}
