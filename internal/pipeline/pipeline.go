// Package pipeline sequences parse, validate, enrich, validate and execute
// for one command.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vmunix/arrmate/internal/history"
	"github.com/vmunix/arrmate/internal/intent"
	"github.com/vmunix/arrmate/internal/metrics"
)

// Stage names used for metrics and logs.
const (
	StageParse   = "parse"
	StageEnrich  = "enrich"
	StageExecute = "execute"
)

// Outcomes recorded per command.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeInvalid = "invalid"
	OutcomeDryRun  = "dry_run"
)

// Parser turns text into an intent.
type Parser interface {
	Parse(ctx context.Context, text string) (*intent.Intent, error)
}

// Enricher resolves titles to backend references.
type Enricher interface {
	Enrich(ctx context.Context, in *intent.Intent) error
}

// Executor runs an enriched intent.
type Executor interface {
	Execute(ctx context.Context, in *intent.Intent) intent.ExecutionResult
}

// Recorder stores executed commands.
type Recorder interface {
	Add(ctx context.Context, e *history.Entry) error
}

// Response is the outcome of one command.
type Response struct {
	ID      string                 `json:"id,omitempty"`
	Command string                 `json:"command"`
	Intent  *intent.Intent         `json:"intent,omitempty"`
	Result  intent.ExecutionResult `json:"result"`
	DryRun  bool                   `json:"dry_run"`
}

// Pipeline runs commands end to end. It holds no per-request state.
type Pipeline struct {
	parser   Parser
	enricher Enricher
	executor Executor
	history  Recorder
	metrics  *metrics.Metrics
	log      *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithHistory records every command in r.
func WithHistory(r Recorder) Option {
	return func(p *Pipeline) { p.history = r }
}

// WithMetrics reports stage durations and outcomes to m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Pipeline) { p.metrics = m }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// New creates a pipeline.
func New(parser Parser, enricher Enricher, executor Executor, opts ...Option) *Pipeline {
	p := &Pipeline{
		parser:   parser,
		enricher: enricher,
		executor: executor,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.With("component", "pipeline")
	return p
}

// Parse runs only the parse and structural validation stages.
func (p *Pipeline) Parse(ctx context.Context, text string) (*intent.Intent, error) {
	start := time.Now()
	in, err := p.parser.Parse(ctx, text)
	p.metrics.ObserveStage(StageParse, time.Since(start))
	if err != nil {
		return nil, err
	}
	return in, intent.Check(in)
}

// Run executes text. With dryRun the intent is parsed and enriched but not
// executed. Failures of any stage are reported in the result.
func (p *Pipeline) Run(ctx context.Context, text string, dryRun bool) Response {
	start := time.Now()
	resp := Response{Command: text, DryRun: dryRun}
	outcome := OutcomeFailure

	defer func() {
		action, media := "", ""
		if resp.Intent != nil {
			action, media = string(resp.Intent.Action), string(resp.Intent.MediaType)
		}
		p.metrics.ObserveCommand(action, media, outcome)
		p.record(ctx, &resp, time.Since(start))
		p.log.Info("command finished",
			"action", action,
			"media_type", media,
			"outcome", outcome,
			"duration_ms", time.Since(start).Milliseconds())
	}()

	in, err := p.Parse(ctx, text)
	if in != nil {
		resp.Intent = in
	}
	if err != nil {
		if _, ok := intent.AsValidation(err); ok {
			outcome = OutcomeInvalid
		}
		p.log.Warn("parse failed", "error", err)
		resp.Result = intent.FromError(err)
		return resp
	}

	stage := time.Now()
	err = p.enricher.Enrich(ctx, in)
	p.metrics.ObserveStage(StageEnrich, time.Since(stage))
	if err != nil {
		p.log.Warn("enrichment failed", "title", in.Title, "error", err)
		resp.Result = intent.FromError(err)
		return resp
	}

	if err := intent.Check(in); err != nil {
		outcome = OutcomeInvalid
		resp.Result = intent.FromError(err)
		return resp
	}

	if dryRun {
		outcome = OutcomeDryRun
		resp.Result = intent.Succeeded(describe(in), nil)
		return resp
	}

	stage = time.Now()
	resp.Result = p.executor.Execute(ctx, in)
	p.metrics.ObserveStage(StageExecute, time.Since(stage))
	if resp.Result.Success {
		outcome = OutcomeSuccess
	}
	return resp
}

func (p *Pipeline) record(ctx context.Context, resp *Response, d time.Duration) {
	if p.history == nil {
		return
	}
	e := history.NewEntry(resp.Command, resp.Intent, resp.Result, resp.DryRun, d)
	// A cancelled request still gets its history row.
	if err := p.history.Add(context.WithoutCancel(ctx), e); err != nil {
		p.log.Error("record history", "error", err)
		return
	}
	resp.ID = e.ID
}

// describe renders what a dry run would have done.
func describe(in *intent.Intent) string {
	s := fmt.Sprintf("Would %s %s", in.Action, in.MediaType)
	if in.Title != "" {
		s += fmt.Sprintf(" '%s'", in.Title)
	}
	if in.HasSeason() {
		s += fmt.Sprintf(" season %d", *in.Season)
	}
	if len(in.Episodes) > 0 {
		s += fmt.Sprintf(" episodes %v", in.Episodes)
	}
	if ref := in.Item(); ref.IsResolved() {
		s += fmt.Sprintf(" (%s)", ref.Kind())
	}
	return s
}
