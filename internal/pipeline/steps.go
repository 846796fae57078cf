package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nao1215/weaponstats/internal/dataset"
	"github.com/nao1215/weaponstats/internal/model"
	"github.com/nao1215/weaponstats/internal/stats"
)

// LoadStep reads the data file into State.Table.
// A Source of dataset.StdinPath is parsed from the step's stdin reader.
type LoadStep struct {
	delimiter rune
	stdin     io.Reader
	logger    *slog.Logger
}

// LoadStepOption configures a LoadStep.
type LoadStepOption func(*LoadStep)

// WithLoadDelimiter sets the field separator.
func WithLoadDelimiter(r rune) LoadStepOption {
	return func(s *LoadStep) {
		s.delimiter = r
	}
}

// WithLoadStdin sets the reader used when the source is dataset.StdinPath.
// The default is os.Stdin.
func WithLoadStdin(r io.Reader) LoadStepOption {
	return func(s *LoadStep) {
		s.stdin = r
	}
}

// WithLoadLogger sets a custom logger for the load step.
func WithLoadLogger(logger *slog.Logger) LoadStepOption {
	return func(s *LoadStep) {
		s.logger = logger
	}
}

// NewLoadStep creates a new load step.
func NewLoadStep(opts ...LoadStepOption) *LoadStep {
	s := &LoadStep{
		delimiter: dataset.DefaultDelimiter,
		stdin:     os.Stdin,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *LoadStep) Name() string {
	return "load"
}

// Do executes the load step.
func (s *LoadStep) Do(_ context.Context, state *State) error {
	opts := []dataset.LoadOption{
		dataset.WithDelimiter(s.delimiter),
		dataset.WithLogger(s.logger),
	}

	var (
		t   *dataset.Table
		err error
	)
	if state.Source == dataset.StdinPath {
		t, err = dataset.Parse(s.stdin, opts...)
	} else {
		t, err = dataset.Load(state.Source, opts...)
	}
	if err != nil {
		return err
	}
	state.Table = t
	return nil
}

// NormalizeStep renames duplicate damage columns into attack and guard names.
type NormalizeStep struct {
	aliases dataset.Aliases
	logger  *slog.Logger
}

// NewNormalizeStep creates a normalize step. A nil aliases uses dataset.DefaultAliases.
func NewNormalizeStep(aliases dataset.Aliases, logger *slog.Logger) *NormalizeStep {
	if aliases == nil {
		aliases = dataset.DefaultAliases()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &NormalizeStep{aliases: aliases, logger: logger}
}

// Name returns the step name.
func (s *NormalizeStep) Name() string {
	return "normalize"
}

// Do executes the normalize step.
func (s *NormalizeStep) Do(_ context.Context, state *State) error {
	if state.Table == nil {
		return &dataset.GeneralError{Op: "normalize", Err: errNoTable}
	}
	dataset.Normalize(state.Table, s.aliases, s.logger)
	return nil
}

// CoerceStep converts the normalized table into State.Weapons.
type CoerceStep struct {
	logger *slog.Logger
}

// NewCoerceStep creates a coerce step.
func NewCoerceStep(logger *slog.Logger) *CoerceStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &CoerceStep{logger: logger}
}

// Name returns the step name.
func (s *CoerceStep) Name() string {
	return "coerce"
}

// Do executes the coerce step.
func (s *CoerceStep) Do(_ context.Context, state *State) error {
	if state.Table == nil {
		return &dataset.GeneralError{Op: "coerce", Err: errNoTable}
	}

	weapons, err := dataset.Coerce(state.Table)
	if err != nil {
		return err
	}

	noPhysical := 0
	for _, w := range weapons {
		if w.Attack.Physical == 0 {
			noPhysical++
		}
	}
	s.logger.Debug("weapons coerced",
		"weapons", len(weapons),
		"zero_phy_attack", noPhysical,
	)

	state.Weapons = weapons
	return nil
}

// IndexStep loads State.Weapons into a stats engine.
type IndexStep struct {
	engine stats.Engine
}

// NewIndexStep creates an index step for the given engine.
func NewIndexStep(engine stats.Engine) *IndexStep {
	return &IndexStep{engine: engine}
}

// Name returns the step name.
func (s *IndexStep) Name() string {
	return "index"
}

// Do executes the index step.
func (s *IndexStep) Do(ctx context.Context, state *State) error {
	if err := s.engine.Load(ctx, state.Weapons); err != nil {
		return fmt.Errorf("failed to index weapons in %s engine: %w", s.engine.Name(), err)
	}
	return nil
}

// DistributionStep fills Report.Distribution.
type DistributionStep struct {
	engine stats.Engine
}

// NewDistributionStep creates a distribution step.
func NewDistributionStep(engine stats.Engine) *DistributionStep {
	return &DistributionStep{engine: engine}
}

// Name returns the step name.
func (s *DistributionStep) Name() string {
	return "distribution"
}

// Do executes the distribution step.
func (s *DistributionStep) Do(ctx context.Context, state *State) error {
	dist, err := s.engine.Distribution(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute category distribution: %w", err)
	}
	state.Report.Distribution = dist
	return nil
}

// RankStep runs one top-N query and stores the result.
type RankStep struct {
	engine stats.Engine
	metric stats.Metric
	name   string
	store  func(*State, model.Ranking)
}

// NewRankStep creates a step that appends a ranking by metric to State.Rankings.
func NewRankStep(engine stats.Engine, metric stats.Metric) *RankStep {
	return &RankStep{
		engine: engine,
		metric: metric,
		name:   "rank_" + metric.String(),
		store: func(state *State, r model.Ranking) {
			state.Rankings = append(state.Rankings, r)
		},
	}
}

// NewTopPhysicalStep creates the step that fills Report.TopPhysical.
func NewTopPhysicalStep(engine stats.Engine) *RankStep {
	return &RankStep{
		engine: engine,
		metric: stats.MetricPhyAttack,
		name:   "top_physical",
		store: func(state *State, r model.Ranking) {
			state.Report.TopPhysical = r
		},
	}
}

// NewHeaviestStep creates the step that fills Report.Heaviest.
func NewHeaviestStep(engine stats.Engine) *RankStep {
	return &RankStep{
		engine: engine,
		metric: stats.MetricWeight,
		name:   "heaviest",
		store: func(state *State, r model.Ranking) {
			state.Report.Heaviest = r
		},
	}
}

// Name returns the step name.
func (s *RankStep) Name() string {
	return s.name
}

// Do executes the rank step.
func (s *RankStep) Do(ctx context.Context, state *State) error {
	r, err := s.engine.Top(ctx, s.metric, state.Report.Limit)
	if err != nil {
		return fmt.Errorf("failed to rank by %s: %w", s.metric, err)
	}
	s.store(state, r)
	return nil
}

// DefaultPipelineConfig holds configuration for the default pipelines.
type DefaultPipelineConfig struct {
	// Delimiter is the field separator of the data file.
	Delimiter rune

	// Aliases is the duplicate-header alias list.
	Aliases dataset.Aliases

	// Stdin is read when the source is dataset.StdinPath.
	Stdin io.Reader

	// Logger is passed to the steps.
	Logger *slog.Logger
}

// DefaultPipelineOption configures a DefaultPipelineConfig.
type DefaultPipelineOption func(*DefaultPipelineConfig)

// WithPipelineDelimiter sets the field separator.
func WithPipelineDelimiter(r rune) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Delimiter = r
	}
}

// WithPipelineAliases replaces the duplicate-header alias list.
func WithPipelineAliases(aliases dataset.Aliases) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Aliases = aliases
	}
}

// WithPipelineStdin sets the reader behind the "-" data path.
func WithPipelineStdin(r io.Reader) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Stdin = r
	}
}

// WithPipelineLogger sets the logger used by the steps.
func WithPipelineLogger(logger *slog.Logger) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Logger = logger
	}
}

// LoadPipeline creates a pipeline that loads, normalizes and coerces the data
// file, then indexes the weapons into engine. A nil engine skips indexing.
func LoadPipeline(engine stats.Engine, pipelineOpts []Option, configOpts ...DefaultPipelineOption) *Pipeline {
	p := New(pipelineOpts...)

	cfg := &DefaultPipelineConfig{
		Delimiter: dataset.DefaultDelimiter,
		Aliases:   dataset.DefaultAliases(),
		Stdin:     os.Stdin,
		Logger:    slog.Default(),
	}
	for _, opt := range configOpts {
		opt(cfg)
	}

	p.AddSteps(
		NewLoadStep(
			WithLoadDelimiter(cfg.Delimiter),
			WithLoadStdin(cfg.Stdin),
			WithLoadLogger(cfg.Logger),
		),
		NewNormalizeStep(cfg.Aliases, cfg.Logger),
		NewCoerceStep(cfg.Logger),
	)
	if engine != nil {
		p.AddStep(NewIndexStep(engine))
	}

	return p
}

// DefaultPipeline creates the full report pipeline: LoadPipeline followed by
// the category distribution, the physical attack ranking and the weight ranking.
func DefaultPipeline(engine stats.Engine, pipelineOpts []Option, configOpts ...DefaultPipelineOption) *Pipeline {
	p := LoadPipeline(engine, pipelineOpts, configOpts...)

	p.AddSteps(
		NewDistributionStep(engine),
		NewTopPhysicalStep(engine),
		NewHeaviestStep(engine),
	)

	return p
}
