package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/magcell/config"
	"github.com/katalvlaran/magcell/coordination"
	"github.com/katalvlaran/magcell/logging"
	"github.com/katalvlaran/magcell/magnetism"
	"github.com/katalvlaran/magcell/structure"
	"github.com/katalvlaran/magcell/supercell"
)

// Runner executes one configured workflow. It holds no per-run state besides
// the enumerator's random source, so it must not be shared between goroutines.
type Runner struct {
	cfg        config.Config
	scheme     magnetism.Scheme
	enum       *magnetism.Enumerator
	rescaler   *supercell.Rescaler
	classifier *coordination.Classifier
	logger     *slog.Logger
	runID      string
	seed       int64
}

// New validates cfg and wires the enumerator, rescaler and classifier.
// cfg is copied; later changes to it do not affect the Runner.
func New(cfg *config.Config, opts ...Option) (*Runner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNilConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}
	scheme, err := cfg.Scheme()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}

	rc := runnerConfig{logger: logging.Discard()}
	for _, opt := range opts {
		opt(&rc)
	}
	if rc.runID == "" {
		rc.runID = uuid.NewString()
	}
	if rc.rescaler == nil {
		rc.rescaler = supercell.Default()
	}
	if rc.finder == nil {
		cf, err := coordination.NewCutoffFinder(cfg.Classification.Cutoff)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodNew, err)
		}
		rc.finder = cf
	}

	logger := rc.logger.With(slog.String("run_id", rc.runID))

	seed := cfg.Magnetization.Seed
	enumOpts := []magnetism.Option{
		magnetism.WithMaxAttempts(cfg.Magnetization.MaxAttempts),
		magnetism.WithLogger(logger),
	}
	switch {
	case rc.rng != nil:
		seed = 0
		enumOpts = append(enumOpts, magnetism.WithRand(rc.rng))
	default:
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		enumOpts = append(enumOpts, magnetism.WithSeed(seed))
	}

	classifier, err := coordination.NewClassifier(rc.finder,
		coordination.WithTolerance(cfg.Classification.Tolerance),
		coordination.WithWorkers(cfg.Classification.Workers),
		coordination.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}

	return &Runner{
		cfg:        *cfg,
		scheme:     scheme,
		enum:       magnetism.NewEnumerator(enumOpts...),
		rescaler:   rc.rescaler,
		classifier: classifier,
		logger:     logger,
		runID:      rc.runID,
		seed:       seed,
	}, nil
}

// RunID returns the identifier attached to every log record of this Runner.
func (r *Runner) RunID() string { return r.runID }

// Seed returns the enumerator seed; 0 when an explicit source was injected.
func (r *Runner) Seed() int64 { return r.seed }

// Run processes structures in input order. ctx is checked between structures.
func (r *Runner) Run(ctx context.Context, structures []*structure.Structure) (*Result, error) {
	if len(structures) == 0 {
		return nil, fmt.Errorf("%s: %w", methodRun, ErrNoStructures)
	}

	started := time.Now()
	r.logger.Info("workflow started",
		slog.Int("structures", len(structures)),
		slog.String("scheme", r.scheme.String()),
		slog.String("calculation", r.cfg.Calculation.Type),
		slog.Int64("seed", r.seed))

	res := &Result{
		RunID:       r.runID,
		Calculation: r.cfg.Calculation.Type,
		Defect:      r.cfg.Calculation.Defect,
		Structures:  make([]StructureResult, 0, len(structures)),
	}
	for n, s := range structures {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", methodRun, err)
		}
		if s == nil {
			return nil, fmt.Errorf("%s: structure %d: %w", methodRun, n+1, structure.ErrNilStructure)
		}

		sr, err := r.process(n+1, s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodRun, err)
		}
		res.Structures = append(res.Structures, sr)
	}

	r.logger.Info("workflow finished",
		slog.Int("variants", res.VariantCount()),
		slog.Duration("elapsed", time.Since(started)))

	return res, nil
}

func (r *Runner) process(n int, s *structure.Structure) (StructureResult, error) {
	label := StructureLabel(n, s)
	log := r.logger.With(slog.String("structure", label))

	variants, err := r.enum.Magnetize(s, r.scheme, r.cfg.Magnetization.MaxAntiferro)
	if err != nil {
		return StructureResult{}, fmt.Errorf("%s: %w", label, err)
	}
	log.Debug("magnetic variants", slog.Any("labels", variants.Labels()))

	sr := StructureResult{
		Label:    label,
		Formula:  s.Formula(),
		Variants: make([]VariantResult, 0, len(variants)),
	}
	for _, v := range variants {
		vr := VariantResult{Label: v.Label, Structure: v.Structure}
		if r.cfg.Calculation.Type == config.CalculationDefect {
			sites, err := r.Classify(v.Structure)
			if err != nil {
				return StructureResult{}, fmt.Errorf("%s: %s: %w", label, v.Label, err)
			}
			vr.Sites = &sites
		}
		sr.Variants = append(sr.Variants, vr)
	}

	return sr, nil
}

// Classify rescales s with the Runner's step table and reduces the supercell
// to one representative site per coordination environment.
func (r *Runner) Classify(s *structure.Structure) (SiteMap, error) {
	cell, factor, err := r.rescaler.Rescale(s)
	if err != nil {
		return SiteMap{}, fmt.Errorf("%s: %w", methodClassify, err)
	}
	cl, err := r.classifier.Classify(cell)
	if err != nil {
		return SiteMap{}, fmt.Errorf("%s: %w", methodClassify, err)
	}
	r.logger.Debug("sites classified",
		slog.String("factor", factor.String()),
		slog.Int("sites", cell.Len()),
		slog.Int("environments", len(cl)))

	return SiteMap{Factor: factor, Supercell: cell, Sites: cl}, nil
}
