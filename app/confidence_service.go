package app

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/savthe/prediction-confidence/domain/confidence"
	"github.com/savthe/prediction-confidence/domain/core"
	"github.com/savthe/prediction-confidence/internal"
	"github.com/savthe/prediction-confidence/internal/calibration"
	"github.com/savthe/prediction-confidence/models"
	"github.com/savthe/prediction-confidence/ports"
)

// DefaultName is the name the built-in distribution is served under.
const DefaultName = "default"

// ConfidenceService answers confidence queries against named distributions.
// Each table is built exactly once and cached; concurrent first queries for
// the same name are collapsed into a single build.
type ConfidenceService struct {
	repo       ports.DistributionRepository // nil disables persistence
	defaultCfg confidence.Config
	log        *internal.Logger

	mu     sync.RWMutex
	tables map[string]*confidence.Table
	builds singleflight.Group
}

// NewConfidenceService creates the service. repo may be nil, in which case
// only the default distribution is available.
func NewConfidenceService(repo ports.DistributionRepository, defaultCfg confidence.Config) (*ConfidenceService, error) {
	if err := defaultCfg.Validate(); err != nil {
		return nil, fmt.Errorf("default distribution: %w", err)
	}
	return &ConfidenceService{
		repo:       repo,
		defaultCfg: defaultCfg,
		log:        internal.NewLogger("confidence"),
		tables:     make(map[string]*confidence.Table),
	}, nil
}

// Evaluate returns the two-sided confidence level of x under the named
// distribution. An empty name selects the default distribution.
func (s *ConfidenceService) Evaluate(ctx context.Context, name string, x float64) (float64, error) {
	if name == "" {
		name = DefaultName
	}
	tbl, err := s.table(ctx, name)
	if err != nil {
		return 0, err
	}
	return tbl.Evaluate(x), nil
}

// Register validates and stores a new named distribution, then builds its
// table eagerly so the first query is already O(1).
func (s *ConfidenceService) Register(ctx context.Context, d *models.Distribution) error {
	if d.Name == "" || d.Name == DefaultName {
		return fmt.Errorf("%w: %q (must be non-empty and not the reserved default)", core.ErrInvalidName, d.Name)
	}
	if err := d.Validate(); err != nil {
		return err
	}
	if s.repo == nil {
		return core.NewConfigError("repository", "persistence is not configured")
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return fmt.Errorf("failed to store distribution %q: %w", d.Name, err)
	}
	if _, err := s.table(ctx, d.Name); err != nil {
		return err
	}

	s.log.Info("registered distribution %q (mean=%g stdev=%g points=%d)", d.Name, d.Mean, d.Stdev, d.Points)
	return nil
}

// Evaluator returns the built table for the named distribution, for callers
// that want to run many lock-free queries without going through the service.
func (s *ConfidenceService) Evaluator(ctx context.Context, name string) (ports.Evaluator, error) {
	if name == "" {
		name = DefaultName
	}
	return s.table(ctx, name)
}

// List returns every persisted distribution. The default distribution is not
// persisted and is not included.
func (s *ConfidenceService) List(ctx context.Context) ([]*models.Distribution, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.List(ctx)
}

// table returns the cached table for name, building it on first use.
func (s *ConfidenceService) table(ctx context.Context, name string) (*confidence.Table, error) {
	s.mu.RLock()
	tbl, ok := s.tables[name]
	s.mu.RUnlock()
	if ok {
		return tbl, nil
	}

	v, err, _ := s.builds.Do(name, func() (interface{}, error) {
		cfg, err := s.resolveConfig(ctx, name)
		if err != nil {
			return nil, err
		}

		tbl, err := confidence.Build(cfg)
		if err != nil {
			return nil, err
		}
		if s.log.GetLevel() >= internal.LogLevelDebug {
			s.log.Debug("built table %q: %d points, mass %.9f, drift %.2g",
				name, cfg.Points, tbl.Mass(), calibration.TableDrift(tbl, 200))
		}

		s.mu.Lock()
		s.tables[name] = tbl
		s.mu.Unlock()
		return tbl, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*confidence.Table), nil
}

func (s *ConfidenceService) resolveConfig(ctx context.Context, name string) (confidence.Config, error) {
	if name == DefaultName {
		return s.defaultCfg, nil
	}
	if s.repo == nil {
		return confidence.Config{}, core.ErrDistributionNotFound
	}
	d, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return confidence.Config{}, err
	}
	return d.Config(), nil
}
