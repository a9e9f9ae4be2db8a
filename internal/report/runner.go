package report

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/NH-Homelab/subscription-report/internal/applicationdao"
	"github.com/NH-Homelab/subscription-report/internal/database"
	"github.com/NH-Homelab/subscription-report/internal/models"
	"github.com/NH-Homelab/subscription-report/internal/subscriptiondao"
)

type Strategy string

const (
	// StrategyMemory reads both tables and joins them in process.
	StrategyMemory Strategy = "memory"
	// StrategySQL lets Postgres run the join and projection.
	StrategySQL Strategy = "sql"
)

var (
	ErrUnknownStrategy = errors.New("unknown report strategy")
	ErrRunReport       = errors.New("failed to run application apis report")
)

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", StrategyMemory:
		return StrategyMemory, nil
	case StrategySQL:
		return StrategySQL, nil
	default:
		return "", fmt.Errorf("ParseStrategy: %w -- %q", ErrUnknownStrategy, s)
	}
}

type Runner struct {
	db       database.DatabaseConnection
	strategy Strategy
	logger   *zap.Logger
}

func NewRunner(db database.DatabaseConnection, strategy Strategy, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if strategy == "" {
		strategy = StrategyMemory
	}
	return &Runner{
		db:       db,
		strategy: strategy,
		logger:   logger,
	}
}

// Run produces one row per application. Failures are returned as is, there is
// no retry.
func (r *Runner) Run() ([]models.ApplicationAPIs, error) {
	start := time.Now()

	var (
		rows []models.ApplicationAPIs
		err  error
	)
	switch r.strategy {
	case StrategyMemory:
		rows, err = r.runInMemory()
	case StrategySQL:
		rows, err = applicationdao.GetApplicationAPIs(r.db)
	default:
		err = fmt.Errorf("%w -- %q", ErrUnknownStrategy, r.strategy)
	}
	if err != nil {
		r.logger.Error("application apis report failed",
			zap.String("strategy", string(r.strategy)),
			zap.Error(err))
		return nil, fmt.Errorf("Run: %w -- %w", ErrRunReport, err)
	}

	r.logger.Debug("application apis report finished",
		zap.String("strategy", string(r.strategy)),
		zap.Int("applications", len(rows)),
		zap.Duration("took", time.Since(start)))

	return rows, nil
}

func (r *Runner) runInMemory() ([]models.ApplicationAPIs, error) {
	apps, err := applicationdao.GetApplications(r.db)
	if err != nil {
		return nil, err
	}

	subs, err := subscriptiondao.GetSubscriptions(r.db)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("loaded collections",
		zap.Int("applications", len(apps)),
		zap.Int("subscriptions", len(subs)))

	return Join(apps, subs), nil
}
