package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/dompet/dompet/internal/domain"
	"github.com/dompet/dompet/internal/infrastructure/metrics"
)

// Dashboard is the aggregated view served to the presentation client.
type Dashboard struct {
	Summary domain.Summary
	Recent  []*domain.Record
	Series  []domain.DailyPoint
}

// DashboardUseCase aggregates records into summary statistics.
type DashboardUseCase struct {
	recordRepo RecordRepository
	logger     zerolog.Logger
	metrics    *metrics.Metrics
	now        func() time.Time
}

// NewDashboardUseCase creates a new DashboardUseCase.
func NewDashboardUseCase(recordRepo RecordRepository, logger zerolog.Logger, metrics *metrics.Metrics) *DashboardUseCase {
	return &DashboardUseCase{
		recordRepo: recordRepo,
		logger:     logger,
		metrics:    metrics,
		now:        time.Now,
	}
}

// WithClock replaces the time source used to pick the series days.
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetDashboard computes totals, the most recent records and the daily series.
// A failure reading the full record set fails the call; a failure in the
// per-day reads only empties the series.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context) (*Dashboard, error) {
	records, err := uc.recordRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	sortNewestFirst(records)

	recent := records
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}

	series, err := uc.dailySeries(ctx)
	if err != nil {
		uc.logger.Warn().Err(err).Msg("daily series unavailable, serving empty series")
		if uc.metrics != nil {
			uc.metrics.DashboardSeriesDegraded.Inc()
		}
		series = []domain.DailyPoint{}
	}

	if uc.metrics != nil {
		uc.metrics.DashboardBuilds.Inc()
	}

	return &Dashboard{
		Summary: domain.Summarize(records),
		Recent:  recent,
		Series:  series,
	}, nil
}

// dailySeries reads each of the trailing SeriesDays UTC days, oldest first.
// The reads run concurrently and are not a single snapshot of the store.
func (uc *DashboardUseCase) dailySeries(ctx context.Context) ([]domain.DailyPoint, error) {
	today := uc.now().UTC()
	points := make([]domain.DailyPoint, SeriesDays)

	g, gctx := errgroup.WithContext(ctx)
	for i := range SeriesDays {
		start, end := domain.DayBounds(today.AddDate(0, 0, i-(SeriesDays-1)))

		g.Go(func() error {
			records, err := uc.recordRepo.ListBetween(gctx, start, end)
			if err != nil {
				return fmt.Errorf("list records for %s: %w", start.Format(domain.DateLayout), err)
			}

			s := domain.Summarize(records)
			points[i] = domain.DailyPoint{
				Date:    start,
				Income:  s.TotalIncome,
				Expense: s.TotalExpense,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return points, nil
}

// sortNewestFirst orders by occurrence time, breaking ties by higher id.
func sortNewestFirst(records []*domain.Record) {
	slices.SortStableFunc(records, func(a, b *domain.Record) int {
		if c := b.OccurredAt.Compare(a.OccurredAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
}
