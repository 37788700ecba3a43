package service

import (
	"context"
	"time"

	"github.com/iscsys/backend-go/internal/analytics"
	"github.com/iscsys/backend-go/internal/cache"
	"github.com/iscsys/backend-go/internal/domain"
	"github.com/iscsys/backend-go/internal/repository"
	"github.com/rs/zerolog/log"
)

// ReportService assembles analytics reports from raw inventory snapshots
// and movement history. All calendar math runs off the injected clock so
// reports are reproducible in tests.
type ReportService struct {
	inventory       repository.InventoryRepository
	movements       repository.MovementRepository
	cache           cache.ReportCache
	usageWindowDays int
	now             func() time.Time
}

func NewReportService(inventory repository.InventoryRepository, movements repository.MovementRepository, cacheImpl cache.ReportCache, usageWindowDays int) *ReportService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopReportCache()
	}
	if usageWindowDays <= 0 {
		usageWindowDays = analytics.DefaultUsageWindowDays
	}
	return &ReportService{
		inventory:       inventory,
		movements:       movements,
		cache:           cacheImpl,
		usageWindowDays: usageWindowDays,
		now:             time.Now,
	}
}

// WithClock overrides the service clock.
func (s *ReportService) WithClock(now func() time.Time) *ReportService {
	s.now = now
	return s
}

// Clock exposes the service clock so callers resolving calendar presets
// see the same time the report builders do.
func (s *ReportService) Clock() func() time.Time {
	return s.now
}

// usageRates computes per-item daily consumption from the trailing usage
// window, independent of any report range filter.
func (s *ReportService) usageRates(ctx context.Context) (map[string]float64, error) {
	now := s.now()
	windowStart := analytics.DateOf(now.AddDate(0, 0, -s.usageWindowDays))

	deductions, err := s.movements.ListDeductions(ctx, windowStart, "")
	if err != nil {
		return nil, err
	}

	return analytics.UsageRates(deductions, s.usageWindowDays, now), nil
}

// UsageRates exposes the per-item daily usage map.
func (s *ReportService) UsageRates(ctx context.Context) (map[string]float64, error) {
	return s.usageRates(ctx)
}

// Items returns the raw inventory snapshot.
func (s *ReportService) Items(ctx context.Context) ([]domain.InventoryItem, error) {
	return s.inventory.List(ctx)
}

// Item returns a single inventory item by id.
func (s *ReportService) Item(ctx context.Context, id string) (*domain.InventoryItem, error) {
	return s.inventory.Get(ctx, id)
}

func (s *ReportService) Overview(ctx context.Context, filter domain.ReportFilter) (*domain.Overview, error) {
	var cached domain.Overview
	if ok, err := s.cache.Get(ctx, "overview", filter, &cached); err == nil && ok {
		return &cached, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("reports: cache get overview failed")
	}

	items, err := s.inventory.List(ctx)
	if err != nil {
		return nil, err
	}

	// Month-to-date loss needs events back to the month start even when
	// the requested range is narrower.
	deductions, wastage, err := s.listMovements(ctx, s.widenToMonth(filter))
	if err != nil {
		return nil, err
	}

	overview := analytics.BuildOverview(items, deductions, wastage, filter.Start, filter.End, s.now())

	if err := s.cache.Set(ctx, "overview", filter, overview); err != nil {
		log.Warn().Err(err).Msg("reports: cache set overview failed")
	}

	return &overview, nil
}

func (s *ReportService) TruthTable(ctx context.Context, filter domain.ReportFilter) (*domain.TruthTable, error) {
	var cached domain.TruthTable
	if ok, err := s.cache.Get(ctx, "truth_table", filter, &cached); err == nil && ok {
		return &cached, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("reports: cache get truth table failed")
	}

	items, err := s.inventory.List(ctx)
	if err != nil {
		return nil, err
	}

	deductions, wastage, err := s.listMovements(ctx, filter)
	if err != nil {
		return nil, err
	}

	usage, err := s.usageRates(ctx)
	if err != nil {
		return nil, err
	}

	table := analytics.BuildTruthTable(items, deductions, wastage, filter.Start, filter.End, usage)

	if err := s.cache.Set(ctx, "truth_table", filter, table); err != nil {
		log.Warn().Err(err).Msg("reports: cache set truth table failed")
	}

	return &table, nil
}

func (s *ReportService) WastageReport(ctx context.Context, filter domain.ReportFilter) (*domain.WastageReport, error) {
	var cached domain.WastageReport
	if ok, err := s.cache.Get(ctx, "wastage", filter, &cached); err == nil && ok {
		return &cached, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("reports: cache get wastage failed")
	}

	deductions, wastage, err := s.listMovements(ctx, s.widenToMonth(filter))
	if err != nil {
		return nil, err
	}

	report := analytics.BuildWastageReport(wastage, deductions, filter.Start, filter.End, s.now())

	if err := s.cache.Set(ctx, "wastage", filter, report); err != nil {
		log.Warn().Err(err).Msg("reports: cache set wastage failed")
	}

	return &report, nil
}

func (s *ReportService) RestockPlan(ctx context.Context) (*domain.RestockPlan, error) {
	items, err := s.inventory.List(ctx)
	if err != nil {
		return nil, err
	}

	usage, err := s.usageRates(ctx)
	if err != nil {
		return nil, err
	}

	plan := analytics.BuildRestockPlan(items, usage)
	return &plan, nil
}

func (s *ReportService) LowStockTriage(ctx context.Context) (*domain.LowStockTriage, error) {
	items, err := s.inventory.List(ctx)
	if err != nil {
		return nil, err
	}

	usage, err := s.usageRates(ctx)
	if err != nil {
		return nil, err
	}

	triage := analytics.BuildLowStockTriage(items, usage)
	return &triage, nil
}

// Movements returns the unified stock event timeline for a range, newest
// first.
func (s *ReportService) Movements(ctx context.Context, filter domain.ReportFilter) ([]domain.StockEvent, error) {
	items, err := s.inventory.List(ctx)
	if err != nil {
		return nil, err
	}

	deductions, wastage, err := s.listMovements(ctx, filter)
	if err != nil {
		return nil, err
	}

	events := analytics.Normalize(items, deductions, wastage)
	return analytics.MergeMovements(events), nil
}

func (s *ReportService) ItemActivity(ctx context.Context, itemID string) (*domain.ItemActivity, error) {
	filter := domain.ReportFilter{ItemID: itemID}

	var cached domain.ItemActivity
	if ok, err := s.cache.Get(ctx, "item_activity", filter, &cached); err == nil && ok {
		return &cached, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("reports: cache get item activity failed")
	}

	item, err := s.inventory.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}

	deductions, wastage, err := s.listMovements(ctx, domain.ReportFilter{})
	if err != nil {
		return nil, err
	}

	activity := analytics.BuildItemActivity(*item, deductions, wastage, s.now())

	if err := s.cache.Set(ctx, "item_activity", filter, activity); err != nil {
		log.Warn().Err(err).Msg("reports: cache set item activity failed")
	}

	return &activity, nil
}

func (s *ReportService) listMovements(ctx context.Context, filter domain.ReportFilter) ([]domain.DeductionEvent, []domain.WastageEvent, error) {
	deductions, err := s.movements.ListDeductions(ctx, filter.Start, filter.End)
	if err != nil {
		return nil, nil, err
	}

	wastage, err := s.movements.ListWastage(ctx, filter.Start, filter.End)
	if err != nil {
		return nil, nil, err
	}

	return deductions, wastage, nil
}

// widenToMonth extends the fetch window so month-to-date figures always
// see the current month, whatever range was requested. The report builders
// re-apply the original bounds themselves.
func (s *ReportService) widenToMonth(filter domain.ReportFilter) domain.ReportFilter {
	monthStart := analytics.MonthStartOf(s.now())
	today := analytics.DateOf(s.now())

	widened := filter
	if widened.Start != "" && widened.Start > monthStart {
		widened.Start = monthStart
	}
	if widened.End != "" && widened.End < today {
		widened.End = today
	}
	return widened
}
