package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"warotator/internal/types"
)

const defaultTopGroups = 10

// MaxDailySpan is the longest series DailyClicks returns, in days.
const MaxDailySpan = 3660

// Stats rolls click events up for the dashboards. It only reads.
type Stats struct {
	store StatsStore
	now   func() time.Time
}

func NewStats(store StatsStore) *Stats {
	return &Stats{store: store, now: time.Now}
}

// DailyClicks returns one row per calendar day of the filter, zero-filled.
// An open start begins at the first day with clicks; an open end stops at
// today, or at the last day with clicks if that is later.
func (s *Stats) DailyClicks(ctx context.Context, f types.StatsFilter) ([]types.DailyCount, error) {
	rows, err := s.store.DailyCounts(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("daily clicks: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Date] = r.Count
	}

	var start, end time.Time
	switch {
	case f.From != nil:
		start = types.TruncateDay(*f.From)
	case len(rows) > 0:
		first, err := time.Parse(types.DateLayout, rows[0].Date)
		if err != nil {
			return nil, fmt.Errorf("daily clicks: %w", err)
		}
		start = first
	default:
		return []types.DailyCount{}, nil
	}

	if f.To != nil {
		end = types.TruncateDay(*f.To)
	} else {
		end = types.TruncateDay(s.now())
		if len(rows) > 0 {
			last, err := time.Parse(types.DateLayout, rows[len(rows)-1].Date)
			if err == nil && last.After(end) {
				end = last
			}
		}
	}

	if start.After(end) {
		return []types.DailyCount{}, nil
	}
	// keep the most recent days of an oversized range
	if end.Sub(start) >= MaxDailySpan*24*time.Hour {
		start = end.AddDate(0, 0, -(MaxDailySpan - 1))
	}

	out := make([]types.DailyCount, 0, int(end.Sub(start).Hours()/24)+1)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(types.DateLayout)
		out = append(out, types.DailyCount{Date: key, Count: counts[key]})
	}
	return out, nil
}

func (s *Stats) ClicksByGroup(ctx context.Context, f types.StatsFilter) ([]types.GroupCount, error) {
	rows, err := s.store.GroupCounts(ctx, f, 0)
	if err != nil {
		return nil, fmt.Errorf("clicks by group: %w", err)
	}
	return rows, nil
}

// TopGroups returns the groups with most clicks, ties broken by name.
func (s *Stats) TopGroups(ctx context.Context, f types.StatsFilter, limit int) ([]types.GroupCount, error) {
	if limit <= 0 {
		limit = defaultTopGroups
	}
	rows, err := s.store.GroupCounts(ctx, f, limit)
	if err != nil {
		return nil, fmt.Errorf("top groups: %w", err)
	}
	return rows, nil
}

func (s *Stats) ClicksByDeviceType(ctx context.Context, f types.StatsFilter) ([]types.DimensionCount, error) {
	return s.breakdown(ctx, types.DimensionDeviceType, f)
}

func (s *Stats) ClicksByBrowser(ctx context.Context, f types.StatsFilter) ([]types.DimensionCount, error) {
	return s.breakdown(ctx, types.DimensionBrowser, f)
}

func (s *Stats) ClicksByOS(ctx context.Context, f types.StatsFilter) ([]types.DimensionCount, error) {
	return s.breakdown(ctx, types.DimensionOS, f)
}

func (s *Stats) ClicksByCountry(ctx context.Context, f types.StatsFilter) ([]types.DimensionCount, error) {
	return s.breakdown(ctx, types.DimensionCountry, f)
}

func (s *Stats) ClicksByCity(ctx context.Context, f types.StatsFilter) ([]types.DimensionCount, error) {
	return s.breakdown(ctx, types.DimensionCity, f)
}

func (s *Stats) ClicksByUTMSource(ctx context.Context, f types.StatsFilter) ([]types.DimensionCount, error) {
	return s.breakdown(ctx, types.DimensionUTMSource, f)
}

func (s *Stats) ClicksByUTMMedium(ctx context.Context, f types.StatsFilter) ([]types.DimensionCount, error) {
	return s.breakdown(ctx, types.DimensionUTMMedium, f)
}

// ClicksByHourOfDay always returns 24 rows, "00" to "23" (UTC).
func (s *Stats) ClicksByHourOfDay(ctx context.Context, f types.StatsFilter) ([]types.DimensionCount, error) {
	rows, err := s.store.DimensionCounts(ctx, types.DimensionHourOfDay, f)
	if err != nil {
		return nil, fmt.Errorf("clicks by hour_of_day: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Value] = r.Count
	}
	out := make([]types.DimensionCount, 24)
	for h := range out {
		key := fmt.Sprintf("%02d", h)
		out[h] = types.DimensionCount{Value: key, Count: counts[key]}
	}
	applyPercentages(out)
	return out, nil
}

func (s *Stats) ClicksByUTMCampaignTuple(ctx context.Context, f types.StatsFilter) ([]types.UTMCampaignCount, error) {
	rows, err := s.store.UTMCampaignCounts(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("clicks by utm campaign: %w", err)
	}

	var total int64
	for _, r := range rows {
		total += r.Count
	}
	for i := range rows {
		rows[i].Percentage = percentage(rows[i].Count, total)
	}
	return rows, nil
}

func (s *Stats) breakdown(ctx context.Context, dim types.Dimension, f types.StatsFilter) ([]types.DimensionCount, error) {
	rows, err := s.store.DimensionCounts(ctx, dim, f)
	if err != nil {
		return nil, fmt.Errorf("clicks by %s: %w", dim, err)
	}
	applyPercentages(rows)
	return rows, nil
}

// applyPercentages sets each row's share of the rows' own total.
func applyPercentages(rows []types.DimensionCount) {
	var total int64
	for _, r := range rows {
		total += r.Count
	}
	for i := range rows {
		rows[i].Percentage = percentage(rows[i].Count, total)
	}
}

func percentage(count, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)*10000/float64(total)) / 100
}
