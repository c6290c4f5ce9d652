package database

import (
	"context"
	"fmt"
	"strings"

	"warotator/internal/types"

	"github.com/lib/pq"
)

// dimensionExprs is the closed set of columns a breakdown can group by.
// Nothing user supplied is ever concatenated into the statement.
var dimensionExprs = map[types.Dimension]string{
	types.DimensionDeviceType: "c.device_type",
	types.DimensionBrowser:    "c.browser",
	types.DimensionOS:         "c.os",
	types.DimensionCountry:    "c.country",
	types.DimensionCity:       "c.city",
	types.DimensionUTMSource:  "c.utm_source",
	types.DimensionUTMMedium:  "c.utm_medium",
	types.DimensionHourOfDay:  "to_char(c.created_at AT TIME ZONE 'UTC', 'HH24')",
}

// clickConds renders the filter as `?` conditions on click_events aliased c.
func clickConds(f types.StatsFilter) ([]string, []any) {
	var conds []string
	var args []any
	start, end := f.Bounds()
	if start != nil {
		conds = append(conds, "c.created_at >= ?")
		args = append(args, *start)
	}
	if end != nil {
		conds = append(conds, "c.created_at < ?")
		args = append(args, *end)
	}
	if len(f.GroupIDs) > 0 {
		conds = append(conds, "c.group_id = ANY(?::uuid[])")
		args = append(args, groupIDArray(f))
	}
	return conds, args
}

func groupIDArray(f types.StatsFilter) any {
	ids := make([]string, len(f.GroupIDs))
	for i, id := range f.GroupIDs {
		ids[i] = id.String()
	}
	return pq.Array(ids)
}

func where(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

// DailyCounts returns one row per UTC day that has clicks, oldest first.
// Days without clicks are absent; callers zero-fill.
func (db *Database) DailyCounts(ctx context.Context, f types.StatsFilter) ([]types.DailyCount, error) {
	conds, args := clickConds(f)
	q := `
		SELECT to_char(c.created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, COUNT(*) AS count
		FROM click_events c` + where(conds) + `
		GROUP BY day
		ORDER BY day ASC`

	out := []types.DailyCount{}
	if err := db.db.SelectContext(ctx, &out, db.db.Rebind(q), args...); err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// GroupCounts counts clicks per group, including groups without clicks in
// the range. Rows are ordered by clicks descending then name; limit <= 0
// returns every group.
func (db *Database) GroupCounts(ctx context.Context, f types.StatsFilter, limit int) ([]types.GroupCount, error) {
	var joinConds []string
	var args []any
	start, end := f.Bounds()
	if start != nil {
		joinConds = append(joinConds, "c.created_at >= ?")
		args = append(args, *start)
	}
	if end != nil {
		joinConds = append(joinConds, "c.created_at < ?")
		args = append(args, *end)
	}

	on := "c.group_id = g.id"
	if len(joinConds) > 0 {
		on += " AND " + strings.Join(joinConds, " AND ")
	}

	q := `
		SELECT g.id, g.slug, g.name, COUNT(c.id) AS clicks
		FROM groups g
		LEFT JOIN click_events c ON ` + on
	if len(f.GroupIDs) > 0 {
		q += ` WHERE g.id = ANY(?::uuid[])`
		args = append(args, groupIDArray(f))
	}
	q += `
		GROUP BY g.id, g.slug, g.name
		ORDER BY clicks DESC, g.name ASC`
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	out := []types.GroupCount{}
	if err := db.db.SelectContext(ctx, &out, db.db.Rebind(q), args...); err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// DimensionCounts groups clicks by one dimension. NULL and empty values are
// reported as types.UnknownValue. Percentages are left to the caller.
func (db *Database) DimensionCounts(ctx context.Context, dim types.Dimension, f types.StatsFilter) ([]types.DimensionCount, error) {
	expr, ok := dimensionExprs[dim]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDimension, dim)
	}

	conds, whereArgs := clickConds(f)
	q := `
		SELECT COALESCE(NULLIF(` + expr + `, ''), ?) AS value, COUNT(*) AS count
		FROM click_events c` + where(conds) + `
		GROUP BY 1
		ORDER BY count DESC, value ASC`
	args := append([]any{types.UnknownValue}, whereArgs...)

	out := []types.DimensionCount{}
	if err := db.db.SelectContext(ctx, &out, db.db.Rebind(q), args...); err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// UTMCampaignCounts groups clicks by the (source, medium, campaign) tuple.
func (db *Database) UTMCampaignCounts(ctx context.Context, f types.StatsFilter) ([]types.UTMCampaignCount, error) {
	conds, whereArgs := clickConds(f)
	q := `
		SELECT COALESCE(NULLIF(c.utm_source, ''), ?) AS source,
		       COALESCE(NULLIF(c.utm_medium, ''), ?) AS medium,
		       COALESCE(NULLIF(c.utm_campaign, ''), ?) AS campaign,
		       COUNT(*) AS count
		FROM click_events c` + where(conds) + `
		GROUP BY 1, 2, 3
		ORDER BY count DESC, source ASC, medium ASC, campaign ASC`
	args := append([]any{types.UnknownValue, types.UnknownValue, types.UnknownValue}, whereArgs...)

	out := []types.UTMCampaignCount{}
	if err := db.db.SelectContext(ctx, &out, db.db.Rebind(q), args...); err != nil {
		return nil, classify(err)
	}
	return out, nil
}
