package types

import (
	"time"

	"github.com/google/uuid"
)

// UnknownValue is the bucket for clicks missing a dimension value.
const UnknownValue = "unknown"

const DateLayout = "2006-01-02"

type Dimension string

const (
	DimensionDeviceType Dimension = "device_type"
	DimensionBrowser    Dimension = "browser"
	DimensionOS         Dimension = "os"
	DimensionCountry    Dimension = "country"
	DimensionCity       Dimension = "city"
	DimensionUTMSource  Dimension = "utm_source"
	DimensionUTMMedium  Dimension = "utm_medium"
	DimensionHourOfDay  Dimension = "hour_of_day"
)

// StatsFilter narrows aggregation queries. From and To are calendar days
// (UTC) and both bounds are inclusive. The zero value matches everything.
type StatsFilter struct {
	From     *time.Time
	To       *time.Time
	GroupIDs []uuid.UUID
}

// Bounds returns the half-open [start, end) instant range of the filter.
// A nil pointer means the side is unbounded.
func (f StatsFilter) Bounds() (start, end *time.Time) {
	if f.From != nil {
		s := TruncateDay(*f.From)
		start = &s
	}
	if f.To != nil {
		e := TruncateDay(*f.To).AddDate(0, 0, 1)
		end = &e
	}
	return start, end
}

func TruncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type DailyCount struct {
	Date  string `json:"date" db:"day"`
	Count int64  `json:"count" db:"count"`
}

type GroupCount struct {
	GroupID uuid.UUID `json:"group_id" db:"id"`
	Slug    string    `json:"slug" db:"slug"`
	Name    string    `json:"name" db:"name"`
	Clicks  int64     `json:"clicks" db:"clicks"`
}

type DimensionCount struct {
	Value      string  `json:"value" db:"value"`
	Count      int64   `json:"count" db:"count"`
	Percentage float64 `json:"percentage" db:"-"`
}

type UTMCampaignCount struct {
	Source     string  `json:"utm_source" db:"source"`
	Medium     string  `json:"utm_medium" db:"medium"`
	Campaign   string  `json:"utm_campaign" db:"campaign"`
	Count      int64   `json:"count" db:"count"`
	Percentage float64 `json:"percentage" db:"-"`
}
