package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"warotator/internal/types"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxStatsLimit = 1000

var errBadQuery = errors.New("bad query")

type statsQuery func(ctx context.Context, f types.StatsFilter, limit int) (any, error)

func (s *Server) statsRoutes(r chi.Router) {
	r.Get("/daily", s.handlerStats(rows(s.stats.DailyClicks)))
	r.Get("/groups", s.handlerStats(rows(s.stats.ClicksByGroup)))
	r.Get("/top-groups", s.handlerStats(func(ctx context.Context, f types.StatsFilter, limit int) (any, error) {
		res, err := s.stats.TopGroups(ctx, f, limit)
		return nonNil(res), err
	}))
	r.Get("/devices", s.handlerStats(rows(s.stats.ClicksByDeviceType)))
	r.Get("/browsers", s.handlerStats(rows(s.stats.ClicksByBrowser)))
	r.Get("/os", s.handlerStats(rows(s.stats.ClicksByOS)))
	r.Get("/countries", s.handlerStats(rows(s.stats.ClicksByCountry)))
	r.Get("/cities", s.handlerStats(rows(s.stats.ClicksByCity)))
	r.Get("/utm-sources", s.handlerStats(rows(s.stats.ClicksByUTMSource)))
	r.Get("/utm-mediums", s.handlerStats(rows(s.stats.ClicksByUTMMedium)))
	r.Get("/utm-campaigns", s.handlerStats(rows(s.stats.ClicksByUTMCampaignTuple)))
	r.Get("/hours", s.handlerStats(rows(s.stats.ClicksByHourOfDay)))
}

func rows[T any](fn func(context.Context, types.StatsFilter) ([]T, error)) statsQuery {
	return func(ctx context.Context, f types.StatsFilter, _ int) (any, error) {
		res, err := fn(ctx, f)
		return nonNil(res), err
	}
}

func nonNil[T any](res []T) []T {
	if res == nil {
		return []T{}
	}
	return res
}

func (s *Server) handlerStats(query statsQuery) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, limit, err := parseStatsQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		res, err := query(r.Context(), f, limit)
		if err != nil {
			slog.Error("stats query failed", "path", r.URL.Path, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": res})
	}
}

// parseStatsQuery reads date_from, date_to (YYYY-MM-DD, inclusive),
// group_id (repeated or comma separated) and limit.
func parseStatsQuery(r *http.Request) (types.StatsFilter, int, error) {
	q := r.URL.Query()
	var f types.StatsFilter

	from, err := parseDay(q.Get("date_from"))
	if err != nil {
		return f, 0, fmt.Errorf("%w: date_from: %w", errBadQuery, err)
	}
	to, err := parseDay(q.Get("date_to"))
	if err != nil {
		return f, 0, fmt.Errorf("%w: date_to: %w", errBadQuery, err)
	}
	if from != nil && to != nil && to.Before(*from) {
		return f, 0, fmt.Errorf("%w: date_to is before date_from", errBadQuery)
	}
	if from != nil && to != nil && to.Sub(*from) >= MaxDailySpan*24*time.Hour {
		return f, 0, fmt.Errorf("%w: date range exceeds %d days", errBadQuery, MaxDailySpan)
	}
	f.From, f.To = from, to

	for _, v := range q["group_id"] {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := uuid.Parse(part)
			if err != nil {
				return f, 0, fmt.Errorf("%w: group_id %q", errBadQuery, part)
			}
			f.GroupIDs = append(f.GroupIDs, id)
		}
	}

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxStatsLimit {
			return f, 0, fmt.Errorf("%w: limit must be between 1 and %d", errBadQuery, maxStatsLimit)
		}
	}
	return f, limit, nil
}

func parseDay(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(types.DateLayout, raw, time.UTC)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
