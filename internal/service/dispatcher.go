package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"warotator/internal/database"
	"warotator/internal/types"

	"github.com/redis/go-redis/v9"
)

const waBaseURL = "https://wa.me/"

// Dispatcher turns a public slug into a wa.me link: it resolves the group,
// takes the next number from the rotation and records the click.
type Dispatcher struct {
	groups   GroupStore
	cache    GroupCache
	cacheTTL time.Duration
	selector NumberSelector
	recorder ClickRecorder
	alerter  Alerter
	metrics  *Metrics
}

type DispatcherOption func(*Dispatcher)

// WithGroupCache puts a read-through cache in front of the slug lookup.
func WithGroupCache(c GroupCache, ttl time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		d.cache = c
		d.cacheTTL = ttl
	}
}

func WithAlerter(a Alerter) DispatcherOption {
	return func(d *Dispatcher) { d.alerter = a }
}

func NewDispatcher(groups GroupStore, selector NumberSelector, recorder ClickRecorder, metrics *Metrics, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		groups:   groups,
		selector: selector,
		recorder: recorder,
		metrics:  metrics,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Resolve returns the WhatsApp URI the visitor is sent to. Recording the
// click is best effort and never fails the call.
func (d *Dispatcher) Resolve(ctx context.Context, slug string, meta types.ClickMetadata) (string, error) {
	group, err := d.LookupGroup(ctx, slug)
	if err != nil {
		d.outcome(err)
		return "", err
	}

	number, err := d.selector.SelectNext(ctx, group.ID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoActiveNumbers):
			slog.Warn("group has no active numbers", "group_id", group.ID, "slug", slug)
			if d.alerter != nil {
				d.alerter.NoActiveNumbers(ctx, *group)
			}
		case errors.Is(err, ErrGroupNotFound):
			// deleted between lookup and selection
			d.invalidate(ctx, slug)
		default:
			slog.Error("number selection failed", "group_id", group.ID, "slug", slug, "error", err)
		}
		d.outcome(err)
		return "", err
	}

	if ctx.Err() != nil {
		slog.Warn("request canceled after selection, click not recorded", "group_id", group.ID, "number_id", number.ID)
	} else if err := d.recorder.Record(ctx, group.ID, number.ID, meta); err != nil {
		slog.Error("recording failure", "group_id", group.ID, "number_id", number.ID, "error", err)
	}

	d.outcome(nil)
	return BuildTargetURI(number.Phone, number.Message(*group)), nil
}

// LookupGroup finds the active group behind a slug.
func (d *Dispatcher) LookupGroup(ctx context.Context, slug string) (*types.Group, error) {
	if slug == "" {
		return nil, ErrGroupNotFound
	}

	if d.cache != nil {
		g, err := d.cache.Get(ctx, slug)
		if err == nil {
			if !g.IsActive {
				return nil, ErrGroupNotFound
			}
			return g, nil
		}
		if !errors.Is(err, redis.Nil) {
			slog.Warn("redis error", "error", err)
		}
	}

	g, err := d.groups.GroupBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			slog.Debug("group not found", "slug", slug)
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("lookup group %q: %w", slug, err)
	}

	if d.cache != nil {
		if err := d.cache.Set(ctx, g, d.cacheTTL); err != nil {
			slog.Warn("failed to warm up cache", "error", err)
		}
	}

	if !g.IsActive {
		slog.Debug("group inactive", "slug", slug)
		return nil, ErrGroupNotFound
	}
	return g, nil
}

func (d *Dispatcher) invalidate(ctx context.Context, slug string) {
	if d.cache == nil {
		return
	}
	if err := d.cache.Delete(ctx, slug); err != nil {
		slog.Warn("failed to invalidate cached group", "slug", slug, "error", err)
	}
}

func (d *Dispatcher) outcome(err error) {
	label := "dispatched"
	if err != nil {
		label = Reason(err)
	}
	d.metrics.Redirects.WithLabelValues(label).Inc()
}

// BuildTargetURI renders https://wa.me/<phone>?text=<message>. Spaces are
// encoded as %20, which WhatsApp clients handle more reliably than '+'.
func BuildTargetURI(phone, message string) string {
	uri := waBaseURL + phone
	if message == "" {
		return uri
	}
	return uri + "?text=" + strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}
