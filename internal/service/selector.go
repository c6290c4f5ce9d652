package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"warotator/internal/database"
	"warotator/internal/types"

	"github.com/google/uuid"
)

// Selector hands out a group's numbers in least-recently-used order. It
// keeps no state of its own: every call goes to the NumberStore, whose
// transaction is what serializes concurrent selections.
type Selector struct {
	numbers NumberStore
	metrics *Metrics
	now     func() time.Time
}

func NewSelector(numbers NumberStore, metrics *Metrics) *Selector {
	return &Selector{
		numbers: numbers,
		metrics: metrics,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// SelectNext returns the next number of the group and marks it used. A
// lock conflict is retried once before it is reported.
func (s *Selector) SelectNext(ctx context.Context, groupID uuid.UUID) (types.WhatsAppNumber, error) {
	start := time.Now()
	defer func() { s.metrics.SelectionDuration.Observe(time.Since(start).Seconds()) }()

	n, err := s.numbers.SelectNext(ctx, groupID, s.now())
	if errors.Is(err, database.ErrSelectionConflict) && ctx.Err() == nil {
		slog.Warn("number selection conflict, retrying", "group_id", groupID, "error", err)
		s.metrics.SelectionRetries.Inc()
		n, err = s.numbers.SelectNext(ctx, groupID, s.now())
	}

	switch {
	case err == nil:
		return *n, nil
	case errors.Is(err, database.ErrNoActiveNumbers):
		return types.WhatsAppNumber{}, ErrNoActiveNumbers
	case errors.Is(err, database.ErrNotFound), errors.Is(err, database.ErrGroupInactive):
		return types.WhatsAppNumber{}, ErrGroupNotFound
	case errors.Is(err, database.ErrSelectionConflict):
		return types.WhatsAppNumber{}, fmt.Errorf("%w: %w", ErrSelectionConflict, err)
	default:
		return types.WhatsAppNumber{}, fmt.Errorf("select next number: %w", err)
	}
}

// Upcoming lists the active numbers of a group in the order they will be
// handed out. It does not touch rotation state.
func (s *Selector) Upcoming(ctx context.Context, groupID uuid.UUID) ([]types.WhatsAppNumber, error) {
	return s.numbers.ActiveNumbers(ctx, groupID)
}
