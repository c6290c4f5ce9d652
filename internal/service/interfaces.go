package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"warotator/internal/types"

	"github.com/google/uuid"
)

type GroupStore interface {
	GroupBySlug(ctx context.Context, slug string) (*types.Group, error)
}

type GroupCache interface {
	Get(ctx context.Context, slug string) (*types.Group, error)
	Set(ctx context.Context, group *types.Group, expiration time.Duration) error
	Delete(ctx context.Context, slug string) error
}

// NumberStore is the NumberPool: the durable rotation state of each group.
type NumberStore interface {
	ActiveNumbers(ctx context.Context, groupID uuid.UUID) ([]types.WhatsAppNumber, error)
	SelectNext(ctx context.Context, groupID uuid.UUID, now time.Time) (*types.WhatsAppNumber, error)
}

type NumberSelector interface {
	SelectNext(ctx context.Context, groupID uuid.UUID) (types.WhatsAppNumber, error)
}

type ClickRecorder interface {
	Record(ctx context.Context, groupID, numberID uuid.UUID, meta types.ClickMetadata) error
}

type ClickSink interface {
	Name() string
	InsertClicks(ctx context.Context, clicks []types.ClickEvent) error
}

type Enricher interface {
	Enrich(c *types.ClickEvent)
}

type Alerter interface {
	NoActiveNumbers(ctx context.Context, group types.Group)
}

type StatsStore interface {
	DailyCounts(ctx context.Context, f types.StatsFilter) ([]types.DailyCount, error)
	GroupCounts(ctx context.Context, f types.StatsFilter, limit int) ([]types.GroupCount, error)
	DimensionCounts(ctx context.Context, dim types.Dimension, f types.StatsFilter) ([]types.DimensionCount, error)
	UTMCampaignCounts(ctx context.Context, f types.StatsFilter) ([]types.UTMCampaignCount, error)
}

type AdminStore interface {
	GroupByID(ctx context.Context, id uuid.UUID) (*types.Group, error)
	CreateGroup(ctx context.Context, g *types.Group) error
	UpdateGroup(ctx context.Context, g *types.Group) error
	DeleteGroup(ctx context.Context, id uuid.UUID) error
	ListGroups(ctx context.Context) ([]types.GroupSummary, error)

	NumberByID(ctx context.Context, id uuid.UUID) (*types.WhatsAppNumber, error)
	ListNumbers(ctx context.Context, groupID uuid.UUID) ([]types.WhatsAppNumber, error)
	CreateNumber(ctx context.Context, n *types.WhatsAppNumber) error
	UpdateNumber(ctx context.Context, n *types.WhatsAppNumber) error
	DeleteNumber(ctx context.Context, id uuid.UUID) error
}
