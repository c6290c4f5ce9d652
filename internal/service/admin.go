package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"
	"unicode"

	"warotator/internal/database"
	"warotator/internal/types"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// slugAttempts bounds how many generated slugs CreateGroup tries.
const slugAttempts = 5

var slugPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

type CreateGroupRequest struct {
	Slug           string `json:"slug" validate:"omitempty,max=64,slug"`
	Name           string `json:"name" validate:"required,max=255"`
	DefaultMessage string `json:"default_message" validate:"max=1000"`
	IsActive       *bool  `json:"is_active,omitempty"`
}

// UpdateGroupRequest has no slug: a published link never changes.
type UpdateGroupRequest struct {
	Name           *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	DefaultMessage *string `json:"default_message,omitempty" validate:"omitempty,max=1000"`
}

type CreateNumberRequest struct {
	Phone         string  `json:"phone" validate:"required,phone"`
	Name          *string `json:"name,omitempty" validate:"omitempty,max=255"`
	CustomMessage *string `json:"custom_message,omitempty" validate:"omitempty,max=1000"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

type UpdateNumberRequest struct {
	Phone         *string `json:"phone,omitempty" validate:"omitempty,phone"`
	Name          *string `json:"name,omitempty" validate:"omitempty,max=255"`
	CustomMessage *string `json:"custom_message,omitempty" validate:"omitempty,max=1000"`
}

// Admin is the entry point of the admin collaborator. Its writes are the
// only ones besides rotation that touch groups and numbers, so it also
// keeps the slug cache honest.
type Admin struct {
	store     AdminStore
	selector  *Selector
	cache     GroupCache
	validator *validator.Validate
	now       func() time.Time
}

func NewAdmin(store AdminStore, selector *Selector, cache GroupCache) *Admin {
	v := validator.New()
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		n := len(NormalizePhone(fl.Field().String()))
		return n >= 8 && n <= 15
	})
	return &Admin{
		store:     store,
		selector:  selector,
		cache:     cache,
		validator: v,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// NormalizePhone keeps only the digits, the form wa.me expects.
func NormalizePhone(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			return r
		}
		return -1
	}, raw)
}

func (a *Admin) validate(req any) error {
	if err := a.validator.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, e := range verrs {
				fields = append(fields, fmt.Sprintf("%s failed on %s", e.Field(), e.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(fields, "; "))
		}
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

func (a *Admin) CreateGroup(ctx context.Context, req CreateGroupRequest) (*types.Group, error) {
	if err := a.validate(req); err != nil {
		return nil, err
	}
	generated := req.Slug == ""
	slug := req.Slug
	if generated {
		slug = generateSlug()
	}
	now := a.now()
	g := &types.Group{
		ID:             uuid.New(),
		Slug:           slug,
		Name:           strings.TrimSpace(req.Name),
		DefaultMessage: req.DefaultMessage,
		IsActive:       req.IsActive == nil || *req.IsActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	err := a.store.CreateGroup(ctx, g)
	for attempt := 1; generated && errors.Is(err, database.ErrConflict) && attempt < slugAttempts; attempt++ {
		slog.Debug("generated slug taken, retrying", "slug", g.Slug)
		g.Slug = generateSlug()
		err = a.store.CreateGroup(ctx, g)
	}
	if err != nil {
		return nil, err
	}
	// a stale cached entry could exist for a slug deleted and now reused
	a.invalidate(ctx, g.Slug)
	slog.Info("group created", "group_id", g.ID, "slug", g.Slug)
	return g, nil
}

func (a *Admin) UpdateGroup(ctx context.Context, id uuid.UUID, req UpdateGroupRequest) (*types.Group, error) {
	if err := a.validate(req); err != nil {
		return nil, err
	}
	g, err := a.store.GroupByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		g.Name = strings.TrimSpace(*req.Name)
	}
	if req.DefaultMessage != nil {
		g.DefaultMessage = *req.DefaultMessage
	}
	g.UpdatedAt = a.now()
	if err := a.store.UpdateGroup(ctx, g); err != nil {
		return nil, err
	}
	a.invalidate(ctx, g.Slug)
	return g, nil
}

func (a *Admin) SetGroupActive(ctx context.Context, id uuid.UUID, active bool) (*types.Group, error) {
	g, err := a.store.GroupByID(ctx, id)
	if err != nil {
		return nil, err
	}
	g.IsActive = active
	g.UpdatedAt = a.now()
	if err := a.store.UpdateGroup(ctx, g); err != nil {
		return nil, err
	}
	a.invalidate(ctx, g.Slug)
	slog.Info("group active flag changed", "group_id", g.ID, "is_active", active)
	return g, nil
}

// DeleteGroup fails with database.ErrInUse once the group has clicks;
// deactivate it instead so its analytics survive.
func (a *Admin) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	g, err := a.store.GroupByID(ctx, id)
	if err != nil {
		return err
	}
	if err := a.store.DeleteGroup(ctx, id); err != nil {
		return err
	}
	a.invalidate(ctx, g.Slug)
	slog.Info("group deleted", "group_id", id, "slug", g.Slug)
	return nil
}

func (a *Admin) ListGroups(ctx context.Context) ([]types.GroupSummary, error) {
	return a.store.ListGroups(ctx)
}

func (a *Admin) CreateNumber(ctx context.Context, groupID uuid.UUID, req CreateNumberRequest) (*types.WhatsAppNumber, error) {
	if err := a.validate(req); err != nil {
		return nil, err
	}
	now := a.now()
	n := &types.WhatsAppNumber{
		ID:            uuid.New(),
		GroupID:       groupID,
		Phone:         NormalizePhone(req.Phone),
		Name:          req.Name,
		CustomMessage: req.CustomMessage,
		IsActive:      req.IsActive == nil || *req.IsActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := a.store.CreateNumber(ctx, n); err != nil {
		return nil, err
	}
	slog.Info("number created", "number_id", n.ID, "group_id", groupID)
	return n, nil
}

func (a *Admin) UpdateNumber(ctx context.Context, id uuid.UUID, req UpdateNumberRequest) (*types.WhatsAppNumber, error) {
	if err := a.validate(req); err != nil {
		return nil, err
	}
	n, err := a.store.NumberByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Phone != nil {
		n.Phone = NormalizePhone(*req.Phone)
	}
	if req.Name != nil {
		n.Name = types.Optional(*req.Name)
	}
	if req.CustomMessage != nil {
		n.CustomMessage = types.Optional(*req.CustomMessage)
	}
	n.UpdatedAt = a.now()
	if err := a.store.UpdateNumber(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (a *Admin) SetNumberActive(ctx context.Context, id uuid.UUID, active bool) (*types.WhatsAppNumber, error) {
	n, err := a.store.NumberByID(ctx, id)
	if err != nil {
		return nil, err
	}
	n.IsActive = active
	n.UpdatedAt = a.now()
	if err := a.store.UpdateNumber(ctx, n); err != nil {
		return nil, err
	}
	slog.Info("number active flag changed", "number_id", id, "is_active", active)
	return n, nil
}

func (a *Admin) DeleteNumber(ctx context.Context, id uuid.UUID) error {
	return a.store.DeleteNumber(ctx, id)
}

func (a *Admin) ListNumbers(ctx context.Context, groupID uuid.UUID) ([]types.WhatsAppNumber, error) {
	if _, err := a.store.GroupByID(ctx, groupID); err != nil {
		return nil, err
	}
	return a.store.ListNumbers(ctx, groupID)
}

// Rotation shows the order in which the group's active numbers will be
// handed out next.
func (a *Admin) Rotation(ctx context.Context, groupID uuid.UUID) ([]types.WhatsAppNumber, error) {
	if _, err := a.store.GroupByID(ctx, groupID); err != nil {
		return nil, err
	}
	return a.selector.Upcoming(ctx, groupID)
}

func (a *Admin) invalidate(ctx context.Context, slug string) {
	if a.cache == nil {
		return
	}
	if err := a.cache.Delete(ctx, slug); err != nil {
		slog.Warn("failed to invalidate cached group", "slug", slug, "error", err)
	}
}
