package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"warotator/internal/database"
	"warotator/internal/service/mocks"
	"warotator/internal/types"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}

func TestSelector_SelectNext(t *testing.T) {
	groupID := uuid.New()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	picked := &types.WhatsAppNumber{ID: uuid.New(), GroupID: groupID, Phone: "5511999990001", IsActive: true}

	tests := []struct {
		name    string
		setup   func(m *mocks.MockNumberStore)
		wantErr error
	}{
		{
			name: "returns the least recently used number",
			setup: func(m *mocks.MockNumberStore) {
				m.EXPECT().SelectNext(gomock.Any(), groupID, now).Return(picked, nil)
			},
		},
		{
			name: "retries once after a lock conflict",
			setup: func(m *mocks.MockNumberStore) {
				gomock.InOrder(
					m.EXPECT().SelectNext(gomock.Any(), groupID, now).Return(nil, database.ErrSelectionConflict),
					m.EXPECT().SelectNext(gomock.Any(), groupID, now).Return(picked, nil),
				)
			},
		},
		{
			name: "second conflict is surfaced",
			setup: func(m *mocks.MockNumberStore) {
				m.EXPECT().SelectNext(gomock.Any(), groupID, now).Return(nil, database.ErrSelectionConflict).Times(2)
			},
			wantErr: ErrSelectionConflict,
		},
		{
			name: "no active numbers",
			setup: func(m *mocks.MockNumberStore) {
				m.EXPECT().SelectNext(gomock.Any(), groupID, now).Return(nil, database.ErrNoActiveNumbers)
			},
			wantErr: ErrNoActiveNumbers,
		},
		{
			name: "inactive group",
			setup: func(m *mocks.MockNumberStore) {
				m.EXPECT().SelectNext(gomock.Any(), groupID, now).Return(nil, database.ErrGroupInactive)
			},
			wantErr: ErrGroupNotFound,
		},
		{
			name: "missing group",
			setup: func(m *mocks.MockNumberStore) {
				m.EXPECT().SelectNext(gomock.Any(), groupID, now).Return(nil, database.ErrNotFound)
			},
			wantErr: ErrGroupNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockNumberStore(ctrl)
			tt.setup(store)

			s := NewSelector(store, newTestMetrics())
			s.now = func() time.Time { return now }

			got, err := s.SelectNext(context.Background(), groupID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, *picked, got)
		})
	}
}

func TestSelector_NoRetryAfterCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockNumberStore(ctrl)
	ctx, cancel := context.WithCancel(context.Background())

	store.EXPECT().SelectNext(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, uuid.UUID, time.Time) (*types.WhatsAppNumber, error) {
			cancel()
			return nil, errors.Join(database.ErrSelectionConflict, context.Canceled)
		})

	_, err := NewSelector(store, newTestMetrics()).SelectNext(ctx, uuid.New())
	require.ErrorIs(t, err, ErrSelectionConflict)
}

func TestSelector_UnexpectedErrorIsWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockNumberStore(ctrl)
	boom := errors.New("connection reset")
	store.EXPECT().SelectNext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := NewSelector(store, newTestMetrics()).SelectNext(context.Background(), uuid.New())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "internal-error", Reason(err))
}
