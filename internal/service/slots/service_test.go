package slots_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PGS-BookingService/internal/domain"
	slotRepo "github.com/m04kA/PGS-BookingService/internal/infra/storage/slot"
	"github.com/m04kA/PGS-BookingService/internal/service/slots"
	"github.com/m04kA/PGS-BookingService/internal/service/slots/models"
	"github.com/m04kA/PGS-BookingService/pkg/ptr"
)

type mockSlotRepo struct {
	create func(ctx context.Context, slot *domain.AvailableSlot) (*domain.AvailableSlot, error)
	list   func(ctx context.Context, filter domain.SlotsFilter) ([]*domain.AvailableSlot, error)
}

func (m *mockSlotRepo) Create(ctx context.Context, slot *domain.AvailableSlot) (*domain.AvailableSlot, error) {
	return m.create(ctx, slot)
}

func (m *mockSlotRepo) List(ctx context.Context, filter domain.SlotsFilter) ([]*domain.AvailableSlot, error) {
	return m.list(ctx, filter)
}

type noopLogger struct{}

func (noopLogger) Info(format string, args ...any)  {}
func (noopLogger) Warn(format string, args ...any)  {}
func (noopLogger) Error(format string, args ...any) {}

func TestCreate_PublishesFreeSlot(t *testing.T) {
	var created *domain.AvailableSlot
	repo := &mockSlotRepo{
		create: func(_ context.Context, slot *domain.AvailableSlot) (*domain.AvailableSlot, error) {
			created = slot
			slot.ID = 1
			return slot, nil
		},
	}
	svc := slots.NewService(repo, noopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateSlotRequest{
		Date: "2030-06-01",
		Time: "10:00",
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.False(t, created.IsBooked)
	assert.Nil(t, created.UserID)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2030-06-01", resp.Date)
	assert.Equal(t, "10:00:00", resp.Time)
}

func TestCreate_DuplicateMapsToSlotExists(t *testing.T) {
	repo := &mockSlotRepo{
		create: func(_ context.Context, _ *domain.AvailableSlot) (*domain.AvailableSlot, error) {
			return nil, slotRepo.ErrDuplicateSlot
		},
	}
	svc := slots.NewService(repo, noopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateSlotRequest{Date: "2030-06-01", Time: "10:00"})
	assert.ErrorIs(t, err, slots.ErrSlotExists)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateSlotRequest
	}{
		{name: "missing date", req: models.CreateSlotRequest{Time: "10:00"}},
		{name: "missing time", req: models.CreateSlotRequest{Date: "2030-06-01"}},
		{name: "bad date", req: models.CreateSlotRequest{Date: "01.06.2030", Time: "10:00"}},
		{name: "bad time", req: models.CreateSlotRequest{Date: "2030-06-01", Time: "25:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockSlotRepo{
				create: func(_ context.Context, _ *domain.AvailableSlot) (*domain.AvailableSlot, error) {
					t.Fatal("Create should not be called")
					return nil, nil
				},
			}
			svc := slots.NewService(repo, noopLogger{})

			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, slots.ErrInvalidInput)
		})
	}
}

func TestList_PassesFilters(t *testing.T) {
	repo := &mockSlotRepo{
		list: func(_ context.Context, filter domain.SlotsFilter) ([]*domain.AvailableSlot, error) {
			require.NotNil(t, filter.Date)
			assert.Equal(t, time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC), *filter.Date)
			assert.True(t, filter.BookedOnly)
			return []*domain.AvailableSlot{
				{ID: 1, Date: *filter.Date, Time: "10:00:00", IsBooked: true, UserID: ptr.Ptr(int64(7))},
			}, nil
		},
	}
	svc := slots.NewService(repo, noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListSlotsRequest{
		Date:       ptr.Ptr("2030-06-01"),
		BookedOnly: true,
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.True(t, resp.Slots[0].IsBooked)
}

func TestList_BadDateFilter(t *testing.T) {
	repo := &mockSlotRepo{}
	svc := slots.NewService(repo, noopLogger{})

	_, err := svc.List(context.Background(), &models.ListSlotsRequest{Date: ptr.Ptr("garbage")})
	assert.ErrorIs(t, err, slots.ErrInvalidInput)
}
