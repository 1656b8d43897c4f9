package create_booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PGS-BookingService/internal/domain"
	employeeRepo "github.com/m04kA/PGS-BookingService/internal/infra/storage/employee"
	serviceRepo "github.com/m04kA/PGS-BookingService/internal/infra/storage/service"
	slotRepo "github.com/m04kA/PGS-BookingService/internal/infra/storage/slot"
	createBooking "github.com/m04kA/PGS-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/PGS-BookingService/pkg/ptr"
	"github.com/m04kA/PGS-BookingService/pkg/types"
)

// ---- mocks -----------------------------------------------------------------

type mockSlotRepo struct {
	findByDate     func(ctx context.Context, date time.Time, bookedOnly bool) ([]*domain.AvailableSlot, error)
	findByDateTime func(ctx context.Context, date time.Time, t types.TimeString) (*domain.AvailableSlot, error)
	create         func(ctx context.Context, slot *domain.AvailableSlot) (*domain.AvailableSlot, error)
	markBooked     func(ctx context.Context, id int64, userID int64) error
}

func (m *mockSlotRepo) FindByDate(ctx context.Context, date time.Time, bookedOnly bool) ([]*domain.AvailableSlot, error) {
	return m.findByDate(ctx, date, bookedOnly)
}

func (m *mockSlotRepo) FindByDateTime(ctx context.Context, date time.Time, t types.TimeString) (*domain.AvailableSlot, error) {
	return m.findByDateTime(ctx, date, t)
}

func (m *mockSlotRepo) Create(ctx context.Context, slot *domain.AvailableSlot) (*domain.AvailableSlot, error) {
	return m.create(ctx, slot)
}

func (m *mockSlotRepo) MarkBooked(ctx context.Context, id int64, userID int64) error {
	return m.markBooked(ctx, id, userID)
}

type mockBookingRepo struct {
	create func(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	return m.create(ctx, b)
}

type mockServiceRepo struct {
	getByID func(ctx context.Context, id int64) (*domain.Service, error)
}

func (m *mockServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	return m.getByID(ctx, id)
}

type mockEmployeeRepo struct {
	getByID func(ctx context.Context, id int64) (*domain.Employee, error)
}

func (m *mockEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return m.getByID(ctx, id)
}

// mockTxManager выполняет функцию без транзакции
type mockTxManager struct {
	calls int
}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// compile-time checks
var (
	_ createBooking.SlotRepository     = (*mockSlotRepo)(nil)
	_ createBooking.BookingRepository  = (*mockBookingRepo)(nil)
	_ createBooking.ServiceRepository  = (*mockServiceRepo)(nil)
	_ createBooking.EmployeeRepository = (*mockEmployeeRepo)(nil)
	_ createBooking.TransactionManager = (*mockTxManager)(nil)
)

// ---- fixtures --------------------------------------------------------------

var testDate = time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)

func groomingService(durationMinutes int) *domain.Service {
	return &domain.Service{
		ID:              1,
		ServiceType:     "Полный груминг",
		Price:           3500,
		DurationMinutes: durationMinutes,
	}
}

func bookedSlot(id int64, t string) *domain.AvailableSlot {
	return &domain.AvailableSlot{
		ID:       id,
		Date:     testDate,
		Time:     types.TimeString(t),
		IsBooked: true,
		UserID:   ptr.Ptr(int64(99)),
	}
}

func validRequest(startTime string) *createBooking.Request {
	return &createBooking.Request{
		UserID:     7,
		Date:       testDate,
		StartTime:  types.TimeString(startTime),
		ServiceID:  1,
		EmployeeID: 2,
	}
}

type env struct {
	slots     *mockSlotRepo
	bookings  *mockBookingRepo
	services  *mockServiceRepo
	employees *mockEmployeeRepo
	tx        *mockTxManager
	uc        *createBooking.UseCase
}

// newEnv собирает use case с дефолтными моками: услуга на 60 минут,
// сотрудник существует, занятых слотов нет, создание проходит успешно
func newEnv(t *testing.T) *env {
	t.Helper()

	e := &env{
		slots: &mockSlotRepo{
			findByDate: func(_ context.Context, _ time.Time, bookedOnly bool) ([]*domain.AvailableSlot, error) {
				assert.True(t, bookedOnly)
				return nil, nil
			},
			findByDateTime: func(_ context.Context, _ time.Time, _ types.TimeString) (*domain.AvailableSlot, error) {
				return nil, slotRepo.ErrSlotNotFound
			},
			create: func(_ context.Context, slot *domain.AvailableSlot) (*domain.AvailableSlot, error) {
				slot.ID = 10
				return slot, nil
			},
			markBooked: func(_ context.Context, _ int64, _ int64) error {
				t.Fatal("MarkBooked should not be called")
				return nil
			},
		},
		bookings: &mockBookingRepo{
			create: func(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
				created := *b
				created.ID = 100
				return &created, nil
			},
		},
		services: &mockServiceRepo{
			getByID: func(_ context.Context, id int64) (*domain.Service, error) {
				return groomingService(60), nil
			},
		},
		employees: &mockEmployeeRepo{
			getByID: func(_ context.Context, id int64) (*domain.Employee, error) {
				return &domain.Employee{ID: id, Name: "Анна Соколова"}, nil
			},
		},
		tx: &mockTxManager{},
	}

	e.uc = createBooking.NewUseCase(e.slots, e.bookings, e.services, e.employees, e.tx, noopLogger{})
	return e
}

// ---- успешное бронирование -------------------------------------------------

func TestExecute_NoExistingSlots_CreatesSlotAndBooking(t *testing.T) {
	e := newEnv(t)

	var createdSlot *domain.AvailableSlot
	e.slots.create = func(_ context.Context, slot *domain.AvailableSlot) (*domain.AvailableSlot, error) {
		createdSlot = slot
		slot.ID = 10
		return slot, nil
	}

	resp, err := e.uc.Execute(context.Background(), validRequest("10:00:00"))
	require.NoError(t, err)

	require.NotNil(t, createdSlot)
	assert.True(t, createdSlot.IsBooked)
	require.NotNil(t, createdSlot.UserID)
	assert.Equal(t, int64(7), *createdSlot.UserID)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, int64(10), resp.SlotID)
	assert.Equal(t, types.TimeString("10:00:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("11:00:00"), resp.EndTime)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, 1, e.tx.calls)
}

func TestExecute_ReusesExistingUnbookedSlot(t *testing.T) {
	e := newEnv(t)

	existing := &domain.AvailableSlot{ID: 42, Date: testDate, Time: "10:00:00", IsBooked: false}
	e.slots.findByDateTime = func(_ context.Context, _ time.Time, _ types.TimeString) (*domain.AvailableSlot, error) {
		return existing, nil
	}

	var markedID, markedUser int64
	e.slots.markBooked = func(_ context.Context, id int64, userID int64) error {
		markedID, markedUser = id, userID
		return nil
	}
	e.slots.create = func(_ context.Context, _ *domain.AvailableSlot) (*domain.AvailableSlot, error) {
		t.Fatal("Create should not be called when a slot row already exists")
		return nil, nil
	}

	resp, err := e.uc.Execute(context.Background(), validRequest("10:00:00"))
	require.NoError(t, err)

	assert.Equal(t, int64(42), markedID)
	assert.Equal(t, int64(7), markedUser)
	assert.Equal(t, int64(42), resp.SlotID)
}

func TestExecute_AdjacentSlot_Succeeds(t *testing.T) {
	// Занят 10:00-11:00; запрос ровно на 11:00 не пересекается и не попадает
	// под проверку интервала
	e := newEnv(t)
	e.slots.findByDate = func(_ context.Context, _ time.Time, _ bool) ([]*domain.AvailableSlot, error) {
		return []*domain.AvailableSlot{bookedSlot(1, "10:00:00")}, nil
	}

	resp, err := e.uc.Execute(context.Background(), validRequest("11:00:00"))
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("12:00:00"), resp.EndTime)
}

func TestExecute_LaterThanBookedWindow_Succeeds(t *testing.T) {
	// Занят 10:00-11:00; запрос на 11:15 проходит обе проверки
	e := newEnv(t)
	e.slots.findByDate = func(_ context.Context, _ time.Time, _ bool) ([]*domain.AvailableSlot, error) {
		return []*domain.AvailableSlot{bookedSlot(1, "10:00:00")}, nil
	}

	_, err := e.uc.Execute(context.Background(), validRequest("11:15:00"))
	require.NoError(t, err)
}

// ---- конфликты -------------------------------------------------------------

func TestExecute_StartInsideBookedWindow_SlotOccupied(t *testing.T) {
	// Занят 10:00-11:00; запрос на 10:30 попадает внутрь окна
	e := newEnv(t)
	e.slots.findByDate = func(_ context.Context, _ time.Time, _ bool) ([]*domain.AvailableSlot, error) {
		return []*domain.AvailableSlot{bookedSlot(1, "10:00:00")}, nil
	}

	_, err := e.uc.Execute(context.Background(), validRequest("10:30:00"))
	assert.ErrorIs(t, err, createBooking.ErrSlotOccupied)
}

func TestExecute_ExactSameTime_SlotOccupied(t *testing.T) {
	e := newEnv(t)
	e.slots.findByDate = func(_ context.Context, _ time.Time, _ bool) ([]*domain.AvailableSlot, error) {
		return []*domain.AvailableSlot{bookedSlot(1, "10:00:00")}, nil
	}

	_, err := e.uc.Execute(context.Background(), validRequest("10:00:00"))
	assert.ErrorIs(t, err, createBooking.ErrSlotOccupied)
}

func TestExecute_EarlierThanBookedSlot_InsufficientGap(t *testing.T) {
	// Занят 11:00-12:00; запрос на 10:30 не пересекает окно,
	// но окно занятого слота ещё не истекло к его началу
	e := newEnv(t)
	e.slots.findByDate = func(_ context.Context, _ time.Time, _ bool) ([]*domain.AvailableSlot, error) {
		return []*domain.AvailableSlot{bookedSlot(1, "11:00:00")}, nil
	}

	_, err := e.uc.Execute(context.Background(), validRequest("10:30:00"))
	assert.ErrorIs(t, err, createBooking.ErrInsufficientGap)
}

func TestExecute_OccupiedCheckedBeforeGap(t *testing.T) {
	// Запрос пересекает одно окно и конфликтует по интервалу с другим:
	// приоритет у SlotOccupied
	e := newEnv(t)
	e.slots.findByDate = func(_ context.Context, _ time.Time, _ bool) ([]*domain.AvailableSlot, error) {
		return []*domain.AvailableSlot{
			bookedSlot(1, "12:00:00"),
			bookedSlot(2, "10:00:00"),
		}, nil
	}

	_, err := e.uc.Execute(context.Background(), validRequest("10:30:00"))
	assert.ErrorIs(t, err, createBooking.ErrSlotOccupied)
}

func TestExecute_UnbookedSlotsIgnoredInChecks(t *testing.T) {
	e := newEnv(t)
	free := &domain.AvailableSlot{ID: 5, Date: testDate, Time: "10:00:00", IsBooked: false}
	e.slots.findByDate = func(_ context.Context, _ time.Time, _ bool) ([]*domain.AvailableSlot, error) {
		return []*domain.AvailableSlot{free}, nil
	}
	e.slots.findByDateTime = func(_ context.Context, _ time.Time, _ types.TimeString) (*domain.AvailableSlot, error) {
		return free, nil
	}
	e.slots.markBooked = func(_ context.Context, id int64, _ int64) error {
		assert.Equal(t, int64(5), id)
		return nil
	}

	_, err := e.uc.Execute(context.Background(), validRequest("10:00:00"))
	require.NoError(t, err)
}

func TestExecute_ConcurrentInsert_DuplicateMapsToSlotOccupied(t *testing.T) {
	// Конкурентный запрос успел вставить слот между проверкой и вставкой:
	// нарушение уникального индекса трактуется как занятый слот
	e := newEnv(t)
	e.slots.create = func(_ context.Context, _ *domain.AvailableSlot) (*domain.AvailableSlot, error) {
		return nil, slotRepo.ErrDuplicateSlot
	}

	_, err := e.uc.Execute(context.Background(), validRequest("10:00:00"))
	assert.ErrorIs(t, err, createBooking.ErrSlotOccupied)
}

// ---- длительность услуги ---------------------------------------------------

func TestExecute_ServiceDurationDrivesConflictWindow(t *testing.T) {
	// Услуга на 90 минут: занятый 10:00 блокирует 11:15, хотя при 60 минутах
	// этот запрос прошёл бы
	e := newEnv(t)
	e.services.getByID = func(_ context.Context, _ int64) (*domain.Service, error) {
		return groomingService(90), nil
	}
	e.slots.findByDate = func(_ context.Context, _ time.Time, _ bool) ([]*domain.AvailableSlot, error) {
		return []*domain.AvailableSlot{bookedSlot(1, "10:00:00")}, nil
	}

	_, err := e.uc.Execute(context.Background(), validRequest("11:15:00"))
	assert.ErrorIs(t, err, createBooking.ErrSlotOccupied)
}

func TestExecute_ZeroDurationFallsBackToDefault(t *testing.T) {
	e := newEnv(t)
	e.services.getByID = func(_ context.Context, _ int64) (*domain.Service, error) {
		return groomingService(0), nil
	}

	resp, err := e.uc.Execute(context.Background(), validRequest("10:00:00"))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultServiceDurationMinutes, resp.DurationMinutes)
	assert.Equal(t, types.TimeString("11:00:00"), resp.EndTime)
}

func TestExecute_WindowCrossesMidnight_InvalidTimeSlot(t *testing.T) {
	e := newEnv(t)
	e.services.getByID = func(_ context.Context, _ int64) (*domain.Service, error) {
		return groomingService(120), nil
	}

	_, err := e.uc.Execute(context.Background(), validRequest("23:30:00"))
	assert.ErrorIs(t, err, createBooking.ErrInvalidTimeSlot)
}

// ---- валидация и справочные ошибки -----------------------------------------

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *createBooking.Request)
		wantErr error
	}{
		{
			name:    "zero user id",
			mutate:  func(req *createBooking.Request) { req.UserID = 0 },
			wantErr: createBooking.ErrInvalidInput,
		},
		{
			name:    "zero service id",
			mutate:  func(req *createBooking.Request) { req.ServiceID = 0 },
			wantErr: createBooking.ErrInvalidInput,
		},
		{
			name:    "zero employee id",
			mutate:  func(req *createBooking.Request) { req.EmployeeID = -1 },
			wantErr: createBooking.ErrInvalidInput,
		},
		{
			name:    "missing date",
			mutate:  func(req *createBooking.Request) { req.Date = time.Time{} },
			wantErr: createBooking.ErrInvalidInput,
		},
		{
			name:    "missing start time",
			mutate:  func(req *createBooking.Request) { req.StartTime = "" },
			wantErr: createBooking.ErrInvalidInput,
		},
		{
			name:    "malformed start time",
			mutate:  func(req *createBooking.Request) { req.StartTime = "25:99:00" },
			wantErr: createBooking.ErrInvalidInput,
		},
		{
			name:    "negative dog weight",
			mutate:  func(req *createBooking.Request) { req.DogWeight = ptr.Ptr(-3.5) },
			wantErr: createBooking.ErrInvalidInput,
		},
		{
			name:    "date in the past",
			mutate:  func(req *createBooking.Request) { req.Date = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC) },
			wantErr: createBooking.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)
			req := validRequest("10:00:00")
			tt.mutate(req)

			_, err := e.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, e.tx.calls)
		})
	}
}

func TestExecute_ServiceNotFound(t *testing.T) {
	e := newEnv(t)
	e.services.getByID = func(_ context.Context, _ int64) (*domain.Service, error) {
		return nil, serviceRepo.ErrServiceNotFound
	}

	_, err := e.uc.Execute(context.Background(), validRequest("10:00:00"))
	assert.ErrorIs(t, err, createBooking.ErrServiceNotFound)
}

func TestExecute_EmployeeNotFound(t *testing.T) {
	e := newEnv(t)
	e.employees.getByID = func(_ context.Context, _ int64) (*domain.Employee, error) {
		return nil, employeeRepo.ErrEmployeeNotFound
	}

	_, err := e.uc.Execute(context.Background(), validRequest("10:00:00"))
	assert.ErrorIs(t, err, createBooking.ErrEmployeeNotFound)
}

func TestExecute_BookingDetailsPropagated(t *testing.T) {
	e := newEnv(t)

	var captured *domain.Booking
	e.bookings.create = func(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
		captured = b
		created := *b
		created.ID = 100
		return &created, nil
	}

	req := validRequest("10:00:00")
	req.DogBreed = ptr.Ptr("Шпиц")
	req.DogWeight = ptr.Ptr(4.2)

	resp, err := e.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, int64(7), captured.UserID)
	assert.Equal(t, int64(10), captured.SlotID)
	assert.Equal(t, int64(1), captured.ServiceID)
	assert.Equal(t, int64(2), captured.EmployeeID)
	require.NotNil(t, resp.DogBreed)
	assert.Equal(t, "Шпиц", *resp.DogBreed)
	require.NotNil(t, resp.DogWeight)
	assert.Equal(t, 4.2, *resp.DogWeight)
}
