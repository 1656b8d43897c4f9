package create_booking_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "github.com/m04kA/PGS-BookingService/internal/api/handlers/create_booking"
	"github.com/m04kA/PGS-BookingService/internal/api/middleware"
	createBooking "github.com/m04kA/PGS-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/PGS-BookingService/pkg/auth"
	"github.com/m04kA/PGS-BookingService/pkg/types"
)

// ---- mocks -----------------------------------------------------------------

type mockUseCase struct {
	execute func(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	return m.execute(ctx, req)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

var _ handler.CreateBookingUseCase = (*mockUseCase)(nil)

// ---- helpers ---------------------------------------------------------------

var tokenManager = auth.NewManager("test-secret", time.Hour)

// newRouter поднимает маршрут POST /api/v1/bookings за auth middleware,
// как он смонтирован в main
func newRouter(uc handler.CreateBookingUseCase) http.Handler {
	h := handler.NewHandler(uc, noopLogger{})

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth(tokenManager, noopLogger{}))
	protected.HandleFunc("/bookings", h.Handle).Methods(http.MethodPost)
	return r
}

func doRequest(t *testing.T, router http.Handler, body string, authorized bool) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if authorized {
		token, err := tokenManager.CreateToken(7, false)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const validBody = `{"date":"2030-06-01","startTime":"10:00","serviceId":1,"employeeId":2,"dogBreed":"Шпиц","dogWeight":4.2}`

func successResponse() *createBooking.Response {
	return &createBooking.Response{
		ID:              100,
		UserID:          7,
		SlotID:          10,
		ServiceID:       1,
		EmployeeID:      2,
		Date:            time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00:00"),
		EndTime:         types.TimeString("11:00:00"),
		ServiceType:     "Полный груминг",
		ServicePrice:    3500,
		DurationMinutes: 60,
	}
}

// ---- tests -----------------------------------------------------------------

func TestHandle_201(t *testing.T) {
	var captured *createBooking.Request
	uc := &mockUseCase{
		execute: func(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
			captured = req
			return successResponse(), nil
		},
	}

	rec := doRequest(t, newRouter(uc), validBody, true)
	require.Equal(t, http.StatusCreated, rec.Code)

	// ID пользователя приходит из токена, а не из тела
	require.NotNil(t, captured)
	assert.Equal(t, int64(7), captured.UserID)
	assert.Equal(t, types.TimeString("10:00:00"), captured.StartTime)

	var resp handler.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, "2030-06-01", resp.Date)
	assert.Equal(t, "11:00:00", resp.EndTime)
}

func TestHandle_401_WithoutToken(t *testing.T) {
	uc := &mockUseCase{
		execute: func(_ context.Context, _ *createBooking.Request) (*createBooking.Response, error) {
			t.Fatal("use case should not be called")
			return nil, nil
		},
	}

	rec := doRequest(t, newRouter(uc), validBody, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_400_InvalidBody(t *testing.T) {
	uc := &mockUseCase{
		execute: func(_ context.Context, _ *createBooking.Request) (*createBooking.Response, error) {
			t.Fatal("use case should not be called")
			return nil, nil
		},
	}

	rec := doRequest(t, newRouter(uc), `{not json`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_400_BadDate(t *testing.T) {
	uc := &mockUseCase{
		execute: func(_ context.Context, _ *createBooking.Request) (*createBooking.Response, error) {
			t.Fatal("use case should not be called")
			return nil, nil
		},
	}

	body := `{"date":"01.06.2030","startTime":"10:00","serviceId":1,"employeeId":2}`
	rec := doRequest(t, newRouter(uc), body, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "slot occupied", err: createBooking.ErrSlotOccupied, wantStatus: http.StatusBadRequest},
		{name: "insufficient gap", err: createBooking.ErrInsufficientGap, wantStatus: http.StatusBadRequest},
		{name: "invalid date", err: createBooking.ErrInvalidDate, wantStatus: http.StatusBadRequest},
		{name: "invalid time slot", err: createBooking.ErrInvalidTimeSlot, wantStatus: http.StatusBadRequest},
		{name: "service not found", err: createBooking.ErrServiceNotFound, wantStatus: http.StatusNotFound},
		{name: "employee not found", err: createBooking.ErrEmployeeNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{
				execute: func(_ context.Context, _ *createBooking.Request) (*createBooking.Response, error) {
					return nil, tt.err
				},
			}

			rec := doRequest(t, newRouter(uc), validBody, true)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var errResp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.NotEmpty(t, errResp["error"])
		})
	}
}
