package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/PGS-BookingService/internal/domain"
	"github.com/m04kA/PGS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PGS-BookingService/pkg/psqlbuilder"
	"github.com/m04kA/PGS-BookingService/pkg/types"
)

const uniqueViolation = "23505"

// Repository репозиторий для работы со слотами бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый слот
// Нарушение уникального индекса (date, time) возвращается как ErrDuplicateSlot:
// два конкурентных запроса на один и тот же слот не могут создать две записи
func (r *Repository) Create(ctx context.Context, slot *domain.AvailableSlot) (*domain.AvailableSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("available_slots").
		Columns(
			"slot_date",
			"slot_time",
			"is_booked",
			"user_id",
		).
		Values(
			slot.Date,
			slot.Time,
			slot.IsBooked,
			slot.UserID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateSlot
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return slot, nil
}

// FindByDate получает слоты на дату
// Если bookedOnly = true, возвращаются только занятые слоты
// Внутри транзакции выборка выполняется с FOR UPDATE, чтобы конкурентные
// запросы на бронирование сериализовались на строках этой даты
func (r *Repository) FindByDate(ctx context.Context, date time.Time, bookedOnly bool) ([]*domain.AvailableSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"slot_date",
		"slot_time",
		"is_booked",
		"user_id",
		"created_at",
		"updated_at",
	).
		From("available_slots").
		Where(squirrel.Eq{"slot_date": date}).
		OrderBy("slot_time ASC")

	if bookedOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_booked": true})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// FindByDateTime получает слот на конкретную пару (дата, время)
// Возвращает ErrSlotNotFound, если записи нет
func (r *Repository) FindByDateTime(ctx context.Context, date time.Time, t types.TimeString) (*domain.AvailableSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"slot_date",
		"slot_time",
		"is_booked",
		"user_id",
		"created_at",
		"updated_at",
	).
		From("available_slots").
		Where(squirrel.Eq{"slot_date": date}).
		Where(squirrel.Eq{"slot_time": t})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByDateTime - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.AvailableSlot
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.Date,
		&s.Time,
		&s.IsBooked,
		&s.UserID,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindByDateTime - scan slot: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// GetByID получает слот по идентификатору
// Возвращает ErrSlotNotFound, если записи нет
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AvailableSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slot_date",
		"slot_time",
		"is_booked",
		"user_id",
		"created_at",
		"updated_at",
	).
		From("available_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.AvailableSlot
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.Date,
		&s.Time,
		&s.IsBooked,
		&s.UserID,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// MarkBooked помечает существующий слот занятым указанным пользователем
func (r *Repository) MarkBooked(ctx context.Context, id int64, userID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("available_slots").
		Set("is_booked", true).
		Set("user_id", userID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkBooked - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// List получает слоты с фильтрацией по дате и занятости
// Используется листинговым эндпоинтом /available-dates
func (r *Repository) List(ctx context.Context, filter domain.SlotsFilter) ([]*domain.AvailableSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"slot_date",
		"slot_time",
		"is_booked",
		"user_id",
		"created_at",
		"updated_at",
	).
		From("available_slots").
		OrderBy("slot_date ASC, slot_time ASC")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"slot_date": *filter.Date})
	}
	if filter.BookedOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_booked": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// scanSlots сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.AvailableSlot, error) {
	slots := make([]*domain.AvailableSlot, 0)

	for rows.Next() {
		var s domain.AvailableSlot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.Date,
			&s.Time,
			&s.IsBooked,
			&s.UserID,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time

		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
