package timeslot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/LRB-BookingService/internal/domain"
	"github.com/m04kA/LRB-BookingService/pkg/dbmetrics"
	"github.com/m04kA/LRB-BookingService/pkg/psqlbuilder"
	"github.com/m04kA/LRB-BookingService/pkg/types"
)

// Repository репозиторий каталога временных слотов
// Каталог заполняется миграцией и только читается
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByStartTime находит слот по метке времени начала
// Сравнение выполняется по точному совпадению с меткой каталога,
// поэтому вызывающая сторона обязана нормализовать формат заранее
func (r *Repository) GetByStartTime(ctx context.Context, start types.TimeLabel) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "start_time", "end_time").
		From("time_slots").
		Where(squirrel.Eq{"start_time": start.String()}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStartTime - build select query: %v", ErrBuildQuery, err)
	}

	var slot domain.TimeSlot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&slot.StartTime,
		&slot.EndTime,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStartTime - scan slot: %v", ErrScanRow, err)
	}

	return &slot, nil
}

// GetAll возвращает весь каталог слотов в порядке их следования в течение дня
// Порядок id совпадает с порядком посева каталога
func (r *Repository) GetAll(ctx context.Context) ([]domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "start_time", "end_time").
		From("time_slots").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.TimeSlot, 0)
	for rows.Next() {
		var slot domain.TimeSlot
		if err := rows.Scan(&slot.ID, &slot.StartTime, &slot.EndTime); err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan slot: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
