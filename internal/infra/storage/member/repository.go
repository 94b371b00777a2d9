package member

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/LRB-BookingService/internal/domain"
	"github.com/m04kA/LRB-BookingService/pkg/dbmetrics"
	"github.com/m04kA/LRB-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с участниками заявок
// Участники никогда не создаются и не удаляются отдельно от заявки:
// обе операции выполняются только внутри транзакции владеющей заявки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория участников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBatch вставляет участников заявки, сохраняя порядок из запроса
// Пустой список допустим и не выполняет запросов
func (r *Repository) CreateBatch(ctx context.Context, bookingID int64, members []domain.BookingMember) ([]domain.BookingMember, error) {
	if len(members) == 0 {
		return []domain.BookingMember{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("booking_members").
		Columns("booking_id", "member_name", "member_student_id")

	for _, m := range members {
		insertBuilder = insertBuilder.Values(bookingID, m.MemberName, m.MemberStudentID)
	}

	query, args, err := insertBuilder.
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	created := make([]domain.BookingMember, 0, len(members))
	i := 0
	for rows.Next() {
		m := members[i]
		m.BookingID = bookingID
		if err := rows.Scan(&m.ID); err != nil {
			return nil, fmt.Errorf("%w: CreateBatch - scan id: %v", ErrScanRow, err)
		}
		created = append(created, m)
		i++
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - rows error: %v", ErrScanRow, err)
	}

	// Количество возвращенных id обязано совпасть с количеством участников:
	// потерянная или задвоенная вставка недопустима
	if len(created) != len(members) {
		return nil, fmt.Errorf("%w: CreateBatch - inserted %d of %d members", ErrExecQuery, len(created), len(members))
	}

	return created, nil
}

// GetByBookingID получает участников заявки в порядке вставки
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) ([]domain.BookingMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "booking_id", "member_name", "member_student_id").
		From("booking_members").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanMembers(rows)
}

// DeleteByBookingID удаляет всех участников заявки
// Ноль затронутых строк здесь не ошибка: заявка могла быть без группы
func (r *Repository) DeleteByBookingID(ctx context.Context, bookingID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("booking_members").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByBookingID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByBookingID - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByBookingID - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// scanMembers сканирует результаты запроса в слайс участников
func (r *Repository) scanMembers(rows *sql.Rows) ([]domain.BookingMember, error) {
	members := make([]domain.BookingMember, 0)

	for rows.Next() {
		var m domain.BookingMember
		if err := rows.Scan(&m.ID, &m.BookingID, &m.MemberName, &m.MemberStudentID); err != nil {
			return nil, fmt.Errorf("%w: scanMembers - scan row: %v", ErrScanRow, err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanMembers - rows error: %v", ErrScanRow, err)
	}

	return members, nil
}
