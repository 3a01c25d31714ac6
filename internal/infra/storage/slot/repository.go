package slot

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// Repository репозиторий леджера слотов
//
// Хранит остаток вместимости по ключу (дата, сервисный центр).
// Декремент и инкремент выполняются одиночными условными UPDATE,
// поэтому корректны при любом числе конкурентных вызовов.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// TryDecrement атомарно уменьшает остаток слота на 1, если он больше нуля
//
// Возвращает true, если декремент произошёл. Условие available_slots > 0
// в самом UPDATE гарантирует, что из N конкурентных вызовов при остатке 1
// успешным будет ровно один, а остаток никогда не станет отрицательным.
// Отсутствие строки слота не ошибка: ведёт себя как нулевая вместимость.
func (r *Repository) TryDecrement(ctx context.Context, date time.Time, serviceCenterID string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointment_slots").
		Set("available_slots", squirrel.Expr("available_slots - 1")).
		Where(squirrel.Eq{"slot_date": date, "sc_id": serviceCenterID}).
		Where(squirrel.Gt{"available_slots": 0}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: TryDecrement - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: TryDecrement - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: TryDecrement - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected == 1, nil
}

// Increment атомарно возвращает единицу вместимости слоту
//
// Верхняя граница здесь не проверяется: парность инкремента и декремента
// обеспечивает Reservation Engine через guard по статусу бронирования,
// который не даёт вернуть один и тот же юнит дважды.
func (r *Repository) Increment(ctx context.Context, date time.Time, serviceCenterID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointment_slots").
		Set("available_slots", squirrel.Expr("available_slots + 1")).
		Where(squirrel.Eq{"slot_date": date, "sc_id": serviceCenterID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Increment - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Increment - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Increment - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// GetAvailable возвращает слоты с положительным остатком на указанную дату
// Результат отсортирован по дате и названию сервисного центра
func (r *Repository) GetAvailable(ctx context.Context, date time.Time) ([]*domain.AvailableSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"s.slot_date",
		"s.sc_id",
		"sc.name",
		"s.available_slots",
	).
		From("appointment_slots s").
		Join("service_centers sc ON sc.sc_id = s.sc_id").
		Where(squirrel.Eq{"s.slot_date": date}).
		Where(squirrel.Gt{"s.available_slots": 0}).
		OrderBy("s.slot_date ASC", "sc.name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAvailable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAvailable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.AvailableSlot, 0)
	for rows.Next() {
		var s domain.AvailableSlot
		if err := rows.Scan(&s.Date, &s.ServiceCenterID, &s.ServiceCenterName, &s.AvailableSlots); err != nil {
			return nil, fmt.Errorf("%w: GetAvailable - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAvailable - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
