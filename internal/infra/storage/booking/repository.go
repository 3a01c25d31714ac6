package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL для нарушения уникального ограничения
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с бронированиями
//
// Хранилище append-mostly: записи создаются резервацией, один раз
// переводятся в cancelled отменой и никогда не удаляются.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateConfirmed создает новое бронирование в статусе confirmed
// Если в контексте передана активная транзакция, использует её -
// Reservation Engine вызывает этот метод строго внутри транзакции
// вместе с декрементом леджера
func (r *Repository) CreateConfirmed(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"customer_id",
			"registration_no",
			"sc_id",
			"appointment_date",
			"status",
		).
		Values(
			booking.CustomerID,
			booking.RegistrationNo,
			booking.ServiceCenterID,
			booking.AppointmentDate,
			domain.StatusConfirmed,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateConfirmed - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, fmt.Errorf("%w: CreateConfirmed: %v", ErrDuplicateBooking, err)
		}
		return nil, fmt.Errorf("%w: CreateConfirmed - execute insert: %v", ErrExecQuery, err)
	}

	booking.Status = domain.StatusConfirmed
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// FindActive находит активное (не отменённое) бронирование по паре
// (регистрационный номер, дата)
//
// Для одной пары в любой момент существует не больше одной такой записи -
// это инвариант протокола резервации, здесь он не навязывается структурно.
// Внутри транзакции строка блокируется FOR UPDATE, чтобы конкурирующие
// отмены сериализовались на ней.
func (r *Repository) FindActive(ctx context.Context, registrationNo string, date time.Time) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := bookingSelect().
		Where(squirrel.Eq{"registration_no": registrationNo, "appointment_date": date}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindActive - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindActive - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// MarkCancelled атомарно переводит бронирование из confirmed в cancelled
//
// Условие status != cancelled в самом UPDATE - guard идемпотентности:
// из двух гоняющихся отмен только одна увидит rowsAffected == 1,
// вторая получит ErrAlreadyCancelled и не вызовет повторный инкремент леджера.
func (r *Repository) MarkCancelled(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkCancelled - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkCancelled - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkCancelled - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAlreadyCancelled
	}

	return nil
}

// CountByStatusAndPeriod считает бронирования в статусе за период дат (включительно)
// Read-only метод для дашборда
func (r *Repository) CountByStatusAndPeriod(ctx context.Context, status domain.BookingStatus, from, to time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"status": status}).
		Where(squirrel.GtOrEq{"appointment_date": from}).
		Where(squirrel.LtOrEq{"appointment_date": to}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByStatusAndPeriod - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByStatusAndPeriod - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// ListForDate возвращает все бронирования на дату с именем клиента
// Используется таблицей "бронирования на сегодня" дашборда
func (r *Repository) ListForDate(ctx context.Context, date time.Time) ([]*domain.BookingDetail, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"c.full_name",
		"b.registration_no",
		"b.appointment_date",
		"b.status",
	).
		From("bookings b").
		Join("customers c ON c.customer_id = b.customer_id").
		Where(squirrel.Eq{"b.appointment_date": date}).
		OrderBy("b.created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	details := make([]*domain.BookingDetail, 0)
	for rows.Next() {
		var d domain.BookingDetail
		if err := rows.Scan(&d.CustomerName, &d.RegistrationNo, &d.AppointmentDate, &d.Status); err != nil {
			return nil, fmt.Errorf("%w: ListForDate - scan row: %v", ErrScanRow, err)
		}
		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListForDate - rows error: %v", ErrScanRow, err)
	}

	return details, nil
}

// DailyConfirmedCounts возвращает количество подтверждённых бронирований
// по дням указанного месяца (ключ - дата в формате YYYY-MM-DD)
func (r *Repository) DailyConfirmedCounts(ctx context.Context, year int, month time.Month) (map[string]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	query, args, err := psqlbuilder.Select(
		"appointment_date",
		"COUNT(*)",
	).
		From("bookings").
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		Where(squirrel.GtOrEq{"appointment_date": from}).
		Where(squirrel.LtOrEq{"appointment_date": to}).
		GroupBy("appointment_date").
		OrderBy("appointment_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: DailyConfirmedCounts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: DailyConfirmedCounts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var date time.Time
		var count int
		if err := rows.Scan(&date, &count); err != nil {
			return nil, fmt.Errorf("%w: DailyConfirmedCounts - scan row: %v", ErrScanRow, err)
		}
		counts[date.Format(domain.DateFormat)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: DailyConfirmedCounts - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// MonthlyBreakdown возвращает разбивку бронирований и отмен по месяцам года
// Месяцы без записей в результат не попадают, их дозаполняет сервис статистики
func (r *Repository) MonthlyBreakdown(ctx context.Context, year int) ([]*domain.MonthlyStat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	query, args, err := psqlbuilder.Select(
		"EXTRACT(MONTH FROM appointment_date)::int AS month_num",
		fmt.Sprintf("COUNT(*) FILTER (WHERE status = '%s')", domain.StatusConfirmed),
		fmt.Sprintf("COUNT(*) FILTER (WHERE status = '%s')", domain.StatusCancelled),
	).
		From("bookings").
		Where(squirrel.GtOrEq{"appointment_date": from}).
		Where(squirrel.LtOrEq{"appointment_date": to}).
		GroupBy("month_num").
		OrderBy("month_num ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: MonthlyBreakdown - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: MonthlyBreakdown - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stats := make([]*domain.MonthlyStat, 0, 12)
	for rows.Next() {
		var monthNum, bookings, cancellations int
		if err := rows.Scan(&monthNum, &bookings, &cancellations); err != nil {
			return nil, fmt.Errorf("%w: MonthlyBreakdown - scan row: %v", ErrScanRow, err)
		}
		stats = append(stats, &domain.MonthlyStat{
			Month:         time.Month(monthNum),
			Bookings:      bookings,
			Cancellations: cancellations,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: MonthlyBreakdown - rows error: %v", ErrScanRow, err)
	}

	return stats, nil
}

// bookingSelect общий SELECT по колонкам бронирования
func bookingSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"customer_id",
		"registration_no",
		"sc_id",
		"appointment_date",
		"status",
		"cancelled_at",
		"created_at",
		"updated_at",
	).From("bookings")
}

// scanBooking сканирует одну строку бронирования
func scanBooking(row *sql.Row) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.CustomerID,
		&booking.RegistrationNo,
		&booking.ServiceCenterID,
		&booking.AppointmentDate,
		&booking.Status,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}
