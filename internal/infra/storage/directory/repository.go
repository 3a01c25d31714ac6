package directory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL для нарушения уникального ограничения
const pgUniqueViolation = "23505"

// Repository репозиторий справочника клиентов и автомобилей
//
// Справочник внешний по отношению к ядру резервации: Reservation Engine
// только читает его через проверки существования и никогда не мутирует.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочника
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetCustomerByPhone находит клиента по номеру телефона
func (r *Repository) GetCustomerByPhone(ctx context.Context, phoneNumber string) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"customer_id",
		"full_name",
		"phone_number",
		"created_at",
	).
		From("customers").
		Where(squirrel.Eq{"phone_number": phoneNumber}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCustomerByPhone - build select query: %v", ErrBuildQuery, err)
	}

	var customer domain.Customer
	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&customer.CustomerID,
		&customer.FullName,
		&customer.PhoneNumber,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCustomerByPhone - scan customer: %v", ErrScanRow, err)
	}

	customer.CreatedAt = createdAt.Time
	return &customer, nil
}

// ListVehicles возвращает автомобили клиента
func (r *Repository) ListVehicles(ctx context.Context, customerID string) ([]*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"registration_no",
		"customer_id",
		"make",
		"model",
	).
		From("vehicles").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("registration_no ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListVehicles - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListVehicles - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	vehicles := make([]*domain.Vehicle, 0)
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.RegistrationNo, &v.CustomerID, &v.Make, &v.Model); err != nil {
			return nil, fmt.Errorf("%w: ListVehicles - scan row: %v", ErrScanRow, err)
		}
		vehicles = append(vehicles, &v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListVehicles - rows error: %v", ErrScanRow, err)
	}

	return vehicles, nil
}

// CustomerExists проверяет существование клиента по идентификатору
func (r *Repository) CustomerExists(ctx context.Context, customerID string) (bool, error) {
	return r.exists(ctx, "customers", "customer_id", customerID, "CustomerExists")
}

// VehicleExists проверяет существование автомобиля по регистрационному номеру
func (r *Repository) VehicleExists(ctx context.Context, registrationNo string) (bool, error) {
	return r.exists(ctx, "vehicles", "registration_no", registrationNo, "VehicleExists")
}

// LastCustomerID возвращает максимальный идентификатор клиента
// Внутри транзакции строка блокируется FOR UPDATE, чтобы генерация
// следующего идентификатора не гонялась с параллельной регистрацией
func (r *Repository) LastCustomerID(ctx context.Context) (string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("customer_id").
		From("customers").
		OrderBy("customer_id DESC").
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: LastCustomerID - build select query: %v", ErrBuildQuery, err)
	}

	var id string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return "", ErrCustomerNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: LastCustomerID - scan id: %v", ErrScanRow, err)
	}

	return id, nil
}

// CreateCustomer создает нового клиента
func (r *Repository) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns("customer_id", "full_name", "phone_number").
		Values(customer.CustomerID, customer.FullName, customer.PhoneNumber).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CreateCustomer - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: CreateCustomer: %v", ErrDuplicateCustomer, err)
		}
		return fmt.Errorf("%w: CreateCustomer - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// CreateVehicle создает новый автомобиль клиента
func (r *Repository) CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("vehicles").
		Columns("registration_no", "customer_id", "make", "model").
		Values(vehicle.RegistrationNo, vehicle.CustomerID, vehicle.Make, vehicle.Model).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CreateVehicle - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: CreateVehicle: %v", ErrDuplicateVehicle, err)
		}
		return fmt.Errorf("%w: CreateVehicle - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) exists(ctx context.Context, table, column, value, method string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(table).
		Where(squirrel.Eq{column: value}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
	}

	return true, nil
}
