package directory

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	directoryRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/directory"
	"github.com/m04kA/SMC-AppointmentService/internal/service/directory/models"
)

// Service сервис справочника клиентов и автомобилей
//
// Владеет записями клиентов и автомобилей; ядро резервации видит
// справочник только через проверки существования.
type Service struct {
	repo      DirectoryRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса справочника
func NewService(repo DirectoryRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// CheckCustomer находит клиента по телефону вместе с его автомобилями
func (s *Service) CheckCustomer(ctx context.Context, phoneNumber string) (*models.CustomerProfile, error) {
	s.logger.Info("CheckCustomer: phone=%s", phoneNumber)

	if phoneNumber == "" {
		return nil, fmt.Errorf("%w: phone number is required", ErrInvalidInput)
	}

	customer, err := s.repo.GetCustomerByPhone(ctx, phoneNumber)
	if err != nil {
		if errors.Is(err, directoryRepo.ErrCustomerNotFound) {
			s.logger.Warn("CheckCustomer: no customer for phone=%s", phoneNumber)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("CheckCustomer: repository error: %v", err)
		return nil, fmt.Errorf("%w: CheckCustomer - repository error: %v", ErrInternal, err)
	}

	vehicles, err := s.repo.ListVehicles(ctx, customer.CustomerID)
	if err != nil {
		s.logger.Error("CheckCustomer: failed to list vehicles for %s: %v", customer.CustomerID, err)
		return nil, fmt.Errorf("%w: CheckCustomer - repository error: %v", ErrInternal, err)
	}

	if len(vehicles) == 0 {
		s.logger.Warn("CheckCustomer: customer %s has no vehicles", customer.CustomerID)
		return nil, ErrNoVehicles
	}

	s.logger.Info("CheckCustomer: found customer %s with %d vehicle(s)", customer.CustomerID, len(vehicles))

	return &models.CustomerProfile{
		CustomerID: customer.CustomerID,
		FullName:   customer.FullName,
		Vehicles:   models.FromDomainVehicles(vehicles),
	}, nil
}

// RegisterCustomer регистрирует нового клиента с его первым автомобилем
//
// Генерация идентификатора и обе вставки выполняются в одной сериализуемой
// транзакции: параллельные регистрации не получат одинаковый идентификатор
func (s *Service) RegisterCustomer(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error) {
	s.logger.Info("RegisterCustomer: name=%s, phone=%s, vehicle=%s",
		req.FullName, req.PhoneNumber, req.RegistrationNo)

	if err := validateRegisterRequest(req); err != nil {
		s.logger.Warn("RegisterCustomer: validation failed: %v", err)
		return nil, err
	}

	var customerID string

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Следующий идентификатор из максимального существующего (C001, C002, ...)
		lastID, err := s.repo.LastCustomerID(txCtx)
		if err != nil && !errors.Is(err, directoryRepo.ErrCustomerNotFound) {
			s.logger.Error("RegisterCustomer: failed to get last customer id: %v", err)
			return fmt.Errorf("%w: failed to get last customer id: %v", ErrInternal, err)
		}

		customerID, err = NextCustomerID(lastID)
		if err != nil {
			s.logger.Error("RegisterCustomer: failed to generate customer id from %q: %v", lastID, err)
			return fmt.Errorf("%w: failed to generate customer id: %v", ErrInternal, err)
		}

		customer := &domain.Customer{
			CustomerID:  customerID,
			FullName:    req.FullName,
			PhoneNumber: req.PhoneNumber,
		}
		if err := s.repo.CreateCustomer(txCtx, customer); err != nil {
			if errors.Is(err, directoryRepo.ErrDuplicateCustomer) {
				s.logger.Warn("RegisterCustomer: duplicate customer phone=%s", req.PhoneNumber)
				return ErrDuplicateRegistration
			}
			s.logger.Error("RegisterCustomer: failed to create customer: %v", err)
			return fmt.Errorf("%w: failed to create customer: %v", ErrInternal, err)
		}

		vehicle := &domain.Vehicle{
			RegistrationNo: req.RegistrationNo,
			CustomerID:     customerID,
		}
		if err := s.repo.CreateVehicle(txCtx, vehicle); err != nil {
			if errors.Is(err, directoryRepo.ErrDuplicateVehicle) {
				s.logger.Warn("RegisterCustomer: duplicate vehicle %s", req.RegistrationNo)
				return ErrDuplicateRegistration
			}
			s.logger.Error("RegisterCustomer: failed to create vehicle: %v", err)
			return fmt.Errorf("%w: failed to create vehicle: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("RegisterCustomer: registered customer %s with vehicle %s", customerID, req.RegistrationNo)

	return &models.RegisterResponse{
		CustomerID:     customerID,
		RegistrationNo: req.RegistrationNo,
	}, nil
}

// CustomerExists проверяет существование клиента - контракт для ядра резервации
func (s *Service) CustomerExists(ctx context.Context, customerID string) (bool, error) {
	return s.repo.CustomerExists(ctx, customerID)
}

// VehicleExists проверяет существование автомобиля - контракт для ядра резервации
func (s *Service) VehicleExists(ctx context.Context, registrationNo string) (bool, error) {
	return s.repo.VehicleExists(ctx, registrationNo)
}

// NextCustomerID генерирует следующий идентификатор клиента
// Из "C007" получается "C008"; для пустого справочника - "C001"
func NextCustomerID(lastID string) (string, error) {
	if lastID == "" {
		return fmt.Sprintf("%s%0*d", domain.CustomerIDPrefix, domain.CustomerIDDigits, 1), nil
	}

	numPart := strings.TrimPrefix(lastID, domain.CustomerIDPrefix)
	num, err := strconv.Atoi(numPart)
	if err != nil {
		return "", fmt.Errorf("malformed customer id %q: %v", lastID, err)
	}

	return fmt.Sprintf("%s%0*d", domain.CustomerIDPrefix, domain.CustomerIDDigits, num+1), nil
}

func validateRegisterRequest(req *models.RegisterRequest) error {
	if req.FullName == "" {
		return fmt.Errorf("%w: full name is required", ErrInvalidInput)
	}
	if req.PhoneNumber == "" {
		return fmt.Errorf("%w: phone number is required", ErrInvalidInput)
	}
	if req.RegistrationNo == "" {
		return fmt.Errorf("%w: registration number is required", ErrInvalidInput)
	}
	return nil
}
