package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	userRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/user"
)

// Service сервис аутентификации операторов дашборда
type Service struct {
	users  UserRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(users UserRepository, logger Logger) *Service {
	return &Service{
		users:  users,
		logger: logger,
	}
}

// Login проверяет email и пароль оператора
func (s *Service) Login(ctx context.Context, email, password string) error {
	s.logger.Info("Login: attempt for email=%s", email)

	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email=%s", email)
			return ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		return fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login: wrong password for email=%s", email)
		return ErrInvalidCredentials
	}

	s.logger.Info("Login: successful for email=%s", email)
	return nil
}
