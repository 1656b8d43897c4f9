package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/PGS-BookingService/internal/domain"
	userRepo "github.com/m04kA/PGS-BookingService/internal/infra/storage/user"
	"github.com/m04kA/PGS-BookingService/internal/service/users/models"
)

// Минимальная длина пароля при регистрации
const minPasswordLength = 6

// Service сервис регистрации и аутентификации пользователей
type Service struct {
	userRepo UserRepository
	tokens   TokenIssuer
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, tokens TokenIssuer, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register регистрирует нового пользователя
// Пароль хешируется bcrypt перед сохранением
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	s.logger.Info("Register: registering user email=%s", req.Email)

	if err := validateRegister(req); err != nil {
		s.logger.Warn("Register: validation failed for email=%s: %v", req.Email, err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
		PasswordHash: string(hash),
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, userRepo.ErrEmailTaken):
			s.logger.Warn("Register: email=%s already in use", req.Email)
			return nil, ErrEmailTaken
		case errors.Is(err, userRepo.ErrMobileTaken):
			s.logger.Warn("Register: mobile number already in use for email=%s", req.Email)
			return nil, ErrMobileTaken
		default:
			s.logger.Error("Register: repository error for email=%s: %v", req.Email, err)
			return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Register: successfully registered user id=%d", created.ID)
	return models.FromDomainUser(created), nil
}

// Login проверяет учетные данные и выпускает токен доступа
// Несуществующий email и неверный пароль неразличимы для клиента
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	s.logger.Info("Login: attempt for email=%s", req.Email)

	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email=%s", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		s.logger.Warn("Login: wrong password for email=%s", req.Email)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.CreateToken(user.ID, user.IsAdmin)
	if err != nil {
		s.logger.Error("Login: failed to issue token for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: successful for user id=%d", user.ID)
	return &models.LoginResponse{
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		Token:   token,
	}, nil
}

// List получает всех пользователей (только для администраторов, проверка в handler)
func (s *Service) List(ctx context.Context) (*models.UserListResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d users", len(users))
	return models.FromDomainUserList(users), nil
}

// validateRegister валидирует запрос регистрации
func validateRegister(req *models.RegisterRequest) error {
	if req.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}
	if req.MobileNumber <= 0 {
		return fmt.Errorf("%w: mobileNumber is required", ErrInvalidInput)
	}
	if len(req.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	if req.Name != nil && len(*req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	return nil
}
