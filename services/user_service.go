package services

import (
	"context"

	"store-api/models"
	"store-api/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserService exposes user registration and customer attribution.
type UserService interface {
	Register(ctx context.Context, req *models.RegisterUserRequest) (*models.User, *ServiceError)
	ListUsers(ctx context.Context) ([]models.User, *ServiceError)
	CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, *ServiceError)
	ListCustomers(ctx context.Context) ([]models.Customer, *ServiceError)
}

type userServiceImpl struct {
	repo   repository.UserRepository
	logger *zap.Logger
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository, logger *zap.Logger) UserService {
	return &userServiceImpl{repo: repo, logger: logger}
}

// Register stores a new user. Passwords are bcrypt-hashed before they touch
// the database; the plaintext is never persisted.
func (s *userServiceImpl) Register(ctx context.Context, req *models.RegisterUserRequest) (*models.User, *ServiceError) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, internal("Failed to register user")
	}

	user := &models.User{
		Name:         req.Name,
		PasswordHash: string(hashed),
		Email:        req.Email,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Zip:          req.Zip,
		Country:      req.Country,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", zap.String("email", req.Email), zap.Error(err))
		return nil, internal("Failed to register user")
	}
	return user, nil
}

func (s *userServiceImpl) ListUsers(ctx context.Context) ([]models.User, *ServiceError) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list users", zap.Error(err))
		return nil, internal("Failed to fetch users")
	}
	return users, nil
}

func (s *userServiceImpl) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, *ServiceError) {
	customer := &models.Customer{UserID: req.UserID}
	if err := s.repo.CreateCustomer(ctx, customer); err != nil {
		s.logger.Error("Failed to create customer", zap.Uint("user_id", req.UserID), zap.Error(err))
		return nil, internal("Failed to create customer")
	}
	return customer, nil
}

func (s *userServiceImpl) ListCustomers(ctx context.Context) ([]models.Customer, *ServiceError) {
	customers, err := s.repo.FindAllCustomers(ctx)
	if err != nil {
		s.logger.Error("Failed to list customers", zap.Error(err))
		return nil, internal("Failed to fetch customers")
	}
	return customers, nil
}
