package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/hackbits-tech/hackbits-backend/internal/config"
	"github.com/hackbits-tech/hackbits-backend/internal/lifecycle"
	"github.com/hackbits-tech/hackbits-backend/internal/models"
	"github.com/hackbits-tech/hackbits-backend/internal/repositories"
	"github.com/hackbits-tech/hackbits-backend/internal/utils"
)

// ErrEmailTaken is returned when a signup email is already registered
var ErrEmailTaken = errors.New("an account with this email already exists")

// ErrInvalidCredentials is returned on a failed login; it deliberately does
// not reveal whether the account exists
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService defines the interface for authentication operations
type AuthService interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*models.User, string, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.User, string, error)
	AdminLogin(ctx context.Context, req *models.LoginRequest) (*models.AdminUser, string, error)
	ChangeAdminPassword(ctx context.Context, adminID primitive.ObjectID, req *models.ChangePasswordRequest) error
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type authService struct {
	userRepo  repositories.UserRepository
	adminRepo repositories.AdminUserRepository
	cfg       *config.Config
}

// NewAuthService creates a new AuthService implementation
func NewAuthService(userRepo repositories.UserRepository, adminRepo repositories.AdminUserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo:  userRepo,
		adminRepo: adminRepo,
		cfg:       cfg,
	}
}

// Signup registers a participant account and returns it with a session token
func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*models.User, string, error) {
	_, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, "", ErrEmailTaken
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, "", fmt.Errorf("failed to check existing account: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		Password:           string(hashedPassword),
		RegistrationNumber: utils.GenerateRegistrationNumber(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to create account: %w", err)
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, "participant", s.cfg)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Login authenticates a participant and returns a session token
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, "participant", s.cfg)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// AdminLogin authenticates an admin account and returns a session token
// carrying the admin role claim
func (s *authService) AdminLogin(ctx context.Context, req *models.LoginRequest) (*models.AdminUser, string, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(admin.ID.Hex(), admin.Email, admin.Role, s.cfg)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return admin, token, nil
}

// ChangeAdminPassword verifies the current password and stores a new hash
func (s *authService) ChangeAdminPassword(ctx context.Context, adminID primitive.ObjectID, req *models.ChangePasswordRequest) error {
	admin, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return lifecycle.ErrNotFound
		}
		return fmt.Errorf("failed to load admin account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.CurrentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin.Password = string(hashedPassword)
	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// GetUserByID loads a participant account by id
func (s *authService) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, lifecycle.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetUserByEmail loads a participant account by email
func (s *authService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, lifecycle.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
