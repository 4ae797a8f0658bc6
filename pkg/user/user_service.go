package user

import (
	"agrisync-backend/domain"
	"agrisync-backend/entities"
	"agrisync-backend/pkg/jwt"
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	exists, err := s.userRepository.CheckUserExists(ctx, req.Username, req.Email)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	if exists {
		return domain.AuthResponse{}, domain.ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	role := req.Role
	if role == "" {
		role = domain.RoleProducer
	}

	user := &entities.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		Password:     string(hashed),
		Role:         role,
		Organization: req.Organization,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.AuthResponse{}, err
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return domain.AuthResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByUsernameOrEmail(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrInvalidCredentials
		}
		return domain.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return domain.AuthResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:            user.ID.String(),
		Username:      user.Username,
		Email:         user.Email,
		Role:          user.Role,
		Organization:  user.Organization,
		Phone:         user.Phone,
		EmailVerified: user.EmailVerified,
		PhoneVerified: user.PhoneVerified,
	}
}
