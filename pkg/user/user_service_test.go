package user

import (
	"context"
	"errors"
	"testing"

	"agrisync-backend/domain"
	"agrisync-backend/entities"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users  map[string]*entities.User // keyed by username
	exists bool
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*entities.User)}
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	for _, u := range f.users {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByUsernameOrEmail(ctx context.Context, identifier string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Username == identifier || u.Email == identifier {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) CheckUserExists(ctx context.Context, username, email string) (bool, error) {
	return f.exists, nil
}

func (f *fakeUserRepository) MarkEmailVerified(ctx context.Context, email string) error { return nil }

func (f *fakeUserRepository) MarkPhoneVerified(ctx context.Context, phone string) error { return nil }

type fakeJWTService struct{}

func (f *fakeJWTService) GenerateTokenUser(userId string, role string) string {
	return "token-" + userId
}

func (f *fakeJWTService) ValidateTokenUser(token string) (*jwtlib.Token, error) {
	return nil, domain.ErrTokenInvalid
}

func (f *fakeJWTService) GetUserIDByToken(token string) (string, string, error) {
	return "", "", domain.ErrTokenInvalid
}

func TestRegisterDefaultsToProducer(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, &fakeJWTService{})

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "ravi",
		Email:    "ravi@example.com",
		Password: "hunter2secret",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.User.Role != domain.RoleProducer {
		t.Fatalf("role = %q, want %q", res.User.Role, domain.RoleProducer)
	}
	if res.Token == "" {
		t.Fatal("no token issued on registration")
	}

	stored := repo.users["ravi"]
	if stored.Password == "hunter2secret" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("hunter2secret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	repo := newFakeUserRepository()
	repo.exists = true
	service := NewUserService(repo, &fakeJWTService{})

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "ravi",
		Email:    "ravi@example.com",
		Password: "hunter2secret",
	})
	if !errors.Is(err, domain.ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestLoginByUsernameOrEmail(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, &fakeJWTService{})

	if _, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "ravi",
		Email:    "ravi@example.com",
		Password: "hunter2secret",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	for _, identifier := range []string{"ravi", "ravi@example.com"} {
		res, err := service.Login(context.Background(), domain.LoginRequest{
			Username: identifier,
			Password: "hunter2secret",
		})
		if err != nil {
			t.Fatalf("login with %q: %v", identifier, err)
		}
		if res.User.Username != "ravi" {
			t.Fatalf("login with %q returned user %q", identifier, res.User.Username)
		}
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepository()
	service := NewUserService(repo, &fakeJWTService{})

	if _, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "ravi",
		Email:    "ravi@example.com",
		Password: "hunter2secret",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Username: "ravi",
		Password: "wrong",
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	service := NewUserService(newFakeUserRepository(), &fakeJWTService{})

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Username: "ghost",
		Password: "whatever",
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
