package otp

import (
	"context"
	"errors"
	"testing"
	"time"

	"agrisync-backend/domain"
	"agrisync-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeOTPRepository struct {
	stored     *entities.OTPVerification
	active     *entities.OTPVerification
	activeErr  error
	verifiedID uuid.UUID
	attempts   int
}

func (f *fakeOTPRepository) ReplaceOTP(ctx context.Context, otp *entities.OTPVerification) error {
	f.stored = otp
	return nil
}

func (f *fakeOTPRepository) GetActiveOTP(ctx context.Context, email, phone, otpType string, now time.Time) (*entities.OTPVerification, error) {
	if f.activeErr != nil {
		return nil, f.activeErr
	}
	return f.active, nil
}

func (f *fakeOTPRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	f.verifiedID = id
	return nil
}

func (f *fakeOTPRepository) IncrementAttempts(ctx context.Context, id uuid.UUID) error {
	f.attempts++
	return nil
}

type fakeUserRepository struct {
	emailVerified string
	phoneVerified string
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user *entities.User) error { return nil }

func (f *fakeUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByUsernameOrEmail(ctx context.Context, identifier string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) CheckUserExists(ctx context.Context, username, email string) (bool, error) {
	return false, nil
}

func (f *fakeUserRepository) MarkEmailVerified(ctx context.Context, email string) error {
	f.emailVerified = email
	return nil
}

func (f *fakeUserRepository) MarkPhoneVerified(ctx context.Context, phone string) error {
	f.phoneVerified = phone
	return nil
}

func newTestService(otpRepo *fakeOTPRepository, userRepo *fakeUserRepository) *otpService {
	return &otpService{
		otpRepository:  otpRepo,
		userRepository: userRepo,
		sendMail:       func(toEmail, subject, body string) error { return nil },
	}
}

func TestSendEmailOTPStoresSixDigitCode(t *testing.T) {
	repo := &fakeOTPRepository{}
	service := newTestService(repo, &fakeUserRepository{})

	_, err := service.SendEmailOTP(context.Background(), "farmer@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.stored == nil {
		t.Fatal("otp not stored")
	}
	if len(repo.stored.OTPCode) != 6 {
		t.Fatalf("otp code %q is not six digits", repo.stored.OTPCode)
	}
	if repo.stored.OTPType != "email" || repo.stored.Email != "farmer@example.com" {
		t.Fatalf("stored otp = %+v", repo.stored)
	}
	ttl := time.Until(repo.stored.ExpiresAt)
	if ttl < 9*time.Minute || ttl > 10*time.Minute {
		t.Fatalf("otp ttl = %v, want about 10 minutes", ttl)
	}
}

func TestSendSMSOTPRejectsBadPhone(t *testing.T) {
	service := newTestService(&fakeOTPRepository{}, &fakeUserRepository{})

	_, err := service.SendSMSOTP(context.Background(), "12345")
	if !errors.Is(err, domain.ErrInvalidPhone) {
		t.Fatalf("expected ErrInvalidPhone, got %v", err)
	}
}

func TestVerifyEmailOTPSuccess(t *testing.T) {
	record := &entities.OTPVerification{ID: uuid.New(), Email: "farmer@example.com", OTPCode: "123456", OTPType: "email"}
	repo := &fakeOTPRepository{active: record}
	users := &fakeUserRepository{}
	service := newTestService(repo, users)

	if err := service.VerifyEmailOTP(context.Background(), "farmer@example.com", "123456"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.verifiedID != record.ID {
		t.Fatal("otp record not marked verified")
	}
	if users.emailVerified != "farmer@example.com" {
		t.Fatal("user email flag not flipped")
	}
}

func TestVerifyEmailOTPWrongCode(t *testing.T) {
	record := &entities.OTPVerification{ID: uuid.New(), Email: "farmer@example.com", OTPCode: "123456", OTPType: "email"}
	repo := &fakeOTPRepository{active: record}
	service := newTestService(repo, &fakeUserRepository{})

	err := service.VerifyEmailOTP(context.Background(), "farmer@example.com", "654321")
	if !errors.Is(err, domain.ErrOTPInvalid) {
		t.Fatalf("expected ErrOTPInvalid, got %v", err)
	}
	if repo.attempts != 1 {
		t.Fatalf("attempts incremented %d times, want 1", repo.attempts)
	}
}

func TestVerifyEmailOTPExpired(t *testing.T) {
	repo := &fakeOTPRepository{activeErr: gorm.ErrRecordNotFound}
	service := newTestService(repo, &fakeUserRepository{})

	err := service.VerifyEmailOTP(context.Background(), "farmer@example.com", "123456")
	if !errors.Is(err, domain.ErrOTPExpired) {
		t.Fatalf("expected ErrOTPExpired, got %v", err)
	}
}

func TestVerifyEmailOTPTooManyAttempts(t *testing.T) {
	record := &entities.OTPVerification{ID: uuid.New(), Email: "farmer@example.com", OTPCode: "123456", OTPType: "email", Attempts: 3}
	repo := &fakeOTPRepository{active: record}
	service := newTestService(repo, &fakeUserRepository{})

	err := service.VerifyEmailOTP(context.Background(), "farmer@example.com", "123456")
	if !errors.Is(err, domain.ErrOTPTooManyTries) {
		t.Fatalf("expected ErrOTPTooManyTries, got %v", err)
	}
}

func TestVerifyRegistrationPartialFailure(t *testing.T) {
	record := &entities.OTPVerification{ID: uuid.New(), Email: "farmer@example.com", OTPCode: "123456", OTPType: "email"}
	repo := &fakeOTPRepository{active: record}
	service := newTestService(repo, &fakeUserRepository{})

	res := service.VerifyRegistration(context.Background(), domain.VerifyRegistrationRequest{
		Email:    "farmer@example.com",
		EmailOTP: "123456",
		Phone:    "+919876543210",
		PhoneOTP: "999999",
	})

	if res.Success {
		t.Fatal("registration reported success with a failing phone otp")
	}
	if !res.EmailVerified {
		t.Fatal("email leg should have verified")
	}
	if res.PhoneVerified {
		t.Fatal("phone leg should have failed")
	}
	if res.PhoneError == "" {
		t.Fatal("phone error missing from response")
	}
}
