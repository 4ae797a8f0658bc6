package otp

import (
	"agrisync-backend/domain"
	"agrisync-backend/entities"
	"agrisync-backend/internal/utils"
	"agrisync-backend/internal/utils/mailing"
	"agrisync-backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const otpTTL = 10 * time.Minute

var phoneRegex = regexp.MustCompile(`^(\+91|91)?[6789]\d{9}$`)

type (
	OTPService interface {
		SendEmailOTP(ctx context.Context, email string) (domain.SendOTPResponse, error)
		SendSMSOTP(ctx context.Context, phone string) (domain.SendOTPResponse, error)
		VerifyEmailOTP(ctx context.Context, email, code string) error
		VerifySMSOTP(ctx context.Context, phone, code string) error
		VerifyRegistration(ctx context.Context, req domain.VerifyRegistrationRequest) domain.VerifyRegistrationResponse
	}

	otpService struct {
		otpRepository  OTPRepository
		userRepository user.UserRepository
		sendMail       func(toEmail, subject, body string) error
	}
)

func NewOTPService(otpRepository OTPRepository, userRepository user.UserRepository) OTPService {
	return &otpService{
		otpRepository:  otpRepository,
		userRepository: userRepository,
		sendMail:       mailing.SendMail,
	}
}

func generateOTP() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}

func (s *otpService) SendEmailOTP(ctx context.Context, email string) (domain.SendOTPResponse, error) {
	code := generateOTP()

	record := &entities.OTPVerification{
		ID:        uuid.New(),
		Email:     email,
		OTPCode:   code,
		OTPType:   "email",
		ExpiresAt: time.Now().Add(otpTTL),
	}
	if err := s.otpRepository.ReplaceOTP(ctx, record); err != nil {
		return domain.SendOTPResponse{}, err
	}

	body := fmt.Sprintf(
		"<p>Your AgriSync verification code is <b>%s</b>. It expires in 10 minutes.</p>",
		code,
	)
	if err := s.sendMail(email, "AgriSync verification code", body); err != nil {
		return domain.SendOTPResponse{}, err
	}

	return s.sendResponse(fmt.Sprintf("OTP sent to %s", email), code), nil
}

func (s *otpService) SendSMSOTP(ctx context.Context, phone string) (domain.SendOTPResponse, error) {
	if !phoneRegex.MatchString(strings.ReplaceAll(phone, " ", "")) {
		return domain.SendOTPResponse{}, domain.ErrInvalidPhone
	}

	code := generateOTP()

	record := &entities.OTPVerification{
		ID:        uuid.New(),
		Phone:     phone,
		OTPCode:   code,
		OTPType:   "sms",
		ExpiresAt: time.Now().Add(otpTTL),
	}
	if err := s.otpRepository.ReplaceOTP(ctx, record); err != nil {
		return domain.SendOTPResponse{}, err
	}

	// No SMS gateway is wired up; the code is logged so operators can relay
	// it manually, matching the mock delivery in development.
	log.Printf("SMS OTP for %s: %s", phone, code)

	return s.sendResponse(fmt.Sprintf("OTP sent to %s", phone), code), nil
}

func (s *otpService) sendResponse(message, code string) domain.SendOTPResponse {
	response := domain.SendOTPResponse{Message: message}
	if utils.GetConfig("APP_ENV") == "development" {
		response.DevelopmentOTP = code
	}
	return response
}

func (s *otpService) VerifyEmailOTP(ctx context.Context, email, code string) error {
	if err := s.verify(ctx, email, "", code, "email"); err != nil {
		return err
	}
	// Flipping the user's flag is best effort; the OTP itself is verified.
	if err := s.userRepository.MarkEmailVerified(ctx, email); err != nil {
		log.Printf("Failed to mark email %s verified: %v", email, err)
	}
	return nil
}

func (s *otpService) VerifySMSOTP(ctx context.Context, phone, code string) error {
	if err := s.verify(ctx, "", phone, code, "sms"); err != nil {
		return err
	}
	if err := s.userRepository.MarkPhoneVerified(ctx, phone); err != nil {
		log.Printf("Failed to mark phone %s verified: %v", phone, err)
	}
	return nil
}

func (s *otpService) verify(ctx context.Context, email, phone, code, otpType string) error {
	record, err := s.otpRepository.GetActiveOTP(ctx, email, phone, otpType, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOTPExpired
		}
		return err
	}

	if record.Attempts >= 3 {
		return domain.ErrOTPTooManyTries
	}

	if record.OTPCode != code {
		if err := s.otpRepository.IncrementAttempts(ctx, record.ID); err != nil {
			return err
		}
		return domain.ErrOTPInvalid
	}

	return s.otpRepository.MarkVerified(ctx, record.ID)
}

func (s *otpService) VerifyRegistration(ctx context.Context, req domain.VerifyRegistrationRequest) domain.VerifyRegistrationResponse {
	emailErr := s.VerifyEmailOTP(ctx, req.Email, req.EmailOTP)
	phoneErr := s.VerifySMSOTP(ctx, req.Phone, req.PhoneOTP)

	response := domain.VerifyRegistrationResponse{
		EmailVerified: emailErr == nil,
		PhoneVerified: phoneErr == nil,
	}

	if emailErr == nil && phoneErr == nil {
		response.Success = true
		response.Message = "Both email and phone verified successfully"
		return response
	}

	response.Message = "Verification failed"
	if emailErr != nil {
		response.EmailError = emailErr.Error()
	}
	if phoneErr != nil {
		response.PhoneError = phoneErr.Error()
	}
	return response
}
