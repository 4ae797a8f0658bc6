package otp

import (
	"agrisync-backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OTPRepository interface {
		ReplaceOTP(ctx context.Context, otp *entities.OTPVerification) error
		GetActiveOTP(ctx context.Context, email, phone, otpType string, now time.Time) (*entities.OTPVerification, error)
		MarkVerified(ctx context.Context, id uuid.UUID) error
		IncrementAttempts(ctx context.Context, id uuid.UUID) error
	}

	otpRepository struct {
		db *gorm.DB
	}
)

func NewOTPRepository(db *gorm.DB) OTPRepository {
	return &otpRepository{db: db}
}

// ReplaceOTP removes any previous codes for the same target and type before
// storing the new one, so only the latest code is ever valid.
func (r *otpRepository) ReplaceOTP(ctx context.Context, otp *entities.OTPVerification) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Where("otp_type = ?", otp.OTPType)
		if otp.Email != "" {
			query = query.Where("email = ?", otp.Email)
		} else {
			query = query.Where("phone = ?", otp.Phone)
		}
		if err := query.Delete(&entities.OTPVerification{}).Error; err != nil {
			return err
		}
		return tx.Create(otp).Error
	})
}

func (r *otpRepository) GetActiveOTP(ctx context.Context, email, phone, otpType string, now time.Time) (*entities.OTPVerification, error) {
	query := r.db.WithContext(ctx).
		Where("otp_type = ? AND verified = ? AND expires_at > ?", otpType, false, now)
	if email != "" {
		query = query.Where("email = ?", email)
	} else {
		query = query.Where("phone = ?", phone)
	}

	var otp entities.OTPVerification
	if err := query.Order("created_at desc").First(&otp).Error; err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *otpRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entities.OTPVerification{}).
		Where("id = ?", id).
		Update("verified", true).Error
}

func (r *otpRepository) IncrementAttempts(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entities.OTPVerification{}).
		Where("id = ?", id).
		Update("attempts", gorm.Expr("attempts + 1")).Error
}
