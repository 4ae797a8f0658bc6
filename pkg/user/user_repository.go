package user

import (
	"agrisync-backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByUsernameOrEmail(ctx context.Context, identifier string) (*entities.User, error)
		CheckUserExists(ctx context.Context, username, email string) (bool, error)
		MarkEmailVerified(ctx context.Context, email string) error
		MarkPhoneVerified(ctx context.Context, phone string) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByUsernameOrEmail(ctx context.Context, identifier string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", identifier, identifier).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CheckUserExists(ctx context.Context, username, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) MarkEmailVerified(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Model(&entities.User{}).
		Where("email = ?", email).
		Update("email_verified", true).Error
}

func (r *userRepository) MarkPhoneVerified(ctx context.Context, phone string) error {
	return r.db.WithContext(ctx).Model(&entities.User{}).
		Where("phone = ?", phone).
		Update("phone_verified", true).Error
}
