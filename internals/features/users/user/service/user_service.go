package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"classroom_backend/internals/features/users/user/dto"
	"classroom_backend/internals/features/users/user/model"
	helper "classroom_backend/internals/helpers"
	"classroom_backend/internals/helpers/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Cost     int
}

func NewUserService(db *gorm.DB, v *validator.Validate) *UserService {
	if v == nil {
		v = helper.NewValidator()
	}
	return &UserService{DB: db, Validate: v, Cost: bcrypt.DefaultCost}
}

// RegisterAccount hashes the password and stores the account. A taken
// user name fails with apperr.ErrUniqueViolation.
func (s *UserService) RegisterAccount(ctx context.Context, req dto.RegisterRequest) (*model.UserModel, error) {
	if err := s.Validate.Struct(req); err != nil {
		return nil, apperr.FromValidator(err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.Cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := req.ToModel(string(hash))
	if err := s.DB.WithContext(ctx).Create(&u).Error; err != nil {
		return nil, apperr.FromDB(err)
	}
	return &u, nil
}

// Authenticate checks credentials and stamps last_login. Unknown users,
// inactive accounts and wrong passwords all return apperr.ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, req dto.LoginRequest) (*model.UserModel, error) {
	if err := s.Validate.Struct(req); err != nil {
		return nil, apperr.FromValidator(err)
	}
	var u model.UserModel
	err := s.DB.WithContext(ctx).Where("user_name = ?", req.UserName).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrInvalidCredentials
	}
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	if !u.IsActive {
		return nil, apperr.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.DB.WithContext(ctx).Model(&u).Update("last_login", now).Error; err != nil {
		return nil, apperr.FromDB(err)
	}
	u.LastLogin = &now
	return &u, nil
}

func (s *UserService) GetAccount(ctx context.Context, id uuid.UUID) (*model.UserModel, error) {
	var u model.UserModel
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, apperr.FromDB(err)
	}
	return &u, nil
}

// DeleteAccount removes the account; the database cascades to the student or
// teacher profile and from there to every dependent row.
func (s *UserService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&model.UserModel{})
	if res.Error != nil {
		return apperr.FromDB(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: account %s", apperr.ErrNotFound, id)
	}
	return nil
}
