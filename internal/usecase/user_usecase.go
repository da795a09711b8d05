package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kas-siswa-backend/internal/apperror"
	"kas-siswa-backend/internal/model"
	"kas-siswa-backend/internal/repository"
)

const MsgInvalidCredentials = "Invalid email or password"

type UserUsecase struct {
	repo     *repository.UserRepository
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

func NewUserUsecase(repo *repository.UserRepository, secret string, tokenTTL time.Duration) *UserUsecase {
	return &UserUsecase{repo: repo, secret: []byte(secret), tokenTTL: tokenTTL, now: time.Now}
}

func (u *UserUsecase) Register(ctx context.Context, name, email, password, role string) (*model.User, error) {
	// 1. Hashing Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if role == "" {
		role = model.RoleAdmin
	}

	// 2. Simpan ke Database
	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Role:     role,
	}
	if err := u.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("Email already exists")
		}
		return nil, err
	}
	return user, nil
}

// Login memverifikasi kredensial, mencatat lastLogin, lalu membuat token JWT.
func (u *UserUsecase) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	// 1. Cari user berdasarkan email
	user, err := u.repo.GetByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", apperror.Unauthorized(MsgInvalidCredentials)
	}
	if err != nil {
		return nil, "", err
	}

	// 2. Bandingkan Password (Input vs Hash di DB)
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperror.Unauthorized(MsgInvalidCredentials)
	}

	// 3. Catat waktu login
	now := u.now()
	if err := u.repo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, "", err
	}
	user.LastLogin = &now

	// 4. Jika benar, buat Token JWT
	token, err := u.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (u *UserUsecase) Profile(ctx context.Context, id uint) (*model.User, error) {
	user, err := u.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("User not found")
	}
	return user, err
}

func (u *UserUsecase) GenerateToken(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     u.now().Add(u.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(u.secret)
}
