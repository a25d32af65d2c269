package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"assetfolio/internal/config"
	apperrors "assetfolio/internal/errors"
	"assetfolio/internal/models"
)

const (
	maxFailedLogins = 5
	lockoutDuration = 15 * time.Minute
)

// userService handles user accounts and the signup OTP flow.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// Register creates an unverified user and issues a one-time code.
// The plaintext code is returned to the caller for delivery; only its
// hash is stored.
func (s *userService) Register(email, password, firstName, lastName string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", apperrors.WithMessage(apperrors.ErrInvalidInput, "email and password are required")
	}
	email = strings.ToLower(email)

	var count int64
	s.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil, "", apperrors.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	code, err := generateOTP()
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	expiresAt := time.Now().Add(config.Get().OTPExpiry)

	user := &models.User{
		Email:        email,
		Password:     string(hashedPassword),
		FirstName:    firstName,
		LastName:     lastName,
		IsActive:     true,
		IsVerified:   false,
		OTPHash:      hashOTP(code),
		OTPExpiresAt: &expiresAt,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return user, code, nil
}

// VerifyOTP checks the code against the stored hash and expiry. On
// success the user is marked verified and the code is consumed.
func (s *userService) VerifyOTP(email, code string) (*models.User, error) {
	user, err := s.getByEmail(email)
	if err != nil {
		return nil, err
	}
	if user.IsVerified {
		return nil, apperrors.ErrAlreadyVerified
	}
	if user.OTPHash == "" || user.OTPExpiresAt == nil || time.Now().After(*user.OTPExpiresAt) {
		return nil, apperrors.ErrInvalidOTP
	}
	if hashOTP(code) != user.OTPHash {
		return nil, apperrors.ErrInvalidOTP
	}

	updates := map[string]interface{}{
		"is_verified":    true,
		"otp_hash":       "",
		"otp_expires_at": nil,
	}
	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	user.IsVerified = true
	return user, nil
}

// ResendOTP rotates the verification code for an unverified user. The
// countdown between resends is enforced client-side; the server only
// refuses to reissue codes for verified accounts.
func (s *userService) ResendOTP(email string) (*models.User, string, error) {
	user, err := s.getByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if user.IsVerified {
		return nil, "", apperrors.ErrAlreadyVerified
	}

	code, err := generateOTP()
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	expiresAt := time.Now().Add(config.Get().OTPExpiry)

	updates := map[string]interface{}{
		"otp_hash":       hashOTP(code),
		"otp_expires_at": expiresAt,
	}
	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user, code, nil
}

// AttemptLogin authenticates a verified user, applying the failed-login
// lockout policy.
func (s *userService) AttemptLogin(email, password string) (*models.User, error) {
	user, err := s.getByEmail(email)
	if err != nil {
		// Do not reveal whether the email exists
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.LockedUntil != nil && time.Now().Before(*user.LockedUntil) {
		return nil, apperrors.ErrAccountLocked
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		s.recordFailedLogin(user)
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsVerified {
		return nil, apperrors.ErrNotVerified
	}

	now := time.Now()
	updates := map[string]interface{}{
		"failed_login_attempts": 0,
		"locked_until":          nil,
		"last_login_at":         now,
	}
	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	user.LastLoginAt = &now
	return user, nil
}

// recordFailedLogin bumps the failure counter and locks the account
// once the threshold is crossed. Failures here are swallowed; the login
// is already being rejected.
func (s *userService) recordFailedLogin(user *models.User) {
	attempts := user.FailedLoginAttempts + 1
	updates := map[string]interface{}{"failed_login_attempts": attempts}
	if attempts >= maxFailedLogins {
		updates["locked_until"] = time.Now().Add(lockoutDuration)
		updates["failed_login_attempts"] = 0
	}
	_ = s.db.Model(user).Updates(updates).Error
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// StoreRefreshTokenHash persists the hash of the user's current refresh token.
func (s *userService) StoreRefreshTokenHash(userID uint, tokenHash string) error {
	if err := s.db.Model(&models.User{}).Where("id = ?", userID).
		Update("refresh_token_hash", tokenHash).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetRefreshTokenHash returns the stored refresh token hash for a user.
func (s *userService) GetRefreshTokenHash(userID uint) (string, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return "", err
	}
	return user.RefreshTokenHash, nil
}

// getByEmail retrieves an active user by email.
func (s *userService) getByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ? AND is_active = ?", strings.ToLower(email), true).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// generateOTP returns a random 6-digit code.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// hashOTP returns the SHA-256 hex digest of a code.
func hashOTP(code string) string {
	h := sha256.Sum256([]byte(code))
	return hex.EncodeToString(h[:])
}
