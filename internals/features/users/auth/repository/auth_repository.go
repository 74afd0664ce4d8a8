// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "brezalfc_backend/internals/features/users/auth/model"
)

/* ====================== USER ====================== */

func FindUserByEmail(db *gorm.DB, email string) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.Where("user_email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, userID uuid.UUID) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(db *gorm.DB, user *authModel.UserModel) error {
	return db.Create(user).Error
}

func UpdateUserPassword(db *gorm.DB, userID uuid.UUID, newHash string) error {
	return db.Model(&authModel.UserModel{}).
		Where("user_id = ?", userID).
		Update("user_password", newHash).Error
}

func UpdateUserRole(db *gorm.DB, userID uuid.UUID, role string) error {
	res := db.Model(&authModel.UserModel{}).
		Where("user_id = ?", userID).
		Update("user_role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

/* ====================== REFRESH TOKEN ====================== */

func CreateRefreshToken(db *gorm.DB, token *authModel.RefreshTokenModel) error {
	return db.Create(token).Error
}

// FindActiveRefreshTokenByHash busca un refresh vivo (no revocado, no caducado).
func FindActiveRefreshTokenByHash(db *gorm.DB, hash []byte) (*authModel.RefreshTokenModel, error) {
	var rt authModel.RefreshTokenModel
	if err := db.
		Where("token = ? AND revoked_at IS NULL AND expires_at > ?", hash, time.Now().UTC()).
		First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func RevokeRefreshTokenByID(db *gorm.DB, id uuid.UUID) error {
	now := time.Now().UTC()
	return db.Model(&authModel.RefreshTokenModel{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", now).Error
}

func RevokeAllRefreshTokensForUser(db *gorm.DB, userID uuid.UUID) error {
	now := time.Now().UTC()
	return db.Model(&authModel.RefreshTokenModel{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", now).Error
}

func CleanupExpiredRefreshTokens(db *gorm.DB) (int64, error) {
	res := db.Where("expires_at <= ?", time.Now().UTC()).
		Delete(&authModel.RefreshTokenModel{})
	return res.RowsAffected, res.Error
}

/* ====================== BLACKLIST TOKEN ====================== */

func BlacklistToken(db *gorm.DB, token string, ttl time.Duration) error {
	return db.Create(&authModel.TokenBlacklistModel{
		Token:     token,
		ExpiredAt: time.Now().UTC().Add(ttl),
	}).Error
}

func CleanupExpiredBlacklist(db *gorm.DB, before time.Time) (int64, error) {
	res := db.Unscoped().
		Where("expired_at < ?", before).
		Delete(&authModel.TokenBlacklistModel{})
	return res.RowsAffected, res.Error
}
