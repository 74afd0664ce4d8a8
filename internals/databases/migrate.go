// internals/databases/migrate.go
package database

import (
	"log"

	attendanceModel "brezalfc_backend/internals/features/club/attendance/model"
	divisionModel "brezalfc_backend/internals/features/club/divisions/model"
	photoModel "brezalfc_backend/internals/features/club/gallery/model"
	playerModel "brezalfc_backend/internals/features/club/players/model"
	sessionModel "brezalfc_backend/internals/features/club/sessions/model"
	authModel "brezalfc_backend/internals/features/users/auth/model"
)

// AutoMigrate alinea el esquema con los modelos. Idempotente; se lanza en
// el arranque, detrás de ConnectDB.
func AutoMigrate() {
	err := DB.AutoMigrate(
		&authModel.UserModel{},
		&authModel.RefreshTokenModel{},
		&authModel.TokenBlacklistModel{},
		&playerModel.PlayerModel{},
		&divisionModel.DivisionModel{},
		&divisionModel.PlayerDivisionModel{},
		&sessionModel.SessionModel{},
		&attendanceModel.AttendanceModel{},
		&photoModel.PhotoModel{},
	)
	if err != nil {
		log.Fatalf("❌ migrate failed: %v", err)
	}
	log.Println("✅ Schema up to date.")
}
