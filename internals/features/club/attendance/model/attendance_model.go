package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusGoing    = "going"
	StatusNotGoing = "not_going"
	StatusPending  = "pending"
)

// AttendanceModel: la última palabra de un jugador sobre una sesión.
// Una fila por pareja (sesión, jugador); no hay historial, la escritura
// nueva pisa a la anterior.
type AttendanceModel struct {
	AttendanceID        uuid.UUID `gorm:"column:attendance_id;type:uuid;primaryKey" json:"attendance_id"`
	AttendanceSessionID uuid.UUID `gorm:"column:attendance_session_id;type:uuid;not null;uniqueIndex:uq_attendance" json:"attendance_session_id"`
	AttendancePlayerID  uuid.UUID `gorm:"column:attendance_player_id;type:uuid;not null;uniqueIndex:uq_attendance" json:"attendance_player_id"`

	AttendanceStatus string `gorm:"column:attendance_status;type:varchar(20);not null" json:"attendance_status"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`
}

func (AttendanceModel) TableName() string {
	return "attendance"
}

func (a *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if a.AttendanceID == uuid.Nil {
		a.AttendanceID = uuid.New()
	}
	return nil
}

func IsValidStatus(s string) bool {
	return s == StatusGoing || s == StatusNotGoing || s == StatusPending
}
