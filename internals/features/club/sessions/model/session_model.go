package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SessionTypeTraining = "training"
	SessionTypeMatch    = "match"
)

// SessionModel unifica entrenamientos y partidos: misma convocatoria,
// misma asistencia. Los campos de resultado sólo aplican a los partidos.
// division NULL = sesión abierta a todo el club.
type SessionModel struct {
	SessionID   uuid.UUID `gorm:"column:session_id;type:uuid;primaryKey" json:"session_id"`
	SessionType string    `gorm:"column:session_type;type:varchar(20);not null;index" json:"session_type"`

	SessionDivisionID *uuid.UUID `gorm:"column:session_division_id;type:uuid;index" json:"session_division_id,omitempty"`

	SessionStartsAt time.Time `gorm:"column:session_starts_at;not null;index" json:"session_starts_at"`
	SessionLocation string    `gorm:"column:session_location;size:200;not null;default:''" json:"session_location"`
	SessionNotes    *string   `gorm:"column:session_notes" json:"session_notes,omitempty"`

	// sólo partidos
	SessionRival     *string `gorm:"column:session_rival;size:200" json:"session_rival,omitempty"`
	SessionHomeGoals *int    `gorm:"column:session_home_goals" json:"session_home_goals,omitempty"`
	SessionAwayGoals *int    `gorm:"column:session_away_goals" json:"session_away_goals,omitempty"`

	SessionCreatedAt time.Time      `gorm:"column:session_created_at;autoCreateTime" json:"session_created_at"`
	SessionUpdatedAt time.Time      `gorm:"column:session_updated_at;autoUpdateTime" json:"session_updated_at"`
	SessionDeletedAt gorm.DeletedAt `gorm:"column:session_deleted_at;index" json:"session_deleted_at,omitempty"`
}

func (SessionModel) TableName() string {
	return "sessions"
}

func (s *SessionModel) BeforeCreate(tx *gorm.DB) error {
	if s.SessionID == uuid.Nil {
		s.SessionID = uuid.New()
	}
	return nil
}

func (s *SessionModel) IsMatch() bool {
	return s.SessionType == SessionTypeMatch
}
