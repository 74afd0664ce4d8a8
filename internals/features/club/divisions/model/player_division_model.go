package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerDivisionModel: una inscripción jugador-división. La pareja es
// única; el tope de dos divisiones por jugador lo garantiza el servicio
// dentro de la transacción, no el esquema.
type PlayerDivisionModel struct {
	PlayerDivisionID         uuid.UUID `gorm:"column:player_division_id;type:uuid;primaryKey" json:"player_division_id"`
	PlayerDivisionPlayerID   uuid.UUID `gorm:"column:player_division_player_id;type:uuid;not null;uniqueIndex:uq_player_division" json:"player_division_player_id"`
	PlayerDivisionDivisionID uuid.UUID `gorm:"column:player_division_division_id;type:uuid;not null;uniqueIndex:uq_player_division" json:"player_division_division_id"`

	PlayerDivisionCreatedAt time.Time `gorm:"column:player_division_created_at;autoCreateTime" json:"player_division_created_at"`
}

func (PlayerDivisionModel) TableName() string {
	return "player_divisions"
}

func (pd *PlayerDivisionModel) BeforeCreate(tx *gorm.DB) error {
	if pd.PlayerDivisionID == uuid.Nil {
		pd.PlayerDivisionID = uuid.New()
	}
	return nil
}
