package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PlayerModel es la ficha deportiva asociada 1:1 a un usuario. Nunca se
// borra en duro; la baja es soft delete para no perder historial de
// asistencia.
type PlayerModel struct {
	PlayerID     uuid.UUID `gorm:"column:player_id;type:uuid;primaryKey" json:"player_id"`
	PlayerUserID uuid.UUID `gorm:"column:player_user_id;type:uuid;unique;not null" json:"player_user_id"`

	PlayerFirstName string `gorm:"column:player_first_name;size:100;not null;default:''" json:"player_first_name"`
	PlayerLastName  string `gorm:"column:player_last_name;size:100;not null;default:''" json:"player_last_name"`

	// El dorsal no es único: jugadores de divisiones distintas pueden repetir
	PlayerJerseyNumber *int            `gorm:"column:player_jersey_number" json:"player_jersey_number,omitempty"`
	PlayerPosition     *string         `gorm:"column:player_position;size:50" json:"player_position,omitempty"`
	PlayerBirthDate    *datatypes.Date `gorm:"column:player_birth_date" json:"player_birth_date,omitempty"`
	PlayerPhotoURL     *string         `gorm:"column:player_photo_url" json:"player_photo_url,omitempty"`

	PlayerCreatedAt time.Time      `gorm:"column:player_created_at;autoCreateTime" json:"player_created_at"`
	PlayerUpdatedAt time.Time      `gorm:"column:player_updated_at;autoUpdateTime" json:"player_updated_at"`
	PlayerDeletedAt gorm.DeletedAt `gorm:"column:player_deleted_at;index" json:"player_deleted_at,omitempty"`
}

func (PlayerModel) TableName() string {
	return "players"
}

func (p *PlayerModel) BeforeCreate(tx *gorm.DB) error {
	if p.PlayerID == uuid.Nil {
		p.PlayerID = uuid.New()
	}
	return nil
}

// DisplayName devuelve "Nombre Apellidos" o, si la ficha está vacía, los
// primeros 8 caracteres del user id (mismo fallback que usa el frontend).
func (p *PlayerModel) DisplayName() string {
	full := strings.TrimSpace(strings.TrimSpace(p.PlayerFirstName) + " " + strings.TrimSpace(p.PlayerLastName))
	if full != "" {
		return full
	}
	id := p.PlayerUserID.String()
	if len(id) > 8 {
		id = id[:8]
	}
	return id
}
