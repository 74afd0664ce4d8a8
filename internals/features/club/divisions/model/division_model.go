package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DivisionModel: las categorías del club (cadete, juvenil, senior...).
type DivisionModel struct {
	DivisionID   uuid.UUID `gorm:"column:division_id;type:uuid;primaryKey" json:"division_id"`
	DivisionName string    `gorm:"column:division_name;size:100;unique;not null" json:"division_name"`

	DivisionCreatedAt time.Time `gorm:"column:division_created_at;autoCreateTime" json:"division_created_at"`
	DivisionUpdatedAt time.Time `gorm:"column:division_updated_at;autoUpdateTime" json:"division_updated_at"`
}

func (DivisionModel) TableName() string {
	return "divisions"
}

func (d *DivisionModel) BeforeCreate(tx *gorm.DB) error {
	if d.DivisionID == uuid.Nil {
		d.DivisionID = uuid.New()
	}
	return nil
}
