package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PhotoModel struct {
	PhotoID    uuid.UUID `gorm:"column:photo_id;type:uuid;primaryKey" json:"photo_id"`
	PhotoURL   string    `gorm:"column:photo_url;not null" json:"photo_url"`
	PhotoTitle *string   `gorm:"column:photo_title;size:200" json:"photo_title,omitempty"`

	// Año de la temporada al que pertenece la foto (no el de subida)
	PhotoYear *int `gorm:"column:photo_year;index" json:"photo_year,omitempty"`

	PhotoUploadedBy uuid.UUID `gorm:"column:photo_uploaded_by;type:uuid;not null" json:"photo_uploaded_by"`

	PhotoCreatedAt time.Time      `gorm:"column:photo_created_at;autoCreateTime" json:"photo_created_at"`
	PhotoDeletedAt gorm.DeletedAt `gorm:"column:photo_deleted_at;index" json:"photo_deleted_at,omitempty"`
}

func (PhotoModel) TableName() string {
	return "photos"
}

func (p *PhotoModel) BeforeCreate(tx *gorm.DB) error {
	if p.PhotoID == uuid.Nil {
		p.PhotoID = uuid.New()
	}
	return nil
}
