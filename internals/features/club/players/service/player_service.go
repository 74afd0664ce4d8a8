// internals/features/club/players/service/player_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	playerModel "brezalfc_backend/internals/features/club/players/model"
)

// PlayerService: lecturas y parcheo de fichas. La plantilla se lista
// ordenada por nombre para que el frontend la pinte tal cual.
type PlayerService struct {
	db *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{db: db}
}

func (s *PlayerService) List() ([]playerModel.PlayerModel, error) {
	var players []playerModel.PlayerModel
	err := s.db.
		Order("player_first_name ASC, player_last_name ASC").
		Find(&players).Error
	return players, err
}

func (s *PlayerService) GetByID(playerID uuid.UUID) (*playerModel.PlayerModel, error) {
	var p playerModel.PlayerModel
	if err := s.db.Where("player_id = ?", playerID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PlayerService) GetByUserID(userID uuid.UUID) (*playerModel.PlayerModel, error) {
	var p playerModel.PlayerModel
	if err := s.db.Where("player_user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Save persiste la ficha modificada y la relee (estado autoritativo).
func (s *PlayerService) Save(p *playerModel.PlayerModel) (*playerModel.PlayerModel, error) {
	if err := s.db.Save(p).Error; err != nil {
		return nil, err
	}
	return s.GetByID(p.PlayerID)
}

// SetPhotoURL guarda la URL pública de la foto ya subida a OSS.
func (s *PlayerService) SetPhotoURL(playerID uuid.UUID, url string) (*playerModel.PlayerModel, error) {
	res := s.db.Model(&playerModel.PlayerModel{}).
		Where("player_id = ?", playerID).
		Update("player_photo_url", url)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return s.GetByID(playerID)
}

// Deactivate: baja lógica de la ficha (el usuario sigue existiendo).
func (s *PlayerService) Deactivate(playerID uuid.UUID) error {
	res := s.db.Where("player_id = ?", playerID).Delete(&playerModel.PlayerModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
