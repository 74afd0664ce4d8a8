// internals/features/club/divisions/service/ledger_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"brezalfc_backend/internals/apperr"
	divisionModel "brezalfc_backend/internals/features/club/divisions/model"
	playerModel "brezalfc_backend/internals/features/club/players/model"
)

// MaxDivisionsPerPlayer: un jugador puede estar como mucho en dos
// categorías a la vez (p. ej. juvenil que sube con el senior).
const MaxDivisionsPerPlayer = 2

// LedgerService es la única puerta de escritura sobre player_divisions.
// Escribir por fuera del servicio rompe la garantía del tope.
type LedgerService struct {
	db *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{db: db}
}

// Assign inscribe al jugador en la división. Todo ocurre dentro de una
// transacción con la fila del jugador bloqueada (en postgres), de forma
// que dos Assign simultáneos sobre el mismo jugador se serializan y el
// recuento que decide el tope es siempre el real.
func (s *LedgerService) Assign(ctx context.Context, playerID, divisionID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Candado por jugador. sqlite (tests) no soporta FOR UPDATE;
		// ahí serializa la conexión única del pool.
		playerQ := tx.Model(&playerModel.PlayerModel{}).Where("player_id = ?", playerID)
		if tx.Dialector.Name() == "postgres" {
			playerQ = playerQ.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var player playerModel.PlayerModel
		if err := playerQ.First(&player).Error; err != nil {
			return err
		}

		var division divisionModel.DivisionModel
		if err := tx.Where("division_id = ?", divisionID).First(&division).Error; err != nil {
			return err
		}

		// La pareja repetida gana a cualquier otro diagnóstico
		var dup int64
		if err := tx.Model(&divisionModel.PlayerDivisionModel{}).
			Where("player_division_player_id = ? AND player_division_division_id = ?", playerID, divisionID).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return apperr.ErrAlreadyAssigned
		}

		var live int64
		if err := tx.Model(&divisionModel.PlayerDivisionModel{}).
			Where("player_division_player_id = ?", playerID).
			Count(&live).Error; err != nil {
			return err
		}
		if live >= MaxDivisionsPerPlayer {
			return apperr.ErrCapacityExceeded
		}

		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&divisionModel.PlayerDivisionModel{
				PlayerDivisionPlayerID:   playerID,
				PlayerDivisionDivisionID: divisionID,
			})
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				return apperr.ErrAlreadyAssigned
			}
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.ErrAlreadyAssigned
		}
		return nil
	})
}

// Unassign borra la inscripción si existe. Es idempotente: repetirlo no
// es un error, sólo devuelve removed=false.
func (s *LedgerService) Unassign(ctx context.Context, playerID, divisionID uuid.UUID) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("player_division_player_id = ? AND player_division_division_id = ?", playerID, divisionID).
		Delete(&divisionModel.PlayerDivisionModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListByPlayer devuelve las divisiones del jugador en orden de categoría.
func (s *LedgerService) ListByPlayer(ctx context.Context, playerID uuid.UUID) ([]divisionModel.DivisionModel, error) {
	var out []divisionModel.DivisionModel
	err := s.db.WithContext(ctx).
		Joins("JOIN player_divisions pd ON pd.player_division_division_id = divisions.division_id").
		Where("pd.player_division_player_id = ?", playerID).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	SortDivisions(out)
	return out, nil
}

// DivisionIDsOfPlayer: versión ligera para el resolver de asistencia.
func (s *LedgerService) DivisionIDsOfPlayer(ctx context.Context, playerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.WithContext(ctx).
		Model(&divisionModel.PlayerDivisionModel{}).
		Where("player_division_player_id = ?", playerID).
		Pluck("player_division_division_id", &ids).Error
	return ids, err
}

// ListByDivision devuelve la plantilla de una división ordenada por nombre.
func (s *LedgerService) ListByDivision(ctx context.Context, divisionID uuid.UUID) ([]playerModel.PlayerModel, error) {
	if err := s.db.WithContext(ctx).
		Where("division_id = ?", divisionID).
		First(&divisionModel.DivisionModel{}).Error; err != nil {
		return nil, err
	}

	var out []playerModel.PlayerModel
	err := s.db.WithContext(ctx).
		Joins("JOIN player_divisions pd ON pd.player_division_player_id = players.player_id").
		Where("pd.player_division_division_id = ?", divisionID).
		Order("players.player_first_name ASC, players.player_last_name ASC, players.player_id ASC").
		Find(&out).Error
	return out, err
}

// ListAll: todas las divisiones en orden de categoría.
func (s *LedgerService) ListAll(ctx context.Context) ([]divisionModel.DivisionModel, error) {
	var out []divisionModel.DivisionModel
	if err := s.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	SortDivisions(out)
	return out, nil
}

// CreateDivision da de alta una categoría nueva (staff).
func (s *LedgerService) CreateDivision(ctx context.Context, name string) (*divisionModel.DivisionModel, error) {
	d := divisionModel.DivisionModel{DivisionName: name}
	if err := s.db.WithContext(ctx).Create(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}
