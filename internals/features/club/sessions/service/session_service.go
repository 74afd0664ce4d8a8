// internals/features/club/sessions/service/session_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	sessionModel "brezalfc_backend/internals/features/club/sessions/model"
)

// ErrNotAMatch: se intentó guardar un marcador sobre un entrenamiento.
var ErrNotAMatch = errors.New("la sesión no es un partido")

type SessionService struct {
	db *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{db: db}
}

type ListFilter struct {
	Type  string // "", "training" o "match"
	Year  int    // 0 = sin filtro de mes
	Month time.Month
}

func (s *SessionService) Create(ctx context.Context, m *sessionModel.SessionModel) (*sessionModel.SessionModel, error) {
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return s.GetByID(ctx, m.SessionID)
}

func (s *SessionService) GetByID(ctx context.Context, id uuid.UUID) (*sessionModel.SessionModel, error) {
	var m sessionModel.SessionModel
	if err := s.db.WithContext(ctx).Where("session_id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *SessionService) List(ctx context.Context, f ListFilter) ([]sessionModel.SessionModel, error) {
	q := s.db.WithContext(ctx).Model(&sessionModel.SessionModel{})
	if f.Type != "" {
		q = q.Where("session_type = ?", f.Type)
	}
	if f.Year > 0 {
		from := time.Date(f.Year, f.Month, 1, 0, 0, 0, 0, time.UTC)
		q = q.Where("session_starts_at >= ? AND session_starts_at < ?", from, from.AddDate(0, 1, 0))
	}
	var out []sessionModel.SessionModel
	err := q.Order("session_starts_at ASC").Find(&out).Error
	return out, err
}

// CalendarDays devuelve los días del mes (1..31) que tienen alguna sesión,
// para pintar el calendario sin bajarse las sesiones enteras.
func (s *SessionService) CalendarDays(ctx context.Context, year int, month time.Month) ([]int, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	var sessions []sessionModel.SessionModel
	err := s.db.WithContext(ctx).
		Select("session_starts_at").
		Where("session_starts_at >= ? AND session_starts_at < ?", from, from.AddDate(0, 1, 0)).
		Order("session_starts_at ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	seen := map[int]bool{}
	days := make([]int, 0, len(sessions))
	for _, m := range sessions {
		d := m.SessionStartsAt.UTC().Day()
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	return days, nil
}

func (s *SessionService) Save(ctx context.Context, m *sessionModel.SessionModel) (*sessionModel.SessionModel, error) {
	if err := s.db.WithContext(ctx).Save(m).Error; err != nil {
		return nil, err
	}
	return s.GetByID(ctx, m.SessionID)
}

// SaveResult apunta el marcador de un partido. Sobre un entrenamiento no
// tiene sentido y se rechaza.
func (s *SessionService) SaveResult(ctx context.Context, id uuid.UUID, homeGoals, awayGoals int) (*sessionModel.SessionModel, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !m.IsMatch() {
		return nil, ErrNotAMatch
	}
	err = s.db.WithContext(ctx).Model(&sessionModel.SessionModel{}).
		Where("session_id = ?", id).
		Updates(map[string]any{
			"session_home_goals": homeGoals,
			"session_away_goals": awayGoals,
		}).Error
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *SessionService) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Where("session_id = ?", id).Delete(&sessionModel.SessionModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
