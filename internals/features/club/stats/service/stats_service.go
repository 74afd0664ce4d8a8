// internals/features/club/stats/service/stats_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceModel "brezalfc_backend/internals/features/club/attendance/model"
	playerModel "brezalfc_backend/internals/features/club/players/model"
)

// StatsService alimenta al agregador con la tabla de asistencia completa
// y los nombres de la plantilla.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

func (s *StatsService) TeamStats(ctx context.Context) ([]PlayerStat, TeamTotals, error) {
	var rows []attendanceModel.AttendanceModel
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, TeamTotals{}, err
	}

	records := make([]Record, 0, len(rows))
	for _, r := range rows {
		records = append(records, Record{PlayerID: r.AttendancePlayerID, Status: r.AttendanceStatus})
	}

	var players []playerModel.PlayerModel
	if err := s.db.WithContext(ctx).Find(&players).Error; err != nil {
		return nil, TeamTotals{}, err
	}
	names := make(map[uuid.UUID]string, len(players))
	for i := range players {
		names[players[i].PlayerID] = players[i].DisplayName()
	}

	stats, totals := Aggregate(records, names)
	return stats, totals, nil
}
