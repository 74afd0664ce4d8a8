// internals/features/club/attendance/service/attendance_service.go
package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"brezalfc_backend/internals/apperr"
	attendanceModel "brezalfc_backend/internals/features/club/attendance/model"
	divisionService "brezalfc_backend/internals/features/club/divisions/service"
	playerModel "brezalfc_backend/internals/features/club/players/model"
	sessionModel "brezalfc_backend/internals/features/club/sessions/model"
)

// AttendanceService combina el resolver de elegibilidad con el upsert
// de asistencia. El guardado es siempre en nombre propio: el staff marca
// la suya, no la de otros.
type AttendanceService struct {
	db     *gorm.DB
	ledger *divisionService.LedgerService
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{db: db, ledger: divisionService.NewLedgerService(db)}
}

// SetStatus marca (o re-marca) la asistencia del jugador. Si el resolver
// dice que no es elegible no se escribe nada, ni siquiera pending.
func (s *AttendanceService) SetStatus(ctx context.Context, sessionID, playerID uuid.UUID, role, status string) (*attendanceModel.AttendanceModel, error) {
	if !attendanceModel.IsValidStatus(status) {
		return nil, apperr.ErrInvalidStatus
	}

	var session sessionModel.SessionModel
	if err := s.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&session).Error; err != nil {
		return nil, err
	}
	var player playerModel.PlayerModel
	if err := s.db.WithContext(ctx).Where("player_id = ?", playerID).First(&player).Error; err != nil {
		return nil, err
	}

	divisionIDs, err := s.ledger.DivisionIDsOfPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if !CanMark(role, session.SessionDivisionID, divisionIDs) {
		return nil, apperr.ErrNotEligible
	}

	// upsert: la escritura más reciente gana
	row := attendanceModel.AttendanceModel{
		AttendanceSessionID: sessionID,
		AttendancePlayerID:  playerID,
		AttendanceStatus:    status,
	}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_session_id"},
			{Name: "attendance_player_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"attendance_status", "attendance_updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}

	// reload: el estado autoritativo sale de la tabla, no del struct local
	return s.find(ctx, sessionID, playerID)
}

func (s *AttendanceService) find(ctx context.Context, sessionID, playerID uuid.UUID) (*attendanceModel.AttendanceModel, error) {
	var row attendanceModel.AttendanceModel
	err := s.db.WithContext(ctx).
		Where("attendance_session_id = ? AND attendance_player_id = ?", sessionID, playerID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// StatusOf devuelve el estado registrado; sin fila, el estado es pending.
func (s *AttendanceService) StatusOf(ctx context.Context, sessionID, playerID uuid.UUID) (string, error) {
	row, err := s.find(ctx, sessionID, playerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return attendanceModel.StatusPending, nil
		}
		return "", err
	}
	return row.AttendanceStatus, nil
}

// RosterEntry: una fila de la convocatoria con su estado.
type RosterEntry struct {
	PlayerID    uuid.UUID `json:"player_id"`
	DisplayName string    `json:"display_name"`
	Status      string    `json:"status"`
}

// ListForSession devuelve las respuestas registradas de una sesión,
// ordenadas por nombre visible (empate: player id) para que la lista sea
// estable entre peticiones.
func (s *AttendanceService) ListForSession(ctx context.Context, sessionID uuid.UUID) ([]RosterEntry, error) {
	if err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&sessionModel.SessionModel{}).Error; err != nil {
		return nil, err
	}

	var rows []attendanceModel.AttendanceModel
	if err := s.db.WithContext(ctx).
		Where("attendance_session_id = ?", sessionID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []RosterEntry{}, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.AttendancePlayerID)
	}
	var players []playerModel.PlayerModel
	if err := s.db.WithContext(ctx).
		Where("player_id IN ?", ids).
		Find(&players).Error; err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(players))
	for i := range players {
		names[players[i].PlayerID] = players[i].DisplayName()
	}

	out := make([]RosterEntry, 0, len(rows))
	for _, r := range rows {
		name := names[r.AttendancePlayerID]
		if name == "" {
			// ficha borrada: mismo fallback que DisplayName
			id := r.AttendancePlayerID.String()
			name = id[:8]
		}
		out = append(out, RosterEntry{
			PlayerID:    r.AttendancePlayerID,
			DisplayName: name,
			Status:      r.AttendanceStatus,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayName != out[j].DisplayName {
			return out[i].DisplayName < out[j].DisplayName
		}
		return out[i].PlayerID.String() < out[j].PlayerID.String()
	})
	return out, nil
}

// ListForStats: todas las filas de asistencia (para el agregador).
func (s *AttendanceService) ListForStats(ctx context.Context) ([]attendanceModel.AttendanceModel, error) {
	var rows []attendanceModel.AttendanceModel
	err := s.db.WithContext(ctx).Find(&rows).Error
	return rows, err
}
