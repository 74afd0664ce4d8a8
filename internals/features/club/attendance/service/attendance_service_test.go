package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"brezalfc_backend/internals/apperr"
	"brezalfc_backend/internals/constants"
	attendanceModel "brezalfc_backend/internals/features/club/attendance/model"
	divisionModel "brezalfc_backend/internals/features/club/divisions/model"
	divisionService "brezalfc_backend/internals/features/club/divisions/service"
	playerModel "brezalfc_backend/internals/features/club/players/model"
	sessionModel "brezalfc_backend/internals/features/club/sessions/model"
)

type attendanceFixture struct {
	db     *gorm.DB
	svc    *AttendanceService
	ledger *divisionService.LedgerService
}

func setupAttendance(t *testing.T) attendanceFixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&playerModel.PlayerModel{},
		&divisionModel.DivisionModel{},
		&divisionModel.PlayerDivisionModel{},
		&sessionModel.SessionModel{},
		&attendanceModel.AttendanceModel{},
	))
	return attendanceFixture{
		db:     db,
		svc:    NewAttendanceService(db),
		ledger: divisionService.NewLedgerService(db),
	}
}

func (f attendanceFixture) player(t *testing.T, first, last string) playerModel.PlayerModel {
	t.Helper()
	p := playerModel.PlayerModel{PlayerUserID: uuid.New(), PlayerFirstName: first, PlayerLastName: last}
	require.NoError(t, f.db.Create(&p).Error)
	return p
}

func (f attendanceFixture) division(t *testing.T, name string) divisionModel.DivisionModel {
	t.Helper()
	d := divisionModel.DivisionModel{DivisionName: name}
	require.NoError(t, f.db.Create(&d).Error)
	return d
}

func (f attendanceFixture) session(t *testing.T, divisionID *uuid.UUID) sessionModel.SessionModel {
	t.Helper()
	s := sessionModel.SessionModel{
		SessionType:       sessionModel.SessionTypeTraining,
		SessionDivisionID: divisionID,
		SessionStartsAt:   time.Date(2026, 8, 28, 19, 0, 0, 0, time.UTC),
		SessionLocation:   "Campo municipal",
	}
	require.NoError(t, f.db.Create(&s).Error)
	return s
}

func TestSetStatusWriteRead(t *testing.T) {
	f := setupAttendance(t)
	ctx := context.Background()

	senior := f.division(t, "Senior")
	p := f.player(t, "Mario", "Santos")
	require.NoError(t, f.ledger.Assign(ctx, p.PlayerID, senior.DivisionID))
	s := f.session(t, &senior.DivisionID)

	row, err := f.svc.SetStatus(ctx, s.SessionID, p.PlayerID, constants.RolePlayer, attendanceModel.StatusGoing)
	require.NoError(t, err)
	assert.Equal(t, attendanceModel.StatusGoing, row.AttendanceStatus)

	status, err := f.svc.StatusOf(ctx, s.SessionID, p.PlayerID)
	require.NoError(t, err)
	assert.Equal(t, attendanceModel.StatusGoing, status)
}

func TestSetStatusLastWriteWins(t *testing.T) {
	f := setupAttendance(t)
	ctx := context.Background()

	p := f.player(t, "Lucía", "Gómez")
	s := f.session(t, nil) // abierta

	_, err := f.svc.SetStatus(ctx, s.SessionID, p.PlayerID, constants.RolePlayer, attendanceModel.StatusGoing)
	require.NoError(t, err)
	_, err = f.svc.SetStatus(ctx, s.SessionID, p.PlayerID, constants.RolePlayer, attendanceModel.StatusNotGoing)
	require.NoError(t, err)

	// sigue habiendo una sola fila, con el último valor
	var count int64
	require.NoError(t, f.db.Model(&attendanceModel.AttendanceModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	status, err := f.svc.StatusOf(ctx, s.SessionID, p.PlayerID)
	require.NoError(t, err)
	assert.Equal(t, attendanceModel.StatusNotGoing, status)
}

func TestStatusOfDefaultsToPending(t *testing.T) {
	f := setupAttendance(t)
	ctx := context.Background()

	p := f.player(t, "Iker", "Ruiz")
	s := f.session(t, nil)

	status, err := f.svc.StatusOf(ctx, s.SessionID, p.PlayerID)
	require.NoError(t, err)
	assert.Equal(t, attendanceModel.StatusPending, status)
}

func TestSetStatusNotEligibleLeavesNoRow(t *testing.T) {
	f := setupAttendance(t)
	ctx := context.Background()

	senior := f.division(t, "Senior")
	cadete := f.division(t, "Cadete")
	p := f.player(t, "Ana", "Pérez")
	require.NoError(t, f.ledger.Assign(ctx, p.PlayerID, cadete.DivisionID))
	s := f.session(t, &senior.DivisionID)

	_, err := f.svc.SetStatus(ctx, s.SessionID, p.PlayerID, constants.RolePlayer, attendanceModel.StatusGoing)
	assert.ErrorIs(t, err, apperr.ErrNotEligible)

	var count int64
	require.NoError(t, f.db.Model(&attendanceModel.AttendanceModel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	// y su estado sigue siendo el implícito
	status, err := f.svc.StatusOf(ctx, s.SessionID, p.PlayerID)
	require.NoError(t, err)
	assert.Equal(t, attendanceModel.StatusPending, status)
}

func TestSetStatusStaffAlwaysEligible(t *testing.T) {
	f := setupAttendance(t)
	ctx := context.Background()

	senior := f.division(t, "Senior")
	coach := f.player(t, "Míster", "")
	s := f.session(t, &senior.DivisionID)

	_, err := f.svc.SetStatus(ctx, s.SessionID, coach.PlayerID, constants.RoleCoach, attendanceModel.StatusGoing)
	require.NoError(t, err)
}

func TestSetStatusValidation(t *testing.T) {
	f := setupAttendance(t)
	ctx := context.Background()

	p := f.player(t, "Raúl", "Moreno")
	s := f.session(t, nil)

	_, err := f.svc.SetStatus(ctx, s.SessionID, p.PlayerID, constants.RolePlayer, "quizás")
	assert.ErrorIs(t, err, apperr.ErrInvalidStatus)

	// pending explícito sí se puede guardar
	row, err := f.svc.SetStatus(ctx, s.SessionID, p.PlayerID, constants.RolePlayer, attendanceModel.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, attendanceModel.StatusPending, row.AttendanceStatus)

	// sesión inexistente
	_, err = f.svc.SetStatus(ctx, uuid.New(), p.PlayerID, constants.RolePlayer, attendanceModel.StatusGoing)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListForSessionOrdering(t *testing.T) {
	f := setupAttendance(t)
	ctx := context.Background()

	s := f.session(t, nil)
	carla := f.player(t, "Carla", "Núñez")
	alba := f.player(t, "Alba", "Díaz")
	anon := f.player(t, "", "") // sin nombre: cae al id corto

	for _, p := range []playerModel.PlayerModel{carla, alba, anon} {
		_, err := f.svc.SetStatus(ctx, s.SessionID, p.PlayerID, constants.RolePlayer, attendanceModel.StatusGoing)
		require.NoError(t, err)
	}

	entries, err := f.svc.ListForSession(ctx, s.SessionID)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// orden por nombre visible; el fallback de 8 caracteres también cuenta
	names := []string{entries[0].DisplayName, entries[1].DisplayName, entries[2].DisplayName}
	assert.True(t, names[0] <= names[1] && names[1] <= names[2], "orden estable: %v", names)

	found := map[uuid.UUID]string{}
	for _, e := range entries {
		found[e.PlayerID] = e.DisplayName
	}
	assert.Equal(t, "Carla Núñez", found[carla.PlayerID])
	assert.Equal(t, "Alba Díaz", found[alba.PlayerID])
	assert.Equal(t, anon.PlayerUserID.String()[:8], found[anon.PlayerID])

	// sesión desconocida: error, no lista vacía
	_, err = f.svc.ListForSession(ctx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
