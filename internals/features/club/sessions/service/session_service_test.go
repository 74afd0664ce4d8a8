package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	sessionModel "brezalfc_backend/internals/features/club/sessions/model"
)

func setupSessions(t *testing.T) *SessionService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&sessionModel.SessionModel{}))
	return NewSessionService(db)
}

func mustSession(t *testing.T, svc *SessionService, kind string, startsAt time.Time) *sessionModel.SessionModel {
	t.Helper()
	m := sessionModel.SessionModel{
		SessionType:     kind,
		SessionStartsAt: startsAt,
		SessionLocation: "Campo municipal",
	}
	created, err := svc.Create(context.Background(), &m)
	require.NoError(t, err)
	return created
}

func TestSessionListFilters(t *testing.T) {
	svc := setupSessions(t)
	ctx := context.Background()

	aug := time.Date(2026, 8, 10, 19, 0, 0, 0, time.UTC)
	sep := time.Date(2026, 9, 2, 19, 0, 0, 0, time.UTC)
	mustSession(t, svc, sessionModel.SessionTypeTraining, aug)
	mustSession(t, svc, sessionModel.SessionTypeMatch, aug.AddDate(0, 0, 5))
	mustSession(t, svc, sessionModel.SessionTypeTraining, sep)

	all, err := svc.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	// orden cronológico
	assert.True(t, all[0].SessionStartsAt.Before(all[1].SessionStartsAt))

	matches, err := svc.List(ctx, ListFilter{Type: sessionModel.SessionTypeMatch})
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	august, err := svc.List(ctx, ListFilter{Year: 2026, Month: time.August})
	require.NoError(t, err)
	assert.Len(t, august, 2)
}

func TestSessionCalendarDays(t *testing.T) {
	svc := setupSessions(t)
	ctx := context.Background()

	day10 := time.Date(2026, 8, 10, 19, 0, 0, 0, time.UTC)
	mustSession(t, svc, sessionModel.SessionTypeTraining, day10)
	mustSession(t, svc, sessionModel.SessionTypeMatch, day10.Add(2*time.Hour)) // mismo día
	mustSession(t, svc, sessionModel.SessionTypeTraining, day10.AddDate(0, 0, 7))

	days, err := svc.CalendarDays(ctx, 2026, time.August)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 17}, days)

	empty, err := svc.CalendarDays(ctx, 2026, time.July)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSaveResult(t *testing.T) {
	svc := setupSessions(t)
	ctx := context.Background()

	match := mustSession(t, svc, sessionModel.SessionTypeMatch, time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC))
	training := mustSession(t, svc, sessionModel.SessionTypeTraining, time.Date(2026, 8, 16, 19, 0, 0, 0, time.UTC))

	saved, err := svc.SaveResult(ctx, match.SessionID, 3, 1)
	require.NoError(t, err)
	require.NotNil(t, saved.SessionHomeGoals)
	require.NotNil(t, saved.SessionAwayGoals)
	assert.Equal(t, 3, *saved.SessionHomeGoals)
	assert.Equal(t, 1, *saved.SessionAwayGoals)

	// corregir el marcador pisa el anterior
	saved, err = svc.SaveResult(ctx, match.SessionID, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, *saved.SessionAwayGoals)

	_, err = svc.SaveResult(ctx, training.SessionID, 1, 0)
	assert.ErrorIs(t, err, ErrNotAMatch)
}

func TestSessionDelete(t *testing.T) {
	svc := setupSessions(t)
	ctx := context.Background()

	s := mustSession(t, svc, sessionModel.SessionTypeTraining, time.Date(2026, 8, 20, 19, 0, 0, 0, time.UTC))
	require.NoError(t, svc.Delete(ctx, s.SessionID))

	_, err := svc.GetByID(ctx, s.SessionID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// repetir el borrado: la fila ya no está
	assert.ErrorIs(t, svc.Delete(ctx, s.SessionID), gorm.ErrRecordNotFound)
}
