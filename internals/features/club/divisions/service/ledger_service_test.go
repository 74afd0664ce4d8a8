package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"brezalfc_backend/internals/apperr"
	divisionModel "brezalfc_backend/internals/features/club/divisions/model"
	playerModel "brezalfc_backend/internals/features/club/players/model"
)

func setupLedgerDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// una sola conexión: mantiene viva la memoria y serializa escritores
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&playerModel.PlayerModel{},
		&divisionModel.DivisionModel{},
		&divisionModel.PlayerDivisionModel{},
	))
	return db
}

func mustPlayer(t *testing.T, db *gorm.DB, first, last string) playerModel.PlayerModel {
	t.Helper()
	p := playerModel.PlayerModel{
		PlayerUserID:    uuid.New(),
		PlayerFirstName: first,
		PlayerLastName:  last,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func mustDivision(t *testing.T, db *gorm.DB, name string) divisionModel.DivisionModel {
	t.Helper()
	d := divisionModel.DivisionModel{DivisionName: name}
	require.NoError(t, db.Create(&d).Error)
	return d
}

func TestLedgerAssignRoundTrip(t *testing.T) {
	db := setupLedgerDB(t)
	svc := NewLedgerService(db)
	ctx := context.Background()

	player := mustPlayer(t, db, "Mario", "Santos")
	senior := mustDivision(t, db, "Senior")
	juvenil := mustDivision(t, db, "Juvenil")

	require.NoError(t, svc.Assign(ctx, player.PlayerID, senior.DivisionID))
	require.NoError(t, svc.Assign(ctx, player.PlayerID, juvenil.DivisionID))

	got, err := svc.ListByPlayer(ctx, player.PlayerID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// orden de categoría: juvenil antes que senior
	assert.Equal(t, "Juvenil", got[0].DivisionName)
	assert.Equal(t, "Senior", got[1].DivisionName)

	roster, err := svc.ListByDivision(ctx, senior.DivisionID)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, player.PlayerID, roster[0].PlayerID)
}

func TestLedgerCapacity(t *testing.T) {
	db := setupLedgerDB(t)
	svc := NewLedgerService(db)
	ctx := context.Background()

	player := mustPlayer(t, db, "Lucía", "Gómez")
	a := mustDivision(t, db, "Cadete")
	b := mustDivision(t, db, "Juvenil")
	c := mustDivision(t, db, "Senior")

	require.NoError(t, svc.Assign(ctx, player.PlayerID, a.DivisionID))
	require.NoError(t, svc.Assign(ctx, player.PlayerID, b.DivisionID))

	err := svc.Assign(ctx, player.PlayerID, c.DivisionID)
	assert.ErrorIs(t, err, apperr.ErrCapacityExceeded)

	ids, err := svc.DivisionIDsOfPlayer(ctx, player.PlayerID)
	require.NoError(t, err)
	assert.Len(t, ids, 2)
}

func TestLedgerAlreadyAssigned(t *testing.T) {
	db := setupLedgerDB(t)
	svc := NewLedgerService(db)
	ctx := context.Background()

	player := mustPlayer(t, db, "Iker", "Ruiz")
	senior := mustDivision(t, db, "Senior")
	juvenil := mustDivision(t, db, "Juvenil")

	require.NoError(t, svc.Assign(ctx, player.PlayerID, senior.DivisionID))
	assert.ErrorIs(t, svc.Assign(ctx, player.PlayerID, senior.DivisionID), apperr.ErrAlreadyAssigned)

	// a tope y repitiendo pareja: gana el diagnóstico de duplicado
	require.NoError(t, svc.Assign(ctx, player.PlayerID, juvenil.DivisionID))
	assert.ErrorIs(t, svc.Assign(ctx, player.PlayerID, senior.DivisionID), apperr.ErrAlreadyAssigned)
}

func TestLedgerUnassignIdempotent(t *testing.T) {
	db := setupLedgerDB(t)
	svc := NewLedgerService(db)
	ctx := context.Background()

	player := mustPlayer(t, db, "Ana", "Pérez")
	senior := mustDivision(t, db, "Senior")

	require.NoError(t, svc.Assign(ctx, player.PlayerID, senior.DivisionID))

	removed, err := svc.Unassign(ctx, player.PlayerID, senior.DivisionID)
	require.NoError(t, err)
	assert.True(t, removed)

	// repetir no es un error
	removed, err = svc.Unassign(ctx, player.PlayerID, senior.DivisionID)
	require.NoError(t, err)
	assert.False(t, removed)

	// y deja hueco para volver a inscribir
	require.NoError(t, svc.Assign(ctx, player.PlayerID, senior.DivisionID))
}

func TestLedgerUnknownIDs(t *testing.T) {
	db := setupLedgerDB(t)
	svc := NewLedgerService(db)
	ctx := context.Background()

	player := mustPlayer(t, db, "Raúl", "Moreno")
	senior := mustDivision(t, db, "Senior")

	assert.ErrorIs(t, svc.Assign(ctx, uuid.New(), senior.DivisionID), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, svc.Assign(ctx, player.PlayerID, uuid.New()), gorm.ErrRecordNotFound)
	_, err := svc.ListByDivision(ctx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// Tres Assign simultáneos sobre el mismo jugador: pase lo que pase con el
// orden, al final sólo puede haber dos inscripciones.
func TestLedgerInterleavedAssigns(t *testing.T) {
	db := setupLedgerDB(t)
	svc := NewLedgerService(db)
	ctx := context.Background()

	player := mustPlayer(t, db, "Carlos", "Vega")
	divisions := []divisionModel.DivisionModel{
		mustDivision(t, db, "Cadete"),
		mustDivision(t, db, "Juvenil"),
		mustDivision(t, db, "Senior"),
	}

	var wg sync.WaitGroup
	errs := make([]error, len(divisions))
	for i, d := range divisions {
		wg.Add(1)
		go func(i int, divisionID uuid.UUID) {
			defer wg.Done()
			errs[i] = svc.Assign(ctx, player.PlayerID, divisionID)
		}(i, d.DivisionID)
	}
	wg.Wait()

	okCount, capCount := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			okCount++
		case err == apperr.ErrCapacityExceeded:
			capCount++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 2, okCount)
	assert.Equal(t, 1, capCount)

	ids, err := svc.DivisionIDsOfPlayer(ctx, player.PlayerID)
	require.NoError(t, err)
	assert.Len(t, ids, MaxDivisionsPerPlayer)
}
