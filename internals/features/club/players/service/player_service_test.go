package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	playerModel "brezalfc_backend/internals/features/club/players/model"
)

func setupPlayers(t *testing.T) (*gorm.DB, *PlayerService) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&playerModel.PlayerModel{}))
	return db, NewPlayerService(db)
}

func TestDisplayNameFallback(t *testing.T) {
	p := playerModel.PlayerModel{
		PlayerUserID:    uuid.MustParse("a1b2c3d4-0000-0000-0000-000000000000"),
		PlayerFirstName: "  Mario ",
		PlayerLastName:  " Santos ",
	}
	assert.Equal(t, "Mario Santos", p.DisplayName())

	p.PlayerFirstName, p.PlayerLastName = "", "  "
	assert.Equal(t, "a1b2c3d4", p.DisplayName())

	p.PlayerFirstName = "Mario"
	assert.Equal(t, "Mario", p.DisplayName())
}

func TestPlayerListOrder(t *testing.T) {
	db, svc := setupPlayers(t)
	for _, name := range [][2]string{{"Carla", "Núñez"}, {"Alba", "Díaz"}, {"Berta", "Gil"}} {
		require.NoError(t, db.Create(&playerModel.PlayerModel{
			PlayerUserID:    uuid.New(),
			PlayerFirstName: name[0],
			PlayerLastName:  name[1],
		}).Error)
	}

	players, err := svc.List()
	require.NoError(t, err)
	require.Len(t, players, 3)
	assert.Equal(t, "Alba", players[0].PlayerFirstName)
	assert.Equal(t, "Berta", players[1].PlayerFirstName)
	assert.Equal(t, "Carla", players[2].PlayerFirstName)
}

func TestSetPhotoURLAndDeactivate(t *testing.T) {
	db, svc := setupPlayers(t)
	p := playerModel.PlayerModel{PlayerUserID: uuid.New(), PlayerFirstName: "Iker"}
	require.NoError(t, db.Create(&p).Error)

	saved, err := svc.SetPhotoURL(p.PlayerID, "https://cdn.example.com/players/x.webp")
	require.NoError(t, err)
	require.NotNil(t, saved.PlayerPhotoURL)
	assert.Equal(t, "https://cdn.example.com/players/x.webp", *saved.PlayerPhotoURL)

	_, err = svc.SetPhotoURL(uuid.New(), "https://cdn.example.com/otro.webp")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, svc.Deactivate(p.PlayerID))
	_, err = svc.GetByID(p.PlayerID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// la fila sigue en la tabla (soft delete)
	var count int64
	require.NoError(t, db.Unscoped().Model(&playerModel.PlayerModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
