package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	photoModel "brezalfc_backend/internals/features/club/gallery/model"
)

func setupGallery(t *testing.T) *GalleryService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&photoModel.PhotoModel{}))
	return NewGalleryService(db)
}

func addPhoto(t *testing.T, svc *GalleryService, year *int, title string) *photoModel.PhotoModel {
	t.Helper()
	p, err := svc.Create(context.Background(), &photoModel.PhotoModel{
		PhotoURL:        "https://cdn.example.com/gallery/" + uuid.NewString() + ".webp",
		PhotoTitle:      &title,
		PhotoYear:       year,
		PhotoUploadedBy: uuid.New(),
	})
	require.NoError(t, err)
	return p
}

func intp(v int) *int { return &v }

func TestGalleryGroupedByYear(t *testing.T) {
	svc := setupGallery(t)
	ctx := context.Background()

	addPhoto(t, svc, intp(2024), "pretemporada")
	addPhoto(t, svc, intp(2026), "ascenso")
	addPhoto(t, svc, intp(2026), "celebración")
	addPhoto(t, svc, nil, "archivo")

	groups, err := svc.ListGrouped(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 3)

	// años descendentes, las fotos sin año al final
	require.NotNil(t, groups[0].Year)
	assert.Equal(t, 2026, *groups[0].Year)
	assert.Len(t, groups[0].Photos, 2)
	require.NotNil(t, groups[1].Year)
	assert.Equal(t, 2024, *groups[1].Year)
	assert.Nil(t, groups[2].Year)
}

func TestGalleryDelete(t *testing.T) {
	svc := setupGallery(t)
	ctx := context.Background()

	p := addPhoto(t, svc, intp(2025), "equipo")
	require.NoError(t, svc.Delete(ctx, p.PhotoID))
	assert.ErrorIs(t, svc.Delete(ctx, p.PhotoID), gorm.ErrRecordNotFound)

	groups, err := svc.ListGrouped(ctx)
	require.NoError(t, err)
	assert.Empty(t, groups)
}
