// internals/features/club/gallery/service/gallery_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	photoModel "brezalfc_backend/internals/features/club/gallery/model"
)

// La galería es finita a propósito: las últimas 200 fotos, agrupadas por
// año de temporada. Para un club modesto sobra; si algún día no, paginamos.
const galleryLimit = 200

type GalleryService struct {
	db *gorm.DB
}

func NewGalleryService(db *gorm.DB) *GalleryService {
	return &GalleryService{db: db}
}

type YearGroup struct {
	Year   *int                    `json:"year"`
	Photos []photoModel.PhotoModel `json:"photos"`
}

// ListGrouped: años en orden descendente y, dentro de cada año, las fotos
// más recientes primero. Las fotos sin año van al final.
func (s *GalleryService) ListGrouped(ctx context.Context) ([]YearGroup, error) {
	// sqlite (tests) no entiende NULLS LAST
	order := "photo_year DESC, photo_created_at DESC"
	if s.db.Dialector.Name() == "postgres" {
		order = "photo_year DESC NULLS LAST, photo_created_at DESC"
	}

	var photos []photoModel.PhotoModel
	if err := s.db.WithContext(ctx).
		Order(order).
		Limit(galleryLimit).
		Find(&photos).Error; err != nil {
		return nil, err
	}

	groups := []YearGroup{}
	idx := map[int]int{}
	var noYear *YearGroup
	for _, p := range photos {
		if p.PhotoYear == nil {
			if noYear == nil {
				noYear = &YearGroup{Year: nil, Photos: []photoModel.PhotoModel{}}
			}
			noYear.Photos = append(noYear.Photos, p)
			continue
		}
		y := *p.PhotoYear
		if i, ok := idx[y]; ok {
			groups[i].Photos = append(groups[i].Photos, p)
		} else {
			idx[y] = len(groups)
			year := y
			groups = append(groups, YearGroup{Year: &year, Photos: []photoModel.PhotoModel{p}})
		}
	}
	if noYear != nil {
		groups = append(groups, *noYear)
	}
	return groups, nil
}

func (s *GalleryService) Create(ctx context.Context, p *photoModel.PhotoModel) (*photoModel.PhotoModel, error) {
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	var saved photoModel.PhotoModel
	if err := s.db.WithContext(ctx).Where("photo_id = ?", p.PhotoID).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (s *GalleryService) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Where("photo_id = ?", id).Delete(&photoModel.PhotoModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
