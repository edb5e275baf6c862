package itineraries

import (
	"context"
	"strings"

	"triply/internal/shared/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListFilter narrows the itinerary listing. Zero values match everything.
type ListFilter struct {
	Name   string
	UserID *uuid.UUID
}

// Repository errors are the database kinds: ErrNotFound, ErrDuplicate and
// ErrForeignKey.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Itinerary, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Itinerary, error)
	GetFull(ctx context.Context, id uuid.UUID) (*Itinerary, error)
	Create(ctx context.Context, it *Itinerary) error
	Save(ctx context.Context, it *Itinerary) error
	DeleteCascade(ctx context.Context, id uuid.UUID) error

	ListDetails(ctx context.Context, itineraryID uuid.UUID) ([]Details, error)
	GetDetails(ctx context.Context, itineraryID uuid.UUID) (*Details, error)
	CreateDetails(ctx context.Context, d *Details) error
	SaveDetails(ctx context.Context, d *Details) error
	DeleteDetails(ctx context.Context, itineraryID uuid.UUID) error

	ListOptional(ctx context.Context, detailID uuid.UUID) ([]Optional, error)
	GetOptional(ctx context.Context, id uuid.UUID) (*Optional, error)
	CreateOptional(ctx context.Context, o *Optional) error
	SaveOptional(ctx context.Context, o *Optional) error
	DeleteOptional(ctx context.Context, id uuid.UUID) error

	ListMedia(ctx context.Context, itineraryID uuid.UUID) ([]Media, error)
	GetMedia(ctx context.Context, id uuid.UUID) (*Media, error)
	CreateMedia(ctx context.Context, m *Media) error
	SaveMedia(ctx context.Context, m *Media) error
	DeleteMedia(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Itinerary, error) {
	query := r.db.WithContext(ctx).Model(&Itinerary{})
	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+escapeLike(filter.Name)+"%")
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var items []Itinerary
	if err := query.Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, database.Classify(err)
	}
	return items, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Itinerary, error) {
	var it Itinerary
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&it).Error; err != nil {
		return nil, database.Classify(err)
	}
	return &it, nil
}

func (r *repository) GetFull(ctx context.Context, id uuid.UUID) (*Itinerary, error) {
	var it Itinerary
	err := r.db.WithContext(ctx).
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Details").
		Preload("Details.Optional", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ?", id).
		First(&it).Error
	if err != nil {
		return nil, database.Classify(err)
	}
	return &it, nil
}

func (r *repository) Create(ctx context.Context, it *Itinerary) error {
	return database.Classify(r.db.WithContext(ctx).Omit(clause.Associations).Create(it).Error)
}

func (r *repository) Save(ctx context.Context, it *Itinerary) error {
	return database.Classify(r.db.WithContext(ctx).Omit(clause.Associations).Save(it).Error)
}

// DeleteCascade removes the itinerary and everything hanging off it in one
// transaction.
func (r *repository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		details := tx.Model(&Details{}).Select("id").Where("itinerary_id = ?", id)
		if err := tx.Where("detail_id IN (?)", details).Delete(&Optional{}).Error; err != nil {
			return err
		}
		if err := tx.Where("itinerary_id = ?", id).Delete(&Details{}).Error; err != nil {
			return err
		}
		if err := tx.Where("itinerary_id = ?", id).Delete(&Media{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&Itinerary{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return database.Classify(err)
}

func (r *repository) ListDetails(ctx context.Context, itineraryID uuid.UUID) ([]Details, error) {
	var items []Details
	if err := r.db.WithContext(ctx).Where("itinerary_id = ?", itineraryID).Find(&items).Error; err != nil {
		return nil, database.Classify(err)
	}
	return items, nil
}

func (r *repository) GetDetails(ctx context.Context, itineraryID uuid.UUID) (*Details, error) {
	var d Details
	if err := r.db.WithContext(ctx).Where("itinerary_id = ?", itineraryID).First(&d).Error; err != nil {
		return nil, database.Classify(err)
	}
	return &d, nil
}

func (r *repository) CreateDetails(ctx context.Context, d *Details) error {
	return database.Classify(r.db.WithContext(ctx).Omit(clause.Associations).Create(d).Error)
}

func (r *repository) SaveDetails(ctx context.Context, d *Details) error {
	return database.Classify(r.db.WithContext(ctx).Omit(clause.Associations).Save(d).Error)
}

func (r *repository) DeleteDetails(ctx context.Context, itineraryID uuid.UUID) error {
	return deleteOne(r.db.WithContext(ctx).Where("itinerary_id = ?", itineraryID).Delete(&Details{}))
}

func (r *repository) ListOptional(ctx context.Context, detailID uuid.UUID) ([]Optional, error) {
	var items []Optional
	err := r.db.WithContext(ctx).Where("detail_id = ?", detailID).Order("created_at ASC").Find(&items).Error
	if err != nil {
		return nil, database.Classify(err)
	}
	return items, nil
}

func (r *repository) GetOptional(ctx context.Context, id uuid.UUID) (*Optional, error) {
	var o Optional
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&o).Error; err != nil {
		return nil, database.Classify(err)
	}
	return &o, nil
}

func (r *repository) CreateOptional(ctx context.Context, o *Optional) error {
	return database.Classify(r.db.WithContext(ctx).Create(o).Error)
}

func (r *repository) SaveOptional(ctx context.Context, o *Optional) error {
	return database.Classify(r.db.WithContext(ctx).Save(o).Error)
}

func (r *repository) DeleteOptional(ctx context.Context, id uuid.UUID) error {
	return deleteOne(r.db.WithContext(ctx).Where("id = ?", id).Delete(&Optional{}))
}

func (r *repository) ListMedia(ctx context.Context, itineraryID uuid.UUID) ([]Media, error) {
	var items []Media
	err := r.db.WithContext(ctx).Where("itinerary_id = ?", itineraryID).Order("created_at ASC").Find(&items).Error
	if err != nil {
		return nil, database.Classify(err)
	}
	return items, nil
}

func (r *repository) GetMedia(ctx context.Context, id uuid.UUID) (*Media, error) {
	var m Media
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, database.Classify(err)
	}
	return &m, nil
}

func (r *repository) CreateMedia(ctx context.Context, m *Media) error {
	return database.Classify(r.db.WithContext(ctx).Create(m).Error)
}

func (r *repository) SaveMedia(ctx context.Context, m *Media) error {
	return database.Classify(r.db.WithContext(ctx).Save(m).Error)
}

func (r *repository) DeleteMedia(ctx context.Context, id uuid.UUID) error {
	return deleteOne(r.db.WithContext(ctx).Where("id = ?", id).Delete(&Media{}))
}

func deleteOne(res *gorm.DB) error {
	if res.Error != nil {
		return database.Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return database.Classify(gorm.ErrRecordNotFound)
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
