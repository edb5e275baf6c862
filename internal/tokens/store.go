package tokens

import (
	"context"

	"triply/internal/shared/database"

	"gorm.io/gorm"
)

// RefreshStore persists refresh tokens. FindByToken returns
// database.ErrNotFound for unknown tokens and Create returns
// database.ErrDuplicate for a token that already exists.
type RefreshStore interface {
	Create(ctx context.Context, rt *RefreshToken) error
	FindByToken(ctx context.Context, token string) (*RefreshToken, error)
	// Delete removes every record holding token and reports how many went.
	Delete(ctx context.Context, token string) (int64, error)
}

// GormRefreshStore keeps refresh tokens in PostgreSQL
type GormRefreshStore struct {
	db *gorm.DB
}

func NewGormRefreshStore(db *gorm.DB) *GormRefreshStore {
	return &GormRefreshStore{db: db}
}

func (s *GormRefreshStore) Create(ctx context.Context, rt *RefreshToken) error {
	return database.Classify(s.db.WithContext(ctx).Create(rt).Error)
}

func (s *GormRefreshStore) FindByToken(ctx context.Context, token string) (*RefreshToken, error) {
	var rt RefreshToken
	if err := s.db.WithContext(ctx).Where("token = ?", token).First(&rt).Error; err != nil {
		return nil, database.Classify(err)
	}
	return &rt, nil
}

func (s *GormRefreshStore) Delete(ctx context.Context, token string) (int64, error) {
	res := s.db.WithContext(ctx).Where("token = ?", token).Delete(&RefreshToken{})
	if res.Error != nil {
		return 0, database.Classify(res.Error)
	}
	return res.RowsAffected, nil
}
