package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/interiorswala/studio-backend/internal/logger"
	"github.com/interiorswala/studio-backend/internal/types"
)

type PortfolioRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.PortfolioItem, error)
	Add(ctx context.Context, tx *gorm.DB, item *types.PortfolioItem) (*types.PortfolioItem, error)
	Delete(ctx context.Context, tx *gorm.DB, id int64) error
}

type portfolioRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPortfolioRepo(db *gorm.DB, baseLog *logger.Logger) PortfolioRepo {
	return &portfolioRepo{db: db, log: baseLog.With("repo", "PortfolioRepo")}
}

func (pr *portfolioRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.PortfolioItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.PortfolioItem
	if err := transaction.WithContext(ctx).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *portfolioRepo) Add(ctx context.Context, tx *gorm.DB, item *types.PortfolioItem) (*types.PortfolioItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if err := transaction.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes the item with the given id. Deleting an id that does not
// exist is a no-op, not an error.
func (pr *portfolioRepo) Delete(ctx context.Context, tx *gorm.DB, id int64) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.PortfolioItem{}).Error
}
