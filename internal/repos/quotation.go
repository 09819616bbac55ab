package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/interiorswala/studio-backend/internal/logger"
	"github.com/interiorswala/studio-backend/internal/types"
)

type QuotationRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.QuotationRequest, error)
	Add(ctx context.Context, tx *gorm.DB, request *types.QuotationRequest) (*types.QuotationRequest, error)
	Delete(ctx context.Context, tx *gorm.DB, id int64) error
}

type quotationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuotationRepo(db *gorm.DB, baseLog *logger.Logger) QuotationRepo {
	return &quotationRepo{db: db, log: baseLog.With("repo", "QuotationRepo")}
}

// List returns all quotation requests newest first. The id tiebreak keeps the
// order deterministic for requests persisted within the same timestamp tick.
func (qr *quotationRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.QuotationRequest, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}

	var results []*types.QuotationRequest
	if err := transaction.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Add persists the request and returns it with the generated id and createdAt
// filled in, so the caller can broadcast exactly what was stored without a
// second read.
func (qr *quotationRepo) Add(ctx context.Context, tx *gorm.DB, request *types.QuotationRequest) (*types.QuotationRequest, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}

	if err := transaction.WithContext(ctx).Create(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}

func (qr *quotationRepo) Delete(ctx context.Context, tx *gorm.DB, id int64) error {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}

	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.QuotationRequest{}).Error
}
