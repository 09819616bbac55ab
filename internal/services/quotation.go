package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/interiorswala/studio-backend/internal/logger"
	"github.com/interiorswala/studio-backend/internal/repos"
	"github.com/interiorswala/studio-backend/internal/types"
)

type QuotationService interface {
	ListQuotations(ctx context.Context) ([]*types.QuotationRequest, error)
	SubmitQuotation(ctx context.Context, request *types.QuotationRequest) (*types.QuotationRequest, error)
	DeleteQuotation(ctx context.Context, id int64) error
}

type quotationService struct {
	db            *gorm.DB
	log           *logger.Logger
	quotationRepo repos.QuotationRepo
	notifier      QuotationNotifier
}

func NewQuotationService(db *gorm.DB, log *logger.Logger, quotationRepo repos.QuotationRepo, notifier QuotationNotifier) QuotationService {
	return &quotationService{
		db:            db,
		log:           log.With("service", "QuotationService"),
		quotationRepo: quotationRepo,
		notifier:      notifier,
	}
}

func (qs *quotationService) ListQuotations(ctx context.Context) ([]*types.QuotationRequest, error) {
	return qs.quotationRepo.List(ctx, nil)
}

// SubmitQuotation persists the request and then notifies connected admin
// listeners with the stored record. Notification failure never surfaces to
// the submitter; persistence alone decides the response.
func (qs *quotationService) SubmitQuotation(ctx context.Context, request *types.QuotationRequest) (*types.QuotationRequest, error) {
	request.ID = 0
	request.CreatedAt = time.Time{}

	persisted, err := qs.quotationRepo.Add(ctx, nil, request)
	if err != nil {
		return nil, err
	}

	if qs.notifier != nil {
		qs.notifier.QuotationCreated(persisted)
	}
	return persisted, nil
}

func (qs *quotationService) DeleteQuotation(ctx context.Context, id int64) error {
	return qs.quotationRepo.Delete(ctx, nil, id)
}
