package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/interiorswala/studio-backend/internal/logger"
	"github.com/interiorswala/studio-backend/internal/repos"
	"github.com/interiorswala/studio-backend/internal/types"
)

type PortfolioService interface {
	ListPortfolio(ctx context.Context) ([]*types.PortfolioItem, error)
	AddPortfolioItem(ctx context.Context, item *types.PortfolioItem) (int64, error)
	DeletePortfolioItem(ctx context.Context, id int64) error
}

type portfolioService struct {
	db            *gorm.DB
	log           *logger.Logger
	portfolioRepo repos.PortfolioRepo
}

func NewPortfolioService(db *gorm.DB, log *logger.Logger, portfolioRepo repos.PortfolioRepo) PortfolioService {
	return &portfolioService{
		db:            db,
		log:           log.With("service", "PortfolioService"),
		portfolioRepo: portfolioRepo,
	}
}

func (ps *portfolioService) ListPortfolio(ctx context.Context) ([]*types.PortfolioItem, error) {
	return ps.portfolioRepo.List(ctx, nil)
}

func (ps *portfolioService) AddPortfolioItem(ctx context.Context, item *types.PortfolioItem) (int64, error) {
	item.ID = 0
	created, err := ps.portfolioRepo.Add(ctx, nil, item)
	if err != nil {
		return 0, err
	}
	return created.ID, nil
}

func (ps *portfolioService) DeletePortfolioItem(ctx context.Context, id int64) error {
	return ps.portfolioRepo.Delete(ctx, nil, id)
}
