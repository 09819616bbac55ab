package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/interiorswala/studio-backend/internal/logger"
	"github.com/interiorswala/studio-backend/internal/repos"
	"github.com/interiorswala/studio-backend/internal/types"
)

type ProfileService interface {
	GetProfile(ctx context.Context) (*types.Profile, error)
	ReplaceProfile(ctx context.Context, profile *types.Profile) error
}

type profileService struct {
	db          *gorm.DB
	log         *logger.Logger
	profileRepo repos.ProfileRepo
}

func NewProfileService(db *gorm.DB, log *logger.Logger, profileRepo repos.ProfileRepo) ProfileService {
	return &profileService{
		db:          db,
		log:         log.With("service", "ProfileService"),
		profileRepo: profileRepo,
	}
}

func (ps *profileService) GetProfile(ctx context.Context) (*types.Profile, error) {
	return ps.profileRepo.Get(ctx, nil)
}

func (ps *profileService) ReplaceProfile(ctx context.Context, profile *types.Profile) error {
	if len(profile.SocialLinks) == 0 {
		profile.SocialLinks = []byte("[]")
	}
	return ps.profileRepo.Put(ctx, nil, profile)
}
