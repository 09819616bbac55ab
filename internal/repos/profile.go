package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/interiorswala/studio-backend/internal/logger"
	"github.com/interiorswala/studio-backend/internal/types"
)

type ProfileRepo interface {
	Get(ctx context.Context, tx *gorm.DB) (*types.Profile, error)
	Put(ctx context.Context, tx *gorm.DB, profile *types.Profile) error
}

type profileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
	return &profileRepo{db: db, log: baseLog.With("repo", "ProfileRepo")}
}

func (pr *profileRepo) Get(ctx context.Context, tx *gorm.DB) (*types.Profile, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var profile types.Profile
	if err := transaction.WithContext(ctx).
		First(&profile, "id = ?", types.ProfileID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Put overwrites every profile field for the singleton row. There is no
// partial update; callers resend the whole object.
func (pr *profileRepo) Put(ctx context.Context, tx *gorm.DB, profile *types.Profile) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	updates := map[string]any{
		"phone":        profile.Phone,
		"email":        profile.Email,
		"address":      profile.Address,
		"social_links": profile.SocialLinks,
	}
	return transaction.WithContext(ctx).
		Model(&types.Profile{}).
		Where("id = ?", types.ProfileID).
		Updates(updates).Error
}
