package db

import (
	"encoding/json"
	"fmt"

	"github.com/interiorswala/studio-backend/internal/types"
)

var defaultSocialLinks = []types.SocialLink{
	{Platform: "Instagram", URL: "https://instagram.com/interiorswala"},
	{Platform: "Facebook", URL: "https://facebook.com/interiorswala"},
	{Platform: "LinkedIn", URL: "https://linkedin.com/company/interiorswala"},
}

var starterPortfolio = []types.PortfolioItem{
	{Title: "The Minimalist Penthouse", Category: "Residential", Image: "https://images.unsplash.com/photo-1594026112284-02bb6f3352fe?auto=format&fit=crop&w=800&q=80"},
	{Title: "Modern Heritage Villa", Category: "Residential", Image: "https://images.unsplash.com/photo-1616137422495-1e9e46e2aa77?auto=format&fit=crop&w=800&q=80"},
	{Title: "Azure Kitchen Suite", Category: "Kitchen", Image: "https://images.unsplash.com/photo-1556911220-e15b29be8c8f?auto=format&fit=crop&w=800&q=80"},
	{Title: "Velvet Master Suite", Category: "Bedroom", Image: "https://images.unsplash.com/photo-1540518614846-7eded433c457?auto=format&fit=crop&w=800&q=80"},
	{Title: "Monochrome Wardrobe", Category: "Storage", Image: "https://images.unsplash.com/photo-1595428774223-ef52624120d2?auto=format&fit=crop&w=800&q=80"},
	{Title: "Contemporary Lounge", Category: "Living", Image: "https://images.unsplash.com/photo-1616486338812-3dadae4b4ace?auto=format&fit=crop&w=800&q=80"},
}

// SeedDefaults bootstraps an empty database. The checks are on emptiness, not
// presence of specific ids, so records deleted through the admin dashboard are
// not resurrected on restart.
func (s *SQLiteService) SeedDefaults() error {
	var profileCount int64
	if err := s.db.Model(&types.Profile{}).Count(&profileCount).Error; err != nil {
		return fmt.Errorf("count profile rows: %w", err)
	}
	if profileCount == 0 {
		links, err := json.Marshal(defaultSocialLinks)
		if err != nil {
			return fmt.Errorf("encode default social links: %w", err)
		}
		profile := types.Profile{
			ID:          types.ProfileID,
			Phone:       "+91 79808 72754",
			Email:       "contact.interiorswala@gmail.com",
			Address:     "Mangal Pandey Sarni, Ward 38, East Vivekananda Pally, Rabindra Sarani, Siliguri, West Bengal 734001",
			SocialLinks: links,
		}
		if err := s.db.Create(&profile).Error; err != nil {
			return fmt.Errorf("seed profile: %w", err)
		}
		s.log.Info("Seeded default profile")
	}

	var portfolioCount int64
	if err := s.db.Model(&types.PortfolioItem{}).Count(&portfolioCount).Error; err != nil {
		return fmt.Errorf("count portfolio rows: %w", err)
	}
	if portfolioCount == 0 {
		items := make([]types.PortfolioItem, len(starterPortfolio))
		copy(items, starterPortfolio)
		if err := s.db.Create(&items).Error; err != nil {
			return fmt.Errorf("seed portfolio: %w", err)
		}
		s.log.Info("Seeded starter portfolio", "items", len(items))
	}

	return nil
}
