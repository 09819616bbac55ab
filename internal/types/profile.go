package types

import (
	"gorm.io/datatypes"
)

// ProfileID is the fixed primary key of the singleton profile row.
const ProfileID = 1

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type Profile struct {
	ID          int            `gorm:"primaryKey" json:"id"`
	Phone       string         `gorm:"column:phone" json:"phone"`
	Email       string         `gorm:"column:email" json:"email"`
	Address     string         `gorm:"column:address" json:"address"`
	SocialLinks datatypes.JSON `gorm:"column:social_links" json:"socialLinks"`
}

func (Profile) TableName() string { return "profile" }
