package types

type PortfolioItem struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title    string `gorm:"column:title" json:"title"`
	Category string `gorm:"column:category" json:"category"`
	Image    string `gorm:"column:image" json:"image"`
}

func (PortfolioItem) TableName() string { return "portfolio" }
