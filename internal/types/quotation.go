package types

import (
	"time"
)

// QuotationRequest is a client-submitted project inquiry. AIConcept holds the
// serialized output of the concept generator verbatim; it is never parsed on
// the server.
type QuotationRequest struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name" json:"name"`
	Email       string    `gorm:"column:email" json:"email"`
	Phone       string    `gorm:"column:phone" json:"phone"`
	ProjectType string    `gorm:"column:project_type" json:"projectType"`
	Budget      string    `gorm:"column:budget" json:"budget"`
	Message     string    `gorm:"column:message" json:"message"`
	AIConcept   *string   `gorm:"column:ai_concept" json:"aiConcept,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (QuotationRequest) TableName() string { return "quotations" }
