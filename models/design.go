package models

import "time"

type DesignRequestStatus string

const (
	DesignRequestPending   DesignRequestStatus = "pending"
	DesignRequestAccepted  DesignRequestStatus = "accepted"
	DesignRequestRejected  DesignRequestStatus = "rejected"
	DesignRequestCompleted DesignRequestStatus = "completed"
)

// GeneratedDesign stores one AI-generated jewelry image together with
// the options the user picked to produce it.
type GeneratedDesign struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"index;not null" json:"user_id"`
	SelectedOptions   string    `gorm:"type:jsonb" json:"selected_options"`
	GeneratedImageURL string    `gorm:"size:255" json:"generated_image_url"`
	CreatedAt         time.Time `json:"created_at"`
}

type DesignRequest struct {
	ID                uint                `gorm:"primaryKey" json:"id"`
	UserID            uint                `gorm:"index;not null" json:"user_id"`
	JewelerID         *uint               `json:"jeweler_id,omitempty"`
	GeneratedDesignID *uint               `json:"generated_design_id,omitempty"`
	Description       string              `gorm:"type:text" json:"description"`
	AttachmentURL     string              `gorm:"size:255" json:"attachment_url"`
	EstimatedBudget   *float64            `json:"estimated_budget,omitempty"`
	JewelerPriceOffer *float64            `json:"jeweler_price_offer,omitempty"`
	Status            DesignRequestStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	RequestDate       time.Time           `gorm:"autoCreateTime" json:"request_date"`
}
