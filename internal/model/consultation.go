package model

import "time"

// ConsultationStatus is the lifecycle state of a consultation.
type ConsultationStatus string

const (
	ConsultationPending   ConsultationStatus = "pending"
	ConsultationActive    ConsultationStatus = "active"
	ConsultationCompleted ConsultationStatus = "completed"
)

// Consultation links a user with a dietitian.
type Consultation struct {
	ID          uint               `json:"id" gorm:"primaryKey"`
	UserID      uint               `json:"user_id" gorm:"not null;index"`
	DietitianID uint               `json:"dietitian_id" gorm:"not null;index"`
	Status      ConsultationStatus `json:"status" gorm:"size:20;not null;default:'pending';check:chk_consultations_status,status IN ('pending','active','completed')"`
	Notes       string             `json:"notes" gorm:"type:text"`
	CreatedAt   time.Time          `json:"created_at"`
}
