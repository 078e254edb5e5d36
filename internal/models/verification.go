package models

import (
	"strings"
	"time"
)

// VerificationStatus defines lifecycle states for identity verification requests.
type VerificationStatus string

const (
	// VerificationStatusPending indicates the request is awaiting review.
	VerificationStatusPending VerificationStatus = "pending"
	// VerificationStatusApproved indicates the request was accepted.
	VerificationStatusApproved VerificationStatus = "approved"
	// VerificationStatusRejected indicates the request was denied.
	VerificationStatusRejected VerificationStatus = "rejected"
)

// Valid reports whether s is a known status.
func (s VerificationStatus) Valid() bool {
	switch s {
	case VerificationStatusPending, VerificationStatusApproved, VerificationStatusRejected:
		return true
	}
	return false
}

// ParseVerificationStatus converts raw input into a VerificationStatus.
func ParseVerificationStatus(raw string) (VerificationStatus, error) {
	s := VerificationStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", NewValidationError("Invalid status")
	}
	return s, nil
}

// IdentityVerification is a user-submitted proof of church membership.
type IdentityVerification struct {
	ID         uint               `gorm:"primaryKey" json:"id"`
	UserID     uint               `gorm:"not null;index" json:"user_id"`
	PhotoURL   string             `gorm:"size:500;not null" json:"photo_url"`
	ChurchID   *uint              `gorm:"index" json:"church_id,omitempty"`
	Status     VerificationStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	ReviewedBy *uint              `json:"reviewed_by,omitempty"`
	CreatedAt  time.Time          `gorm:"index" json:"created_at"`
	ReviewedAt *time.Time         `json:"reviewed_at,omitempty"`
	User       *User              `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Church     *Church            `gorm:"foreignKey:ChurchID;constraint:OnDelete:SET NULL" json:"-"`
}
