package models

import "time"

// User represents an account on the platform.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Username     string    `gorm:"size:100;not null" json:"username"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	IsBlocked    bool      `gorm:"not null;default:false" json:"is_blocked"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	Profile      *Profile  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
}

// Profile holds the public presentation of a user.
type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	Nickname  string    `gorm:"size:100;not null" json:"nickname"`
	Thumbnail string    `gorm:"size:500" json:"thumbnail"`
	ChurchID  *uint     `gorm:"index" json:"church_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Church    *Church   `gorm:"foreignKey:ChurchID;constraint:OnDelete:SET NULL" json:"church,omitempty"`
}

// Church is a congregation users can belong to.
type Church struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:200;not null;index" json:"name"`
	Address     string `gorm:"type:text" json:"address"`
	PhoneNumber string `gorm:"size:20" json:"phone_number"`
}
