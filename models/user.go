package models

import "time"

type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Username  string     `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email     string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password  string     `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialized
	FirstName string     `gorm:"size:50" json:"first_name"`
	LastName  string     `gorm:"size:50" json:"last_name"`
	Phone     string     `gorm:"size:20" json:"phone"`
	DOB       *time.Time `json:"dob,omitempty"`
	Gender    string     `gorm:"size:10" json:"gender"`
	Address   string     `gorm:"type:text" json:"address"`
	Cart      *Cart      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Orders    []Order    `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time  `json:"created_at"`
}
