package models

import "time"

// User is a registered shopper. The password is stored as a bcrypt hash and
// never serialized.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Email        string    `gorm:"type:varchar(255);not null" json:"email"`
	Address      string    `gorm:"type:varchar(255)" json:"address"`
	City         string    `gorm:"type:varchar(255)" json:"city"`
	State        string    `gorm:"type:varchar(255)" json:"state"`
	Zip          string    `gorm:"type:varchar(255)" json:"zip"`
	Country      string    `gorm:"type:varchar(255)" json:"country"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"-"`
}

// Customer attributes an order to a user. Customers are created independently
// of user registration; there is no cascade between the two.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

// RegisterUserRequest is the payload for user registration.
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Address  string `json:"address" binding:"required"`
	City     string `json:"city" binding:"required"`
	State    string `json:"state" binding:"required"`
	Zip      string `json:"zip" binding:"required"`
	Country  string `json:"country" binding:"required"`
}

// CreateCustomerRequest is the payload for attaching a customer record to an
// existing user.
type CreateCustomerRequest struct {
	UserID uint `json:"userId" binding:"required"`
}
