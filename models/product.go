package models

import "time"

// Product is a catalog entry. Products are seeded once and never updated or
// deleted through the API.
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:varchar(255);not null" json:"description"`
	Price       float64   `gorm:"type:decimal(6,2);not null" json:"price"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"-"`
}

// CreateProductRequest is the payload for seeding a catalog entry.
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}
