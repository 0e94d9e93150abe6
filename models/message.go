package models

import "time"

// MessageFrom is an inbound contact-form submission. Write-only log.
type MessageFrom struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Subject   string    `gorm:"type:varchar(255);not null" json:"subject"`
	FromName  string    `gorm:"type:varchar(255);not null" json:"from_name"`
	FromEmail string    `gorm:"type:varchar(255);not null" json:"from_email"`
	Message   string    `gorm:"type:varchar(255);not null" json:"message"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

// MessageTo records an outbound order-confirmation notice. Write-only log.
type MessageTo struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProductID  uint      `gorm:"not null" json:"product_id"`
	CustomerID uint      `gorm:"not null" json:"customer_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"-"`
}

// ContactMessage is the nested body of a contact-form submission.
type ContactMessage struct {
	Subject   string `json:"subject" binding:"required"`
	FromName  string `json:"from_name" binding:"required"`
	FromEmail string `json:"from_email" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// CreateMessageFromRequest is the payload for the contact form.
type CreateMessageFromRequest struct {
	Data *ContactMessage `json:"data" binding:"required"`
}

// CreateMessageToRequest is the payload for logging an order confirmation.
type CreateMessageToRequest struct {
	ProductID  uint `json:"productId" binding:"required"`
	CustomerID uint `json:"customerId" binding:"required"`
}
