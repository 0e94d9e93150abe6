package models

import "time"

// Order is a placed order attributed to a customer. Confirmation is a 36-char
// token, generated server-side when the caller does not supply one.
type Order struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CustomerID   uint      `gorm:"not null;index" json:"customer_id"`
	Customer     Customer  `gorm:"foreignKey:CustomerID" json:"-"`
	Confirmation string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"confirmation"`
	TotalAmount  float64   `gorm:"type:decimal(8,2);not null;default:0" json:"totalAmount"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// OrderDetail is one product line on an order. Duplicate (order, product)
// pairs are dropped by the database, not merged.
type OrderDetail struct {
	OrderID   uint    `gorm:"primaryKey;autoIncrement:false" json:"order_id"`
	ProductID uint    `gorm:"primaryKey;autoIncrement:false" json:"product_id"`
	Order     Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product   Product `gorm:"foreignKey:ProductID" json:"-"`
}

// CreateOrderRequest is the payload for placing an order.
type CreateOrderRequest struct {
	CustomerID   uint    `json:"customerId" binding:"required"`
	Confirmation string  `json:"confirmation"`
	TotalAmount  float64 `json:"totalAmount"`
}

// OrderDetailProduct is the nested product reference on an order-line payload.
type OrderDetailProduct struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// AddOrderDetailRequest is the payload for attaching a product to an order.
type AddOrderDetailRequest struct {
	NewProduct *OrderDetailProduct `json:"newProduct" binding:"required"`
	OrderID    uint                `json:"orderId" binding:"required"`
}
