package models

import "time"

// CartLine is one product in one user's cart. The (product, user) pair is the
// primary key; a second insert of the same pair is dropped by the database
// (ON CONFLICT DO NOTHING), not merged.
type CartLine struct {
	ProductID   uint      `gorm:"primaryKey;autoIncrement:false" json:"product_id"`
	UserID      uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	Product     Product   `gorm:"foreignKey:ProductID" json:"-"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
	Amount      int       `gorm:"not null" json:"amount"`
	TotalAmount float64   `gorm:"type:decimal(8,2);not null;default:0" json:"totalAmount"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"-"`
}

// CartProductRow is the joined cart view returned to the storefront: cart
// quantities alongside the catalog fields of the product they reference.
type CartProductRow struct {
	UserID      uint    `json:"user_id"`
	ProductID   uint    `json:"product_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Amount      int     `json:"amount"`
	TotalAmount float64 `json:"totalAmount"`
}

// CartLineProduct is the nested product reference of the add payload.
type CartLineProduct struct {
	ProductID uint `json:"product_id" binding:"required"`
	Amount    int  `json:"amount"`
}

// AddCartLineRequest is the payload for adding a product to a cart.
type AddCartLineRequest struct {
	NewProduct  *CartLineProduct `json:"newProduct" binding:"required"`
	UserID      uint             `json:"userId" binding:"required"`
	TotalAmount float64          `json:"totalAmount"`
}

// CartLineAmount is the nested quantity object of update payloads. Unlike
// CartLineProduct it carries no product reference; updates identify the
// product through the request path.
type CartLineAmount struct {
	Amount int `json:"amount"`
}

// UpdateCartLineRequest adjusts the quantity of an existing cart line. When
// NewProduct is absent only the line total is rewritten.
type UpdateCartLineRequest struct {
	NewProduct  *CartLineAmount `json:"newProduct"`
	UserID      uint            `json:"userId" binding:"required"`
	TotalAmount float64         `json:"totalAmount"`
}

// RemoveCartLineRequest identifies whose cart the line is removed from.
type RemoveCartLineRequest struct {
	UserID uint `json:"userId" binding:"required"`
}
