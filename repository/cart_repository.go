package repository

import (
	"context"

	"store-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository defines data-access operations for cart lines.
type CartRepository interface {
	// InsertIgnore adds a cart line, keeping any existing (product, user) row
	// untouched. The outcome reports which of the two happened.
	InsertIgnore(ctx context.Context, line *models.CartLine) (UpsertOutcome, error)
	// UpdateAmount rewrites amount and line total for one (product, user) pair.
	// Returns ErrNotFound when no row matched.
	UpdateAmount(ctx context.Context, productID, userID uint, amount int, totalAmount float64) error
	// UpdateTotal rewrites only the line total. Returns ErrNotFound when no
	// row matched.
	UpdateTotal(ctx context.Context, productID, userID uint, totalAmount float64) error
	// Delete removes one (product, user) line. Returns ErrNotFound when no
	// row matched.
	Delete(ctx context.Context, productID, userID uint) error
	// DeleteAllForUser clears a user's cart. Returns ErrNotFound when the
	// cart was already empty.
	DeleteAllForUser(ctx context.Context, userID uint) error
	// FindJoined returns every cart line joined with its catalog product.
	FindJoined(ctx context.Context) ([]models.CartProductRow, error)
}

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository.
func NewGormCartRepository(db *gorm.DB) CartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) InsertIgnore(ctx context.Context, line *models.CartLine) (UpsertOutcome, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(line)
	if res.Error != nil {
		return AlreadyExists, res.Error
	}
	if res.RowsAffected == 0 {
		return AlreadyExists, nil
	}
	return Inserted, nil
}

func (r *GormCartRepository) UpdateAmount(ctx context.Context, productID, userID uint, amount int, totalAmount float64) error {
	res := r.db.WithContext(ctx).
		Model(&models.CartLine{}).
		Where("product_id = ? AND user_id = ?", productID, userID).
		Updates(map[string]interface{}{"amount": amount, "total_amount": totalAmount})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormCartRepository) UpdateTotal(ctx context.Context, productID, userID uint, totalAmount float64) error {
	res := r.db.WithContext(ctx).
		Model(&models.CartLine{}).
		Where("product_id = ? AND user_id = ?", productID, userID).
		Update("total_amount", totalAmount)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormCartRepository) Delete(ctx context.Context, productID, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("product_id = ? AND user_id = ?", productID, userID).
		Delete(&models.CartLine{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormCartRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartLine{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormCartRepository) FindJoined(ctx context.Context) ([]models.CartProductRow, error) {
	rows := []models.CartProductRow{}
	err := r.db.WithContext(ctx).
		Table("cart_lines").
		Select("cart_lines.user_id, cart_lines.product_id, products.name, products.description, products.price, cart_lines.amount, cart_lines.total_amount").
		Joins("JOIN products ON products.id = cart_lines.product_id").
		Order("cart_lines.user_id, cart_lines.product_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
