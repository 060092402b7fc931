package stores

import (
	"github.com/mwhitfield/shopcore/models"
	"github.com/mwhitfield/shopcore/utils"
	"gorm.io/gorm"
)

type CartItemStore struct {
	db *gorm.DB
}

func NewCartItemStore(db *gorm.DB) *CartItemStore {
	return &CartItemStore{db: db}
}

// Create inserts a cart item and returns it joined against the product
// catalog, so total_price and in_stock reflect the catalog at insert time.
func (s *CartItemStore) Create(data *models.CartItem) (*models.CartItemDetail, error) {
	var item models.CartItemDetail
	result := s.db.Raw(`WITH new_cart_item AS (
			INSERT INTO cart_items (cart_id, product_id, quantity)
			VALUES (?, ?, ?)
			RETURNING *
		)
		SELECT
			new_cart_item.*,
			products.name,
			products.price * new_cart_item.quantity AS "total_price",
			products.description,
			products.quantity > 0 AS "in_stock"
		FROM new_cart_item
		JOIN products
			ON new_cart_item.product_id = products.id`,
		data.CartID, data.ProductID, data.Quantity,
	).Scan(&item)
	if result.Error != nil {
		return nil, utils.StorageError("failed to create cart item", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &item, nil
}

// Update sets a cart item's quantity and returns the joined row, or nil when
// no row matched the composite key.
func (s *CartItemStore) Update(data *models.CartItem) (*models.CartItemDetail, error) {
	var item models.CartItemDetail
	result := s.db.Raw(`WITH updated AS (
			UPDATE cart_items
			SET quantity=?, modified=now()
			WHERE cart_id=? AND product_id=?
			RETURNING *
		)
		SELECT
			updated.*,
			products.name,
			products.price * updated.quantity AS "total_price",
			products.description,
			products.quantity > 0 AS "in_stock"
		FROM updated
		JOIN products
			ON updated.product_id = products.id`,
		data.Quantity, data.CartID, data.ProductID,
	).Scan(&item)
	if result.Error != nil {
		return nil, utils.StorageError("failed to update cart item", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &item, nil
}

// FindInCart returns every item in the cart joined against the catalog.
// Unlike the by-user lookups elsewhere, an empty cart yields nil, not an
// empty slice; callers depend on that distinction.
func (s *CartItemStore) FindInCart(cartID uint) ([]models.CartItemDetail, error) {
	var items []models.CartItemDetail
	result := s.db.Raw(`WITH cart AS (
			SELECT *
			FROM cart_items
			WHERE cart_id = ?
		)
		SELECT
			cart.*,
			products.name,
			products.price * cart.quantity AS "total_price",
			products.description,
			products.quantity > 0 AS "in_stock"
		FROM cart
		JOIN products
			ON cart.product_id = products.id`,
		cartID,
	).Scan(&items)
	if result.Error != nil {
		return nil, utils.StorageError("failed to find cart items", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return items, nil
}

// FindOne returns a single cart item by composite key, joined against the
// catalog, or nil if it does not exist.
func (s *CartItemStore) FindOne(cartID, productID uint) (*models.CartItemDetail, error) {
	var item models.CartItemDetail
	result := s.db.Raw(`SELECT
			cart_items.*,
			products.name,
			products.price * cart_items.quantity AS "total_price",
			products.description,
			products.quantity > 0 AS "in_stock"
		FROM cart_items
		JOIN products
			ON cart_items.product_id = products.id
		WHERE cart_id = ?
			AND product_id = ?`,
		cartID, productID,
	).Scan(&item)
	if result.Error != nil {
		return nil, utils.StorageError("failed to find cart item", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &item, nil
}

// Delete removes a cart item and returns it with quantity and total_price
// forced to zero. Name, description and stock still come from the product
// join so the caller can render what was removed.
func (s *CartItemStore) Delete(cartID, productID uint) (*models.CartItemDetail, error) {
	var item models.CartItemDetail
	result := s.db.Raw(`WITH deleted_item AS (
			DELETE FROM cart_items
			WHERE cart_id=? AND product_id=?
			RETURNING *
		)
		SELECT
			deleted_item.cart_id,
			deleted_item.product_id,
			deleted_item.created,
			deleted_item.modified,
			deleted_item.quantity * 0 AS "quantity",
			products.name,
			products.price * 0 AS "total_price",
			products.description,
			products.quantity > 0 AS "in_stock"
		FROM deleted_item
		JOIN products
			ON deleted_item.product_id = products.id`,
		cartID, productID,
	).Scan(&item)
	if result.Error != nil {
		return nil, utils.StorageError("failed to delete cart item", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &item, nil
}
