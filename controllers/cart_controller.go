package controllers

import (
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/mwhitfield/shopcore/config"
	"github.com/mwhitfield/shopcore/models"
	"github.com/mwhitfield/shopcore/stores"
	"github.com/mwhitfield/shopcore/utils"
)

// currentCartID resolves the active cart for this session, creating one on
// first use. The cart id lives in the cookie session so guests keep their
// cart across requests.
func currentCartID(c *gin.Context) (uint, error) {
	session := sessions.Default(c)
	cartStore := stores.NewCartStore(config.DB)

	if v := session.Get("cart_id"); v != nil {
		if id, ok := v.(uint); ok {
			cart, err := cartStore.FindByID(id)
			if err != nil {
				return 0, err
			}
			if cart != nil {
				return cart.ID, nil
			}
		}
	}

	var userID *uint
	if user, exists := c.Get("user"); exists {
		if userModel, ok := user.(models.User); ok {
			userID = &userModel.ID
			// Reuse an existing cart before opening a new one
			cart, err := cartStore.FindByUserID(userModel.ID)
			if err != nil {
				return 0, err
			}
			if cart != nil {
				session.Set("cart_id", cart.ID)
				if err := session.Save(); err != nil {
					utils.LogError("Failed to save session: %v", err)
				}
				return cart.ID, nil
			}
		}
	}

	cart, err := cartStore.Create(userID)
	if err != nil {
		return 0, err
	}
	session.Set("cart_id", cart.ID)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save session: %v", err)
	}
	return cart.ID, nil
}

// GetCart retrieves the active cart's items with current catalog pricing
func GetCart(c *gin.Context) {
	utils.LogInfo("GetCart called")

	cartID, err := currentCartID(c)
	if err != nil {
		utils.LogError("Failed to resolve cart: %v", err)
		utils.AppErrorResponse(c, err)
		return
	}

	items, err := stores.NewCartItemStore(config.DB).FindInCart(cartID)
	if err != nil {
		utils.LogError("Failed to fetch cart items for cart ID: %d: %v", cartID, err)
		utils.AppErrorResponse(c, err)
		return
	}

	var subtotal float64
	for _, item := range items {
		subtotal += item.TotalPrice
	}

	utils.Success(c, "Cart fetched successfully", gin.H{
		"cart_id":  cartID,
		"items":    items,
		"subtotal": subtotal,
	})
}

type CartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// AddCartItem puts a product into the active cart, or bumps its quantity if
// it is already there
func AddCartItem(c *gin.Context) {
	utils.LogInfo("AddCartItem called")

	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}
	if req.Quantity < 1 {
		utils.BadRequest(c, "Quantity must be at least 1", nil)
		return
	}

	cartID, err := currentCartID(c)
	if err != nil {
		utils.LogError("Failed to resolve cart: %v", err)
		utils.AppErrorResponse(c, err)
		return
	}

	store := stores.NewCartItemStore(config.DB)
	existing, err := store.FindOne(cartID, req.ProductID)
	if err != nil {
		utils.LogError("Failed to check cart item: %v", err)
		utils.AppErrorResponse(c, err)
		return
	}

	var item *models.CartItemDetail
	if existing != nil {
		item, err = store.Update(&models.CartItem{
			CartID:    cartID,
			ProductID: req.ProductID,
			Quantity:  existing.Quantity + req.Quantity,
		})
	} else {
		item, err = store.Create(&models.CartItem{
			CartID:    cartID,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
		})
	}
	if err != nil {
		utils.LogError("Failed to add item to cart ID: %d: %v", cartID, err)
		utils.AppErrorResponse(c, err)
		return
	}
	if item == nil {
		utils.NotFound(c, "Product not found")
		return
	}

	utils.LogInfo("Product %d added to cart %d", req.ProductID, cartID)
	utils.Created(c, "Item added to cart", gin.H{"item": item})
}

// UpdateCartItem sets a cart line's quantity
func UpdateCartItem(c *gin.Context) {
	utils.LogInfo("UpdateCartItem called")

	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		utils.BadRequest(c, "Invalid product id", nil)
		return
	}

	var req struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}
	if req.Quantity < 1 {
		utils.BadRequest(c, "Quantity must be at least 1", nil)
		return
	}

	cartID, err := currentCartID(c)
	if err != nil {
		utils.LogError("Failed to resolve cart: %v", err)
		utils.AppErrorResponse(c, err)
		return
	}

	item, err := stores.NewCartItemStore(config.DB).Update(&models.CartItem{
		CartID:    cartID,
		ProductID: uint(productID),
		Quantity:  req.Quantity,
	})
	if err != nil {
		utils.LogError("Failed to update item in cart ID: %d: %v", cartID, err)
		utils.AppErrorResponse(c, err)
		return
	}
	if item == nil {
		utils.NotFound(c, "Item not in cart")
		return
	}

	utils.LogInfo("Product %d updated in cart %d", productID, cartID)
	utils.Success(c, "Cart item updated", gin.H{"item": item})
}

// RemoveCartItem deletes a line from the active cart
func RemoveCartItem(c *gin.Context) {
	utils.LogInfo("RemoveCartItem called")

	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		utils.BadRequest(c, "Invalid product id", nil)
		return
	}

	cartID, err := currentCartID(c)
	if err != nil {
		utils.LogError("Failed to resolve cart: %v", err)
		utils.AppErrorResponse(c, err)
		return
	}

	item, err := stores.NewCartItemStore(config.DB).Delete(cartID, uint(productID))
	if err != nil {
		utils.LogError("Failed to remove item from cart ID: %d: %v", cartID, err)
		utils.AppErrorResponse(c, err)
		return
	}
	if item == nil {
		utils.NotFound(c, "Item not in cart")
		return
	}

	utils.LogInfo("Product %d removed from cart %d", productID, cartID)
	utils.Success(c, "Item removed from cart", gin.H{"item": item})
}
