package controllers

import (
	"net/http"
	"strconv"

	"store-api/models"
	"store-api/services"

	"github.com/gin-gonic/gin"
)

// CartController handles HTTP requests for the shopping cart.
type CartController struct {
	cartService services.CartService
}

// NewCartController creates a new CartController.
func NewCartController(svc services.CartService) *CartController {
	return &CartController{cartService: svc}
}

// ListCart handles GET /cart-products
func (cc *CartController) ListCart(ctx *gin.Context) {
	rows, svcErr := cc.cartService.ListCart(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"rows": rows})
}

// AddLine handles POST /cart-products
func (cc *CartController) AddLine(ctx *gin.Context) {
	var req models.AddCartLineRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	outcome, svcErr := cc.cartService.AddLine(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Cart product/(s) added!",
		"result":  outcome.String(),
	})
}

// UpdateLine handles PUT /cart-products/:id
func (cc *CartController) UpdateLine(ctx *gin.Context) {
	productID, ok := pathID(ctx)
	if !ok {
		return
	}

	var req models.UpdateCartLineRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	rows, svcErr := cc.cartService.UpdateLine(ctx.Request.Context(), productID, &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"rows": rows})
}

// RemoveLine handles DELETE /cart-products/:id
func (cc *CartController) RemoveLine(ctx *gin.Context) {
	productID, ok := pathID(ctx)
	if !ok {
		return
	}

	var req models.RemoveCartLineRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	rows, svcErr := cc.cartService.RemoveLine(ctx.Request.Context(), productID, req.UserID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"rows": rows})
}

// ClearCart handles DELETE /all-cart-products/:id (:id is the user id)
func (cc *CartController) ClearCart(ctx *gin.Context) {
	userID, ok := pathID(ctx)
	if !ok {
		return
	}

	rows, svcErr := cc.cartService.ClearCart(ctx.Request.Context(), userID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"rows": rows})
}

// pathID parses the :id path segment, answering 400 itself on garbage.
func pathID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
