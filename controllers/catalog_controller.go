package controllers

import (
	"net/http"

	"store-api/models"
	"store-api/services"

	"github.com/gin-gonic/gin"
)

// CatalogController handles HTTP requests for the product catalog.
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController.
func NewCatalogController(svc services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: svc}
}

// ListProducts handles GET /products
func (cc *CatalogController) ListProducts(ctx *gin.Context) {
	products, svcErr := cc.catalogService.ListProducts(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"rows": products})
}

// SeedProduct handles POST /products
func (cc *CatalogController) SeedProduct(ctx *gin.Context) {
	var req models.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	product, svcErr := cc.catalogService.SeedProduct(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Product added!", "id": product.ID})
}
