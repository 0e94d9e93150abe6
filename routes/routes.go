package routes

import (
	"net/http"

	"store-api/controllers"

	"github.com/gin-gonic/gin"
)

// Controllers bundles every controller the router wires up.
type Controllers struct {
	Catalog  *controllers.CatalogController
	Cart     *controllers.CartController
	User     *controllers.UserController
	Order    *controllers.OrderController
	Message  *controllers.MessageController
	Checkout *controllers.CheckoutController
}

// Register sets up every route of the store API.
func Register(r *gin.Engine, c Controllers) {
	r.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "Welcome to the Caspian Treasure API")
	})

	r.GET("/products", c.Catalog.ListProducts)
	r.POST("/products", c.Catalog.SeedProduct)

	r.GET("/cart-products", c.Cart.ListCart)
	r.POST("/cart-products", c.Cart.AddLine)
	r.PUT("/cart-products/:id", c.Cart.UpdateLine)
	r.DELETE("/cart-products/:id", c.Cart.RemoveLine)
	r.DELETE("/all-cart-products/:id", c.Cart.ClearCart)

	r.GET("/users", c.User.ListUsers)
	r.POST("/users", c.User.Register)
	r.GET("/customers", c.User.ListCustomers)
	r.POST("/customers", c.User.CreateCustomer)

	r.GET("/orders", c.Order.ListOrders)
	r.POST("/orders", c.Order.PlaceOrder)
	r.POST("/order-details", c.Order.AddDetail)

	r.POST("/message-from", c.Message.CreateInbound)
	r.POST("/message-to", c.Message.CreateOutbound)

	r.POST("/checkout", c.Checkout.Checkout)

	// Catch-all. OPTIONS never lands here; the CORS layer answers preflight.
	r.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "404 - Not Found"})
	})
}
