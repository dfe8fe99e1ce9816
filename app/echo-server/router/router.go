package router

import (
	"goodsStore/internal/rest"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Guards carries the auth middlewares. With no JWT secret configured they
// are pass-through and every route is open.
type Guards struct {
	AuthRequired echo.MiddlewareFunc
	AdminOnly    echo.MiddlewareFunc
	SelfOrAdmin  echo.MiddlewareFunc
}

func passThrough(next echo.HandlerFunc) echo.HandlerFunc {
	return next
}

func OpenGuards() Guards {
	return Guards{
		AuthRequired: passThrough,
		AdminOnly:    passThrough,
		SelfOrAdmin:  passThrough,
	}
}

func SetupGoodsRoutes(api *echo.Group, handler *rest.GoodsHandler, g Guards) {
	goods := api.Group("/goods")

	goods.GET("", handler.GetAllGoods)
	goods.GET("/:id", handler.GetGoodsByID)
	goods.POST("", handler.CreateGoods, g.AuthRequired, g.AdminOnly)
	goods.PUT("/:id", handler.UpdateGoods, g.AuthRequired, g.AdminOnly)
	goods.DELETE("/:id", handler.DeleteGoods, g.AuthRequired, g.AdminOnly)
}

func SetOrdersRoutes(api *echo.Group, ordersHandler *rest.OrdersHandler, g Guards) {
	orders := api.Group("/orders")

	// guest checkout stays open, user_id is nullable
	orders.POST("", ordersHandler.CreateOrder)
	orders.GET("", ordersHandler.GetAllOrders, g.AuthRequired, g.AdminOnly)
	orders.GET("/user/:userId", ordersHandler.GetUserOrders, g.AuthRequired, g.SelfOrAdmin)
	orders.GET("/:id", ordersHandler.GetOrderByID, g.AuthRequired, g.AdminOnly)
	orders.PUT("/:id/status", ordersHandler.UpdateOrderStatus, g.AuthRequired, g.AdminOnly)
}

func SetupArtistRoutes(api *echo.Group, handler *rest.ArtistHandler, g Guards) {
	artists := api.Group("/artists")

	artists.GET("", handler.GetAllArtists)
	artists.GET("/:id", handler.GetArtistByID)
	artists.POST("", handler.CreateArtist, g.AuthRequired, g.AdminOnly)
	artists.PUT("/:id", handler.UpdateArtist, g.AuthRequired, g.AdminOnly)
	artists.PATCH("/:id/status", handler.UpdateArtistStatus, g.AuthRequired, g.AdminOnly)
	artists.DELETE("/:id", handler.DeleteArtist, g.AuthRequired, g.AdminOnly)
}

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, g Guards) {
	users := api.Group("/users", g.AuthRequired, g.AdminOnly)

	users.GET("", handler.GetAllUsers)
	users.PUT("/:id/role", handler.UpdateUserRole)
	users.DELETE("/:id", handler.DeleteUser)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler) {
	api.GET("/products", handler.GetProducts)
}

func SetupOpsRoutes(e *echo.Echo) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
