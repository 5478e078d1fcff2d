package routes

import (
	"log/slog"
	"net/http"

	"github.com/23CSE311-SeeFood/seeFood-Backend/controllers"
	"github.com/23CSE311-SeeFood/seeFood-Backend/middlewares"
	"github.com/23CSE311-SeeFood/seeFood-Backend/payments"
	"github.com/23CSE311-SeeFood/seeFood-Backend/pkg/resp"
	"github.com/23CSE311-SeeFood/seeFood-Backend/repository"
	"github.com/23CSE311-SeeFood/seeFood-Backend/services"
	"github.com/23CSE311-SeeFood/seeFood-Backend/utils"

	"github.com/gin-gonic/gin"
)

// Deps is everything the handlers need, built once in main.
type Deps struct {
	Store       *repository.Store
	Tokens      *utils.TokenIssuer
	Payments    payments.Config
	Gateway     payments.OrderCreator
	Log         *slog.Logger
	CORSOrigins []string
}

// NewRouter returns the engine with middleware and every route mounted.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(
		middlewares.RequestID(),
		middlewares.RequestLogger(d.Log),
		gin.Recovery(),
		middlewares.CORSMiddleware(d.CORSOrigins),
	)
	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "seeFood server running"})
	})
	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "OK") })

	// Services
	canteenSvc := services.NewCanteenService(d.Store.Canteens)
	itemSvc := services.NewItemService(d.Store.Items)
	authSvc := services.NewAuthService(d.Store.Students, d.Tokens)
	paymentSvc := services.NewPaymentService(d.Gateway, d.Payments, d.Log)

	// Controllers
	canteenCtrl := controllers.NewCanteenController(canteenSvc)
	itemCtrl := controllers.NewItemController(itemSvc)
	authCtrl := controllers.NewAuthController(authSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)

	canteens := r.Group("/canteens")
	{
		canteens.GET("", canteenCtrl.List)
		canteens.POST("", canteenCtrl.Create)
		canteens.DELETE("/:canteenId", canteenCtrl.Delete)

		items := canteens.Group("/:canteenId/items")
		items.GET("", itemCtrl.List)
		items.POST("", itemCtrl.Create)
		items.PUT("/:id", itemCtrl.Update)
		items.DELETE("/:id", itemCtrl.Delete)
	}

	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(authSvc), authCtrl.Me)
	}

	p := r.Group("/payments")
	{
		p.POST("/create-order", paymentCtrl.CreateOrder)
		p.POST("/verify", paymentCtrl.Verify)
		p.POST("/webhook", paymentCtrl.Webhook)
	}

	r.NoRoute(func(c *gin.Context) {
		resp.NotFound(c, "Not Found")
	})
}
