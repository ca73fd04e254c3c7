package routes

import (
	"log"

	"dental-store/controllers"
	"dental-store/libs"
	"dental-store/middleware"
	"dental-store/models"
	"dental-store/repositories"
	"dental-store/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	sanity := libs.NewSanityClient()
	catalogService := services.NewCatalogService(sanity, models.RedisClient)
	cartService := services.NewCartService(models.RedisClient)

	mailer, err := models.NewEmailService()
	if err != nil {
		log.Printf("Email service disabled: %v", err)
	}

	productCtrl := controllers.NewProductController(catalogService)
	cartCtrl := controllers.NewCartController(cartService, catalogService)
	orderCtrl := controllers.NewOrderController(repositories.NewOrderRepository(), orderMailer(mailer))
	contactCtrl := controllers.NewContactController(contactMailer(mailer))
	quoteCtrl := controllers.NewQuoteController(repositories.NewQuoteRepository(), quoteMailer(mailer))
	authCtrl := controllers.NewAuthController(services.NewAuthService())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")
	{
		api.GET("/products", productCtrl.GetProducts)
		api.GET("/products/:id", productCtrl.GetProductByID)
		api.GET("/categories", productCtrl.GetCategories)

		api.GET("/cart", cartCtrl.GetCart)
		api.POST("/cart/items", cartCtrl.AddItem)
		api.PATCH("/cart/items/:productId", cartCtrl.UpdateItem)
		api.DELETE("/cart/items/:productId", cartCtrl.RemoveItem)
		api.DELETE("/cart", cartCtrl.ClearCart)
		api.PATCH("/cart/open", cartCtrl.SetOpen)

		api.POST("/contact", contactCtrl.SubmitContact)
		api.POST("/quote", quoteCtrl.SubmitQuote)
		api.POST("/orders", orderCtrl.CreateOrder)
	}

	router.POST("/admin/login", authCtrl.Login)

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/quotes", quoteCtrl.GetAllQuotes)
		admin.PATCH("/quotes/:id/status", quoteCtrl.UpdateQuoteStatus)
		admin.POST("/cache/invalidate", productCtrl.InvalidateCache)
	}
}

// A nil *EmailService must become a nil interface, not a typed nil, so the
// controllers' nil checks behave.

func contactMailer(s *models.EmailService) controllers.ContactMailer {
	if s == nil {
		return nil
	}
	return s
}

func quoteMailer(s *models.EmailService) controllers.QuoteMailer {
	if s == nil {
		return nil
	}
	return s
}

func orderMailer(s *models.EmailService) controllers.OrderMailer {
	if s == nil {
		return nil
	}
	return s
}
