package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/stripe/stripe-go/v79"

	"github.com/nizs/delizia-server/internal/db"
	"github.com/nizs/delizia-server/internal/handlers"
	"github.com/nizs/delizia-server/internal/middleware"
	"github.com/nizs/delizia-server/internal/services"
	"github.com/nizs/delizia-server/internal/storage"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it, using environment variables")
	}

	// Initialize Fiber
	app := fiber.New()

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Stripe secret key for payment intents
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	// Initialize MinIO for menu images
	storage.InitMinio()

	// Connect to MongoDB
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		if user := os.Getenv("DB_USER"); user != "" {
			mongoURI = fmt.Sprintf("mongodb+srv://%s:%s@cluster0.qxen6yj.mongodb.net/?retryWrites=true&w=majority&appName=Cluster0",
				user, os.Getenv("DB_PASS"))
		} else {
			mongoURI = "mongodb://localhost:27017/delizia" // Default fallback
		}
	}
	mongoDB := db.ConnectMongoDB(mongoURI)

	services.Init(mongoDB)

	verifyAdmin := middleware.VerifyAdmin(services.UserRole)

	// JWT Route
	app.Post("/jwt", handlers.IssueTokenHandler)

	// User Routes
	app.Get("/users", middleware.VerifyToken, verifyAdmin, handlers.ListUsersHandler)
	app.Get("/users/admin/:email", middleware.VerifyToken, handlers.AdminStatusHandler)
	app.Post("/users", handlers.RegisterUserHandler)
	app.Patch("/users/admin/:id", middleware.VerifyToken, verifyAdmin, handlers.PromoteUserHandler)
	app.Delete("/users/:id", middleware.VerifyToken, verifyAdmin, handlers.DeleteUserHandler)

	// Menu Routes
	app.Get("/menu", handlers.ListMenuHandler)
	app.Get("/menu/:id", handlers.GetMenuItemHandler)
	app.Post("/menu", middleware.VerifyToken, verifyAdmin, handlers.AddMenuItemHandler)
	app.Patch("/menu/:id", middleware.VerifyToken, verifyAdmin, handlers.UpdateMenuItemHandler)
	app.Delete("/menu/:id", middleware.VerifyToken, verifyAdmin, handlers.DeleteMenuItemHandler)
	app.Post("/menu/:id/image", middleware.VerifyToken, verifyAdmin, handlers.UploadMenuImageHandler)

	// Cart Routes
	app.Get("/carts", handlers.ListCartHandler)
	app.Post("/carts", handlers.AddCartItemHandler)
	app.Delete("/carts/:id", handlers.DeleteCartItemHandler)

	// Review Routes
	app.Get("/reviews", handlers.ListReviewsHandler)

	// Payment Routes
	app.Post("/create-payment-intent", handlers.CreatePaymentIntentHandler)
	app.Get("/payments/:email", middleware.VerifyToken, handlers.ListPaymentsHandler)
	app.Post("/payments", handlers.SettlePaymentHandler)

	// Liveness
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Delizia is running")
	})

	// Get port from environment
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000" // Default port
	}

	// Start server
	log.Fatal(app.Listen(":" + port))
}
