package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go-pos-billing/internal/handler"
	"go-pos-billing/internal/middleware"
	"go-pos-billing/internal/model"
	"go-pos-billing/internal/repository"
	"go-pos-billing/internal/service"
	"go-pos-billing/internal/store"
	"go-pos-billing/internal/ws"
	"go-pos-billing/pkg/database"
	"go-pos-billing/pkg/localdb"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env file not found")
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Local store first: it is the source of truth and must always open.
	localPath := os.Getenv("LOCAL_DB_PATH")
	if localPath == "" {
		localPath = "pos.db"
	}
	local, err := localdb.Open(localPath)
	if err != nil {
		log.WithError(err).Fatal("failed to open local store")
	}
	defer local.Close()

	// The remote mirror is optional; any failure here degrades the process
	// to local-only operation.
	db, err := database.Connect()
	if err != nil {
		log.WithError(err).Warn("remote mirror unavailable, running local-only")
		db = nil
	}
	if db != nil {
		if err := db.AutoMigrate(&store.Document{}); err != nil {
			log.WithError(err).Warn("remote migration failed, running local-only")
			db = nil
		}
	}
	remote := store.NewRemote(db, remoteTimeout())

	wsHub := ws.NewHub()
	go wsHub.Run()

	menuRepo := repository.NewMenuRepo(local, remote, log)
	cartRepo := repository.NewCartRepo(local)
	txRepo := repository.NewTransactionRepo(local, remote, log)
	adjustmentRepo := repository.NewAdjustmentRepo(local, remote, log)
	userRepo := repository.NewUserRepo(local, remote, log)
	expenseRepo := repository.NewExpenseRepo(local, remote, log)
	bookmarkRepo := repository.NewBookmarkRepo(local)

	inventoryService := service.NewInventoryService(menuRepo, adjustmentRepo, wsHub)
	checkoutService := service.NewCheckoutService(cartRepo, menuRepo, txRepo, inventoryService, wsHub)
	cartService := service.NewCartService(cartRepo, menuRepo)
	catalogService := service.NewCatalogService(menuRepo, wsHub)
	authService := service.NewAuthService(userRepo, local)
	userService := service.NewUserService(userRepo)
	expenseService := service.NewExpenseService(expenseRepo)
	reportService := service.NewReportService(txRepo)

	seedDefaults(local, menuRepo, userRepo, authService, log)

	menuHandler := handler.NewMenuHandler(catalogService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, cartService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	reportHandler := handler.NewReportHandler(reportService)
	bookmarkHandler := handler.NewBookmarkHandler(bookmarkRepo)

	app := fiber.New(fiber.Config{
		AppName: "POS Billing v1.0",
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	// The admin panel has its own password, separate from login accounts.
	auth.Post("/admin/unlock", authHandler.AdminUnlock)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth())

	protected.Get("/menu", menuHandler.GetItems)
	protected.Post("/menu", menuHandler.CreateItem)
	protected.Put("/menu/:id", menuHandler.UpdateItem)
	protected.Delete("/menu/:id", menuHandler.DeleteItem)
	protected.Post("/menu/import", menuHandler.ImportItems)

	protected.Get("/cart", checkoutHandler.GetCart)
	protected.Post("/cart/items", checkoutHandler.AddCartItem)
	protected.Put("/cart/items/:itemId", checkoutHandler.UpdateCartItem)
	protected.Delete("/cart/items/:itemId", checkoutHandler.RemoveCartItem)
	protected.Delete("/cart", checkoutHandler.ClearCart)
	protected.Post("/checkout", checkoutHandler.Checkout)

	protected.Get("/adjustments", inventoryHandler.GetAdjustments)
	protected.Post("/adjustments", inventoryHandler.AdjustStock)

	protected.Get("/transactions", reportHandler.GetTransactions)
	protected.Get("/transactions/summary", reportHandler.GetSummary)

	protected.Get("/bookmarks", bookmarkHandler.GetBookmarks)
	protected.Post("/bookmarks/:menuId/toggle", bookmarkHandler.ToggleBookmark)

	protected.Get("/expenses", expenseHandler.GetExpenses)
	protected.Post("/expenses", expenseHandler.CreateExpense)
	protected.Delete("/expenses/:id", expenseHandler.DeleteExpense)

	// ============ ADMIN ROUTES ============
	admin := protected.Group("", middleware.RequireAdmin())

	admin.Put("/auth/admin/password", authHandler.SetAdminPassword)

	admin.Get("/users", userHandler.GetUsers)
	admin.Get("/users/:id", userHandler.GetUser)
	admin.Post("/users", userHandler.CreateUser)
	admin.Put("/users/:id", userHandler.UpdateUser)
	admin.Delete("/users/:id", userHandler.DeactivateUser)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.WithError(err).Panic("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.WithError(err).Fatal("Server forced to shutdown")
	}

	log.Info("Server exited")
}

func remoteTimeout() time.Duration {
	if raw := os.Getenv("REMOTE_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return 5 * time.Second
}

// seedDefaults populates the catalog, the default admin account, and the
// admin-panel password on first run only. An existing (even empty) catalog
// record means the shop already curated its menu and is left alone.
func seedDefaults(local store.LocalStore, menuRepo repository.MenuRepository, userRepo repository.UserRepository, authService service.AuthService, log *logrus.Logger) {
	var existing []model.MenuItem
	found, err := local.Get(store.KeyMenuItems, &existing)
	if err != nil {
		log.WithError(err).Warn("failed to read catalog for seeding")
	} else if !found {
		defaults := []model.MenuItem{
			{MenuID: "MENU001", Name: "Xerox", Image: "https://images.unsplash.com/photo-1562564055-71e051d33c19?w=150&h=150&fit=crop", DefaultPrice: decimal.NewFromInt(2), Stock: 1000},
			{MenuID: "MENU002", Name: "Passport size print", Image: "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=150&h=150&fit=crop", DefaultPrice: decimal.NewFromInt(50), Stock: 500},
			{MenuID: "MENU003", Name: "Maxi photo print", Image: "https://images.unsplash.com/photo-1554048612-b6a482bc67e5?w=150&h=150&fit=crop", DefaultPrice: decimal.NewFromInt(100), Stock: 200},
			{MenuID: "MENU004", Name: "Printout", Image: "https://images.unsplash.com/photo-1612198188060-c7c2a3b66eae?w=150&h=150&fit=crop", DefaultPrice: decimal.NewFromInt(5), Stock: 2000},
			{MenuID: "MENU005", Name: "Colour print out", Image: "https://images.unsplash.com/photo-1611224923853-80b023f02d71?w=150&h=150&fit=crop", DefaultPrice: decimal.NewFromInt(10), Stock: 1000},
		}
		for i := range defaults {
			defaults[i].ID = uuid.NewString()
		}
		if err := local.Put(store.KeyMenuItems, defaults); err != nil {
			log.WithError(err).Warn("failed to seed default catalog")
		} else {
			log.WithField("items", len(defaults)).Info("seeded default catalog")
		}
	}

	users, err := userRepo.AllLocal()
	if err != nil {
		log.WithError(err).Warn("failed to read users for seeding")
	} else if len(users) == 0 {
		admin := model.User{
			ID:        uuid.NewString(),
			Username:  "admin",
			Name:      "Administrator",
			Role:      model.RoleAdmin,
			IsActive:  true,
			CreatedAt: time.Now().UTC(),
			CreatedBy: "system",
		}
		if err := admin.SetPassword("admin123"); err != nil {
			log.WithError(err).Warn("failed to hash default admin password")
		} else if _, err := userRepo.Add(context.Background(), admin); err != nil {
			log.WithError(err).Warn("failed to seed admin user")
		} else {
			log.Info("seeded default admin user: admin / admin123")
		}
	}

	if err := authService.EnsureAdminPassword("admin123"); err != nil {
		log.WithError(err).Warn("failed to seed admin-panel password")
	}
}
