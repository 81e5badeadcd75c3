package main

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lwgpartnersnetwork/lwgshopcentral-sub000/config"
	"github.com/lwgpartnersnetwork/lwgshopcentral-sub000/controllers/checkout"
	orderControllers "github.com/lwgpartnersnetwork/lwgshopcentral-sub000/controllers/order"
	vendorlifecycle "github.com/lwgpartnersnetwork/lwgshopcentral-sub000/controllers/vendor"
	"github.com/lwgpartnersnetwork/lwgshopcentral-sub000/middleware"
	"github.com/lwgpartnersnetwork/lwgshopcentral-sub000/models"
	"github.com/lwgpartnersnetwork/lwgshopcentral-sub000/notify"
	"github.com/lwgpartnersnetwork/lwgshopcentral-sub000/routes"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db := initDatabase(cfg, log)

	// The vendors table migrates through its own path: a legacy status-column
	// table must be detected as-is, before anything adds an is_approved column.
	if err := vendorlifecycle.MigrateVendorTable(db); err != nil {
		log.Fatal().Err(err).Msg("automigrate failed")
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.VendorApplication{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatal().Err(err).Msg("automigrate failed")
	}

	// Gin setup
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.New(corsConfig(cfg)))

	deps := buildDeps(db, cfg, log)
	routes.SetupRoutes(r, deps)

	log.Info().Str("port", cfg.ServerPort).Msg("server starting")
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

func buildDeps(db *gorm.DB, cfg *config.Config, log zerolog.Logger) routes.Deps {
	vendorStore := vendorlifecycle.NewGormStore(db)
	vendorService := vendorlifecycle.NewService(vendorStore)

	feed := orderControllers.NewFeed()

	var mailer *notify.Mailer
	if cfg.SMTPEnabled() {
		mailer = notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	} else {
		log.Warn().Msg("SMTP not configured, order emails disabled")
	}
	var whatsapp *notify.WhatsAppSender
	if cfg.WhatsAppEnabled() {
		whatsapp = notify.NewWhatsAppSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioWhatsAppFrom)
	} else {
		log.Warn().Msg("Twilio not configured, WhatsApp notifications disabled")
	}

	dispatcher := notify.NewDispatcher(notify.DispatcherOptions{
		Mailer:        mailer,
		WhatsApp:      whatsapp,
		Feed:          feed,
		AdminEmail:    cfg.AdminEmail,
		AdminWhatsApp: cfg.AdminWhatsApp,
		SupportEmail:  cfg.SupportEmail,
		SupportPhone:  cfg.SupportPhone,
		SendTimeout:   10 * time.Second,
	}, log)

	aggregator := checkout.NewAggregator(
		checkout.NewGormStore(db),
		dispatcher,
		cfg.DefaultCurrency,
		cfg.Rate(),
		log,
	)

	return routes.Deps{
		DB:            db,
		Cfg:           cfg,
		VendorService: vendorService,
		VendorStore:   vendorStore,
		Checkout:      aggregator,
		Feed:          feed,
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(cfg *config.Config, log zerolog.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	return db
}

func corsConfig(cfg *config.Config) cors.Config {
	origins := []string{"*"}
	if cfg.CORSOrigins != "" {
		origins = strings.Split(cfg.CORSOrigins, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}
