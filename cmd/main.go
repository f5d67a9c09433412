package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/harshXitachi/winmicro-wallet/internal/gateways"
	"github.com/harshXitachi/winmicro-wallet/internal/handlers"
	"github.com/harshXitachi/winmicro-wallet/internal/jwt"
	"github.com/harshXitachi/winmicro-wallet/internal/logger"
	"github.com/harshXitachi/winmicro-wallet/internal/middlewares"
	"github.com/harshXitachi/winmicro-wallet/internal/repositories"
	"github.com/harshXitachi/winmicro-wallet/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// railsConfig carries the credentials for the three payment rails. A rail
// whose credentials are blank stays disabled; its endpoints answer 503.
type railsConfig struct {
	razorpayKeyID     string
	razorpayKeySecret string

	paypalClientID  string
	paypalSecret    string
	paypalAPIBase   string
	paypalReturnURL string
	paypalCancelURL string

	coinPaymentsPublicKey  string
	coinPaymentsPrivateKey string
	coinPaymentsIPNSecret  string
	coinPaymentsMerchantID string
}

// @title winmicro-wallet API
// @version 1.0.0
// @description Multi-currency wallet ledger: deposits, withdrawals, transfers, campaign escrow and commission back-office
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, settingsCacheSecond,
		kafkaBroker, kafkaTopic, logLevel,
		jwtSecret, jwtExp, rails,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, settingsCacheSecond,
		kafkaBroker, kafkaTopic,
		logLevel,
		jwtSecret, jwtExp,
		rails,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, logging, JWT, and payment rail
// configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, settingsCacheSecond int,
	kafkaBroker, kafkaTopic, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	rails railsConfig,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config. An empty host disables the settings cache; every
	// settings read then goes to PostgreSQL.
	redisHost = getEnv("REDIS_HOST", "")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if settingsCacheSecond, err = strconv.Atoi(getEnv("SETTINGS_CACHE_EXP_SECOND", "300")); err != nil {
		return
	}

	// Kafka config. An empty broker disables event publishing.
	kafkaBroker = getEnv("KAFKA_BROKER", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "wallet-events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Payment rails
	rails = railsConfig{
		razorpayKeyID:     getEnv("RAZORPAY_KEY_ID", ""),
		razorpayKeySecret: getEnv("RAZORPAY_KEY_SECRET", ""),

		paypalClientID:  getEnv("PAYPAL_CLIENT_ID", ""),
		paypalSecret:    getEnv("PAYPAL_SECRET", ""),
		paypalAPIBase:   getEnv("PAYPAL_API_BASE", ""),
		paypalReturnURL: getEnv("PAYPAL_RETURN_URL", ""),
		paypalCancelURL: getEnv("PAYPAL_CANCEL_URL", ""),

		coinPaymentsPublicKey:  getEnv("COINPAYMENTS_PUBLIC_KEY", ""),
		coinPaymentsPrivateKey: getEnv("COINPAYMENTS_PRIVATE_KEY", ""),
		coinPaymentsIPNSecret:  getEnv("COINPAYMENTS_IPN_SECRET", ""),
		coinPaymentsMerchantID: getEnv("COINPAYMENTS_MERCHANT_ID", ""),
	}

	return
}

// run initializes the logger, database, Redis, Kafka, payment gateways, and
// HTTP server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, settingsCacheSecond int,
	kafkaBroker, kafkaTopic, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	rails railsConfig,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres ping: %w", err)
	}

	// Connect to Redis when configured
	var rdb *redis.Client
	if redisHost != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
			Password:     redisPassword,
			DB:           redisDB,
			PoolSize:     redisPoolSize,
			MinIdleConns: redisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection: %w", err)
		}
		defer rdb.Close()
	} else {
		logger.Log.Info("Redis not configured, settings cache disabled")
	}

	// Kafka event publisher when configured
	var kafkaWriter services.KafkaWriter
	if kafkaBroker != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBroker),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka events enabled on %s topic %s", kafkaBroker, kafkaTopic)
	} else {
		logger.Log.Info("Kafka not configured, event publishing disabled")
	}

	// Payment gateways. Constructors return nil for unconfigured rails; the
	// nil pointers must not be assigned to the rail interfaces directly or
	// the services would see them as live gateways.
	var razorpayRail services.RazorpayRail
	if g := gateways.NewRazorpayGateway(rails.razorpayKeyID, rails.razorpayKeySecret); g != nil {
		razorpayRail = g
		logger.Log.Info("Razorpay rail enabled")
	}

	var paypalRail services.PayPalRail
	paypalGateway, err := gateways.NewPayPalGateway(
		rails.paypalClientID, rails.paypalSecret, rails.paypalAPIBase,
		rails.paypalReturnURL, rails.paypalCancelURL,
	)
	if err != nil {
		return fmt.Errorf("paypal gateway: %w", err)
	}
	if paypalGateway != nil {
		paypalRail = paypalGateway
		logger.Log.Info("PayPal rail enabled")
	}

	var coinPaymentsRail services.CoinPaymentsRail
	var ipnVerifier handlers.IPNVerifier
	if g := gateways.NewCoinPaymentsGateway(
		rails.coinPaymentsPublicKey, rails.coinPaymentsPrivateKey,
		rails.coinPaymentsIPNSecret, rails.coinPaymentsMerchantID,
	); g != nil {
		coinPaymentsRail = g
		ipnVerifier = g
		logger.Log.Info("CoinPayments rail enabled")
	}

	// Initialize JWT service
	tokener := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	walletWriteRepo := repositories.NewWalletWriterRepository(db, txGetter)
	walletReadRepo := repositories.NewWalletReaderRepository(db)
	journalWriteRepo := repositories.NewJournalWriterRepository(db, txGetter)
	journalReadRepo := repositories.NewJournalReaderRepository(db)
	escrowRepo := repositories.NewEscrowRepository(db, txGetter)
	adminWalletRepo := repositories.NewAdminWalletRepository(db, txGetter)
	settingsRepo := repositories.NewSettingsRepository(db)
	cachedSettings := repositories.NewCachedSettingsRepository(
		settingsRepo, rdb, time.Duration(settingsCacheSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokener)
	ledgerService := services.NewLedgerService(
		walletWriteRepo, walletReadRepo, journalWriteRepo, journalReadRepo,
		adminWalletRepo, cachedSettings, userReadRepo, kafkaWriter)
	paymentService := services.NewPaymentService(
		walletWriteRepo, journalWriteRepo, journalReadRepo, adminWalletRepo,
		cachedSettings, razorpayRail, paypalRail, coinPaymentsRail, kafkaWriter)
	escrowService := services.NewEscrowService(
		walletWriteRepo, escrowRepo, journalWriteRepo, cachedSettings, kafkaWriter)
	adminService := services.NewAdminService(
		settingsRepo, cachedSettings, adminWalletRepo, adminWalletRepo,
		walletWriteRepo, journalWriteRepo, journalReadRepo, kafkaWriter)

	// Setup router
	txMiddleware := middlewares.TxMiddleware(db)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	// Public routes
	r.Post("/register", handlers.NewRegisterHandler(authService))
	r.Post("/login", handlers.NewLoginHandler(authService))
	r.With(txMiddleware).Post("/webhooks/coinpayments",
		handlers.NewCoinPaymentsIPNHandler(ipnVerifier, paymentService))

	// Authenticated wallet and escrow routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokener))

		r.Get("/wallet/balance", handlers.NewGetBalanceHandler(ledgerService, tokener))
		r.Get("/wallet/history", handlers.NewHistoryHandler(ledgerService, tokener))
		r.Get("/campaigns/{campaignID}/escrow", handlers.NewEscrowStatusHandler(escrowService, tokener))

		r.Group(func(r chi.Router) {
			r.Use(txMiddleware)

			r.Post("/wallet/deposit", handlers.NewCreateDepositHandler(paymentService, tokener))
			r.Post("/wallet/deposit/verify", handlers.NewVerifyDepositHandler(paymentService, ledgerService, tokener))
			r.Post("/wallet/deposit/paypal/capture", handlers.NewCapturePayPalDepositHandler(paymentService, ledgerService, tokener))
			r.Post("/wallet/withdraw", handlers.NewWithdrawHandler(paymentService, ledgerService, tokener))
			r.Post("/wallet/transfer", handlers.NewTransferHandler(ledgerService, ledgerService, tokener))

			r.Post("/campaigns/{campaignID}/escrow", handlers.NewFundEscrowHandler(escrowService, tokener))
			r.Post("/campaigns/{campaignID}/escrow/disburse", handlers.NewDisburseEscrowHandler(escrowService, userReadRepo, tokener))
			r.Post("/campaigns/{campaignID}/escrow/refund", handlers.NewRefundEscrowHandler(escrowService, tokener))
		})
	})

	// Back-office routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AdminMiddleware(tokener))

		r.Get("/admin/settings", handlers.NewGetSettingsHandler(adminService))
		r.Get("/admin/wallets", handlers.NewAdminWalletsHandler(adminService))
		r.Get("/admin/withdrawals", handlers.NewPendingWithdrawalsHandler(adminService))

		r.Group(func(r chi.Router) {
			r.Use(txMiddleware)

			r.Put("/admin/settings", handlers.NewUpdateSettingsHandler(adminService))
			r.Post("/admin/wallets/withdraw", handlers.NewAdminWithdrawHandler(adminService, tokener))
			r.Post("/admin/withdrawals/{transactionID}/approve", handlers.NewApproveWithdrawalHandler(adminService))
			r.Post("/admin/withdrawals/{transactionID}/reject", handlers.NewRejectWithdrawalHandler(adminService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
