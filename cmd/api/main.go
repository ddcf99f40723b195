package main

import (
	"expvar"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"reelrate/internal/auth"
	"reelrate/internal/cache"
	"reelrate/internal/db"
	"reelrate/internal/mailer"
	"reelrate/internal/ratelimiter"
	"reelrate/internal/store"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig() ratelimiter.Config {
	defaultRequests := 200
	defaultEnabled := false

	requestsPerTimeFrame := defaultRequests
	if val, exists := os.LookupEnv("RATELIMITER_REQUESTS_COUNT"); exists {
		if parsedVal, err := strconv.Atoi(val); err == nil {
			requestsPerTimeFrame = parsedVal
		} else {
			fmt.Println("Invalid RATELIMITER_REQUESTS_COUNT, defaulting to", defaultRequests)
		}
	}

	enabled := defaultEnabled
	if val, exists := os.LookupEnv("RATE_LIMITER_ENABLED"); exists {
		if parsedVal, err := strconv.ParseBool(val); err == nil {
			enabled = parsedVal
		} else {
			fmt.Println("Invalid RATE_LIMITER_ENABLED, defaulting to", defaultEnabled)
		}
	}

	return ratelimiter.Config{
		RequestsPerTimeFrame: requestsPerTimeFrame,
		TimeFrame:            5 * time.Second,
		Enabled:              enabled,
	}
}

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)

	level := zapcore.InfoLevel

	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), level)

	logger := zap.New(core)

	return logger.Sugar(), nil
}

var version = "1.0.0"

//	@title			Reelrate API
//	@description	API for Reelrate, a movie rating backend.

//	@contact.name	API Support
//	@contact.url	http://www.swagger.io/support
//	@contact.email	support@swagger.io

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@BasePath					/
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}

	maxOpenConnsStr := os.Getenv("DB_MAX_OPEN_CONNS")
	maxOpenConns, err := strconv.Atoi(maxOpenConnsStr)
	if err != nil {
		log.Fatalf("Invalid value for DB_MAX_OPEN_CONNS: %v", err)
	}
	maxIdleConnsStr := os.Getenv("DB_MAX_IDLE_CONNS")
	maxIdleConns, err := strconv.Atoi(maxIdleConnsStr)
	if err != nil {
		log.Fatalf("Invalid value for DB_MAX_IDLE_CONNS: %v", err)
	}

	tokenExp := time.Hour * 24 * 3 // 3 days
	if val, exists := os.LookupEnv("AUTH_TOKEN_EXP"); exists {
		parsedVal, err := time.ParseDuration(val)
		if err != nil {
			log.Fatalf("Invalid value for AUTH_TOKEN_EXP: %v", err)
		}
		tokenExp = parsedVal
	}

	redisDB := 0
	if val, exists := os.LookupEnv("REDIS_DB"); exists {
		redisDB, err = strconv.Atoi(val)
		if err != nil {
			log.Fatalf("Invalid value for REDIS_DB: %v", err)
		}
	}

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		log.Fatalf("Invalid value for SMTP_PORT: %v", err)
	}

	cfg := config{
		addr:   os.Getenv("ADDR"),
		env:    os.Getenv("ENV"),
		apiURL: os.Getenv("EXTERNAL_URL"),
		db: dbConfig{
			addr:         os.Getenv("DB_ADDR"),
			maxOpenConns: maxOpenConns,
			maxIdleConns: maxIdleConns,
			maxIdleTime:  os.Getenv("DB_MAX_IDLE_TIME"),
		},
		auth: authConfig{
			basic: basicConfig{
				user: os.Getenv("AUTH_BASIC_USER"),
				pass: os.Getenv("AUTH_BASIC_PASS"),
			},
			token: tokenConfig{
				secret: os.Getenv("AUTH_TOKEN_SECRET"),
				exp:    tokenExp,
				iss:    "Reelrate",
			},
		},
		redis: redisConfig{
			addr:     os.Getenv("REDIS_ADDR"),
			password: os.Getenv("REDIS_PASSWORD"),
			db:       redisDB,
		},
		mail: mailConfig{
			host:      os.Getenv("SMTP_HOST"),
			port:      smtpPort,
			username:  os.Getenv("SMTP_USERNAME"),
			password:  os.Getenv("SMTP_PASSWORD"),
			fromEmail: os.Getenv("SMTP_FROM_EMAIL"),
		},
		rateLimiter: LoadRateLimiterConfig(),
	}

	// Logger
	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	// Database
	db, err := db.New(
		cfg.db.addr,
		cfg.db.maxOpenConns,
		cfg.db.maxIdleConns,
		cfg.db.maxIdleTime,
	)
	if err != nil {
		logger.Fatal(err)
	}

	defer db.Close()
	logger.Info("database connection pool established")

	//storage
	store := store.NewStorage(db)

	//cloudinary
	cloudinaryUrl := os.Getenv("CLOUDINARY_URL")
	cld, err := cloudinary.NewFromURL(cloudinaryUrl)
	if err != nil {
		logger.Fatal(err)
	}

	// client to send the welcome email
	smtpMailer, err := mailer.NewSMTPClient(
		cfg.mail.host,
		cfg.mail.port,
		cfg.mail.username,
		cfg.mail.password,
		cfg.mail.fromEmail,
	)
	if err != nil {
		logger.Fatal(err)
	}

	// Redis, backs the revoked-token denylist
	rdb := cache.NewRedisClient(cfg.redis.addr, cfg.redis.password, cfg.redis.db)
	blacklist := cache.NewRedisBlacklist(rdb)
	logger.Info("redis connection established")

	// Rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	// Authenticator
	jwtAuthenticator := auth.NewJWTAuthenticator(
		cfg.auth.token.secret,
		cfg.auth.token.iss,
		cfg.auth.token.iss,
		cfg.auth.token.exp,
	)

	app := &application{
		config:        cfg,
		store:         store,
		logger:        logger,
		cld:           cld,
		mailer:        smtpMailer,
		authenticator: jwtAuthenticator,
		blacklist:     blacklist,
		rateLimiter:   rateLimiter,
	}

	//Metrics collected http://localhost:8080/v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("database", expvar.Func(func() any {
		return db.Stats()
	}))
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
