package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reelrate/docs" //this is required to generate swagger docs
	"reelrate/internal/auth"
	"reelrate/internal/cache"
	"reelrate/internal/mailer"
	"reelrate/internal/ratelimiter"
	"reelrate/internal/store"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config        config
	store         store.Storage
	logger        *zap.SugaredLogger
	cld           *cloudinary.Cloudinary
	mailer        mailer.Client
	authenticator auth.Authenticator
	blacklist     cache.TokenBlacklist
	rateLimiter   ratelimiter.Limiter
}

type config struct {
	addr        string
	env         string
	apiURL      string
	db          dbConfig
	auth        authConfig
	redis       redisConfig
	mail        mailConfig
	rateLimiter ratelimiter.Config
}

type dbConfig struct {
	addr         string
	maxOpenConns int
	maxIdleConns int
	maxIdleTime  string
}

type authConfig struct {
	basic basicConfig
	token tokenConfig
}

type tokenConfig struct {
	secret string
	exp    time.Duration
	iss    string
}

type basicConfig struct {
	user string
	pass string
}

type redisConfig struct {
	addr     string
	password string
	db       int
}

type mailConfig struct {
	host      string
	port      int
	username  string
	password  string
	fromEmail string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Requests give up after a minute, ctx.Done() signals the handlers.
	r.Use(middleware.Timeout(60 * time.Second))

	r.Post("/register", app.registerUserHandler)
	r.Post("/login", app.loginUserHandler)
	r.With(app.AuthTokenMiddleware).Get("/logout", app.logoutHandler)

	r.Route("/v1", func(r chi.Router) {
		r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)
		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		r.Route("/movies", func(r chi.Router) {
			r.Get("/", app.listMoviesHandler)
			r.Get("/{movieID}", app.showMovieHandler)

			r.Group(func(r chi.Router) {
				r.Use(app.AuthTokenMiddleware)
				r.Post("/", app.createMovieHandler)
				r.Put("/{movieID}", app.updateMovieHandler)
				r.Patch("/{movieID}", app.updateMovieHandler)
				r.Delete("/{movieID}", app.deleteMovieHandler)
				r.Post("/{movieID}/poster", app.uploadMoviePosterHandler)
			})
		})

		r.Route("/ratings", func(r chi.Router) {
			r.Get("/", app.listRatingsHandler)
			r.Get("/{ratingID}", app.showRatingHandler)

			r.Group(func(r chi.Router) {
				r.Use(app.AuthTokenMiddleware)
				r.Post("/", app.createRatingHandler)
				r.Put("/{ratingID}", app.updateRatingHandler)
				r.Patch("/{ratingID}", app.updateRatingHandler)
				r.Delete("/{ratingID}", app.deleteRatingHandler)
			})
		})
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
