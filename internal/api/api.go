// Package api sets up and starts the API
// server with routing, middleware, and Swagger documentation.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	_ "github.com/matt-dz/foodgram/docs"
	"github.com/matt-dz/foodgram/internal/api/middleware"
	"github.com/matt-dz/foodgram/internal/api/routes/admin"
	"github.com/matt-dz/foodgram/internal/api/routes/auth"
	"github.com/matt-dz/foodgram/internal/api/routes/catalog"
	"github.com/matt-dz/foodgram/internal/api/routes/ping"
	"github.com/matt-dz/foodgram/internal/api/routes/recipes"
	"github.com/matt-dz/foodgram/internal/api/routes/users"
	"github.com/matt-dz/foodgram/internal/env"
	"github.com/matt-dz/foodgram/internal/role"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

const (
	serverPort      = 8080
	shutdownTimeout = 10 * time.Second
)

func addDocs(r *chi.Mux, serverAddr string) {
	swagger := httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/api/swagger/doc.json", serverAddr)),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	)

	r.Mount("/api/swagger", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		// Handle preflight
		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		// Allow GET to serve Swagger
		if req.Method == http.MethodGet {
			swagger.ServeHTTP(w, req)
			return
		}

		// Block anything else
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}))
}

// addFiles serves uploaded images from the local volume. S3 backed stores
// serve their own URLs.
func addFiles(r *chi.Mux, env *env.Env) {
	if env.Config.S3.Enabled() || env.Config.Fileserver.Volume == "" {
		return
	}
	prefix := "/" + strings.Trim(env.Config.Fileserver.URLPrefix, "/")
	files := http.StripPrefix(prefix, http.FileServer(http.Dir(env.Config.Fileserver.Volume)))
	r.Get(prefix+"/*", files.ServeHTTP)
}

func addRoutes(router *chi.Mux, limiter *middleware.RateLimiter) {
	router.Get("/s/{id}", recipes.HandleShortLink)
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", ping.HandlePing)

		r.Route("/auth/token", func(r chi.Router) {
			r.With(middleware.RateLimit(limiter)).Post("/login", auth.HandleLogin)
			r.With(middleware.AuthorizeRequest(role.User)).Post("/logout", auth.HandleLogout)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", users.HandleListUsers)
			r.Post("/", users.HandleRegister)
			r.Get("/{id}", users.HandleGetUser)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AuthorizeRequest(role.User))

				r.Get("/me", users.HandleMe)
				r.Put("/me/avatar", users.HandleSetAvatar)
				r.Delete("/me/avatar", users.HandleDeleteAvatar)
				r.Get("/subscriptions", users.HandleSubscriptions)
				r.Post("/{id}/subscribe", users.HandleSubscribe)
				r.Delete("/{id}/subscribe", users.HandleUnsubscribe)
			})
		})

		r.Get("/tags", catalog.HandleListTags)
		r.Get("/tags/{id}", catalog.HandleGetTag)
		r.Get("/ingredients", catalog.HandleListIngredients)
		r.Get("/ingredients/{id}", catalog.HandleGetIngredient)

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", recipes.HandleListRecipes)
			r.Get("/{id}", recipes.HandleGetRecipe)
			r.Get("/{id}/get-link", recipes.HandleGetLink)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AuthorizeRequest(role.User))

				r.Post("/", recipes.HandleCreateRecipe)
				r.Patch("/{id}", recipes.HandleUpdateRecipe)
				r.Put("/{id}", recipes.HandleUpdateRecipe)
				r.Delete("/{id}", recipes.HandleDeleteRecipe)
				r.Post("/{id}/favorite", recipes.HandleFavorite)
				r.Delete("/{id}/favorite", recipes.HandleUnfavorite)
				r.Post("/{id}/shopping_cart", recipes.HandleAddToCart)
				r.Delete("/{id}/shopping_cart", recipes.HandleRemoveFromCart)
				r.Get("/download_shopping_cart", recipes.HandleDownloadShoppingCart)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.AuthorizeRequest(role.Admin))

			r.Post("/tags", admin.HandleCreateTag)
			r.Post("/ingredients", admin.HandleCreateIngredient)
		})
	})
}

// NewRouter builds the API handler with every middleware and route.
func NewRouter(env *env.Env, limiter *middleware.RateLimiter) http.Handler {
	router := chi.NewRouter()
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.AddRequestID)
	router.Use(middleware.LogRequest(env.Logger))
	router.Use(middleware.InjectEnv(env))
	router.Use(middleware.AddCors)
	router.Use(middleware.PrometheusMetrics)
	router.Use(middleware.Authenticate)

	addRoutes(router, limiter)
	addFiles(router, env)
	addDocs(router, fmt.Sprintf("localhost:%d", serverPort))
	return router
}

// Start godoc
//
//	@title						Foodgram API
//	@version					1.0
//	@description				API Server for the Foodgram recipe sharing application.
//
//	@securityDefinitions.apikey	TokenAuth
//	@in							header
//	@name						Authorization
//
//	@host						localhost:8080
//	@BasePath					/api
func Start(ctx context.Context, env *env.Env, limiter *middleware.RateLimiter) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", serverPort),
		Handler:           NewRouter(env, limiter),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		env.Logger.Info(fmt.Sprintf("Listening at 0.0.0.0:%d", serverPort))
		env.Logger.Info(fmt.Sprintf("Swagger UI available at http://0.0.0.0:%d/api/swagger/index.html", serverPort))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	env.Logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
