package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"storefront-be/internal/auth"
	"storefront-be/internal/cart"
	"storefront-be/internal/config"
	"storefront-be/internal/db"
	"storefront-be/internal/graph"
	"storefront-be/internal/item"
	"storefront-be/internal/logger"
	"storefront-be/internal/mail"
	"storefront-be/internal/middleware"
	"storefront-be/internal/order"
	"storefront-be/internal/payment"
	"storefront-be/internal/transport"
	"storefront-be/internal/user"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	sessions := auth.NewSessions(cfg.AppSecret)
	mailer := mail.NewSMTPSender(cfg)
	gateway := payment.NewStripeGateway(cfg.StripeSecretKey)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo, sessions, mailer, cfg.FrontendURL)

	itemRepo := item.NewRepository(database)
	itemSvc := item.NewService(itemRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, itemRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, cartRepo, gateway)

	resolver := &graph.Resolver{
		UserSvc:  userSvc,
		ItemSvc:  itemSvc,
		CartSvc:  cartSvc,
		OrderSvc: orderSvc,
	}

	srv := handler.NewDefaultServer(graph.NewSchema(resolver))
	srv.SetErrorPresenter(func(ctx context.Context, err error) *gqlerror.Error {
		gqlErr := graphql.DefaultErrorPresenter(ctx, err)
		if errors.Is(err, graph.ErrNotAuthenticated) || errors.Is(err, graph.ErrForbidden) {
			gqlErr.Message = err.Error()
		}
		return gqlErr
	})

	// Auth must wrap the limiter and the logger so both see the user id.
	query := withHTTPContext(srv)
	query = middleware.RateLimitMiddleware(query)
	query = middleware.LoggingMiddleware(query)
	query = middleware.AuthMiddleware(sessions)(query)
	query = logger.RequestIDMiddleware(query)

	http.Handle("/", playground.Handler("GraphQL Playground", "/query"))
	http.Handle("/query", query)

	log.Printf("🚀 GraphQL server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, nil))
}

// withHTTPContext exposes the request/response pair to resolvers so they
// can manage the session cookie.
func withHTTPContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := transport.WithHTTP(r.Context(), r, w)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
