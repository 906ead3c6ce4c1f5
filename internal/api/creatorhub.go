package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/npezzotti/creatorhub/internal/config"
	"github.com/npezzotti/creatorhub/internal/database"
	"github.com/npezzotti/creatorhub/internal/server"
	"go.uber.org/zap"
)

type CreatorHubApp struct {
	log            *zap.Logger
	db             database.CreatorHubRepository
	srv            *http.Server
	cs             *server.ChatServer
	allowedOrigins []string
	demoUserId     int
}

// NewCreatorHubApp registers the API routes on mux and wraps it in the
// middleware chain. Routes already registered on mux, such as /debug/vars,
// are served through the same chain.
func NewCreatorHubApp(mux *http.ServeMux, logger *zap.Logger, cs *server.ChatServer, db database.CreatorHubRepository, cfg *config.Config) *CreatorHubApp {
	s := &CreatorHubApp{
		log:            logger.Named("api"),
		db:             db,
		cs:             cs,
		allowedOrigins: cfg.AllowedOrigins,
		demoUserId:     cfg.DemoUserId,
	}

	mux.HandleFunc("GET /healthz", s.healthCheck)
	mux.HandleFunc("GET /api/stats", s.getStats)
	mux.HandleFunc("GET /api/creators", s.getCreators)
	mux.HandleFunc("GET /api/creators/top", s.getTopCreators)
	mux.HandleFunc("GET /api/creators/{id}", s.getCreator)
	mux.HandleFunc("GET /api/creators/{id}/partnerships", s.getCreatorPartnerships)
	mux.HandleFunc("GET /api/chat/rooms", s.getChatRooms)
	mux.HandleFunc("GET /api/chat/messages/{roomId}", s.getChatMessages)
	mux.HandleFunc("GET /api/wallet", s.getWallet)
	mux.HandleFunc("GET /api/wallet/portfolio", s.getPortfolio)
	mux.HandleFunc("GET /api/events", s.getEvents)
	mux.HandleFunc("GET /api/events/{id}", s.getEvent)
	mux.HandleFunc("GET /api/events/{id}/reviews", s.getEventReviews)
	mux.HandleFunc("POST /api/events/{id}/bookings", s.createBooking)
	mux.HandleFunc("GET /ws", s.serveWs)

	h := handlers.CORS(
		handlers.MaxAge(3600),
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Origin", "Content-Type", "Accept", requestIdHeader}),
		handlers.ExposedHeaders([]string{requestIdHeader}),
	)(mux)

	h = s.logHandler(h)
	h = s.requestIdMiddleware(h)
	h = s.errorHandler(h)

	s.srv = &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: h,
	}

	return s
}

func (s *CreatorHubApp) Handler() http.Handler {
	return s.srv.Handler
}

func (s *CreatorHubApp) Start() error {
	s.log.Info("starting server", zap.String("addr", s.srv.Addr))
	return s.srv.ListenAndServe()
}

func (s *CreatorHubApp) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down HTTP server")
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}
