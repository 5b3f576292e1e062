package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/api/handlers/http/admin"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/api/handlers/http/guide"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/api/handlers/http/system"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/api/handlers/http/tourist"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/config"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/domain"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/geo"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/middleware"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/service"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/ws"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, sessions middleware.SessionLookup, subjects SubjectReader, registry *ws.Registry, places *geo.Index) *Server {
	touristHandler := tourist.NewHandler(logger, svc.Ingest, svc.Trips)
	guideHandler := guide.NewHandler(logger, svc.Guides)
	adminHandler := admin.NewHandler(logger, svc.Trips)
	systemHandler := system.NewHandler(logger, places)
	wsHandler := NewWSHandler(logger, cfg.WS, sessions, subjects, registry)

	r := InitRouter(cfg, touristHandler, guideHandler, adminHandler, systemHandler, wsHandler, sessions, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, touristHandler *tourist.Handler, guideHandler *guide.Handler, adminHandler *admin.Handler, systemHandler *system.Handler, wsHandler *WSHandler, sessions middleware.SessionLookup, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	auth := middleware.Authenticate(sessions, logger)

	r.Route("/api/v1", func(api chi.Router) {
		// TOURIST
		api.Route("/tourist", func(tr chi.Router) {
			tr.Use(auth)
			tr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			tr.Post("/location", touristHandler.ReportLocation)
			tr.Post("/destination", touristHandler.ChangeDestination)
			tr.Get("/map/{subjectID}", touristHandler.MapData)
		})

		// TRIPS (service layer enforces who may start or close)
		api.Route("/trips", func(tr chi.Router) {
			tr.Use(auth)

			tr.Post("/", touristHandler.StartTrip)
			tr.Post("/{id}/close", touristHandler.CloseTrip)
		})

		// GUIDE
		api.Route("/guide", func(gr chi.Router) {
			gr.Use(auth)
			gr.Use(middleware.RequireRole(domain.RoleGuide))
			gr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			gr.Post("/location", guideHandler.ReportLocation)
			gr.Get("/dashboard", guideHandler.Dashboard)
		})

		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(auth)
			ar.Use(middleware.RequireRole(domain.RoleAdmin))
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			ar.Get("/dashboard", adminHandler.Dashboard)
			ar.Get("/incidents", adminHandler.Incidents)
		})

		// PUBLIC
		api.Get("/places", systemHandler.Places)

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	// STREAM (performs its own auth so it can close with a policy frame)
	r.Get("/ws/location", wsHandler.Serve)

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("🚀 Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("🛑 Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
