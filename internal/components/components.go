package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/api"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/config"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/domain"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/geo"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/redis"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/service"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/storage/memory"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/storage/postgres"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/ws"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/pkg/logger"
)

// SessionStore is the session surface the components need: the HTTP and WS
// layers only read, demo seeding also writes.
type SessionStore interface {
	Lookup(ctx context.Context, token string) (domain.Identity, error)
	Save(ctx context.Context, token string, identity domain.Identity, ttl time.Duration) error
	Delete(ctx context.Context, token string) error
}

type Components struct {
	logger      *slog.Logger
	HttpServer  *api.Server
	Postgres    *postgres.Postgres
	Redis       *redis.Redis
	Registry    *ws.Registry
	Sessions    SessionStore
	alertSender *service.AlertSender
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	places := geo.NewIndex(geo.IndianTouristPlaces())
	registry := ws.NewRegistry(logger)

	var (
		subjects  service.SubjectRepository
		incidents service.IncidentRepository
		positions service.GuidePositionRepository
		reader    api.SubjectReader
		pg        *postgres.Postgres
	)

	switch cfg.Storage.Driver {
	case "postgres":
		logger.Info("Initializing Postgres")
		storage, err := postgres.NewPostgres(ctx, cfg, logger)
		if err != nil {
			logger.Error("Failed to init postgres", slog.Any("error", err))
			return nil, fmt.Errorf("failed to init postgres: %w", err)
		}
		pg = storage
		subjects = storage.Subjects
		incidents = storage.Incidents
		positions = storage.GuidePositions
		reader = storage.Subjects

	case "memory":
		logger.Info("Using in-memory storage")
		subjectRepo := memory.NewSubjectRepo()
		subjects = subjectRepo
		incidents = memory.NewIncidentRepo()
		positions = memory.NewGuidePositionRepo()
		reader = subjectRepo

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	// Redis carries sessions and the alert queue. The memory driver can run
	// without it, falling back to in-process sessions for local use.
	var (
		redisClient *redis.Redis
		sessions    SessionStore
		alertQueue  *redis.AlertQueue
	)

	needRedis := cfg.Storage.Driver == "postgres" || !cfg.Alerts.Disabled
	if needRedis {
		logger.Info("Initializing Redis")
		client, err := redis.NewRedis(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to init redis: %w", err)
		}
		redisClient = client
		sessions = redis.NewSessionStore(client)
		alertQueue = redis.NewAlertQueue(client.Client, "alerts:queue")
	} else {
		sessions = memory.NewSessionStore()
	}

	ledger := service.NewLocationLedger(subjects, incidents, places, logger)

	var enqueuer service.AlertEnqueuer
	if !cfg.Alerts.Disabled && alertQueue != nil {
		enqueuer = alertQueue
	}

	ingestSvc := service.NewLocationIngest(ledger, registry, enqueuer, logger)
	guideSvc := service.NewGuideService(positions, subjects, places, registry, logger)
	tripSvc := service.NewTripService(subjects, incidents, places, registry, logger)

	srv := service.NewService(ingestSvc, guideSvc, tripSvc)

	httpServer := api.NewServer(cfg, logger, srv, sessions, reader, registry, places)
	logger.Info("Initialized server")

	comps := &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   pg,
		Redis:      redisClient,
		Registry:   registry,
		Sessions:   sessions,
	}

	if !cfg.Alerts.Disabled && alertQueue != nil {
		comps.alertSender = service.NewAlertSender(logger, cfg.Alerts, alertQueue)
	}

	if cfg.Env == "local" && cfg.Storage.Driver == "memory" {
		if err := seedDemo(ctx, cfg, logger, sessions, tripSvc); err != nil {
			return nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	return comps, nil
}

// RunWorkers starts the background workers and blocks until ctx is done.
func (c *Components) RunWorkers(ctx context.Context) {
	if c.alertSender == nil {
		<-ctx.Done()
		return
	}
	c.alertSender.Run(ctx)
}

// seedDemo installs fixed identities and one running trip so a local build
// is explorable without a signup flow.
func seedDemo(ctx context.Context, cfg *config.Config, logger *slog.Logger, sessions SessionStore, trips *service.TripService) error {
	guideID := uuid.MustParse("a0000000-0000-0000-0000-000000000002")

	admin := domain.Identity{
		UserID:   uuid.MustParse("a0000000-0000-0000-0000-000000000001"),
		FullName: "Demo Admin",
		Role:     domain.RoleAdmin,
	}
	guide := domain.Identity{
		UserID:   guideID,
		FullName: "Demo Guide",
		Role:     domain.RoleGuide,
	}
	tourist := domain.Identity{
		UserID:   uuid.MustParse("a0000000-0000-0000-0000-000000000003"),
		FullName: "Demo Tourist",
		Role:     domain.RoleTourist,
	}

	for token, identity := range map[string]domain.Identity{
		"demo-admin-token":   admin,
		"demo-guide-token":   guide,
		"demo-tourist-token": tourist,
	} {
		if err := sessions.Save(ctx, token, identity, cfg.WS.SessionTTL); err != nil {
			return err
		}
	}

	subject, err := trips.StartTrip(ctx, domain.StartTripRequest{
		PlaceID: 1,
		Name:    tourist.FullName,
		GuideID: &guideID,
	}, tourist)
	if err != nil {
		return err
	}

	logger.Info("Demo data seeded",
		slog.String("subject_id", subject.ID.String()),
		slog.String("tourist_token", "demo-tourist-token"),
	)
	return nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	if c.Postgres != nil {
		c.Postgres.Pool.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
