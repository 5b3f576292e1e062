package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/config"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/domain"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/middleware"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/ws"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/pkg/e"
)

// SubjectReader resolves the subjects a connecting viewer is entitled to.
type SubjectReader interface {
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.TrackedSubject, error)
	ListByGuide(ctx context.Context, guideID uuid.UUID) ([]*domain.TrackedSubject, error)
}

type WSHandler struct {
	logger   *slog.Logger
	cfg      config.WSConfig
	sessions middleware.SessionLookup
	subjects SubjectReader
	registry *ws.Registry
	upgrader websocket.Upgrader
}

func NewWSHandler(logger *slog.Logger, cfg config.WSConfig, sessions middleware.SessionLookup, subjects SubjectReader, registry *ws.Registry) *WSHandler {
	return &WSHandler{
		logger:   logger,
		cfg:      cfg,
		sessions: sessions,
		subjects: subjects,
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The origin check happens after the upgrade so the client
			// receives a policy-violation close frame instead of a bare 403.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Serve upgrades the connection, verifies origin and session, registers the
// subscriber and then holds the connection open until the peer goes away.
// The stream is server to client only: inbound frames are discarded.
func (h *WSHandler) Serve(w http.ResponseWriter, r *http.Request) {
	sock, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("WS upgrade failed", slog.String("error", err.Error()))
		return
	}

	if !h.originAllowed(r) {
		h.logger.Warn("WS origin rejected", slog.String("origin", r.Header.Get("Origin")))
		h.closeWith(sock, "Origin not allowed")
		return
	}

	token := middleware.TokenFromRequest(r)
	if token == "" {
		// browsers cannot set headers on websocket dials
		token = r.URL.Query().Get("token")
	}
	if token == "" {
		h.closeWith(sock, "Authentication required")
		return
	}

	identity, err := h.sessions.Lookup(r.Context(), token)
	if err != nil {
		h.logger.Warn("WS session lookup failed", slog.String("error", err.Error()))
		h.closeWith(sock, "Authentication required")
		return
	}

	meta, err := h.buildMeta(r.Context(), identity)
	if err != nil {
		h.logger.Error("WS meta build failed", slog.Any("error", err))
		h.closeWith(sock, "Authentication required")
		return
	}

	conn := ws.NewConn(sock, meta, h.cfg.WriteTimeout)
	h.registry.Register(conn)

	h.logger.Info("WS subscriber connected",
		slog.String("user_id", identity.UserID.String()),
		slog.String("role", string(identity.Role)),
		slog.Int("total", h.registry.Count()),
	)

	defer func() {
		h.registry.Unregister(conn.ID())
		h.logger.Info("WS subscriber disconnected",
			slog.String("user_id", identity.UserID.String()),
			slog.Int("total", h.registry.Count()),
		)
	}()

	for {
		if _, _, err := sock.ReadMessage(); err != nil {
			return
		}
	}
}

// buildMeta derives the visibility scope for a viewer. Tourists see their own
// active subject and its guide, guides see their assigned subjects, admins
// see everything without extra scoping.
func (h *WSHandler) buildMeta(ctx context.Context, identity domain.Identity) (ws.Meta, error) {
	meta := ws.Meta{
		UserID: identity.UserID,
		Role:   identity.Role,
	}

	switch identity.Role {
	case domain.RoleTourist:
		subject, err := h.subjects.GetByOwner(ctx, identity.UserID)
		if err != nil {
			if errors.Is(err, e.ErrNotFound) {
				return meta, nil
			}
			return ws.Meta{}, err
		}
		id := subject.ID
		meta.SubjectID = &id
		meta.GuideID = subject.GuideID

	case domain.RoleGuide:
		subjects, err := h.subjects.ListByGuide(ctx, identity.UserID)
		if err != nil {
			return ws.Meta{}, err
		}
		meta.Assigned = make(map[uuid.UUID]struct{}, len(subjects))
		for _, s := range subjects {
			meta.Assigned[s.ID] = struct{}{}
		}
	}

	return meta, nil
}

func (h *WSHandler) originAllowed(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if u.Host == r.Host {
		return true
	}
	for _, allowed := range h.cfg.ExtraOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}

func (h *WSHandler) closeWith(sock *websocket.Conn, reason string) {
	msg := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason)
	_ = sock.WriteMessage(websocket.CloseMessage, msg)
	_ = sock.Close()
}
