package ws

import (
	"log/slog"

	"github.com/google/uuid"
	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/domain"
)

// Registry owns the set of live subscriber connections and performs
// role-filtered fan-out. It is constructed once and passed explicitly to
// the subscription endpoint and the ingest service; there is no ambient
// shared state.
type Registry struct {
	conns  cmap.ConcurrentMap[string, Subscriber]
	logger *slog.Logger
}

func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		conns:  cmap.New[Subscriber](),
		logger: logger,
	}
}

// Register adds a subscriber. Registering the same id twice is idempotent.
func (r *Registry) Register(s Subscriber) {
	r.conns.Set(s.ID(), s)
	r.logger.Debug("subscriber registered",
		slog.String("conn_id", s.ID()),
		slog.String("role", string(s.Meta().Role)),
	)
}

// Unregister removes a subscriber. Unknown ids and repeated calls are no-ops.
func (r *Registry) Unregister(id string) {
	if s, ok := r.conns.Get(id); ok {
		r.conns.Remove(id)
		s.Close()
		r.logger.Debug("subscriber unregistered", slog.String("conn_id", id))
	}
}

func (r *Registry) Count() int {
	return r.conns.Count()
}

// NotifySubjectUpdate delivers the payload to every admin, the tourist
// owning the subject, and every guide with the subject in its assigned
// set. Nobody else receives it: tourists never see other tourists, guides
// only their own assignees.
func (r *Registry) NotifySubjectUpdate(subjectID uuid.UUID, payload any) {
	r.deliver(payload, func(m Meta) bool {
		switch m.Role {
		case domain.RoleAdmin:
			return true
		case domain.RoleTourist:
			return m.SubjectID != nil && *m.SubjectID == subjectID
		case domain.RoleGuide:
			_, ok := m.Assigned[subjectID]
			return ok
		}
		return false
	})
}

// NotifyGuidePosition delivers to all admins plus tourists whose subject
// is assigned to this guide. Other guides never see it.
func (r *Registry) NotifyGuidePosition(guideID uuid.UUID, payload any) {
	r.deliver(payload, func(m Meta) bool {
		switch m.Role {
		case domain.RoleAdmin:
			return true
		case domain.RoleTourist:
			return m.GuideID != nil && *m.GuideID == guideID
		case domain.RoleGuide:
			return false
		}
		return false
	})
}

// NotifyRoleBroadcast delivers to every connection holding one of the
// given roles.
func (r *Registry) NotifyRoleBroadcast(payload any, roles ...domain.Role) {
	want := make(map[domain.Role]struct{}, len(roles))
	for _, role := range roles {
		want[role] = struct{}{}
	}
	r.deliver(payload, func(m Meta) bool {
		_, ok := want[m.Role]
		return ok
	})
}

// deliver iterates a snapshot of the connection set, so concurrent
// register/unregister never panics mid-fan-out. A failed send marks only
// that connection for removal; delivery continues to the rest.
func (r *Registry) deliver(payload any, entitled func(Meta) bool) {
	var dead []string

	for id, s := range r.conns.Items() {
		if !entitled(s.Meta()) {
			continue
		}
		if err := s.Send(payload); err != nil {
			r.logger.Warn("subscriber send failed, dropping connection",
				slog.String("conn_id", id),
				slog.Any("error", err),
			)
			dead = append(dead, id)
		}
	}

	for _, id := range dead {
		r.Unregister(id)
	}
}
