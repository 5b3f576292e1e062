package ws_test

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/domain"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/ws"
)

type fakeSub struct {
	id   string
	meta ws.Meta

	mu       sync.Mutex
	got      []any
	failSend bool
	closed   bool
}

func (f *fakeSub) ID() string    { return f.id }
func (f *fakeSub) Meta() ws.Meta { return f.meta }

func (f *fakeSub) Send(payload any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSend {
		return errors.New("broken pipe")
	}
	f.got = append(f.got, payload)
	return nil
}

func (f *fakeSub) Close() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
}

func (f *fakeSub) received() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.got)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func admin(id string) *fakeSub {
	return &fakeSub{id: id, meta: ws.Meta{UserID: uuid.New(), Role: domain.RoleAdmin}}
}

func tourist(id string, subjectID uuid.UUID, guideID *uuid.UUID) *fakeSub {
	return &fakeSub{id: id, meta: ws.Meta{
		UserID:    uuid.New(),
		Role:      domain.RoleTourist,
		SubjectID: &subjectID,
		GuideID:   guideID,
	}}
}

func guide(id string, assigned ...uuid.UUID) *fakeSub {
	set := make(map[uuid.UUID]struct{}, len(assigned))
	for _, s := range assigned {
		set[s] = struct{}{}
	}
	return &fakeSub{id: id, meta: ws.Meta{UserID: uuid.New(), Role: domain.RoleGuide, Assigned: set}}
}

func TestRegistry_RegisterIdempotent(t *testing.T) {
	t.Parallel()

	r := ws.NewRegistry(testLogger())
	a := admin("a1")
	r.Register(a)
	r.Register(a)
	assert.Equal(t, 1, r.Count())
}

func TestRegistry_UnregisterUnknownIsNoop(t *testing.T) {
	t.Parallel()

	r := ws.NewRegistry(testLogger())
	r.Unregister("nope")
	r.Unregister("nope")
	assert.Equal(t, 0, r.Count())
}

func TestNotifySubjectUpdate_RoleVisibility(t *testing.T) {
	t.Parallel()

	subjectID := uuid.New()
	otherSubject := uuid.New()

	adm := admin("adm")
	owner := tourist("owner", subjectID, nil)
	stranger := tourist("stranger", otherSubject, nil)
	assignedGuide := guide("g1", subjectID)
	otherGuide := guide("g2", otherSubject)

	r := ws.NewRegistry(testLogger())
	for _, s := range []*fakeSub{adm, owner, stranger, assignedGuide, otherGuide} {
		r.Register(s)
	}

	r.NotifySubjectUpdate(subjectID, map[string]any{"type": "location_update"})

	assert.Equal(t, 1, adm.received(), "admin sees every subject")
	assert.Equal(t, 1, owner.received(), "tourist sees own subject")
	assert.Equal(t, 0, stranger.received(), "tourist never sees another tourist")
	assert.Equal(t, 1, assignedGuide.received(), "guide sees assignee")
	assert.Equal(t, 0, otherGuide.received(), "guide never sees non-assignee")
}

func TestNotifyGuidePosition_RoleVisibility(t *testing.T) {
	t.Parallel()

	guideID := uuid.New()
	otherGuideID := uuid.New()

	adm := admin("adm")
	assignedTourist := tourist("t1", uuid.New(), &guideID)
	otherTourist := tourist("t2", uuid.New(), &otherGuideID)
	unguidedTourist := tourist("t3", uuid.New(), nil)
	peerGuide := guide("g2")

	r := ws.NewRegistry(testLogger())
	for _, s := range []*fakeSub{adm, assignedTourist, otherTourist, unguidedTourist, peerGuide} {
		r.Register(s)
	}

	r.NotifyGuidePosition(guideID, map[string]any{"type": "guide_location_update"})

	assert.Equal(t, 1, adm.received())
	assert.Equal(t, 1, assignedTourist.received())
	assert.Equal(t, 0, otherTourist.received())
	assert.Equal(t, 0, unguidedTourist.received())
	assert.Equal(t, 0, peerGuide.received(), "guide positions stay private between guides")
}

func TestNotifyRoleBroadcast(t *testing.T) {
	t.Parallel()

	adm := admin("adm")
	g := guide("g1")
	tr := tourist("t1", uuid.New(), nil)

	r := ws.NewRegistry(testLogger())
	for _, s := range []*fakeSub{adm, g, tr} {
		r.Register(s)
	}

	r.NotifyRoleBroadcast(map[string]any{"type": "tourist_status_change"},
		domain.RoleAdmin, domain.RoleGuide)

	assert.Equal(t, 1, adm.received())
	assert.Equal(t, 1, g.received())
	assert.Equal(t, 0, tr.received())
}

func TestDeliver_FailedSendIsIsolated(t *testing.T) {
	t.Parallel()

	first := admin("a1")
	second := admin("a2")
	second.failSend = true
	third := admin("a3")

	r := ws.NewRegistry(testLogger())
	r.Register(first)
	r.Register(second)
	r.Register(third)

	r.NotifySubjectUpdate(uuid.New(), map[string]any{"n": 1})

	require.Equal(t, 1, first.received(), "delivery continues past the failure")
	require.Equal(t, 1, third.received())
	assert.Equal(t, 0, second.received())

	assert.Equal(t, 2, r.Count(), "failed connection removed from registry")
	second.mu.Lock()
	assert.True(t, second.closed)
	second.mu.Unlock()

	// subsequent fan-out no longer targets the dead connection
	r.NotifySubjectUpdate(uuid.New(), map[string]any{"n": 2})
	assert.Equal(t, 2, first.received())
	assert.Equal(t, 2, third.received())
}

func TestDeliver_ConcurrentRegisterUnregister(t *testing.T) {
	t.Parallel()

	r := ws.NewRegistry(testLogger())
	stable := admin("stable")
	r.Register(stable)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s := admin(uuid.NewString())
				r.Register(s)
				r.NotifySubjectUpdate(uuid.New(), map[string]any{"n": j})
				r.Unregister(s.ID())
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, r.Count())
	assert.Equal(t, 8*50, stable.received())
}
