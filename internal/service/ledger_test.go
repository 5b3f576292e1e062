package service_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/domain"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/geo"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/service"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/storage/memory"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/pkg/e"
)

const (
	tajLat = 27.1751
	tajLng = 78.0421

	outsideLat = 27.2000 // ~2.8 km north of the Taj Mahal center
	nearbyLng  = 78.0425 // ~40 m east, inside the 500 m fence
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

type recordedEvent struct {
	kind    string
	payload any
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (f *fakeNotifier) NotifySubjectUpdate(subjectID uuid.UUID, payload any) {
	f.record("subject", payload)
}

func (f *fakeNotifier) NotifyGuidePosition(guideID uuid.UUID, payload any) {
	f.record("guide", payload)
}

func (f *fakeNotifier) NotifyRoleBroadcast(payload any, roles ...domain.Role) {
	f.record("broadcast", payload)
}

func (f *fakeNotifier) record(kind string, payload any) {
	f.mu.Lock()
	f.events = append(f.events, recordedEvent{kind: kind, payload: payload})
	f.mu.Unlock()
}

func (f *fakeNotifier) byKind(kind string) []recordedEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []recordedEvent
	for _, ev := range f.events {
		if ev.kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

type fakeAlertQueue struct {
	mu       sync.Mutex
	payloads []domain.AlertPayload
}

func (f *fakeAlertQueue) Enqueue(ctx context.Context, payload domain.AlertPayload) error {
	f.mu.Lock()
	f.payloads = append(f.payloads, payload)
	f.mu.Unlock()
	return nil
}

func (f *fakeAlertQueue) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.payloads)
}

func (f *fakeAlertQueue) first() domain.AlertPayload {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.payloads[0]
}

type world struct {
	subjects  *memory.SubjectRepo
	incidents *memory.IncidentRepo
	ledger    *service.LocationLedger
	ingest    *service.LocationIngest
	trips     *service.TripService
	notifier  *fakeNotifier
	alerts    *fakeAlertQueue
}

func newWorld(t *testing.T) *world {
	t.Helper()
	logger := newTestLogger()
	places := geo.NewIndex(geo.IndianTouristPlaces())
	subjects := memory.NewSubjectRepo()
	incidents := memory.NewIncidentRepo()
	notifier := &fakeNotifier{}
	alerts := &fakeAlertQueue{}

	ledger := service.NewLocationLedger(subjects, incidents, places, logger)
	return &world{
		subjects:  subjects,
		incidents: incidents,
		ledger:    ledger,
		ingest:    service.NewLocationIngest(ledger, notifier, alerts, logger),
		trips:     service.NewTripService(subjects, incidents, places, notifier, logger),
		notifier:  notifier,
		alerts:    alerts,
	}
}

func tourist(userID uuid.UUID) domain.Identity {
	return domain.Identity{UserID: userID, FullName: "Demo Tourist", Role: domain.RoleTourist}
}

// seedSubject creates an active subject owned by owner, assigned to the
// Taj Mahal fence, status Safe.
func (w *world) seedSubject(t *testing.T, owner uuid.UUID, guide *uuid.UUID) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	id := uuid.New()
	lat, lng := tajLat, tajLng
	err := w.subjects.Create(ctx, &domain.TrackedSubject{
		ID:      id,
		OwnerID: owner,
		GuideID: guide,
		Name:    "Trip S",
		PlaceID: 1,
		Lat:     &lat,
		Lng:     &lng,
		Status:  domain.StatusSafe,
		Active:  true,
	})
	if err != nil {
		t.Fatalf("seed subject: %v", err)
	}
	return id
}

func (w *world) incidentCount(t *testing.T, subjectID uuid.UUID) int {
	t.Helper()
	incs, err := w.incidents.ListBySubject(context.Background(), subjectID)
	if err != nil {
		t.Fatalf("list incidents: %v", err)
	}
	return len(incs)
}

func TestReportPosition_EndToEndScenario(t *testing.T) {
	t.Parallel()

	w := newWorld(t)
	owner := uuid.New()
	subjectID := w.seedSubject(t, owner, nil)
	caller := tourist(owner)
	ctx := context.Background()

	// at the center: Safe, no incidents
	res, err := w.ledger.ReportPosition(ctx, subjectID, tajLat, tajLng, caller)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Status != domain.StatusSafe || !res.InsideFence {
		t.Fatalf("want Safe/inside, got %s/%v", res.Status, res.InsideFence)
	}
	if n := w.incidentCount(t, subjectID); n != 0 {
		t.Fatalf("want 0 incidents, got %d", n)
	}

	// ~2.8 km away: Critical, exactly one incident
	res, err = w.ledger.ReportPosition(ctx, subjectID, outsideLat, tajLng, caller)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Status != domain.StatusCritical || res.InsideFence {
		t.Fatalf("want Critical/outside, got %s/%v", res.Status, res.InsideFence)
	}
	if res.Incident == nil {
		t.Fatal("expected incident on Safe->Critical edge")
	}
	if n := w.incidentCount(t, subjectID); n != 1 {
		t.Fatalf("want 1 incident, got %d", n)
	}

	// ~40 m away, back inside: Safe, still one incident total
	res, err = w.ledger.ReportPosition(ctx, subjectID, tajLat, nearbyLng, caller)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Status != domain.StatusSafe || !res.InsideFence {
		t.Fatalf("want Safe/inside, got %s/%v", res.Status, res.InsideFence)
	}
	if res.Incident != nil {
		t.Fatal("recovery must be silent")
	}
	if n := w.incidentCount(t, subjectID); n != 1 {
		t.Fatalf("want 1 incident total, got %d", n)
	}
}

func TestReportPosition_IdempotentInsideFence(t *testing.T) {
	t.Parallel()

	w := newWorld(t)
	owner := uuid.New()
	subjectID := w.seedSubject(t, owner, nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		res, err := w.ledger.ReportPosition(ctx, subjectID, tajLat, tajLng, tourist(owner))
		if err != nil {
			t.Fatalf("report %d: %v", i, err)
		}
		if res.Status != domain.StatusSafe {
			t.Fatalf("report %d: want Safe, got %s", i, res.Status)
		}
	}
	if n := w.incidentCount(t, subjectID); n != 0 {
		t.Fatalf("want 0 incidents, got %d", n)
	}
}

func TestReportPosition_NoDuplicateIncidentWhileCritical(t *testing.T) {
	t.Parallel()

	w := newWorld(t)
	owner := uuid.New()
	subjectID := w.seedSubject(t, owner, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		res, err := w.ledger.ReportPosition(ctx, subjectID, outsideLat, tajLng, tourist(owner))
		if err != nil {
			t.Fatalf("report %d: %v", i, err)
		}
		if res.Status != domain.StatusCritical {
			t.Fatalf("report %d: want Critical, got %s", i, res.Status)
		}
	}
	if n := w.incidentCount(t, subjectID); n != 1 {
		t.Fatalf("only the first edge logs: want 1 incident, got %d", n)
	}
}

func TestReportPosition_AuthorizationDefaultDeny(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	guideID := uuid.New()

	tests := []struct {
		name    string
		caller  domain.Identity
		guide   *uuid.UUID
		wantErr error
	}{
		{
			name:   "owner allowed",
			caller: tourist(owner),
		},
		{
			name:    "other tourist forbidden",
			caller:  tourist(uuid.New()),
			wantErr: e.ErrForbidden,
		},
		{
			name:    "admin forbidden from reporting",
			caller:  domain.Identity{UserID: uuid.New(), Role: domain.RoleAdmin},
			wantErr: e.ErrForbidden,
		},
		{
			name:   "assigned guide allowed",
			caller: domain.Identity{UserID: guideID, Role: domain.RoleGuide},
			guide:  &guideID,
		},
		{
			name:    "unassigned guide forbidden",
			caller:  domain.Identity{UserID: uuid.New(), Role: domain.RoleGuide},
			guide:   &guideID,
			wantErr: e.ErrForbidden,
		},
		{
			name:    "unknown role forbidden",
			caller:  domain.Identity{UserID: owner, Role: domain.Role("operator")},
			wantErr: e.ErrForbidden,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := newWorld(t)
			subjectID := w.seedSubject(t, owner, tt.guide)
			ctx := context.Background()

			_, err := w.ledger.ReportPosition(ctx, subjectID, outsideLat, tajLng, tt.caller)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected err: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}

			// rejection leaves the subject untouched
			s, getErr := w.subjects.Get(ctx, subjectID)
			if getErr != nil {
				t.Fatalf("get subject: %v", getErr)
			}
			if s.Status != domain.StatusSafe || *s.Lat != tajLat || *s.Lng != tajLng {
				t.Fatalf("state mutated on rejection: %+v", s)
			}
			if n := w.incidentCount(t, subjectID); n != 0 {
				t.Fatalf("incident appended on rejection")
			}
		})
	}
}

func TestReportPosition_InvalidCoordinates(t *testing.T) {
	t.Parallel()

	w := newWorld(t)
	owner := uuid.New()
	subjectID := w.seedSubject(t, owner, nil)
	ctx := context.Background()

	for _, c := range [][2]float64{{91, 0}, {-91, 0}, {0, 181}, {0, -181}} {
		_, err := w.ledger.ReportPosition(ctx, subjectID, c[0], c[1], tourist(owner))
		if !errors.Is(err, e.ErrInvalidCoordinates) {
			t.Fatalf("coords %v: want ErrInvalidCoordinates, got %v", c, err)
		}
	}

	s, err := w.subjects.Get(ctx, subjectID)
	if err != nil {
		t.Fatalf("get subject: %v", err)
	}
	if *s.Lat != tajLat || *s.Lng != tajLng {
		t.Fatal("position mutated by rejected report")
	}
}

func TestReportPosition_UnknownSubject(t *testing.T) {
	t.Parallel()

	w := newWorld(t)
	_, err := w.ledger.ReportPosition(context.Background(), uuid.New(), tajLat, tajLng, tourist(uuid.New()))
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestReportPosition_ForbiddenBeforeCoordinateValidation(t *testing.T) {
	t.Parallel()

	w := newWorld(t)
	subjectID := w.seedSubject(t, uuid.New(), nil)

	// a stranger with garbage coordinates gets Forbidden, not InvalidArgument
	_, err := w.ledger.ReportPosition(context.Background(), subjectID, 999, 999, tourist(uuid.New()))
	if !errors.Is(err, e.ErrForbidden) {
		t.Fatalf("want ErrForbidden, got %v", err)
	}
}

func TestReportPosition_ConcurrentReportsSingleIncident(t *testing.T) {
	t.Parallel()

	w := newWorld(t)
	owner := uuid.New()
	subjectID := w.seedSubject(t, owner, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := w.ledger.ReportPosition(ctx, subjectID, outsideLat, tajLng, tourist(owner))
			if err != nil {
				t.Errorf("concurrent report: %v", err)
			}
		}()
	}
	wg.Wait()

	if n := w.incidentCount(t, subjectID); n != 1 {
		t.Fatalf("one transition edge, want 1 incident, got %d", n)
	}
}

func TestChangeDestination_TeleportsToNewCenter(t *testing.T) {
	t.Parallel()

	w := newWorld(t)
	owner := uuid.New()
	subjectID := w.seedSubject(t, owner, nil)
	ctx := context.Background()

	// drive to Critical first
	if _, err := w.ledger.ReportPosition(ctx, subjectID, outsideLat, tajLng, tourist(owner)); err != nil {
		t.Fatalf("report: %v", err)
	}

	res, err := w.ledger.ChangeDestination(ctx, subjectID, 3, tourist(owner))
	if err != nil {
		t.Fatalf("change destination: %v", err)
	}
	if res.Status != domain.StatusSafe || !res.InsideFence {
		t.Fatalf("teleport to center must be Safe/inside, got %s/%v", res.Status, res.InsideFence)
	}
	if res.Incident != nil {
		t.Fatal("recovery through reassignment must be silent")
	}

	s, err := w.subjects.Get(ctx, subjectID)
	if err != nil {
		t.Fatalf("get subject: %v", err)
	}
	gateway := geo.NewIndex(geo.IndianTouristPlaces()).ByID(3)
	if s.PlaceID != 3 || *s.Lat != gateway.Lat || *s.Lng != gateway.Lng {
		t.Fatalf("subject not re-seeded at new center: %+v", s)
	}
	if n := w.incidentCount(t, subjectID); n != 1 {
		t.Fatalf("want 1 incident (from the earlier exit), got %d", n)
	}
}

func TestChangeDestination_UnknownPlaceRejectedBeforeMutation(t *testing.T) {
	t.Parallel()

	w := newWorld(t)
	owner := uuid.New()
	subjectID := w.seedSubject(t, owner, nil)
	ctx := context.Background()

	_, err := w.ledger.ChangeDestination(ctx, subjectID, 42, tourist(owner))
	if !errors.Is(err, e.ErrUnknownPlace) {
		t.Fatalf("want ErrUnknownPlace, got %v", err)
	}

	s, _ := w.subjects.Get(ctx, subjectID)
	if s.PlaceID != 1 {
		t.Fatal("place mutated by rejected reassignment")
	}
}

func TestChangeDestination_OwnerOnly(t *testing.T) {
	t.Parallel()

	w := newWorld(t)
	guideID := uuid.New()
	subjectID := w.seedSubject(t, uuid.New(), &guideID)
	ctx := context.Background()

	// even the assigned guide cannot reassign the destination
	_, err := w.ledger.ChangeDestination(ctx, subjectID, 2, domain.Identity{UserID: guideID, Role: domain.RoleGuide})
	if !errors.Is(err, e.ErrForbidden) {
		t.Fatalf("want ErrForbidden, got %v", err)
	}
}
