package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/internal/domain"
	"github.com/prathamesh-chavan-22/Tourist-saftey-Net/pkg/e"
)

// LocationIngest is the composite workflow: ledger write, then fan-out,
// then alert enqueue. Fan-out and alert failures never surface to the
// reporting caller.
type LocationIngest struct {
	ledger   *LocationLedger
	notifier Notifier
	alerts   AlertEnqueuer
	logger   *slog.Logger
}

func NewLocationIngest(ledger *LocationLedger, notifier Notifier, alerts AlertEnqueuer, logger *slog.Logger) *LocationIngest {
	return &LocationIngest{
		ledger:   ledger,
		notifier: notifier,
		alerts:   alerts,
		logger:   logger,
	}
}

func (s *LocationIngest) ReportPosition(ctx context.Context, req domain.LocationUpdateRequest, caller domain.Identity) (domain.LocationUpdateResponse, error) {
	const op = "ingest.ReportPosition"

	subjectID, err := uuid.Parse(req.SubjectID)
	if err != nil {
		return domain.LocationUpdateResponse{}, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	res, err := s.ledger.ReportPosition(ctx, subjectID, req.Lat, req.Lng, caller)
	if err != nil {
		return domain.LocationUpdateResponse{}, err
	}

	s.logger.Info("location report applied",
		slog.String("subject_id", subjectID.String()),
		slog.String("status", string(res.Status)),
		slog.Bool("inside_fence", res.InsideFence),
	)

	s.broadcast(ctx, res)

	return domain.LocationUpdateResponse{Status: res.Status, InsideFence: res.InsideFence}, nil
}

func (s *LocationIngest) ChangeDestination(ctx context.Context, req domain.ChangeDestinationRequest, caller domain.Identity) (domain.LocationUpdateResponse, error) {
	const op = "ingest.ChangeDestination"

	subjectID, err := uuid.Parse(req.SubjectID)
	if err != nil {
		return domain.LocationUpdateResponse{}, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	res, err := s.ledger.ChangeDestination(ctx, subjectID, req.PlaceID, caller)
	if err != nil {
		return domain.LocationUpdateResponse{}, err
	}

	s.logger.Info("destination reassigned",
		slog.String("subject_id", subjectID.String()),
		slog.Int("place_id", req.PlaceID),
		slog.String("status", string(res.Status)),
	)

	s.broadcast(ctx, res)

	return domain.LocationUpdateResponse{Status: res.Status, InsideFence: res.InsideFence}, nil
}

func (s *LocationIngest) broadcast(ctx context.Context, res *ReportResult) {
	var lat, lng float64
	if res.Subject.Lat != nil {
		lat, lng = *res.Subject.Lat, *res.Subject.Lng
	}

	s.notifier.NotifySubjectUpdate(res.Subject.ID, domain.LocationUpdateEvent{
		Type:        domain.EventLocationUpdate,
		SubjectID:   res.Subject.ID,
		Name:        res.Subject.Name,
		Lat:         lat,
		Lng:         lng,
		Status:      res.Status,
		InsideFence: res.InsideFence,
	})

	if res.Incident == nil || s.alerts == nil {
		return
	}
	err := s.alerts.Enqueue(ctx, domain.AlertPayload{
		IncidentID:  res.Incident.ID,
		SubjectID:   res.Subject.ID,
		SubjectName: res.Subject.Name,
		Severity:    res.Incident.Severity,
		Lat:         res.Incident.Lat,
		Lng:         res.Incident.Lng,
		CreatedAt:   res.Incident.CreatedAt,
	})
	if err != nil {
		s.logger.Error("alert enqueue failed", slog.Any("error", err))
	}
}
