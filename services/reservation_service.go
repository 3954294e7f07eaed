package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/linskybing/gpu-reserve-go/aiclient"
	"github.com/linskybing/gpu-reserve-go/db"
	"github.com/linskybing/gpu-reserve-go/dto"
	"github.com/linskybing/gpu-reserve-go/minio"
	"github.com/linskybing/gpu-reserve-go/models"
	"github.com/linskybing/gpu-reserve-go/notify"
	"github.com/linskybing/gpu-reserve-go/queue"
	"github.com/linskybing/gpu-reserve-go/repositories"
	"gorm.io/gorm"
)

const (
	defaultRejectionReason   = "lower priority than an existing reservation"
	defaultAcknowledgeReason = "cancellation acknowledged by user"
	userCancelReason         = "cancelled by user"
)

type ReservationService struct {
	Repos       *repositories.Repos
	Interpreter aiclient.Interpreter
	Publisher   queue.Publisher
	Notifier    notify.Notifier
	Archiver    minio.Archiver
}

func NewReservationService(repos *repositories.Repos, interp aiclient.Interpreter, pub queue.Publisher, notifier notify.Notifier, archiver minio.Archiver) *ReservationService {
	return &ReservationService{
		Repos:       repos,
		Interpreter: interp,
		Publisher:   pub,
		Notifier:    notifier,
		Archiver:    archiver,
	}
}

// CreateReservation interprets the natural-language request, resolves
// conflicts on the selected server and commits the full transition set
// atomically. The returned reservation carries its final status; it is
// never observable as pending outside the transaction.
func (s *ReservationService) CreateReservation(ctx context.Context, userID uint, input dto.CreateReservationDTO) (models.Reservation, error) {
	text := strings.TrimSpace(input.NaturalLanguageRequest)
	if text == "" {
		return models.Reservation{}, fmt.Errorf("%w: request text is empty", ErrValidation)
	}

	user, err := s.Repos.User.GetByID(userID)
	if err != nil {
		return models.Reservation{}, err
	}

	cand, err := s.Interpreter.Interpret(ctx, text, user)
	if err != nil {
		return models.Reservation{}, err
	}

	// The interpreter is untrusted: re-validate its window before touching
	// any state.
	if !cand.StartTime.Before(cand.EndTime) {
		return models.Reservation{}, fmt.Errorf("%w: start_time must precede end_time", ErrValidation)
	}
	if !cand.EndTime.After(time.Now()) {
		return models.Reservation{}, fmt.Errorf("%w: requested window is entirely in the past", ErrValidation)
	}

	server, err := s.selectServer(cand)
	if err != nil {
		return models.Reservation{}, err
	}

	res := models.Reservation{
		UserID:                 userID,
		ServerID:               server.SID,
		NaturalLanguageRequest: text,
		Purpose:                cand.Purpose,
		StartTime:              cand.StartTime,
		EndTime:                cand.EndTime,
		PriorityScore:          cand.PriorityScore,
		Status:                 models.ReservationStatusPending,
		InterpreterPayload:     cand.Raw,
	}

	var displaced []models.Reservation
	resolve := func() error {
		displaced = nil
		return db.DB.Transaction(func(tx *gorm.DB) error {
			// Per-server mutual exclusion: every conflict evaluation for
			// this server queues behind the row lock.
			if _, err := s.Repos.Server.LockByID(tx, server.SID); err != nil {
				return err
			}

			overlaps, err := s.Repos.Reservation.FindOverlapping(tx, server.SID, res.StartTime, res.EndTime, 0)
			if err != nil {
				return err
			}

			if err := s.Repos.Reservation.Create(tx, &res); err != nil {
				return err
			}

			if len(overlaps) == 0 {
				res.Status = models.ReservationStatusConfirmed
				res.AIJudgmentReason = cand.Justification
				return s.Repos.Reservation.Update(tx, &res)
			}

			// Tie-break: equal scores favor the incumbent, so the candidate
			// must beat every overlap strictly.
			winner := true
			for i := range overlaps {
				if overlaps[i].PriorityScore >= res.PriorityScore {
					winner = false
					break
				}
			}

			if !winner {
				res.Status = models.ReservationStatusRejected
				res.AIJudgmentReason = fmt.Sprintf(
					"an overlapping reservation with priority %d or higher already holds %s: %s",
					res.PriorityScore, server.Name, cand.Justification)
				res.RejectionReason = defaultRejectionReason
				return s.Repos.Reservation.Update(tx, &res)
			}

			res.Status = models.ReservationStatusConfirmed
			res.AIJudgmentReason = cand.Justification
			for i := range overlaps {
				o := overlaps[i]
				o.Status = models.ReservationStatusPendingRejection
				o.AIJudgmentReason = fmt.Sprintf(
					"displaced by reservation %d with priority %d (own priority %d); awaiting owner confirmation",
					res.RID, res.PriorityScore, o.PriorityScore)
				if err := s.Repos.Reservation.Update(tx, &o); err != nil {
					return err
				}
				if err := s.Repos.Conflict.Create(tx, &models.ReservationConflict{
					ReservationID:            res.RID,
					ConflictingReservationID: o.RID,
				}); err != nil {
					return err
				}
				displaced = append(displaced, o)
			}
			return s.Repos.Reservation.Update(tx, &res)
		})
	}

	if err := resolve(); err != nil {
		if !isSerializationFailure(err) {
			return models.Reservation{}, err
		}
		// Retry once against fresh state before surfacing the conflict. The
		// rolled-back attempt may have stamped reasons for an outcome the
		// retry will not reach.
		res.RID = 0
		res.Status = models.ReservationStatusPending
		res.AIJudgmentReason = ""
		res.RejectionReason = ""
		if err := resolve(); err != nil {
			if isSerializationFailure(err) {
				return models.Reservation{}, fmt.Errorf("%w: %v", ErrConcurrencyConflict, err)
			}
			return models.Reservation{}, err
		}
	}

	s.afterCreate(ctx, res, cand, displaced)
	return res, nil
}

// afterCreate runs the best-effort side effects of a committed creation:
// lifecycle event, notices to displaced owners, transcript archive.
func (s *ReservationService) afterCreate(ctx context.Context, res models.Reservation, cand aiclient.Candidate, displaced []models.Reservation) {
	eventType := queue.EventReservationConfirmed
	reason := res.AIJudgmentReason
	if res.Status == models.ReservationStatusRejected {
		eventType = queue.EventReservationRejected
		reason = res.RejectionReason
	}
	s.publish(ctx, eventType, res, reason)

	for _, o := range displaced {
		s.publish(ctx, queue.EventReservationPendingRejection, o, o.AIJudgmentReason)
		s.Notifier.Notify(o.UserID, notify.Notice{
			Type:             queue.EventReservationPendingRejection,
			ReservationID:    o.RID,
			ServerID:         o.ServerID,
			Status:           string(o.Status),
			AIJudgmentReason: o.AIJudgmentReason,
		})
	}

	if err := s.Archiver.PutTranscript(ctx, minio.Transcript{
		ReservationID: res.RID,
		UserID:        res.UserID,
		RequestText:   res.NaturalLanguageRequest,
		Candidate:     cand.Raw,
	}); err != nil {
		log.Printf("transcript archive for reservation %d failed: %v", res.RID, err)
	}
}

func (s *ReservationService) publish(ctx context.Context, eventType string, res models.Reservation, reason string) {
	_ = s.Publisher.PublishReservationEvent(ctx, queue.ReservationEvent{
		Type:          eventType,
		ReservationID: res.RID,
		UserID:        res.UserID,
		ServerID:      res.ServerID,
		Status:        string(res.Status),
		StartTime:     res.StartTime,
		EndTime:       res.EndTime,
		PriorityScore: res.PriorityScore,
		Reason:        reason,
		OccurredAt:    time.Now(),
	})
}

// selectServer resolves the interpreter's server hint against the registry,
// or picks the first active server with a free window when no hint is given.
func (s *ReservationService) selectServer(cand aiclient.Candidate) (models.GPUServer, error) {
	servers, err := s.Repos.Server.ListActive()
	if err != nil {
		return models.GPUServer{}, err
	}
	if len(servers) == 0 {
		return models.GPUServer{}, fmt.Errorf("%w: no active servers in the catalog", ErrServerUnavailable)
	}

	if pref := strings.TrimSpace(cand.ServerPreference); pref != "" {
		for _, server := range servers {
			if strings.Contains(strings.ToLower(server.Name), strings.ToLower(pref)) {
				return server, nil
			}
		}
		return models.GPUServer{}, fmt.Errorf("%w: requested server %q is inactive or unknown", ErrServerUnavailable, pref)
	}

	// Free-window probe outside the transaction is only a placement hint;
	// the authoritative overlap check runs under the server lock.
	for _, server := range servers {
		overlaps, err := s.Repos.Reservation.FindOverlapping(db.DB, server.SID, cand.StartTime, cand.EndTime, 0)
		if err != nil {
			return models.GPUServer{}, err
		}
		if len(overlaps) == 0 {
			return server, nil
		}
	}
	return servers[0], nil
}

// ListReservations returns the caller's reservations, admins see all.
func (s *ReservationService) ListReservations(userID uint, isAdmin bool, query dto.ListReservationsQuery) ([]models.Reservation, error) {
	filter := repositories.ReservationFilter{
		PendingRejection: query.PendingRejection,
		Offset:           query.Skip,
		Limit:            query.Limit,
	}
	if query.Status != nil && *query.Status != "" {
		status := models.ReservationStatus(*query.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *query.Status)
		}
		filter.Status = &status
	}
	if isAdmin {
		return s.Repos.Reservation.ListAll(filter)
	}
	return s.Repos.Reservation.ListByUser(userID, filter)
}

func (s *ReservationService) GetReservation(id uint, userID uint, isAdmin bool) (models.Reservation, error) {
	res, err := s.Repos.Reservation.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Reservation{}, fmt.Errorf("%w: reservation %d", ErrNotFound, id)
		}
		return models.Reservation{}, err
	}
	if !isAdmin && res.UserID != userID {
		return models.Reservation{}, fmt.Errorf("%w: reservation %d", ErrNotFound, id)
	}
	return res, nil
}

// CancelReservation is the owner-initiated cancel, allowed at any time
// before the window elapses. Cancelling a pending_rejection reservation is
// treated as an acknowledged rejection.
func (s *ReservationService) CancelReservation(ctx context.Context, id uint, userID uint) (models.Reservation, error) {
	var out models.Reservation
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		res, err := s.Repos.Reservation.LockByID(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: reservation %d", ErrNotFound, id)
			}
			return err
		}
		if res.UserID != userID {
			return fmt.Errorf("%w: reservation %d", ErrNotFound, id)
		}
		if res.Status.IsTerminal() {
			return fmt.Errorf("%w: reservation is already %s", ErrInvalidState, res.Status)
		}
		if !res.EndTime.After(time.Now()) {
			return fmt.Errorf("%w: reservation window has already elapsed", ErrInvalidState)
		}

		if res.Status == models.ReservationStatusPendingRejection {
			if err := s.resolveOpenConflicts(tx, res.RID, models.ResolutionUserConfirmed); err != nil {
				return err
			}
		}

		res.Status = models.ReservationStatusCancelled
		res.RejectionReason = userCancelReason
		if err := s.Repos.Reservation.Update(tx, &res); err != nil {
			return err
		}
		out = res
		return nil
	})
	if err != nil {
		return models.Reservation{}, err
	}

	s.publish(ctx, queue.EventReservationCancelled, out, out.RejectionReason)
	return out, nil
}

// ConfirmRejection drives the two-step cancellation workflow. The row lock
// serializes concurrent confirms on the same reservation; a repeated
// confirm=true on an already-cancelled reservation is a no-op success so
// client retries stay safe.
func (s *ReservationService) ConfirmRejection(ctx context.Context, id uint, userID uint, confirm bool, reason *string) (models.Reservation, error) {
	var out models.Reservation
	var noop bool
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		res, err := s.Repos.Reservation.LockByID(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: reservation %d", ErrNotFound, id)
			}
			return err
		}
		if res.UserID != userID {
			return fmt.Errorf("%w: reservation %d", ErrNotFound, id)
		}

		if res.Status == models.ReservationStatusCancelled && confirm {
			out = res
			noop = true
			return nil
		}
		if res.Status != models.ReservationStatusPendingRejection {
			return fmt.Errorf("%w: reservation is %s, not pending_rejection", ErrInvalidState, res.Status)
		}

		if confirm {
			res.Status = models.ReservationStatusCancelled
			res.RejectionReason = defaultAcknowledgeReason
			if reason != nil && strings.TrimSpace(*reason) != "" {
				res.RejectionReason = strings.TrimSpace(*reason)
			}
			if err := s.resolveOpenConflicts(tx, res.RID, models.ResolutionUserConfirmed); err != nil {
				return err
			}
		} else {
			// Contested: the reservation reverts to confirmed and the
			// displacing reservation keeps its confirmed status. The
			// resulting double-booking is intentional and visible to both
			// parties through their judgment reasons.
			res.Status = models.ReservationStatusConfirmed
			if err := s.resolveOpenConflicts(tx, res.RID, models.ResolutionUserContested); err != nil {
				return err
			}
		}

		if err := s.Repos.Reservation.Update(tx, &res); err != nil {
			return err
		}
		out = res
		return nil
	})
	if err != nil {
		return models.Reservation{}, err
	}

	if !noop {
		eventType := queue.EventReservationCancelled
		if out.Status == models.ReservationStatusConfirmed {
			eventType = queue.EventReservationConfirmed
		}
		s.publish(ctx, eventType, out, out.RejectionReason)
	}
	return out, nil
}

// ListPendingRejections enumerates the caller's reservations awaiting their
// confirm-or-contest decision.
func (s *ReservationService) ListPendingRejections(userID uint) ([]models.Reservation, error) {
	return s.Repos.Reservation.ListByUser(userID, repositories.ReservationFilter{PendingRejection: true})
}

func (s *ReservationService) resolveOpenConflicts(tx *gorm.DB, reservationID uint, method string) error {
	conflicts, err := s.Repos.Conflict.ListOpenByConflicting(tx, reservationID)
	if err != nil {
		return err
	}
	for i := range conflicts {
		if err := s.Repos.Conflict.Resolve(tx, &conflicts[i], method); err != nil {
			return err
		}
	}
	return nil
}

// isSerializationFailure matches postgres serialization and deadlock
// aborts (SQLSTATE 40001 / 40P01) raised when two creations race on the
// same server.
func isSerializationFailure(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "40001") ||
		strings.Contains(msg, "40P01") ||
		strings.Contains(msg, "deadlock detected") ||
		strings.Contains(msg, "could not serialize access")
}
