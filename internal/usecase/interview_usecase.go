package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/intervue/platform-api/internal/apperror"
	"github.com/intervue/platform-api/internal/dto"
	"github.com/intervue/platform-api/internal/metrics"
	"github.com/intervue/platform-api/internal/model"
	"github.com/intervue/platform-api/internal/service"
	"github.com/intervue/platform-api/internal/util"
)

type InterviewStore interface {
	Create(ctx context.Context, iv *model.Interview) error
	FindByID(ctx context.Context, id string) (*model.Interview, error)
	List(ctx context.Context) ([]model.Interview, error)
	ListByInterviewer(ctx context.Context, interviewerID string, statuses []model.InterviewStatus) ([]model.Interview, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]model.Interview, error)
	UpdateStatus(ctx context.Context, id string, status model.InterviewStatus) error
	CompleteWithFeedback(ctx context.Context, id string, fb *model.InterviewFeedback) error
}

type CandidateFinder interface {
	FindByID(ctx context.Context, id string) (*model.Candidate, error)
}

type InterviewerFinder interface {
	FindByID(ctx context.Context, id string) (*model.Interviewer, error)
}

type RequirementFinder interface {
	FindByID(ctx context.Context, id string) (*model.Requirement, error)
}

type InterviewUsecase struct {
	interviews   InterviewStore
	candidates   CandidateFinder
	interviewers InterviewerFinder
	requirements RequirementFinder
	notifier     service.Notifier
	log          *zap.Logger
	now          func() time.Time
}

func NewInterviewUsecase(
	interviews InterviewStore,
	candidates CandidateFinder,
	interviewers InterviewerFinder,
	requirements RequirementFinder,
	notifier service.Notifier,
	log *zap.Logger,
) *InterviewUsecase {
	return &InterviewUsecase{
		interviews:   interviews,
		candidates:   candidates,
		interviewers: interviewers,
		requirements: requirements,
		notifier:     notifier,
		log:          log,
		now:          time.Now,
	}
}

// Schedule creates an interview in status Scheduled. All three references
// must resolve first; no row is written when any of them is missing. The
// caller cannot choose the initial status.
func (uc *InterviewUsecase) Schedule(ctx context.Context, req dto.ScheduleInterviewRequest) (*model.Interview, error) {
	if _, err := uc.candidates.FindByID(ctx, req.CandidateID); err != nil {
		return nil, refError("candidate", req.CandidateID, err)
	}
	if _, err := uc.interviewers.FindByID(ctx, req.InterviewerID); err != nil {
		return nil, refError("interviewer", req.InterviewerID, err)
	}
	if _, err := uc.requirements.FindByID(ctx, req.RequirementID); err != nil {
		return nil, refError("requirement", req.RequirementID, err)
	}

	if req.ScheduledAt.Before(uc.now().Add(-time.Minute)) {
		return nil, apperror.Validation("scheduled_at must not be in the past", map[string]string{"scheduled_at": "must be a present or future timestamp"})
	}

	iv := &model.Interview{
		ID:            uuid.New(),
		CandidateID:   uuid.MustParse(req.CandidateID),
		InterviewerID: uuid.MustParse(req.InterviewerID),
		RequirementID: uuid.MustParse(req.RequirementID),
		ScheduledAt:   req.ScheduledAt,
		Status:        model.InterviewScheduled,
		Feedback:      nil,
	}
	if err := uc.interviews.Create(ctx, iv); err != nil {
		uc.notifier.Notify("interview.schedule", false, "Failed to schedule interview")
		return nil, apperror.RemoteUnavailable("interview store", err)
	}

	metrics.InterviewsScheduled.Inc()
	uc.notifier.Notify("interview.schedule", true, "Interview scheduled")
	uc.log.Info("interview scheduled", zap.String("interview_id", iv.ID.String()))
	return iv, nil
}

// UpdateStatus moves an interview along the lifecycle. A call with the
// current status is an idempotent no-op. Completed is owned by
// SubmitFeedback and rejected here so feedback can never be skipped.
func (uc *InterviewUsecase) UpdateStatus(ctx context.Context, id string, to model.InterviewStatus) (*model.Interview, error) {
	if !model.ValidInterviewStatus(to) {
		return nil, apperror.Validation("unknown interview status", map[string]string{"status": "must be Scheduled, In Progress, Completed or Canceled"})
	}

	iv, err := uc.interviews.FindByID(ctx, id)
	if err != nil {
		return nil, refError("interview", id, err)
	}

	if iv.Status == to {
		return iv, nil
	}
	if to == model.InterviewCompleted {
		return nil, apperror.Validation("completion requires feedback", map[string]string{"status": "submit feedback to complete an interview"})
	}
	if !model.CanTransition(iv.Status, to) {
		return nil, apperror.Validation("illegal status transition", map[string]string{
			"status": string(iv.Status) + " cannot become " + string(to),
		})
	}

	if err := uc.interviews.UpdateStatus(ctx, id, to); err != nil {
		return nil, refError("interview", id, err)
	}

	metrics.InterviewTransitions.WithLabelValues(string(to)).Inc()
	uc.notifier.Notify("interview.status", true, "Interview moved to "+string(to))
	iv.Status = to
	return iv, nil
}

// SubmitFeedback validates the feedback and, in one atomic write, attaches
// it and forces status Completed. An interview can never be observed
// Completed without feedback or holding feedback without being Completed.
func (uc *InterviewUsecase) SubmitFeedback(ctx context.Context, id string, req dto.SubmitFeedbackRequest) (*model.Interview, error) {
	fb := &model.InterviewFeedback{
		Rating:         req.Rating,
		Comments:       req.Comments,
		Strengths:      req.Strengths,
		Weaknesses:     req.Weaknesses,
		Recommendation: req.Recommendation,
	}
	if err := util.Validator().Struct(fb); err != nil {
		return nil, apperror.Validation("feedback validation failed", map[string]string{
			"rating":   "required, 1 to 5",
			"comments": "required",
		})
	}

	iv, err := uc.interviews.FindByID(ctx, id)
	if err != nil {
		return nil, refError("interview", id, err)
	}
	if !model.CanTransition(iv.Status, model.InterviewCompleted) || iv.Status.IsTerminal() {
		return nil, apperror.Validation("interview cannot be completed", map[string]string{
			"status": string(iv.Status) + " is terminal",
		})
	}

	if err := uc.interviews.CompleteWithFeedback(ctx, id, fb); err != nil {
		uc.notifier.Notify("interview.feedback", false, "Failed to submit feedback")
		return nil, refError("interview", id, err)
	}

	metrics.InterviewTransitions.WithLabelValues(string(model.InterviewCompleted)).Inc()
	uc.notifier.Notify("interview.feedback", true, "Feedback submitted")
	uc.log.Info("interview completed", zap.String("interview_id", id), zap.Int("rating", fb.Rating))
	iv.Status = model.InterviewCompleted
	iv.Feedback = fb
	return iv, nil
}

func (uc *InterviewUsecase) Get(ctx context.Context, id string) (*model.Interview, error) {
	iv, err := uc.interviews.FindByID(ctx, id)
	if err != nil {
		return nil, refError("interview", id, err)
	}
	return iv, nil
}

func (uc *InterviewUsecase) List(ctx context.Context) ([]model.Interview, error) {
	ivs, err := uc.interviews.List(ctx)
	if err != nil {
		return nil, apperror.RemoteUnavailable("interview store", err)
	}
	return ivs, nil
}

// ListAssigned returns an interviewer's open workload (Scheduled and In
// Progress).
func (uc *InterviewUsecase) ListAssigned(ctx context.Context, interviewerID string) ([]model.Interview, error) {
	ivs, err := uc.interviews.ListByInterviewer(ctx, interviewerID, []model.InterviewStatus{model.InterviewScheduled, model.InterviewInProgress})
	if err != nil {
		return nil, apperror.RemoteUnavailable("interview store", err)
	}
	return ivs, nil
}

// ListHistory returns an interviewer's terminal interviews.
func (uc *InterviewUsecase) ListHistory(ctx context.Context, interviewerID string) ([]model.Interview, error) {
	ivs, err := uc.interviews.ListByInterviewer(ctx, interviewerID, []model.InterviewStatus{model.InterviewCompleted, model.InterviewCanceled})
	if err != nil {
		return nil, apperror.RemoteUnavailable("interview store", err)
	}
	return ivs, nil
}

func (uc *InterviewUsecase) ListForCandidate(ctx context.Context, candidateID string) ([]model.Interview, error) {
	ivs, err := uc.interviews.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, apperror.RemoteUnavailable("interview store", err)
	}
	return ivs, nil
}

// refError maps a store error for a referenced id: missing rows become
// NotFound, anything else is a store availability failure.
func refError(entity, id string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(entity, id)
	}
	return apperror.RemoteUnavailable(entity+" store", err)
}
