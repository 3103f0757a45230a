package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/intervue/platform-api/internal/apperror"
	"github.com/intervue/platform-api/internal/dto"
	"github.com/intervue/platform-api/internal/model"
	"github.com/intervue/platform-api/internal/service"
)

type InterviewerStore interface {
	Create(ctx context.Context, iv *model.Interviewer) error
	Update(ctx context.Context, iv *model.Interviewer) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*model.Interviewer, error)
	List(ctx context.Context, orgID string) ([]model.Interviewer, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status model.InterviewerStatus) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

type BusyCounter interface {
	CountBusy(ctx context.Context, interviewerID string, from, to time.Time) (int64, error)
}

type InterviewerUsecase struct {
	interviewers InterviewerStore
	interviews   BusyCounter
	orgs         OrganizationFinder
	notifier     service.Notifier
	log          *zap.Logger
	now          func() time.Time
}

func NewInterviewerUsecase(interviewers InterviewerStore, interviews BusyCounter, orgs OrganizationFinder, notifier service.Notifier, log *zap.Logger) *InterviewerUsecase {
	return &InterviewerUsecase{
		interviewers: interviewers,
		interviews:   interviews,
		orgs:         orgs,
		notifier:     notifier,
		log:          log,
		now:          time.Now,
	}
}

func (uc *InterviewerUsecase) Create(ctx context.Context, req dto.CreateInterviewerRequest) (*model.Interviewer, error) {
	var orgID *uuid.UUID
	if req.OrganizationID != "" {
		org, err := uc.orgs.FindByID(ctx, req.OrganizationID)
		if err != nil {
			return nil, refError("organization", req.OrganizationID, err)
		}
		orgID = &org.ID
	}

	iv := &model.Interviewer{
		ID:             uuid.New(),
		Name:           req.Name,
		Email:          req.Email,
		Skills:         req.Skills,
		Status:         model.InterviewerActive,
		OrganizationID: orgID,
	}
	if err := uc.interviewers.Create(ctx, iv); err != nil {
		uc.notifier.Notify("interviewer.create", false, "Failed to register interviewer")
		return nil, apperror.RemoteUnavailable("interviewer store", err)
	}
	uc.notifier.Notify("interviewer.create", true, "Interviewer registered")
	return iv, nil
}

func (uc *InterviewerUsecase) Get(ctx context.Context, id string) (*model.Interviewer, error) {
	iv, err := uc.interviewers.FindByID(ctx, id)
	if err != nil {
		return nil, refError("interviewer", id, err)
	}
	return iv, nil
}

func (uc *InterviewerUsecase) List(ctx context.Context, orgID string) ([]model.Interviewer, error) {
	ivs, err := uc.interviewers.List(ctx, orgID)
	if err != nil {
		return nil, apperror.RemoteUnavailable("interviewer store", err)
	}
	return ivs, nil
}

func (uc *InterviewerUsecase) Update(ctx context.Context, id string, req dto.UpdateInterviewerRequest) (*model.Interviewer, error) {
	iv, err := uc.interviewers.FindByID(ctx, id)
	if err != nil {
		return nil, refError("interviewer", id, err)
	}

	if req.Name != nil {
		iv.Name = *req.Name
	}
	if req.Email != nil {
		iv.Email = *req.Email
	}
	if req.Skills != nil {
		iv.Skills = req.Skills
	}
	if req.Status != nil {
		iv.Status = model.InterviewerStatus(*req.Status)
	}

	if err := uc.interviewers.Update(ctx, iv); err != nil {
		return nil, apperror.RemoteUnavailable("interviewer store", err)
	}
	return iv, nil
}

func (uc *InterviewerUsecase) Delete(ctx context.Context, id string) error {
	if _, err := uc.interviewers.FindByID(ctx, id); err != nil {
		return refError("interviewer", id, err)
	}
	if err := uc.interviewers.Delete(ctx, id); err != nil {
		return apperror.RemoteUnavailable("interviewer store", err)
	}
	uc.notifier.Notify("interviewer.delete", true, "Interviewer removed")
	return nil
}

// Stats backs the admin dashboard counters.
func (uc *InterviewerUsecase) Stats(ctx context.Context, newWithinDays int) (*model.InterviewerStats, error) {
	if newWithinDays <= 0 {
		newWithinDays = 30
	}
	total, err := uc.interviewers.CountAll(ctx)
	if err != nil {
		return nil, apperror.RemoteUnavailable("interviewer store", err)
	}
	available, err := uc.interviewers.CountByStatus(ctx, model.InterviewerActive)
	if err != nil {
		return nil, apperror.RemoteUnavailable("interviewer store", err)
	}
	fresh, err := uc.interviewers.CountCreatedSince(ctx, uc.now().AddDate(0, 0, -newWithinDays))
	if err != nil {
		return nil, apperror.RemoteUnavailable("interviewer store", err)
	}
	return &model.InterviewerStats{
		TotalInterviewers:     total,
		AvailableInterviewers: available,
		NewInterviewers:       fresh,
	}, nil
}

// Availability derives the busy indicator from the interview table: busy iff
// the interviewer has a Scheduled or In Progress interview inside the
// window around now. This is the single authoritative definition.
func (uc *InterviewerUsecase) Availability(ctx context.Context, id string, window time.Duration) (*dto.InterviewerAvailability, error) {
	if window <= 0 {
		window = time.Hour
	}
	if _, err := uc.interviewers.FindByID(ctx, id); err != nil {
		return nil, refError("interviewer", id, err)
	}

	now := uc.now()
	busy, err := uc.interviews.CountBusy(ctx, id, now.Add(-window), now.Add(window))
	if err != nil {
		return nil, apperror.RemoteUnavailable("interview store", err)
	}
	return &dto.InterviewerAvailability{
		InterviewerID: id,
		Available:     busy == 0,
		BusyCount:     busy,
	}, nil
}
