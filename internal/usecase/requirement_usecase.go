package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/intervue/platform-api/internal/apperror"
	"github.com/intervue/platform-api/internal/dto"
	"github.com/intervue/platform-api/internal/model"
	"github.com/intervue/platform-api/internal/service"
)

type RequirementStore interface {
	Create(ctx context.Context, req *model.Requirement) error
	Update(ctx context.Context, req *model.Requirement) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*model.Requirement, error)
	List(ctx context.Context, status model.RequirementStatus, orgID string) ([]model.Requirement, error)
	UpdateStatus(ctx context.Context, id string, status model.RequirementStatus) error
	CountDependents(ctx context.Context, id string) (interviews, candidates int64, err error)
}

type RequirementUsecase struct {
	requirements RequirementStore
	orgs         OrganizationFinder
	notifier     service.Notifier
	log          *zap.Logger
}

func NewRequirementUsecase(requirements RequirementStore, orgs OrganizationFinder, notifier service.Notifier, log *zap.Logger) *RequirementUsecase {
	return &RequirementUsecase{requirements: requirements, orgs: orgs, notifier: notifier, log: log}
}

// Create raises a requirement on behalf of an organization. Status always
// starts Pending; approval is a separate admin action.
func (uc *RequirementUsecase) Create(ctx context.Context, raisedBy uuid.UUID, req dto.CreateRequirementRequest) (*model.Requirement, error) {
	org, err := uc.orgs.FindByID(ctx, req.OrganizationID)
	if err != nil {
		return nil, refError("organization", req.OrganizationID, err)
	}

	r := &model.Requirement{
		ID:                uuid.New(),
		Title:             req.Title,
		Description:       req.Description,
		Skills:            req.Skills,
		YearsOfExperience: req.YearsOfExperience,
		NumberOfPositions: req.NumberOfPositions,
		PricePerInterview: req.PricePerInterview,
		Status:            model.RequirementPending,
		OrganizationID:    org.ID,
		RaisedBy:          raisedBy,
	}
	if err := uc.requirements.Create(ctx, r); err != nil {
		uc.notifier.Notify("requirement.create", false, "Failed to create requirement")
		return nil, apperror.RemoteUnavailable("requirement store", err)
	}

	uc.notifier.Notify("requirement.create", true, "Requirement created")
	uc.log.Info("requirement raised", zap.String("requirement_id", r.ID.String()), zap.String("organization_id", org.ID.String()))
	return r, nil
}

func (uc *RequirementUsecase) Get(ctx context.Context, id string) (*model.Requirement, error) {
	r, err := uc.requirements.FindByID(ctx, id)
	if err != nil {
		return nil, refError("requirement", id, err)
	}
	return r, nil
}

func (uc *RequirementUsecase) List(ctx context.Context, status, orgID string) ([]model.Requirement, error) {
	rs, err := uc.requirements.List(ctx, model.RequirementStatus(status), orgID)
	if err != nil {
		return nil, apperror.RemoteUnavailable("requirement store", err)
	}
	return rs, nil
}

func (uc *RequirementUsecase) Update(ctx context.Context, id string, req dto.UpdateRequirementRequest) (*model.Requirement, error) {
	r, err := uc.requirements.FindByID(ctx, id)
	if err != nil {
		return nil, refError("requirement", id, err)
	}

	if req.Title != nil {
		r.Title = *req.Title
	}
	if req.Description != nil {
		r.Description = *req.Description
	}
	if req.Skills != nil {
		r.Skills = req.Skills
	}
	if req.YearsOfExperience != nil {
		r.YearsOfExperience = *req.YearsOfExperience
	}
	if req.NumberOfPositions != nil {
		r.NumberOfPositions = *req.NumberOfPositions
	}
	if req.PricePerInterview != nil {
		r.PricePerInterview = *req.PricePerInterview
	}

	if err := uc.requirements.Update(ctx, r); err != nil {
		return nil, apperror.RemoteUnavailable("requirement store", err)
	}
	return r, nil
}

// Delete removes a requirement. Restricted: one with interviews or
// candidates attached cannot be deleted, the history must survive.
func (uc *RequirementUsecase) Delete(ctx context.Context, id string) error {
	if _, err := uc.requirements.FindByID(ctx, id); err != nil {
		return refError("requirement", id, err)
	}

	interviews, candidates, err := uc.requirements.CountDependents(ctx, id)
	if err != nil {
		return apperror.RemoteUnavailable("requirement store", err)
	}
	if interviews > 0 || candidates > 0 {
		return apperror.Validation("requirement has dependents", map[string]string{
			"interviews": fmt.Sprintf("%d", interviews),
			"candidates": fmt.Sprintf("%d", candidates),
		})
	}

	if err := uc.requirements.Delete(ctx, id); err != nil {
		return apperror.RemoteUnavailable("requirement store", err)
	}
	uc.notifier.Notify("requirement.delete", true, "Requirement deleted")
	return nil
}

// Approve opens a Pending requirement for scheduling.
func (uc *RequirementUsecase) Approve(ctx context.Context, id string) (*model.Requirement, error) {
	r, err := uc.requirements.FindByID(ctx, id)
	if err != nil {
		return nil, refError("requirement", id, err)
	}
	if r.Status != model.RequirementPending {
		return nil, apperror.Validation("only pending requirements can be approved", map[string]string{"status": string(r.Status)})
	}

	if err := uc.requirements.UpdateStatus(ctx, id, model.RequirementApproved); err != nil {
		return nil, refError("requirement", id, err)
	}

	uc.notifier.Notify("requirement.approve", true, "Requirement approved")
	r.Status = model.RequirementApproved
	return r, nil
}

// Close ends a requirement as Fulfilled or Canceled.
func (uc *RequirementUsecase) Close(ctx context.Context, id string, status model.RequirementStatus) (*model.Requirement, error) {
	if status != model.RequirementFulfilled && status != model.RequirementCanceled {
		return nil, apperror.Validation("close status must be Fulfilled or Canceled", map[string]string{"status": string(status)})
	}

	r, err := uc.requirements.FindByID(ctx, id)
	if err != nil {
		return nil, refError("requirement", id, err)
	}
	if r.Status == model.RequirementFulfilled || r.Status == model.RequirementCanceled {
		return r, nil
	}

	if err := uc.requirements.UpdateStatus(ctx, id, status); err != nil {
		return nil, refError("requirement", id, err)
	}

	uc.notifier.Notify("requirement.close", true, "Requirement "+string(status))
	r.Status = status
	return r, nil
}
