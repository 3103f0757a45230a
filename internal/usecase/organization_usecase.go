package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/intervue/platform-api/internal/apperror"
	"github.com/intervue/platform-api/internal/dto"
	"github.com/intervue/platform-api/internal/model"
	"github.com/intervue/platform-api/internal/response"
	"github.com/intervue/platform-api/internal/service"
)

type OrganizationStore interface {
	Create(ctx context.Context, org *model.Organization) error
	Update(ctx context.Context, org *model.Organization) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*model.Organization, error)
	List(ctx context.Context, search string) ([]model.Organization, error)
	ListPaged(ctx context.Context, search string, page, pageSize int) ([]model.Organization, int64, error)
	CountDependents(ctx context.Context, id string) (requirements, interviewers int64, err error)
}

type OrganizationUserStore interface {
	FindByOrganization(ctx context.Context, orgID string, roles []model.Role) ([]model.User, error)
}

type InterviewAnalytics interface {
	CountByStatus(ctx context.Context, orgID string) (map[model.InterviewStatus]int64, error)
}

type OrganizationUsecase struct {
	orgs         OrganizationStore
	users        OrganizationUserStore
	requirements RequirementStore
	interviews   InterviewAnalytics
	notifier     service.Notifier
	log          *zap.Logger
}

func NewOrganizationUsecase(
	orgs OrganizationStore,
	users OrganizationUserStore,
	requirements RequirementStore,
	interviews InterviewAnalytics,
	notifier service.Notifier,
	log *zap.Logger,
) *OrganizationUsecase {
	return &OrganizationUsecase{orgs: orgs, users: users, requirements: requirements, interviews: interviews, notifier: notifier, log: log}
}

func (uc *OrganizationUsecase) Create(ctx context.Context, req dto.CreateCompanyRequest) (*model.Organization, error) {
	org := &model.Organization{
		ID:       uuid.New(),
		Name:     req.Name,
		Industry: req.Industry,
		Address:  req.Address,
	}
	if err := uc.orgs.Create(ctx, org); err != nil {
		uc.notifier.Notify("company.create", false, "Failed to create company")
		return nil, apperror.RemoteUnavailable("organization store", err)
	}
	uc.notifier.Notify("company.create", true, "Company created")
	return org, nil
}

func (uc *OrganizationUsecase) Get(ctx context.Context, id string) (*model.Organization, error) {
	org, err := uc.orgs.FindByID(ctx, id)
	if err != nil {
		return nil, refError("organization", id, err)
	}
	return org, nil
}

func (uc *OrganizationUsecase) List(ctx context.Context, search string) ([]model.Organization, error) {
	orgs, err := uc.orgs.List(ctx, search)
	if err != nil {
		return nil, apperror.RemoteUnavailable("organization store", err)
	}
	return orgs, nil
}

// ListPaged serves the admin companies table.
func (uc *OrganizationUsecase) ListPaged(ctx context.Context, search string, page, pageSize int) ([]model.Organization, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	orgs, total, err := uc.orgs.ListPaged(ctx, search, page, pageSize)
	if err != nil {
		return nil, nil, apperror.RemoteUnavailable("organization store", err)
	}

	totalPages := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		totalPages++
	}
	from, to := 0, 0
	if len(orgs) > 0 {
		from = (page-1)*pageSize + 1
		to = from + len(orgs) - 1
	}
	return orgs, &response.Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: total,
		HasMore:    int64(page) < totalPages,
		From:       from,
		To:         to,
	}, nil
}

func (uc *OrganizationUsecase) Update(ctx context.Context, id string, req dto.UpdateCompanyRequest) (*model.Organization, error) {
	org, err := uc.orgs.FindByID(ctx, id)
	if err != nil {
		return nil, refError("organization", id, err)
	}
	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.Industry != nil {
		org.Industry = *req.Industry
	}
	if req.Address != nil {
		org.Address = *req.Address
	}
	if err := uc.orgs.Update(ctx, org); err != nil {
		return nil, apperror.RemoteUnavailable("organization store", err)
	}
	uc.notifier.Notify("company.update", true, "Company updated")
	return org, nil
}

// Delete removes an organization. Restricted: an organization with live
// requirements or affiliated interviewers cannot be deleted.
func (uc *OrganizationUsecase) Delete(ctx context.Context, id string) error {
	if _, err := uc.orgs.FindByID(ctx, id); err != nil {
		return refError("organization", id, err)
	}

	reqs, ivs, err := uc.orgs.CountDependents(ctx, id)
	if err != nil {
		return apperror.RemoteUnavailable("organization store", err)
	}
	if reqs > 0 || ivs > 0 {
		return apperror.Validation("organization has dependents", map[string]string{
			"requirements": fmt.Sprintf("%d", reqs),
			"interviewers": fmt.Sprintf("%d", ivs),
		})
	}

	if err := uc.orgs.Delete(ctx, id); err != nil {
		uc.notifier.Notify("company.delete", false, "Failed to delete company")
		return apperror.RemoteUnavailable("organization store", err)
	}
	uc.notifier.Notify("company.delete", true, "Company deleted")
	uc.log.Info("organization deleted", zap.String("organization_id", id))
	return nil
}

// Representatives lists the client actors affiliated with an organization.
func (uc *OrganizationUsecase) Representatives(ctx context.Context, id string) ([]dto.CompanyRepresentative, error) {
	if _, err := uc.orgs.FindByID(ctx, id); err != nil {
		return nil, refError("organization", id, err)
	}
	users, err := uc.users.FindByOrganization(ctx, id, []model.Role{model.RoleClient, model.RoleClientCoordinator})
	if err != nil {
		return nil, apperror.RemoteUnavailable("user store", err)
	}
	reps := make([]dto.CompanyRepresentative, 0, len(users))
	for _, u := range users {
		reps = append(reps, dto.CompanyRepresentative{ID: u.ID.String(), FullName: u.FullName, Email: u.Email})
	}
	return reps, nil
}

// PendingRequirements lists an organization's requirements awaiting approval.
func (uc *OrganizationUsecase) PendingRequirements(ctx context.Context, id string) ([]model.Requirement, error) {
	if _, err := uc.orgs.FindByID(ctx, id); err != nil {
		return nil, refError("organization", id, err)
	}
	rs, err := uc.requirements.List(ctx, model.RequirementPending, id)
	if err != nil {
		return nil, apperror.RemoteUnavailable("requirement store", err)
	}
	return rs, nil
}

// AnalyticsSummary is the organization dashboard rollup.
type AnalyticsSummary struct {
	InterviewsByStatus map[model.InterviewStatus]int64 `json:"interviews_by_status"`
	OpenPositions      int                             `json:"open_positions"`
}

func (uc *OrganizationUsecase) Analytics(ctx context.Context, orgID string) (*AnalyticsSummary, error) {
	if _, err := uc.orgs.FindByID(ctx, orgID); err != nil {
		return nil, refError("organization", orgID, err)
	}

	byStatus, err := uc.interviews.CountByStatus(ctx, orgID)
	if err != nil {
		return nil, apperror.RemoteUnavailable("interview store", err)
	}

	open, err := uc.requirements.List(ctx, model.RequirementApproved, orgID)
	if err != nil {
		return nil, apperror.RemoteUnavailable("requirement store", err)
	}
	positions := 0
	for _, r := range open {
		positions += r.NumberOfPositions
	}

	return &AnalyticsSummary{InterviewsByStatus: byStatus, OpenPositions: positions}, nil
}
