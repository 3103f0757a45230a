package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/intervue/platform-api/internal/model"
)

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db}
}

func (r *OrganizationRepository) Create(ctx context.Context, org *model.Organization) error {
	return r.db.WithContext(ctx).Create(org).Error
}

func (r *OrganizationRepository) Update(ctx context.Context, org *model.Organization) error {
	return r.db.WithContext(ctx).Save(org).Error
}

func (r *OrganizationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Organization{}, "id = ?", id).Error
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id string) (*model.Organization, error) {
	var org model.Organization
	err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// List returns organizations newest first, optionally filtered by a name
// substring.
func (r *OrganizationRepository) List(ctx context.Context, search string) ([]model.Organization, error) {
	var orgs []model.Organization
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}
	err := q.Find(&orgs).Error
	return orgs, err
}

// ListPaged returns one page of organizations plus the total match count.
func (r *OrganizationRepository) ListPaged(ctx context.Context, search string, page, pageSize int) ([]model.Organization, int64, error) {
	var orgs []model.Organization
	var total int64
	q := r.db.WithContext(ctx).Model(&model.Organization{})
	if search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&orgs).Error
	return orgs, total, err
}

// CountDependents reports how many requirements and interviewers still
// reference the organization. Used to enforce restrict-on-delete.
func (r *OrganizationRepository) CountDependents(ctx context.Context, id string) (requirements, interviewers int64, err error) {
	if err = r.db.WithContext(ctx).Model(&model.Requirement{}).Where("organization_id = ?", id).Count(&requirements).Error; err != nil {
		return
	}
	err = r.db.WithContext(ctx).Model(&model.Interviewer{}).Where("organization_id = ?", id).Count(&interviewers).Error
	return
}
