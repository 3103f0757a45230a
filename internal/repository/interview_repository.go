package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/intervue/platform-api/internal/model"
)

type InterviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{db}
}

func (r *InterviewRepository) Create(ctx context.Context, iv *model.Interview) error {
	return r.db.WithContext(ctx).Create(iv).Error
}

func (r *InterviewRepository) FindByID(ctx context.Context, id string) (*model.Interview, error) {
	var iv model.Interview
	err := r.db.WithContext(ctx).First(&iv, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &iv, nil
}

func (r *InterviewRepository) List(ctx context.Context) ([]model.Interview, error) {
	var ivs []model.Interview
	err := r.db.WithContext(ctx).Order("scheduled_at DESC").Find(&ivs).Error
	return ivs, err
}

func (r *InterviewRepository) ListByInterviewer(ctx context.Context, interviewerID string, statuses []model.InterviewStatus) ([]model.Interview, error) {
	var ivs []model.Interview
	q := r.db.WithContext(ctx).Where("interviewer_id = ?", interviewerID).Order("scheduled_at DESC")
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	err := q.Find(&ivs).Error
	return ivs, err
}

func (r *InterviewRepository) ListByCandidate(ctx context.Context, candidateID string) ([]model.Interview, error) {
	var ivs []model.Interview
	err := r.db.WithContext(ctx).Where("candidate_id = ?", candidateID).Order("scheduled_at DESC").Find(&ivs).Error
	return ivs, err
}

// ListByOrganization joins through the requirement to scope interviews to
// one organization.
func (r *InterviewRepository) ListByOrganization(ctx context.Context, orgID string) ([]model.Interview, error) {
	var ivs []model.Interview
	err := r.db.WithContext(ctx).
		Joins("JOIN requirements ON requirements.id = interviews_schedule.requirement_id").
		Where("requirements.organization_id = ?", orgID).
		Order("scheduled_at DESC").
		Find(&ivs).Error
	return ivs, err
}

func (r *InterviewRepository) ListByRequirement(ctx context.Context, requirementID string) ([]model.Interview, error) {
	var ivs []model.Interview
	err := r.db.WithContext(ctx).Where("requirement_id = ?", requirementID).Order("scheduled_at DESC").Find(&ivs).Error
	return ivs, err
}

// UpdateStatus writes only the status column.
func (r *InterviewRepository) UpdateStatus(ctx context.Context, id string, status model.InterviewStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Interview{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CompleteWithFeedback writes feedback and forces status Completed in a
// single UPDATE so the row can never hold one without the other.
func (r *InterviewRepository) CompleteWithFeedback(ctx context.Context, id string, fb *model.InterviewFeedback) error {
	res := r.db.WithContext(ctx).Model(&model.Interview{}).Where("id = ?", id).Updates(map[string]any{
		"feedback": fb,
		"status":   model.InterviewCompleted,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountBusy counts Scheduled or In Progress interviews for an interviewer
// whose scheduled_at falls inside [from, to). Backs the availability
// indicator.
func (r *InterviewRepository) CountBusy(ctx context.Context, interviewerID string, from, to time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Interview{}).
		Where("interviewer_id = ?", interviewerID).
		Where("status IN ?", []model.InterviewStatus{model.InterviewScheduled, model.InterviewInProgress}).
		Where("scheduled_at >= ? AND scheduled_at < ?", from, to).
		Count(&n).Error
	return n, err
}

// CountByStatus backs the organization analytics summary.
func (r *InterviewRepository) CountByStatus(ctx context.Context, orgID string) (map[model.InterviewStatus]int64, error) {
	type row struct {
		Status model.InterviewStatus
		N      int64
	}
	var rows []row
	q := r.db.WithContext(ctx).Model(&model.Interview{}).
		Select("interviews_schedule.status AS status, COUNT(*) AS n").
		Group("interviews_schedule.status")
	if orgID != "" {
		q = q.Joins("JOIN requirements ON requirements.id = interviews_schedule.requirement_id").
			Where("requirements.organization_id = ?", orgID)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[model.InterviewStatus]int64, len(rows))
	for _, r := range rows {
		out[r.Status] = r.N
	}
	return out, nil
}
