package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/intervue/platform-api/internal/apperror"
	"github.com/intervue/platform-api/internal/dto"
	"github.com/intervue/platform-api/internal/logger"
	"github.com/intervue/platform-api/internal/model"
	"github.com/intervue/platform-api/internal/service"
)

type fakeRequirementStore struct {
	rows       map[string]*model.Requirement
	dependents map[string][2]int64
}

func newFakeRequirementStore() *fakeRequirementStore {
	return &fakeRequirementStore{rows: map[string]*model.Requirement{}, dependents: map[string][2]int64{}}
}

func (s *fakeRequirementStore) Create(_ context.Context, r *model.Requirement) error {
	cp := *r
	s.rows[r.ID.String()] = &cp
	return nil
}

func (s *fakeRequirementStore) Update(_ context.Context, r *model.Requirement) error {
	cp := *r
	s.rows[r.ID.String()] = &cp
	return nil
}

func (s *fakeRequirementStore) Delete(_ context.Context, id string) error {
	delete(s.rows, id)
	return nil
}

func (s *fakeRequirementStore) CountDependents(_ context.Context, id string) (int64, int64, error) {
	d := s.dependents[id]
	return d[0], d[1], nil
}

func (s *fakeRequirementStore) FindByID(_ context.Context, id string) (*model.Requirement, error) {
	r, ok := s.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *fakeRequirementStore) List(_ context.Context, status model.RequirementStatus, orgID string) ([]model.Requirement, error) {
	var out []model.Requirement
	for _, r := range s.rows {
		if status != "" && r.Status != status {
			continue
		}
		if orgID != "" && r.OrganizationID.String() != orgID {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (s *fakeRequirementStore) UpdateStatus(_ context.Context, id string, status model.RequirementStatus) error {
	r, ok := s.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	r.Status = status
	return nil
}

func newRequirementFixture(t *testing.T) (*RequirementUsecase, *fakeRequirementStore, *model.Organization) {
	t.Helper()
	org := &model.Organization{ID: uuid.New(), Name: "Acme"}
	store := newFakeRequirementStore()
	uc := NewRequirementUsecase(store, &fakeOrgFinder{orgs: map[string]*model.Organization{org.ID.String(): org}}, service.NopNotifier{}, logger.NewTest(t))
	return uc, store, org
}

func createRequirement(t *testing.T, uc *RequirementUsecase, org *model.Organization) *model.Requirement {
	t.Helper()
	r, err := uc.Create(context.Background(), uuid.New(), dto.CreateRequirementRequest{
		Title:             "Backend Engineer",
		Skills:            []string{"go", "postgres"},
		NumberOfPositions: 2,
		OrganizationID:    org.ID.String(),
	})
	require.NoError(t, err)
	return r
}

func TestRequirementStartsPending(t *testing.T) {
	uc, store, org := newRequirementFixture(t)
	r := createRequirement(t, uc, org)

	assert.Equal(t, model.RequirementPending, r.Status)
	assert.Equal(t, model.RequirementPending, store.rows[r.ID.String()].Status)
}

func TestRequirementCreateUnknownOrganization(t *testing.T) {
	uc, store, _ := newRequirementFixture(t)

	_, err := uc.Create(context.Background(), uuid.New(), dto.CreateRequirementRequest{
		Title:             "Backend Engineer",
		Skills:            []string{"go"},
		NumberOfPositions: 1,
		OrganizationID:    uuid.NewString(),
	})
	assert.True(t, apperror.IsCode(err, apperror.CodeNotFound), "got %v", err)
	assert.Empty(t, store.rows)
}

func TestRequirementApprove(t *testing.T) {
	uc, store, org := newRequirementFixture(t)
	r := createRequirement(t, uc, org)

	approved, err := uc.Approve(context.Background(), r.ID.String())
	require.NoError(t, err)
	assert.Equal(t, model.RequirementApproved, approved.Status)
	assert.Equal(t, model.RequirementApproved, store.rows[r.ID.String()].Status)

	_, err = uc.Approve(context.Background(), r.ID.String())
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation), "re-approval must be rejected, got %v", err)
}

func TestRequirementClose(t *testing.T) {
	uc, store, org := newRequirementFixture(t)
	r := createRequirement(t, uc, org)

	_, err := uc.Close(context.Background(), r.ID.String(), "Open")
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation), "got %v", err)

	closed, err := uc.Close(context.Background(), r.ID.String(), model.RequirementFulfilled)
	require.NoError(t, err)
	assert.Equal(t, model.RequirementFulfilled, closed.Status)

	// Closing an already closed requirement keeps its original terminal state.
	again, err := uc.Close(context.Background(), r.ID.String(), model.RequirementCanceled)
	require.NoError(t, err)
	assert.Equal(t, model.RequirementFulfilled, again.Status)
	assert.Equal(t, model.RequirementFulfilled, store.rows[r.ID.String()].Status)
}

func TestRequirementDeleteRestricted(t *testing.T) {
	uc, store, org := newRequirementFixture(t)
	r := createRequirement(t, uc, org)
	store.dependents[r.ID.String()] = [2]int64{1, 0}

	err := uc.Delete(context.Background(), r.ID.String())
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation), "got %v", err)
	assert.Contains(t, store.rows, r.ID.String())

	store.dependents[r.ID.String()] = [2]int64{0, 0}
	require.NoError(t, uc.Delete(context.Background(), r.ID.String()))
	assert.Empty(t, store.rows)
}

// TestHiringFlowScenario drives the coordinator path end to end: raise a
// requirement, approve it, then schedule and complete an interview against it.
func TestHiringFlowScenario(t *testing.T) {
	ctx := context.Background()
	reqUC, reqStore, org := newRequirementFixture(t)
	r := createRequirement(t, reqUC, org)
	_, err := reqUC.Approve(ctx, r.ID.String())
	require.NoError(t, err)

	candidateID := uuid.NewString()
	interviewerID := uuid.NewString()
	ivStore := newFakeInterviewStore()
	ivUC := NewInterviewUsecase(
		ivStore,
		&fakeCandidateFinder{ids: map[string]bool{candidateID: true}},
		&fakeInterviewerFinder{ids: map[string]bool{interviewerID: true}},
		&fakeRequirementFinder{ids: map[string]bool{r.ID.String(): true}},
		service.NopNotifier{},
		logger.NewTest(t),
	)
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	ivUC.now = func() time.Time { return base }

	iv, err := ivUC.Schedule(ctx, dto.ScheduleInterviewRequest{
		CandidateID:   candidateID,
		InterviewerID: interviewerID,
		RequirementID: r.ID.String(),
		ScheduledAt:   base.Add(48 * time.Hour),
	})
	require.NoError(t, err)

	_, err = ivUC.UpdateStatus(ctx, iv.ID.String(), model.InterviewInProgress)
	require.NoError(t, err)

	done, err := ivUC.SubmitFeedback(ctx, iv.ID.String(), dto.SubmitFeedbackRequest{
		Rating:   5,
		Comments: "ready for the role",
	})
	require.NoError(t, err)
	assert.Equal(t, model.InterviewCompleted, done.Status)

	closed, err := reqUC.Close(ctx, r.ID.String(), model.RequirementFulfilled)
	require.NoError(t, err)
	assert.Equal(t, model.RequirementFulfilled, closed.Status)
	assert.Equal(t, model.RequirementFulfilled, reqStore.rows[r.ID.String()].Status)
}
