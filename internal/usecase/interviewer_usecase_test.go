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

type fakeInterviewerStore struct {
	rows map[string]*model.Interviewer
}

func newFakeInterviewerStore() *fakeInterviewerStore {
	return &fakeInterviewerStore{rows: map[string]*model.Interviewer{}}
}

func (s *fakeInterviewerStore) Create(_ context.Context, iv *model.Interviewer) error {
	cp := *iv
	s.rows[iv.ID.String()] = &cp
	return nil
}

func (s *fakeInterviewerStore) Update(_ context.Context, iv *model.Interviewer) error {
	cp := *iv
	s.rows[iv.ID.String()] = &cp
	return nil
}

func (s *fakeInterviewerStore) Delete(_ context.Context, id string) error {
	delete(s.rows, id)
	return nil
}

func (s *fakeInterviewerStore) FindByID(_ context.Context, id string) (*model.Interviewer, error) {
	iv, ok := s.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *iv
	return &cp, nil
}

func (s *fakeInterviewerStore) List(_ context.Context, orgID string) ([]model.Interviewer, error) {
	var out []model.Interviewer
	for _, iv := range s.rows {
		if orgID != "" && (iv.OrganizationID == nil || iv.OrganizationID.String() != orgID) {
			continue
		}
		out = append(out, *iv)
	}
	return out, nil
}

func (s *fakeInterviewerStore) CountAll(_ context.Context) (int64, error) {
	return int64(len(s.rows)), nil
}

func (s *fakeInterviewerStore) CountByStatus(_ context.Context, status model.InterviewerStatus) (int64, error) {
	var n int64
	for _, iv := range s.rows {
		if iv.Status == status {
			n++
		}
	}
	return n, nil
}

func (s *fakeInterviewerStore) CountCreatedSince(_ context.Context, since time.Time) (int64, error) {
	var n int64
	for _, iv := range s.rows {
		if !iv.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

type fakeBusyCounter struct {
	busy map[string]int64
}

func (f *fakeBusyCounter) CountBusy(_ context.Context, interviewerID string, _, _ time.Time) (int64, error) {
	return f.busy[interviewerID], nil
}

func newInterviewerFixture(t *testing.T) (*InterviewerUsecase, *fakeInterviewerStore, *fakeBusyCounter, time.Time) {
	t.Helper()
	store := newFakeInterviewerStore()
	busy := &fakeBusyCounter{busy: map[string]int64{}}
	uc := NewInterviewerUsecase(store, busy, &fakeOrgFinder{orgs: map[string]*model.Organization{}}, service.NopNotifier{}, logger.NewTest(t))
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }
	return uc, store, busy, now
}

func TestInterviewerCreateStartsActive(t *testing.T) {
	uc, store, _, _ := newInterviewerFixture(t)

	iv, err := uc.Create(context.Background(), dto.CreateInterviewerRequest{
		Name:   "Priya Nair",
		Email:  "priya@example.com",
		Skills: []string{"go", "kubernetes"},
	})
	require.NoError(t, err)
	assert.Equal(t, model.InterviewerActive, iv.Status)
	assert.Contains(t, store.rows, iv.ID.String())
}

func TestInterviewerCreateUnknownOrganization(t *testing.T) {
	uc, store, _, _ := newInterviewerFixture(t)

	_, err := uc.Create(context.Background(), dto.CreateInterviewerRequest{
		Name:           "Priya Nair",
		Email:          "priya@example.com",
		OrganizationID: uuid.NewString(),
	})
	assert.True(t, apperror.IsCode(err, apperror.CodeNotFound), "got %v", err)
	assert.Empty(t, store.rows)
}

// Availability is derived from the interview table, not the status column.
func TestInterviewerAvailability(t *testing.T) {
	uc, store, busy, _ := newInterviewerFixture(t)
	id := uuid.New()
	store.rows[id.String()] = &model.Interviewer{ID: id, Status: model.InterviewerActive}

	avail, err := uc.Availability(context.Background(), id.String(), 0)
	require.NoError(t, err)
	assert.True(t, avail.Available)

	busy.busy[id.String()] = 2
	avail, err = uc.Availability(context.Background(), id.String(), time.Hour)
	require.NoError(t, err)
	assert.False(t, avail.Available)
	assert.Equal(t, int64(2), avail.BusyCount)
}

func TestInterviewerAvailabilityUnknownID(t *testing.T) {
	uc, _, _, _ := newInterviewerFixture(t)
	_, err := uc.Availability(context.Background(), uuid.NewString(), time.Hour)
	assert.True(t, apperror.IsCode(err, apperror.CodeNotFound), "got %v", err)
}

func TestInterviewerStats(t *testing.T) {
	uc, store, _, now := newInterviewerFixture(t)
	seed := []struct {
		status  model.InterviewerStatus
		created time.Time
	}{
		{model.InterviewerActive, now.AddDate(0, 0, -5)},
		{model.InterviewerActive, now.AddDate(0, 0, -60)},
		{model.InterviewerOnLeave, now.AddDate(0, 0, -10)},
		{model.InterviewerInactive, now.AddDate(0, -6, 0)},
	}
	for _, s := range seed {
		id := uuid.New()
		store.rows[id.String()] = &model.Interviewer{ID: id, Status: s.status, CreatedAt: s.created}
	}

	stats, err := uc.Stats(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalInterviewers)
	assert.Equal(t, int64(2), stats.AvailableInterviewers)
	assert.Equal(t, int64(2), stats.NewInterviewers)
}
