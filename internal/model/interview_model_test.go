package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	statuses := []InterviewStatus{InterviewScheduled, InterviewInProgress, InterviewCompleted, InterviewCanceled}

	legal := map[InterviewStatus]map[InterviewStatus]bool{
		InterviewScheduled:  {InterviewInProgress: true, InterviewCompleted: true, InterviewCanceled: true},
		InterviewInProgress: {InterviewCompleted: true, InterviewCanceled: true},
		InterviewCompleted:  {},
		InterviewCanceled:   {},
	}

	for _, from := range statuses {
		for _, to := range statuses {
			want := from == to || legal[from][to]
			assert.Equal(t, want, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, InterviewScheduled.IsTerminal())
	assert.False(t, InterviewInProgress.IsTerminal())
	assert.True(t, InterviewCompleted.IsTerminal())
	assert.True(t, InterviewCanceled.IsTerminal())
}

func TestValidInterviewStatus(t *testing.T) {
	assert.True(t, ValidInterviewStatus(InterviewScheduled))
	assert.True(t, ValidInterviewStatus(InterviewInProgress))
	assert.True(t, ValidInterviewStatus(InterviewCompleted))
	assert.True(t, ValidInterviewStatus(InterviewCanceled))
	assert.False(t, ValidInterviewStatus("Done"))
	assert.False(t, ValidInterviewStatus(""))
}

func TestInterviewFeedbackScan(t *testing.T) {
	var fb InterviewFeedback
	err := fb.Scan([]byte(`{"rating":4,"comments":"solid","strengths":["go","sql"]}`))
	assert.NoError(t, err)
	assert.Equal(t, 4, fb.Rating)
	assert.Equal(t, "solid", fb.Comments)
	assert.Equal(t, StringList{"go", "sql"}, fb.Strengths)

	var empty InterviewFeedback
	assert.NoError(t, empty.Scan(nil))
	assert.Zero(t, empty.Rating)

	assert.Error(t, empty.Scan(42))
}
