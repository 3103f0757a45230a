package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type InterviewStatus string

const (
	InterviewScheduled  InterviewStatus = "Scheduled"
	InterviewInProgress InterviewStatus = "In Progress"
	InterviewCompleted  InterviewStatus = "Completed"
	InterviewCanceled   InterviewStatus = "Canceled"
)

// interviewTransitions is the full lifecycle. Completed is reachable only
// through feedback submission; see CanTransition.
var interviewTransitions = map[InterviewStatus][]InterviewStatus{
	InterviewScheduled:  {InterviewInProgress, InterviewCompleted, InterviewCanceled},
	InterviewInProgress: {InterviewCompleted, InterviewCanceled},
	InterviewCompleted:  {},
	InterviewCanceled:   {},
}

// CanTransition reports whether from -> to is a legal lifecycle move. A
// same-status transition is legal and treated as an idempotent no-op by the
// caller.
func CanTransition(from, to InterviewStatus) bool {
	if from == to {
		return true
	}
	for _, next := range interviewTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition leaves the status.
func (s InterviewStatus) IsTerminal() bool {
	return len(interviewTransitions[s]) == 0
}

func ValidInterviewStatus(s InterviewStatus) bool {
	_, ok := interviewTransitions[s]
	return ok
}

// InterviewFeedback is the structured evaluation attached when an interview
// completes. Validated at the write boundary; rows never hold a malformed
// blob.
type InterviewFeedback struct {
	Rating         int        `json:"rating" validate:"required,min=1,max=5"`
	Comments       string     `json:"comments" validate:"required"`
	Strengths      StringList `json:"strengths,omitempty"`
	Weaknesses     StringList `json:"weaknesses,omitempty"`
	Recommendation string     `json:"recommendation,omitempty"`
}

func (f InterviewFeedback) Value() (driver.Value, error) {
	return json.Marshal(f)
}

func (f *InterviewFeedback) Scan(src any) error {
	if src == nil {
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for InterviewFeedback", src)
	}
	return json.Unmarshal(raw, f)
}

// Interview links one candidate, one interviewer and one requirement. All
// three references must resolve at creation time; there are no nullable
// foreign keys here. Feedback is non-nil if and only if status is Completed.
type Interview struct {
	ID            uuid.UUID          `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CandidateID   uuid.UUID          `gorm:"type:uuid" json:"candidate_id"`
	InterviewerID uuid.UUID          `gorm:"type:uuid" json:"interviewer_id"`
	RequirementID uuid.UUID          `gorm:"type:uuid" json:"requirement_id"`
	ScheduledAt   time.Time          `json:"scheduled_at"`
	Status        InterviewStatus    `gorm:"type:varchar(50)" json:"status"`
	Feedback      *InterviewFeedback `gorm:"type:jsonb" json:"feedback,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func (i *Interview) TableName() string {
	return "interviews_schedule"
}
