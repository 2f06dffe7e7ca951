// internal/errors/errors.go
package appErrors

import "fmt"

// ErrCampaignNotFound is a sentinel error
type ErrCampaignNotFound struct {
	CampaignID string
}

func (e *ErrCampaignNotFound) Error() string {
	return fmt.Sprintf("campaign with ID %s not found", e.CampaignID)
}

// Helper constructor
func NewCampaignNotFound(id string) error {
	return &ErrCampaignNotFound{CampaignID: id}
}

// ErrTaskNotFound is returned when a task id is absent from the store.
type ErrTaskNotFound struct {
	TaskID string
}

func (e *ErrTaskNotFound) Error() string {
	return fmt.Sprintf("task with ID %s not found", e.TaskID)
}

func NewTaskNotFound(id string) error {
	return &ErrTaskNotFound{TaskID: id}
}

// ErrMemberNotFound is returned when a team member id is absent.
type ErrMemberNotFound struct {
	MemberID string
}

func (e *ErrMemberNotFound) Error() string {
	return fmt.Sprintf("team member with ID %s not found", e.MemberID)
}

func NewMemberNotFound(id string) error {
	return &ErrMemberNotFound{MemberID: id}
}

// ErrDuplicateID is returned on an id collision during add.
type ErrDuplicateID struct {
	ID string
}

func (e *ErrDuplicateID) Error() string {
	return fmt.Sprintf("campaign with ID %s already exists", e.ID)
}

func NewDuplicateID(id string) error {
	return &ErrDuplicateID{ID: id}
}

// ErrInvalidDay is returned when a scheduled day falls outside 1..31.
type ErrInvalidDay struct {
	Day int
}

func (e *ErrInvalidDay) Error() string {
	return fmt.Sprintf("scheduled day %d is outside the valid 1-31 range", e.Day)
}

func NewInvalidDay(day int) error {
	return &ErrInvalidDay{Day: day}
}

// ErrInvalidTransition is returned when a campaign in a terminal workflow
// status is asked to move again.
type ErrInvalidTransition struct {
	From string
	To   string
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("cannot transition campaign from terminal status %s to %s", e.From, e.To)
}

func NewInvalidTransition(from, to string) error {
	return &ErrInvalidTransition{From: from, To: to}
}
