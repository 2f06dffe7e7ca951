// internal/model/status.go
package model

// Status is a campaign's stage in the production workflow.
type Status string

const (
	StatusIdea          Status = "idea"
	StatusDrafting      Status = "drafting"
	StatusEditing       Status = "editing"
	StatusNeedsApproval Status = "needs-approval"
	StatusApproved      Status = "approved"
	StatusScheduled     Status = "scheduled"
	StatusPosted        Status = "posted"
	StatusDelayed       Status = "delayed"
	StatusCancelled     Status = "cancelled"
)

// AllStatuses lists every workflow status in typical progression order,
// exception states last.
func AllStatuses() []Status {
	return []Status{
		StatusIdea,
		StatusDrafting,
		StatusEditing,
		StatusNeedsApproval,
		StatusApproved,
		StatusScheduled,
		StatusPosted,
		StatusDelayed,
		StatusCancelled,
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusIdea, StatusDrafting, StatusEditing, StatusNeedsApproval,
		StatusApproved, StatusScheduled, StatusPosted, StatusDelayed, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status has no outgoing transitions.
// A posted or cancelled campaign never changes status again.
func (s Status) Terminal() bool {
	return s == StatusPosted || s == StatusCancelled
}
