// internal/service/filter.go
package service

import (
	"iter"

	"github.com/unclebandit/contentcal-backend/internal/model"
)

// Filter narrows a campaign list. Every set field must match (logical AND);
// a nil field imposes no constraint.
type Filter struct {
	Status   *model.Status   `json:"status,omitempty"`
	Platform *model.Platform `json:"platform,omitempty"`
	Assignee *string         `json:"assignee,omitempty"`
}

// ClearFilters returns the empty filter, which matches everything.
func ClearFilters() Filter {
	return Filter{}
}

func (f Filter) Matches(c *model.Campaign) bool {
	if f.Status != nil && c.Status != *f.Status {
		return false
	}
	if f.Platform != nil && c.Platform != *f.Platform {
		return false
	}
	if f.Assignee != nil && !c.HasAssignee(*f.Assignee) {
		return false
	}
	return true
}

// ApplyFilters collects the matching campaigns into a fresh list, preserving
// the order of the input sequence.
func ApplyFilters(campaigns iter.Seq[*model.Campaign], f Filter) []*model.Campaign {
	matched := []*model.Campaign{}
	for c := range campaigns {
		if f.Matches(c) {
			matched = append(matched, c)
		}
	}
	return matched
}
