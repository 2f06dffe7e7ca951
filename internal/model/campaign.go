// internal/model/campaign.go
package model

import "time"

// Platform is the publishing channel a campaign targets.
type Platform string

const (
	PlatformEmail     Platform = "email"
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformTikTok    Platform = "tiktok"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformWebsite   Platform = "website"
	PlatformMulti     Platform = "multi-platform"
)

func (p Platform) Valid() bool {
	switch p {
	case PlatformEmail, PlatformInstagram, PlatformFacebook, PlatformTikTok,
		PlatformLinkedIn, PlatformWebsite, PlatformMulti:
		return true
	}
	return false
}

// ContentType is the format of the deliverable.
type ContentType string

const (
	ContentStillGraphic ContentType = "still-graphic"
	ContentVideo        ContentType = "video"
	ContentCarousel     ContentType = "carousel"
	ContentReelShort    ContentType = "reel-short"
	ContentStory        ContentType = "story"
	ContentCopyOnly     ContentType = "copy-only"
)

func (c ContentType) Valid() bool {
	switch c {
	case ContentStillGraphic, ContentVideo, ContentCarousel, ContentReelShort,
		ContentStory, ContentCopyOnly:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

type Campaign struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	ScheduledDay int         `json:"scheduled_day"`
	Platform     Platform    `json:"platform"`
	ContentType  ContentType `json:"content_type"`
	Status       Status      `json:"status"`
	Assignees    []string    `json:"assignees"`
	Priority     Priority    `json:"priority"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    *time.Time  `json:"updated_at,omitempty"`
}

// HasAssignee reports whether the member appears in the campaign's assignee set.
func (c *Campaign) HasAssignee(memberID string) bool {
	for _, id := range c.Assignees {
		if id == memberID {
			return true
		}
	}
	return false
}
