// internal/seed/seed.go
package seed

import (
	"time"

	"github.com/unclebandit/contentcal-backend/internal/model"
)

// Static sample data standing in for a persistence layer. The ids are fixed
// so the seeder and tests can reference them.

func Members() []*model.TeamMember {
	return []*model.TeamMember{
		{ID: "m-amara", Name: "Amara Okafor", Role: model.RoleEditor},
		{ID: "m-brian", Name: "Brian Kiptoo", Role: model.RoleCopywriter},
		{ID: "m-cindy", Name: "Cindy Wanjiru", Role: model.RoleSocialLead},
		{ID: "m-david", Name: "David Mwangi", Role: model.RoleManager},
		{ID: "m-esther", Name: "Esther Njeri", Role: model.RoleDesigner},
	}
}

func Campaigns() []*model.Campaign {
	created := time.Date(2025, time.August, 18, 9, 0, 0, 0, time.UTC)
	return []*model.Campaign{
		{
			ID: "c-001", Name: "September Newsletter", ScheduledDay: 2,
			Platform: model.PlatformEmail, ContentType: model.ContentCopyOnly,
			Status: model.StatusScheduled, Priority: model.PriorityHigh,
			Assignees: []string{"m-brian", "m-amara"}, CreatedAt: created,
		},
		{
			ID: "c-002", Name: "Product Teaser Reel", ScheduledDay: 4,
			Platform: model.PlatformInstagram, ContentType: model.ContentReelShort,
			Status: model.StatusEditing, Priority: model.PriorityHigh,
			Assignees: []string{"m-esther", "m-amara"}, CreatedAt: created,
		},
		{
			ID: "c-003", Name: "Customer Story Carousel", ScheduledDay: 8,
			Platform: model.PlatformLinkedIn, ContentType: model.ContentCarousel,
			Status: model.StatusNeedsApproval, Priority: model.PriorityMedium,
			Assignees: []string{"m-brian"}, CreatedAt: created,
		},
		{
			ID: "c-004", Name: "Behind the Scenes Story", ScheduledDay: 8,
			Platform: model.PlatformInstagram, ContentType: model.ContentStory,
			Status: model.StatusDrafting, Priority: model.PriorityLow,
			Assignees: []string{"m-cindy"}, CreatedAt: created,
		},
		{
			ID: "c-005", Name: "Feature Launch Video", ScheduledDay: 12,
			Platform: model.PlatformWebsite, ContentType: model.ContentVideo,
			Status: model.StatusApproved, Priority: model.PriorityHigh,
			Assignees: []string{"m-esther", "m-cindy", "m-amara"}, CreatedAt: created,
		},
		{
			ID: "c-006", Name: "Trend Duet", ScheduledDay: 15,
			Platform: model.PlatformTikTok, ContentType: model.ContentReelShort,
			Status: model.StatusIdea, Priority: model.PriorityMedium,
			Assignees: []string{"m-cindy"}, CreatedAt: created,
		},
		{
			ID: "c-007", Name: "Community Poll", ScheduledDay: 18,
			Platform: model.PlatformFacebook, ContentType: model.ContentStillGraphic,
			Status: model.StatusDrafting, Priority: model.PriorityLow,
			Assignees: []string{"m-brian", "m-cindy"}, CreatedAt: created,
		},
		{
			ID: "c-008", Name: "August Recap", ScheduledDay: 1,
			Platform: model.PlatformMulti, ContentType: model.ContentStillGraphic,
			Status: model.StatusPosted, Priority: model.PriorityMedium,
			Assignees: []string{"m-amara"}, CreatedAt: created,
		},
		{
			ID: "c-009", Name: "Abandoned Promo", ScheduledDay: 22,
			Platform: model.PlatformEmail, ContentType: model.ContentCopyOnly,
			Status: model.StatusCancelled, Priority: model.PriorityLow,
			Assignees: []string{"m-brian"}, CreatedAt: created,
		},
		{
			ID: "c-010", Name: "Quarter Close Webinar Promo", ScheduledDay: 26,
			Platform: model.PlatformLinkedIn, ContentType: model.ContentStillGraphic,
			Status: model.StatusDelayed, Priority: model.PriorityHigh,
			Assignees: []string{"m-david", "m-esther"}, CreatedAt: created,
		},
	}
}

func Tasks() []*model.Task {
	due := time.Date(2025, time.September, 1, 17, 0, 0, 0, time.UTC)
	return []*model.Task{
		{
			ID: "t-001", Title: "Draft newsletter copy", CampaignID: "c-001",
			DueDate: due, Role: model.RoleCopywriter, Status: model.TaskCompleted,
			Priority: model.PriorityHigh, AssigneeID: "m-brian",
		},
		{
			ID: "t-002", Title: "Edit teaser reel cut", CampaignID: "c-002",
			DueDate: due.AddDate(0, 0, 1), Role: model.RoleEditor, Status: model.TaskInProgress,
			Priority: model.PriorityHigh, AssigneeID: "m-amara",
		},
		{
			ID: "t-003", Title: "Carousel layout review", CampaignID: "c-003",
			DueDate: due.AddDate(0, 0, 4), Role: model.RoleDesigner, Status: model.TaskNeedsReview,
			Priority: model.PriorityMedium, AssigneeID: "m-esther",
		},
		{
			ID: "t-004", Title: "Script the launch video", CampaignID: "c-005",
			DueDate: due.AddDate(0, 0, 7), Role: model.RoleCopywriter, Status: model.TaskToDo,
			Priority: model.PriorityHigh,
		},
		{
			ID: "t-005", Title: "Collect duet references", CampaignID: "c-006",
			DueDate: due.AddDate(0, 0, 10), Role: model.RoleSocialLead, Status: model.TaskToDo,
			Priority: model.PriorityLow,
		},
	}
}
