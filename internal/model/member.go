// internal/model/member.go
package model

type Role string

const (
	RoleEditor     Role = "editor"
	RoleCopywriter Role = "copywriter"
	RoleSocialLead Role = "social-lead"
	RoleManager    Role = "manager"
	RoleDesigner   Role = "designer"
)

type TeamMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Workload is the derived low/medium/high classification of a member's
// open-campaign count.
type Workload string

const (
	WorkloadLow    Workload = "low"
	WorkloadMedium Workload = "medium"
	WorkloadHigh   Workload = "high"
)

// MemberOverview is a TeamMember enriched with fields derived from the
// campaign store.
type MemberOverview struct {
	TeamMember
	Workload       Workload `json:"workload"`
	ActiveProjects int      `json:"active_projects"`
}
