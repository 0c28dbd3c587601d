package models

import "time"

// ProjectType classifies a project.
type ProjectType string

const (
	ProjectTypeDevelopment       ProjectType = "DEVELOPMENT"
	ProjectTypeCustomer          ProjectType = "CUSTOMER"
	ProjectTypeProductionSupport ProjectType = "PRODUCTION_SUPPORT"
)

// ProjectRole is a user's role inside one project team.
type ProjectRole string

const (
	ProjectRoleLead   ProjectRole = "LEAD"
	ProjectRoleMember ProjectRole = "MEMBER"
	ProjectRoleViewer ProjectRole = "VIEWER"
)

// TeamMember ties a user to a project with a project-scoped role. The
// user ID is not foreign-key enforced; a deleted user may linger here.
type TeamMember struct {
	UserID        string      `json:"userId"`
	RoleInProject ProjectRole `json:"roleInProject"`
}

// Project is a unit of work grouping tasks. Code is globally unique;
// callers upper-case it before save and the unique index is the second
// line of defense behind the advisory FindByCode check.
type Project struct {
	ID                  string       `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Type                ProjectType  `gorm:"index;type:varchar(30);not null" json:"type"`
	Name                string       `gorm:"not null" json:"name"`
	Code                string       `gorm:"uniqueIndex;type:varchar(50);not null" json:"code"`
	Description         string       `json:"description,omitempty"`
	Goals               string       `json:"goals,omitempty"`
	KPI                 string       `json:"kpi,omitempty"`
	GoalsAttachmentIDs  []string     `gorm:"serializer:json" json:"goalsAttachmentIds"`
	KPIAttachmentIDs    []string     `gorm:"serializer:json" json:"kpiAttachmentIds"`
	TagIDs              []string     `gorm:"serializer:json" json:"tagIds"`
	Team                []TeamMember `gorm:"serializer:json" json:"team"`
	CreatedAt           time.Time    `json:"createdAt"`
	UpdatedAt           time.Time    `json:"updatedAt"`
}
