package models

import "time"

// Task belongs to exactly one project. ParentTaskID, when set, makes
// the task a subtask; the hierarchy is two levels deep by convention
// (a subtask never becomes a parent), guarded in the service layer,
// not by storage.
type Task struct {
	ID              string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ProjectID       string     `gorm:"index;type:varchar(36);not null" json:"projectId"`
	ParentTaskID    string     `gorm:"index;type:varchar(36)" json:"parentTaskId,omitempty"`
	TypeID          string     `gorm:"type:varchar(36)" json:"typeId"`
	Name            string     `gorm:"not null" json:"name"`
	Code            string     `gorm:"index;type:varchar(50);not null" json:"code"`
	Description     string     `json:"description,omitempty"`
	AttachmentIDs   []string   `gorm:"serializer:json" json:"attachmentIds"`
	AssigneeUserIDs []string   `gorm:"serializer:json" json:"assigneeUserIds"`
	DueDate         *time.Time `json:"dueDate,omitempty"`
	PriorityID      string     `gorm:"type:varchar(36)" json:"priorityId"`
	StatusID        string     `gorm:"type:varchar(36)" json:"statusId"`
	EstimatedHours  *float64   `json:"estimatedHours,omitempty"`
	ActualHours     *float64   `json:"actualHours,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}
