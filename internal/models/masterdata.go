package models

import "time"

// Master data: the shared reference collections (ProjectTag, TaskType,
// Priority, Status) editable only by admins.

// ProjectTag labels projects.
type ProjectTag struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string    `gorm:"index;not null" json:"name"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// TaskType classifies tasks.
type TaskType struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string    `gorm:"index;not null" json:"name"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Priority orders tasks by urgency; a lower Order is more urgent.
// Order uniqueness is not enforced.
type Priority struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Order     int       `gorm:"column:sort_order;index" json:"order"`
	CreatedAt time.Time `json:"createdAt"`
}

// Status is a task workflow state. IsFinal marks terminal states such
// as Done or Cancelled.
type Status struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Order     int       `gorm:"column:sort_order;index" json:"order"`
	IsFinal   bool      `json:"isFinal,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
