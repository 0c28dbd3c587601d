package models

import "time"

// Competency is a skill users can be tagged with. Referenced from
// User.CompetencyIDs; deleting a competency does not cascade.
type Competency struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string    `gorm:"index;not null" json:"name"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
