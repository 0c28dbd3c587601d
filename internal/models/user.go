package models

import "time"

// Contact holds a user's contact details. Email is required, phone is
// optional.
type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// VacationType classifies a vacation record.
type VacationType string

const (
	VacationTypeVacation VacationType = "vacation"
	VacationTypeSick     VacationType = "sick"
	VacationTypeOther    VacationType = "other"
)

// Vacation is an absence range owned by a user's work schedule. From
// and To are ISO dates (no time component) with From <= To, enforced
// at the edit boundary rather than at storage.
type Vacation struct {
	ID   string       `json:"id"`
	From string       `json:"from"`
	To   string       `json:"to"`
	Type VacationType `json:"type"`
	Note string       `json:"note,omitempty"`
}

// WorkSchedule describes a user's daily working window and vacations.
type WorkSchedule struct {
	WorkdayStart string     `json:"workdayStart"`
	WorkdayEnd   string     `json:"workdayEnd"`
	Vacations    []Vacation `json:"vacations"`
}

// User is a person known to the system. CompetencyIDs reference
// Competency records without foreign-key enforcement: deleting a
// competency leaves the IDs dangling here.
type User struct {
	ID            string       `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name          string       `gorm:"index;not null" json:"name"`
	Contacts      Contact      `gorm:"serializer:json" json:"contacts"`
	JobTitle      string       `json:"jobTitle"`
	Role          Role         `gorm:"index;type:varchar(20);not null" json:"role"`
	CompetencyIDs []string     `gorm:"serializer:json" json:"competencyIds"`
	WorkSchedule  WorkSchedule `gorm:"serializer:json" json:"workSchedule"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}
