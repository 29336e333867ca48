package models

import (
	"time"
)

// Job types form a closed set. Anything else is rejected at creation time.
const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
)

// ValidJobType reports whether t is one of the accepted job types.
func ValidJobType(t string) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

type Job struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"not null" json:"title"`
	Company     string `gorm:"not null" json:"company"`
	Type        string `gorm:"not null" json:"type"`
	Location    string `gorm:"not null" json:"location"`
	Salary      string `json:"salary,omitempty"`
	Description string `gorm:"type:text;not null" json:"description"`

	// Requirements is stored as a JSON column so we don't need a join table
	// for a plain list of strings.
	Requirements []string `gorm:"serializer:json" json:"requirements"`

	// ContactEmail receives application notifications.
	ContactEmail string `gorm:"not null" json:"contactEmail"`

	PostedAt time.Time `json:"postedAt"`

	// PostedBy is the opaque requester id from the identity provider.
	// Empty means the job was posted anonymously. Never changes once set.
	PostedBy string `gorm:"index" json:"postedBy,omitempty"`
}
