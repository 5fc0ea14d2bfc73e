// Package types provides type definitions for structured data used throughout the smart-match system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// WorkType represents a candidate's preferred work arrangement.
type WorkType string

// Known work type values. An empty WorkType means no stated preference.
const (
	WorkTypeRemote WorkType = "remote"
	WorkTypeHybrid WorkType = "hybrid"
	WorkTypeOnsite WorkType = "onsite"
)

// Candidate represents a candidate record supplied by the record source.
// Optional numeric fields are pointers so that absence is distinguishable
// from zero; optional strings use the empty string for absence.
type Candidate struct {
	ID                string   `json:"id" validate:"required"`
	Skills            []string `json:"skills"`
	YearsOfExperience float64  `json:"years_of_experience" validate:"gte=0"`
	Location          string   `json:"location,omitempty"`
	CurrentRole       string   `json:"current_role,omitempty"`
	Certifications    []string `json:"certifications,omitempty"`
	SalaryExpectation *float64 `json:"salary_expectation,omitempty"`
	PreferredWorkType WorkType `json:"preferred_work_type,omitempty" validate:"omitempty,oneof=remote hybrid onsite"`
}
