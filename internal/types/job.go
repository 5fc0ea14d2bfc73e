// Package types provides type definitions for structured data used throughout the smart-match system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Job represents a job posting record supplied by the record source.
type Job struct {
	ID              string   `json:"id" validate:"required"`
	Title           string   `json:"title"`
	RequiredSkills  []string `json:"required_skills"`
	PreferredSkills []string `json:"preferred_skills,omitempty"`
	MinExperience   float64  `json:"min_experience" validate:"gte=0"`
	// MaxExperience defaults to MinExperience+10 when unset.
	MaxExperience  *float64 `json:"max_experience,omitempty"`
	Location       string   `json:"location,omitempty"`
	IsRemote       bool     `json:"is_remote"`
	SalaryRangeMin *float64 `json:"salary_range_min,omitempty"`
	SalaryRangeMax *float64 `json:"salary_range_max,omitempty"`
	// Department is descriptive only and plays no part in scoring.
	Department string `json:"department,omitempty"`
}

// EffectiveMaxExperience returns the upper bound of the job's experience band,
// defaulting to MinExperience+10 when MaxExperience is unset.
func (j *Job) EffectiveMaxExperience() float64 {
	if j.MaxExperience != nil {
		return *j.MaxExperience
	}
	return j.MinExperience + 10
}
