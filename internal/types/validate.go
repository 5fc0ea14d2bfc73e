package types

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// InvalidRecordError indicates a candidate or job record failed boundary
// validation. The scoring engine itself never validates; callers that want
// strict inputs check records at the boundary and surface this error kind.
type InvalidRecordError struct {
	Record string // "candidate" or "job"
	ID     string
	Cause  error
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid %s record %q: %v", e.Record, e.ID, e.Cause)
}

func (e *InvalidRecordError) Unwrap() error {
	return e.Cause
}

// Validate validates the Candidate using the validator plus finiteness checks.
func (c *Candidate) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return &InvalidRecordError{Record: "candidate", ID: c.ID, Cause: err}
	}
	if !isFinite(c.YearsOfExperience) {
		return &InvalidRecordError{Record: "candidate", ID: c.ID, Cause: fmt.Errorf("years_of_experience is not finite")}
	}
	if c.SalaryExpectation != nil && (!isFinite(*c.SalaryExpectation) || *c.SalaryExpectation < 0) {
		return &InvalidRecordError{Record: "candidate", ID: c.ID, Cause: fmt.Errorf("salary_expectation must be finite and non-negative")}
	}
	return nil
}

// Validate validates the Job using the validator plus finiteness checks.
func (j *Job) Validate() error {
	validate := validator.New()
	if err := validate.Struct(j); err != nil {
		return &InvalidRecordError{Record: "job", ID: j.ID, Cause: err}
	}
	if !isFinite(j.MinExperience) {
		return &InvalidRecordError{Record: "job", ID: j.ID, Cause: fmt.Errorf("min_experience is not finite")}
	}
	if j.MaxExperience != nil && (!isFinite(*j.MaxExperience) || *j.MaxExperience < j.MinExperience) {
		return &InvalidRecordError{Record: "job", ID: j.ID, Cause: fmt.Errorf("max_experience must be finite and not below min_experience")}
	}
	for name, v := range map[string]*float64{"salary_range_min": j.SalaryRangeMin, "salary_range_max": j.SalaryRangeMax} {
		if v != nil && (!isFinite(*v) || *v < 0) {
			return &InvalidRecordError{Record: "job", ID: j.ID, Cause: fmt.Errorf("%s must be finite and non-negative", name)}
		}
	}
	if j.SalaryRangeMin != nil && j.SalaryRangeMax != nil && *j.SalaryRangeMax < *j.SalaryRangeMin {
		return &InvalidRecordError{Record: "job", ID: j.ID, Cause: fmt.Errorf("salary_range_max must not be below salary_range_min")}
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
