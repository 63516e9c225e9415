// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// RawDocument is the plain-text rendering of a resume handed over by the
// external text-extraction collaborator. It is immutable input to the core.
type RawDocument struct {
	SourceID string `json:"source_id"`
	Text     string `json:"text"`
}

// Contacts holds the contact hints pulled from the document head.
// Empty fields mean "unknown", not "none".
type Contacts struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// Experience is a single employment entry. Start and End are normalized
// date strings: "YYYY", "YYYY-MM", the sentinel "present", or "" (unknown).
type Experience struct {
	Employer string   `json:"employer"`
	Title    string   `json:"title"`
	Start    string   `json:"start"`
	End      string   `json:"end"`
	Bullets  []string `json:"bullets"`
}

// Education is a single education entry with the same date conventions as Experience.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Start       string `json:"start"`
	End         string `json:"end"`
}

// CandidateRecord is the structured output of the extraction pipeline.
// Field names and nesting are stable across releases; downstream report
// and filter consumers key off them directly.
type CandidateRecord struct {
	SourceID   string       `json:"source_id,omitempty"`
	Name       string       `json:"name"`
	Contacts   Contacts     `json:"contacts"`
	Industry   string       `json:"industry,omitempty"`
	Education  []Education  `json:"education"`
	Experience []Experience `json:"experience"`

	// Skills holds canonical names, case-insensitively unique, in first-seen
	// order across section text then whole-document mining.
	Skills []string `json:"skills"`

	// Companion-extractor fields, merged last-writer-wins. Zero values mean
	// the extractor found nothing, not that the candidate has none.
	LastJobTitle    string  `json:"last_job_title,omitempty"`
	ExperienceYears float64 `json:"experience_years,omitempty" validate:"gte=0"`
	ExpectedSalary  string  `json:"expected_salary,omitempty"`
	Availability    string  `json:"availability,omitempty"`

	// Notes carries diagnostic strings about degraded extraction, never errors.
	Notes []string `json:"notes,omitempty"`
}

// CandidateExtras is the companion record produced by the field extractor.
// Nil/empty fields are "unknown" and never overwrite a value on merge.
type CandidateExtras struct {
	Name            string   `json:"name,omitempty"`
	LastJobTitle    string   `json:"last_job_title,omitempty"`
	ExperienceYears *float64 `json:"experience_years,omitempty"`
	ExpectedSalary  string   `json:"expected_salary,omitempty"`
	Availability    string   `json:"availability,omitempty"`
	Location        string   `json:"location,omitempty"`
}

// Merge applies extras onto the record, last-writer-wins per field.
// Empty extras fields leave the record untouched.
func (c *CandidateRecord) Merge(extras *CandidateExtras) {
	if extras == nil {
		return
	}
	if extras.Name != "" {
		c.Name = extras.Name
	}
	if extras.LastJobTitle != "" {
		c.LastJobTitle = extras.LastJobTitle
	}
	if extras.ExperienceYears != nil {
		c.ExperienceYears = *extras.ExperienceYears
	}
	if extras.ExpectedSalary != "" {
		c.ExpectedSalary = extras.ExpectedSalary
	}
	if extras.Availability != "" {
		c.Availability = extras.Availability
	}
	if extras.Location != "" {
		c.Contacts.Location = extras.Location
	}
}

// Validate validates the CandidateRecord using the validator.
func (c *CandidateRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}
