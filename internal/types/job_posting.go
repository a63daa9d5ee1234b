package types

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DefaultCompanyName is shown on a job card when the posting's company cannot be resolved.
const DefaultCompanyName = "Unknown Company"

// JobPosting is the read-only view of a job used for match scoring and job cards.
type JobPosting struct {
	ID                    uuid.UUID       `json:"id"`
	CompanyID             *uuid.UUID      `json:"company_id,omitempty"`
	CompanyName           string          `json:"company_name"`
	JobTitle              string          `json:"job_title"`
	JobDescription        string          `json:"job_description,omitempty"`
	Responsibilities      StringList      `json:"responsibilities"`
	RequiredSkills        StringList      `json:"required_skills"`
	ExperienceLevel       ExperienceLevel `json:"experience_level" validate:"oneof=Entry Junior Mid Senior Lead"`
	Location              string          `json:"location,omitempty"`
	WorkMode              WorkMode        `json:"work_mode,omitempty" validate:"omitempty,oneof=Remote Onsite Hybrid"`
	SalaryRange           string          `json:"salary_range,omitempty"`
	LastDateToApply       *time.Time      `json:"last_date_to_apply,omitempty"`
	AcceptingApplications bool            `json:"accepting_applications"`
}

// SalaryRange is an inclusive compensation interval.
type SalaryRange struct {
	Min float64
	Max float64
}

// Contains reports whether amount lies within [Min, Max].
func (r SalaryRange) Contains(amount float64) bool {
	return amount >= r.Min && amount <= r.Max
}

// Validate validates the JobPosting using the validator.
func (j *JobPosting) Validate() error {
	validate := validator.New()
	if err := validate.Struct(j); err != nil {
		return fromValidationError(err)
	}
	return nil
}

// Salary parses SalaryRange formatted as "<min>-<max>".
// ok is false for a missing or malformed range.
func (j *JobPosting) Salary() (SalaryRange, bool) {
	return ParseSalaryRange(j.SalaryRange)
}

// ParseSalaryRange parses "<min>-<max>" into an inclusive range.
func ParseSalaryRange(s string) (SalaryRange, bool) {
	lo, hi, found := strings.Cut(s, "-")
	if !found {
		return SalaryRange{}, false
	}
	minAmount, ok := ParseAmount(lo)
	if !ok {
		return SalaryRange{}, false
	}
	maxAmount, ok := ParseAmount(hi)
	if !ok {
		return SalaryRange{}, false
	}
	return SalaryRange{Min: minAmount, Max: maxAmount}, true
}

// ParseJobPosting decodes a job document and coerces every field to its typed form.
// Only a document that is not a JSON object is rejected.
func ParseJobPosting(raw []byte) (*JobPosting, error) {
	doc, err := decodeDocument(raw, "job")
	if err != nil {
		return nil, err
	}

	job := &JobPosting{
		CompanyName:           doc.str("companyName"),
		JobTitle:              doc.str("jobTitle"),
		JobDescription:        doc.str("jobDescription"),
		Responsibilities:      doc.list("responsibilities"),
		RequiredSkills:        doc.list("requiredSkills"),
		ExperienceLevel:       ParseExperienceLevel(doc.str("experienceLevel")),
		Location:              doc.str("location"),
		WorkMode:              ParseWorkMode(doc.str("workMode")),
		SalaryRange:           doc.str("salaryRange"),
		LastDateToApply:       coerceTime(doc["lastDateToApply"]),
		AcceptingApplications: coerceBool(doc["acceptingApplications"], true),
	}
	for _, key := range []string{"id", "_id"} {
		if id, err := uuid.Parse(doc.str(key)); err == nil {
			job.ID = id
			break
		}
	}
	if id, err := uuid.Parse(doc.str("companyId")); err == nil {
		job.CompanyID = &id
	}
	if job.CompanyName == "" {
		job.CompanyName = DefaultCompanyName
	}

	if err := job.Validate(); err != nil {
		return nil, err
	}
	return job, nil
}
