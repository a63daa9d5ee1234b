package types

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DeveloperProfile is the read-only view of a developer used for match scoring.
type DeveloperProfile struct {
	DeveloperID        uuid.UUID  `json:"developer_id"`
	Skills             StringList `json:"skills"`
	JobRolesInterested StringList `json:"job_roles_interested"`
	YearsOfExperience  int        `json:"years_of_experience" validate:"gte=0"`
	PreferredLocations StringList `json:"preferred_locations"`
	WorkMode           WorkMode   `json:"work_mode,omitempty" validate:"omitempty,oneof=Remote Onsite Hybrid"`
	ExpectedStipend    StringList `json:"expected_stipend"`
}

// Validate validates the DeveloperProfile using the validator.
func (p *DeveloperProfile) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return fromValidationError(err)
	}
	return nil
}

// Stipend returns the expected stipend parsed from the first ExpectedStipend entry.
// ok is false when the entry is missing, unparsable or zero; a zero stipend
// places no constraint on compensation.
func (p *DeveloperProfile) Stipend() (float64, bool) {
	first, ok := p.ExpectedStipend.First()
	if !ok {
		return 0, false
	}
	v, ok := ParseAmount(first)
	if !ok || v == 0 {
		return 0, false
	}
	return v, true
}

// ParseDeveloperProfile decodes a profile document and coerces every field to its typed form.
//
// Both the stored document shape (skills, yearsOfExperience and jobRolesInterested nested under
// professionalDetails) and a flat shape are accepted; nested values win when both are present.
// Only a document that is not a JSON object is rejected.
func ParseDeveloperProfile(raw []byte) (*DeveloperProfile, error) {
	doc, err := decodeDocument(raw, "profile")
	if err != nil {
		return nil, err
	}
	details := doc.sub("professionalDetails")

	profile := &DeveloperProfile{
		PreferredLocations: doc.list("preferredLocations"),
		WorkMode:           ParseWorkMode(doc.str("workMode")),
		ExpectedStipend:    doc.list("expectedStipend"),
	}
	if v, ok := lookup("skills", details, doc); ok {
		profile.Skills = coerceStringList(v)
	}
	if v, ok := lookup("jobRolesInterested", details, doc); ok {
		profile.JobRolesInterested = coerceStringList(v)
	}
	if v, ok := lookup("yearsOfExperience", details, doc); ok {
		profile.YearsOfExperience = coerceYears(v)
	}
	if id, err := uuid.Parse(doc.str("developerId")); err == nil {
		profile.DeveloperID = id
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

// ParseAmount parses a monetary amount such as "40000", " 40,000 " or "40000.50".
func ParseAmount(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
