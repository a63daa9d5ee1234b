// Package types provides type definitions for structured data used throughout the devmatch system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// WorkMode is the working arrangement a developer prefers or a job offers.
// The zero value means the field was absent or unrecognized.
type WorkMode string

// WorkMode constants
const (
	WorkModeUnset  WorkMode = ""
	WorkModeRemote WorkMode = "Remote"
	WorkModeOnsite WorkMode = "Onsite"
	WorkModeHybrid WorkMode = "Hybrid"
)

// ParseWorkMode maps a free-form value onto a known WorkMode (case-insensitive).
// Unknown values map to WorkModeUnset.
func ParseWorkMode(s string) WorkMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "remote":
		return WorkModeRemote
	case "onsite", "on-site":
		return WorkModeOnsite
	case "hybrid":
		return WorkModeHybrid
	default:
		return WorkModeUnset
	}
}

// IsSet reports whether the work mode carries a value.
func (m WorkMode) IsSet() bool {
	return m != WorkModeUnset
}

// ExperienceLevel is the seniority a job posting asks for.
type ExperienceLevel string

// ExperienceLevel constants
const (
	ExperienceEntry  ExperienceLevel = "Entry"
	ExperienceJunior ExperienceLevel = "Junior"
	ExperienceMid    ExperienceLevel = "Mid"
	ExperienceSenior ExperienceLevel = "Senior"
	ExperienceLead   ExperienceLevel = "Lead"
)

// ParseExperienceLevel maps a free-form value onto a known level (case-insensitive).
// Absent or unrecognized values default to ExperienceEntry.
func ParseExperienceLevel(s string) ExperienceLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "junior":
		return ExperienceJunior
	case "mid":
		return ExperienceMid
	case "senior":
		return ExperienceSenior
	case "lead":
		return ExperienceLead
	default:
		return ExperienceEntry
	}
}

// ExperienceBand is a half-open range of years [Min, Max) tied to a level.
// Max is nil for the open-ended top band.
type ExperienceBand struct {
	Min int
	Max *int
}

func bandUpTo(min, max int) ExperienceBand {
	return ExperienceBand{Min: min, Max: &max}
}

var experienceBands = map[ExperienceLevel]ExperienceBand{
	ExperienceEntry:  bandUpTo(0, 1),
	ExperienceJunior: bandUpTo(1, 3),
	ExperienceMid:    bandUpTo(3, 5),
	ExperienceSenior: bandUpTo(5, 8),
	ExperienceLead:   {Min: 8},
}

// Band returns the years-of-experience band for the level.
// Unknown levels fall back to the Entry band.
func (l ExperienceLevel) Band() ExperienceBand {
	if band, ok := experienceBands[l]; ok {
		return band
	}
	return experienceBands[ExperienceEntry]
}
