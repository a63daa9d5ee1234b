package ingestion

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/devmatch/internal/schemas"
	"github.com/jonathan/devmatch/internal/types"
	schemafiles "github.com/jonathan/devmatch/schemas"
)

// LoadValidated loads path and validates it against the named embedded schema.
func LoadValidated(path, schemaName string) (*Document, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	if err := schemas.ValidateDocument(schemaName, doc.JSON); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// LoadProfile loads a developer profile document.
func LoadProfile(path string) (*types.DeveloperProfile, *Document, error) {
	doc, err := LoadValidated(path, schemafiles.DeveloperProfile)
	if err != nil {
		return nil, nil, err
	}
	profile, err := types.ParseDeveloperProfile(doc.JSON)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return profile, doc, nil
}

// LoadJob loads a single job posting document.
func LoadJob(path string) (*types.JobPosting, *Document, error) {
	doc, err := LoadValidated(path, schemafiles.JobPosting)
	if err != nil {
		return nil, nil, err
	}
	job, err := parseJob(doc.JSON)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return job, doc, nil
}

// LoadJobs loads a list of job postings. The raw JSON of each entry is returned
// alongside the parsed jobs, in file order.
func LoadJobs(path string) ([]types.JobPosting, []json.RawMessage, error) {
	doc, err := LoadValidated(path, schemafiles.JobList)
	if err != nil {
		return nil, nil, err
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(doc.JSON, &raws); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	jobs := make([]types.JobPosting, 0, len(raws))
	for i, raw := range raws {
		job, err := parseJob(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: job %d: %w", path, i, err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, raws, nil
}

func parseJob(raw []byte) (*types.JobPosting, error) {
	job, err := types.ParseJobPosting(raw)
	if err != nil {
		return nil, err
	}
	job.JobDescription = CleanText(job.JobDescription)
	return job, nil
}
