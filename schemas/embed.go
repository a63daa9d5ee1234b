// Package schemas holds the JSON Schemas for the documents accepted by the CLI and the HTTP API.
package schemas

import "embed"

// Schema file names.
const (
	Common           = "common.schema.json"
	DeveloperProfile = "developer_profile.schema.json"
	JobPosting       = "job_posting.schema.json"
	JobList          = "job_list.schema.json"
	MatchRequest     = "match_request.schema.json"
)

// FS contains every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS

// All lists the schema files in dependency order.
var All = []string{Common, DeveloperProfile, JobPosting, JobList, MatchRequest}
