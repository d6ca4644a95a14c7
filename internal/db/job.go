package db

import (
	"strings"
	"time"
)

// ExperienceLevels is the fixed, ordered set of experience brackets
// a posting can ask for.
var ExperienceLevels = []string{
	"Fresher",
	"0-1 years",
	"1-2 years",
	"2-4 years",
	"4-6 years",
	"6-8 years",
	"8-10 years",
	"10+ years",
}

// Locations is the fixed set of cities postings can be filed under.
var Locations = []string{
	"Bangalore",
	"Hyderabad",
	"Chennai",
	"Pune",
	"Mumbai",
	"Delhi",
	"Gurgaon",
	"Noida",
}

// Job is a single posting. The JSON tags match the on-disk data file,
// so existing files keep loading across versions.
type Job struct {
	ID          int64  `json:"id"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Salary      string `json:"salary"`
	Type        string `json:"type"`
	Experience  string `json:"experience"`
	Location    string `json:"location"`
	Description string `json:"description"`
	ApplyLink   string `json:"applyLink"`
	Featured    bool   `json:"featured"`
	PostedDate  string `json:"postedDate"`
	Timestamp   int64  `json:"timestamp"`
}

// CreateJobParams holds the raw form values for a new posting.
type CreateJobParams struct {
	Role        string
	Company     string
	Salary      string
	Type        string
	Experience  string
	Location    string
	Description string
	ApplyLink   string
	Featured    bool
}

// NewJob builds a posting from raw form values. ID and Timestamp are the
// creation instant in milliseconds and never change afterwards; blank
// optional fields get the portal's usual defaults.
func NewJob(arg CreateJobParams) Job {
	now := time.Now()

	return Job{
		ID:          now.UnixMilli(),
		Role:        strings.TrimSpace(arg.Role),
		Company:     strings.TrimSpace(arg.Company),
		Salary:      defaultIfBlank(arg.Salary, "Not disclosed"),
		Type:        defaultIfBlank(arg.Type, "IT"),
		Experience:  defaultIfBlank(arg.Experience, "Fresher"),
		Location:    defaultIfBlank(arg.Location, "Bangalore"),
		Description: NormalizeDescription(arg.Description),
		ApplyLink:   defaultIfBlank(strings.TrimSpace(arg.ApplyLink), "#"),
		Featured:    arg.Featured,
		PostedDate:  now.Format("2 Jan 2006"),
		Timestamp:   now.UnixMilli(),
	}
}

// PostedAt returns the creation instant of the posting.
func (j Job) PostedAt() time.Time {
	return time.UnixMilli(j.Timestamp)
}

// NormalizeDescription collapses CRLF/CR line endings to LF and trims
// the surrounding whitespace.
func NormalizeDescription(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.TrimSpace(s)
}

func defaultIfBlank(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
