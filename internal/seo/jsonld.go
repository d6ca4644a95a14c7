package seo

import (
	"encoding/json"
	"time"

	"github.com/ruhan312/bangalore-connect/internal/db"
)

// postingValidity is how long a posting stays marked valid for crawlers.
const postingValidity = 30 * 24 * time.Hour

// JobPostingLD renders the schema.org JobPosting JSON-LD for one posting.
func JobPostingLD(job db.Job, now time.Time) string {
	posting := jobPosting(job, 500)
	posting["validThrough"] = now.Add(postingValidity).UTC().Format(time.RFC3339)
	posting["directApply"] = true
	posting["hiringOrganization"].(map[string]any)["sameAs"] = job.ApplyLink

	return marshalLD(posting)
}

// ItemListLD renders the schema.org ItemList JSON-LD for one listing page.
func ItemListLD(jobs []db.Job) string {
	items := make([]any, 0, len(jobs))
	for i, job := range jobs {
		items = append(items, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"item":     jobPosting(job, 200),
		})
	}

	return marshalLD(map[string]any{
		"@context":        "https://schema.org",
		"@type":           "ItemList",
		"itemListElement": items,
	})
}

func jobPosting(job db.Job, descriptionLimit int) map[string]any {
	description := truncate(job.Description, descriptionLimit)
	if description == "" {
		description = "Job opportunity in Bangalore"
	}

	return map[string]any{
		"@context":    "https://schema.org",
		"@type":       "JobPosting",
		"title":       job.Role,
		"description": description,
		"hiringOrganization": map[string]any{
			"@type": "Organization",
			"name":  job.Company,
		},
		"jobLocation": map[string]any{
			"@type": "Place",
			"address": map[string]any{
				"@type":           "PostalAddress",
				"addressLocality": job.Location,
				"addressRegion":   "Karnataka",
				"addressCountry":  "IN",
			},
		},
		"baseSalary": map[string]any{
			"@type":    "MonetaryAmount",
			"currency": "INR",
			"value": map[string]any{
				"@type":    "QuantitativeValue",
				"minValue": job.Salary,
				"maxValue": job.Salary,
				"unitText": "MONTH",
			},
		},
		"employmentType":         "FULL_TIME",
		"experienceRequirements": job.Experience,
		"datePosted":             job.PostedAt().UTC().Format(time.RFC3339),
	}
}

func marshalLD(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		// maps of strings and numbers cannot fail to marshal
		return "{}"
	}
	return string(data)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
