package utils

import "fmt"

// qualifiers
var qualifiers = []string{"Junior", "Senior", "Lead"}

// languages for Developers and Engineers
var languages = []string{"Java", "Python", "JavaScript", "Go", "C#", "C++", "Ruby", "C"}

// NonITRoles are sample roles for Non-IT postings.
var NonITRoles = []string{
	"Accountant",
	"HR Executive",
	"Sales Manager",
	"Content Writer",
	"Office Administrator",
	"Customer Support Executive",
}

// GenerateDeveloperRoles combines qualifiers and languages into Developer roles
func GenerateDeveloperRoles() []string {
	var combined []string
	for _, qualifier := range qualifiers {
		for _, language := range languages {
			combined = append(combined, fmt.Sprintf("%s %s Developer", qualifier, language))
		}
	}
	return combined
}

// GenerateEngineerRoles combines qualifiers and languages into Engineer roles
func GenerateEngineerRoles() []string {
	var combined []string
	for _, qualifier := range qualifiers {
		for _, language := range languages {
			combined = append(combined, fmt.Sprintf("%s %s Engineer", qualifier, language))
		}
	}
	return combined
}
