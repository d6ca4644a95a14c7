// Package seo produces the page metadata, structured data and crawler
// files the portal serves alongside its pages.
package seo

import (
	"fmt"

	"github.com/ruhan312/bangalore-connect/internal/db"
)

// Meta is the per-page head metadata handed to the templates.
type Meta struct {
	Title       string
	Description string
	Keywords    string
	Image       string
}

// Page binds a URL path to its metadata; used for the static resource pages.
type Page struct {
	Path string
	Meta Meta
}

var (
	Home = Meta{
		Title:       "IT & Non-IT Jobs in Bangalore | Software Developer Jobs - Bangalore Connect",
		Description: "Find latest IT jobs, Software Engineer positions, Non-IT careers in Bangalore. 1000+ job listings with salary details. Direct apply to companies.",
		Keywords:    "Bangalore jobs, IT jobs Bangalore, software developer jobs, fresher jobs Bangalore, experienced jobs, tech careers, job portal Bangalore",
		Image:       "/og-image.jpg",
	}

	Dashboard = Meta{
		Title:       "Admin Dashboard - Bangalore Connect",
		Description: "Manage job listings and monitor portal activity",
		Keywords:    "admin, dashboard, job management",
	}

	PostJob = Meta{
		Title:       "Post New Job - Bangalore Connect",
		Description: "Post a new job listing on Bangalore Connect portal",
		Keywords:    "post job, hire, recruitment",
	}

	AdminLogin = Meta{
		Title:       "Admin Login - Bangalore Connect",
		Description: "Admin login for Bangalore Connect job portal",
		Keywords:    "admin login, portal login",
	}

	NotFound = Meta{
		Title:       "Page Not Found - Bangalore Connect",
		Description: "The page you are looking for does not exist. Find job opportunities in Bangalore on our homepage.",
	}

	JobNotFound = Meta{
		Title:       "Job Not Found - Bangalore Connect",
		Description: "This job posting is no longer available on Bangalore Connect.",
	}

	ServerError = Meta{
		Title: "Server Error - Bangalore Connect",
	}
)

// ResourcePages are the static content pages, in sitemap order.
var ResourcePages = []Page{
	{
		Path: "resume-builder",
		Meta: Meta{
			Title:       "Free Resume Builder | Create Professional Resume - Bangalore Connect",
			Description: "Create professional resumes for IT and Non-IT jobs in Bangalore. Free resume templates and builder.",
			Keywords:    "resume builder, CV maker, resume template, professional resume",
		},
	},
	{
		Path: "interview-prep",
		Meta: Meta{
			Title:       "Interview Preparation Tips | Bangalore Jobs - Bangalore Connect",
			Description: "Interview preparation tips, common questions, and guidance for job interviews in Bangalore.",
			Keywords:    "interview questions, interview tips, job interview, technical interview",
		},
	},
	{
		Path: "companies",
		Meta: Meta{
			Title:       "Top Companies Hiring in Bangalore | Job Portal - Bangalore Connect",
			Description: "List of top companies hiring in Bangalore with job opportunities and career information.",
			Keywords:    "companies in Bangalore, tech companies, MNC jobs, startup jobs, hiring companies",
		},
	},
	{
		Path: "career-guide",
		Meta: Meta{
			Title:       "Career Growth Guide | Bangalore Job Market - Bangalore Connect",
			Description: "Career growth guide, salary trends, and job market insights for Bangalore professionals.",
			Keywords:    "career advice, career growth, Bangalore job market, salary guide",
		},
	},
	{
		Path: "blog",
		Meta: Meta{
			Title:       "Bangalore Job Market Blog | Career Insights - Bangalore Connect",
			Description: "Latest news, trends, and insights about Bangalore job market and career opportunities.",
			Keywords:    "Bangalore job blog, career blog, IT industry news, job trends",
		},
	},
	{
		Path: "ai-resources",
		Meta: Meta{
			Title:       "AI Career Resources | Bangalore Tech Jobs - Bangalore Connect",
			Description: "AI and Machine Learning career resources, job opportunities, and skill development for Bangalore.",
			Keywords:    "AI jobs, machine learning careers, data science jobs Bangalore, artificial intelligence",
		},
	},
	{
		Path: "multilingual",
		Meta: Meta{
			Title:       "Multilingual Job Support | Bangalore Connect",
			Description: "Job support and resources in multiple languages for diverse job seekers in Bangalore.",
			Keywords:    "multilingual jobs, English jobs, Kannada jobs, Hindi jobs Bangalore",
		},
	},
	{
		Path: "terms",
		Meta: Meta{
			Title:       "Terms & Conditions | Bangalore Connect",
			Description: "Terms and conditions for using Bangalore Connect job portal.",
			Keywords:    "terms, conditions, legal",
		},
	},
	{
		Path: "privacy",
		Meta: Meta{
			Title:       "Privacy Policy | Bangalore Connect",
			Description: "Privacy policy for Bangalore Connect job portal.",
			Keywords:    "privacy, policy, data protection",
		},
	},
}

// JobMeta builds the detail-page metadata for one posting.
func JobMeta(job db.Job) Meta {
	return Meta{
		Title: fmt.Sprintf("%s at %s in %s | Bangalore Connect", job.Role, job.Company, job.Location),
		Description: fmt.Sprintf(
			"Apply for %s position at %s in %s. %s experience required. Salary: ₹%s. %s job opportunity in Bangalore.",
			job.Role, job.Company, job.Location, job.Experience, job.Salary, job.Type,
		),
		Keywords: fmt.Sprintf(
			"%s, %s jobs, %s jobs, %s jobs Bangalore, %s jobs",
			job.Role, job.Company, job.Location, job.Type, job.Experience,
		),
		Image: "/og-job.jpg",
	}
}
