package api

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ruhan312/bangalore-connect/internal/db"
	"github.com/ruhan312/bangalore-connect/internal/query"
	"github.com/ruhan312/bangalore-connect/internal/seo"
)

type listJobsRequest struct {
	Search     string `form:"search"`
	Type       string `form:"type"`
	Experience string `form:"experience"`
	Location   string `form:"location"`
}

// listJobs handles the home page: the filtered, paginated job listing.
func (server *Server) listJobs(c *gin.Context) {
	var request listJobsRequest
	if err := c.ShouldBindQuery(&request); err != nil {
		server.notFound(c)
		return
	}

	// an absent or invalid page falls back to the first one
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}

	jobs := server.store.All()

	result := query.Filter(jobs, query.Filters{
		Search:     request.Search,
		Type:       request.Type,
		Experience: request.Experience,
		Location:   request.Location,
		Page:       page,
	})

	c.HTML(http.StatusOK, "home.tmpl", gin.H{
		"meta":           seo.Home,
		"canonical":      server.baseURL() + "/",
		"image":          server.baseURL() + seo.Home.Image,
		"jobs":           result.Jobs,
		"page":           result.Page,
		"prevPage":       result.Page - 1,
		"nextPage":       result.Page + 1,
		"totalPages":     result.TotalPages,
		"totalJobs":      result.TotalJobs,
		"jobTypes":       jobTypes(jobs),
		"experiences":    db.ExperienceLevels,
		"locations":      db.Locations,
		"query":          request,
		"contactEmail":   server.config.ContactEmail,
		"structuredData": template.JS(seo.ItemListLD(result.Jobs)),
	})
}

type jobURIRequest struct {
	ID string `uri:"id" binding:"required"`
}

// getJob handles the job detail page.
func (server *Server) getJob(c *gin.Context) {
	var request jobURIRequest
	if err := c.ShouldBindUri(&request); err != nil {
		server.renderJobNotFound(c, request.ID)
		return
	}

	// ids are numeric creation timestamps; anything else cannot exist
	id, err := strconv.ParseInt(request.ID, 10, 64)
	if err != nil {
		server.renderJobNotFound(c, request.ID)
		return
	}

	job, ok := server.store.Find(id)
	if !ok {
		server.renderJobNotFound(c, request.ID)
		return
	}

	c.HTML(http.StatusOK, "job.tmpl", gin.H{
		"meta":           seo.JobMeta(job),
		"canonical":      fmt.Sprintf("%s/job/%d", server.baseURL(), job.ID),
		"image":          server.baseURL() + "/og-job.jpg",
		"job":            job,
		"contactEmail":   server.config.ContactEmail,
		"structuredData": template.JS(seo.JobPostingLD(job, time.Now())),
	})
}

func (server *Server) renderJobNotFound(c *gin.Context, id string) {
	c.HTML(http.StatusNotFound, "404.tmpl", gin.H{
		"meta":         seo.JobNotFound,
		"canonical":    server.baseURL() + "/job/" + id,
		"contactEmail": server.config.ContactEmail,
	})
}

// createJobForm handles the posting form page.
func (server *Server) createJobForm(c *gin.Context) {
	c.HTML(http.StatusOK, "post-job.tmpl", gin.H{
		"meta":         seo.PostJob,
		"canonical":    server.baseURL() + "/post-job",
		"experiences":  db.ExperienceLevels,
		"locations":    db.Locations,
		"contactEmail": server.config.ContactEmail,
	})
}

type createJobRequest struct {
	Role        string `form:"role" binding:"required"`
	Company     string `form:"company" binding:"required"`
	Salary      string `form:"salary"`
	Type        string `form:"type"`
	Experience  string `form:"experience"`
	Location    string `form:"location"`
	Description string `form:"description"`
	ApplyLink   string `form:"applyLink"`
	Featured    string `form:"featured"`
}

// createJob handles the posting form submission: it builds the record,
// prepends it to the store and reports the outcome through a one-shot
// flash parameter on the dashboard redirect.
func (server *Server) createJob(c *gin.Context) {
	var request createJobRequest
	if err := c.ShouldBind(&request); err != nil {
		redirectWithFlash(c, "error", "Role and company are required")
		return
	}

	job := db.NewJob(db.CreateJobParams{
		Role:        request.Role,
		Company:     request.Company,
		Salary:      request.Salary,
		Type:        request.Type,
		Experience:  request.Experience,
		Location:    request.Location,
		Description: request.Description,
		ApplyLink:   request.ApplyLink,
		Featured:    request.Featured == "on",
	})

	if err := server.store.Append(job); err != nil {
		redirectWithFlash(c, "error", "Failed to save job to database")
		return
	}

	redirectWithFlash(c, "success", "Job posted successfully!")
}

// deleteJob handles deleting a posting by id. Every outcome lands back on
// the dashboard; nothing here is a fatal error.
func (server *Server) deleteJob(c *gin.Context) {
	rawID := c.Param("id")

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		redirectWithFlash(c, "error", fmt.Sprintf("Job not found with ID: %s", rawID))
		return
	}

	removed, err := server.store.Remove(id)
	if errors.Is(err, db.ErrJobNotFound) {
		redirectWithFlash(c, "error", fmt.Sprintf("Job not found with ID: %s", rawID))
		return
	}
	if err != nil {
		redirectWithFlash(c, "error", "Failed to save changes to database")
		return
	}

	redirectWithFlash(c, "success", fmt.Sprintf("Job %q deleted successfully", removed.Role))
}

// redirectWithFlash sends the browser back to the dashboard with a
// one-shot status message in the query string.
func redirectWithFlash(c *gin.Context, kind, message string) {
	c.Redirect(http.StatusFound, "/dashboard?"+kind+"="+url.QueryEscape(message))
}

// jobTypes returns the distinct job types present in the collection, in
// first-seen order.
func jobTypes(jobs []db.Job) []string {
	seen := make(map[string]bool)
	var types []string
	for _, job := range jobs {
		if !seen[job.Type] {
			seen[job.Type] = true
			types = append(types, job.Type)
		}
	}
	return types
}
