package seo

import (
	"fmt"
	"strings"
	"time"

	"github.com/ruhan312/bangalore-connect/internal/db"
)

// Sitemap renders sitemap.xml: the home page, every job detail page and
// the static resource pages.
func Sitemap(baseURL string, jobs []db.Job, now time.Time) string {
	var b strings.Builder

	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")

	today := now.UTC().Format("2006-01-02")
	writeURL(&b, baseURL+"/", today, "daily", "1.0")

	for _, job := range jobs {
		lastmod := job.PostedAt().UTC().Format("2006-01-02")
		writeURL(&b, fmt.Sprintf("%s/job/%d", baseURL, job.ID), lastmod, "weekly", "0.8")
	}

	for _, page := range ResourcePages {
		writeURL(&b, baseURL+"/"+page.Path, today, "monthly", "0.6")
	}

	b.WriteString("</urlset>\n")
	return b.String()
}

func writeURL(b *strings.Builder, loc, lastmod, changefreq, priority string) {
	fmt.Fprintf(b, "  <url>\n    <loc>%s</loc>\n    <lastmod>%s</lastmod>\n    <changefreq>%s</changefreq>\n    <priority>%s</priority>\n  </url>\n",
		loc, lastmod, changefreq, priority)
}

// Robots renders robots.txt: crawlers may index everything except the
// admin surface.
func Robots(baseURL, contactEmail string) string {
	return fmt.Sprintf(`User-agent: *
Allow: /
Disallow: /admin
Disallow: /dashboard
Disallow: /post-job
Disallow: /delete-job/

Sitemap: %s/sitemap.xml

# Bangalore Connect Job Portal
# Contact: %s
`, baseURL, contactEmail)
}
