// Command seed fills the data file with fabricated postings for local
// development.
package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/bxcodec/faker/v3"
	"github.com/pterm/pterm"
	"github.com/ruhan312/bangalore-connect/internal/db"
	"github.com/ruhan312/bangalore-connect/pkg/utils"
)

var salaries = []string{"25000", "40000", "60000", "85000", "120000", "Not disclosed"}

func main() {
	count := flag.Int("count", 20, "number of sample jobs to generate")
	file := flag.String("file", "data/jobs.json", "path to the jobs data file")
	flag.Parse()

	store := db.NewFileStore(*file)
	if err := store.Load(); err != nil {
		pterm.Fatal.Printfln("cannot load the job store: %v", err)
	}

	roles := append(utils.GenerateDeveloperRoles(), utils.GenerateEngineerRoles()...)

	tableData := pterm.TableData{{"Role", "Company", "Type", "Location"}}

	for i := 0; i < *count; i++ {
		job := sampleJob(roles, i)
		if err := store.Append(job); err != nil {
			pterm.Fatal.Printfln("cannot save job: %v", err)
		}
		tableData = append(tableData, []string{job.Role, job.Company, job.Type, job.Location})
	}

	_ = pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
	pterm.Success.Printfln("seeded %d jobs into %s", *count, *file)
}

func sampleJob(roles []string, n int) db.Job {
	jobType := "IT"
	role := utils.RandomElement(roles)
	if n%4 == 3 {
		jobType = "Non-IT"
		role = utils.RandomElement(utils.NonITRoles)
	}

	job := db.NewJob(db.CreateJobParams{
		Role:        role,
		Company:     fmt.Sprintf("%s Technologies", strings.Title(faker.Word())),
		Salary:      utils.RandomElement(salaries),
		Type:        jobType,
		Experience:  utils.RandomElement(db.ExperienceLevels),
		Location:    utils.RandomElement(db.Locations),
		Description: faker.Paragraph(),
		ApplyLink:   faker.URL(),
		Featured:    n%5 == 0,
	})

	// spread creation instants over the past days so ids stay unique and
	// the listing order is meaningful
	posted := time.Now().AddDate(0, 0, -n)
	job.ID = posted.UnixMilli()
	job.Timestamp = posted.UnixMilli()
	job.PostedDate = posted.Format("2 Jan 2006")

	return job
}
