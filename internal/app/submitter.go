package app

import (
	"fmt"
	"log"

	"github.com/baropoint/tubegate/internal/domain/entity"
	"github.com/baropoint/tubegate/internal/domain/repository"
	"github.com/google/uuid"
)

// jobSubmitter fans a list of source URLs out into individually created
// download jobs. A failing insert is logged and skipped; it never aborts
// the remaining URLs.
type jobSubmitter struct {
	jobs repository.JobRepository
}

type submissionResult struct {
	TotalRequested int
	JobIds         []string
	Message        string
}

func (s *jobSubmitter) submit(urls []string, userId string) (*submissionResult, error) {
	if len(urls) == 0 {
		return nil, errValidation("at least one URL must be required")
	}
	jobIds := make([]string, 0, len(urls))
	for _, u := range urls {
		job := entity.NewJob(uuid.New().String(), userId, u)
		if err := s.jobs.Save(job); err != nil {
			log.Printf("failed to create download job for %s: %v", u, err)
			continue
		}
		jobIds = append(jobIds, job.Id)
	}
	return &submissionResult{
		TotalRequested: len(urls),
		JobIds:         jobIds,
		Message:        fmt.Sprintf("created %d of %d download jobs", len(jobIds), len(urls)),
	}, nil
}
