package repository

import "github.com/baropoint/tubegate/internal/domain/entity"

type JobRepository interface {
	// Get the download job by the job ID.
	GetById(id string) (*entity.Job, error)
	// Save an entity to the persistence.
	Save(job *entity.Job) error
}
