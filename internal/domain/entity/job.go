package entity

import "time"

const (
	JobStatusPending   = "pending"
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// The entity of a download job. A job records one requested source URL;
// processing beyond the pending state happens in a separate worker.
type Job struct {
	Id        string `json:"id"`
	UserId    string `json:"user_id,omitempty"`
	VideoURL  string `json:"video_url"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

func NewJob(id, userId, videoURL string) *Job {
	return &Job{
		Id:        id,
		UserId:    userId,
		VideoURL:  videoURL,
		Status:    JobStatusPending,
		CreatedAt: time.Now().Unix(),
	}
}

// Mark the processing status to the job.
func (j *Job) SetStatus(status string) {
	j.Status = status
}
