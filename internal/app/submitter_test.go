package app

import (
	"net/http"
	"testing"

	"github.com/baropoint/tubegate/internal/domain/entity"
)

func TestSubmit(t *testing.T) {
	urls := []string{
		"https://youtu.be/aaa",
		"https://youtu.be/bbb",
		"https://youtu.be/ccc",
	}
	jobs := &mockJobRepository{failOn: 2}
	s := &jobSubmitter{jobs}

	result, err := s.submit(urls, "user-001")
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}
	if result.TotalRequested != 3 {
		t.Errorf("TotalRequested = %d, want 3", result.TotalRequested)
	}
	// The 2nd insert fails; items 1 and 3 still go through.
	if len(result.JobIds) != 2 {
		t.Fatalf("len(JobIds) = %d, want 2", len(result.JobIds))
	}
	if len(jobs.saved) != 2 {
		t.Fatalf("len(saved) = %d, want 2", len(jobs.saved))
	}
	if jobs.saved[0].VideoURL != urls[0] || jobs.saved[1].VideoURL != urls[2] {
		t.Errorf("saved URLs = %q, %q", jobs.saved[0].VideoURL, jobs.saved[1].VideoURL)
	}
	for i, job := range jobs.saved {
		if job.Status != entity.JobStatusPending {
			t.Errorf("saved[%d].Status = %q, want pending", i, job.Status)
		}
		if job.Id != result.JobIds[i] {
			t.Errorf("saved[%d].Id = %q, want %q", i, job.Id, result.JobIds[i])
		}
		if job.UserId != "user-001" {
			t.Errorf("saved[%d].UserId = %q", i, job.UserId)
		}
	}
	if result.Message != "created 2 of 3 download jobs" {
		t.Errorf("message = %q", result.Message)
	}
}

func TestSubmitEmpty(t *testing.T) {
	s := &jobSubmitter{&mockJobRepository{}}
	_, err := s.submit(nil, "")
	if errCode(t, err) != http.StatusBadRequest {
		t.Errorf("empty URL list must produce a validation error, got %v", err)
	}
}

func TestSubmitAllFailing(t *testing.T) {
	jobs := &mockJobRepository{failOn: 1}
	s := &jobSubmitter{jobs}
	result, err := s.submit([]string{"https://youtu.be/aaa"}, "")
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}
	if result.JobIds == nil || len(result.JobIds) != 0 {
		t.Errorf("JobIds = %#v, want empty non-nil slice", result.JobIds)
	}
	if result.TotalRequested != 1 {
		t.Errorf("TotalRequested = %d, want 1", result.TotalRequested)
	}
}
