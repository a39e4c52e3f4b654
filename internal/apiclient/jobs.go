package apiclient

import (
	"context"
	"net/http"

	"jobportal_front/internal/models"
	"jobportal_front/internal/session"
)

type jobsEnvelope struct {
	Jobs []models.Job `json:"jobs"`
}

type savedJobsEnvelope struct {
	SavedJobs []models.Job `json:"savedJobs"`
}

type declinedJobsEnvelope struct {
	DeclinedJobs []models.Job `json:"declinedJobs"`
}

// ListJobs - GET /jobs?page=
func (c *Client) ListJobs(ctx context.Context, creds session.Credentials, page int) (models.JobPage, error) {
	var out models.JobPage
	err := c.get(ctx, creds, "job", "/jobs", pageQuery(page), &out)
	return out, err
}

// GetJob - GET /job/:id
func (c *Client) GetJob(ctx context.Context, creds session.Credentials, id string) (models.Job, error) {
	out := envelope[models.Job]("job")
	if err := c.get(ctx, creds, "job", "/job/"+escape(id), nil, &out); err != nil {
		return models.Job{}, err
	}
	if out.Value.ID == "" {
		return models.Job{}, missingEntity("job", "job")
	}
	return out.Value, nil
}

// CreateJob - POST /job
func (c *Client) CreateJob(ctx context.Context, creds session.Credentials, payload models.JobPayload) (models.Job, error) {
	out := envelope[models.Job]("job")
	err := c.send(ctx, creds, "job", http.MethodPost, "/job", payload, &out)
	return out.Value, err
}

// UpdateJob - PUT /job/:id
func (c *Client) UpdateJob(ctx context.Context, creds session.Credentials, id string, payload models.JobPayload) (models.Job, error) {
	out := envelope[models.Job]("job")
	err := c.send(ctx, creds, "job", http.MethodPut, "/job/"+escape(id), payload, &out)
	return out.Value, err
}

// DeleteJob - DELETE /job/:id
func (c *Client) DeleteJob(ctx context.Context, creds session.Credentials, id string) error {
	return c.send(ctx, creds, "job", http.MethodDelete, "/job/"+escape(id), nil, nil)
}

// ListCompanyJobs - GET /jobs/company/:companyId?page=
func (c *Client) ListCompanyJobs(ctx context.Context, creds session.Credentials, companyID string, page int) (models.JobPage, error) {
	var out models.JobPage
	err := c.get(ctx, creds, "job", "/jobs/company/"+escape(companyID), pageQuery(page), &out)
	return out, err
}

// ToggleJobActive - PATCH /jobs/toggle-job-active-status/:id
func (c *Client) ToggleJobActive(ctx context.Context, creds session.Credentials, id string) (models.Job, error) {
	out := envelope[models.Job]("job")
	err := c.send(ctx, creds, "job", http.MethodPatch, "/jobs/toggle-job-active-status/"+escape(id), nil, &out)
	return out.Value, err
}

// SavedJobs - GET /jobs/saved-jobs/:jobSeekerId
func (c *Client) SavedJobs(ctx context.Context, creds session.Credentials, jobSeekerID string) ([]models.Job, error) {
	var out savedJobsEnvelope
	err := c.get(ctx, creds, "saved_jobs", "/jobs/saved-jobs/"+escape(jobSeekerID), nil, &out)
	return out.SavedJobs, err
}

// ToggleJobSave - POST /jobs/toggle-job-save
func (c *Client) ToggleJobSave(ctx context.Context, creds session.Credentials, jobID, jobSeekerID string) error {
	body := models.ApplyRequest{JobID: jobID, JobSeekerID: jobSeekerID}
	return c.send(ctx, creds, "saved_jobs", http.MethodPost, "/jobs/toggle-job-save", body, nil)
}

// DeclineJob - POST /jobs/decline
func (c *Client) DeclineJob(ctx context.Context, creds session.Credentials, jobID, jobSeekerID string) error {
	body := models.ApplyRequest{JobID: jobID, JobSeekerID: jobSeekerID}
	return c.send(ctx, creds, "declined_jobs", http.MethodPost, "/jobs/decline", body, nil)
}

// DeclinedJobs - GET /jobs/declined-jobs/:jobSeekerId
func (c *Client) DeclinedJobs(ctx context.Context, creds session.Credentials, jobSeekerID string) ([]models.Job, error) {
	var out declinedJobsEnvelope
	err := c.get(ctx, creds, "declined_jobs", "/jobs/declined-jobs/"+escape(jobSeekerID), nil, &out)
	return out.DeclinedJobs, err
}

// BestMatchedJobs - GET /jobs/best-matched/:jobSeekerId. Ранжирование делает сервер.
func (c *Client) BestMatchedJobs(ctx context.Context, creds session.Credentials, jobSeekerID string) ([]models.Job, error) {
	var out jobsEnvelope
	err := c.get(ctx, creds, "job", "/jobs/best-matched/"+escape(jobSeekerID), nil, &out)
	return out.Jobs, err
}

// SimilarJobs - GET /jobs/similar-jobs/:jobId
func (c *Client) SimilarJobs(ctx context.Context, creds session.Credentials, jobID string) ([]models.Job, error) {
	var out jobsEnvelope
	err := c.get(ctx, creds, "job", "/jobs/similar-jobs/"+escape(jobID), nil, &out)
	return out.Jobs, err
}
