package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"jobportal_front/internal/models"
	"jobportal_front/internal/session"
	"jobportal_front/pkg/apperrors"
)

type applicationsEnvelope struct {
	Applications []models.JobApplication `json:"applications"`
}

type offersEnvelope struct {
	Offers []models.JobOffer `json:"offers"`
}


// Apply - POST /job-applications/job-seeker/apply
func (c *Client) Apply(ctx context.Context, creds session.Credentials, jobID, jobSeekerID string) (models.JobApplication, error) {
	out := envelope[models.JobApplication]("application")
	body := models.ApplyRequest{JobID: jobID, JobSeekerID: jobSeekerID}
	err := c.send(ctx, creds, "application", http.MethodPost, "/job-applications/job-seeker/apply", body, &out)
	return out.Value, err
}

// SeekerApplications - GET /job-applications/job-seeker/all-applications/:jobSeekerId
func (c *Client) SeekerApplications(ctx context.Context, creds session.Credentials, jobSeekerID string) ([]models.JobApplication, error) {
	var out applicationsEnvelope
	err := c.get(ctx, creds, "application", "/job-applications/job-seeker/all-applications/"+escape(jobSeekerID), nil, &out)
	return out.Applications, err
}

// WithdrawApplication - DELETE /job-applications/job-seeker/:applicationId
func (c *Client) WithdrawApplication(ctx context.Context, creds session.Credentials, applicationID string) error {
	return c.send(ctx, creds, "application", http.MethodDelete, "/job-applications/job-seeker/"+escape(applicationID), nil, nil)
}

// CompanyApplications - GET /job-applications/company/all-applications/:companyId?status=
func (c *Client) CompanyApplications(ctx context.Context, creds session.Credentials, companyID string, status models.ApplicationStatus) ([]models.JobApplication, error) {
	var q url.Values
	if status != "" {
		q = url.Values{"status": []string{string(status)}}
	}
	var out applicationsEnvelope
	err := c.get(ctx, creds, "application", "/job-applications/company/all-applications/"+escape(companyID), q, &out)
	return out.Applications, err
}

var transitionPaths = map[models.ApplicationAction]string{
	models.ActionShortlist:         "/job-applications/company/shortlist-application/",
	models.ActionScheduleInterview: "/job-applications/company/schedule-interview/",
	models.ActionAccept:            "/job-applications/company/accept-application/",
	models.ActionReject:            "/job-applications/company/reject-application/",
}

type transitionBody struct {
	CompanyID     string     `json:"companyId"`
	InterviewDate *time.Time `json:"interviewDate,omitempty"`
}

// TransitionApplication - PATCH на один из эндпоинтов смены статуса отклика
func (c *Client) TransitionApplication(ctx context.Context, creds session.Credentials, action models.ApplicationAction, applicationID string, interviewDate *time.Time) error {
	path, ok := transitionPaths[action]
	if !ok {
		return apperrors.ErrInvalidOperation("application", "Unknown application action "+string(action))
	}
	body := transitionBody{CompanyID: creds.UserID, InterviewDate: interviewDate}
	return c.send(ctx, creds, "application", http.MethodPatch, path+escape(applicationID), body, nil)
}

// Offers - GET /job-offers/:jobSeekerId
func (c *Client) Offers(ctx context.Context, creds session.Credentials, jobSeekerID string) ([]models.JobOffer, error) {
	var out offersEnvelope
	err := c.get(ctx, creds, "offer", "/job-offers/"+escape(jobSeekerID), nil, &out)
	return out.Offers, err
}

// RespondToOffer - PATCH /job-offers/:offerId
func (c *Client) RespondToOffer(ctx context.Context, creds session.Credentials, offerID string, decision models.OfferDecision) (models.JobOffer, error) {
	out := envelope[models.JobOffer]("offer")
	body := map[string]string{"decision": string(decision)}
	err := c.send(ctx, creds, "offer", http.MethodPatch, "/job-offers/"+escape(offerID), body, &out)
	return out.Value, err
}
