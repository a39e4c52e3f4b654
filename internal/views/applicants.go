package views

import (
	"fmt"
	"math"
	"time"

	"jobportal_front/internal/models"
	"jobportal_front/internal/store"
)

type ApplicantRow struct {
	ApplicationID string                     `json:"applicationId"`
	JobID         string                     `json:"jobId"`
	JobTitle      string                     `json:"jobTitle"`
	Name          string                     `json:"name"`
	Email         string                     `json:"email,omitempty"`
	Status        models.ApplicationStatus   `json:"status"`
	StatusLabel   string                     `json:"statusLabel"`
	MatchedScore  string                     `json:"matchedScore"`
	InterviewDate *time.Time                 `json:"interviewDate,omitempty"`
	AppliedAt     time.Time                  `json:"appliedAt"`
	Actions       []models.ApplicationAction `json:"actions"`
}

type ApplicantsTable struct {
	Header string                   `json:"header"`
	Filter models.ApplicationStatus `json:"filter,omitempty"`
	Status store.RequestStatus      `json:"status"`
	Error  string                   `json:"error,omitempty"`
	Rows   []ApplicantRow           `json:"rows"`
	Page   int                      `json:"page"`
	Pages  int                      `json:"pages"`
}

var allActions = []models.ApplicationAction{
	models.ActionShortlist,
	models.ActionScheduleInterview,
	models.ActionAccept,
	models.ActionReject,
}

// BuildApplicantsTable собирает таблицу дашборда компании. filter сужает
// уже загруженный список; пустой список дает "Showing 0 People" и ноль строк.
func BuildApplicantsTable(slice store.ApplicantsSlice, filter models.ApplicationStatus, page, pageSize int) ApplicantsTable {
	apps := make([]models.JobApplication, 0, len(slice.Applications))
	for _, a := range slice.Applications {
		if filter != "" && a.Status != filter {
			continue
		}
		apps = append(apps, a)
	}

	p := Paginate(apps, page, pageSize)
	rows := make([]ApplicantRow, 0, len(p.Items))
	for _, a := range p.Items {
		rows = append(rows, applicantRow(a))
	}

	return ApplicantsTable{
		Header: fmt.Sprintf("Showing %d People", len(apps)),
		Filter: filter,
		Status: slice.Status,
		Error:  slice.Error,
		Rows:   rows,
		Page:   p.Page,
		Pages:  p.TotalPages,
	}
}

func applicantRow(a models.JobApplication) ApplicantRow {
	row := ApplicantRow{
		ApplicationID: a.ID,
		JobID:         a.TargetJobID(),
		Status:        a.Status,
		StatusLabel:   a.Status.Label(),
		MatchedScore:  FormatScore(a.MatchedScore),
		InterviewDate: a.InterviewDate,
		AppliedAt:     a.CreatedAt,
		Actions:       []models.ApplicationAction{},
	}
	if a.Job != nil {
		row.JobTitle = a.Job.Title
	}
	if a.JobSeeker != nil {
		row.Name = a.JobSeeker.FullName()
		row.Email = a.JobSeeker.Email
	}
	for _, action := range allActions {
		if a.Status.Allows(action) {
			row.Actions = append(row.Actions, action)
		}
	}
	return row
}

// FormatScore: 87.456 -> "87%"; значение вне 0..100 прижимается к границе, NaN считается нулем
func FormatScore(score float64) string {
	if math.IsNaN(score) {
		score = 0
	}
	score = max(0, min(100, score))
	return fmt.Sprintf("%.0f%%", score)
}
