package models

import "time"

// SeekerRef - поля соискателя, которые бэкенд подставляет в отклик
type SeekerRef struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
}

func (s SeekerRef) FullName() string {
	switch {
	case s.FirstName == "":
		return s.LastName
	case s.LastName == "":
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}

type JobApplication struct {
	ID            string            `json:"_id"`
	JobID         string            `json:"jobId"`
	Job           *Job              `json:"job,omitempty"`
	JobSeekerID   string            `json:"jobSeekerId"`
	JobSeeker     *SeekerRef        `json:"jobSeeker,omitempty"`
	Status        ApplicationStatus `json:"status"`
	MatchedScore  float64           `json:"matchedScore"`
	InterviewDate *time.Time        `json:"interviewDate,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// TargetJobID - jobId либо id вложенной вакансии
func (a JobApplication) TargetJobID() string {
	if a.JobID != "" {
		return a.JobID
	}
	if a.Job != nil {
		return a.Job.ID
	}
	return ""
}

type ApplyRequest struct {
	JobID       string `json:"jobId"`
	JobSeekerID string `json:"jobSeekerId"`
}

type JobOffer struct {
	ID          string      `json:"_id"`
	JobID       string      `json:"jobId"`
	Job         *Job        `json:"job,omitempty"`
	Company     *CompanyRef `json:"company,omitempty"`
	JobSeekerID string      `json:"jobSeekerId"`
	Salary      int         `json:"salary"`
	Message     string      `json:"message,omitempty"`
	Status      OfferStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
}
