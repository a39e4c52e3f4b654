package store

import (
	"slices"

	"jobportal_front/internal/models"
)

// AppliedKind - вариант записи в appliedJobs.
// Незавершенный отклик хранится как pending, а не как урезанная вакансия.
type AppliedKind string

const (
	AppliedConfirmed AppliedKind = "applied"
	AppliedPending   AppliedKind = "pending"
	AppliedFailed    AppliedKind = "failed"
)

type AppliedEntry struct {
	JobID         string      `json:"_id"`
	Kind          AppliedKind `json:"kind"`
	ApplicationID string      `json:"applicationId,omitempty"`
	Job           *models.Job `json:"job,omitempty"`
	Error         string      `json:"error,omitempty"`
}

type JobSeekerSlice struct {
	Request
	AppliedJobs  []AppliedEntry          `json:"appliedJobs"`
	SavedJobs    []models.Job            `json:"savedJobs"`
	Applications []models.JobApplication `json:"applications"`
	ApplyError   string                  `json:"applyError,omitempty"`
}

func (s *JobSeekerSlice) entry(jobID string) *AppliedEntry {
	for i := range s.AppliedJobs {
		if s.AppliedJobs[i].JobID == jobID {
			return &s.AppliedJobs[i]
		}
	}
	return nil
}

// Entry - копия записи appliedJobs для jobID
func (s JobSeekerSlice) Entry(jobID string) (AppliedEntry, bool) {
	i := slices.IndexFunc(s.AppliedJobs, func(e AppliedEntry) bool { return e.JobID == jobID })
	if i < 0 {
		return AppliedEntry{}, false
	}
	return s.AppliedJobs[i], true
}

func (s JobSeekerSlice) HasApplied(jobID string) bool {
	e, ok := s.Entry(jobID)
	return ok && e.Kind == AppliedConfirmed
}

func (s JobSeekerSlice) IsSaved(jobID string) bool {
	return indexJob(s.SavedJobs, jobID) >= 0
}

// ApplyPending - отклик отправлен. Подтвержденная запись не понижается до pending.
func (s *JobSeekerSlice) ApplyPending(jobID string) {
	s.ApplyError = ""
	s.AppliedJobs = slices.Clone(s.AppliedJobs)
	if e := s.entry(jobID); e != nil {
		if e.Kind != AppliedConfirmed {
			e.Kind = AppliedPending
			e.Error = ""
		}
		return
	}
	s.AppliedJobs = append(s.AppliedJobs, AppliedEntry{JobID: jobID, Kind: AppliedPending})
}

// ApplyFulfilled - сервер принял отклик; запись по jobID одна
func (s *JobSeekerSlice) ApplyFulfilled(jobID string, app models.JobApplication) {
	s.ApplyError = ""
	s.AppliedJobs = slices.Clone(s.AppliedJobs)
	e := s.entry(jobID)
	if e == nil {
		s.AppliedJobs = append(s.AppliedJobs, AppliedEntry{JobID: jobID})
		e = &s.AppliedJobs[len(s.AppliedJobs)-1]
	}
	e.Kind = AppliedConfirmed
	e.Error = ""
	if app.ID != "" {
		e.ApplicationID = app.ID
	}
	if app.Job != nil {
		job := *app.Job
		e.Job = &job
	}
	if app.ID != "" {
		s.Applications = append(withoutApplication(s.Applications, app.ID), app)
	}
}

// ApplyRejected сохраняет текст ошибки. Уже подтвержденный отклик остается подтвержденным.
func (s *JobSeekerSlice) ApplyRejected(jobID, message string) {
	s.ApplyError = message
	s.AppliedJobs = slices.Clone(s.AppliedJobs)
	e := s.entry(jobID)
	if e == nil {
		s.AppliedJobs = append(s.AppliedJobs, AppliedEntry{JobID: jobID, Kind: AppliedFailed, Error: message})
		return
	}
	if e.Kind != AppliedConfirmed {
		e.Kind = AppliedFailed
		e.Error = message
	}
}

// MarkApplied - сервер ответил "уже откликались": запись подтверждается без дубликата
func (s *JobSeekerSlice) MarkApplied(jobID string) {
	s.AppliedJobs = slices.Clone(s.AppliedJobs)
	if e := s.entry(jobID); e != nil {
		e.Kind = AppliedConfirmed
		e.Error = ""
		return
	}
	s.AppliedJobs = append(s.AppliedJobs, AppliedEntry{JobID: jobID, Kind: AppliedConfirmed})
}

func (s *JobSeekerSlice) SetSaved(jobs []models.Job) {
	s.SavedJobs = slices.Clone(jobs)
}

// SetApplications заменяет историю откликов и пересобирает подтвержденные записи.
// Pending-записи, которых еще нет на сервере, сохраняются.
func (s *JobSeekerSlice) SetApplications(apps []models.JobApplication) {
	s.Applications = slices.Clone(apps)

	entries := make([]AppliedEntry, 0, len(apps)+len(s.AppliedJobs))
	seen := make(map[string]bool, len(apps))
	for _, app := range apps {
		jobID := app.TargetJobID()
		if jobID == "" || seen[jobID] {
			continue
		}
		seen[jobID] = true
		e := AppliedEntry{JobID: jobID, Kind: AppliedConfirmed, ApplicationID: app.ID}
		if app.Job != nil {
			job := *app.Job
			e.Job = &job
		}
		entries = append(entries, e)
	}
	for _, e := range s.AppliedJobs {
		if e.Kind == AppliedPending && !seen[e.JobID] {
			entries = append(entries, e)
		}
	}
	s.AppliedJobs = entries
}

// RemoveApplication - отклик отозван соискателем
func (s *JobSeekerSlice) RemoveApplication(applicationID string) {
	var jobID string
	for _, a := range s.Applications {
		if a.ID == applicationID {
			jobID = a.TargetJobID()
		}
	}
	s.Applications = withoutApplication(s.Applications, applicationID)
	s.AppliedJobs = slices.DeleteFunc(slices.Clone(s.AppliedJobs), func(e AppliedEntry) bool {
		return e.ApplicationID == applicationID || (jobID != "" && e.JobID == jobID)
	})
}

func (s JobSeekerSlice) clone() JobSeekerSlice {
	out := s
	out.AppliedJobs = slices.Clone(s.AppliedJobs)
	out.SavedJobs = slices.Clone(s.SavedJobs)
	out.Applications = slices.Clone(s.Applications)
	return out
}

func withoutApplication(apps []models.JobApplication, id string) []models.JobApplication {
	return slices.DeleteFunc(slices.Clone(apps), func(a models.JobApplication) bool { return a.ID == id })
}
