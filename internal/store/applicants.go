package store

import (
	"slices"

	"jobportal_front/internal/models"
)

// ApplicantsSlice - отклики на вакансии компании. Filter - статус, с которым
// список был загружен; пустой фильтр означает все статусы.
type ApplicantsSlice struct {
	Request
	Applications []models.JobApplication  `json:"applications"`
	Filter       models.ApplicationStatus `json:"filter,omitempty"`
}

func (s *ApplicantsSlice) Set(filter models.ApplicationStatus, apps []models.JobApplication) {
	s.Filter = filter
	s.Applications = slices.Clone(apps)
}

func (s ApplicantsSlice) Find(applicationID string) (models.JobApplication, bool) {
	i := slices.IndexFunc(s.Applications, func(a models.JobApplication) bool { return a.ID == applicationID })
	if i < 0 {
		return models.JobApplication{}, false
	}
	return s.Applications[i], true
}
