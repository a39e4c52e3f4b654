package store

import (
	"slices"
	"sort"

	"jobportal_front/internal/models"
)

type JobsSlice struct {
	Request
	Jobs       []models.Job      `json:"jobs"`
	Total      int               `json:"total"`
	Pagination models.Pagination `json:"pagination"`
	Page       int               `json:"page"`

	Current     *models.Job  `json:"current,omitempty"`
	Similar     []models.Job `json:"similar"`
	BestMatched []models.Job `json:"bestMatched"`

	CompanyJobs           []models.Job      `json:"companyJobs"`
	CompanyJobsTotal      int               `json:"companyJobsTotal"`
	CompanyJobsPagination models.Pagination `json:"companyJobsPagination"`
}

// SortByCreatedDesc - новые вакансии первыми; при равном createdAt порядок по _id,
// чтобы повторная загрузка той же страницы давала тот же порядок.
func SortByCreatedDesc(jobs []models.Job) []models.Job {
	out := slices.Clone(jobs)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// SetPage заменяет список вакансий целиком
func (s *JobsSlice) SetPage(page int, p models.JobPage) {
	s.Jobs = SortByCreatedDesc(p.Jobs)
	s.Total = p.Total
	s.Pagination = p.Pagination
	s.Page = page
}

func (s *JobsSlice) SetCurrent(job models.Job) {
	s.Current = &job
}

func (s *JobsSlice) SetSimilar(jobs []models.Job) {
	s.Similar = slices.Clone(jobs)
}

func (s *JobsSlice) SetBestMatched(jobs []models.Job) {
	s.BestMatched = slices.Clone(jobs)
}

func (s *JobsSlice) SetCompanyJobs(p models.JobPage) {
	s.CompanyJobs = SortByCreatedDesc(p.Jobs)
	s.CompanyJobsTotal = p.Total
	s.CompanyJobsPagination = p.Pagination
}

// Find ищет вакансию в любом списке среза
func (s JobsSlice) Find(id string) (models.Job, bool) {
	if s.Current != nil && s.Current.ID == id {
		return *s.Current, true
	}
	for _, list := range [][]models.Job{s.Jobs, s.Similar, s.BestMatched, s.CompanyJobs} {
		if i := indexJob(list, id); i >= 0 {
			return list[i], true
		}
	}
	return models.Job{}, false
}

// Upsert подменяет вакансию после PUT или переключения активности
func (s *JobsSlice) Upsert(job models.Job) {
	if s.Current != nil && s.Current.ID == job.ID {
		s.SetCurrent(job)
	}
	s.Jobs = replaceJob(s.Jobs, job)
	s.Similar = replaceJob(s.Similar, job)
	s.BestMatched = replaceJob(s.BestMatched, job)
	s.CompanyJobs = replaceJob(s.CompanyJobs, job)
}

// AddCompanyJob - новая вакансия компании попадает в начало списка
func (s *JobsSlice) AddCompanyJob(job models.Job) {
	s.CompanyJobs = append([]models.Job{job}, withoutJob(s.CompanyJobs, job.ID)...)
	s.CompanyJobsTotal++
}

// Remove - вакансия удалена компанией
func (s *JobsSlice) Remove(id string) {
	if s.Current != nil && s.Current.ID == id {
		s.Current = nil
	}
	before := len(s.CompanyJobs)
	s.CompanyJobs = withoutJob(s.CompanyJobs, id)
	if len(s.CompanyJobs) < before && s.CompanyJobsTotal > 0 {
		s.CompanyJobsTotal--
	}
	s.RemoveAvailable(id)
}

// RemoveAvailable убирает вакансию из списков, которые видит соискатель
func (s *JobsSlice) RemoveAvailable(id string) {
	before := len(s.Jobs)
	s.Jobs = withoutJob(s.Jobs, id)
	if len(s.Jobs) < before && s.Total > 0 {
		s.Total--
	}
	s.Similar = withoutJob(s.Similar, id)
	s.BestMatched = withoutJob(s.BestMatched, id)
}

func (s JobsSlice) clone() JobsSlice {
	out := s
	out.Jobs = slices.Clone(s.Jobs)
	out.Current = clonePtr(s.Current)
	out.Similar = slices.Clone(s.Similar)
	out.BestMatched = slices.Clone(s.BestMatched)
	out.CompanyJobs = slices.Clone(s.CompanyJobs)
	return out
}

func replaceJob(jobs []models.Job, job models.Job) []models.Job {
	i := indexJob(jobs, job.ID)
	if i < 0 {
		return jobs
	}
	out := slices.Clone(jobs)
	out[i] = job
	return out
}

func withoutJob(jobs []models.Job, id string) []models.Job {
	i := indexJob(jobs, id)
	if i < 0 {
		return jobs
	}
	return slices.Delete(slices.Clone(jobs), i, i+1)
}
