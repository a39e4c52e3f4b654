package services

import (
	"context"

	"jobportal_front/internal/forms"
	"jobportal_front/internal/models"
	"jobportal_front/internal/session"
	"jobportal_front/internal/store"
	"jobportal_front/internal/validator"
)

type JobService struct {
	base
	validator *validator.Validator
}

// ============================================
// ЧТЕНИЕ
// ============================================

// FetchJobs заменяет список вакансий страницей page (с 1)
func (s *JobService) FetchJobs(ctx context.Context, sess *session.Session, page int) (models.JobPage, error) {
	if page < 1 {
		page = 1
	}
	return thunk[models.JobPage]{
		slice:  store.SliceJobs,
		action: "jobs/fetchJobs",
		auth:   sess.RequireToken,
		call: func(ctx context.Context, creds session.Credentials) (models.JobPage, error) {
			return s.api.ListJobs(ctx, creds, page)
		},
		fulfilled: func(st *store.State, p models.JobPage) {
			st.Jobs.SetPage(page, p)
		},
	}.run(ctx, s.storeOf(sess))
}

func (s *JobService) FetchJobByID(ctx context.Context, sess *session.Session, id string) (models.Job, error) {
	return thunk[models.Job]{
		slice:  store.SliceJobs,
		action: "jobs/fetchJobById",
		auth:   sess.RequireToken,
		call: func(ctx context.Context, creds session.Credentials) (models.Job, error) {
			return s.api.GetJob(ctx, creds, id)
		},
		fulfilled: func(st *store.State, job models.Job) {
			st.Jobs.SetCurrent(job)
		},
	}.run(ctx, s.storeOf(sess))
}

func (s *JobService) FetchSimilarJobs(ctx context.Context, sess *session.Session, id string) ([]models.Job, error) {
	return thunk[[]models.Job]{
		slice:  store.SliceJobs,
		action: "jobs/fetchSimilarJobs",
		auth:   sess.RequireToken,
		call: func(ctx context.Context, creds session.Credentials) ([]models.Job, error) {
			return s.api.SimilarJobs(ctx, creds, id)
		},
		fulfilled: func(st *store.State, jobs []models.Job) {
			st.Jobs.SetSimilar(jobs)
		},
	}.run(ctx, s.storeOf(sess))
}

// FetchBestMatchedJobs - рейтинг считает бэкенд, порядок ответа сохраняется
func (s *JobService) FetchBestMatchedJobs(ctx context.Context, sess *session.Session) ([]models.Job, error) {
	return thunk[[]models.Job]{
		slice:  store.SliceJobs,
		action: "jobs/fetchBestMatchedJobs",
		auth:   sess.RequireIdentity,
		call: func(ctx context.Context, creds session.Credentials) ([]models.Job, error) {
			return s.api.BestMatchedJobs(ctx, creds, creds.UserID)
		},
		fulfilled: func(st *store.State, jobs []models.Job) {
			st.Jobs.SetBestMatched(jobs)
		},
	}.run(ctx, s.storeOf(sess))
}

func (s *JobService) FetchCompanyJobs(ctx context.Context, sess *session.Session, page int) (models.JobPage, error) {
	if page < 1 {
		page = 1
	}
	return thunk[models.JobPage]{
		slice:  store.SliceJobs,
		action: "jobs/fetchCompanyJobs",
		auth:   sess.RequireIdentity,
		call: func(ctx context.Context, creds session.Credentials) (models.JobPage, error) {
			return s.api.ListCompanyJobs(ctx, creds, creds.UserID, page)
		},
		fulfilled: func(st *store.State, p models.JobPage) {
			st.Jobs.SetCompanyJobs(p)
		},
	}.run(ctx, s.storeOf(sess))
}

// ============================================
// ИЗМЕНЕНИЯ (компания)
// ============================================

func (s *JobService) PostJob(ctx context.Context, sess *session.Session, form forms.JobForm) (models.Job, error) {
	return thunk[models.Job]{
		slice:  store.SliceJobs,
		action: "jobs/postJob",
		auth:   sess.RequireIdentity,
		call: func(ctx context.Context, creds session.Credentials) (models.Job, error) {
			if err := s.validate(form); err != nil {
				return models.Job{}, err
			}
			return s.api.CreateJob(ctx, creds, form.Payload(creds.UserID))
		},
		fulfilled: func(st *store.State, job models.Job) {
			st.Jobs.AddCompanyJob(job)
		},
	}.run(ctx, s.storeOf(sess))
}

func (s *JobService) UpdateJob(ctx context.Context, sess *session.Session, id string, form forms.JobForm) (models.Job, error) {
	return thunk[models.Job]{
		slice:  store.SliceJobs,
		action: "jobs/updateJob",
		auth:   sess.RequireIdentity,
		call: func(ctx context.Context, creds session.Credentials) (models.Job, error) {
			if err := s.validate(form); err != nil {
				return models.Job{}, err
			}
			return s.api.UpdateJob(ctx, creds, id, form.Payload(creds.UserID))
		},
		fulfilled: func(st *store.State, job models.Job) {
			if job.ID == "" {
				job.ID = id
			}
			st.Jobs.Upsert(job)
		},
	}.run(ctx, s.storeOf(sess))
}

func (s *JobService) DeleteJob(ctx context.Context, sess *session.Session, id string) error {
	_, err := thunk[none]{
		slice:  store.SliceJobs,
		action: "jobs/deleteJob",
		auth:   sess.RequireToken,
		call: func(ctx context.Context, creds session.Credentials) (none, error) {
			return none{}, s.api.DeleteJob(ctx, creds, id)
		},
		fulfilled: func(st *store.State, _ none) {
			st.Jobs.Remove(id)
		},
	}.run(ctx, s.storeOf(sess))
	return err
}

// ToggleJobActive замораживает или активирует вакансию
func (s *JobService) ToggleJobActive(ctx context.Context, sess *session.Session, id string) (models.Job, error) {
	return thunk[models.Job]{
		slice:  store.SliceJobs,
		action: "jobs/toggleJobActive",
		auth:   sess.RequireToken,
		call: func(ctx context.Context, creds session.Credentials) (models.Job, error) {
			return s.api.ToggleJobActive(ctx, creds, id)
		},
		fulfilled: func(st *store.State, job models.Job) {
			if job.ID == "" {
				// пустой ответ: переключаем флаг в кеше сами
				cached, ok := st.Jobs.Find(id)
				if !ok {
					return
				}
				cached.IsActive = !cached.IsActive
				job = cached
			}
			st.Jobs.Upsert(job)
		},
	}.run(ctx, s.storeOf(sess))
}

func (s *JobService) validate(form forms.JobForm) error {
	return asAppError(form.Validate(s.validator))
}
