package services

import (
	"context"

	"jobportal_front/internal/models"
	"jobportal_front/internal/session"
	"jobportal_front/internal/store"
	"jobportal_front/pkg/apperrors"
)

type JobSeekerService struct {
	base
	jobs *JobService
}

// ApplyForJob отправляет отклик от имени текущего соискателя.
// Повторный отклик на ту же вакансию отклоняется с ALREADY_APPLIED,
// запись в appliedJobs при этом не дублируется.
func (s *JobSeekerService) ApplyForJob(ctx context.Context, sess *session.Session, jobID string) (models.JobApplication, error) {
	st := s.storeOf(sess)
	return thunk[models.JobApplication]{
		slice:  store.SliceJobSeeker,
		action: "jobSeeker/applyForJob",
		auth:   sess.RequireIdentity,
		pending: func(state *store.State) {
			state.JobSeeker.ApplyPending(jobID)
		},
		call: func(ctx context.Context, creds session.Credentials) (models.JobApplication, error) {
			applied := store.Select(st, func(state *store.State) bool {
				return state.JobSeeker.HasApplied(jobID)
			})
			if applied {
				return models.JobApplication{}, apperrors.ErrAlreadyApplied
			}
			return s.api.Apply(ctx, creds, jobID, creds.UserID)
		},
		fulfilled: func(state *store.State, app models.JobApplication) {
			if app.Job == nil {
				if job, ok := state.LookupJob(jobID); ok {
					app.Job = &job
				}
			}
			state.JobSeeker.ApplyFulfilled(jobID, app)
		},
		rejected: func(state *store.State, err error) {
			if apperrors.IsCode(err, apperrors.CodeAlreadyApplied) {
				state.JobSeeker.MarkApplied(jobID)
			}
			state.JobSeeker.ApplyRejected(jobID, apperrors.MessageOf(err))
		},
	}.run(ctx, st)
}

// WithdrawApplication - соискатель отзывает отклик
func (s *JobSeekerService) WithdrawApplication(ctx context.Context, sess *session.Session, applicationID string) error {
	_, err := thunk[none]{
		slice:  store.SliceJobSeeker,
		action: "jobSeeker/withdrawApplication",
		auth:   sess.RequireToken,
		call: func(ctx context.Context, creds session.Credentials) (none, error) {
			return none{}, s.api.WithdrawApplication(ctx, creds, applicationID)
		},
		fulfilled: func(state *store.State, _ none) {
			state.JobSeeker.RemoveApplication(applicationID)
		},
	}.run(ctx, s.storeOf(sess))
	return err
}

// ToggleSaveJob переключает закладку. Локальное зеркало работает только с
// вакансией из кеша, поэтому неизвестная вакансия сначала загружается.
// Возвращает итоговое состояние закладки.
func (s *JobSeekerService) ToggleSaveJob(ctx context.Context, sess *session.Session, jobID string) (bool, error) {
	st := s.storeOf(sess)

	cached := store.Select(st, func(state *store.State) bool {
		_, ok := state.LookupJob(jobID)
		return ok
	})
	if !cached && sess.Authenticated() {
		if _, err := s.jobs.FetchJobByID(ctx, sess, jobID); err != nil {
			return false, err
		}
	}

	_, err := thunk[none]{
		slice:  store.SliceJobSeeker,
		action: "jobSeeker/toggleSaveJob",
		auth:   sess.RequireIdentity,
		call: func(ctx context.Context, creds session.Credentials) (none, error) {
			return none{}, s.api.ToggleJobSave(ctx, creds, jobID, creds.UserID)
		},
		fulfilled: func(state *store.State, _ none) {
			state.ToggleSaved(jobID)
		},
	}.run(ctx, st)
	if err != nil {
		return false, err
	}

	return store.Select(st, func(state *store.State) bool {
		return state.JobSeeker.IsSaved(jobID)
	}), nil
}

// GetSavedJobs заменяет savedJobs ответом сервера целиком
func (s *JobSeekerService) GetSavedJobs(ctx context.Context, sess *session.Session) ([]models.Job, error) {
	return thunk[[]models.Job]{
		slice:  store.SliceJobSeeker,
		action: "jobSeeker/getSavedJobs",
		auth:   sess.RequireIdentity,
		call: func(ctx context.Context, creds session.Credentials) ([]models.Job, error) {
			return s.api.SavedJobs(ctx, creds, creds.UserID)
		},
		fulfilled: func(state *store.State, jobs []models.Job) {
			state.JobSeeker.SetSaved(jobs)
		},
	}.run(ctx, s.storeOf(sess))
}

func (s *JobSeekerService) GetAllApplications(ctx context.Context, sess *session.Session) ([]models.JobApplication, error) {
	return thunk[[]models.JobApplication]{
		slice:  store.SliceJobSeeker,
		action: "jobSeeker/getAllApplications",
		auth:   sess.RequireIdentity,
		call: func(ctx context.Context, creds session.Credentials) ([]models.JobApplication, error) {
			return s.api.SeekerApplications(ctx, creds, creds.UserID)
		},
		fulfilled: func(state *store.State, apps []models.JobApplication) {
			state.JobSeeker.SetApplications(apps)
		},
	}.run(ctx, s.storeOf(sess))
}
