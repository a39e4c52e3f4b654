package services

import (
	"context"

	"jobportal_front/internal/models"
	"jobportal_front/internal/session"
	"jobportal_front/internal/store"
)

type DeclineService struct {
	base
}

// DeclineJob убирает вакансию из списков соискателя. Это не отзыв отклика.
func (s *DeclineService) DeclineJob(ctx context.Context, sess *session.Session, jobID string) error {
	_, err := thunk[none]{
		slice:  store.SliceDeclined,
		action: "declinedJobs/declineJob",
		auth:   sess.RequireIdentity,
		call: func(ctx context.Context, creds session.Credentials) (none, error) {
			return none{}, s.api.DeclineJob(ctx, creds, jobID, creds.UserID)
		},
		fulfilled: func(state *store.State, _ none) {
			state.DeclineJob(jobID)
		},
	}.run(ctx, s.storeOf(sess))
	return err
}

// GetDeclinedJobs без токена отклоняется с "Access token is missing"
// и не делает сетевой запрос.
func (s *DeclineService) GetDeclinedJobs(ctx context.Context, sess *session.Session) ([]models.Job, error) {
	return thunk[[]models.Job]{
		slice:  store.SliceDeclined,
		action: "declinedJobs/getDeclinedJobs",
		auth:   sess.RequireIdentity,
		call: func(ctx context.Context, creds session.Credentials) ([]models.Job, error) {
			return s.api.DeclinedJobs(ctx, creds, creds.UserID)
		},
		fulfilled: func(state *store.State, jobs []models.Job) {
			state.Declined.Set(jobs)
		},
	}.run(ctx, s.storeOf(sess))
}
