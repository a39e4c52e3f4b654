package services

import (
	"context"
	"fmt"
	"time"

	"jobportal_front/internal/logger"
	"jobportal_front/internal/models"
	"jobportal_front/internal/session"
	"jobportal_front/internal/store"
	"jobportal_front/pkg/apperrors"
)

// Outcome - результат действия компании над откликом
type Outcome string

const (
	OutcomeApplied Outcome = "applied"
	// OutcomeSkipped: в сессии нет токена или id компании, запрос не отправлялся
	OutcomeSkipped Outcome = "skipped"
)

// ApplicantService - дашборд откликов компании. Список после любого
// перехода перезагружается целиком и не патчится локально.
type ApplicantService struct {
	base
}

func (s *ApplicantService) FetchAllApplications(ctx context.Context, sess *session.Session, filter models.ApplicationStatus) ([]models.JobApplication, error) {
	return thunk[[]models.JobApplication]{
		slice:  store.SliceApplicants,
		action: "appliedApplicants/fetchAllApplications",
		auth:   sess.RequireIdentity,
		call: func(ctx context.Context, creds session.Credentials) ([]models.JobApplication, error) {
			if filter != "" && !filter.Valid() {
				return nil, apperrors.ErrInvalidOperation("application", fmt.Sprintf("Unknown status filter %q", filter))
			}
			return s.api.CompanyApplications(ctx, creds, creds.UserID, filter)
		},
		fulfilled: func(state *store.State, apps []models.JobApplication) {
			state.Applicants.Set(filter, apps)
		},
	}.run(ctx, s.storeOf(sess))
}

func (s *ApplicantService) Shortlist(ctx context.Context, sess *session.Session, applicationID string) (Outcome, error) {
	return s.Transition(ctx, sess, models.ActionShortlist, applicationID, nil)
}

func (s *ApplicantService) ScheduleInterview(ctx context.Context, sess *session.Session, applicationID string, at time.Time) (Outcome, error) {
	return s.Transition(ctx, sess, models.ActionScheduleInterview, applicationID, &at)
}

func (s *ApplicantService) Accept(ctx context.Context, sess *session.Session, applicationID string) (Outcome, error) {
	return s.Transition(ctx, sess, models.ActionAccept, applicationID, nil)
}

func (s *ApplicantService) Reject(ctx context.Context, sess *session.Session, applicationID string) (Outcome, error) {
	return s.Transition(ctx, sess, models.ActionReject, applicationID, nil)
}

// Transition проверяет переход по закешированному статусу, отправляет его
// и перезагружает список с текущим фильтром. rejected - конечный статус.
func (s *ApplicantService) Transition(
	ctx context.Context,
	sess *session.Session,
	action models.ApplicationAction,
	applicationID string,
	interviewDate *time.Time,
) (Outcome, error) {
	if _, err := sess.RequireIdentity(); err != nil {
		logger.CtxWarn(ctx, "Skipping applicant action without credentials",
			"action", action,
			"application_id", applicationID,
			"error", err,
		)
		return OutcomeSkipped, nil
	}

	st := s.storeOf(sess)
	_, err := thunk[none]{
		slice:  store.SliceApplicants,
		action: "appliedApplicants/" + string(action),
		auth:   sess.RequireIdentity,
		call: func(ctx context.Context, creds session.Credentials) (none, error) {
			if err := s.guard(st, action, applicationID, interviewDate); err != nil {
				return none{}, err
			}
			return none{}, s.api.TransitionApplication(ctx, creds, action, applicationID, interviewDate)
		},
	}.run(ctx, st)
	if err != nil {
		return "", err
	}

	filter := store.Select(st, func(state *store.State) models.ApplicationStatus {
		return state.Applicants.Filter
	})
	if _, err := s.FetchAllApplications(ctx, sess, filter); err != nil {
		// сам переход прошел; ошибка перезагрузки видна в срезе
		logger.CtxWarn(ctx, "Failed to refresh applicants after action", "action", action, "error", err)
	}
	return OutcomeApplied, nil
}

func (s *ApplicantService) guard(st *store.Store, action models.ApplicationAction, applicationID string, interviewDate *time.Time) error {
	if !action.Valid() {
		return apperrors.ErrInvalidOperation("application", fmt.Sprintf("Unknown action %q", action))
	}
	if action == models.ActionScheduleInterview && interviewDate == nil {
		return apperrors.ValidationError(map[string]string{"interviewDate": "This field is required"})
	}

	app, cached := store.Lookup(st, func(state *store.State) (models.JobApplication, bool) {
		return state.Applicants.Find(applicationID)
	})
	if !cached {
		// статуса нет в кеше: решает сервер
		return nil
	}
	if !app.Status.Allows(action) {
		return apperrors.ErrInvalidStatus("application",
			fmt.Sprintf("Cannot %s an application in status %s", action, app.Status))
	}
	return nil
}
