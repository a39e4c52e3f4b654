package services

import (
	"context"

	"jobportal_front/internal/models"
	"jobportal_front/internal/session"
	"jobportal_front/internal/store"
	"jobportal_front/pkg/apperrors"
)

type OfferService struct {
	base
}

func (s *OfferService) GetOffers(ctx context.Context, sess *session.Session) ([]models.JobOffer, error) {
	return thunk[[]models.JobOffer]{
		slice:  store.SliceOffers,
		action: "jobOffers/getOffers",
		auth:   sess.RequireIdentity,
		call: func(ctx context.Context, creds session.Credentials) ([]models.JobOffer, error) {
			return s.api.Offers(ctx, creds, creds.UserID)
		},
		fulfilled: func(state *store.State, offers []models.JobOffer) {
			state.Offers.Set(offers)
		},
	}.run(ctx, s.storeOf(sess))
}

// RespondToOffer принимает или отклоняет предложение о работе
func (s *OfferService) RespondToOffer(ctx context.Context, sess *session.Session, offerID string, decision models.OfferDecision) (models.JobOffer, error) {
	return thunk[models.JobOffer]{
		slice:  store.SliceOffers,
		action: "jobOffers/respondToOffer",
		auth:   sess.RequireToken,
		call: func(ctx context.Context, creds session.Credentials) (models.JobOffer, error) {
			if !decision.Valid() {
				return models.JobOffer{}, apperrors.ErrInvalidOperation("offer", "Decision must be accept or decline")
			}
			return s.api.RespondToOffer(ctx, creds, offerID, decision)
		},
		fulfilled: func(state *store.State, offer models.JobOffer) {
			status := offer.Status
			if status == "" || status == models.OfferStatusPending {
				status = decision.Result()
			}
			state.Offers.Resolve(offerID, status)
		},
	}.run(ctx, s.storeOf(sess))
}
