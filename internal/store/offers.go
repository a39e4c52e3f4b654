package store

import (
	"slices"

	"jobportal_front/internal/models"
)

type DeclinedSlice struct {
	Request
	Declined []models.Job `json:"declinedJobs"`
}

// Add добавляет вакансию в отклоненные без дубликатов
func (s *DeclinedSlice) Add(job models.Job) {
	if indexJob(s.Declined, job.ID) >= 0 {
		return
	}
	s.Declined = append(slices.Clone(s.Declined), job)
}

func (s *DeclinedSlice) Set(jobs []models.Job) {
	s.Declined = slices.Clone(jobs)
}

type OffersSlice struct {
	Request
	Offers []models.JobOffer `json:"jobOffers"`
}

func (s *OffersSlice) Set(offers []models.JobOffer) {
	s.Offers = slices.Clone(offers)
}

// Resolve выставляет итоговый статус предложения; false, если его нет в кеше
func (s *OffersSlice) Resolve(offerID string, status models.OfferStatus) bool {
	i := slices.IndexFunc(s.Offers, func(o models.JobOffer) bool { return o.ID == offerID })
	if i < 0 {
		return false
	}
	s.Offers = slices.Clone(s.Offers)
	s.Offers[i].Status = status
	return true
}

// Pending - предложения, на которые соискатель еще не ответил
func (s OffersSlice) Pending() []models.JobOffer {
	var out []models.JobOffer
	for _, o := range s.Offers {
		if o.Status == models.OfferStatusPending || o.Status == "" {
			out = append(out, o)
		}
	}
	return out
}
