package handlers

import (
	"jobportal_front/internal/services"
	"jobportal_front/internal/session"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	SessionHandler   *SessionHandler
	JobHandler       *JobHandler
	JobSeekerHandler *JobSeekerHandler
	CompanyHandler   *CompanyHandler
	ReferenceHandler *ReferenceHandler
}

func NewAppHandlers(base *BaseHandler, sc *services.ServiceContainer, sessions session.Store) *AppHandlers {
	return &AppHandlers{
		SessionHandler:   NewSessionHandler(base, sessions),
		JobHandler:       NewJobHandler(base, sc.Jobs),
		JobSeekerHandler: NewJobSeekerHandler(base, sc.JobSeeker, sc.Declined, sc.Offers),
		CompanyHandler:   NewCompanyHandler(base, sc),
		ReferenceHandler: NewReferenceHandler(base, sc.Reference),
	}
}
