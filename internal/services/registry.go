package services

import (
	"jobportal_front/internal/apiclient"
	"jobportal_front/internal/session"
	"jobportal_front/internal/storage"
	"jobportal_front/internal/store"
	"jobportal_front/internal/validator"
)

// Deps - общие зависимости сервисов
type Deps struct {
	API       *apiclient.Client
	Stores    *store.Registry
	Cache     ReferenceCache
	Images    *storage.ImageUploader
	Validator *validator.Validator
}

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	Jobs           *JobService
	JobSeeker      *JobSeekerService
	Declined       *DeclineService
	Offers         *OfferService
	Companies      *CompanyService
	CompanyProfile *CompanyProfileService
	CompanyRoles   *CompanyRoleService
	Applicants     *ApplicantService
	Reference      *ReferenceService
}

func NewServiceContainer(d Deps) *ServiceContainer {
	if d.Validator == nil {
		d.Validator = validator.New()
	}
	b := base{api: d.API, stores: d.Stores}

	jobs := &JobService{base: b, validator: d.Validator}
	return &ServiceContainer{
		Jobs:           jobs,
		JobSeeker:      &JobSeekerService{base: b, jobs: jobs},
		Declined:       &DeclineService{base: b},
		Offers:         &OfferService{base: b},
		Companies:      &CompanyService{base: b},
		CompanyProfile: &CompanyProfileService{base: b, images: d.Images, validator: d.Validator},
		CompanyRoles:   &CompanyRoleService{base: b, validator: d.Validator},
		Applicants:     &ApplicantService{base: b},
		Reference:      NewReferenceService(b, d.Cache),
	}
}

type base struct {
	api    *apiclient.Client
	stores *store.Registry
}

// storeOf - состояние сессии; без сессии используется общее анонимное
func (b base) storeOf(sess *session.Session) *store.Store {
	if sess == nil {
		return b.stores.For("")
	}
	return b.stores.For(sess.ID)
}
