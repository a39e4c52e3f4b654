package services

import (
	"context"

	"jobportal_front/internal/logger"
	"jobportal_front/internal/models"
	"jobportal_front/internal/session"
	"jobportal_front/internal/storage"
	"jobportal_front/internal/store"
	"jobportal_front/internal/validator"
)

// ============================================
// КАТАЛОГ КОМПАНИЙ
// ============================================

type CompanyService struct {
	base
}

func (s *CompanyService) FetchCompanies(ctx context.Context, sess *session.Session, page int) (models.CompanyPage, error) {
	if page < 1 {
		page = 1
	}
	return thunk[models.CompanyPage]{
		slice:  store.SliceCompanies,
		action: "companies/fetchCompanies",
		auth:   sess.RequireToken,
		call: func(ctx context.Context, creds session.Credentials) (models.CompanyPage, error) {
			return s.api.ListCompanies(ctx, creds, page)
		},
		fulfilled: func(state *store.State, p models.CompanyPage) {
			state.Companies.SetPage(p)
		},
	}.run(ctx, s.storeOf(sess))
}

func (s *CompanyService) FetchCompanyByID(ctx context.Context, sess *session.Session, id string) (models.Company, error) {
	return thunk[models.Company]{
		slice:  store.SliceCompanies,
		action: "companies/fetchCompanyById",
		auth:   sess.RequireToken,
		call: func(ctx context.Context, creds session.Credentials) (models.Company, error) {
			return s.api.GetCompany(ctx, creds, id)
		},
		fulfilled: func(state *store.State, c models.Company) {
			state.Companies.SetCurrent(c)
		},
	}.run(ctx, s.storeOf(sess))
}

// ============================================
// ПРОФИЛЬ ТЕКУЩЕЙ КОМПАНИИ
// ============================================

type CompanyProfileService struct {
	base
	images    *storage.ImageUploader
	validator *validator.Validator
}

func (s *CompanyProfileService) GetProfile(ctx context.Context, sess *session.Session) (models.Company, error) {
	return thunk[models.Company]{
		slice:  store.SliceCompanyProfile,
		action: "companyProfile/getProfile",
		auth:   sess.RequireIdentity,
		call: func(ctx context.Context, creds session.Credentials) (models.Company, error) {
			return s.api.GetCompany(ctx, creds, creds.UserID)
		},
		fulfilled: func(state *store.State, c models.Company) {
			state.CompanyProfile.SetProfile(c)
		},
	}.run(ctx, s.storeOf(sess))
}

// UpdateProfile - последняя запись побеждает, версий нет
func (s *CompanyProfileService) UpdateProfile(ctx context.Context, sess *session.Session, upd models.CompanyProfileUpdate) (models.Company, error) {
	return thunk[models.Company]{
		slice:  store.SliceCompanyProfile,
		action: "companyProfile/updateProfile",
		auth:   sess.RequireIdentity,
		call: func(ctx context.Context, creds session.Credentials) (models.Company, error) {
			if err := s.validator.Validate(upd); err != nil {
				return models.Company{}, asAppError(err)
			}
			return s.api.UpdateCompany(ctx, creds, creds.UserID, upd)
		},
		fulfilled: func(state *store.State, c models.Company) {
			state.CompanyProfile.SetProfile(c)
		},
	}.run(ctx, s.storeOf(sess))
}

// AddImage загружает файл в хранилище и регистрирует URL в профиле.
// Если API отказал, загруженный файл удаляется.
func (s *CompanyProfileService) AddImage(ctx context.Context, sess *session.Session, upload storage.Upload) (string, error) {
	var url string
	_, err := thunk[models.Company]{
		slice:  store.SliceCompanyProfile,
		action: "companyProfile/addImage",
		auth:   sess.RequireIdentity,
		call: func(ctx context.Context, creds session.Credentials) (models.Company, error) {
			uploaded, err := s.images.Upload(ctx, creds.UserID, upload)
			if err != nil {
				return models.Company{}, err
			}
			company, err := s.api.AddCompanyImage(ctx, creds, creds.UserID, uploaded)
			if err != nil {
				if rmErr := s.images.Remove(ctx, uploaded); rmErr != nil {
					logger.CtxWarn(ctx, "Failed to remove orphaned image", "url", uploaded, "error", rmErr)
				}
				return models.Company{}, err
			}
			url = uploaded
			return company, nil
		},
		fulfilled: func(state *store.State, c models.Company) {
			if c.ID != "" {
				state.CompanyProfile.SetProfile(c)
			}
			state.CompanyProfile.AddImage(url)
		},
	}.run(ctx, s.storeOf(sess))
	return url, err
}

func (s *CompanyProfileService) RemoveImage(ctx context.Context, sess *session.Session, url string) error {
	_, err := thunk[models.Company]{
		slice:  store.SliceCompanyProfile,
		action: "companyProfile/removeImage",
		auth:   sess.RequireIdentity,
		call: func(ctx context.Context, creds session.Credentials) (models.Company, error) {
			company, err := s.api.RemoveCompanyImage(ctx, creds, creds.UserID, url)
			if err != nil {
				return models.Company{}, err
			}
			if err := s.images.Remove(ctx, url); err != nil {
				logger.CtxWarn(ctx, "Failed to delete image file", "url", url, "error", err)
			}
			return company, nil
		},
		fulfilled: func(state *store.State, c models.Company) {
			if c.ID != "" {
				state.CompanyProfile.SetProfile(c)
			}
			state.CompanyProfile.RemoveImage(url)
		},
	}.run(ctx, s.storeOf(sess))
	return err
}

// ============================================
// РОЛИ КОМПАНИИ
// ============================================

type CompanyRoleService struct {
	base
	validator *validator.Validator
}

func (s *CompanyRoleService) List(ctx context.Context, sess *session.Session) ([]models.CompanyRole, error) {
	return thunk[[]models.CompanyRole]{
		slice:  store.SliceCompanyRoles,
		action: "companyRoles/list",
		auth:   sess.RequireIdentity,
		call: func(ctx context.Context, creds session.Credentials) ([]models.CompanyRole, error) {
			return s.api.CompanyRoles(ctx, creds, creds.UserID)
		},
		fulfilled: func(state *store.State, roles []models.CompanyRole) {
			state.CompanyRoles.Set(roles)
		},
	}.run(ctx, s.storeOf(sess))
}

// Create - пароль обязателен только здесь и в состоянии не хранится
func (s *CompanyRoleService) Create(ctx context.Context, sess *session.Session, in models.CompanyRoleInput) (models.CompanyRole, error) {
	return thunk[models.CompanyRole]{
		slice:  store.SliceCompanyRoles,
		action: "companyRoles/create",
		auth:   sess.RequireIdentity,
		call: func(ctx context.Context, creds session.Credentials) (models.CompanyRole, error) {
			in.CompanyID = creds.UserID
			if err := s.validator.Validate(in); err != nil {
				return models.CompanyRole{}, asAppError(err)
			}
			if in.Password == "" {
				return models.CompanyRole{}, (&validator.ValidationError{
					Errors: map[string]string{"password": "This field is required"},
				}).AppError()
			}
			return s.api.CreateCompanyRole(ctx, creds, in)
		},
		fulfilled: func(state *store.State, role models.CompanyRole) {
			state.CompanyRoles.Upsert(role)
		},
	}.run(ctx, s.storeOf(sess))
}

func (s *CompanyRoleService) Update(ctx context.Context, sess *session.Session, id string, in models.CompanyRoleInput) (models.CompanyRole, error) {
	return thunk[models.CompanyRole]{
		slice:  store.SliceCompanyRoles,
		action: "companyRoles/update",
		auth:   sess.RequireIdentity,
		call: func(ctx context.Context, creds session.Credentials) (models.CompanyRole, error) {
			in.CompanyID = creds.UserID
			if err := s.validator.Validate(in); err != nil {
				return models.CompanyRole{}, asAppError(err)
			}
			return s.api.UpdateCompanyRole(ctx, creds, id, in)
		},
		fulfilled: func(state *store.State, role models.CompanyRole) {
			if role.ID == "" {
				role.ID = id
			}
			state.CompanyRoles.Upsert(role)
		},
	}.run(ctx, s.storeOf(sess))
}

func (s *CompanyRoleService) Delete(ctx context.Context, sess *session.Session, id string) error {
	_, err := thunk[none]{
		slice:  store.SliceCompanyRoles,
		action: "companyRoles/delete",
		auth:   sess.RequireToken,
		call: func(ctx context.Context, creds session.Credentials) (none, error) {
			return none{}, s.api.DeleteCompanyRole(ctx, creds, id)
		},
		fulfilled: func(state *store.State, _ none) {
			state.CompanyRoles.Remove(id)
		},
	}.run(ctx, s.storeOf(sess))
	return err
}

// asAppError переводит ошибку валидатора в VALIDATION_FAILED
func asAppError(err error) error {
	if verr, ok := err.(*validator.ValidationError); ok {
		return verr.AppError()
	}
	return err
}
