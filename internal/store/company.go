package store

import (
	"slices"

	"jobportal_front/internal/models"
)

type CompaniesSlice struct {
	Request
	Companies  []models.Company  `json:"companies"`
	Total      int               `json:"total"`
	Pagination models.Pagination `json:"pagination"`
	Current    *models.Company   `json:"current,omitempty"`
}

func (s *CompaniesSlice) SetPage(p models.CompanyPage) {
	s.Companies = slices.Clone(p.Companies)
	s.Total = p.Total
	s.Pagination = p.Pagination
}

func (s *CompaniesSlice) SetCurrent(c models.Company) {
	s.Current = &c
}

type CompanyProfileSlice struct {
	Request
	Profile *models.Company `json:"profile,omitempty"`
}

func (s *CompanyProfileSlice) SetProfile(c models.Company) {
	c.Images = slices.Clone(c.Images)
	s.Profile = &c
}

// Images - копия галереи; без загруженного профиля пустой список
func (s CompanyProfileSlice) Images() []string {
	if s.Profile == nil {
		return []string{}
	}
	return append([]string{}, s.Profile.Images...)
}

// AddImage дописывает url в галерею без дубликатов
func (s *CompanyProfileSlice) AddImage(url string) {
	if s.Profile == nil || slices.Contains(s.Profile.Images, url) {
		return
	}
	p := *s.Profile
	p.Images = append(slices.Clone(p.Images), url)
	s.Profile = &p
}

func (s *CompanyProfileSlice) RemoveImage(url string) {
	if s.Profile == nil {
		return
	}
	p := *s.Profile
	p.Images = slices.DeleteFunc(slices.Clone(p.Images), func(u string) bool { return u == url })
	s.Profile = &p
}

type CompanyRolesSlice struct {
	Request
	Roles []models.CompanyRole `json:"roles"`
}

func (s *CompanyRolesSlice) Set(roles []models.CompanyRole) {
	s.Roles = slices.Clone(roles)
}

func (s *CompanyRolesSlice) Upsert(role models.CompanyRole) {
	s.Roles = slices.Clone(s.Roles)
	if i := slices.IndexFunc(s.Roles, func(r models.CompanyRole) bool { return r.ID == role.ID }); i >= 0 {
		s.Roles[i] = role
		return
	}
	s.Roles = append(s.Roles, role)
}

func (s *CompanyRolesSlice) Remove(id string) {
	s.Roles = slices.DeleteFunc(slices.Clone(s.Roles), func(r models.CompanyRole) bool { return r.ID == id })
}
