package store

import (
	"slices"

	"jobportal_front/internal/models"
)

type State struct {
	Jobs           JobsSlice           `json:"jobs"`
	JobSeeker      JobSeekerSlice      `json:"jobSeeker"`
	Declined       DeclinedSlice       `json:"declinedJobs"`
	Offers         OffersSlice         `json:"jobOffers"`
	Companies      CompaniesSlice      `json:"companies"`
	CompanyProfile CompanyProfileSlice `json:"companyProfile"`
	CompanyRoles   CompanyRolesSlice   `json:"companyRoles"`
	Applicants     ApplicantsSlice     `json:"appliedApplicants"`
	Reference      ReferenceSlice      `json:"reference"`
}

func newState() State {
	idle := Request{Status: StatusIdle}
	var s State
	s.Jobs.Request = idle
	s.JobSeeker.Request = idle
	s.Declined.Request = idle
	s.Offers.Request = idle
	s.Companies.Request = idle
	s.CompanyProfile.Request = idle
	s.CompanyRoles.Request = idle
	s.Applicants.Request = idle
	s.Reference.Request = idle
	return s
}

// Request возвращает статус запроса нужного среза
func (s *State) Request(name SliceName) *Request {
	switch name {
	case SliceJobs:
		return &s.Jobs.Request
	case SliceJobSeeker:
		return &s.JobSeeker.Request
	case SliceDeclined:
		return &s.Declined.Request
	case SliceOffers:
		return &s.Offers.Request
	case SliceCompanies:
		return &s.Companies.Request
	case SliceCompanyProfile:
		return &s.CompanyProfile.Request
	case SliceCompanyRoles:
		return &s.CompanyRoles.Request
	case SliceApplicants:
		return &s.Applicants.Request
	case SliceReference:
		return &s.Reference.Request
	}
	return &Request{}
}

// LookupJob ищет вакансию во всех закешированных срезах
func (s *State) LookupJob(jobID string) (models.Job, bool) {
	if job, ok := s.Jobs.Find(jobID); ok {
		return job, true
	}
	if e := s.JobSeeker.entry(jobID); e != nil && e.Job != nil {
		return *e.Job, true
	}
	if i := indexJob(s.JobSeeker.SavedJobs, jobID); i >= 0 {
		return s.JobSeeker.SavedJobs[i], true
	}
	if i := indexJob(s.Declined.Declined, jobID); i >= 0 {
		return s.Declined.Declined[i], true
	}
	for _, o := range s.Offers.Offers {
		if o.Job != nil && o.Job.ID == jobID {
			return *o.Job, true
		}
	}
	return models.Job{}, false
}

// ToggleSaved повторяет серверный toggle локально:
// убрать из savedJobs, если есть; иначе добавить объект вакансии из
// appliedJobs или из другого кеша. Если вакансии нет нигде, ничего не делает.
func (s *State) ToggleSaved(jobID string) bool {
	saved := s.JobSeeker.SavedJobs
	if i := indexJob(saved, jobID); i >= 0 {
		s.JobSeeker.SavedJobs = slices.Delete(slices.Clone(saved), i, i+1)
		return true
	}
	if e := s.JobSeeker.entry(jobID); e != nil && e.Job != nil {
		s.JobSeeker.SavedJobs = append(slices.Clone(saved), *e.Job)
		return true
	}
	if job, ok := s.LookupJob(jobID); ok {
		s.JobSeeker.SavedJobs = append(slices.Clone(saved), job)
		return true
	}
	return false
}

// DeclineJob убирает вакансию из доступных списков и добавляет в declinedJobs
func (s *State) DeclineJob(jobID string) {
	job, found := s.LookupJob(jobID)
	s.Jobs.RemoveAvailable(jobID)
	if found {
		s.Declined.Add(job)
	}
}

func (s State) clone() State {
	out := s
	out.Jobs = s.Jobs.clone()
	out.JobSeeker = s.JobSeeker.clone()
	out.Declined.Declined = slices.Clone(s.Declined.Declined)
	out.Offers.Offers = slices.Clone(s.Offers.Offers)
	out.Companies.Companies = slices.Clone(s.Companies.Companies)
	out.Companies.Current = clonePtr(s.Companies.Current)
	out.CompanyProfile.Profile = clonePtr(s.CompanyProfile.Profile)
	if out.CompanyProfile.Profile != nil {
		out.CompanyProfile.Profile.Images = slices.Clone(s.CompanyProfile.Profile.Images)
	}
	out.CompanyRoles.Roles = slices.Clone(s.CompanyRoles.Roles)
	out.Applicants.Applications = slices.Clone(s.Applicants.Applications)
	out.Reference.Data.Skills = slices.Clone(s.Reference.Data.Skills)
	out.Reference.Data.Sectors = slices.Clone(s.Reference.Data.Sectors)
	out.Reference.Data.Benefits = slices.Clone(s.Reference.Data.Benefits)
	out.Reference.Data.Locations = slices.Clone(s.Reference.Data.Locations)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func indexJob(jobs []models.Job, id string) int {
	return slices.IndexFunc(jobs, func(j models.Job) bool { return j.ID == id })
}
