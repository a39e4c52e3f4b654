// Package forms собирает тело запроса из сырых полей форм.
package forms

import (
	"strconv"
	"strings"

	"jobportal_front/internal/models"
	"jobportal_front/internal/validator"
)

// JobForm - поля диалога публикации/редактирования вакансии в том виде,
// в каком их присылает браузер. Зарплата приходит строкой.
type JobForm struct {
	Title         string   `json:"title" validate:"required"`
	Sector        string   `json:"sector"`
	Skills        []string `json:"skills"`
	City          string   `json:"city"`
	Province      string   `json:"province"`
	Country       string   `json:"country"`
	SalaryFrom    string   `json:"salaryFrom"`
	SalaryTo      string   `json:"salaryTo"`
	JobType       string   `json:"jobType"`
	CareerLevel   string   `json:"careerLevel"`
	CandidateType string   `json:"candidateType"`
	Availability  string   `json:"availability"`
	Urgency       string   `json:"urgency"`
	Benefits      []string `json:"benefits"`
	Description   string   `json:"description"`
}

// Validate проверяет только структуру формы. Значения проверяет API.
func (f JobForm) Validate(v *validator.Validator) error {
	return v.Validate(f)
}

// Payload собирает тело POST /job и PUT /job/:id
func (f JobForm) Payload(companyID string) models.JobPayload {
	return models.JobPayload{
		Title:  strings.TrimSpace(f.Title),
		Sector: strings.TrimSpace(f.Sector),
		Skills: cleanList(f.Skills),
		Location: models.Location{
			City:     strings.TrimSpace(f.City),
			Province: strings.TrimSpace(f.Province),
			Country:  strings.TrimSpace(f.Country),
		},
		SalaryFrom:    ParseSalary(f.SalaryFrom),
		SalaryTo:      ParseSalary(f.SalaryTo),
		JobType:       f.JobType,
		CareerLevel:   f.CareerLevel,
		CandidateType: f.CandidateType,
		Availability:  f.Availability,
		Urgency:       f.Urgency,
		Benefits:      cleanList(f.Benefits),
		Description:   f.Description,
		Company:       companyID,
	}
}

// FromJob заполняет форму редактирования из существующей вакансии
func FromJob(job models.Job) JobForm {
	return JobForm{
		Title:         job.Title,
		Sector:        job.Sector,
		Skills:        append([]string(nil), job.Skills...),
		City:          job.Location.City,
		Province:      job.Location.Province,
		Country:       job.Location.Country,
		SalaryFrom:    strconv.Itoa(job.SalaryFrom),
		SalaryTo:      strconv.Itoa(job.SalaryTo),
		JobType:       job.JobType,
		CareerLevel:   job.CareerLevel,
		CandidateType: job.CandidateType,
		Availability:  job.Availability,
		Urgency:       job.Urgency,
		Benefits:      append([]string(nil), job.Benefits...),
		Description:   job.Description,
	}
}

// ParseSalary: "120,000" -> 120000; все, что не число, превращается в 0
func ParseSalary(raw string) int {
	s := strings.NewReplacer(",", "", " ", "", "_", "").Replace(strings.TrimSpace(raw))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// cleanList убирает пустые значения и повторы, сохраняя порядок выбора
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
