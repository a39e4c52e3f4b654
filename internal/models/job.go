package models

import "time"

type Location struct {
	City     string `json:"city"`
	Province string `json:"province"`
	Country  string `json:"country"`
}

// CompanyRef - денормализованные поля компании внутри вакансии
type CompanyRef struct {
	ID      string `json:"_id"`
	Name    string `json:"companyName"`
	Logo    string `json:"logo,omitempty"`
	Sector  string `json:"sector,omitempty"`
	Website string `json:"website,omitempty"`
}

type Job struct {
	ID            string      `json:"_id"`
	Title         string      `json:"title"`
	Sector        string      `json:"sector"`
	Skills        []string    `json:"skills"`
	Location      Location    `json:"location"`
	SalaryFrom    int         `json:"salaryFrom"`
	SalaryTo      int         `json:"salaryTo"`
	JobType       string      `json:"jobType"`
	CareerLevel   string      `json:"careerLevel"`
	CandidateType string      `json:"candidateType"`
	Availability  string      `json:"availability"`
	Urgency       string      `json:"urgency,omitempty"`
	Benefits      []string    `json:"benefits"`
	IsActive      bool        `json:"isActive"`
	Description   string      `json:"description"`
	Company       *CompanyRef `json:"company,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	PageSize    int `json:"pageSize"`
	TotalItems  int `json:"totalItems"`
}

// JobPage - ответ постраничного списка вакансий
type JobPage struct {
	Jobs       []Job      `json:"jobs"`
	Total      int        `json:"total"`
	Pagination Pagination `json:"pagination"`
}

// JobPayload - тело POST /job и PUT /job/:id
type JobPayload struct {
	Title         string   `json:"title"`
	Sector        string   `json:"sector"`
	Skills        []string `json:"skills"`
	Location      Location `json:"location"`
	SalaryFrom    int      `json:"salaryFrom"`
	SalaryTo      int      `json:"salaryTo"`
	JobType       string   `json:"jobType"`
	CareerLevel   string   `json:"careerLevel"`
	CandidateType string   `json:"candidateType"`
	Availability  string   `json:"availability"`
	Urgency       string   `json:"urgency,omitempty"`
	Benefits      []string `json:"benefits"`
	Description   string   `json:"description"`
	Company       string   `json:"company,omitempty"`
}
