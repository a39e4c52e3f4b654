package models

import "time"

type Company struct {
	ID                string    `json:"_id"`
	CompanyName       string    `json:"companyName"`
	Website           string    `json:"website"`
	FoundedYear       int       `json:"foundedYear"`
	EmployeeCount     string    `json:"employeeCount"`
	Sector            string    `json:"sector"`
	Logo              string    `json:"logo"`
	Images            []string  `json:"images"`
	Services          []string  `json:"services"`
	Description       string    `json:"description"`
	Languages         []string  `json:"languages"`
	Address           string    `json:"address"`
	City              string    `json:"city"`
	Province          string    `json:"province"`
	Country           string    `json:"country"`
	ProfileCompletion float64   `json:"profileCompletion"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// CompanyProfileUpdate - частичное обновление профиля, nil поля не отправляются
type CompanyProfileUpdate struct {
	CompanyName   *string  `json:"companyName,omitempty"`
	Website       *string  `json:"website,omitempty" validate:"omitempty,url"`
	FoundedYear   *int     `json:"foundedYear,omitempty" validate:"omitempty,min=1800,max=2100"`
	EmployeeCount *string  `json:"employeeCount,omitempty"`
	Sector        *string  `json:"sector,omitempty"`
	Logo          *string  `json:"logo,omitempty"`
	Services      []string `json:"services,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Languages     []string `json:"languages,omitempty"`
	Address       *string  `json:"address,omitempty"`
	City          *string  `json:"city,omitempty"`
	Province      *string  `json:"province,omitempty"`
	Country       *string  `json:"country,omitempty"`
}

type CompanyPage struct {
	Companies  []Company  `json:"companies"`
	Total      int        `json:"total"`
	Pagination Pagination `json:"pagination"`
}

// CompanyRole - дополнительная учетная запись внутри компании
type CompanyRole struct {
	ID        string    `json:"_id"`
	CompanyID string    `json:"companyId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// CompanyRoleInput - пароль передается только при создании
type CompanyRoleInput struct {
	CompanyID string `json:"companyId"`
	FirstName string `json:"firstName" binding:"required" validate:"required"`
	LastName  string `json:"lastName" binding:"required" validate:"required"`
	Email     string `json:"email" binding:"required" validate:"required,email"`
	Role      string `json:"role" binding:"required" validate:"required"`
	Password  string `json:"password,omitempty" validate:"omitempty,min=8"`
}

type JobSeeker struct {
	ID          string    `json:"_id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Skills      []string  `json:"skills"`
	Location    Location  `json:"location"`
	SavedJobs   []string  `json:"savedJobs"`
	AppliedJobs []string  `json:"appliedJobs"`
	CreatedAt   time.Time `json:"createdAt"`
}
