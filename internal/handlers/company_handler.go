package handlers

import (
	"net/http"
	"time"

	"jobportal_front/internal/forms"
	"jobportal_front/internal/logger"
	"jobportal_front/internal/middleware"
	"jobportal_front/internal/models"
	"jobportal_front/internal/services"
	"jobportal_front/internal/storage"
	"jobportal_front/internal/views"
	"jobportal_front/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// CompanyHandler - кабинет компании: отклики, вакансии, профиль, роли
type CompanyHandler struct {
	*BaseHandler
	jobs       *services.JobService
	applicants *services.ApplicantService
	companies  *services.CompanyService
	profile    *services.CompanyProfileService
	roles      *services.CompanyRoleService
}

func NewCompanyHandler(base *BaseHandler, sc *services.ServiceContainer) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler: base,
		jobs:        sc.Jobs,
		applicants:  sc.Applicants,
		companies:   sc.Companies,
		profile:     sc.CompanyProfile,
		roles:       sc.CompanyRoles,
	}
}

func (h *CompanyHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Каталог компаний виден обоим типам аккаунтов
	directory := r.Group("/companies")
	directory.Use(middleware.RequireRole(models.UserRoleJobSeeker, models.UserRoleCompany))
	{
		directory.GET("", h.ListCompanies)
		directory.GET("/:id", h.GetCompany)
	}

	company := r.Group("/company")
	company.Use(middleware.RequireRole(models.UserRoleCompany))
	{
		company.GET("/applicants", h.Dashboard)
		company.POST("/applicants/:id/:action", h.TransitionApplicant)

		company.GET("/jobs", h.CompanyJobs)
		company.POST("/jobs", h.PostJob)
		company.PUT("/jobs/:id", h.UpdateJob)
		company.DELETE("/jobs/:id", h.DeleteJob)
		company.POST("/jobs/:id/toggle-active", h.ToggleJobActive)

		company.GET("/profile", h.GetProfile)
		company.PUT("/profile", h.UpdateProfile)
		company.POST("/profile/images", h.AddImage)
		company.DELETE("/profile/images", h.RemoveImage)

		company.GET("/roles", h.ListRoles)
		company.POST("/roles", h.CreateRole)
		company.PUT("/roles/:id", h.UpdateRole)
		company.DELETE("/roles/:id", h.DeleteRole)
	}
}

// --- Каталог ---

func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	page := ParseQueryInt(c, "page", 1)
	if _, err := h.companies.FetchCompanies(c.Request.Context(), h.Session(c), page); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	st := h.State(c).Companies
	c.JSON(http.StatusOK, gin.H{
		"companies":  st.Companies,
		"total":      st.Total,
		"pagination": st.Pagination,
	})
}

func (h *CompanyHandler) GetCompany(c *gin.Context) {
	company, err := h.companies.FetchCompanyByID(c.Request.Context(), h.Session(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// --- Отклики ---

// Dashboard - GET /company/applicants?status=&page=
func (h *CompanyHandler) Dashboard(c *gin.Context) {
	filter := models.ApplicationStatus(c.Query("status"))

	if _, err := h.applicants.FetchAllApplications(c.Request.Context(), h.Session(c), filter); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	page, pageSize := ParsePagination(c, views.DefaultPageSize)
	c.JSON(http.StatusOK, views.BuildApplicantsTable(h.State(c).Applicants, filter, page, pageSize))
}

type transitionRequest struct {
	InterviewDate *time.Time `json:"interviewDate"`
}

// TransitionApplicant - POST /company/applicants/:id/:action
// (shortlist, scheduleInterview, accept, reject)
func (h *CompanyHandler) TransitionApplicant(c *gin.Context) {
	var req transitionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.CtxWithError(c.Request.Context(), "Failed to bind JSON body", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
			return
		}
	}

	action := models.ApplicationAction(c.Param("action"))
	outcome, err := h.applicants.Transition(c.Request.Context(), h.Session(c), action, c.Param("id"), req.InterviewDate)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	st := h.State(c).Applicants
	c.JSON(http.StatusOK, gin.H{
		"outcome": outcome,
		"table":   views.BuildApplicantsTable(st, st.Filter, 1, views.DefaultPageSize),
	})
}

// --- Вакансии компании ---

func (h *CompanyHandler) CompanyJobs(c *gin.Context) {
	page := ParseQueryInt(c, "page", 1)
	if _, err := h.jobs.FetchCompanyJobs(c.Request.Context(), h.Session(c), page); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	st := h.State(c).Jobs
	cards := make([]views.JobCard, 0, len(st.CompanyJobs))
	for _, j := range st.CompanyJobs {
		cards = append(cards, views.NewJobCard(j))
	}
	c.JSON(http.StatusOK, gin.H{
		"jobs":       cards,
		"total":      st.CompanyJobsTotal,
		"pagination": st.CompanyJobsPagination,
	})
}

func (h *CompanyHandler) PostJob(c *gin.Context) {
	var form forms.JobForm
	if err := c.ShouldBindJSON(&form); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return
	}

	job, err := h.jobs.PostJob(c.Request.Context(), h.Session(c), form)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *CompanyHandler) UpdateJob(c *gin.Context) {
	var form forms.JobForm
	if err := c.ShouldBindJSON(&form); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return
	}

	job, err := h.jobs.UpdateJob(c.Request.Context(), h.Session(c), c.Param("id"), form)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *CompanyHandler) DeleteJob(c *gin.Context) {
	if err := h.jobs.DeleteJob(c.Request.Context(), h.Session(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CompanyHandler) ToggleJobActive(c *gin.Context) {
	job, err := h.jobs.ToggleJobActive(c.Request.Context(), h.Session(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// --- Профиль ---

func (h *CompanyHandler) GetProfile(c *gin.Context) {
	company, err := h.profile.GetProfile(c.Request.Context(), h.Session(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) UpdateProfile(c *gin.Context) {
	var upd models.CompanyProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return
	}

	company, err := h.profile.UpdateProfile(c.Request.Context(), h.Session(c), upd)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// AddImage - multipart, поле image
func (h *CompanyHandler) AddImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Field 'image' is required"))
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer f.Close()

	url, err := h.profile.AddImage(c.Request.Context(), h.Session(c), storage.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"url":    url,
		"images": h.State(c).CompanyProfile.Images(),
	})
}

type removeImageRequest struct {
	URL string `json:"url" binding:"required" validate:"required"`
}

func (h *CompanyHandler) RemoveImage(c *gin.Context) {
	var req removeImageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.profile.RemoveImage(c.Request.Context(), h.Session(c), req.URL); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"images": h.State(c).CompanyProfile.Images()})
}

// --- Роли ---

func (h *CompanyHandler) ListRoles(c *gin.Context) {
	roles, err := h.roles.List(c.Request.Context(), h.Session(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"roles": roles})
}

func (h *CompanyHandler) CreateRole(c *gin.Context) {
	var in models.CompanyRoleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return
	}

	role, err := h.roles.Create(c.Request.Context(), h.Session(c), in)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, role)
}

func (h *CompanyHandler) UpdateRole(c *gin.Context) {
	var in models.CompanyRoleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return
	}

	role, err := h.roles.Update(c.Request.Context(), h.Session(c), c.Param("id"), in)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, role)
}

func (h *CompanyHandler) DeleteRole(c *gin.Context) {
	if err := h.roles.Delete(c.Request.Context(), h.Session(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
