package handlers

import (
	"net/http"

	"jobportal_front/internal/logger"
	"jobportal_front/internal/middleware"
	"jobportal_front/internal/models"
	"jobportal_front/internal/services"
	"jobportal_front/internal/store"
	"jobportal_front/internal/views"

	"github.com/gin-gonic/gin"
)

// JobHandler - страницы поиска вакансий (общие для соискателя и компании)
type JobHandler struct {
	*BaseHandler
	jobs *services.JobService
}

func NewJobHandler(base *BaseHandler, jobs *services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobs:        jobs,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	jobs.Use(middleware.RequireRole(models.UserRoleJobSeeker, models.UserRoleCompany))
	{
		jobs.GET("", h.ListJobs)
		jobs.GET("/best-matched", middleware.RequireRole(models.UserRoleJobSeeker), h.BestMatched)
		jobs.GET("/:id", h.GetJob)
	}
}

type jobsPage struct {
	Jobs       []views.JobCard     `json:"jobs"`
	Total      int                 `json:"total"`
	Page       int                 `json:"page"`
	Pagination models.Pagination   `json:"pagination"`
	Status     store.RequestStatus `json:"status"`
}

type jobDetailPage struct {
	Job     models.Job      `json:"job"`
	Card    views.JobCard   `json:"card"`
	Similar []views.JobCard `json:"similar"`
	Applied bool            `json:"applied"`
	Saved   bool            `json:"saved"`
}

// ListJobs - GET /jobs?page=&q=
func (h *JobHandler) ListJobs(c *gin.Context) {
	page := ParseQueryInt(c, "page", 1)
	sess := h.Session(c)

	if _, err := h.jobs.FetchJobs(c.Request.Context(), sess, page); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	st := h.State(c)
	jobs := views.FilterJobs(st.Jobs.Jobs, c.Query("q"))
	c.JSON(http.StatusOK, jobsPage{
		Jobs:       views.JobCards(jobs, st.JobSeeker),
		Total:      st.Jobs.Total,
		Page:       st.Jobs.Page,
		Pagination: st.Jobs.Pagination,
		Status:     st.Jobs.Status,
	})
}

// GetJob - деталь вакансии и похожие. Ошибка похожих не ломает страницу.
func (h *JobHandler) GetJob(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	sess := h.Session(c)

	job, err := h.jobs.FetchJobByID(ctx, sess, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if _, err := h.jobs.FetchSimilarJobs(ctx, sess, id); err != nil {
		logger.CtxWarn(ctx, "Similar jobs unavailable", "job_id", id, "error", err)
	}

	st := h.State(c)
	card := views.JobCards([]models.Job{job}, st.JobSeeker)[0]
	c.JSON(http.StatusOK, jobDetailPage{
		Job:     job,
		Card:    card,
		Similar: views.JobCards(st.Jobs.Similar, st.JobSeeker),
		Applied: card.Applied,
		Saved:   card.Saved,
	})
}

// BestMatched - порядок рейтинга задает бэкенд
func (h *JobHandler) BestMatched(c *gin.Context) {
	if _, err := h.jobs.FetchBestMatchedJobs(c.Request.Context(), h.Session(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	st := h.State(c)
	c.JSON(http.StatusOK, gin.H{
		"jobs":   views.JobCards(st.Jobs.BestMatched, st.JobSeeker),
		"status": st.Jobs.Status,
	})
}
