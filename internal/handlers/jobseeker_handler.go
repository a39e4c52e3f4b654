package handlers

import (
	"net/http"

	"jobportal_front/internal/middleware"
	"jobportal_front/internal/models"
	"jobportal_front/internal/services"
	"jobportal_front/internal/store"
	"jobportal_front/internal/views"

	"github.com/gin-gonic/gin"
)

// JobSeekerHandler - действия соискателя: отклик, сохранение, отказ, предложения
type JobSeekerHandler struct {
	*BaseHandler
	seeker   *services.JobSeekerService
	declined *services.DeclineService
	offers   *services.OfferService
}

func NewJobSeekerHandler(base *BaseHandler, seeker *services.JobSeekerService, declined *services.DeclineService, offers *services.OfferService) *JobSeekerHandler {
	return &JobSeekerHandler{
		BaseHandler: base,
		seeker:      seeker,
		declined:    declined,
		offers:      offers,
	}
}

func (h *JobSeekerHandler) RegisterRoutes(r *gin.RouterGroup) {
	seeker := r.Group("")
	seeker.Use(middleware.RequireRole(models.UserRoleJobSeeker))
	{
		seeker.POST("/jobs/:id/apply", h.Apply)
		seeker.POST("/jobs/:id/save", h.ToggleSave)
		seeker.POST("/jobs/:id/decline", h.Decline)

		seeker.GET("/saved-jobs", h.SavedJobs)
		seeker.GET("/declined-jobs", h.DeclinedJobs)

		seeker.GET("/applications", h.Applications)
		seeker.DELETE("/applications/:id", h.Withdraw)

		seeker.GET("/offers", h.Offers)
		seeker.POST("/offers/:id/respond", h.RespondToOffer)
	}
}

type applyResponse struct {
	Application models.JobApplication `json:"application"`
	Entry       store.AppliedEntry    `json:"entry"`
}

// Apply - POST /jobs/:id/apply. Повторный отклик дает 409 ALREADY_APPLIED.
func (h *JobSeekerHandler) Apply(c *gin.Context) {
	jobID := c.Param("id")

	app, err := h.seeker.ApplyForJob(c.Request.Context(), h.Session(c), jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	entry, _ := h.State(c).JobSeeker.Entry(jobID)
	c.JSON(http.StatusCreated, applyResponse{Application: app, Entry: entry})
}

func (h *JobSeekerHandler) ToggleSave(c *gin.Context) {
	jobID := c.Param("id")

	saved, err := h.seeker.ToggleSaveJob(c.Request.Context(), h.Session(c), jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobId": jobID, "saved": saved})
}

func (h *JobSeekerHandler) SavedJobs(c *gin.Context) {
	if _, err := h.seeker.GetSavedJobs(c.Request.Context(), h.Session(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	st := h.State(c)
	page, pageSize := ParsePagination(c, views.DefaultPageSize)
	c.JSON(http.StatusOK, views.Paginate(views.JobCards(st.JobSeeker.SavedJobs, st.JobSeeker), page, pageSize))
}

func (h *JobSeekerHandler) Decline(c *gin.Context) {
	jobID := c.Param("id")

	if err := h.declined.DeclineJob(c.Request.Context(), h.Session(c), jobID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobId": jobID, "declined": true})
}

func (h *JobSeekerHandler) DeclinedJobs(c *gin.Context) {
	jobs, err := h.declined.GetDeclinedJobs(c.Request.Context(), h.Session(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	page, pageSize := ParsePagination(c, views.DefaultPageSize)
	c.JSON(http.StatusOK, views.Paginate(views.JobCards(jobs, h.State(c).JobSeeker), page, pageSize))
}

func (h *JobSeekerHandler) Applications(c *gin.Context) {
	if _, err := h.seeker.GetAllApplications(c.Request.Context(), h.Session(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	st := h.State(c)
	page, pageSize := ParsePagination(c, views.DefaultPageSize)
	c.JSON(http.StatusOK, gin.H{
		"applications": views.Paginate(st.JobSeeker.Applications, page, pageSize),
		"appliedJobs":  st.JobSeeker.AppliedJobs,
	})
}

func (h *JobSeekerHandler) Withdraw(c *gin.Context) {
	if err := h.seeker.WithdrawApplication(c.Request.Context(), h.Session(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *JobSeekerHandler) Offers(c *gin.Context) {
	if _, err := h.offers.GetOffers(c.Request.Context(), h.Session(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	st := h.State(c)
	c.JSON(http.StatusOK, gin.H{
		"offers":  st.Offers.Offers,
		"pending": st.Offers.Pending(),
	})
}

type respondRequest struct {
	Decision models.OfferDecision `json:"decision" binding:"required" validate:"required,is-offer-decision"`
}

func (h *JobSeekerHandler) RespondToOffer(c *gin.Context) {
	var req respondRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	offer, err := h.offers.RespondToOffer(c.Request.Context(), h.Session(c), c.Param("id"), req.Decision)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, offer)
}
