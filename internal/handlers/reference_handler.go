package handlers

import (
	"net/http"

	"jobportal_front/internal/forms"
	"jobportal_front/internal/models"
	"jobportal_front/internal/services"

	"github.com/gin-gonic/gin"
)

type ReferenceHandler struct {
	*BaseHandler
	reference *services.ReferenceService
}

func NewReferenceHandler(base *BaseHandler, reference *services.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{
		BaseHandler: base,
		reference:   reference,
	}
}

func (h *ReferenceHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/reference-data", h.GetReferenceData)
}

type referencePage struct {
	models.ReferenceData
	Options forms.LocationOptions `json:"locationOptions"`
}

// GetReferenceData - справочники для форм; ?force=true перечитывает их из API
func (h *ReferenceHandler) GetReferenceData(c *gin.Context) {
	data, err := h.reference.LoadReferenceData(c.Request.Context(), h.Session(c), ParseQueryBool(c, "force"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, referencePage{
		ReferenceData: data,
		Options:       forms.DedupLocations(data.Locations),
	})
}
