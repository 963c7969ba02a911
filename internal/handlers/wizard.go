package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stagedai-backend/internal/imagefetch"
	"stagedai-backend/internal/models"
	"stagedai-backend/internal/staging"
	"stagedai-backend/internal/wizard"
)

type WizardHandler struct {
	wizard  *wizard.Service
	staging *staging.Service
}

func NewWizardHandler(wizardService *wizard.Service, stagingService *staging.Service) *WizardHandler {
	return &WizardHandler{
		wizard:  wizardService,
		staging: stagingService,
	}
}

func stateResponse(session wizard.Session) models.WizardStateResponse {
	return models.WizardStateResponse{
		SessionID:       session.ID,
		Step:            session.Step,
		HasImage:        !session.Image.IsZero(),
		Goal:            session.Goal,
		Persona:         session.Persona,
		PropertyType:    session.PropertyType,
		Style:           session.Style,
		Recommendations: session.Recommendations,
	}
}

func (h *WizardHandler) wizardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "session not found"})
	case errors.Is(err, imagefetch.ErrUnretrievable):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "image fetch failed",
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Message: err.Error(),
		})
	}
}

// Start creates a fresh intake session on the upload step.
func (h *WizardHandler) Start(c *gin.Context) {
	session := h.wizard.Start()
	c.JSON(http.StatusCreated, stateResponse(session))
}

func (h *WizardHandler) GetState(c *gin.Context) {
	session, err := h.wizard.Get(c.Param("session_id"))
	if err != nil {
		h.wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, stateResponse(session))
}

// SetImageURL fetches the image at the supplied URL and attaches it.
func (h *WizardHandler) SetImageURL(c *gin.Context) {
	var req models.ImageURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "url is required"})
		return
	}

	session, err := h.wizard.SetImageFromURL(c.Request.Context(), c.Param("session_id"), req.URL)
	if err != nil {
		h.wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, stateResponse(session))
}

// SetImageData attaches an image uploaded directly by the client.
func (h *WizardHandler) SetImageData(c *gin.Context) {
	var req models.ImageDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "image is required"})
		return
	}

	session, err := h.wizard.SetImageFromData(c.Param("session_id"), req.Image)
	if err != nil {
		h.wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, stateResponse(session))
}

func (h *WizardHandler) Next(c *gin.Context) {
	session, err := h.wizard.Next(c.Param("session_id"))
	if err != nil {
		h.wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, stateResponse(session))
}

func (h *WizardHandler) Back(c *gin.Context) {
	session, err := h.wizard.Back(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		h.wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, stateResponse(session))
}

func (h *WizardHandler) SetGoalPersona(c *gin.Context) {
	var req models.GoalPersonaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "goal and persona are required"})
		return
	}

	session, err := h.wizard.SetGoalPersona(c.Param("session_id"), req.Goal, req.Persona)
	if err != nil {
		h.wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, stateResponse(session))
}

func (h *WizardHandler) SetPropertyType(c *gin.Context) {
	var req models.PropertyTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "property_type is required"})
		return
	}

	session, err := h.wizard.SetPropertyType(c.Request.Context(), c.Param("session_id"), req.PropertyType)
	if err != nil {
		h.wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, stateResponse(session))
}

func (h *WizardHandler) SelectStyle(c *gin.Context) {
	var req models.StyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "style is required"})
		return
	}

	session, err := h.wizard.SelectStyle(c.Param("session_id"), req.Style)
	if err != nil {
		h.wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, stateResponse(session))
}

func (h *WizardHandler) Refine(c *gin.Context) {
	var req models.RefineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid refine payload"})
		return
	}

	session, err := h.wizard.Refine(c.Param("session_id"), req)
	if err != nil {
		h.wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, stateResponse(session))
}

// Submit finalizes the intake and starts generation. The session is gone
// after this; the client polls the returned project instead.
func (h *WizardHandler) Submit(c *gin.Context) {
	session, err := h.wizard.Submit(c.Param("session_id"))
	if err != nil {
		h.wizardError(c, err)
		return
	}

	project, err := h.staging.Submit(c.Request.Context(), staging.Intake{
		Image:             session.Image,
		Goal:              session.Goal,
		PropertyType:      session.PropertyType,
		Persona:           session.Persona,
		Style:             session.Style,
		MarketPositioning: session.MarketPositioning,
		UsagePlatform:     session.UsagePlatform,
		EmotionalTone:     session.EmotionalTone,
		Notes:             session.Notes,
		DeepCleanRequired: session.DeepCleanRequired,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to start staging",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusAccepted, models.SubmitResponse{
		ProjectID: project.ID.String(),
		Status:    project.Status,
	})
}

func (h *WizardHandler) Cancel(c *gin.Context) {
	h.wizard.Cancel(c.Param("session_id"))
	c.Status(http.StatusNoContent)
}
