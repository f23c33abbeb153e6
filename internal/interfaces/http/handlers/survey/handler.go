package survey

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"demandsurvey/internal/application/survey/dto"
	"demandsurvey/internal/application/survey/usecases"
	"demandsurvey/internal/shared/logger"
	"demandsurvey/internal/shared/utils"
)

// Handler serves the public intake form: one-shot submission and the
// server-held drafts behind the dynamic item list.
type Handler struct {
	submitUC      usecases.SubmitSurveyExecutor
	submitDraftUC usecases.SubmitDraftExecutor
	drafts        usecases.DraftManager
	logger        logger.Interface
}

func NewHandler(
	submitUC usecases.SubmitSurveyExecutor,
	submitDraftUC usecases.SubmitDraftExecutor,
	drafts usecases.DraftManager,
	logger logger.Interface,
) *Handler {
	return &Handler{
		submitUC:      submitUC,
		submitDraftUC: submitDraftUC,
		drafts:        drafts,
		logger:        logger,
	}
}

// Submit stores one complete survey response
// @Summary Submit a survey
// @Description Validate and store a survey response with its product mentions
// @Tags Surveys
// @Accept json
// @Produce json
// @Param request body dto.SubmitSurveyRequest true "Survey form"
// @Success 201 {object} utils.APIResponse{data=dto.SubmitResult}
// @Failure 400 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /surveys [post]
func (h *Handler) Submit(c *gin.Context) {
	var req dto.SubmitSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit survey", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.submitUC.Execute(c.Request.Context(), usecases.SubmitSurveyCommand{Raw: req.ToRaw()})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Survey submitted successfully")
}

// CreateDraft starts a new form session
// @Summary Start a draft
// @Tags Drafts
// @Produce json
// @Success 201 {object} utils.APIResponse{data=dto.DraftDTO}
// @Router /surveys/drafts [post]
func (h *Handler) CreateDraft(c *gin.Context) {
	draft, err := h.drafts.Create(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, draft, "Draft created")
}

// GetDraft handles GET /surveys/drafts/:id
func (h *Handler) GetDraft(c *gin.Context) {
	draft, err := h.drafts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", draft)
}

// UpdateDraft handles PATCH /surveys/drafts/:id
func (h *Handler) UpdateDraft(c *gin.Context) {
	var req dto.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	draft, err := h.drafts.UpdateFields(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", draft)
}

// SelectLocation handles PUT /surveys/drafts/:id/location.
// Choosing a different location clears the sub-region.
func (h *Handler) SelectLocation(c *gin.Context) {
	var req dto.SelectLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	draft, err := h.drafts.SelectLocation(c.Request.Context(), c.Param("id"), req.Location)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", draft)
}

// SelectSubRegion handles PUT /surveys/drafts/:id/sub-region
func (h *Handler) SelectSubRegion(c *gin.Context) {
	var req dto.SelectSubRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	draft, err := h.drafts.SelectSubRegion(c.Request.Context(), c.Param("id"), req.SubRegion)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", draft)
}

// AppendItem handles POST /surveys/drafts/:id/items
func (h *Handler) AppendItem(c *gin.Context) {
	draft, err := h.drafts.AppendSlot(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", draft)
}

// UpdateItem handles PUT /surveys/drafts/:id/items/:index
func (h *Handler) UpdateItem(c *gin.Context) {
	index, err := utils.ParseIndexParam(c, "index")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	draft, err := h.drafts.UpdateSlot(c.Request.Context(), c.Param("id"), index, req.Text)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", draft)
}

// RemoveItem handles DELETE /surveys/drafts/:id/items/:index.
// The last remaining slot cannot be removed.
func (h *Handler) RemoveItem(c *gin.Context) {
	index, err := utils.ParseIndexParam(c, "index")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	draft, err := h.drafts.RemoveSlot(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", draft)
}

// SubmitDraft submits the draft and resets it for the next respondent
// @Summary Submit a draft
// @Tags Drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 201 {object} utils.APIResponse{data=usecases.SubmitDraftResult}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /surveys/drafts/{id}/submit [post]
func (h *Handler) SubmitDraft(c *gin.Context) {
	result, err := h.submitDraftUC.Execute(c.Request.Context(), usecases.SubmitDraftCommand{DraftID: c.Param("id")})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Survey submitted successfully")
}
