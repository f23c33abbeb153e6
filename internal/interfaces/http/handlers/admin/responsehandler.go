package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"demandsurvey/internal/application/survey/dto"
	"demandsurvey/internal/application/survey/usecases"
	"demandsurvey/internal/domain/survey"
	"demandsurvey/internal/shared/logger"
	"demandsurvey/internal/shared/utils"
)

// ResponseHandler serves the admin view of stored survey responses
type ResponseHandler struct {
	listUC   usecases.ListResponsesExecutor
	updateUC usecases.UpdateResponseExecutor
	deleteUC usecases.DeleteResponseExecutor
	logger   logger.Interface
}

func NewResponseHandler(
	listUC usecases.ListResponsesExecutor,
	updateUC usecases.UpdateResponseExecutor,
	deleteUC usecases.DeleteResponseExecutor,
	logger logger.Interface,
) *ResponseHandler {
	return &ResponseHandler{
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

// List returns responses newest first, optionally for one location
// @Summary List survey responses
// @Tags Admin
// @Produce json
// @Security Bearer
// @Param location query string false "Exact location, or all"
// @Success 200 {object} utils.APIResponse{data=dto.ResponseListDTO}
// @Failure 403 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /admin/responses [get]
func (h *ResponseHandler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListResponsesQuery{
		Caller:   utils.CapabilityFromContext(c),
		Location: c.Query("location"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Update edits the respondent fields of a response. Items are not editable.
func (h *ResponseHandler) Update(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "response")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update response", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateResponseCommand{
		Caller: utils.CapabilityFromContext(c),
		ID:     id,
		Raw: survey.RawSubmission{
			Name:      req.Name,
			Mobile:    req.Mobile,
			Location:  req.Location,
			SubRegion: req.SubRegion,
			Role:      req.Role,
		},
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Response updated successfully", result)
}

// Delete removes a response and its item mentions
func (h *ResponseHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "response")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deleteUC.Execute(c.Request.Context(), usecases.DeleteResponseCommand{
		Caller: utils.CapabilityFromContext(c),
		ID:     id,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
