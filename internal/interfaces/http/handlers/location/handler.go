package location

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"demandsurvey/internal/application/location/dto"
	"demandsurvey/internal/application/location/usecases"
	"demandsurvey/internal/shared/logger"
	"demandsurvey/internal/shared/utils"
)

type Handler struct {
	listUC   usecases.ListLocationsExecutor
	createUC usecases.CreateLocationExecutor
	updateUC usecases.UpdateLocationExecutor
	deleteUC usecases.DeleteLocationExecutor
	logger   logger.Interface
}

func NewHandler(
	listUC usecases.ListLocationsExecutor,
	createUC usecases.CreateLocationExecutor,
	updateUC usecases.UpdateLocationExecutor,
	deleteUC usecases.DeleteLocationExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		listUC:   listUC,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

// List returns the location catalog sorted by name
// @Summary List locations
// @Tags Locations
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]dto.LocationDTO}
// @Failure 503 {object} utils.APIResponse
// @Router /locations [get]
func (h *Handler) List(c *gin.Context) {
	locations, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", locations)
}

// Create adds a catalog entry
// @Summary Create location
// @Tags Admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.CreateLocationRequest true "Location"
// @Success 201 {object} utils.APIResponse{data=dto.LocationDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /admin/locations [post]
func (h *Handler) Create(c *gin.Context) {
	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create location", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateLocationCommand{
		Caller:         utils.CapabilityFromContext(c),
		Name:           req.Name,
		SubRegionCount: req.SubRegionCount,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Location created successfully")
}

// Update handles PUT /admin/locations/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "location")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update location", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateLocationCommand{
		Caller:         utils.CapabilityFromContext(c),
		ID:             id,
		Name:           req.Name,
		SubRegionCount: req.SubRegionCount,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Location updated successfully", result)
}

// Delete handles DELETE /admin/locations/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "location")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deleteUC.Execute(c.Request.Context(), usecases.DeleteLocationCommand{
		Caller: utils.CapabilityFromContext(c),
		ID:     id,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
