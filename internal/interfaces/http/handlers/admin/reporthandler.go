package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"demandsurvey/internal/application/survey/usecases"
	"demandsurvey/internal/shared/logger"
	"demandsurvey/internal/shared/utils"
)

type ReportHandler struct {
	reportUC usecases.GetDemandReportExecutor
	logger   logger.Interface
}

func NewReportHandler(reportUC usecases.GetDemandReportExecutor, logger logger.Interface) *ReportHandler {
	return &ReportHandler{reportUC: reportUC, logger: logger}
}

// Demand returns the top requested items for a scope
// @Summary Demand report
// @Description Most mentioned items, recomputed on every call
// @Tags Admin
// @Produce json
// @Security Bearer
// @Param location query string false "Exact location, or all"
// @Success 200 {object} utils.APIResponse{data=dto.DemandReportDTO}
// @Failure 403 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /admin/reports/demand [get]
func (h *ReportHandler) Demand(c *gin.Context) {
	report, err := h.reportUC.Execute(c.Request.Context(), usecases.GetDemandReportQuery{
		Caller:   utils.CapabilityFromContext(c),
		Location: c.Query("location"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", report)
}
