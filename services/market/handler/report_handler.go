package handler

import (
	"net/http"

	model "bomul-market/internal/models"
	"bomul-market/services/market/helpers"
	"bomul-market/utils"

	"github.com/gin-gonic/gin"
)

// ListReportsHandler handles GET /reports
func (h *MarketHandler) ListReportsHandler(c *gin.Context) {
	reports := h.market.GetReports()
	if reports == nil {
		reports = []model.Report{}
	}
	utils.JSONResponse(c, http.StatusOK, reports, "reports retrieved successfully")
}

// OrphanedReportsHandler handles GET /reports/orphaned
func (h *MarketHandler) OrphanedReportsHandler(c *gin.Context) {
	reports := h.market.OrphanedReports()
	if reports == nil {
		reports = []model.Report{}
	}
	utils.JSONResponse(c, http.StatusOK, reports, "orphaned reports retrieved successfully")
}

// CreateReportHandler handles POST /reports
func (h *MarketHandler) CreateReportHandler(c *gin.Context) {
	var req helpers.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateReportHandler", err)
		return
	}

	report, err := h.market.AddReport(c.Request.Context(), model.Report{
		TargetID:   req.TargetID,
		TargetType: req.TargetType,
		ReporterID: req.ReporterID,
		Reason:     req.Reason,
	})
	if err != nil {
		helpers.RespondError(c, "CreateReportHandler", err, "", map[string]any{"target_id": req.TargetID})
		return
	}
	utils.JSONResponse(c, http.StatusCreated, report, "report filed successfully")
	helpers.LogSuccess("CreateReportHandler", "report filed successfully", map[string]any{
		"report_id": report.ID,
		"target_id": report.TargetID,
	})
}

// UpdateReportHandler handles PATCH /reports/:id
func (h *MarketHandler) UpdateReportHandler(c *gin.Context) {
	reportID := c.Param("id")
	var req helpers.UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateReportHandler", err)
		return
	}

	report, err := h.market.UpdateReportStatus(c.Request.Context(), reportID, req.Status)
	if err != nil {
		helpers.RespondError(c, "UpdateReportHandler", err, "", map[string]any{"report_id": reportID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, report, "report updated successfully")
}
