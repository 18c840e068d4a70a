package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Fahad-1515/fnol-agent/internal/csvexport"
	"github.com/Fahad-1515/fnol-agent/internal/domain"
	"github.com/Fahad-1515/fnol-agent/internal/service"
	"github.com/Fahad-1515/fnol-agent/internal/xlsxexport"
)

// ClaimHandler handles claim processing and retrieval endpoints.
type ClaimHandler struct {
	claimService service.ClaimService
}

// NewClaimHandler creates a new ClaimHandler.
func NewClaimHandler(claimService service.ClaimService) *ClaimHandler {
	return &ClaimHandler{claimService: claimService}
}

// Process handles POST /api/v1/claims
func (h *ClaimHandler) Process(c *gin.Context) {
	var req struct {
		DocumentName string `json:"document_name"`
		Text         string `json:"text" binding:"required"`
		DryRun       bool   `json:"dry_run"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "text is required")
		return
	}
	if req.DocumentName == "" {
		req.DocumentName = "inline"
	}

	if req.DryRun {
		result := h.claimService.ProcessText(c.Request.Context(), req.DocumentName, req.Text)
		RespondOK(c, result)
		return
	}

	claim, result, err := h.claimService.ProcessAndStore(c.Request.Context(), req.DocumentName, req.Text)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, gin.H{"claim": claim, "result": result})
}

// List handles GET /api/v1/claims
func (h *ClaimHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)
	route := domain.Route(c.Query("route"))

	claims, total, err := h.claimService.List(c.Request.Context(), route, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, claims, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/claims/:id
func (h *ClaimHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid claim id")
		return
	}

	claim, err := h.claimService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, claim)
}

// Delete handles DELETE /api/v1/claims/:id
func (h *ClaimHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid claim id")
		return
	}

	if err := h.claimService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}

// exportBatchSize bounds how many claims one export request pulls.
const exportBatchSize = 10000

// Export handles GET /api/v1/claims/export?format=csv|xlsx
func (h *ClaimHandler) Export(c *gin.Context) {
	route := domain.Route(c.Query("route"))
	claims, _, err := h.claimService.List(c.Request.Context(), route, 0, exportBatchSize)
	if err != nil {
		HandleError(c, err)
		return
	}

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		var buf bytes.Buffer
		buf.Write(csvexport.BOM)
		w := csvexport.NewWriter(&buf)
		if err := w.WriteHeader(); err == nil {
			err = w.WriteClaims(claims)
		}
		w.Flush()
		if err == nil {
			err = w.Error()
		}
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "EXPORT_FAILED", "csv export failed")
			return
		}
		filename := csvexport.BuildFilename("claims")
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())

	case "xlsx":
		var buf bytes.Buffer
		if err := xlsxexport.Write(&buf, claims); err != nil {
			RespondError(c, http.StatusInternalServerError, "EXPORT_FAILED", "xlsx export failed")
			return
		}
		filename := csvexport.SanitizeFilename("claims") + ".xlsx"
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())

	default:
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be csv or xlsx")
	}
}
