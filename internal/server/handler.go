package server

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/fleetpaper/settlement-audit/internal/batch"
	"github.com/fleetpaper/settlement-audit/internal/report"
	"github.com/fleetpaper/settlement-audit/internal/repository"
	"github.com/fleetpaper/settlement-audit/internal/settlement"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler handles batch upload, aggregation and filter requests
type Handler struct {
	store       *batch.Store
	aggregator  *report.Aggregator
	rangeFilter *report.RangeFilter
	excel       *report.ExcelWriter
	history     *repository.HistoryRepository
	logger      *zap.Logger
}

// NewHandler creates a new batch handler
func NewHandler(
	store *batch.Store,
	aggregator *report.Aggregator,
	rangeFilter *report.RangeFilter,
	excel *report.ExcelWriter,
	history *repository.HistoryRepository,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		store:       store,
		aggregator:  aggregator,
		rangeFilter: rangeFilter,
		excel:       excel,
		history:     history,
		logger:      logger,
	}
}

// UploadBatch stores an uploaded file set under a batch id. A request
// without a batch_id mints one; a non-empty upload under an existing id
// fully replaces its prior file list. An empty upload against a known
// batch leaves it untouched, so recompute requests can omit the files.
func (h *Handler) UploadBatch(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}

	batchID := c.PostForm("batch_id")
	files := form.File["files"]

	if len(files) == 0 {
		if docs := h.store.Get(batchID); len(docs) > 0 {
			c.JSON(http.StatusOK, gin.H{"batch_id": batchID, "file_count": len(docs)})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files uploaded"})
		return
	}

	documents := make([]batch.Document, 0, len(files))
	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("failed to open %s", file.Filename)})
			return
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("failed to read %s", file.Filename)})
			return
		}
		documents = append(documents, batch.Document{
			Name: filepath.Base(file.Filename),
			Data: data,
		})
	}

	batchID = h.store.Put(batchID, documents)

	h.logger.Info("Batch uploaded",
		zap.String("batch_id", batchID),
		zap.Int("file_count", len(documents)))

	c.JSON(http.StatusOK, gin.H{"batch_id": batchID, "file_count": len(documents)})
}

// GetReport aggregates one field across the batch.
func (h *Handler) GetReport(c *gin.Context) {
	batchID := c.Param("id")

	field, err := settlement.ParseField(c.DefaultQuery("field", string(settlement.FieldGross)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	documents := h.store.Get(batchID)
	if len(documents) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no documents to operate on"})
		return
	}

	rep := h.aggregator.Aggregate(documents, field)
	h.recordRun(batchID, rep)

	c.JSON(http.StatusOK, gin.H{"batch_id": batchID, "report": rep})
}

// ExportReport aggregates one field and streams the result as a workbook.
func (h *Handler) ExportReport(c *gin.Context) {
	batchID := c.Param("id")

	field, err := settlement.ParseField(c.DefaultQuery("field", string(settlement.FieldGross)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	documents := h.store.Get(batchID)
	if len(documents) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no documents to operate on"})
		return
	}

	rep := h.aggregator.Aggregate(documents, field)
	h.recordRun(batchID, rep)

	workbook, err := h.excel.Write(rep)
	if err != nil {
		h.logger.Error("Failed to build Excel report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
		return
	}
	defer workbook.Close()

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		h.logger.Error("Failed to serialize Excel report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
		return
	}

	filename := fmt.Sprintf("settlement-%s.xlsx", field)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// FilterRequest carries the user-entered pickup-date bounds.
type FilterRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FilterBatch prunes the batch in place to the pickup-date range.
func (h *Handler) FilterBatch(c *gin.Context) {
	batchID := c.Param("id")

	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if len(h.store.Get(batchID)) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no documents to operate on"})
		return
	}

	result := h.rangeFilter.Apply(batchID, req.Start, req.End)
	c.JSON(http.StatusOK, result)
}

// DeleteBatch removes the batch entirely. Idempotent.
func (h *Handler) DeleteBatch(c *gin.Context) {
	h.store.Remove(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// ListHistory returns recent report runs, newest first.
func (h *Handler) ListHistory(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}
	if limit > 100 {
		limit = 100
	}

	runs, err := h.history.ListRecent(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}
	if runs == nil {
		runs = []*repository.ReportRun{}
	}

	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

// recordRun persists the headline figures of an aggregation. History is
// best-effort: a storage failure never fails the request.
func (h *Handler) recordRun(batchID string, rep *report.Report) {
	if h.history == nil {
		return
	}
	run := &repository.ReportRun{
		BatchID:      batchID,
		Field:        string(rep.Field),
		FileCount:    len(rep.Rows),
		Total:        rep.Total,
		MissingCount: rep.Missing,
	}
	if err := h.history.Record(run); err != nil {
		h.logger.Warn("Failed to record report run", zap.Error(err))
	}
}
