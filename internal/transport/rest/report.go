package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/expense-tracker/internal/domain"
	"github.com/heartmarshall/expense-tracker/internal/service/report"
)

type reportService interface {
	Summary(ctx context.Context) (*report.Summary, error)
	Export(ctx context.Context, input report.ExportInput) (*report.Export, error)
}

// ReportHandler serves the dashboard summary and PDF export.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

type categoryTotalResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

type summaryResponse struct {
	Total       string                  `json:"total"`
	Count       int                     `json:"count"`
	TopCategory string                  `json:"topCategory"`
	Breakdown   []categoryTotalResponse `json:"breakdown"`
	Recent      []expenseResponse       `json:"recent"`
}

// Summary handles GET /api/summary.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.Summary(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	resp := summaryResponse{
		Total:       sum.Total.StringFixed(2),
		Count:       sum.Count,
		TopCategory: sum.TopCategory.String(),
		Breakdown:   make([]categoryTotalResponse, 0, len(sum.Breakdown)),
		Recent:      make([]expenseResponse, 0, len(sum.Recent)),
	}
	for _, ct := range sum.Breakdown {
		resp.Breakdown = append(resp.Breakdown, categoryTotalResponse{
			Category: ct.Category.String(),
			Total:    ct.Total.StringFixed(2),
		})
	}
	for i := range sum.Recent {
		resp.Recent = append(resp.Recent, toExpenseResponse(&sum.Recent[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Export handles GET /api/reports?period=...&start=YYYY-MM-DD&end=YYYY-MM-DD.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := report.ExportInput{Period: domain.PeriodPreset(q.Get("period"))}
	if input.Period == "" {
		input.Period = domain.PeriodCurrentMonth
	}

	var errs []domain.FieldError
	for _, bound := range []struct {
		field string
		dst   **time.Time
	}{
		{"start", &input.Start},
		{"end", &input.End},
	} {
		raw := q.Get(bound.field)
		if raw == "" {
			continue
		}
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: bound.field, Message: "must be YYYY-MM-DD"})
			continue
		}
		*bound.dst = &t
	}
	if len(errs) > 0 {
		writeDomainError(w, r, h.log, domain.NewValidationErrors(errs))
		return
	}

	export, err := h.svc.Export(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(export.Data) //nolint:errcheck
}
