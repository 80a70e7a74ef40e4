package reports

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/de-tools/odoo-reporter/pkg/adapters"
	"github.com/de-tools/odoo-reporter/pkg/export/excel"
	"github.com/de-tools/odoo-reporter/pkg/models/api"
	"github.com/de-tools/odoo-reporter/pkg/models/domain"
	"github.com/de-tools/odoo-reporter/pkg/services/report"
	"github.com/rs/zerolog"
)

const errNoData = "No data available to generate Excel report."

// ServiceFactory constructs a fresh report service for one request. Each
// invocation re-reads configuration and builds its own client; a factory
// error means the configuration is unusable.
type ServiceFactory func(ctx context.Context) (report.Service, error)

type Handler struct {
	newService ServiceFactory
}

func NewHandler(factory ServiceFactory) *Handler {
	return &Handler{newService: factory}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, api.Health{
		Status:  "Backend is running",
		Message: "Odoo Reporter API",
	})
}

func (h *Handler) GetReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reports, ok := h.generate(w, r)
	if !ok {
		return
	}

	writeJSON(ctx, w, http.StatusOK, adapters.MapReportsDomainToApi(reports))
}

func (h *Handler) GetReportsExcel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	reports, ok := h.generate(w, r)
	if !ok {
		return
	}

	if len(reports) == 0 {
		writeJSON(ctx, w, http.StatusBadRequest, api.Error{Error: errNoData})
		return
	}

	content, err := excel.RenderBase64(reports)
	if err != nil {
		logger.Error().Err(err).Msg("failed to render excel report")
		writeJSON(ctx, w, http.StatusInternalServerError, api.Error{Error: err.Error()})
		return
	}

	writeJSON(ctx, w, http.StatusOK, api.ExcelFile{FileContent: content})
}

// generate builds the service and runs report generation, writing the error
// response itself when either step fails.
func (h *Handler) generate(w http.ResponseWriter, r *http.Request) ([]domain.Report, bool) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	svc, err := h.newService(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("reporter configuration error")
		writeJSON(ctx, w, http.StatusBadRequest, api.Error{Error: err.Error()})
		return nil, false
	}

	reports, err := svc.GenerateReports(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("report generation failed")
		writeJSON(ctx, w, http.StatusInternalServerError, api.Error{Error: err.Error()})
		return nil, false
	}
	return reports, true
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}
