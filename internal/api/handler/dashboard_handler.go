package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"credit-dashboard/internal/analytics"
	"credit-dashboard/internal/api/handler/dto"
	"credit-dashboard/internal/domain/portfolio"
	"credit-dashboard/internal/pkg/apperrors"
)

const defaultTopClients = 10

type DashboardHandler struct {
	store      *portfolio.Store
	thresholds analytics.AlertThresholds
	logger     *slog.Logger
}

func NewDashboardHandler(store *portfolio.Store, thresholds analytics.AlertThresholds, l *slog.Logger) *DashboardHandler {
	if store == nil {
		panic("portfolio store cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &DashboardHandler{
		store:      store,
		thresholds: thresholds,
		logger:     l.With("component", "DashboardHandler"),
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":{"message":"Internal server error"}}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func respondError(w http.ResponseWriter, err error) {
	status, message, field := http.StatusInternalServerError, "An unexpected error occurred.", ""
	var validationError *apperrors.ValidationError
	var appErr *apperrors.AppError

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		status, message = http.StatusNotFound, "Resource not found."
	case errors.Is(err, apperrors.ErrInvalidArgument), errors.Is(err, apperrors.ErrValidation):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrInvalidRange):
		status, message = http.StatusBadRequest, err.Error()
	case errors.As(err, &validationError):
		status, message, field = http.StatusBadRequest, validationError.Message, validationError.Field
	case errors.As(err, &appErr):
		message = appErr.Error()
	default:
		slog.Default().Error("Unhandled internal error", "error", err)
	}

	resp := dto.ErrorResponse{
		Error: dto.ErrorDetail{
			Message: message,
			Field:   field,
		},
	}
	respondJSON(w, status, resp)
}

// view resolves the current snapshot and the filtered view for the request.
func (h *DashboardHandler) view(r *http.Request) (*analytics.View, error) {
	snap := h.store.Current()
	filter, err := dto.ParseFilterQuery(r.URL.Query(), snap.GeneratedAt)
	if err != nil {
		return nil, err
	}
	return analytics.NewView(snap, filter)
}

func limitFromQuery(r *http.Request, fallback int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: limit must be a positive integer", apperrors.ErrInvalidArgument)
	}
	return n, nil
}

// GetSummary handles GET /portfolio/summary
// @Summary Portfolio summary
// @Description Returns headline portfolio figures for the filtered view: total disbursed, overdue and pending amounts, delinquency rate and the resulting alert level.
// @Tags Portfolio
// @Produce json
// @Param from query string false "Start of disbursement date range (YYYY-MM-DD)"
// @Param to query string false "End of disbursement date range (YYYY-MM-DD)"
// @Param categories query string false "Comma-separated client categories"
// @Param loanStatuses query string false "Comma-separated loan statuses"
// @Param installmentStates query string false "Comma-separated installment states"
// @Success 200 {object} dto.SummaryResponse "Summary figures"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /portfolio/summary [get]
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to build filtered view", slog.Any("error", err))
		respondError(w, err)
		return
	}

	summary := view.Summarize()
	level := analytics.EvaluateAlert(summary.DelinquencyRate, h.thresholds)
	h.logger.DebugContext(r.Context(), "Summary computed",
		slog.Float64("delinquencyRate", summary.DelinquencyRate),
		slog.String("alertLevel", string(level)))
	respondJSON(w, http.StatusOK, dto.NewSummaryResponse(summary, level))
}

// GetInstallmentStates handles GET /portfolio/installment-states
// @Summary Installment totals by state
// @Description Returns per-state installment amount totals and counts for the filtered view.
// @Tags Portfolio
// @Produce json
// @Param categories query string false "Comma-separated client categories"
// @Param installmentStates query string false "Comma-separated installment states"
// @Success 200 {object} dto.InstallmentStatesResponse "Totals grouped by installment state"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /portfolio/installment-states [get]
func (h *DashboardHandler) GetInstallmentStates(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewInstallmentStatesResponse(view.ByInstallmentState()))
}

// GetClientCategories handles GET /portfolio/client-categories
// @Summary Loan principal by client category
// @Description Returns loan principal totals and counts grouped by client category for the filtered view.
// @Tags Portfolio
// @Produce json
// @Param from query string false "Start of disbursement date range (YYYY-MM-DD)"
// @Param to query string false "End of disbursement date range (YYYY-MM-DD)"
// @Param categories query string false "Comma-separated client categories"
// @Param loanStatuses query string false "Comma-separated loan statuses"
// @Success 200 {object} dto.ClientCategoriesResponse "Totals grouped by client category"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /portfolio/client-categories [get]
func (h *DashboardHandler) GetClientCategories(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewClientCategoriesResponse(view.ByClientCategory()))
}

// GetMonthlyDisbursements handles GET /portfolio/monthly-disbursements
// @Summary Monthly disbursement series
// @Description Returns loan disbursement totals grouped by calendar month, ordered chronologically.
// @Tags Portfolio
// @Produce json
// @Param from query string false "Start of disbursement date range (YYYY-MM-DD)"
// @Param to query string false "End of disbursement date range (YYYY-MM-DD)"
// @Param categories query string false "Comma-separated client categories"
// @Param loanStatuses query string false "Comma-separated loan statuses"
// @Success 200 {object} dto.MonthlyDisbursementsResponse "Monthly disbursement totals"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /portfolio/monthly-disbursements [get]
func (h *DashboardHandler) GetMonthlyDisbursements(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewMonthlyDisbursementsResponse(view.MonthlyDisbursements()))
}

// GetLoanStatuses handles GET /portfolio/loan-statuses
// @Summary Loan count by status
// @Description Returns loan counts grouped by loan status for the filtered view.
// @Tags Portfolio
// @Produce json
// @Param from query string false "Start of disbursement date range (YYYY-MM-DD)"
// @Param to query string false "End of disbursement date range (YYYY-MM-DD)"
// @Param categories query string false "Comma-separated client categories"
// @Param loanStatuses query string false "Comma-separated loan statuses"
// @Success 200 {object} dto.LoanStatusesResponse "Loan counts grouped by status"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /portfolio/loan-statuses [get]
func (h *DashboardHandler) GetLoanStatuses(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewLoanStatusesResponse(view.LoanStatusDistribution()))
}

// GetTopActiveClients handles GET /portfolio/clients/top-active
// @Summary Most active clients
// @Description Returns the clients with the most active loans, ordered by loan count descending.
// @Tags Clients
// @Produce json
// @Param limit query int false "Maximum number of clients to return" default(10)
// @Param categories query string false "Comma-separated client categories"
// @Success 200 {object} dto.TopActiveClientsResponse "Most active clients"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /portfolio/clients/top-active [get]
func (h *DashboardHandler) GetTopActiveClients(w http.ResponseWriter, r *http.Request) {
	limit, err := limitFromQuery(r, defaultTopClients)
	if err != nil {
		respondError(w, err)
		return
	}
	view, err := h.view(r)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewTopActiveClientsResponse(view.TopActiveClients(limit)))
}

// GetTopDelinquentClients handles GET /portfolio/delinquency/top-clients
// @Summary Clients with the largest overdue debt
// @Description Returns clients ranked by overdue installment total. Clients are ordered ascending so the worst debtor appears last.
// @Tags Delinquency
// @Produce json
// @Param limit query int false "Maximum number of clients to return" default(10)
// @Param categories query string false "Comma-separated client categories"
// @Success 200 {object} dto.TopDelinquentResponse "Clients ranked by overdue debt"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /portfolio/delinquency/top-clients [get]
func (h *DashboardHandler) GetTopDelinquentClients(w http.ResponseWriter, r *http.Request) {
	limit, err := limitFromQuery(r, defaultTopClients)
	if err != nil {
		respondError(w, err)
		return
	}
	view, err := h.view(r)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewTopDelinquentResponse(view.TopDelinquentClients(limit)))
}

// GetDelinquencyAging handles GET /portfolio/delinquency/aging
// @Summary Overdue aging buckets
// @Description Returns overdue installment totals distributed across fixed day-ranges. All buckets are always present, including empty ones.
// @Tags Delinquency
// @Produce json
// @Param categories query string false "Comma-separated client categories"
// @Success 200 {object} dto.AgingResponse "Overdue amounts by aging bucket"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /portfolio/delinquency/aging [get]
func (h *DashboardHandler) GetDelinquencyAging(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewAgingResponse(view.AgingBuckets()))
}

// GetOverdueDetail handles GET /portfolio/delinquency/overdue-detail
// @Summary Overdue installment detail
// @Description Returns every overdue installment in the filtered view, worst first, together with aggregate overdue statistics.
// @Tags Delinquency
// @Produce json
// @Param categories query string false "Comma-separated client categories"
// @Success 200 {object} dto.OverdueDetailResponse "Overdue installments and statistics"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /portfolio/delinquency/overdue-detail [get]
func (h *DashboardHandler) GetOverdueDetail(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r)
	if err != nil {
		respondError(w, err)
		return
	}
	installments, stats := view.OverdueDetail()
	respondJSON(w, http.StatusOK, dto.NewOverdueDetailResponse(installments, stats))
}

// GetCollectionProjection handles GET /portfolio/collections/projection
// @Summary Expected collections by week
// @Description Returns pending installment totals due within the projection horizon, grouped by ISO week.
// @Tags Collections
// @Produce json
// @Param categories query string false "Comma-separated client categories"
// @Success 200 {object} dto.CollectionProjectionResponse "Weekly expected collections"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /portfolio/collections/projection [get]
func (h *DashboardHandler) GetCollectionProjection(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewCollectionProjectionResponse(view.CollectionProjection()))
}
