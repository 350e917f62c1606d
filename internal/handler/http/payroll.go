package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	// Attendance-level lines
	CalculateLine(w http.ResponseWriter, r *http.Request)
	GetLine(w http.ResponseWriter, r *http.Request)
	ListLinesByDate(w http.ResponseWriter, r *http.Request)

	// Manual adjustments
	CreateRewardPenalty(w http.ResponseWriter, r *http.Request)
	DeleteRewardPenalty(w http.ResponseWriter, r *http.Request)
	ListRewardPenaltiesByUser(w http.ResponseWriter, r *http.Request)

	// Monthly statements
	GenerateMonthly(w http.ResponseWriter, r *http.Request)
	GetStatement(w http.ResponseWriter, r *http.Request)
	GetMyStatement(w http.ResponseWriter, r *http.Request)
	ListStatements(w http.ResponseWriter, r *http.Request)
	UpdateStatement(w http.ResponseWriter, r *http.Request)
	GetMonthlySummary(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// CalculateLine implements PayrollHandler.
func (h *payrollHandlerImpl) CalculateLine(w http.ResponseWriter, r *http.Request) {
	req := payroll.CalculateLineRequest{AttendanceID: chi.URLParam(r, "attendanceID")}

	result, err := h.payrollService.CalculateForAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll line calculated", result)
}

// GetLine implements PayrollHandler.
func (h *payrollHandlerImpl) GetLine(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetLine(r.Context(), chi.URLParam(r, "lineID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListLinesByDate implements PayrollHandler.
func (h *payrollHandlerImpl) ListLinesByDate(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListLinesByDate(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateRewardPenalty implements PayrollHandler.
func (h *payrollHandlerImpl) CreateRewardPenalty(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateRewardPenaltyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.CreatedBy = middleware.UserID(r)

	result, err := h.payrollService.CreateRewardPenalty(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Adjustment recorded successfully", result)
}

// DeleteRewardPenalty implements PayrollHandler.
func (h *payrollHandlerImpl) DeleteRewardPenalty(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.DeleteRewardPenalty(r.Context(), chi.URLParam(r, "adjustmentID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Adjustment deleted successfully", nil)
}

// ListRewardPenaltiesByUser implements PayrollHandler.
func (h *payrollHandlerImpl) ListRewardPenaltiesByUser(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListRewardPenaltiesByUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GenerateMonthly implements PayrollHandler.
func (h *payrollHandlerImpl) GenerateMonthly(w http.ResponseWriter, r *http.Request) {
	var req payroll.GenerateMonthlyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.GenerateMonthly(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll statements generated", result)
}

// GetStatement implements PayrollHandler.
func (h *payrollHandlerImpl) GetStatement(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetStatement(r.Context(), chi.URLParam(r, "statementID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyStatement implements PayrollHandler.
func (h *payrollHandlerImpl) GetMyStatement(w http.ResponseWriter, r *http.Request) {
	month, year, ok := periodFromQuery(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.GetStatementForUser(r.Context(), middleware.UserID(r), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListStatements implements PayrollHandler.
func (h *payrollHandlerImpl) ListStatements(w http.ResponseWriter, r *http.Request) {
	month, year, ok := periodFromQuery(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.ListStatements(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateStatement implements PayrollHandler.
func (h *payrollHandlerImpl) UpdateStatement(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateStatementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "statementID")

	result, err := h.payrollService.UpdateStatement(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Statement updated successfully", result)
}

// GetMonthlySummary implements PayrollHandler.
func (h *payrollHandlerImpl) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	month, year, ok := periodFromQuery(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.GetMonthlySummary(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func periodFromQuery(w http.ResponseWriter, r *http.Request) (month, year int, ok bool) {
	month, errMonth := strconv.Atoi(r.URL.Query().Get("month"))
	year, errYear := strconv.Atoi(r.URL.Query().Get("year"))
	if errMonth != nil || errYear != nil {
		response.BadRequest(w, "month and year query parameters are required", nil)
		return 0, 0, false
	}
	return month, year, true
}
