package server

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/jonathan/priority-matching/internal/matching"
	"github.com/jonathan/priority-matching/internal/observability"
	"github.com/jonathan/priority-matching/internal/schemas"
	"github.com/jonathan/priority-matching/internal/server/middleware"
	"github.com/jonathan/priority-matching/internal/types"
)

// WillingnessResponse is returned from POST /me/willingness.
type WillingnessResponse struct {
	Message string                   `json:"message"`
	Result  *types.WillingnessResult `json:"result"`
}

// fieldErrorResponse is one schema violation in a 400 body.
type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// respondError maps err to a status and writes it. Internal errors are logged
// and replaced by a generic message.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		observability.FromContext(r.Context()).WithError(err).Error("request failed")
		writeError(w, status, "Internal server error")
		return
	}

	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) {
		details := make([]fieldErrorResponse, 0, len(schemaErr.Errors))
		for _, fe := range schemaErr.Errors {
			details = append(details, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, status, map[string]any{"error": "invalid willingness batch", "details": details})
		return
	}
	writeError(w, status, err.Error())
}

// callerID returns the authenticated employee ID.
func callerID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := middleware.GetEmployeeID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return 0, false
	}
	return id, true
}

// pathID parses a positive integer path parameter. IDs beyond the store's key
// range cannot name a row and yield notFound.
func pathID(r *http.Request, name string, notFound error) (int, error) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil || id <= 0 {
		return 0, &ErrValidation{Field: name, Message: "must be a positive integer"}
	}
	if id > math.MaxInt32 {
		return 0, notFound
	}
	return id, nil
}

func (s *Server) handleListServiceOrders(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := callerID(w, r)
	if !ok {
		return
	}
	orders, err := s.service.ListOwnedByManager(r.Context(), employeeID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (s *Server) handleListAllServiceOrders(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := callerID(w, r)
	if !ok {
		return
	}
	if !s.service.Policy().IsAdmin(employeeID) {
		respondError(w, r, &ErrForbidden{})
		return
	}
	orders, err := s.service.ListAll(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (s *Server) handleGetServiceOrder(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := callerID(w, r)
	if !ok {
		return
	}
	orderID, err := pathID(r, "id", matching.ErrServiceOrderNotFound)
	if err != nil {
		respondError(w, r, err)
		return
	}
	order, err := s.service.GetOwned(r.Context(), orderID, employeeID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (s *Server) handlePriorityList(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := callerID(w, r)
	if !ok {
		return
	}
	orderID, err := pathID(r, "id", matching.ErrServiceOrderNotFound)
	if err != nil {
		respondError(w, r, err)
		return
	}
	list, err := s.service.PriorityList(r.Context(), orderID, employeeID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := callerID(w, r)
	if !ok {
		return
	}
	dashboard, err := s.service.Dashboard(r.Context(), employeeID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}

func (s *Server) handleMatchingItems(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := callerID(w, r)
	if !ok {
		return
	}
	items, err := s.service.ListForEmployee(r.Context(), employeeID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// handleWillingness validates the raw body against the batch schema before
// decoding it, then applies the batch on behalf of the caller.
func (s *Server) handleWillingness(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := callerID(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := schemas.ValidateWillingnessBatch(body); err != nil {
		respondError(w, r, err)
		return
	}

	var batch types.WillingnessBatch
	if err := json.Unmarshal(body, &batch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := batch.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	result, err := s.service.ApplyUpdates(r.Context(), employeeID, batch.Items)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, WillingnessResponse{Message: result.Summary(), Result: result})
}

func (s *Server) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	if _, ok := callerID(w, r); !ok {
		return
	}
	employeeID, err := pathID(r, "id", matching.ErrEmployeeNotFound)
	if err != nil {
		respondError(w, r, err)
		return
	}
	profile, err := s.service.EmployeeProfile(r.Context(), employeeID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
