package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/finguard/finguard/internal/common"
	"github.com/finguard/finguard/internal/model"
	"github.com/finguard/finguard/internal/storage"
	"github.com/finguard/finguard/internal/validation"
)

// apiError is the wire shape of a failed request.
type apiError struct {
	Error   string                  `json:"error"`
	Message string                  `json:"message"`
	Code    string                  `json:"code,omitempty"`
	Fields  []validation.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{
		Error:   http.StatusText(status),
		Message: message,
		Code:    code,
	})
}

// writeValidationError reports every failing field with HTTP 400.
func writeValidationError(w http.ResponseWriter, verr *validation.ValidationError) {
	writeJSON(w, http.StatusBadRequest, apiError{
		Error:   http.StatusText(http.StatusBadRequest),
		Message: verr.Error(),
		Code:    "VALIDATION_ERROR",
		Fields:  verr.Fields,
	})
}

// writeStorageError maps storage failures onto HTTP statuses.
func writeStorageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, model.ErrInvalidProfile):
		writeError(w, http.StatusBadRequest, "INVALID_PROFILE", err.Error())
	case errors.Is(err, storage.ErrInvalidExpense):
		writeError(w, http.StatusBadRequest, "INVALID_EXPENSE", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "STORAGE_ERROR", "storage operation failed")
	}
}

// safeVerdict is the degraded response for an unexpected classifier failure:
// the caller always receives a recommendation, even on HTTP 500.
func safeVerdict() model.Verdict {
	return model.Verdict{
		Severity:       model.SeverityLow,
		Message:        "Unable to fully analyze this expense right now. Proceed thoughtfully and double-check your budget.",
		Recommendation: model.RecommendProceed,
		BudgetAfter:    "0",
		Source:         model.SourceRuleEngine,
	}
}
