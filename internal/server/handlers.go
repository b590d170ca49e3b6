package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/finguard/finguard/internal/model"
	"github.com/finguard/finguard/internal/validation"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleIntervention implements the Classify-Expense operation. Validation
// failures are the only hard rejections; an unexpected classifier failure
// still answers with a safe low-severity verdict.
func (s *Server) handleIntervention(w http.ResponseWriter, r *http.Request) {
	var req validation.ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		return
	}

	if err := req.Validate(); err != nil {
		var verr *validation.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, verr)
			return
		}
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("intervention pipeline panic",
				"panic", rec,
				"request_id", requestID(r.Context()))
			writeJSON(w, http.StatusInternalServerError, safeVerdict())
		}
	}()

	proposal, snapshot := req.Proposal(time.Now())
	verdict, facts := s.deps.Classifier.Classify(proposal, snapshot)
	verdict = s.deps.Rewriter.RewriteVerdict(r.Context(), proposal, facts, verdict)

	writeJSON(w, http.StatusOK, verdict)
}

// handleInsights implements the Summarize-Period operation.
func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	var req validation.InsightsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		return
	}

	if err := req.Validate(); err != nil {
		var verr *validation.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, verr)
			return
		}
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	snapshot := req.Snapshot()
	result, facts := s.deps.Summarizer.Summarize(snapshot)
	result = s.deps.Rewriter.RewriteInsights(r.Context(), snapshot, facts, result)

	writeJSON(w, http.StatusOK, result)
}

// expenseRequest is the wire form for logging an expense.
type expenseRequest struct {
	UserID      string  `json:"userId"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date,omitempty"`
	Amount      float64 `json:"amount"`
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "date must be an RFC 3339 timestamp")
			return
		}
		date = parsed
	}

	expense := model.Expense{
		UserID:      req.UserID,
		Amount:      req.Amount,
		Category:    model.Category(req.Category),
		Description: req.Description,
		Date:        date,
	}
	if err := s.deps.Store.SaveExpense(r.Context(), &expense); err != nil {
		writeStorageError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, expense)
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	expenses, err := s.deps.Store.RecentExpenses(r.Context(), userID, model.RecentExpenseWindow)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	if expenses == nil {
		expenses = []model.Expense{}
	}

	writeJSON(w, http.StatusOK, expenses)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	profile, err := s.deps.Store.GetProfile(r.Context(), userID)
	if err != nil {
		writeStorageError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	var profile model.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		return
	}
	profile.UserID = mux.Vars(r)["id"]

	if err := s.deps.Store.SaveProfile(r.Context(), &profile); err != nil {
		writeStorageError(w, err)
		return
	}

	saved, err := s.deps.Store.GetProfile(r.Context(), profile.UserID)
	if err != nil {
		writeStorageError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, saved)
}

// handleSnapshot returns the stored state a client needs to populate a
// Classify-Expense request for this user.
func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	snapshot, err := s.deps.Store.SpendingSnapshot(r.Context(), userID, time.Now())
	if err != nil {
		writeStorageError(w, err)
		return
	}

	recents := snapshot.RecentExpenses
	if recents == nil {
		recents = []model.Expense{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"monthlyBudget":   snapshot.MonthlyBudget,
		"monthlySpending": snapshot.MonthlySpending,
		"recentExpenses":  recents,
	})
}

// handleUserInsights runs the Summarize-Period pipeline directly off the
// user's stored month, so clients don't have to assemble the aggregates.
func (s *Server) handleUserInsights(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	snapshot, err := s.deps.Store.InsightsSnapshot(r.Context(), userID, time.Now())
	if err != nil {
		writeStorageError(w, err)
		return
	}

	result, facts := s.deps.Summarizer.Summarize(snapshot)
	result = s.deps.Rewriter.RewriteInsights(r.Context(), snapshot, facts, result)

	writeJSON(w, http.StatusOK, result)
}
