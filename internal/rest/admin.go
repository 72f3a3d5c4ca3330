package rest

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/skillsprout/marketplace-service/internal/config"
	api "github.com/skillsprout/marketplace-service/internal/generated"
)

// checkAdminPIN gates every admin operation. The PIN travels in the
// X-Admin-Pin header and is compared server-side against the configured
// value; the client is never trusted to decide admin access.
func (h *Handler) checkAdminPIN(w http.ResponseWriter, logger logger_lib.LoggerInterface, pin string) bool {
	if subtle.ConstantTimeCompare([]byte(pin), []byte(h.adminPIN)) != 1 {
		logger.Warn("admin PIN mismatch")
		h.writeError(w, "invalid admin PIN", http.StatusForbidden)
		return false
	}

	return true
}

func (h *Handler) AdminGetHobbies(w http.ResponseWriter, r *http.Request, params api.AdminParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AdminGetHobbies")

	if !h.checkAdminPIN(w, logger, params.XAdminPin) {
		return
	}

	hobbies, err := h.repository.AdminGetHobbies(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get hobbies: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get hobbies: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.GetHobbiesResponse{
		Hobbies: toAPIHobbies(*hobbies),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) AdminUpdateHobbyStatus(w http.ResponseWriter, r *http.Request, hobbyId int64, params api.AdminParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AdminUpdateHobbyStatus")

	if !h.checkAdminPIN(w, logger, params.XAdminPin) {
		return
	}

	var req api.AdminUpdateHobbyStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateHobbyStatus(req.Status); err != nil {
		logger.Error(fmt.Sprintf("status validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("status validation failed: %v", err), http.StatusBadRequest)
		return
	}

	if err := h.repository.UpdateHobbyStatus(r.Context(), hobbyId, req.Status); err != nil {
		logger.Error(fmt.Sprintf("failed to update hobby status: %v", err))
		h.writeError(w, fmt.Sprintf("failed to update hobby status: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("hobby %d moderated to %s", hobbyId, req.Status))

	h.writeJSON(w, map[string]string{"status": req.Status}, http.StatusOK)
}

func (h *Handler) AdminToggleFeatured(w http.ResponseWriter, r *http.Request, hobbyId int64, params api.AdminParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AdminToggleFeatured")

	if !h.checkAdminPIN(w, logger, params.XAdminPin) {
		return
	}

	if err := h.repository.ToggleHobbyFeatured(r.Context(), hobbyId); err != nil {
		logger.Error(fmt.Sprintf("failed to toggle featured flag: %v", err))
		h.writeError(w, fmt.Sprintf("failed to toggle featured flag: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (h *Handler) AdminGetUsers(w http.ResponseWriter, r *http.Request, params api.AdminParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AdminGetUsers")

	if !h.checkAdminPIN(w, logger, params.XAdminPin) {
		return
	}

	users, err := h.repository.AdminGetUsers(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get users: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get users: %v", err), http.StatusInternalServerError)
		return
	}

	apiUsers := make([]api.Profile, len(*users))
	for i, user := range *users {
		apiUsers[i] = toAPIProfile(user)
	}

	h.writeJSON(w, apiUsers, http.StatusOK)
}

func (h *Handler) AdminUpdateUser(w http.ResponseWriter, r *http.Request, userId string, params api.AdminParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AdminUpdateUser")

	if !h.checkAdminPIN(w, logger, params.XAdminPin) {
		return
	}

	var req api.AdminUpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateAdminUpdateUser(&req); err != nil {
		logger.Error(fmt.Sprintf("user validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("user validation failed: %v", err), http.StatusBadRequest)
		return
	}

	if err := h.repository.AdminUpdateUser(r.Context(), userId, req.FullName, req.Role); err != nil {
		logger.Error(fmt.Sprintf("failed to update user: %v", err))
		h.writeError(w, fmt.Sprintf("failed to update user: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (h *Handler) AdminDeleteUser(w http.ResponseWriter, r *http.Request, userId string, params api.AdminParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AdminDeleteUser")

	if !h.checkAdminPIN(w, logger, params.XAdminPin) {
		return
	}

	if err := h.repository.AdminDeleteUser(r.Context(), userId); err != nil {
		logger.Error(fmt.Sprintf("failed to delete user: %v", err))
		h.writeError(w, fmt.Sprintf("failed to delete user: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("user %s deleted by admin", userId))

	h.writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (h *Handler) AdminGetTransactions(w http.ResponseWriter, r *http.Request, params api.AdminParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AdminGetTransactions")

	if !h.checkAdminPIN(w, logger, params.XAdminPin) {
		return
	}

	transactions, err := h.repository.AdminGetTransactions(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get transactions: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get transactions: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.GetTransactionsResponse{
		Transactions: toAPITransactions(*transactions),
	}

	h.writeJSON(w, response, http.StatusOK)
}
