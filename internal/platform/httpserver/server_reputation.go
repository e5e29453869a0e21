package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	reputationerrors "quorum/contexts/governance-community/reputation-engine/domain/errors"
	reputationhttp "quorum/contexts/governance-community/reputation-engine/transport/http"
)

func writeReputationError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, reputationhttp.ErrorResponse{Code: code, Message: message})
}

func writeReputationDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reputationerrors.ErrInvalidRequest),
		errors.Is(err, reputationerrors.ErrInvalidCategory),
		errors.Is(err, reputationerrors.ErrInvalidVoteWeight),
		errors.Is(err, reputationerrors.ErrInvalidRoleLevel):
		writeReputationError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, reputationerrors.ErrCannotVoteOnSelf):
		writeReputationError(w, http.StatusUnprocessableEntity, "self_vote", err.Error())
	case errors.Is(err, reputationerrors.ErrUserNotFound):
		writeReputationError(w, http.StatusNotFound, "user_not_found", err.Error())
	case errors.Is(err, reputationerrors.ErrUserExists):
		writeReputationError(w, http.StatusConflict, "user_exists", err.Error())
	case errors.Is(err, reputationerrors.ErrAccountTooNew),
		errors.Is(err, reputationerrors.ErrInsufficientReputation),
		errors.Is(err, reputationerrors.ErrRoleRequirementsNotMet):
		writeReputationError(w, http.StatusForbidden, "requirements_not_met", err.Error())
	case errors.Is(err, reputationerrors.ErrCooldownActive),
		errors.Is(err, reputationerrors.ErrDailyLimitExceeded):
		writeReputationError(w, http.StatusTooManyRequests, "rate_limited", err.Error())
	case errors.Is(err, reputationerrors.ErrNumericalOverflow),
		errors.Is(err, reputationerrors.ErrNegativeReputation):
		writeReputationError(w, http.StatusUnprocessableEntity, "arithmetic_bounds", err.Error())
	case errors.Is(err, reputationerrors.ErrDecayDisabled),
		errors.Is(err, reputationerrors.ErrNoActivityToDecay):
		writeReputationError(w, http.StatusConflict, "decay_not_applicable", err.Error())
	case errors.Is(err, reputationerrors.ErrAchievementAlreadyAwarded),
		errors.Is(err, reputationerrors.ErrAchievementNotHeld):
		writeReputationError(w, http.StatusConflict, "achievement_conflict", err.Error())
	case errors.Is(err, reputationerrors.ErrInvalidConfiguration),
		errors.Is(err, reputationerrors.ErrInvalidCategoryWeights),
		errors.Is(err, reputationerrors.ErrInvalidRoleThresholds):
		writeReputationError(w, http.StatusInternalServerError, "invalid_configuration", err.Error())
	default:
		writeReputationError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func requireReputationAuthorization(w http.ResponseWriter, r *http.Request) bool {
	authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		writeReputationError(w, http.StatusUnauthorized, "unauthorized", "Authorization bearer token is required")
		return false
	}
	return true
}

func (s *Server) requireReputationAdmin(w http.ResponseWriter, r *http.Request) bool {
	token := strings.TrimSpace(r.Header.Get("X-Admin-Token"))
	if s.adminToken == "" || token != s.adminToken {
		writeReputationError(w, http.StatusForbidden, "admin_required", "valid X-Admin-Token header is required")
		return false
	}
	return true
}

func (s *Server) handleReputationInitializeUser(w http.ResponseWriter, r *http.Request) {
	if !requireReputationAuthorization(w, r) {
		return
	}

	var req reputationhttp.InitializeUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeReputationError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		req.UserID = r.Header.Get("X-User-Id")
	}

	resp, err := s.reputation.Handler.InitializeUserHandler(r.Context(), req)
	if err != nil {
		writeReputationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleReputationGetUser(w http.ResponseWriter, r *http.Request) {
	if !requireReputationAuthorization(w, r) {
		return
	}

	resp, err := s.reputation.Handler.GetUserReputationHandler(r.Context(), r.PathValue("user_id"))
	if err != nil {
		writeReputationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReputationCastVote(w http.ResponseWriter, r *http.Request) {
	if !requireReputationAuthorization(w, r) {
		return
	}

	voterID := strings.TrimSpace(r.Header.Get("X-User-Id"))
	if voterID == "" {
		writeReputationError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req reputationhttp.CastVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeReputationError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.reputation.Handler.CastVoteHandler(r.Context(), voterID, req)
	if err != nil {
		writeReputationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReputationApplyDecay(w http.ResponseWriter, r *http.Request) {
	if !requireReputationAuthorization(w, r) || !s.requireReputationAdmin(w, r) {
		return
	}

	resp, err := s.reputation.Handler.ApplyDecayHandler(r.Context(), r.PathValue("user_id"))
	if err != nil {
		writeReputationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReputationPreviewDecay(w http.ResponseWriter, r *http.Request) {
	if !requireReputationAuthorization(w, r) {
		return
	}

	resp, err := s.reputation.Handler.PreviewDecayHandler(r.Context(), r.PathValue("user_id"))
	if err != nil {
		writeReputationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReputationUpdateStreak(w http.ResponseWriter, r *http.Request) {
	if !requireReputationAuthorization(w, r) {
		return
	}

	resp, err := s.reputation.Handler.UpdateStreakHandler(r.Context(), r.PathValue("user_id"))
	if err != nil {
		writeReputationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReputationGetStreak(w http.ResponseWriter, r *http.Request) {
	if !requireReputationAuthorization(w, r) {
		return
	}

	resp, err := s.reputation.Handler.GetStreakInfoHandler(r.Context(), r.PathValue("user_id"))
	if err != nil {
		writeReputationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReputationGetAchievements(w http.ResponseWriter, r *http.Request) {
	if !requireReputationAuthorization(w, r) {
		return
	}

	resp, err := s.reputation.Handler.GetAchievementProgressHandler(r.Context(), r.PathValue("user_id"))
	if err != nil {
		writeReputationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReputationAwardAchievement(w http.ResponseWriter, r *http.Request) {
	if !requireReputationAuthorization(w, r) || !s.requireReputationAdmin(w, r) {
		return
	}

	var req reputationhttp.AwardAchievementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeReputationError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.reputation.Handler.AwardAchievementHandler(r.Context(), r.PathValue("user_id"), req)
	if err != nil {
		writeReputationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReputationRevokeAchievement(w http.ResponseWriter, r *http.Request) {
	if !requireReputationAuthorization(w, r) || !s.requireReputationAdmin(w, r) {
		return
	}

	req := reputationhttp.RevokeAchievementRequest{Achievement: r.PathValue("kind")}
	resp, err := s.reputation.Handler.RevokeAchievementHandler(r.Context(), r.PathValue("user_id"), req)
	if err != nil {
		writeReputationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReputationAutoAwardAchievements(w http.ResponseWriter, r *http.Request) {
	if !requireReputationAuthorization(w, r) {
		return
	}

	resp, err := s.reputation.Handler.AutoAwardAchievementsHandler(r.Context(), r.PathValue("user_id"))
	if err != nil {
		writeReputationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReputationRoleUnlocks(w http.ResponseWriter, r *http.Request) {
	if !requireReputationAuthorization(w, r) {
		return
	}

	resp, err := s.reputation.Handler.GetAvailableRoleUnlocksHandler(r.Context(), r.PathValue("user_id"))
	if err != nil {
		writeReputationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReputationCheckRole(w http.ResponseWriter, r *http.Request) {
	if !requireReputationAuthorization(w, r) {
		return
	}

	level, err := strconv.ParseUint(r.PathValue("level"), 10, 8)
	if err != nil {
		writeReputationError(w, http.StatusBadRequest, "invalid_request", "level must be a small integer")
		return
	}

	resp, err := s.reputation.Handler.CheckRoleRequirementsHandler(r.Context(), r.PathValue("user_id"), uint8(level))
	if err != nil {
		writeReputationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReputationClaimRole(w http.ResponseWriter, r *http.Request) {
	if !requireReputationAuthorization(w, r) {
		return
	}

	var req reputationhttp.ClaimRoleUnlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeReputationError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.reputation.Handler.ClaimRoleUnlockHandler(r.Context(), r.PathValue("user_id"), req)
	if err != nil {
		writeReputationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReputationAdjust(w http.ResponseWriter, r *http.Request) {
	if !requireReputationAuthorization(w, r) || !s.requireReputationAdmin(w, r) {
		return
	}

	var req reputationhttp.AdjustReputationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeReputationError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.reputation.Handler.AdjustReputationHandler(r.Context(), r.PathValue("user_id"), req)
	if err != nil {
		writeReputationDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
