package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	reputationengine "quorum/contexts/governance-community/reputation-engine"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "quorum/internal/platform/httpserver/docs"
)

type Server struct {
	mux        *http.ServeMux
	logger     *slog.Logger
	addr       string
	reputation reputationengine.Module
	adminToken string
}

func New(
	reputation reputationengine.Module,
	logger *slog.Logger,
	addr string,
	adminToken string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:        http.NewServeMux(),
		logger:     logger,
		addr:       addr,
		reputation: reputation,
		adminToken: adminToken,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the routing table for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/reputation/v1/users", s.handleReputationInitializeUser)
	s.mux.HandleFunc("GET /api/reputation/v1/users/{user_id}", s.handleReputationGetUser)
	s.mux.HandleFunc("POST /api/reputation/v1/votes", s.handleReputationCastVote)
	s.mux.HandleFunc("POST /api/reputation/v1/users/{user_id}/decay", s.handleReputationApplyDecay)
	s.mux.HandleFunc("GET /api/reputation/v1/users/{user_id}/decay-preview", s.handleReputationPreviewDecay)
	s.mux.HandleFunc("POST /api/reputation/v1/users/{user_id}/streak", s.handleReputationUpdateStreak)
	s.mux.HandleFunc("GET /api/reputation/v1/users/{user_id}/streak", s.handleReputationGetStreak)
	s.mux.HandleFunc("GET /api/reputation/v1/users/{user_id}/achievements", s.handleReputationGetAchievements)
	s.mux.HandleFunc("POST /api/reputation/v1/users/{user_id}/achievements", s.handleReputationAwardAchievement)
	s.mux.HandleFunc("DELETE /api/reputation/v1/users/{user_id}/achievements/{kind}", s.handleReputationRevokeAchievement)
	s.mux.HandleFunc("POST /api/reputation/v1/users/{user_id}/achievements/auto", s.handleReputationAutoAwardAchievements)
	s.mux.HandleFunc("GET /api/reputation/v1/users/{user_id}/role-unlocks", s.handleReputationRoleUnlocks)
	s.mux.HandleFunc("GET /api/reputation/v1/users/{user_id}/role-unlocks/{level}", s.handleReputationCheckRole)
	s.mux.HandleFunc("POST /api/reputation/v1/users/{user_id}/role-claims", s.handleReputationClaimRole)
	s.mux.HandleFunc("POST /api/reputation/v1/users/{user_id}/adjustments", s.handleReputationAdjust)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
