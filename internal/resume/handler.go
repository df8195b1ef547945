package resume

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/interview-coach/backend/internal/models"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// RankDomains scores resume text against every known domain and
// returns the top matches, best first.
func (h *Handler) RankDomains(w http.ResponseWriter, r *http.Request) {
	var req models.DomainRankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "text is required"})
		return
	}

	writeJSON(w, http.StatusOK, models.DomainRankResponse{TopDomains: RankDomains(req.Text)})
}

// ListDomains returns every domain the classifier knows about.
func (h *Handler) ListDomains(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"domains": Domains()})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
