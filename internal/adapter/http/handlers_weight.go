package adapthttp

import (
	"net/http"

	"caltrack/internal/app"
	"caltrack/internal/domain"
)

// inUnit converts stored kilogram weights for display.
func inUnit(items []domain.WeightEntry, u domain.WeightUnit) []domain.WeightEntry {
	for i := range items {
		items[i].Weight = u.FromKg(items[i].Weight)
	}
	return items
}

func (s *Server) handleListWeights(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	unit, err := domain.ParseWeightUnit(r.URL.Query().Get("unit"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	items, err := s.svc.Weights.ListRecent(r.Context(), userID, intQuery(r, "limit", app.DefaultWeightLimit))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inUnit(items, unit))
}

func (s *Server) handleLogWeight(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID int64   `json:"user_id"`
		Date   string  `json:"date"`
		Weight float64 `json:"weight"`
		Unit   string  `json:"unit"`
		Note   *string `json:"note"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	unit, err := domain.ParseWeightUnit(body.Unit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	entry, err := s.svc.Weights.Log(r.Context(), body.UserID, body.Date, unit.ToKg(body.Weight), body.Note)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	entry.Weight = unit.FromKg(entry.Weight)
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleDeleteWeight(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.svc.Weights.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "deleted"})
}
