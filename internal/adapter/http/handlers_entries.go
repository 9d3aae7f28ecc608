package adapthttp

import (
	"errors"
	"net/http"
	"strconv"

	"caltrack/internal/app"
)

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	q := r.URL.Query()
	entries, err := s.svc.Entries.List(r.Context(), userID, q.Get("date_from"), q.Get("date_to"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	summary, err := s.svc.Nutrition.Daily(r.Context(), userID, r.PathValue("date"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	var body app.NewEntry
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	e, err := s.svc.Entries.Create(r.Context(), body)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (s *Server) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	servings, err := strconv.ParseFloat(r.URL.Query().Get("servings"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("servings must be a number"))
		return
	}
	e, err := s.svc.Entries.UpdateServings(r.Context(), id, servings)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.svc.Entries.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "deleted"})
}

func (s *Server) handleWeekly(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	week, err := s.svc.Nutrition.Weekly(r.Context(), userID, r.URL.Query().Get("start_date"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"start_date":  week.StartDate,
		"end_date":    week.EndDate,
		"daily_stats": week.ByDate(),
	})
}
