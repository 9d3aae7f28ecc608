package adapthttp

import (
	"errors"
	"net/http"
	"strings"
)

func (s *Server) handleFoodSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if strings.TrimSpace(query) == "" {
		writeError(w, http.StatusBadRequest, errors.New("query is required"))
		return
	}
	res := s.svc.Food.Search(r.Context(), query, intQuery(r, "page", 1))
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleFoodBarcode(w http.ResponseWriter, r *http.Request) {
	f, err := s.svc.Food.Lookup(r.Context(), r.PathValue("barcode"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}
