package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/jmylchreest/sartor/internal/harmony"
	"github.com/jmylchreest/sartor/internal/suggest"
	"github.com/jmylchreest/sartor/internal/wardrobe"
)

// suggestRequest tunes one suggestion call. Both fields are optional;
// an empty body asks for the default count of casual suggestions.
type suggestRequest struct {
	Style string `json:"style"`
	Count int    `json:"count" validate:"omitempty,min=1,max=50"`
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := validateStruct(req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	style := harmony.StyleCasual
	if req.Style != "" {
		parsed, err := harmony.ParseStyle(req.Style)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		style = parsed
	}
	count := req.Count
	if count <= 0 {
		count = s.defaultCount
	}

	items, err := s.store.ListItems(r.Context(), "")
	if err != nil {
		s.log.Error("listing items failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to load wardrobe")
		return
	}

	// A fresh generator per request keeps suggestion handling safe for
	// concurrent callers.
	gen := suggest.NewWithConfig(nil, s.suggestCfg)
	candidates := gen.Generate(wardrobe.Partition(items), style, count)
	s.respondJSON(w, http.StatusOK, candidates)
}
