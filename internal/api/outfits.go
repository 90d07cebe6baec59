package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/jmylchreest/sartor/internal/harmony"
	"github.com/jmylchreest/sartor/internal/storage"
	"github.com/jmylchreest/sartor/internal/wardrobe"
)

// saveOutfitRequest persists a previously generated candidate. The
// server assigns a fresh id and save timestamp.
type saveOutfitRequest struct {
	Items       []wardrobe.Item `json:"items" validate:"required,min=2"`
	Score       float64         `json:"score"`
	Explanation string          `json:"explanation"`
	Details     harmony.Details `json:"details"`
	Style       string          `json:"style" validate:"required"`
}

func (s *Server) handleListOutfits(w http.ResponseWriter, r *http.Request) {
	outfits, err := s.store.ListOutfits(r.Context())
	if err != nil {
		s.log.Error("listing outfits failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to list outfits")
		return
	}
	s.respondJSON(w, http.StatusOK, outfits)
}

func (s *Server) handleSaveOutfit(w http.ResponseWriter, r *http.Request) {
	var req saveOutfitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := validateStruct(req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	style, err := harmony.ParseStyle(req.Style)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := storage.NewID()
	if err != nil {
		s.log.Error("generating outfit id failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to save outfit")
		return
	}

	saved := storage.SavedOutfit{
		ID:          id,
		Style:       style,
		Score:       req.Score,
		Explanation: req.Explanation,
		Items:       req.Items,
		Details:     req.Details,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.SaveOutfit(r.Context(), saved); err != nil {
		s.log.Error("saving outfit failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to save outfit")
		return
	}
	s.respondJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleDeleteOutfit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.DeleteOutfit(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "outfit not found")
			return
		}
		s.log.Error("deleting outfit failed", zap.Error(err), zap.String("id", id))
		s.respondError(w, http.StatusInternalServerError, "failed to delete outfit")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
