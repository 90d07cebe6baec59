package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/jmylchreest/sartor/internal/colour"
	"github.com/jmylchreest/sartor/internal/storage"
	"github.com/jmylchreest/sartor/internal/wardrobe"
)

// createItemRequest accepts either a hex colour or a raw HSL triple.
// When both are present the hex wins.
type createItemRequest struct {
	Category string      `json:"category" validate:"required"`
	Hex      string      `json:"hex" validate:"omitempty,hexcolor"`
	HSL      *colour.HSL `json:"hsl"`
	Label    string      `json:"label" validate:"omitempty,max=120"`
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	var category wardrobe.Category
	if raw := r.URL.Query().Get("category"); raw != "" {
		cat, err := wardrobe.ParseCategory(raw)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		category = cat
	}

	items, err := s.store.ListItems(r.Context(), category)
	if err != nil {
		s.log.Error("listing items failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	s.respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := validateStruct(req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	cat, err := wardrobe.ParseCategory(req.Category)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var (
		hsl colour.HSL
		hex string
	)
	switch {
	case req.Hex != "":
		rgb, err := colour.ParseHex(req.Hex)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		hsl = colour.RGBToHSL(rgb)
		hex = rgb.Hex()
	case req.HSL != nil:
		if err := req.HSL.Validate(); err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		hsl = *req.HSL
		hex = hsl.RGB().Hex()
	default:
		s.respondError(w, http.StatusBadRequest, "either hex or hsl is required")
		return
	}

	id, err := storage.NewID()
	if err != nil {
		s.log.Error("generating item id failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	item := wardrobe.Item{
		ID:        id,
		Category:  cat,
		Colour:    hsl,
		Hex:       hex,
		Label:     req.Label,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.AddItem(r.Context(), item); err != nil {
		s.log.Error("storing item failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to create item")
		return
	}
	s.respondJSON(w, http.StatusCreated, item)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.DeleteItem(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "item not found")
			return
		}
		s.log.Error("deleting item failed", zap.Error(err), zap.String("id", id))
		s.respondError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
