// Package api exposes the character store and sheet derivation over HTTP.
// The wire format is the character JSON document itself.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/cory-johannsen/sheet/internal/game/catalog"
	"github.com/cory-johannsen/sheet/internal/game/character"
	"github.com/cory-johannsen/sheet/internal/game/sheet"
	"github.com/cory-johannsen/sheet/internal/storage/postgres"
)

// CharacterStore is the persistence surface the handlers need.
// *postgres.CharacterRepository satisfies it.
type CharacterStore interface {
	Create(ctx context.Context, c character.Character) (character.Character, error)
	GetByID(ctx context.Context, id string) (character.Character, error)
	List(ctx context.Context) ([]postgres.Summary, error)
	Update(ctx context.Context, c character.Character) (character.Character, error)
	Delete(ctx context.Context, id string) error
}

// Pinger reports backend health. *postgres.Pool satisfies it.
type Pinger interface {
	Health(ctx context.Context, timeout time.Duration) error
}

// CharacterHandler serves character CRUD and derived-sheet requests.
type CharacterHandler struct {
	store    CharacterStore
	registry *catalog.Registry
	logger   *zap.Logger
}

// NewCharacterHandler creates a CharacterHandler.
//
// Precondition: store, registry, and logger must be non-nil.
func NewCharacterHandler(store CharacterStore, registry *catalog.Registry, logger *zap.Logger) *CharacterHandler {
	return &CharacterHandler{store: store, registry: registry, logger: logger}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *CharacterHandler) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encoding response", zap.Error(err))
	}
}

func (h *CharacterHandler) respondError(w http.ResponseWriter, status int, msg string) {
	h.respondJSON(w, status, errorResponse{Error: msg})
}

// storeError maps repository errors onto HTTP status codes.
func (h *CharacterHandler) storeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, postgres.ErrCharacterNotFound):
		h.respondError(w, http.StatusNotFound, "character not found")
	case errors.Is(err, postgres.ErrCharacterNameTaken):
		h.respondError(w, http.StatusConflict, "character name already taken")
	default:
		h.logger.Error("store operation failed", zap.String("op", op), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *CharacterHandler) decodeCharacter(w http.ResponseWriter, r *http.Request) (character.Character, bool) {
	var c character.Character
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		h.respondError(w, http.StatusBadRequest, "malformed character document: "+err.Error())
		return character.Character{}, false
	}
	if c.Name == "" {
		h.respondError(w, http.StatusBadRequest, "name must not be empty")
		return character.Character{}, false
	}
	return c, true
}

// Create handles POST /api/characters.
//
// Postcondition: On success responds 201 with the stored document, ID assigned.
func (h *CharacterHandler) Create(w http.ResponseWriter, r *http.Request) {
	c, ok := h.decodeCharacter(w, r)
	if !ok {
		return
	}

	created, err := h.store.Create(r.Context(), c)
	if err != nil {
		h.storeError(w, "create", err)
		return
	}
	h.logger.Info("character created",
		zap.String("id", created.ID),
		zap.String("name", created.Name),
	)
	h.respondJSON(w, http.StatusCreated, created)
}

// Get handles GET /api/characters/{id}.
func (h *CharacterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	c, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, "get", err)
		return
	}
	h.respondJSON(w, http.StatusOK, c)
}

// List handles GET /api/characters.
func (h *CharacterHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.store.List(r.Context())
	if err != nil {
		h.storeError(w, "list", err)
		return
	}
	h.respondJSON(w, http.StatusOK, summaries)
}

// Update handles PUT /api/characters/{id}. The document in the body
// replaces the stored one; the path ID wins over any ID in the body.
func (h *CharacterHandler) Update(w http.ResponseWriter, r *http.Request) {
	c, ok := h.decodeCharacter(w, r)
	if !ok {
		return
	}
	c.ID = chi.URLParam(r, "id")

	updated, err := h.store.Update(r.Context(), c)
	if err != nil {
		h.storeError(w, "update", err)
		return
	}
	h.respondJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/characters/{id}.
func (h *CharacterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.Delete(r.Context(), id); err != nil {
		h.storeError(w, "delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Sheet handles GET /api/characters/{id}/sheet, returning the derived
// snapshot without persisting anything.
func (h *CharacterHandler) Sheet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	c, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, "sheet", err)
		return
	}
	h.respondJSON(w, http.StatusOK, sheet.Derive(c, h.registry))
}
