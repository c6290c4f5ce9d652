package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"warotator/internal/database"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

func (s *Server) adminRoutes(r chi.Router) {
	r.Route("/groups", func(r chi.Router) {
		r.Get("/", s.handlerListGroups)
		r.Post("/", s.handlerCreateGroup)
		r.Route("/{id}", func(r chi.Router) {
			r.Patch("/", s.handlerUpdateGroup)
			r.Delete("/", s.handlerDeleteGroup)
			r.Post("/activate", s.handlerSetGroupActive(true))
			r.Post("/deactivate", s.handlerSetGroupActive(false))
			r.Get("/numbers", s.handlerListNumbers)
			r.Post("/numbers", s.handlerCreateNumber)
			r.Get("/rotation", s.handlerRotation)
		})
	})
	r.Route("/numbers/{id}", func(r chi.Router) {
		r.Patch("/", s.handlerUpdateNumber)
		r.Delete("/", s.handlerDeleteNumber)
		r.Post("/activate", s.handlerSetNumberActive(true))
		r.Post("/deactivate", s.handlerSetNumberActive(false))
	})
}

func (s *Server) handlerListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := s.admin.ListGroups(r.Context())
	if err != nil {
		writeAdminError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": nonNil(groups)})
}

func (s *Server) handlerCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req CreateGroupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeAdminError(w, err)
		return
	}
	g, err := s.admin.CreateGroup(r.Context(), req)
	if err != nil {
		writeAdminError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

func (s *Server) handlerUpdateGroup(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeAdminError(w, err)
		return
	}
	var req UpdateGroupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeAdminError(w, err)
		return
	}
	g, err := s.admin.UpdateGroup(r.Context(), id, req)
	if err != nil {
		writeAdminError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handlerSetGroupActive(active bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeAdminError(w, err)
			return
		}
		g, err := s.admin.SetGroupActive(r.Context(), id, active)
		if err != nil {
			writeAdminError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, g)
	}
}

func (s *Server) handlerDeleteGroup(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeAdminError(w, err)
		return
	}
	if err := s.admin.DeleteGroup(r.Context(), id); err != nil {
		writeAdminError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlerListNumbers(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeAdminError(w, err)
		return
	}
	numbers, err := s.admin.ListNumbers(r.Context(), id)
	if err != nil {
		writeAdminError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": nonNil(numbers)})
}

func (s *Server) handlerRotation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeAdminError(w, err)
		return
	}
	numbers, err := s.admin.Rotation(r.Context(), id)
	if err != nil {
		writeAdminError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": nonNil(numbers)})
}

func (s *Server) handlerCreateNumber(w http.ResponseWriter, r *http.Request) {
	groupID, err := pathID(r)
	if err != nil {
		writeAdminError(w, err)
		return
	}
	var req CreateNumberRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeAdminError(w, err)
		return
	}
	n, err := s.admin.CreateNumber(r.Context(), groupID, req)
	if err != nil {
		writeAdminError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, n)
}

func (s *Server) handlerUpdateNumber(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeAdminError(w, err)
		return
	}
	var req UpdateNumberRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeAdminError(w, err)
		return
	}
	n, err := s.admin.UpdateNumber(r.Context(), id, req)
	if err != nil {
		writeAdminError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (s *Server) handlerSetNumberActive(active bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeAdminError(w, err)
			return
		}
		n, err := s.admin.SetNumberActive(r.Context(), id, active)
		if err != nil {
			writeAdminError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, n)
	}
}

func (s *Server) handlerDeleteNumber(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeAdminError(w, err)
		return
	}
	if err := s.admin.DeleteNumber(r.Context(), id); err != nil {
		writeAdminError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: id is not a uuid", ErrInvalidInput)
	}
	return id, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if dec.Decode(&struct{}{}) != io.EOF {
		return fmt.Errorf("%w: body must hold a single json object", ErrInvalidInput)
	}
	return nil
}

func writeAdminError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, database.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, database.ErrConflict):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, database.ErrInUse):
		writeError(w, http.StatusConflict, "has recorded clicks, deactivate it instead")
	default:
		slog.Error("admin request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
