package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/paharpur/siteadmin/internal/common"
)

type initiativeRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type initiativeResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	CreatedAt   string `json:"createdAt"`
}

// handleGetSection serves the stored document for one section. A section
// that was never written returns an empty object so the site renders its
// defaults instead of an error page.
func (s *Server) handleGetSection(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		section, err := s.content.GetSection(r.Context(), name)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				writeRaw(w, http.StatusOK, []byte("{}"))
				return
			}
			writeMessage(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeRaw(w, http.StatusOK, section.Payload)
	}
}

// handleUpdateSection stores the request body verbatim as the new section
// document.
func (s *Server) handleUpdateSection(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(r.Body)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "could not read body")
			return
		}

		if err := s.content.UpsertSection(r.Context(), name, json.RawMessage(payload)); err != nil {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		writeMessage(w, http.StatusOK, "section updated")
	}
}

func (s *Server) handleListInitiatives(w http.ResponseWriter, r *http.Request) {
	items, err := s.content.ListInitiatives(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]initiativeResponse, 0, len(items))
	for _, in := range items {
		out = append(out, initiativeResponse{
			ID:          in.ID,
			Title:       in.Title,
			Description: in.Description,
			ImageURL:    in.ImageURL,
			CreatedAt:   in.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateInitiative(w http.ResponseWriter, r *http.Request) {
	var req initiativeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	in, err := s.content.CreateInitiative(r.Context(), req.Title, req.Description, req.ImageURL)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, initiativeResponse{
		ID:          in.ID,
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		CreatedAt:   in.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

func (s *Server) handleUpdateInitiative(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req initiativeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	in, err := s.content.UpdateInitiative(r.Context(), id, req.Title, req.Description, req.ImageURL)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeMessage(w, http.StatusNotFound, "initiative not found")
			return
		}
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, initiativeResponse{
		ID:          in.ID,
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		CreatedAt:   in.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

func (s *Server) handleDeleteInitiative(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.content.DeleteInitiative(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeMessage(w, http.StatusNotFound, "initiative not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeMessage(w, http.StatusOK, "initiative deleted")
}
