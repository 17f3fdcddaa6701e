package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/paharpur/siteadmin/internal/common"
)

type enquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type enquiryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

type statusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleListEnquiries(w http.ResponseWriter, r *http.Request) {
	items, err := s.enquiries.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]enquiryResponse, 0, len(items))
	for _, e := range items {
		out = append(out, enquiryResponse{
			ID:        e.ID,
			Name:      e.Name,
			Email:     e.Email,
			Phone:     e.Phone,
			Message:   e.Message,
			Status:    e.Status,
			CreatedAt: e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleCreateEnquiry accepts a contact-form submission from the public
// site. No authentication.
func (s *Server) handleCreateEnquiry(w http.ResponseWriter, r *http.Request) {
	var req enquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if _, err := s.enquiries.Create(r.Context(), req.Name, req.Email, req.Phone, req.Message); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	writeMessage(w, http.StatusCreated, "enquiry received")
}

func (s *Server) handleUpdateEnquiryStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.enquiries.UpdateStatus(r.Context(), id, req.Status); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeMessage(w, http.StatusNotFound, "enquiry not found")
			return
		}
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	writeMessage(w, http.StatusOK, "enquiry updated")
}

func (s *Server) handleDeleteEnquiry(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.enquiries.Delete(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeMessage(w, http.StatusNotFound, "enquiry not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeMessage(w, http.StatusOK, "enquiry deleted")
}
