package httpapi

import (
	"net/http"
	"strings"
)

type presignResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// handlePresignUpload returns a storage key and presigned PUT URL for the
// filename given in the query string.
func (s *Server) handlePresignUpload(w http.ResponseWriter, r *http.Request) {
	filename := r.URL.Query().Get("filename")
	if strings.TrimSpace(filename) == "" {
		writeMessage(w, http.StatusBadRequest, "filename is required")
		return
	}

	key, url, err := s.assets.GetPresignedPutUrl(r.Context(), filename)
	if err != nil {
		s.logger.Error(r.Context(), "presign failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "could not presign upload")
		return
	}

	writeJSON(w, http.StatusOK, presignResponse{Key: key, URL: url})
}
