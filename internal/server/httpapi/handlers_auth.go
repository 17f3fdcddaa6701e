package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/paharpur/siteadmin/internal/common"
	"github.com/paharpur/siteadmin/internal/server/models"
)

// userProfile is the wire shape of an admin account.
type userProfile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func toProfile(u *models.User) userProfile {
	return userProfile{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Token   string      `json:"token"`
	User    userProfile `json:"user"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyResponse struct {
	Success bool        `json:"success"`
	User    userProfile `json:"user"`
}

type adminsResponse struct {
	Success bool          `json:"success"`
	Admins  []userProfile `json:"admins"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	token, user, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeMessage(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Success: true, Token: token, User: toProfile(user)})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if _, err := s.users.Register(r.Context(), req.Username, req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			writeMessage(w, http.StatusConflict, "username or email already taken")
		case errors.Is(err, common.ErrorInternal):
			writeMessage(w, http.StatusInternalServerError, "internal error")
		default:
			writeMessage(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	writeMessage(w, http.StatusCreated, "account created")
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	user, err := s.users.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			// account deleted since the token was issued
			writeMessage(w, http.StatusUnauthorized, "unknown account")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, verifyResponse{Success: true, User: toProfile(user)})
}

// handleListAdmins serves the accounts page: every registered admin,
// without password hashes.
func (s *Server) handleListAdmins(w http.ResponseWriter, r *http.Request) {
	items, err := s.users.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	admins := make([]userProfile, 0, len(items))
	for i := range items {
		admins = append(admins, toProfile(&items[i]))
	}
	writeJSON(w, http.StatusOK, adminsResponse{Success: true, Admins: admins})
}

// handleLogout acknowledges the notification. Tokens are stateless, so there
// is nothing to revoke server-side; the client has already dropped its copy.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK, "logged out")
}
