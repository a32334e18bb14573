package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/mindgarden/mindgarden-backend/internal/database"
	"github.com/mindgarden/mindgarden-backend/internal/services"
	"github.com/mindgarden/mindgarden-backend/pkg/utils"
)

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type SigninRequest struct {
	Username string `json:"username"` // username or email
	Password string `json:"password"`
}

type AuthResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Token   string                 `json:"token,omitempty"`
	User    map[string]interface{} `json:"user,omitempty"`
}

// extractBearerToken pulls the token from an "Authorization: Bearer x" header.
func extractBearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// requireAuth validates the session and returns the authenticated user's ID.
// Returns ("", false) if not authenticated. Handlers pass the resolved ID
// explicitly into every owner-scoped query; there is no ambient current user.
func requireAuth(r *http.Request) (string, bool) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		return "", false
	}
	userID, ok, err := services.ValidateSession(token)
	if err != nil || !ok {
		return "", false
	}
	return userID.String(), true
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// Signup registers a new user and opens a session.
func Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, AuthResponse{Success: false, Message: "Invalid request body"})
		return
	}

	if err := utils.ValidateUsername(req.Username); err != nil {
		writeJSON(w, http.StatusBadRequest, AuthResponse{Success: false, Message: err.Error()})
		return
	}
	if len(req.Password) < 8 {
		writeJSON(w, http.StatusBadRequest, AuthResponse{Success: false, Message: "Password must be at least 8 characters"})
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		writeJSON(w, http.StatusBadRequest, AuthResponse{Success: false, Message: "A valid email is required"})
		return
	}

	normalizedUsername := utils.NormalizeUsername(req.Username)

	var existing string
	err := database.PostgresDB.QueryRow(
		"SELECT username FROM users WHERE LOWER(username) = $1 OR LOWER(email) = $2",
		normalizedUsername, email,
	).Scan(&existing)
	if err == nil {
		writeJSON(w, http.StatusConflict, AuthResponse{Success: false, Message: "Username or email is already taken"})
		return
	} else if err != sql.ErrNoRows {
		writeJSON(w, http.StatusInternalServerError, AuthResponse{Success: false, Message: "Database error"})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, AuthResponse{Success: false, Message: "Failed to hash password"})
		return
	}

	userID := uuid.New()
	_, err = database.PostgresDB.Exec(`
		INSERT INTO users (id, username, email, name, password_hash, created_at, is_active)
		VALUES ($1, $2, $3, $4, $5, NOW(), TRUE)
	`, userID, normalizedUsername, email, strings.TrimSpace(req.Name), hashedPassword)
	if err != nil {
		// A concurrent signup can pass the availability check and lose the
		// race on the UNIQUE constraint; that's still a conflict, not a 500.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			writeJSON(w, http.StatusConflict, AuthResponse{Success: false, Message: "Username or email is already taken"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, AuthResponse{Success: false, Message: "Failed to create user"})
		return
	}

	token, err := services.CreateSession(userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, AuthResponse{Success: false, Message: "Failed to create session"})
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{
		Success: true,
		Message: "Account created successfully",
		Token:   token,
		User: map[string]interface{}{
			"id":       userID.String(),
			"username": normalizedUsername,
			"email":    email,
			"name":     strings.TrimSpace(req.Name),
		},
	})
}

// Signin verifies credentials (username or email) and rotates the session.
func Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, AuthResponse{Success: false, Message: "Invalid request body"})
		return
	}

	login := strings.ToLower(strings.TrimSpace(req.Username))
	if login == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, AuthResponse{Success: false, Message: "Username and password are required"})
		return
	}

	var (
		userID       uuid.UUID
		username     string
		email        string
		name         string
		passwordHash string
	)
	err := database.PostgresDB.QueryRow(`
		SELECT id, username, email, name, password_hash FROM users
		WHERE (LOWER(username) = $1 OR LOWER(email) = $1) AND is_active = TRUE
	`, login).Scan(&userID, &username, &email, &name, &passwordHash)
	if err == sql.ErrNoRows {
		writeJSON(w, http.StatusUnauthorized, AuthResponse{Success: false, Message: "Invalid username or password"})
		return
	} else if err != nil {
		writeJSON(w, http.StatusInternalServerError, AuthResponse{Success: false, Message: "Database error"})
		return
	}

	ok, err := utils.VerifyPassword(req.Password, passwordHash)
	if err != nil || !ok {
		writeJSON(w, http.StatusUnauthorized, AuthResponse{Success: false, Message: "Invalid username or password"})
		return
	}

	token, err := services.CreateSession(userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, AuthResponse{Success: false, Message: "Failed to create session"})
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Signed in successfully",
		Token:   token,
		User: map[string]interface{}{
			"id":       userID.String(),
			"username": username,
			"email":    email,
			"name":     name,
		},
	})
}

// Signout invalidates the caller's session. Idempotent.
func Signout(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	_ = services.InvalidateSession(token)
	writeJSON(w, http.StatusOK, AuthResponse{Success: true, Message: "Signed out"})
}

// GetMe returns the profile for the current session.
func GetMe(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	userID, ok, err := services.ValidateSession(token)
	if err != nil || !ok {
		writeJSON(w, http.StatusUnauthorized, AuthResponse{Success: false, Message: "Authentication required"})
		return
	}

	profile, err := services.GetProfileByID(userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, AuthResponse{Success: false, Message: "Database error"})
		return
	}
	if profile == nil {
		writeJSON(w, http.StatusUnauthorized, AuthResponse{Success: false, Message: "Authentication required"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    profile,
	})
}
