package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/cosmatattoo/backend/internal/model"
	"github.com/cosmatattoo/backend/internal/repository"
	"github.com/cosmatattoo/backend/internal/service"
	"github.com/cosmatattoo/backend/pkg/auth"
)

// Default bootstrap admin account, created by GET /api/setup when no admin
// exists. The password must be changed after first login.
const (
	defaultAdminEmail    = "admin@cosmatattoo.fr"
	defaultAdminPassword = "admin123"
	defaultAdminName     = "Administrateur"
)

// AuthHandler handles registration, credential login/logout and the
// bootstrap setup route.
type AuthHandler struct {
	authService   service.AuthService
	userRepo      repository.UserRepository
	sessionSecret []byte
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authService service.AuthService, userRepo repository.UserRepository, sessionSecret []byte) *AuthHandler {
	return &AuthHandler{authService: authService, userRepo: userRepo, sessionSecret: sessionSecret}
}

// registerRequest is the expected JSON body for POST /api/register.
type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

// Register handles POST /api/register.
// email and password are required; name and phone are optional.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}
	if req.Email == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "email_required"})
		return
	}
	if req.Password == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "password_required"})
		return
	}

	user, err := h.authService.Register(r.Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "email_taken"})
			return
		}
		slog.Error("registration failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "register_failed"})
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]*model.User{"user": user})
}

// loginRequest is the expected JSON body for POST /api/auth/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login. On success it issues the session
// cookie carrying the signed identity proof.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}
	if req.Email == "" || req.Password == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "credentials_required"})
		return
	}

	user, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_credentials"})
			return
		}
		slog.Error("login failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "login_failed"})
		return
	}

	token, err := auth.CreateSessionToken(auth.Identity{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(auth.SessionDuration),
	}, h.sessionSecret)
	if err != nil {
		slog.Error("session token creation failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "login_failed"})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.SessionDuration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   os.Getenv("ENV") == "production",
	})
	_ = json.NewEncoder(w).Encode(map[string]*model.User{"user": user})
}

// Logout handles POST /api/auth/logout by expiring the session cookie.
// The proof itself stays valid until its embedded expiry; logout is a
// client-side discard.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
	})
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// Me handles GET /api/me. RequireAuth has already validated the proof; the
// user row is re-read so the response reflects current profile data.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	user, err := h.userRepo.FindByID(r.Context(), id.UserID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "user_not_found"})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]*model.User{"user": user})
}

// Setup handles GET /api/setup: creates the default admin account when none
// exists. Safe to call repeatedly; a second call reports the existing admin.
func (h *AuthHandler) Setup(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	admin, created, err := h.authService.EnsureAdmin(r.Context(), defaultAdminEmail, defaultAdminPassword, defaultAdminName)
	if err != nil {
		slog.Error("admin setup failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "setup_failed"})
		return
	}

	if !created {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "admin already exists",
			"admin":   map[string]string{"email": admin.Email, "name": admin.Name},
		})
		return
	}

	slog.Info("default admin created", "email", admin.Email)
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"message": "admin created",
		"admin":   map[string]string{"id": admin.ID, "email": admin.Email, "name": admin.Name},
	})
}
