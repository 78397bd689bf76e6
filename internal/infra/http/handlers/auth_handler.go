package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthHandler issues the Bearer tokens the /leads group requires. Identity
// itself is out of scope here: a single credential pair comes from the
// environment, and the token is the only thing the rest of the API sees.
type AuthHandler struct {
	Secret   []byte
	User     string
	Password string
	TokenTTL time.Duration
}

func NewAuthHandler(secret []byte, user, password string) *AuthHandler {
	return &AuthHandler{
		Secret:   secret,
		User:     user,
		Password: password,
		TokenTTL: 24 * time.Hour,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Login (POST /login)
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid JSON"})
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(h.User)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.Password)) == 1
	if !userOK || !passOK {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid credentials"})
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": req.Email,
		"iat": now.Unix(),
		"exp": now.Add(h.TokenTTL).Unix(),
	})

	signed, err := token.SignedString(h.Secret)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "failed to sign token"})
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: signed})
}
