package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lightningdhna/final-api/internal/auth"
)

func GetRoleFromContext(r *http.Request) (string, error) {
	authorization := r.Header.Get("Authorization")

	_, claims, err := auth.TokenClaims(authorization)
	if err != nil {
		return "", err
	}

	if role, ok := claims["role"].(string); ok {
		return role, nil
	}
	return "", nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any) {
	out, err := json.Marshal(data)
	if err != nil {
		logger.Error("failed to marshal response", zap.Error(err))
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(out); err != nil {
		logger.Error("failed to write response", zap.Error(err))
	}
}

// uuidParam reads and parses a UUID path parameter. On failure it writes a
// 400 and returns false.
func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid %s", name), http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func parseIntPtr(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func parseUUIDPtr(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	v, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &v
}

// parseDatePtr accepts a date-only or RFC3339 value.
func parseDatePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	if v, err := time.Parse("2006-01-02", s); err == nil {
		return &v
	}
	if v, err := time.Parse(time.RFC3339, s); err == nil {
		return &v
	}
	return nil
}
