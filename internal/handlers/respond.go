package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// Every business outcome is HTTP 200 with an in-body success flag; the
// browser UI branches on the flag, not the status code.

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func ok(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

func okEmpty(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, envelope{Success: true})
}

func fail(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusOK, envelope{Success: false, Message: msg})
}

// failNotFound distinguishes a missing external ID from other failures
// without leaking store detail.
func failNotFound(w http.ResponseWriter, what string) {
	fail(w, what+" not found")
}

func failErr(w http.ResponseWriter, err error, what, fallback string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		failNotFound(w, what)
		return
	}
	fail(w, fallback)
}

func decode(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
