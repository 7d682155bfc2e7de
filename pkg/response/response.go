// Package response writes the {ok: ...} JSON envelope used by every route.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/linchiayu/bible-notes-api/pkg/apperr"
)

// Envelope is the success shape: {"ok": true, "data": ...}.
type Envelope struct {
	OK   bool        `json:"ok"`
	Data interface{} `json:"data,omitempty"`
}

// ErrEnvelope is the failure shape: {"ok": false, "error": "..."}.
type ErrEnvelope struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// JSON writes any payload with the given status code.
func JSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// OK writes {ok:true, data:...} with status 200.
func OK(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, Envelope{OK: true, Data: data})
}

// Fail writes {ok:false, error:...} with an explicit status.
func Fail(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, ErrEnvelope{OK: false, Error: message})
}

// Error resolves the status from the error taxonomy and writes the failure
// envelope with the error's message.
func Error(w http.ResponseWriter, err error) {
	Fail(w, apperr.StatusFor(err), err.Error())
}
