package httpapi

import (
	"encoding/json"
	"net/http"
)

// envelope is the body shape every API response shares.
type envelope map[string]any

// writeJSON writes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeSuccess merges success:true into fields.
func writeSuccess(w http.ResponseWriter, status int, fields envelope) {
	if fields == nil {
		fields = envelope{}
	}
	fields["success"] = true
	writeJSON(w, status, fields)
}

// writeError writes {success:false, message}.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{"success": false, "message": message})
}
