package app

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Response is a rendered page.
type Response struct {
	Title       string
	Description string
	HTML        string
}

// WantsJSON reports whether the client asked for a JSON response.
func WantsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json")
}

// SendsJSON reports whether the client posted a JSON body.
func SendsJSON(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return strings.Contains(ct, "application/json")
}

// Respond writes a page wrapped in the site template.
func Respond(w http.ResponseWriter, r *http.Request, res Response) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(RenderHTML(res.Title, res.Description, res.HTML)))
}

// RespondJSON writes v as a JSON response.
func RespondJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// RespondError writes a JSON error with the given status code.
func RespondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// BadRequest writes a 400 in whichever format the client wants.
func BadRequest(w http.ResponseWriter, r *http.Request, message string) {
	if WantsJSON(r) {
		RespondError(w, http.StatusBadRequest, message)
		return
	}
	http.Error(w, message, http.StatusBadRequest)
}

// ServerError writes a 500 in whichever format the client wants.
func ServerError(w http.ResponseWriter, r *http.Request, message string) {
	if WantsJSON(r) {
		RespondError(w, http.StatusInternalServerError, message)
		return
	}
	http.Error(w, message, http.StatusInternalServerError)
}

// MethodNotAllowed writes a 405.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	if WantsJSON(r) {
		RespondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
}

// NotFound writes a 404.
func NotFound(w http.ResponseWriter, r *http.Request) {
	if WantsJSON(r) {
		RespondError(w, http.StatusNotFound, "not found")
		return
	}
	http.Error(w, "Not found", http.StatusNotFound)
}
