package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON is the single response path of the API: every handler body,
// success or error, goes through it. It marshals data, sets the JSON
// content type, and writes statusCode followed by the body.
//
// A marshaling failure degrades to a plain-text 500 and returns the wrapped
// error; nothing of the original payload is written in that case.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
