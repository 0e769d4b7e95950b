package mockapi

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

type errorMessage struct {
	Message string `json:"message"`
}

// errorResponse mirrors the remote API error body
type errorResponse struct {
	Errors     []errorMessage `json:"errors"`
	Status     string         `json:"status"`
	StatusCode int            `json:"statusCode"`
}

type dataResponse struct {
	Data any            `json:"data"`
	Meta map[string]any `json:"meta"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Err(err).Msg("Encoding response")
	}
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, dataResponse{Data: data, Meta: map[string]any{}})
}

func writeError(w http.ResponseWriter, status int, messages ...string) {
	resp := errorResponse{
		Status:     http.StatusText(status),
		StatusCode: status,
	}
	for _, m := range messages {
		resp.Errors = append(resp.Errors, errorMessage{Message: m})
	}
	writeJSON(w, status, resp)
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
