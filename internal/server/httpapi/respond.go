package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/voicelab/voicelab/internal/common"
)

// errorResponse is the failure body shape: {"detail": "..."}.
type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// writeServiceError maps service sentinels onto status codes. Unrecognized
// errors become an opaque 500.
func writeServiceError(w http.ResponseWriter, err error, notFoundDetail, conflictDetail string) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, notFoundDetail)
	case errors.Is(err, common.ErrorAlreadyExists):
		writeError(w, http.StatusBadRequest, conflictDetail)
	case errors.Is(err, common.ErrorUnauthorized):
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, common.ErrorValidation):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
