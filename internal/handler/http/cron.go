package http

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/MKhiriev/go-seal-doc/internal/logger"
	"github.com/MKhiriev/go-seal-doc/internal/utils"
	"github.com/MKhiriev/go-seal-doc/models"
)

// cleanup purges expired documents on behalf of an external scheduler. The
// caller must present the configured secret as a bearer token.
func (h *Handler) cleanup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	want := []byte("Bearer " + h.cronSecret)
	got := []byte(r.Header.Get("Authorization"))
	if subtle.ConstantTimeCompare(got, want) != 1 {
		writeError(w, r, ErrInvalidCronSecret, "*Handler.cleanup")
		return
	}

	deleted, err := h.services.DocumentService.Purge(r.Context(), time.Now())
	if err != nil {
		writeError(w, r, err, "*Handler.cleanup")
		return
	}

	log.Info().Int64("deleted", deleted).Msg("scheduled cleanup finished")

	if _, err = utils.WriteJSON(w, models.PurgeResponse{Deleted: deleted}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.cleanup").Msg("failed to write response")
	}
}
