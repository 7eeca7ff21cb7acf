package http

import (
	"net/http"

	"github.com/MKhiriev/go-seal-doc/internal/logger"
	"github.com/MKhiriev/go-seal-doc/internal/utils"
	"github.com/MKhiriev/go-seal-doc/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateDocumentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.createDocument")
		return
	}

	var resp models.CreateDocumentResponse
	if req.IsPlaintext() {
		res, err := h.services.DocumentService.CreateFromPlaintext(ctx, *req.Markdown, req.CreateOptions)
		if err != nil {
			writeError(w, r, err, "*Handler.createDocument")
			return
		}
		resp = models.CreateDocumentResponse{
			DocumentID:   res.ID,
			ReadURL:      readURL(res.ID),
			Password:     res.Password,
			Deduplicated: res.Deduplicated,
		}
	} else {
		res, err := h.services.DocumentService.CreateFromEncryptedPayload(ctx, req.EncryptedPayload)
		if err != nil {
			writeError(w, r, err, "*Handler.createDocument")
			return
		}
		resp = models.CreateDocumentResponse{
			DocumentID:   res.ID,
			ReadURL:      readURL(res.ID),
			Deduplicated: res.Deduplicated,
		}
	}

	log.Info().Str("document_id", resp.DocumentID).Bool("deduplicated", resp.Deduplicated).Msg("document created")

	w.Header().Set("Cache-Control", "no-store")
	if _, err := utils.WriteJSON(w, resp, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.createDocument").Msg("failed to write response")
	}
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	doc, err := h.services.DocumentService.ReadCiphertext(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "*Handler.getDocument")
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	if _, err = utils.WriteJSON(w, models.NewEncryptedDocumentResponse(doc), http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getDocument").Msg("failed to write response")
	}
}

func (h *Handler) decryptDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.DecryptDocumentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.decryptDocument")
		return
	}

	markdown, err := h.services.DocumentService.Decrypt(r.Context(), chi.URLParam(r, "id"), req.Password)
	if err != nil {
		writeError(w, r, err, "*Handler.decryptDocument")
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	if _, err = utils.WriteJSON(w, models.DecryptDocumentResponse{Markdown: markdown}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.decryptDocument").Msg("failed to write response")
	}
}
