package handler

import (
	"io"
	"net/http"

	"github.com/trinextgen/backoffice/internal/attachment"
	"github.com/trinextgen/backoffice/internal/model"
	"github.com/trinextgen/backoffice/pkg/auth"
)

// maxUploadBytes bounds one multipart upload request.
const maxUploadBytes = 32 << 20

// AttachmentHandler encodes uploaded files into the stored data URI form.
type AttachmentHandler struct{}

// NewAttachmentHandler creates an AttachmentHandler.
func NewAttachmentHandler() *AttachmentHandler {
	return &AttachmentHandler{}
}

type attachmentResponse struct {
	Files    []model.ProjectFile    `json:"files"`
	Rejected []attachment.Rejection `json:"rejected"`
}

// Encode handles POST /api/admin/attachments (auth required). Accepts a
// multipart form with one or more "files" parts; files that cannot be
// encoded are reported per-file without failing the batch.
func (h *AttachmentHandler) Encode(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CredentialFromContext(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_multipart")
		return
	}

	parts := r.MultipartForm.File["files"]
	if len(parts) == 0 {
		writeError(w, http.StatusBadRequest, "no_files")
		return
	}

	inputs := make([]attachment.Input, 0, len(parts))
	var rejected []attachment.Rejection
	for _, part := range parts {
		f, err := part.Open()
		if err != nil {
			rejected = append(rejected, attachment.Rejection{Name: part.Filename, Err: "unreadable part"})
			continue
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			rejected = append(rejected, attachment.Rejection{Name: part.Filename, Err: "unreadable part"})
			continue
		}
		inputs = append(inputs, attachment.Input{Name: part.Filename, Data: data})
	}

	encoded, encodeRejected := attachment.EncodeAll(inputs)
	rejected = append(rejected, encodeRejected...)
	if rejected == nil {
		rejected = []attachment.Rejection{}
	}

	writeJSON(w, http.StatusOK, attachmentResponse{Files: encoded, Rejected: rejected})
}
