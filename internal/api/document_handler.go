package api

import (
	"encoding/json"
	"net/http"

	"acres-chat/internal/interfaces"
	"acres-chat/internal/model"
)

// DocumentHandler handles HTTP requests for the document-scoped retrieval
// selection.
type DocumentHandler struct {
	docs interfaces.DocumentService
}

func NewDocumentHandler(docs interfaces.DocumentService) *DocumentHandler {
	return &DocumentHandler{docs: docs}
}

// SelectDocumentRequest is the DTO for pinning a document.
type SelectDocumentRequest struct {
	ID   string `json:"id" validate:"required" example:"b330ec2e91f911efb9db0242ac120004"`
	Name string `json:"name" validate:"required" example:"paper.pdf"`
}

// ListDocuments godoc
// @Summary      List corpus documents
// @Description  Lists the documents available for document-scoped retrieval.
// @Tags         Documents
// @Produce      json
// @Success      200  {array}   model.Document
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/documents [get]
func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.docs.ListDocuments(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, docs)
}

// SelectDocument godoc
// @Summary      Select a document
// @Description  Pins a document and caches its chunks; subsequent questions are answered from that document only.
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Param        document  body  SelectDocumentRequest  true  "Document to select"
// @Success      200  {object}  StatusResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/documents/selection [put]
func (h *DocumentHandler) SelectDocument(w http.ResponseWriter, r *http.Request) {
	var req SelectDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.docs.Select(r.Context(), model.Document{ID: req.ID, Name: req.Name}); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// ClearSelection godoc
// @Summary      Clear the document selection
// @Description  Drops the selection and its chunk cache; questions go back to whole-corpus search.
// @Tags         Documents
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /v1/documents/selection [delete]
func (h *DocumentHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	h.docs.Clear()
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}
