package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type batchRequest struct {
	Documents []string `json:"documents"`
}

type batchItem struct {
	ID    *uuid.UUID     `json:"id,omitempty"`
	Error *errorResponse `json:"error,omitempty"`
}

// readXML reads the request body as a VAST document, capped at maxBody.
func (h *Handler) readXML(w http.ResponseWriter, r *http.Request) (string, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBody))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// handleParse parses the XML body and returns the document as JSON without
// storing it. Malformed XML produces HTTP 400, oversized input HTTP 413 and
// documents that do not match the VAST structure HTTP 422.
func (h *Handler) handleParse(w http.ResponseWriter, r *http.Request) {
	xml, err := h.readXML(w, r)
	if err != nil {
		h.writeError(w, "read body", err)
		return
	}
	doc, err := h.svc.Parse(r.Context(), xml)
	if err != nil {
		h.writeError(w, "parse", err)
		return
	}
	h.writeJSON(w, http.StatusOK, doc)
}

// handleIngest parses and stores the XML body. On success it returns HTTP 201
// with the stored document.
func (h *Handler) handleIngest(w http.ResponseWriter, r *http.Request) {
	xml, err := h.readXML(w, r)
	if err != nil {
		h.writeError(w, "read body", err)
		return
	}
	stored, err := h.svc.Ingest(r.Context(), xml)
	if err != nil {
		h.writeError(w, "ingest", err)
		return
	}
	w.Header().Set("Location", "/api/v1/vast/documents/"+stored.ID.String())
	h.writeJSON(w, http.StatusCreated, stored)
}

// handleIngestBatch ingests a JSON list of XML documents. Per-document parse
// errors are reported in the response items, in request order.
func (h *Handler) handleIngestBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	body := http.MaxBytesReader(w, r.Body, h.maxBody*maxBatchDocuments)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, "read body", err)
			return
		}
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if len(req.Documents) == 0 || len(req.Documents) > maxBatchDocuments {
		http.Error(w, "documents must hold between 1 and 64 entries", http.StatusBadRequest)
		return
	}

	results, err := h.svc.IngestBatch(r.Context(), req.Documents)
	if err != nil {
		h.writeError(w, "ingest batch", err)
		return
	}
	items := make([]batchItem, len(results))
	for i, res := range results {
		if res.Err != nil {
			items[i].Error = &errorResponse{Code: errorCode(res.Err), Message: res.Err.Error()}
			continue
		}
		items[i].ID = &res.Document.ID
	}
	h.writeJSON(w, http.StatusOK, items)
}

// handleGetDocument returns a stored document. Invalid ids result in HTTP 400
// and unknown ids in HTTP 404.
func (h *Handler) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	stored, err := h.svc.GetDocument(r.Context(), id)
	if err != nil {
		h.writeError(w, "get document", err)
		return
	}
	h.writeJSON(w, http.StatusOK, stored)
}
