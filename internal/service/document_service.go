package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"acres-chat/internal/model"
	"acres-chat/internal/ragflow"
)

// Listing sizes, matching what the retrieval service is queried with.
const (
	documentListPageSize = 100
	documentChunkPage    = 1
	documentChunkSize    = 200
)

// DocumentService toggles retrieval scope between the whole corpus and one
// pinned document. Selecting a document fetches and caches its chunks; the
// cache is only valid while that document stays selected, and clearing the
// selection drops both together.
type DocumentService struct {
	mu        sync.Mutex
	rag       ragflow.Provider
	datasetID string
	selected  *model.Document
	chunks    []model.RetrievalChunk
}

func NewDocumentService(rag ragflow.Provider, datasetID string) *DocumentService {
	return &DocumentService{rag: rag, datasetID: datasetID}
}

// ListDocuments lists the corpus documents offered for selection.
func (s *DocumentService) ListDocuments(ctx context.Context) ([]model.Document, error) {
	return s.rag.ListDocuments(ctx, s.datasetID, &ragflow.ListDocumentsOptions{
		Page:     1,
		PageSize: documentListPageSize,
	})
}

// Select pins a document and caches its chunks. When the document cannot be
// found or yields no usable chunks the selection stays set with an empty
// cache, so subsequent turns fall through to whole-corpus search.
func (s *DocumentService) Select(ctx context.Context, doc model.Document) error {
	s.mu.Lock()
	s.selected = &doc
	s.chunks = nil
	s.mu.Unlock()

	docs, err := s.rag.ListDocuments(ctx, s.datasetID, &ragflow.ListDocumentsOptions{
		ID:       doc.ID,
		Page:     documentChunkPage,
		PageSize: documentChunkSize,
	})
	if err != nil {
		return fmt.Errorf("could not fetch document %s: %w", doc.ID, err)
	}
	if len(docs) == 0 {
		slog.Warn("Selected document not found; leaving chunk cache empty.", "document_id", doc.ID)
		return nil
	}

	chunks, err := s.rag.ListDocumentChunks(ctx, s.datasetID, docs[0].ID, documentChunkPage, documentChunkSize)
	if err != nil {
		return fmt.Errorf("could not fetch chunks of document %s: %w", doc.ID, err)
	}

	s.mu.Lock()
	// Only apply the fetch if this document is still the selection.
	if s.selected != nil && s.selected.ID == doc.ID {
		s.chunks = chunks
	}
	s.mu.Unlock()

	slog.Info("Selected document for scoped retrieval.", "document", doc.Name, "chunks", len(chunks))
	return nil
}

// Clear atomically drops both the selection and the chunk cache.
func (s *DocumentService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
	s.chunks = nil
}

// Selection returns the selected document (nil when scope is the whole
// corpus) and a copy of its cached chunks.
func (s *DocumentService) Selection() (*model.Document, []model.RetrievalChunk) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil, nil
	}
	doc := *s.selected
	chunks := append([]model.RetrievalChunk(nil), s.chunks...)
	return &doc, chunks
}

// ValidChunks filters the cache to entries with content. The cache should
// already satisfy this; the filter guards against malformed entries slipping
// through the boundary.
func (s *DocumentService) ValidChunks() []model.RetrievalChunk {
	s.mu.Lock()
	defer s.mu.Unlock()
	valid := make([]model.RetrievalChunk, 0, len(s.chunks))
	for i := range s.chunks {
		if s.chunks[i].HasContent() {
			valid = append(valid, s.chunks[i])
		}
	}
	return valid
}

// Label is the UI caption for the current selection, empty when none.
func (s *DocumentService) Label() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return ""
	}
	return "Using document: " + s.selected.Name
}
