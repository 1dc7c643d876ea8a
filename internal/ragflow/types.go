package ragflow

import (
	"encoding/json"

	"acres-chat/internal/model"
)

// Assistant is a chat agent configured on the RAGFlow server.
type Assistant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Dataset is a knowledge base holding the research paper corpus.
type Dataset struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RetrieveRequest carries the tuning parameters of a similarity search.
type RetrieveRequest struct {
	Question               string   `json:"question"`
	DatasetIDs             []string `json:"dataset_ids"`
	Page                   int      `json:"page"`
	PageSize               int      `json:"page_size"`
	SimilarityThreshold    float64  `json:"similarity_threshold"`
	VectorSimilarityWeight float64  `json:"vector_similarity_weight"`
	TopK                   int      `json:"top_k"`
	Keyword                bool     `json:"keyword"`
}

// ListDocumentsOptions narrows a document listing. ID filters to a single
// document; Page/PageSize default server-side when zero.
type ListDocumentsOptions struct {
	ID       string
	Page     int
	PageSize int
}

// AskRequest asks the assistant a question with an explicit context override.
// Exactly one of Knowledge or SelectedDocument is populated per turn: passing
// SelectedDocument disables the assistant's own corpus search, passing
// Knowledge supplies the corpus chunks retrieved for this question.
type AskRequest struct {
	Question         string
	SessionID        string
	Knowledge        []model.RetrievalChunk
	SelectedDocument []model.RetrievalChunk
}

// AskResponse is one increment of a streaming answer. Content is cumulative:
// each increment repeats everything streamed so far plus the new text, so the
// consumer derives deltas itself. Reference carries any chunks the increment
// cites. Error is non-empty when the stream failed mid-way.
type AskResponse struct {
	Content   string
	Reference []model.RetrievalChunk
	Done      bool
	Error     string
}

// wireChunk is the loosely-typed chunk payload as the service sends it.
// Reference chunks name their document under document_keyword while retrieval
// chunks use document_name; normalize() folds both into the one typed shape
// the rest of the system works with.
type wireChunk struct {
	ID               string   `json:"id"`
	Content          *string  `json:"content"`
	DocumentID       string   `json:"document_id"`
	DocumentName     string   `json:"document_name"`
	DocumentKeyword  string   `json:"document_keyword"`
	Position         []int    `json:"position"`
	DatasetID        string   `json:"dataset_id"`
	Similarity       *float64 `json:"similarity"`
	VectorSimilarity *float64 `json:"vector_similarity"`
	TermSimilarity   *float64 `json:"term_similarity"`
}

func (w *wireChunk) normalize() model.RetrievalChunk {
	name := w.DocumentName
	if name == "" {
		name = w.DocumentKeyword
	}
	return model.RetrievalChunk{
		ID:               w.ID,
		Content:          w.Content,
		DocumentID:       w.DocumentID,
		DocumentName:     name,
		Position:         w.Position,
		DatasetID:        w.DatasetID,
		Similarity:       w.Similarity,
		VectorSimilarity: w.VectorSimilarity,
		TermSimilarity:   w.TermSimilarity,
	}
}

// normalizeChunks converts wire chunks to the domain shape, dropping nil
// entries and entries without content. Malformed chunk data is filtered, never
// surfaced as an error.
func normalizeChunks(wire []*wireChunk) []model.RetrievalChunk {
	chunks := make([]model.RetrievalChunk, 0, len(wire))
	for _, w := range wire {
		if w == nil || w.Content == nil {
			continue
		}
		chunks = append(chunks, w.normalize())
	}
	return chunks
}

// envelope is the standard RAGFlow response wrapper. A non-zero code means
// the call failed and Message explains why.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}
