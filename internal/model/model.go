package model

// QA stores a single question/answer exchange within a conversation.
// The answer grows in place while a turn is streaming and is replaced
// exactly once by its cleaned final form.
type QA struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Answer      string   `json:"answer"`
	Sources     []string `json:"sources"`
	ShowSources bool     `json:"show_sources"`
	HideAnswer  bool     `json:"hide_answer"`
}

// Document identifies a corpus document offered for document-scoped retrieval.
type Document struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RetrievalChunk is the normalized shape of one retrieved passage. The wire
// representation is loosely typed (optional scores, possibly missing content),
// so the ragflow client converts to this struct at the ingestion boundary and
// nothing downstream deals with raw payloads.
type RetrievalChunk struct {
	ID               string   `json:"id"`
	Content          *string  `json:"content"`
	DocumentID       string   `json:"document_id,omitempty"`
	DocumentName     string   `json:"document_name,omitempty"`
	Position         []int    `json:"position,omitempty"`
	DatasetID        string   `json:"dataset_id,omitempty"`
	Similarity       *float64 `json:"similarity,omitempty"`
	VectorSimilarity *float64 `json:"vector_similarity,omitempty"`
	TermSimilarity   *float64 `json:"term_similarity,omitempty"`
}

// HasContent reports whether the chunk carries usable text.
func (c *RetrievalChunk) HasContent() bool {
	return c != nil && c.Content != nil
}

// StreamEvent is one observable snapshot of the in-flight message, emitted
// after every mutation the controller makes. Consumers see the answer grow
// monotonically, then one replacement by the finalized text, then a sources
// update, then the reveal.
type StreamEvent struct {
	Type        string   `json:"type"`
	Answer      string   `json:"answer,omitempty"`
	HideAnswer  bool     `json:"hide_answer,omitempty"`
	Sources     []string `json:"sources,omitempty"`
	ShowSources bool     `json:"show_sources,omitempty"`
	Done        bool     `json:"done,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// StreamEvent types, in the order a successful turn emits them.
const (
	EventPending   = "pending"
	EventAnswer    = "answer"
	EventFinalize  = "finalizing"
	EventFinalized = "finalized"
	EventSources   = "sources"
	EventReveal    = "reveal"
	EventError     = "error"
)
