// Package ragflow is an HTTP client for the RAGFlow API v1: assistant and
// dataset lookup, similarity retrieval, document/chunk listing and the
// streaming completion call. The rest of the system treats it as a black-box
// capability behind the Provider interface.
package ragflow

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"acres-chat/internal/model"
)

// Provider defines the retrieval/generation capabilities the services depend
// on. Depending on this interface instead of the concrete client keeps the
// service layer testable with mocks.
type Provider interface {
	FindAssistant(ctx context.Context, name string) (*Assistant, error)
	CreateSession(ctx context.Context, assistantID, name string) (string, error)
	GetOrCreateDataset(ctx context.Context, name string) (*Dataset, error)
	Retrieve(ctx context.Context, req *RetrieveRequest) ([]model.RetrievalChunk, error)
	ListDocuments(ctx context.Context, datasetID string, opts *ListDocumentsOptions) ([]model.Document, error)
	ListDocumentChunks(ctx context.Context, datasetID, documentID string, page, pageSize int) ([]model.RetrievalChunk, error)
	Ask(ctx context.Context, assistantID string, req *AskRequest, ch chan<- AskResponse) error
}

type client struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

func NewClient(baseURL, apiKey string) Provider {
	return &client{
		http:    &http.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// doJSON performs a request against the API and unwraps the standard
// {code, message, data} envelope. A non-zero code is returned as an error
// carrying the server's message.
func (c *client) doJSON(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("could not marshal request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api returned non-200 status %d: %s", resp.StatusCode, string(raw))
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("could not decode response: %s", string(raw))
	}
	if env.Code != 0 {
		return nil, fmt.Errorf("api error (code %d): %s", env.Code, env.Message)
	}
	return env.Data, nil
}

// FindAssistant looks up the chat agent by its configured name.
func (c *client) FindAssistant(ctx context.Context, name string) (*Assistant, error) {
	data, err := c.doJSON(ctx, http.MethodGet, "/api/v1/chats?name="+url.QueryEscape(name), nil)
	if err != nil {
		return nil, err
	}
	var assistants []Assistant
	if err := json.Unmarshal(data, &assistants); err != nil {
		return nil, fmt.Errorf("could not decode assistant list: %w", err)
	}
	if len(assistants) == 0 {
		return nil, fmt.Errorf("no chat agent found with name %q", name)
	}
	return &assistants[0], nil
}

// CreateSession opens a new conversation session with the assistant and
// returns its id.
func (c *client) CreateSession(ctx context.Context, assistantID, name string) (string, error) {
	path := fmt.Sprintf("/api/v1/chats/%s/sessions", assistantID)
	data, err := c.doJSON(ctx, http.MethodPost, path, map[string]string{"name": name})
	if err != nil {
		return "", err
	}
	var session struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &session); err != nil {
		return "", fmt.Errorf("could not decode session: %w", err)
	}
	return session.ID, nil
}

// GetOrCreateDataset creates the dataset, falling back to a listing when the
// server reports the name as already taken.
func (c *client) GetOrCreateDataset(ctx context.Context, name string) (*Dataset, error) {
	data, err := c.doJSON(ctx, http.MethodPost, "/api/v1/datasets", map[string]string{"name": name})
	if err == nil {
		var ds Dataset
		if err := json.Unmarshal(data, &ds); err != nil {
			return nil, fmt.Errorf("could not decode dataset: %w", err)
		}
		return &ds, nil
	}
	if !strings.Contains(err.Error(), "Duplicated dataset name") {
		return nil, err
	}

	listed, err := c.doJSON(ctx, http.MethodGet, "/api/v1/datasets?page=1&page_size=100", nil)
	if err != nil {
		return nil, err
	}
	var datasets []Dataset
	if err := json.Unmarshal(listed, &datasets); err != nil {
		return nil, fmt.Errorf("could not decode dataset list: %w", err)
	}
	for i := range datasets {
		if datasets[i].Name == name {
			return &datasets[i], nil
		}
	}
	return nil, fmt.Errorf("dataset %q exists but could not be retrieved", name)
}

// Retrieve performs a similarity search and returns normalized chunks.
// Contentless entries are filtered here so callers never see them.
func (c *client) Retrieve(ctx context.Context, req *RetrieveRequest) ([]model.RetrievalChunk, error) {
	data, err := c.doJSON(ctx, http.MethodPost, "/api/v1/retrieval", req)
	if err != nil {
		return nil, err
	}
	var result struct {
		Chunks []*wireChunk `json:"chunks"`
		Total  int          `json:"total"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("could not decode retrieval result: %w", err)
	}
	return normalizeChunks(result.Chunks), nil
}

// ListDocuments lists the documents of a dataset, optionally filtered to a
// single id.
func (c *client) ListDocuments(ctx context.Context, datasetID string, opts *ListDocumentsOptions) ([]model.Document, error) {
	query := url.Values{}
	if opts != nil {
		if opts.Page > 0 {
			query.Set("page", strconv.Itoa(opts.Page))
		}
		if opts.PageSize > 0 {
			query.Set("page_size", strconv.Itoa(opts.PageSize))
		}
		if opts.ID != "" {
			query.Set("id", opts.ID)
		}
	}
	path := fmt.Sprintf("/api/v1/datasets/%s/documents", datasetID)
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}
	data, err := c.doJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var result struct {
		Docs  []model.Document `json:"docs"`
		Total int              `json:"total"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("could not decode document list: %w", err)
	}
	return result.Docs, nil
}

// ListDocumentChunks lists the chunks of one document, normalized and
// filtered like Retrieve results.
func (c *client) ListDocumentChunks(ctx context.Context, datasetID, documentID string, page, pageSize int) ([]model.RetrievalChunk, error) {
	path := fmt.Sprintf("/api/v1/datasets/%s/documents/%s/chunks?page=%d&page_size=%d",
		datasetID, documentID, page, pageSize)
	data, err := c.doJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var result struct {
		Chunks []*wireChunk `json:"chunks"`
		Total  int          `json:"total"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("could not decode chunk list: %w", err)
	}
	return normalizeChunks(result.Chunks), nil
}

// askPayload is the wire form of a streaming completion request. Context
// overrides ride along as prompt variables: selected_doc carries the chunks of
// a pinned document, knowledge the similarity-search results. Whichever branch
// is unused is sent empty to disable it server-side.
type askPayload struct {
	Question         string                 `json:"question"`
	Stream           bool                   `json:"stream"`
	SessionID        string                 `json:"session_id,omitempty"`
	Knowledge        []model.RetrievalChunk `json:"knowledge"`
	SelectedDocument []model.RetrievalChunk `json:"selected_doc"`
}

// askChunk is one decoded stream line. Data is either an increment object or
// the literal true that terminates the stream.
type askChunk struct {
	Answer    string          `json:"answer"`
	Reference json.RawMessage `json:"reference"`
	SessionID string          `json:"session_id"`
}

// Ask streams the answer to a question into ch, one AskResponse per increment,
// with cumulative content. The channel is closed when the stream ends. Errors
// mid-stream are delivered on the channel so the consumer can finish the turn
// in a degraded state instead of losing the partial answer.
func (c *client) Ask(ctx context.Context, assistantID string, req *AskRequest, ch chan<- AskResponse) error {
	defer close(ch)

	payload := askPayload{
		Question:         req.Question,
		Stream:           true,
		SessionID:        req.SessionID,
		Knowledge:        req.Knowledge,
		SelectedDocument: req.SelectedDocument,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("could not marshal request: %w", err)
	}

	path := fmt.Sprintf("%s/api/v1/chats/%s/completions", c.baseURL, assistantID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		ch <- AskResponse{Error: err.Error()}
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		msg := fmt.Sprintf("api returned non-200 status %d: %s", resp.StatusCode, string(raw))
		ch <- AskResponse{Error: msg}
		return fmt.Errorf("%s", msg)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		line = bytes.TrimPrefix(line, []byte("data:"))

		var env envelope
		if err := json.Unmarshal(line, &env); err != nil {
			continue
		}
		if env.Code != 0 {
			ch <- AskResponse{Error: env.Message}
			return fmt.Errorf("stream error (code %d): %s", env.Code, env.Message)
		}
		if bytes.Equal(bytes.TrimSpace(env.Data), []byte("true")) {
			select {
			case ch <- AskResponse{Done: true}:
			case <-ctx.Done():
				return ctx.Err()
			}
			break
		}

		var chunk askChunk
		if err := json.Unmarshal(env.Data, &chunk); err != nil {
			continue
		}
		increment := AskResponse{
			Content:   chunk.Answer,
			Reference: decodeReference(chunk.Reference),
		}
		select {
		case ch <- increment:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := scanner.Err(); err != nil {
		ch <- AskResponse{Error: err.Error()}
		return err
	}
	return nil
}

// decodeReference accepts both reference shapes the service emits: an object
// with a chunks array, or a bare array of chunks. Reference entries matter for
// their document provenance, not their text, so unlike retrieval results they
// are kept even without content.
func decodeReference(raw json.RawMessage) []model.RetrievalChunk {
	if len(raw) == 0 {
		return nil
	}
	var wrapped struct {
		Chunks []*wireChunk `json:"chunks"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Chunks != nil {
		return normalizeRefChunks(wrapped.Chunks)
	}
	var bare []*wireChunk
	if err := json.Unmarshal(raw, &bare); err == nil {
		return normalizeRefChunks(bare)
	}
	return nil
}

func normalizeRefChunks(wire []*wireChunk) []model.RetrievalChunk {
	chunks := make([]model.RetrievalChunk, 0, len(wire))
	for _, w := range wire {
		if w == nil {
			continue
		}
		chunks = append(chunks, w.normalize())
	}
	return chunks
}
