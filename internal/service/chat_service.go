package service

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	app_errors "acres-chat/internal/errors"
	"acres-chat/internal/model"
	"acres-chat/internal/ragflow"
	"acres-chat/internal/store"
	"acres-chat/internal/textclean"
)

// Similarity-search tuning, fixed for every whole-corpus query.
const (
	searchPage                = 1
	searchPageSize            = 30
	searchSimilarityThreshold = 0.3
	searchVectorWeight        = 0.3
	searchTopK                = 1024
)

// Pacing of the finalization phase: a short debounce before the cleaned
// answer replaces the streamed text, and a longer beat before sources appear.
const (
	defaultCleanupDelay = 100 * time.Millisecond
	defaultRevealDelay  = time.Second
)

// ChatService drives a question through its full turn: append a pending
// message, pick the retrieval scope, stream the answer delta by delta,
// finalize the cleaned text and reveal the sources. One question may be in
// flight at a time; the processing flag doubles as the busy indicator the
// submission surface honors.
type ChatService struct {
	store   *store.ConversationStore
	rag     ragflow.Provider
	docs    *DocumentService
	sources *SourceExtractor

	assistantID string
	sessionID   string
	datasetID   string

	// Overridable so tests do not sit through real pacing delays.
	CleanupDelay time.Duration
	RevealDelay  time.Duration

	processing atomic.Bool
}

func NewChatService(
	conversations *store.ConversationStore,
	rag ragflow.Provider,
	docs *DocumentService,
	sources *SourceExtractor,
	assistantID, sessionID, datasetID string,
) *ChatService {
	return &ChatService{
		store:        conversations,
		rag:          rag,
		docs:         docs,
		sources:      sources,
		assistantID:  assistantID,
		sessionID:    sessionID,
		datasetID:    datasetID,
		CleanupDelay: defaultCleanupDelay,
		RevealDelay:  defaultRevealDelay,
	}
}

// Conversation management, delegated to the store.

func (s *ChatService) CreateConversation(name string) { s.store.Create(name) }
func (s *ChatService) DeleteConversation(name string) { s.store.Delete(name) }
func (s *ChatService) SetActive(name string)          { s.store.SetActive(name) }
func (s *ChatService) ChatTitles() []string           { return s.store.Titles() }
func (s *ChatService) ActiveChat() string             { return s.store.Active() }
func (s *ChatService) CurrentMessages() []model.QA    { return s.store.CurrentMessages() }

// Processing reports whether a turn is in flight.
func (s *ChatService) Processing() bool { return s.processing.Load() }

// ProcessQuestion runs one complete turn, emitting a StreamEvent snapshot on
// events after every observable mutation. The channel is closed when the turn
// ends. An empty question is silently ignored: no message, no state change.
// A second question while one is in flight is rejected without touching the
// conversation.
func (s *ChatService) ProcessQuestion(ctx context.Context, question string, events chan<- model.StreamEvent) {
	defer close(events)

	if question == "" {
		return
	}
	if !s.processing.CompareAndSwap(false, true) {
		events <- model.StreamEvent{Type: model.EventError, Error: app_errors.ErrBusy.Error()}
		return
	}

	// The turn binds to the conversation that was active at submission and
	// to the message it appends; switching conversations mid-turn must not
	// redirect the mutations, and a follow-up turn appending the next
	// message must not become their target either.
	chat := s.store.Active()
	msgID := uuid.NewString()
	s.store.Append(chat, &model.QA{
		ID:       msgID,
		Question: question,
		Sources:  []string{},
	})
	s.emit(events, chat, msgID, model.EventPending)

	// Scope decision: a selected document with a non-empty chunk cache wins
	// and disables corpus search for this turn; otherwise similarity search
	// supplies the context. Either way the provisional source set comes from
	// the chosen context.
	ask := &ragflow.AskRequest{Question: question, SessionID: s.sessionID}
	provisional := make(map[string]struct{})
	docScoped := false
	if selected, cached := s.docs.Selection(); selected != nil && len(cached) > 0 {
		docScoped = true
		ask.SelectedDocument = cached
		provisional = s.sources.Extract(cached)
		slog.Debug("Using selected document context only.", "document", selected.Name, "chunks", len(cached))
	} else {
		chunks := s.similaritySearch(ctx, question)
		ask.Knowledge = chunks
		provisional = s.sources.Extract(chunks)
		slog.Debug("No document selected; performed whole-corpus search.", "chunks", len(chunks))
	}

	stream := make(chan ragflow.AskResponse)
	go func() {
		if err := s.rag.Ask(ctx, s.assistantID, ask, stream); err != nil {
			slog.Warn("Ask stream ended with error.", "error", err)
		}
	}()

	// Streaming: increments carry cumulative content, so the delta is
	// whatever lies beyond the previously seen length. Deltas are
	// marker-stripped as they land; the duplicate-tail collapse waits for
	// finalization. Inline references grow the source set as they arrive,
	// though nothing is revealed yet.
	seen := 0
	for increment := range stream {
		if increment.Error != "" {
			s.store.AppendToAnswer(chat, msgID, "\nError: "+increment.Error)
			s.emit(events, chat, msgID, model.EventAnswer)
			break
		}
		if increment.Content == "" {
			continue
		}
		if len(increment.Content) > seen {
			delta := increment.Content[seen:]
			seen = len(increment.Content)
			s.store.AppendToAnswer(chat, msgID, textclean.StripMarkers(delta))
		}
		for _, ref := range increment.Reference {
			if ref.DocumentID != "" {
				provisional[s.sources.Link(ref.DocumentID, ref.DocumentName)] = struct{}{}
			}
		}
		s.emit(events, chat, msgID, model.EventAnswer)
	}

	// Finalizing: hide the answer, give the UI a beat, then swap in the
	// cleaned text.
	s.store.SetHideAnswer(chat, msgID, true)
	s.emit(events, chat, msgID, model.EventFinalize)
	final := textclean.Finalize(s.currentAnswer(chat, msgID))
	time.Sleep(s.CleanupDelay)
	s.store.ReplaceAnswer(chat, msgID, final)
	s.store.SetHideAnswer(chat, msgID, false)
	s.emit(events, chat, msgID, model.EventFinalized)

	// Sources: a document-scoped turn recomputes from the cache as it stands
	// now, in case the selection changed mid-turn; a corpus turn uses the
	// accumulated provisional set.
	links := provisional
	if docScoped {
		links = s.sources.Extract(s.docs.ValidChunks())
	}
	s.store.SetSources(chat, msgID, sortedLinks(links))
	s.emit(events, chat, msgID, model.EventSources)

	// The turn is complete for submission purposes before the reveal beat.
	// The next turn may append the following message while this one sleeps,
	// so the reveal stays pinned to this turn's message id.
	s.processing.Store(false)
	time.Sleep(s.RevealDelay)
	s.store.SetShowSources(chat, msgID, true)
	s.emitDone(events, chat, msgID)
}

// similaritySearch queries the whole corpus. A failed search degrades to an
// empty context: the caller cannot distinguish "no results" from "search
// failed", and the turn proceeds either way.
func (s *ChatService) similaritySearch(ctx context.Context, question string) []model.RetrievalChunk {
	chunks, err := s.rag.Retrieve(ctx, &ragflow.RetrieveRequest{
		Question:               question,
		DatasetIDs:             []string{s.datasetID},
		Page:                   searchPage,
		PageSize:               searchPageSize,
		SimilarityThreshold:    searchSimilarityThreshold,
		VectorSimilarityWeight: searchVectorWeight,
		TopK:                   searchTopK,
		Keyword:                false,
	})
	if err != nil {
		slog.Warn("Similarity search failed; continuing without context.", "error", err)
		return nil
	}
	return chunks
}

func (s *ChatService) currentAnswer(chat, msgID string) string {
	qa, _ := s.store.Message(chat, msgID)
	return qa.Answer
}

// emit sends a snapshot of the turn's message after a mutation.
func (s *ChatService) emit(events chan<- model.StreamEvent, chat, msgID, eventType string) {
	qa, ok := s.store.Message(chat, msgID)
	if !ok {
		return
	}
	events <- model.StreamEvent{
		Type:        eventType,
		Answer:      qa.Answer,
		HideAnswer:  qa.HideAnswer,
		Sources:     qa.Sources,
		ShowSources: qa.ShowSources,
	}
}

func (s *ChatService) emitDone(events chan<- model.StreamEvent, chat, msgID string) {
	qa, ok := s.store.Message(chat, msgID)
	if !ok {
		return
	}
	events <- model.StreamEvent{
		Type:        model.EventReveal,
		Answer:      qa.Answer,
		Sources:     qa.Sources,
		ShowSources: qa.ShowSources,
		Done:        true,
	}
}
