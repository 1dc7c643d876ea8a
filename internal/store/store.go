// Package store owns the conversation state: the mapping of conversation name
// to its ordered message list and the "current conversation" pointer. It is an
// explicitly-scoped object created at session start, not ambient global state,
// and it is the only place message fields are mutated.
package store

import (
	"sync"

	"github.com/google/uuid"

	"acres-chat/internal/model"
)

// DefaultName is the conversation that always exists.
const DefaultName = "Default"

type ConversationStore struct {
	mu      sync.RWMutex
	chats   map[string][]*model.QA
	order   []string
	current string
}

// New creates a store holding a single default conversation, seeded with the
// welcome opener when one is configured. The opener exists only at session
// start; a default conversation recreated later starts empty.
func New(welcomeMessage string) *ConversationStore {
	s := &ConversationStore{}
	s.reset()
	if welcomeMessage != "" {
		s.chats[DefaultName] = append(s.chats[DefaultName], &model.QA{
			ID:      uuid.NewString(),
			Answer:  welcomeMessage,
			Sources: []string{},
		})
	}
	return s
}

// reset reinitializes the mapping to a single empty default conversation.
// Callers hold the write lock (or are the constructor).
func (s *ConversationStore) reset() {
	s.chats = map[string][]*model.QA{DefaultName: {}}
	s.order = []string{DefaultName}
	s.current = DefaultName
}

// Create adds a conversation and makes it active. An existing conversation of
// the same name is overwritten with an empty one; that is not an error.
func (s *ConversationStore) Create(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.chats[name]; !exists {
		s.order = append(s.order, name)
	}
	s.chats[name] = []*model.QA{}
	s.current = name
}

// Delete removes a conversation. Deleting the last one reseeds the default;
// deleting the active one moves the pointer to the first remaining name, so
// the pointer always references an existing conversation.
func (s *ConversationStore) Delete(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.chats[name]; !exists {
		return
	}
	delete(s.chats, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if len(s.order) == 0 {
		s.reset()
		return
	}
	if s.current == name {
		s.current = s.order[0]
	}
}

// SetActive moves the current-conversation pointer. The name is not validated;
// the caller is responsible for only offering names that exist.
func (s *ConversationStore) SetActive(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = name
}

// Active returns the name of the current conversation.
func (s *ConversationStore) Active() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Titles returns the conversation names in creation order.
func (s *ConversationStore) Titles() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	titles := make([]string, len(s.order))
	copy(titles, s.order)
	return titles
}

// Append adds a message to the named conversation.
func (s *ConversationStore) Append(name string, qa *model.QA) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.chats[name]; !exists {
		s.order = append(s.order, name)
	}
	s.chats[name] = append(s.chats[name], qa)
}

// Messages returns value copies of the named conversation's messages in
// insertion order, and whether the conversation exists.
func (s *ConversationStore) Messages(name string) ([]model.QA, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	messages, exists := s.chats[name]
	if !exists {
		return nil, false
	}
	out := make([]model.QA, len(messages))
	for i, qa := range messages {
		out[i] = *qa
		out[i].Sources = append([]string(nil), qa.Sources...)
	}
	return out, true
}

// CurrentMessages returns the messages of the active conversation.
func (s *ConversationStore) CurrentMessages() []model.QA {
	s.mu.RLock()
	name := s.current
	s.mu.RUnlock()
	messages, _ := s.Messages(name)
	return messages
}

// The mutators below target a message by its id, so a turn only ever touches
// the message it appended, even when a later turn has already appended the
// next one. They are no-ops when the conversation or message is gone.

func (s *ConversationStore) withMessage(name, id string, fn func(qa *model.QA)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	messages := s.chats[name]
	// The turn's message is almost always the newest one.
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].ID == id {
			fn(messages[i])
			return
		}
	}
}

// AppendToAnswer grows the live answer by one streamed delta.
func (s *ConversationStore) AppendToAnswer(name, id, delta string) {
	s.withMessage(name, id, func(qa *model.QA) { qa.Answer += delta })
}

// ReplaceAnswer swaps in the finalized cleaned answer.
func (s *ConversationStore) ReplaceAnswer(name, id, answer string) {
	s.withMessage(name, id, func(qa *model.QA) { qa.Answer = answer })
}

func (s *ConversationStore) SetHideAnswer(name, id string, hide bool) {
	s.withMessage(name, id, func(qa *model.QA) { qa.HideAnswer = hide })
}

func (s *ConversationStore) SetSources(name, id string, sources []string) {
	s.withMessage(name, id, func(qa *model.QA) { qa.Sources = sources })
}

func (s *ConversationStore) SetShowSources(name, id string, show bool) {
	s.withMessage(name, id, func(qa *model.QA) { qa.ShowSources = show })
}

// Message returns a value copy of the identified message.
func (s *ConversationStore) Message(name, id string) (model.QA, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	messages := s.chats[name]
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].ID == id {
			qa := *messages[i]
			qa.Sources = append([]string(nil), qa.Sources...)
			return qa, true
		}
	}
	return model.QA{}, false
}
