package interfaces

import (
	"context"

	"acres-chat/internal/model"
)

// This file defines the contracts the API layer depends on. Depending on
// interfaces instead of concrete services decouples the transport from the
// business logic and lets handler tests use mocks.

// ChatService is the conversation surface: conversation management, message
// reads and the streaming question turn.
type ChatService interface {
	CreateConversation(name string)
	DeleteConversation(name string)
	SetActive(name string)
	ChatTitles() []string
	ActiveChat() string
	CurrentMessages() []model.QA
	Processing() bool
	ProcessQuestion(ctx context.Context, question string, events chan<- model.StreamEvent)
}

// DocumentService is the document-scoped retrieval surface.
type DocumentService interface {
	ListDocuments(ctx context.Context) ([]model.Document, error)
	Select(ctx context.Context, doc model.Document) error
	Clear()
	Label() string
}
