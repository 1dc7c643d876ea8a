// Package mocks provides testify mocks of the service contracts for handler
// tests.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"acres-chat/internal/model"
)

type MockChatService struct {
	mock.Mock
}

func NewMockChatService(t *testing.T) *MockChatService {
	m := &MockChatService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockChatService) CreateConversation(name string) { m.Called(name) }
func (m *MockChatService) DeleteConversation(name string) { m.Called(name) }
func (m *MockChatService) SetActive(name string)          { m.Called(name) }

func (m *MockChatService) ChatTitles() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockChatService) ActiveChat() string {
	return m.Called().String(0)
}

func (m *MockChatService) CurrentMessages() []model.QA {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.QA)
}

func (m *MockChatService) Processing() bool {
	return m.Called().Bool(0)
}

func (m *MockChatService) ProcessQuestion(ctx context.Context, question string, events chan<- model.StreamEvent) {
	m.Called(ctx, question, events)
}

type MockDocumentService struct {
	mock.Mock
}

func NewMockDocumentService(t *testing.T) *MockDocumentService {
	m := &MockDocumentService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockDocumentService) ListDocuments(ctx context.Context) ([]model.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentService) Select(ctx context.Context, doc model.Document) error {
	return m.Called(ctx, doc).Error(0)
}

func (m *MockDocumentService) Clear() { m.Called() }

func (m *MockDocumentService) Label() string {
	return m.Called().String(0)
}
