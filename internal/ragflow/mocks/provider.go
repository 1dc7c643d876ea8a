// Package mocks provides a testify mock of the ragflow.Provider interface
// for service-level tests.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"acres-chat/internal/model"
	"acres-chat/internal/ragflow"
)

type MockProvider struct {
	mock.Mock
}

// NewMockProvider creates a mock whose expectations are asserted automatically
// when the test finishes.
func NewMockProvider(t *testing.T) *MockProvider {
	m := &MockProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockProvider) FindAssistant(ctx context.Context, name string) (*ragflow.Assistant, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ragflow.Assistant), args.Error(1)
}

func (m *MockProvider) CreateSession(ctx context.Context, assistantID, name string) (string, error) {
	args := m.Called(ctx, assistantID, name)
	return args.String(0), args.Error(1)
}

func (m *MockProvider) GetOrCreateDataset(ctx context.Context, name string) (*ragflow.Dataset, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ragflow.Dataset), args.Error(1)
}

func (m *MockProvider) Retrieve(ctx context.Context, req *ragflow.RetrieveRequest) ([]model.RetrievalChunk, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RetrievalChunk), args.Error(1)
}

func (m *MockProvider) ListDocuments(ctx context.Context, datasetID string, opts *ragflow.ListDocumentsOptions) ([]model.Document, error) {
	args := m.Called(ctx, datasetID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockProvider) ListDocumentChunks(ctx context.Context, datasetID, documentID string, page, pageSize int) ([]model.RetrievalChunk, error) {
	args := m.Called(ctx, datasetID, documentID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RetrievalChunk), args.Error(1)
}

func (m *MockProvider) Ask(ctx context.Context, assistantID string, req *ragflow.AskRequest, ch chan<- ragflow.AskResponse) error {
	args := m.Called(ctx, assistantID, req, ch)
	return args.Error(0)
}
