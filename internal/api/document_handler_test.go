package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"acres-chat/internal/api"
	app_errors "acres-chat/internal/errors"
	"acres-chat/internal/interfaces/mocks"
	"acres-chat/internal/model"
)

func setupDocumentHandler(t *testing.T) (*api.DocumentHandler, *mocks.MockDocumentService) {
	mockDocs := mocks.NewMockDocumentService(t)
	return api.NewDocumentHandler(mockDocs), mockDocs
}

func TestDocumentHandler_ListDocuments(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockDocs := setupDocumentHandler(t)
		docs := []model.Document{{ID: "doc-1", Name: "paper.pdf"}}
		mockDocs.On("ListDocuments", mock.Anything).Return(docs, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/documents", nil)
		rr := httptest.NewRecorder()
		handler.ListDocuments(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var returned []model.Document
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
		assert.Equal(t, docs, returned)
	})

	t.Run("Failure - listing fails", func(t *testing.T) {
		handler, mockDocs := setupDocumentHandler(t)
		mockDocs.On("ListDocuments", mock.Anything).Return(nil, app_errors.ErrInternal).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/documents", nil)
		rr := httptest.NewRecorder()
		handler.ListDocuments(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestDocumentHandler_SelectDocument(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockDocs := setupDocumentHandler(t)
		mockDocs.On("Select", mock.Anything, model.Document{ID: "doc-1", Name: "paper.pdf"}).
			Return(nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/v1/documents/selection",
			strings.NewReader(`{"id":"doc-1","name":"paper.pdf"}`))
		rr := httptest.NewRecorder()
		handler.SelectDocument(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - missing id", func(t *testing.T) {
		handler, mockDocs := setupDocumentHandler(t)

		req := httptest.NewRequest(http.MethodPut, "/v1/documents/selection",
			strings.NewReader(`{"name":"paper.pdf"}`))
		rr := httptest.NewRecorder()
		handler.SelectDocument(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockDocs.AssertNotCalled(t, "Select", mock.Anything, mock.Anything)
	})

	t.Run("Failure - chunk fetch fails", func(t *testing.T) {
		handler, mockDocs := setupDocumentHandler(t)
		mockDocs.On("Select", mock.Anything, mock.Anything).
			Return(app_errors.ErrInternal).Once()

		req := httptest.NewRequest(http.MethodPut, "/v1/documents/selection",
			strings.NewReader(`{"id":"doc-1","name":"paper.pdf"}`))
		rr := httptest.NewRecorder()
		handler.SelectDocument(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestDocumentHandler_ClearSelection(t *testing.T) {
	handler, mockDocs := setupDocumentHandler(t)
	mockDocs.On("Clear").Once()

	req := httptest.NewRequest(http.MethodDelete, "/v1/documents/selection", nil)
	rr := httptest.NewRecorder()
	handler.ClearSelection(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var status api.StatusResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &status))
	assert.Equal(t, "ok", status.Status)
}
