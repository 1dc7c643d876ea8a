package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"acres-chat/internal/interfaces"
	"acres-chat/internal/model"
)

// ChatHandler handles HTTP requests for conversations and question turns.
type ChatHandler struct {
	chats interfaces.ChatService
	docs  interfaces.DocumentService
}

func NewChatHandler(chats interfaces.ChatService, docs interfaces.DocumentService) *ChatHandler {
	return &ChatHandler{chats: chats, docs: docs}
}

// CreateChatRequest is the DTO for creating a conversation.
type CreateChatRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100" example:"Grass growth"`
}

// SetActiveRequest is the DTO for switching the active conversation.
type SetActiveRequest struct {
	Name string `json:"name" validate:"required" example:"Default"`
}

// QuestionRequest is the DTO for submitting a question. An empty question is
// accepted and silently ignored, mirroring the submission form's behavior.
type QuestionRequest struct {
	Question string `json:"question" example:"What drives grass growth rates?"`
}

// ChatsResponse lists the conversations and the active one.
type ChatsResponse struct {
	Titles []string `json:"titles"`
	Active string   `json:"active"`
}

// StateResponse is the read surface the presentation layer polls.
type StateResponse struct {
	CurrentChat      string   `json:"current_chat"`
	ChatTitles       []string `json:"chat_titles"`
	Processing       bool     `json:"processing"`
	SelectedDocument string   `json:"selected_document"`
}

// GetState godoc
// @Summary      Read the session state
// @Description  Returns the active conversation, all titles, the processing flag and the selected-document label.
// @Tags         Chats
// @Produce      json
// @Success      200  {object}  StateResponse
// @Router       /v1/state [get]
func (h *ChatHandler) GetState(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, StateResponse{
		CurrentChat:      h.chats.ActiveChat(),
		ChatTitles:       h.chats.ChatTitles(),
		Processing:       h.chats.Processing(),
		SelectedDocument: h.docs.Label(),
	})
}

// GetChats godoc
// @Summary      List conversations
// @Tags         Chats
// @Produce      json
// @Success      200  {object}  ChatsResponse
// @Router       /v1/chats [get]
func (h *ChatHandler) GetChats(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, ChatsResponse{
		Titles: h.chats.ChatTitles(),
		Active: h.chats.ActiveChat(),
	})
}

// CreateChat godoc
// @Summary      Create a conversation
// @Description  Creates a conversation and makes it active. Creating an existing name resets it to empty.
// @Tags         Chats
// @Accept       json
// @Produce      json
// @Param        chat  body  CreateChatRequest  true  "Conversation name"
// @Success      201  {object}  StatusResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/chats [post]
func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	var req CreateChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}
	h.chats.CreateConversation(req.Name)
	respondWithJSON(w, http.StatusCreated, StatusResponse{Status: "ok"})
}

// DeleteChat godoc
// @Summary      Delete a conversation
// @Description  Deletes the named conversation. Deleting the last one recreates an empty default.
// @Tags         Chats
// @Produce      json
// @Param        chatName  path  string  true  "Conversation name"
// @Success      200  {object}  StatusResponse
// @Router       /v1/chats/{chatName} [delete]
func (h *ChatHandler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "chatName")
	h.chats.DeleteConversation(name)
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// SetActiveChat godoc
// @Summary      Switch the active conversation
// @Description  Moves the current-conversation pointer. The name is not validated against existing conversations.
// @Tags         Chats
// @Accept       json
// @Produce      json
// @Param        chat  body  SetActiveRequest  true  "Conversation name"
// @Success      200  {object}  StatusResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/chats/active [put]
func (h *ChatHandler) SetActiveChat(w http.ResponseWriter, r *http.Request) {
	var req SetActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}
	h.chats.SetActive(req.Name)
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// GetMessages godoc
// @Summary      Read the active conversation
// @Tags         Chats
// @Produce      json
// @Success      200  {array}  model.QA
// @Router       /v1/messages [get]
func (h *ChatHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.chats.CurrentMessages())
}

// HandleQuestion godoc
// @Summary      Ask a question
// @Description  Streams the turn as Server-Sent Events: one snapshot per answer delta, then finalization, sources and the reveal.
// @Tags         Questions
// @Accept       json
// @Produce      text/event-stream
// @Param        question  body  QuestionRequest  true  "The question"
// @Success      200  {object}  model.StreamEvent  "Stream of turn snapshots"
// @Failure      400  {object}  ErrorResponse     "Sent as a stream error event"
// @Router       /v1/questions [post]
func (h *ChatHandler) HandleQuestion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Error decoding question request body", "error", err)
		sendStreamError(w, "Invalid request body")
		return
	}

	events := make(chan model.StreamEvent)
	go h.chats.ProcessQuestion(r.Context(), req.Question, events)

	for event := range events {
		if r.Context().Err() != nil {
			// The turn itself runs to completion; only the delivery stops.
			slog.Info("Client disconnected during question stream.")
			break
		}
		if err := writeStreamEvent(w, event); err != nil {
			slog.Warn("Could not write to question stream, client likely disconnected.", "error", err)
			break
		}
	}

	// Drain so the turn still runs to completion when the client went away.
	go func() {
		for range events {
		}
	}()

	slog.Info("Finished streaming question turn.")
}
