package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"travelmate/internal/service"
)

type chatCreateRequest struct {
	ParticipantIDs []string `json:"participantIds"`
	Message        string   `json:"message"`
	SenderID       string   `json:"senderId"`
}

type messageAddRequest struct {
	ChatID   string `json:"chatId"`
	SenderID string `json:"senderId"`
	Content  string `json:"content"`
}

// @Summary      Create a chat
// @Description  Create a chat for an exact participant set together with its first message
// @Tags         chats
// @Accept       json
// @Produce      json
// @Param        input body chatCreateRequest true "Participants and first message"
// @Success      201  {object}  domain.Chat
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /chat [post]
func handleCreateChat(chatSvc *service.ChatService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatCreateRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		chat, err := chatSvc.CreateChat(r.Context(), service.CreateChatInput{
			ParticipantIDs: req.ParticipantIDs,
			Message:        req.Message,
			SenderID:       req.SenderID,
		})
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusCreated, chat)
	}
}

// @Summary      Add a message
// @Description  Append a message to an existing chat
// @Tags         chats
// @Accept       json
// @Produce      json
// @Param        input body messageAddRequest true "Message"
// @Success      200  {object}  domain.Chat
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /chat/message [put]
func handleAddMessage(chatSvc *service.ChatService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req messageAddRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		chat, err := chatSvc.AddMessage(r.Context(), service.AddMessageInput{
			ChatID:   req.ChatID,
			SenderID: req.SenderID,
			Content:  req.Content,
		})
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, chat)
	}
}

// @Summary      Get a chat
// @Tags         chats
// @Produce      json
// @Param        id   path      string  true  "Chat ID"
// @Success      200  {object}  domain.Chat
// @Failure      404  {object}  errorResponse
// @Router       /chat/{id} [get]
func handleGetChat(chatSvc *service.ChatService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chat, err := chatSvc.GetChat(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, chat)
	}
}

// @Summary      List chats of a person
// @Description  Ids of every chat the person takes part in
// @Tags         chats
// @Produce      json
// @Param        id   path      string  true  "Person ID"
// @Success      200  {array}   domain.ChatRef
// @Failure      500  {object}  errorResponse
// @Router       /chats/{id} [get]
func handleListChatsForPerson(chatSvc *service.ChatService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		refs, err := chatSvc.ListChatIDsForPerson(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, refs)
	}
}

// @Summary      List messages of a chat
// @Tags         chats
// @Produce      json
// @Param        id   path      string  true  "Chat ID"
// @Success      200  {array}   domain.Message
// @Failure      404  {object}  errorResponse
// @Router       /messages/{id} [get]
func handleListMessages(chatSvc *service.ChatService, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msgs, err := chatSvc.ListMessages(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, msgs)
	}
}
