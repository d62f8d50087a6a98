package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	openaiclient "github.com/s21platform/advice-service/internal/client/openai"
	"github.com/s21platform/advice-service/internal/config"
	api "github.com/s21platform/advice-service/internal/generated"
	"github.com/s21platform/advice-service/internal/model"
	"github.com/s21platform/advice-service/internal/pkg/tx"
	"github.com/s21platform/advice-service/internal/service"
)

type Handler struct {
	repository DBRepo
	adviceFlow AdviceFlow
	aiClient   AIClient
	validator  Validator
}

func New(
	repo DBRepo,
	adviceFlow AdviceFlow,
	aiClient AIClient,
	validator Validator,
) *Handler {
	return &Handler{
		repository: repo,
		adviceFlow: adviceFlow,
		aiClient:   aiClient,
		validator:  validator,
	}
}

func (h *Handler) GetConversations(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversations")

	conversations, err := h.repository.GetConversations(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversations: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get conversations: %v", err), http.StatusInternalServerError)
		return
	}

	apiConversations := make([]api.Conversation, len(*conversations))
	for i, conversation := range *conversations {
		apiConversations[i] = toAPIConversation(conversation)
	}

	response := api.GetConversationsResponse{
		Conversations: apiConversations,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateConversation")

	var req api.CreateConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateCreateConversation(&req); err != nil {
		logger.Error(fmt.Sprintf("conversation validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("conversation validation failed: %v", err), http.StatusBadRequest)
		return
	}

	conversation, err := h.repository.CreateConversation(r.Context(), req.Title)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create conversation: %v", err))
		h.writeError(w, fmt.Sprintf("failed to create conversation: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, toAPIConversation(*conversation), http.StatusCreated)
}

func (h *Handler) DeleteConversation(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteConversation")

	conversation, err := h.repository.GetConversationByID(r.Context(), conversationId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversation: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get conversation: %v", err), http.StatusInternalServerError)
		return
	}

	if conversation == nil {
		logger.Error("conversation not found")
		h.writeError(w, "conversation not found", http.StatusNotFound)
		return
	}

	if err := h.repository.DeleteConversation(r.Context(), conversationId); err != nil {
		logger.Error(fmt.Sprintf("failed to delete conversation: %v", err))
		h.writeError(w, fmt.Sprintf("failed to delete conversation: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, api.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) GetConversationMessages(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversationMessages")

	messages, err := h.repository.GetConversationMessages(r.Context(), conversationId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get messages: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get messages: %v", err), http.StatusInternalServerError)
		return
	}

	formatted := service.FormatMessagesForUI(*messages)

	apiMessages := make([]api.FormattedMessage, len(formatted))
	for i, message := range formatted {
		apiMessages[i] = api.FormattedMessage{
			Id:       message.ID.String(),
			Role:     message.Role,
			Text:     message.Text,
			Excerpts: toAPIExcerpts(message.Excerpts),
		}
	}

	response := api.GetConversationMessagesResponse{
		Messages: apiMessages,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateMessage")

	var req api.CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateCreateMessage(&req); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	conversation, err := h.repository.GetConversationByID(r.Context(), conversationId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversation: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get conversation: %v", err), http.StatusInternalServerError)
		return
	}

	if conversation == nil {
		logger.Error("conversation not found")
		h.writeError(w, "conversation not found", http.StatusNotFound)
		return
	}

	message, err := h.adviceFlow.CreateMessage(r.Context(), conversationId, req.Role, req.Content, toModelAdvice(req.AiResponse))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create message: %v", err))
		h.writeError(w, fmt.Sprintf("failed to create message: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, toAPIMessageWithExcerpts(*message), http.StatusCreated)
}

func (h *Handler) UpdateMessage(w http.ResponseWriter, r *http.Request, conversationId string, messageId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateMessage")

	var req api.UpdateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateMessageContent(req.Content); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	existing, err := h.repository.GetMessageByID(r.Context(), messageId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get message: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get message: %v", err), http.StatusInternalServerError)
		return
	}

	if existing == nil || existing.ConversationID.String() != conversationId {
		logger.Error("message not found")
		h.writeError(w, "message not found", http.StatusNotFound)
		return
	}

	var message *model.Message
	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		var err error
		message, err = h.repository.UpdateMessageContent(ctx, messageId, req.Content)
		if err != nil {
			return err
		}

		if message == nil {
			return nil
		}

		return h.repository.TouchConversation(ctx, conversationId)
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to update message: %v", err))
		h.writeError(w, fmt.Sprintf("failed to update message: %v", err), http.StatusInternalServerError)
		return
	}

	if message == nil {
		logger.Error("message not found")
		h.writeError(w, "message not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, toAPIMessage(*message), http.StatusOK)
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request, conversationId string, messageId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteMessage")

	message, err := h.repository.GetMessageByID(r.Context(), messageId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get message: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get message: %v", err), http.StatusInternalServerError)
		return
	}

	if message == nil || message.ConversationID.String() != conversationId {
		logger.Error("message not found")
		h.writeError(w, "message not found", http.StatusNotFound)
		return
	}

	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		if err := h.repository.DeleteMessage(ctx, messageId); err != nil {
			return err
		}

		return h.repository.TouchConversation(ctx, conversationId)
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to delete message: %v", err))
		h.writeError(w, fmt.Sprintf("failed to delete message: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, api.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) SubmitPrompt(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SubmitPrompt")

	var req api.SubmitPromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateMessageContent(req.Content); err != nil {
		logger.Error(fmt.Sprintf("prompt validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("prompt validation failed: %v", err), http.StatusBadRequest)
		return
	}

	exchange, err := h.adviceFlow.SubmitPrompt(r.Context(), conversationId, req.Content)
	if err != nil {
		h.writeFlowError(w, logger, "failed to submit prompt", err)
		return
	}

	h.writeJSON(w, toAPIPromptExchange(*exchange), http.StatusOK)
}

func (h *Handler) EditMessage(w http.ResponseWriter, r *http.Request, conversationId string, messageId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("EditMessage")

	var req api.EditMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateMessageContent(req.Content); err != nil {
		logger.Error(fmt.Sprintf("edit validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("edit validation failed: %v", err), http.StatusBadRequest)
		return
	}

	exchange, err := h.adviceFlow.EditMessage(r.Context(), conversationId, messageId, req.Content)
	if err != nil {
		h.writeFlowError(w, logger, "failed to edit message", err)
		return
	}

	h.writeJSON(w, toAPIPromptExchange(*exchange), http.StatusOK)
}

func (h *Handler) UpdateExcerpt(w http.ResponseWriter, r *http.Request, excerptId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateExcerpt")

	var req api.UpdateExcerptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateUpdateExcerpt(&req); err != nil {
		logger.Error(fmt.Sprintf("excerpt validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("excerpt validation failed: %v", err), http.StatusBadRequest)
		return
	}

	excerpt, err := h.repository.UpdateExcerpt(r.Context(), excerptId, req.Title, req.Content)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to update excerpt: %v", err))
		h.writeError(w, fmt.Sprintf("failed to update excerpt: %v", err), http.StatusInternalServerError)
		return
	}

	if excerpt == nil {
		logger.Error("excerpt not found")
		h.writeError(w, "excerpt not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, toAPIExcerpt(*excerpt), http.StatusOK)
}

func (h *Handler) DeleteExcerpt(w http.ResponseWriter, r *http.Request, excerptId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteExcerpt")

	excerpt, err := h.repository.GetExcerptByID(r.Context(), excerptId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get excerpt: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get excerpt: %v", err), http.StatusInternalServerError)
		return
	}

	if excerpt == nil {
		logger.Error("excerpt not found")
		h.writeError(w, "excerpt not found", http.StatusNotFound)
		return
	}

	if err := h.repository.DeleteExcerpt(r.Context(), excerptId); err != nil {
		logger.Error(fmt.Sprintf("failed to delete excerpt: %v", err))
		h.writeError(w, fmt.Sprintf("failed to delete excerpt: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, api.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) GenerateAdvice(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GenerateAdvice")

	var req api.GenerateAdviceJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	history := make([]model.AIMessage, len(req))
	for i, entry := range req {
		history[i] = model.AIMessage{
			Role:    entry.Role,
			Content: entry.Content,
		}
	}

	advice, err := h.aiClient.GenerateAdvice(r.Context(), history)
	if err != nil {
		if errors.Is(err, openaiclient.ErrInvalidRequest) {
			logger.Error(fmt.Sprintf("advice request validation failed: %v", err))
			h.writeError(w, fmt.Sprintf("advice request validation failed: %v", err), http.StatusBadRequest)
			return
		}

		logger.Error(fmt.Sprintf("failed to generate advice: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate advice: %v", err), http.StatusBadGateway)
		return
	}

	response := api.GenerateAdviceResponse{
		OutputParsed: toAPIAdvice(*advice),
	}

	h.writeJSON(w, response, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

func (h *Handler) writeFlowError(w http.ResponseWriter, logger logger_lib.LoggerInterface, prefix string, err error) {
	logger.Error(fmt.Sprintf("%s: %v", prefix, err))

	switch {
	case errors.Is(err, service.ErrConversationNotFound), errors.Is(err, service.ErrMessageNotFound):
		h.writeError(w, fmt.Sprintf("%s: %v", prefix, err), http.StatusNotFound)
	case errors.Is(err, service.ErrAIResponseFailed):
		h.writeError(w, fmt.Sprintf("%s: %v", prefix, err), http.StatusBadGateway)
	default:
		h.writeError(w, fmt.Sprintf("%s: %v", prefix, err), http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}

func toAPIConversation(conversation model.Conversation) api.Conversation {
	return api.Conversation{
		Id:        conversation.ID.String(),
		Title:     conversation.Title,
		CreatedAt: conversation.CreatedAt.Format(time.RFC3339),
		UpdatedAt: conversation.UpdatedAt.Format(time.RFC3339),
	}
}

func toAPIMessage(message model.Message) api.Message {
	return api.Message{
		Id:             message.ID.String(),
		ConversationId: message.ConversationID.String(),
		Role:           message.Role,
		Content:        message.Content,
		CreatedAt:      message.CreatedAt.Format(time.RFC3339),
	}
}

func toAPIMessageWithExcerpts(message model.MessageWithExcerpts) api.MessageWithExcerpts {
	return api.MessageWithExcerpts{
		Id:             message.ID.String(),
		ConversationId: message.ConversationID.String(),
		Role:           message.Role,
		Content:        message.Content,
		CreatedAt:      message.CreatedAt.Format(time.RFC3339),
		Excerpts:       toAPIExcerpts(message.Excerpts),
	}
}

func toAPIExcerpts(excerpts model.ExcerptList) []api.Excerpt {
	apiExcerpts := make([]api.Excerpt, len(excerpts))
	for i, excerpt := range excerpts {
		apiExcerpts[i] = toAPIExcerpt(excerpt)
	}

	return apiExcerpts
}

func toAPIExcerpt(excerpt model.Excerpt) api.Excerpt {
	return api.Excerpt{
		Id:      excerpt.ID.String(),
		Title:   excerpt.Title,
		Content: excerpt.Content,
		Order:   excerpt.Order,
	}
}

func toAPIPromptExchange(exchange model.PromptExchange) api.PromptExchangeResponse {
	return api.PromptExchangeResponse{
		UserMessage:      toAPIMessage(exchange.UserMessage),
		AssistantMessage: toAPIMessageWithExcerpts(exchange.AssistantMessage),
	}
}

func toAPIAdvice(advice model.AdviceList) api.AdviceList {
	items := make([]api.ListItem, len(advice.List))
	for i, item := range advice.List {
		items[i] = api.ListItem{
			Title:   item.Title,
			Content: item.Content,
		}
	}

	return api.AdviceList{
		Title: advice.Title,
		List:  items,
	}
}

func toModelAdvice(advice *api.AdviceList) *model.AdviceList {
	if advice == nil {
		return nil
	}

	items := make([]model.ListItem, len(advice.List))
	for i, item := range advice.List {
		items[i] = model.ListItem{
			Title:   item.Title,
			Content: item.Content,
		}
	}

	return &model.AdviceList{
		Title: advice.Title,
		List:  items,
	}
}
