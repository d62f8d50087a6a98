package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/s21platform/advice-service/internal/model"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrMessageNotFound      = errors.New("message not found")
	ErrAIResponseFailed     = errors.New("failed to generate AI response")
)

type Service struct {
	repository DBRepo
	aiClient   AIClient
}

func New(repository DBRepo, aiClient AIClient) *Service {
	return &Service{
		repository: repository,
		aiClient:   aiClient,
	}
}

// CreateMessage persists a message; for assistant messages with structured
// advice it also derives the excerpt rows. Message, excerpts and the
// conversation timestamp commit in one transaction, so a failed excerpt write
// rolls the message back instead of leaving advice silently empty.
func (s *Service) CreateMessage(ctx context.Context, conversationID, role, content string, advice *model.AdviceList) (*model.MessageWithExcerpts, error) {
	var result model.MessageWithExcerpts

	err := s.repository.WithTx(ctx, func(ctx context.Context) error {
		message, err := s.repository.CreateMessage(ctx, conversationID, role, content)
		if err != nil {
			return err
		}

		result = model.MessageWithExcerpts{
			Message:  *message,
			Excerpts: model.ExcerptList{},
		}

		if role == model.AssistantMessageRole && advice != nil && len(advice.List) > 0 {
			excerpts, err := s.repository.CreateExcerpts(ctx, message.ID.String(), advice.List)
			if err != nil {
				return fmt.Errorf("failed to save excerpts: %v", err)
			}
			result.Excerpts = *excerpts
		}

		return s.repository.TouchConversation(ctx, conversationID)
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// SubmitPrompt appends the user prompt and a freshly generated assistant reply
// to the conversation. The AI context is rebuilt from the authoritative
// persisted history, never from a client-side cache.
func (s *Service) SubmitPrompt(ctx context.Context, conversationID, content string) (*model.PromptExchange, error) {
	conversation, err := s.repository.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, ErrConversationNotFound
	}

	history, err := s.repository.GetConversationMessages(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	advice, err := s.generateAdvice(ctx, buildAIContext(*history, content))
	if err != nil {
		return nil, err
	}

	return s.commitExchange(ctx, conversationID, nil, content, advice)
}

// EditMessage replaces the target message and everything after it with a new
// user message plus a regenerated assistant reply. The AI call happens before
// any deletion, so a failed call leaves the conversation untouched; the
// deletions and both inserts then commit as one transaction.
func (s *Service) EditMessage(ctx context.Context, conversationID, messageID, content string) (*model.PromptExchange, error) {
	history, err := s.repository.GetConversationMessages(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	messages := *history
	targetIndex := -1
	for i, message := range messages {
		if message.ID.String() == messageID {
			targetIndex = i
			break
		}
	}
	if targetIndex == -1 {
		return nil, ErrMessageNotFound
	}

	advice, err := s.generateAdvice(ctx, buildAIContext(messages[:targetIndex], content))
	if err != nil {
		return nil, err
	}

	deleteIDs := make([]uuid.UUID, 0, len(messages)-targetIndex)
	for _, message := range messages[targetIndex:] {
		deleteIDs = append(deleteIDs, message.ID)
	}

	return s.commitExchange(ctx, conversationID, deleteIDs, content, advice)
}

func (s *Service) generateAdvice(ctx context.Context, history []model.AIMessage) (*model.AdviceList, error) {
	advice, err := s.aiClient.GenerateAdvice(ctx, history)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAIResponseFailed, err)
	}

	return advice, nil
}

// buildAIContext maps the persisted history to the model request shape. Only
// user-role messages are sent back; prior assistant replies stay out of the
// context so the model never sees its own earlier advice.
func buildAIContext(messages model.MessageWithExcerptsList, newContent string) []model.AIMessage {
	context := make([]model.AIMessage, 0, len(messages)+1)
	for _, message := range messages {
		if message.Role != model.UserMessageRole {
			continue
		}
		context = append(context, model.AIMessage{
			Role:    model.UserMessageRole,
			Content: message.Content,
		})
	}

	return append(context, model.AIMessage{
		Role:    model.UserMessageRole,
		Content: newContent,
	})
}

func (s *Service) commitExchange(ctx context.Context, conversationID string, deleteIDs []uuid.UUID, userContent string, advice *model.AdviceList) (*model.PromptExchange, error) {
	serialized, err := json.Marshal(advice)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize advice: %v", err)
	}

	var exchange model.PromptExchange
	err = s.repository.WithTx(ctx, func(ctx context.Context) error {
		if err := s.repository.DeleteMessages(ctx, deleteIDs); err != nil {
			return err
		}

		userMessage, err := s.repository.CreateMessage(ctx, conversationID, model.UserMessageRole, userContent)
		if err != nil {
			return err
		}

		assistantMessage, err := s.repository.CreateMessage(ctx, conversationID, model.AssistantMessageRole, string(serialized))
		if err != nil {
			return err
		}

		excerpts := model.ExcerptList{}
		if len(advice.List) > 0 {
			created, err := s.repository.CreateExcerpts(ctx, assistantMessage.ID.String(), advice.List)
			if err != nil {
				return fmt.Errorf("failed to save excerpts: %v", err)
			}
			excerpts = *created
		}

		exchange = model.PromptExchange{
			UserMessage: *userMessage,
			AssistantMessage: model.MessageWithExcerpts{
				Message:  *assistantMessage,
				Excerpts: excerpts,
			},
		}

		return s.repository.TouchConversation(ctx, conversationID)
	})
	if err != nil {
		return nil, err
	}

	return &exchange, nil
}

// FormatMessagesForUI maps the storage shape to the UI shape: content becomes
// text, excerpts pass through unchanged.
func FormatMessagesForUI(messages model.MessageWithExcerptsList) []model.FormattedMessage {
	formatted := make([]model.FormattedMessage, len(messages))
	for i, message := range messages {
		formatted[i] = model.FormattedMessage{
			ID:       message.ID,
			Role:     message.Role,
			Text:     message.Content,
			Excerpts: message.Excerpts,
		}
	}

	return formatted
}
