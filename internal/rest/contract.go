//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	api "github.com/s21platform/advice-service/internal/generated"
	"github.com/s21platform/advice-service/internal/model"
)

type DBRepo interface {
	CreateConversation(ctx context.Context, title string) (*model.Conversation, error)
	GetConversations(ctx context.Context) (*model.ConversationList, error)
	GetConversationByID(ctx context.Context, conversationID string) (*model.Conversation, error)
	TouchConversation(ctx context.Context, conversationID string) error
	DeleteConversation(ctx context.Context, conversationID string) error
	GetConversationMessages(ctx context.Context, conversationID string) (*model.MessageWithExcerptsList, error)
	GetMessageByID(ctx context.Context, messageID string) (*model.Message, error)
	UpdateMessageContent(ctx context.Context, messageID, content string) (*model.Message, error)
	DeleteMessage(ctx context.Context, messageID string) error
	GetExcerptByID(ctx context.Context, excerptID string) (*model.Excerpt, error)
	UpdateExcerpt(ctx context.Context, excerptID, title, content string) (*model.Excerpt, error)
	DeleteExcerpt(ctx context.Context, excerptID string) error

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type AdviceFlow interface {
	CreateMessage(ctx context.Context, conversationID, role, content string, advice *model.AdviceList) (*model.MessageWithExcerpts, error)
	SubmitPrompt(ctx context.Context, conversationID, content string) (*model.PromptExchange, error)
	EditMessage(ctx context.Context, conversationID, messageID, content string) (*model.PromptExchange, error)
}

type AIClient interface {
	GenerateAdvice(ctx context.Context, history []model.AIMessage) (*model.AdviceList, error)
}

type Validator interface {
	ValidateCreateConversation(req *api.CreateConversationRequest) error
	ValidateCreateMessage(req *api.CreateMessageRequest) error
	ValidateMessageContent(content string) error
	ValidateUpdateExcerpt(req *api.UpdateExcerptRequest) error
}
