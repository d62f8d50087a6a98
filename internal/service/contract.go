//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/s21platform/advice-service/internal/model"
)

type DBRepo interface {
	GetConversationByID(ctx context.Context, conversationID string) (*model.Conversation, error)
	TouchConversation(ctx context.Context, conversationID string) error
	CreateMessage(ctx context.Context, conversationID, role, content string) (*model.Message, error)
	GetConversationMessages(ctx context.Context, conversationID string) (*model.MessageWithExcerptsList, error)
	DeleteMessages(ctx context.Context, messageIDs []uuid.UUID) error
	CreateExcerpts(ctx context.Context, messageID string, items []model.ListItem) (*model.ExcerptList, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type AIClient interface {
	GenerateAdvice(ctx context.Context, history []model.AIMessage) (*model.AdviceList, error)
}
