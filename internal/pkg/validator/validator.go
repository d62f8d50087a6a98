package validator

import (
	"fmt"
	"strings"

	api "github.com/s21platform/advice-service/internal/generated"
	"github.com/s21platform/advice-service/internal/model"
)

const (
	MaxMessageLength        = 10000
	MaxTitleLength          = 200
	MaxExcerptTitleLength   = 100
	MaxExcerptContentLength = 5000
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateCreateConversation(req *api.CreateConversationRequest) error {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	if len([]rune(title)) > MaxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}

	return nil
}

func (v *Validator) ValidateCreateMessage(req *api.CreateMessageRequest) error {
	if strings.TrimSpace(req.Role) == "" {
		return fmt.Errorf("role is required")
	}

	if !model.IsKnownRole(req.Role) {
		return fmt.Errorf("role '%s' is not supported", req.Role)
	}

	return v.ValidateMessageContent(req.Content)
}

func (v *Validator) ValidateMessageContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content cannot be empty")
	}

	if len([]rune(strings.TrimSpace(content))) > MaxMessageLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", MaxMessageLength)
	}

	return nil
}

func (v *Validator) ValidateUpdateExcerpt(req *api.UpdateExcerptRequest) error {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	if len([]rune(title)) > MaxExcerptTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", MaxExcerptTitleLength)
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return fmt.Errorf("content cannot be empty")
	}

	if len([]rune(content)) > MaxExcerptContentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", MaxExcerptContentLength)
	}

	return nil
}
