package llm

import (
	"context"

	"github.com/cloudwego/eino/components/model"
	"github.com/huimingz/aicommit/internal/config"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// GetConfig returns the model configuration with provider defaults applied
	GetConfig() config.ModelConfig

	// CreateChatModel creates an Eino chat model instance
	CreateChatModel(ctx context.Context) (model.BaseChatModel, error)
}
