package llm

import (
	"context"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/huimingz/aicommit/internal/config"
	"google.golang.org/genai"
)

const (
	DeepseekDefaultBaseURL = "https://api.deepseek.com/v1"
	OllamaDefaultBaseURL   = "http://localhost:11434/v1"
	GrokDefaultBaseURL     = "https://api.x.ai/v1"

	// ollamaPlaceholderKey satisfies the OpenAI client, Ollama ignores it
	ollamaPlaceholderKey = "ollama"
)

// OpenAICompatibleProvider talks to any endpoint that speaks the OpenAI
// chat completions API: OpenAI itself, Deepseek, Grok and Ollama.
type OpenAICompatibleProvider struct {
	name string
	cfg  config.ModelConfig
}

func newOpenAICompatible(name, defaultBaseURL string, cfg config.ModelConfig) *OpenAICompatibleProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &OpenAICompatibleProvider{name: name, cfg: cfg}
}

// NewOpenAIProvider creates a provider for api.openai.com (or a custom base_url)
func NewOpenAIProvider(cfg config.ModelConfig) *OpenAICompatibleProvider {
	return newOpenAICompatible("openai", "", cfg)
}

// NewDeepseekProvider creates a provider for the Deepseek API
func NewDeepseekProvider(cfg config.ModelConfig) *OpenAICompatibleProvider {
	return newOpenAICompatible("deepseek", DeepseekDefaultBaseURL, cfg)
}

// NewGrokProvider creates a provider for xAI Grok
func NewGrokProvider(cfg config.ModelConfig) *OpenAICompatibleProvider {
	return newOpenAICompatible("grok", GrokDefaultBaseURL, cfg)
}

// NewOllamaProvider creates a provider for a local Ollama server
func NewOllamaProvider(cfg config.ModelConfig) *OpenAICompatibleProvider {
	if cfg.APIKey == "" {
		cfg.APIKey = ollamaPlaceholderKey
	}
	return newOpenAICompatible("ollama", OllamaDefaultBaseURL, cfg)
}

func (p *OpenAICompatibleProvider) Name() string {
	return p.name
}

func (p *OpenAICompatibleProvider) GetConfig() config.ModelConfig {
	return p.cfg
}

func (p *OpenAICompatibleProvider) CreateChatModel(ctx context.Context) (model.BaseChatModel, error) {
	return openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:  p.cfg.APIKey,
		Model:   p.cfg.Model,
		BaseURL: p.cfg.BaseURL,
	})
}

// GeminiProvider implements Provider for Google Gemini
type GeminiProvider struct {
	cfg config.ModelConfig
}

// NewGeminiProvider creates a new Gemini provider
func NewGeminiProvider(cfg config.ModelConfig) *GeminiProvider {
	return &GeminiProvider{cfg: cfg}
}

func (p *GeminiProvider) Name() string {
	return "gemini"
}

func (p *GeminiProvider) GetConfig() config.ModelConfig {
	return p.cfg
}

func (p *GeminiProvider) CreateChatModel(ctx context.Context) (model.BaseChatModel, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  p.cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if p.cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: p.cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, err
	}

	return gemini.NewChatModel(ctx, &gemini.Config{
		Client: client,
		Model:  p.cfg.Model,
	})
}
