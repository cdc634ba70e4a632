package platform

import (
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var (
	LLMClient *openai.Client
)

func InitLLMClient() {
	LLMClient = openai.NewClient(
		option.WithBaseURL(os.Getenv("LLM_BASE_URL")),
		option.WithAPIKey(os.Getenv("LLM_API_KEY")),
	)
}

// LLMModel returns the completion model name, defaulting to gpt-4o-mini.
func LLMModel() string {
	if m := os.Getenv("LLM_MODEL"); m != "" {
		return m
	}
	return "gpt-4o-mini"
}
