// Package llms wraps the external embedding provider.
package llms

import (
	"context"
	"errors"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/getmingle/mingle/config"
	"github.com/getmingle/mingle/pkg/llms/openairetryclient"
	"github.com/getmingle/mingle/pkg/models"
)

var _ models.EmbeddingClient = &OpenAIEmbeddingsClient{}

type OpenAIEmbeddingsClient struct {
	client *openairetryclient.OpenAIRetryClient
	model  openai.EmbeddingModel
}

// NewOpenAIEmbeddingsClient creates an embeddings client from config.
// Returns an error if the API key is not set.
func NewOpenAIEmbeddingsClient(cfg *config.Config) (*OpenAIEmbeddingsClient, error) {
	if cfg.LLM.OpenAIAPIKey == "" {
		return nil, errors.New("OPENAI_API_KEY is not set")
	}

	retryClient := &openairetryclient.OpenAIRetryClient{
		Client: *openai.NewClient(cfg.LLM.OpenAIAPIKey),
	}
	retryClient.Config.Timeout = time.Duration(cfg.LLM.TimeoutSeconds) * time.Second
	retryClient.Config.MaxAttempts = uint(cfg.LLM.MaxAttempts)

	return &OpenAIEmbeddingsClient{
		client: retryClient,
		model:  openai.EmbeddingModel(cfg.LLM.EmbeddingModel),
	}, nil
}

// EmbedText embeds a single text blob and returns the provider's vector.
func (c *OpenAIEmbeddingsClient) EmbedText(ctx context.Context, text string) (models.Vector, error) {
	resp, err := c.client.CreateEmbeddingsWithRetry(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: c.model,
	})
	if err != nil {
		return nil, models.NewExternalServiceError("OpenAI", err)
	}
	if len(resp.Data) == 0 {
		return nil, models.NewExternalServiceError("OpenAI", errors.New("no embedding data in response"))
	}

	embedding := resp.Data[0].Embedding
	vector := make(models.Vector, len(embedding))
	for i, v := range embedding {
		vector[i] = float64(v)
	}
	return vector, nil
}
