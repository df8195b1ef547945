package engine

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"
	"strings"
	"time"

	"google.golang.org/genai"
)

const defaultEmbeddingModel = "gemini-embedding-001"

// GeminiEmbedder implements Embedder on top of the Gemini embedding
// API. Construct it once at startup; the underlying client is safe for
// concurrent use.
type GeminiEmbedder struct {
	client *genai.Client
	model  string
}

// NewGeminiEmbedder creates the embedder or fails fast when the API key
// is missing or the client cannot be built. Scoring must never run
// against a half-initialized capability.
func NewGeminiEmbedder(ctx context.Context) (*GeminiEmbedder, error) {
	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model := os.Getenv("EMBEDDING_MODEL")
	if model == "" {
		model = defaultEmbeddingModel
	}

	return &GeminiEmbedder{client: client, model: model}, nil
}

func (g *GeminiEmbedder) CosineSimilarity(ctx context.Context, a, b string) (float64, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(a, genai.RoleUser),
		genai.NewContentFromText(b, genai.RoleUser),
	}

	result, err := g.embedWithRetry(ctx, contents)
	if err != nil {
		return 0, err
	}

	if len(result.Embeddings) < 2 ||
		result.Embeddings[0] == nil || result.Embeddings[1] == nil {
		return 0, fmt.Errorf("embedding response missing vectors")
	}

	return cosine(result.Embeddings[0].Values, result.Embeddings[1].Values)
}

func (g *GeminiEmbedder) embedWithRetry(ctx context.Context, contents []*genai.Content) (*genai.EmbedContentResponse, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			sleepDuration := time.Duration(1<<uint(attempt)) * time.Second
			log.Printf("Retrying embedding call in %v (attempt %d)", sleepDuration, attempt+1)
			time.Sleep(sleepDuration)
		}

		result, err := g.client.Models.EmbedContent(ctx, g.model, contents, nil)
		if err == nil {
			return result, nil
		}
		lastErr = err
		log.Printf("Embedding attempt %d failed: %v", attempt+1, err)
	}
	return nil, fmt.Errorf("embedding failed after retries: %w", lastErr)
}

func cosine(a, b []float32) (float64, error) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, fmt.Errorf("embedding vectors have mismatched lengths %d and %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0, fmt.Errorf("embedding vector has zero norm")
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
