package generator

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"

	"github.com/interview-coach/backend/internal/models"
)

// LLMClient is the interface all generator backends satisfy.
type LLMClient interface {
	Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error)
}

// LLMResponse holds the raw response content and token usage.
type LLMResponse struct {
	Content      string
	PromptTokens int
	OutputTokens int
}

// Generator wraps an LLMClient and produces interview questions to top
// up the bank when selection cannot satisfy a domain/difficulty.
type Generator struct {
	llm   LLMClient
	model string
}

func NewGenerator() *Generator {
	var llm LLMClient
	model := "mock"

	if os.Getenv("USE_CLI_GENERATOR") == "true" {
		cliPath := os.Getenv("CLAUDE_CLI_PATH")
		if cliPath == "" {
			cliPath = "claude"
		}
		llm = NewCLIClient(cliPath)
		model = "claude-cli"
		log.Println("Generator using Claude CLI (local plan)")
	} else if os.Getenv("MOCK_GENERATOR") == "true" {
		llm = NewMockClient()
		log.Println("Generator using mock data")
	} else {
		model = os.Getenv("ANTHROPIC_MODEL")
		if model == "" {
			model = "claude-sonnet-4-5"
		}
		llm = NewAPIClient(model)
		log.Println("Generator using Anthropic API:", model)
	}

	return &Generator{llm: llm, model: model}
}

func (g *Generator) ModelName() string {
	return g.model
}

// GenerateQuestions asks the LLM for a batch of questions for the given
// domain and difficulty, each with a benchmark answer and keyword list.
func (g *Generator) GenerateQuestions(ctx context.Context, domain, difficulty string, count int) ([]models.Question, *LLMResponse, error) {
	if count <= 0 {
		count = 5
	}

	resp, err := g.llm.Generate(ctx, SystemPrompt(), BuildUserPrompt(domain, difficulty, count))
	if err != nil {
		return nil, nil, fmt.Errorf("generate questions: %w", err)
	}

	questions, err := ParseQuestions(resp.Content, domain, difficulty)
	if err != nil {
		return nil, resp, fmt.Errorf("parse generated questions: %w", err)
	}

	return questions, resp, nil
}

// ── APIClient — Anthropic SDK (Production) ─────────────────

type APIClient struct {
	client *anthropic.Client
	model  string
}

func NewAPIClient(model string) *APIClient {
	client := anthropic.NewClient(
		option.WithAPIKey(os.Getenv("ANTHROPIC_API_KEY")),
	)
	return &APIClient{client: &client, model: model}
}

func (c *APIClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   4096,
		Temperature: param.NewOpt(0.7),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	}

	message, err := c.callWithRetry(ctx, params)
	if err != nil {
		return nil, err
	}

	var responseText string
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}

	if responseText == "" {
		return nil, fmt.Errorf("no text content in API response")
	}

	return &LLMResponse{
		Content:      responseText,
		PromptTokens: int(message.Usage.InputTokens),
		OutputTokens: int(message.Usage.OutputTokens),
	}, nil
}

func (c *APIClient) callWithRetry(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			sleepDuration := time.Duration(1<<uint(attempt)) * time.Second
			log.Printf("Retrying Anthropic API call in %v (attempt %d)", sleepDuration, attempt+1)
			time.Sleep(sleepDuration)
		}

		message, err := c.client.Messages.New(ctx, params)
		if err == nil {
			return message, nil
		}
		lastErr = err
		log.Printf("Anthropic API attempt %d failed: %v", attempt+1, err)
	}
	return nil, fmt.Errorf("anthropic API failed after retries: %w", lastErr)
}

// ── MockClient — Local Development ─────────────────────────

type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (*LLMResponse, error) {
	return &LLMResponse{
		Content:      buildMockJSON(),
		PromptTokens: 500,
		OutputTokens: 1200,
	}, nil
}

func buildMockJSON() string {
	topics := []struct {
		question string
		answer   string
		keywords string
	}{
		{
			"What is the difference between a process and a thread?",
			"A process is an independent program with its own memory space, while threads share the memory of their parent process and are cheaper to create and switch between.",
			`"process", "thread", "memory", "scheduling"`,
		},
		{
			"Explain how an index speeds up database queries.",
			"An index is an auxiliary data structure, usually a B-tree, that lets the database locate rows without scanning the whole table, trading extra write cost and storage for faster reads.",
			`"index", "b-tree", "query", "table scan"`,
		},
		{
			"What is a race condition and how do you prevent one?",
			"A race condition occurs when multiple threads access shared state concurrently and the outcome depends on timing. It is prevented with synchronization such as mutexes, channels, or atomic operations.",
			`"race condition", "mutex", "synchronization", "concurrency"`,
		},
		{
			"Describe what happens when you type a URL into a browser.",
			"The browser resolves the domain via DNS, opens a TCP connection, performs a TLS handshake, sends an HTTP request, and renders the response HTML, fetching subresources as needed.",
			`"dns", "tcp", "http", "tls", "rendering"`,
		},
		{
			"What is the CAP theorem?",
			"The CAP theorem states a distributed system can guarantee at most two of consistency, availability, and partition tolerance at the same time, so designs pick a trade-off under network partitions.",
			`"consistency", "availability", "partition tolerance", "distributed systems"`,
		},
	}

	out := "["
	for i, tp := range topics {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf(
			`{"question":"[Mock] %s","expected_answer":"%s","keywords":[%s]}`,
			tp.question, tp.answer, tp.keywords)
	}
	return out + "]"
}
