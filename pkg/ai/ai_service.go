package ai

import (
	"agrisync-backend/domain"
	"agrisync-backend/internal/utils"
	"context"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = `You are an AI assistant for AgriSync, a farm-to-table traceability platform designed for small producers in India. Your role is to help farmers and producers with:

1. Batch management and product tracking
2. QR code generation and supply chain traceability
3. Trust score improvement and certification guidance
4. Sustainable farming practices
5. Market access and B2B connections
6. Technology adoption for rural farmers

Guidelines:
- Be helpful, friendly, and supportive
- Use simple language suitable for farmers
- Provide practical, actionable advice
- Focus on sustainable and ethical farming practices
- Help users understand how to use AgriSync features
- When discussing prices, use Indian Rupees (₹)
- Be culturally sensitive to Indian farming context

Keep responses concise but informative. If you don't know something specific about AgriSync features, acknowledge it and provide general farming advice instead.`

type fallbackResponse struct {
	keyword  string
	response string
}

// fallbackResponses are served when the completion API is unreachable,
// matched in order against the user's message.
var fallbackResponses = []fallbackResponse{
	{"batch", `To create a new batch: Go to Dashboard → "Create New Batch" → Fill product details (name, type, quantity, harvest date) → System generates QR code automatically. Each batch gets a unique ID for complete traceability!`},
	{"qr", `QR codes contain your product's complete story! When buyers scan, they see product origin, the supply chain journey, trust score, certifications, and producer information. It builds instant buyer confidence!`},
	{"trust", `Trust Score factors: supply chain events logged, certifications attached, photo evidence, producer verification status. More transparency = higher trust = premium prices!`},
	{"certification", `Add certifications from Batch Details → Upload Documents. Supported: Organic, Fair Trade, Quality Standards. Certifications increase trust scores and access to premium markets!`},
	{"events", `Track your journey: add events like Processing → Quality Checks → Packaging → Transport. Include photos and location for maximum transparency. Buyers love seeing the complete story!`},
	{"market", `Access premium markets through high trust scores, complete documentation, certifications, and photo evidence. Transparency = premium pricing!`},
	{"price", `Pricing in Indian Rupees (₹): premium products with high trust scores can command 20-50% higher prices. Document everything to maximize value!`},
	{"help", `I can help with: creating and managing batches, QR code generation, trust score improvement, certifications, supply chain tracking, sustainable farming tips, and market access strategies.`},
}

const defaultFallback = `I'm currently in offline mode, but I can still help! I can guide you through AgriSync features, sustainable farming practices, and market access strategies. What would you like to know?`

type (
	// completionClient is the slice of the OpenAI client the service uses.
	completionClient interface {
		CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	}

	AIService interface {
		Chat(ctx context.Context, req domain.ChatRequest) domain.ChatResponse
	}

	aiService struct {
		client completionClient
		model  string
	}
)

func NewAIService() AIService {
	model := utils.GetConfig("OPENAI_MODEL")
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &aiService{
		client: openai.NewClient(utils.GetConfig("OPENAI_API_KEY")),
		model:  model,
	}
}

// Chat proxies to the completion API. API failures never surface as errors:
// the service degrades to a canned response matched against keywords in the
// user's message, flagged as a fallback.
func (s *aiService) Chat(ctx context.Context, req domain.ChatRequest) domain.ChatResponse {
	completion, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.Message},
		},
		MaxTokens:   300,
		Temperature: 0.7,
	})
	if err == nil && len(completion.Choices) > 0 {
		return domain.ChatResponse{
			Response: completion.Choices[0].Message.Content,
			Success:  true,
		}
	}
	if err != nil {
		log.Printf("OpenAI API error: %v", err)
	}

	return domain.ChatResponse{
		Response: fallbackFor(req.Message),
		Success:  false,
		Fallback: true,
		Mode:     "offline",
	}
}

func fallbackFor(message string) string {
	lower := strings.ToLower(message)
	for _, fr := range fallbackResponses {
		if strings.Contains(lower, fr.keyword) {
			return fr.response
		}
	}
	return defaultFallback
}
