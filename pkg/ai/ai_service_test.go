package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"agrisync-backend/domain"

	openai "github.com/sashabaranov/go-openai"
)

type fakeCompletionClient struct {
	reply string
	err   error
}

func (f *fakeCompletionClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.reply}},
		},
	}, nil
}

func TestChatOnline(t *testing.T) {
	service := &aiService{
		client: &fakeCompletionClient{reply: "Rotate your crops each season."},
		model:  openai.GPT3Dot5Turbo,
	}

	res := service.Chat(context.Background(), domain.ChatRequest{Message: "Any farming tips?"})
	if !res.Success || res.Fallback {
		t.Fatalf("expected online response, got %+v", res)
	}
	if res.Response != "Rotate your crops each season." {
		t.Fatalf("response = %q", res.Response)
	}
}

func TestChatFallsBackOnAPIError(t *testing.T) {
	service := &aiService{
		client: &fakeCompletionClient{err: errors.New("connection refused")},
		model:  openai.GPT3Dot5Turbo,
	}

	res := service.Chat(context.Background(), domain.ChatRequest{Message: "How do I improve my trust score?"})
	if res.Success {
		t.Fatal("api failure reported as success")
	}
	if !res.Fallback || res.Mode != "offline" {
		t.Fatalf("fallback not flagged: %+v", res)
	}
	if !strings.Contains(res.Response, "Trust Score") {
		t.Fatalf("keyword fallback not selected: %q", res.Response)
	}
}

func TestFallbackKeywordSelection(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"How do I create a BATCH?", "To create a new batch"},
		{"what does the qr code show", "QR codes contain"},
		{"tell me about certification", "Add certifications"},
		{"something entirely unrelated", "offline mode"},
	}

	for _, tc := range cases {
		got := fallbackFor(tc.message)
		if !strings.Contains(got, tc.want) {
			t.Fatalf("fallbackFor(%q) = %q, want it to contain %q", tc.message, got, tc.want)
		}
	}
}
