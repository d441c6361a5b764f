package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain json", `[{"category":"x"}]`, `[{"category":"x"}]`},
		{"fenced json", "```json\n[1,2]\n```", "[1,2]"},
		{"bare fence", "```\n[1,2]\n```", "[1,2]"},
		{"surrounding whitespace", "  \n```json\n[]\n```\n ", "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeFence(tt.in); got != tt.want {
				t.Errorf("stripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// fakeCompletionServer serves one canned chat completion per request.
func fakeCompletionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Errorf("encode fake completion: %v", err)
		}
	}))
}

func newTestClassifier(baseURL string) *Classifier {
	return NewClassifier(&Config{APIKey: "test-key", BaseURL: baseURL + "/v1", Model: "test-model"})
}

func TestClassify(t *testing.T) {
	srv := fakeCompletionServer(t, "```json\n"+
		`[{"category":"Reasoning","subcategory":"Math"},`+
		`{"category":"Code Generation","subcategory":"Python"}]`+"\n```")
	defer srv.Close()

	c := newTestClassifier(srv.URL)
	got, err := c.Classify(context.Background(), "AI/ML", []string{
		"A Math Reasoning Benchmark",
		"A Python Code Generation Dataset",
	})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d classifications, want 2", len(got))
	}
	if got[0].Category != "Reasoning" || got[0].Subcategory != "Math" {
		t.Errorf("first = %+v", got[0])
	}
	if got[1].Category != "Code Generation" {
		t.Errorf("second = %+v", got[1])
	}
}

func TestClassify_EmptyTitles(t *testing.T) {
	c := newTestClassifier("http://127.0.0.1:1") // must not be contacted
	got, err := c.Classify(context.Background(), "NLP", nil)
	if err != nil || got != nil {
		t.Fatalf("got %v, %v; want nil, nil", got, err)
	}
}

func TestClassify_CountMismatch(t *testing.T) {
	srv := fakeCompletionServer(t, `[{"category":"Reasoning","subcategory":"Math"}]`)
	defer srv.Close()

	c := newTestClassifier(srv.URL)
	_, err := c.Classify(context.Background(), "AI/ML", []string{"one", "two"})
	if !errors.Is(err, ErrClassifier) {
		t.Fatalf("want ErrClassifier, got %v", err)
	}
}

func TestClassify_MalformedResponse(t *testing.T) {
	srv := fakeCompletionServer(t, "sorry, I cannot help with that")
	defer srv.Close()

	c := newTestClassifier(srv.URL)
	_, err := c.Classify(context.Background(), "AI/ML", []string{"one"})
	if !errors.Is(err, ErrClassifier) {
		t.Fatalf("want ErrClassifier, got %v", err)
	}
}

func TestClassify_RequestError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestClassifier(srv.URL)
	_, err := c.Classify(context.Background(), "AI/ML", []string{"one"})
	if !errors.Is(err, ErrClassifier) {
		t.Fatalf("want ErrClassifier, got %v", err)
	}
}
