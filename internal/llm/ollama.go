package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// StreamResponse is one fragment of a streamed generation.
type StreamResponse struct {
	Content string
	Done    bool
	Error   string
}

// Provider defines the interface for interacting with a language model.
type Provider interface {
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)
	// GenerateStream always closes ch. A failure is also delivered as a final
	// chunk with Error set.
	GenerateStream(ctx context.Context, req *GenerateRequest, ch chan<- StreamResponse) error
	ListModels(ctx context.Context) (*ListModelsResponse, error)
}

type GenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	System string `json:"system,omitempty"`
	Stream bool   `json:"stream"`
}

type GenerateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

type Model struct {
	Name       string    `json:"name"`
	ModifiedAt time.Time `json:"modified_at"`
	Size       int64     `json:"size"`
}

type ListModelsResponse struct {
	Models []Model `json:"models"`
}

// maxLineSize bounds a single NDJSON line from the stream.
const maxLineSize = 1024 * 1024

type ollamaProvider struct {
	client *http.Client
	url    string
}

func NewOllamaProvider(url string) Provider {
	return &ollamaProvider{
		client: &http.Client{},
		url:    url,
	}
}

func (p *ollamaProvider) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	body := *req
	body.Stream = false
	resp, err := p.post(ctx, "/api/generate", &body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var genResp GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}
	return &genResp, nil
}

func (p *ollamaProvider) GenerateStream(ctx context.Context, req *GenerateRequest, ch chan<- StreamResponse) (err error) {
	defer close(ch)
	defer func() {
		if err != nil {
			select {
			case ch <- StreamResponse{Error: err.Error()}:
			case <-ctx.Done():
			}
		}
	}()

	body := *req
	body.Stream = true
	resp, err := p.post(ctx, "/api/generate", &body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	type ollamaStreamChunk struct {
		Response string `json:"response"`
		Done     bool   `json:"done"`
		Error    string `json:"error"`
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var chunk ollamaStreamChunk
		if err := json.Unmarshal(line, &chunk); err != nil {
			return fmt.Errorf("could not decode stream chunk: %w", err)
		}
		if chunk.Error != "" {
			return fmt.Errorf("model error: %s", chunk.Error)
		}

		select {
		case ch <- StreamResponse{Content: chunk.Response, Done: chunk.Done}:
		case <-ctx.Done():
			return ctx.Err()
		}
		if chunk.Done {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("could not read stream: %w", err)
	}
	return fmt.Errorf("stream ended before completion")
}

func (p *ollamaProvider) ListModels(ctx context.Context) (*ListModelsResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url+"/api/tags", nil)
	if err != nil {
		return nil, fmt.Errorf("could not create http request: %w", err)
	}
	resp, err := p.do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var models ListModelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&models); err != nil {
		return nil, fmt.Errorf("could not decode models: %w", err)
	}
	return &models, nil
}

func (p *ollamaProvider) post(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	return p.do(httpReq)
}

// do sends the request and rejects any non-200 reply.
func (p *ollamaProvider) do(httpReq *http.Request) (*http.Response, error) {
	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		return nil, fmt.Errorf("api returned non-200 status %d: %s", resp.StatusCode, string(bodyBytes))
	}
	return resp, nil
}
