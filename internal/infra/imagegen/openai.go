package imagegen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"merch-store/internal/pkg/config"
	"merch-store/internal/pkg/errs"
	"merch-store/internal/usecase/commands"
)

const maxImageBytes = 32 << 20

// OpenAIGenerator calls the images API directly. Newer gpt-image models
// reject the response_format parameter and always return base64, so it is
// only sent for the dall-e generation of models.
type OpenAIGenerator struct {
	cfg        config.ImageGenConfig
	httpClient *http.Client
}

func NewOpenAIGenerator(cfg config.ImageGenConfig) *OpenAIGenerator {
	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil || timeout <= 0 {
		timeout = 180 * time.Second
	}
	return &OpenAIGenerator{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type imagesGenerationRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n,omitempty"`
	Size           string `json:"size,omitempty"`
	ResponseFormat string `json:"response_format,omitempty"` // b64_json|url
}

type imagesGenerationResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
		URL     string `json:"url"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string, n int) ([]commands.GeneratedImage, error) {
	if g.cfg.APIKey == "" {
		return nil, errs.New("missing image generation API key")
	}

	responseFormat := "b64_json"
	if strings.HasPrefix(strings.ToLower(g.cfg.Model), "gpt-image-") {
		responseFormat = ""
	}
	reqBody := imagesGenerationRequest{
		Model:          g.cfg.Model,
		Prompt:         prompt,
		N:              n,
		Size:           g.cfg.Size,
		ResponseFormat: responseFormat,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode generation request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(g.cfg.BaseURL, "/")+"/v1/images/generations", bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build generation request")
	}
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "image generation request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, errs.Wrap(err, "failed to read generation response")
	}

	var parsed imagesGenerationResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, errs.Wrap(err, "failed to decode generation response")
	}
	if resp.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("image API returned status %d", resp.StatusCode)
		if parsed.Error != nil && parsed.Error.Message != "" {
			msg += ": " + parsed.Error.Message
		}
		return nil, errs.New(msg)
	}

	images := make([]commands.GeneratedImage, 0, len(parsed.Data))
	for _, item := range parsed.Data {
		if b64 := strings.TrimSpace(item.B64JSON); b64 != "" {
			decoded, err := base64.StdEncoding.DecodeString(b64)
			if err != nil {
				return nil, errs.Wrap(err, "failed to decode base64 image")
			}
			images = append(images, commands.GeneratedImage{Bytes: decoded})
			continue
		}
		if u := strings.TrimSpace(item.URL); u != "" {
			images = append(images, commands.GeneratedImage{URL: u})
		}
	}
	return images, nil
}

// HTTPFetcher downloads provider-hosted images when the API returns URLs
// instead of inline bytes.
type HTTPFetcher struct {
	httpClient *http.Client
}

func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{httpClient: &http.Client{Timeout: 60 * time.Second}}
}

func (f *HTTPFetcher) FetchImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build image fetch request")
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "image fetch failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.New(fmt.Sprintf("image fetch returned status %d", resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, errs.Wrap(err, "failed to read image body")
	}
	return data, nil
}

var (
	_ commands.ImageGenerator = (*OpenAIGenerator)(nil)
	_ commands.ImageFetcher   = (*HTTPFetcher)(nil)
)
