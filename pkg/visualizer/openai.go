package visualizer

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/directpavers/paverquote/pkg/domain"
	openai "github.com/sashabaranov/go-openai"
)

// maxTextureBytes bounds the swatch download so a bad catalog URL cannot
// balloon a request
const maxTextureBytes = 10 << 20

var dataURLPattern = regexp.MustCompile(`data:image/[a-zA-Z+.-]+;base64,[A-Za-z0-9+/=]+`)

// OpenAIClient renders simulations through a multimodal chat model
type OpenAIClient struct {
	client     *openai.Client
	model      string
	httpClient *http.Client
}

// NewOpenAIClient creates a visualization client. The timeout covers the
// texture download; the generation call itself honors the request context.
func NewOpenAIClient(apiKey, model string, timeout time.Duration) *OpenAIClient {
	return &OpenAIClient{
		client:     openai.NewClient(apiKey),
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Generate applies the paver texture to the customer photo
func (c *OpenAIClient) Generate(ctx context.Context, req Request) (*Result, error) {
	if !strings.HasPrefix(req.PhotoDataURL, "data:image/") {
		return nil, domain.NewValidationError("photo must be a base64 image data URL")
	}

	textureDataURL, err := c.textureAsDataURL(ctx, req.TextureURL)
	if err != nil {
		return nil, domain.NewGenerationError(err)
	}

	prompt := BuildPrompt(req.ProductName, req.VariantName, req.ProductPrompt)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: prompt,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    req.PhotoDataURL,
							Detail: openai.ImageURLDetailHigh,
						},
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    textureDataURL,
							Detail: openai.ImageURLDetailLow,
						},
					},
				},
			},
		},
	})
	if err != nil {
		return nil, domain.NewGenerationError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, domain.NewGenerationError(fmt.Errorf("model returned no choices"))
	}

	image := ExtractImageDataURL(resp.Choices[0].Message.Content)
	if image == "" {
		return nil, domain.NewGenerationError(fmt.Errorf("model response contained no image"))
	}
	return &Result{ImageDataURL: image}, nil
}

// ExtractImageDataURL pulls the first base64 image data URL out of a model
// response, which may wrap it in markdown or prose
func ExtractImageDataURL(content string) string {
	return dataURLPattern.FindString(content)
}

func (c *OpenAIClient) textureAsDataURL(ctx context.Context, textureURL string) (string, error) {
	if strings.HasPrefix(textureURL, "data:image/") {
		return textureURL, nil
	}
	if textureURL == "" {
		return "", fmt.Errorf("texture URL is empty")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, textureURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed building texture request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed fetching texture: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("texture fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTextureBytes))
	if err != nil {
		return "", fmt.Errorf("failed reading texture body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		contentType = http.DetectContentType(body)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("texture is not an image: %s", contentType)
	}

	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(body)), nil
}
