// Package gemini wraps the Google Gen AI SDK for the two calls this
// application makes: markdown medical answers and inline illustration images.
//
// This client uses the Gemini API backend via the official Go SDK:
// https://github.com/googleapis/go-genai
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Default model names - the actual API model names.
const (
	// DefaultTextModel answers medical questions in markdown.
	DefaultTextModel = "gemini-2.5-flash-preview-05-20"

	// DefaultImageModel produces inline images alongside text.
	DefaultImageModel = "gemini-2.0-flash-preview-image-generation"
)

// imageModalities requests both text and image parts from the image model.
var imageModalities = []string{"TEXT", "IMAGE"}

// Image is a single inline image returned by a model.
// The zero value means the response carried no image data.
type Image struct {
	Data     []byte
	MIMEType string
}

// Empty reports whether the response carried no image data.
func (i Image) Empty() bool {
	return len(i.Data) == 0
}

// Options configures a Client.
type Options struct {
	// APIKey authenticates against the Gemini API. When empty the SDK
	// falls back to the GOOGLE_API_KEY or GEMINI_API_KEY env vars.
	APIKey string

	// TextModel overrides DefaultTextModel when non-empty.
	TextModel string

	// ImageModel overrides DefaultImageModel when non-empty.
	ImageModel string
}

// Client calls Gemini models over the Gemini API backend.
type Client struct {
	client     *genai.Client
	textModel  string
	imageModel string
}

// New creates a Client for the Gemini API backend.
func New(ctx context.Context, opts Options) (*Client, error) {
	clientCfg := &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
	}
	if opts.APIKey != "" {
		clientCfg.APIKey = opts.APIKey
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &Client{
		client:     client,
		textModel:  opts.TextModel,
		imageModel: opts.ImageModel,
	}
	if c.textModel == "" {
		c.textModel = DefaultTextModel
	}
	if c.imageModel == "" {
		c.imageModel = DefaultImageModel
	}

	return c, nil
}

// TextModel returns the model name used for text generation.
func (c *Client) TextModel() string {
	return c.textModel
}

// ImageModel returns the model name used for image generation.
func (c *Client) ImageModel() string {
	return c.imageModel
}

// GenerateText sends a prompt to the text model and returns the answer text.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		{
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}

	result, err := c.client.Models.GenerateContent(ctx, c.textModel, contents, nil)
	if err != nil {
		return "", wrapAPIError("text generation", err)
	}

	text := joinTextParts(result)
	if text == "" {
		return "", errors.New("empty response from model")
	}

	return text, nil
}

// GenerateImage sends a prompt to the image model with TEXT and IMAGE
// response modalities and returns the first inline image in the response.
// A response without an image part yields a zero Image and no error.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (Image, error) {
	contents := []*genai.Content{
		{
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}

	genConfig := &genai.GenerateContentConfig{
		ResponseModalities: imageModalities,
	}

	result, err := c.client.Models.GenerateContent(ctx, c.imageModel, contents, genConfig)
	if err != nil {
		return Image{}, wrapAPIError("image generation", err)
	}

	return firstInlineImage(result), nil
}

// joinTextParts concatenates the text parts of the first candidate,
// skipping thought parts.
func joinTextParts(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 {
		return ""
	}

	candidate := result.Candidates[0]
	if candidate.Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}

// firstInlineImage scans candidates in order and returns the first part
// carrying inline image bytes.
func firstInlineImage(result *genai.GenerateContentResponse) Image {
	if result == nil {
		return Image{}
	}

	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return Image{
					Data:     part.InlineData.Data,
					MIMEType: part.InlineData.MIMEType,
				}
			}
		}
	}

	return Image{}
}

// wrapAPIError annotates a failed call, surfacing the API status when present.
func wrapAPIError(op string, err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s failed (%d %s): %w", op, apiErr.Code, apiErr.Status, err)
	}
	return fmt.Errorf("%s failed: %w", op, err)
}
