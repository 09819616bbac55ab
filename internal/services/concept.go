package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"google.golang.org/genai"

	"github.com/interiorswala/studio-backend/internal/logger"
	"github.com/interiorswala/studio-backend/internal/types"
	"github.com/interiorswala/studio-backend/internal/utils"
)

// ConceptGenerator produces a structured design concept from a free-text
// prompt. It is injected into the handler layer so tests can stub it.
type ConceptGenerator interface {
	Generate(ctx context.Context, prompt string) (*types.Concept, error)
}

const conceptPrompt = `Act as a luxury interior designer for Interiorswala. Generate a detailed interior design concept based on this request: %q.
The response must be in JSON format. Ensure the colorPalette contains valid CSS hex color codes.`

var conceptSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"theme":        {Type: genai.TypeString},
		"colorPalette": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"keyFeatures":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"materials":    {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"description":  {Type: genai.TypeString},
		"designPlan":   {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Description: "A step-by-step design execution plan"},
	},
	Required: []string{"theme", "colorPalette", "keyFeatures", "materials", "description", "designPlan"},
}

type geminiConceptGenerator struct {
	log    *logger.Logger
	client *genai.Client
	model  string
}

func NewGeminiConceptGenerator(ctx context.Context, log *logger.Logger) (ConceptGenerator, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("missing GEMINI_API_KEY")
	}
	model := utils.GetEnv("GEMINI_MODEL", "gemini-3-flash-preview", log)

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &geminiConceptGenerator{
		log:    log.With("service", "ConceptGenerator"),
		client: client,
		model:  model,
	}, nil
}

func (g *geminiConceptGenerator) Generate(ctx context.Context, prompt string) (*types.Concept, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(fmt.Sprintf(conceptPrompt, prompt), genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   conceptSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	var concept types.Concept
	if err := json.Unmarshal([]byte(resp.Text()), &concept); err != nil {
		return nil, fmt.Errorf("decode concept response: %w", err)
	}
	return &concept, nil
}
