package tagger

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/divinosdoces/contratos-api/internal/core"
)

const tagSystemPrompt = `Você é um marcador de entidades nomeadas para textos em português.
Responda SOMENTE com um array JSON de objetos {"text": "...", "label": "..."}.
Labels permitidos: PER (pessoa), LOC (local), ORG (organização), DATE (data).
Liste as entidades na ordem em que aparecem no texto.`

// GeminiTagger implements core.EntityTagger over the Gemini API. The model is
// a process-lifetime dependency: built once at startup, read-only afterwards.
type GeminiTagger struct {
	client    *genai.Client
	modelName string
}

func NewGeminiTagger(ctx context.Context, apiKey, modelName string) (*GeminiTagger, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}
	return &GeminiTagger{client: cl, modelName: modelName}, nil
}

func (g *GeminiTagger) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// Tag sends the full text to the model and parses the entity list back.
func (g *GeminiTagger) Tag(ctx context.Context, text string) ([]core.Entity, error) {
	m := g.client.GenerativeModel(g.modelName)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(tagSystemPrompt)},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("gemini tag: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, nil
	}

	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return parseEntities(b.String())
}

// parseEntities decodes the model's JSON answer, tolerating a markdown code
// fence around it.
func parseEntities(raw string) ([]core.Entity, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var ents []core.Entity
	if err := json.Unmarshal([]byte(raw), &ents); err != nil {
		return nil, fmt.Errorf("decode entities: %w", err)
	}
	return ents, nil
}

var _ core.EntityTagger = (*GeminiTagger)(nil)
