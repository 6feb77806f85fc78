// Package gemini talks to the Gemini API for the two AI-backed collaborators:
// parsing unstructured capture input (bank SMS text, receipt images) into a
// structured transaction, and generating a financial insight over the recent
// ledger. Both calls request strict JSON via a response schema and fall back
// to stripping markdown fences when the model ignores instructions.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/hardza1230/Wealth-Wallet/internal/models"
)

// ParsedTransaction is the structured object the model extracts from capture
// input. Amount is in major currency units as printed on the receipt; the
// capture service converts it to minor units.
type ParsedTransaction struct {
	Amount      float64 `json:"amount"`
	Merchant    string  `json:"merchant"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Type        string  `json:"type"` // INCOME or EXPENSE
}

// Insight is the model's analysis of the recent ledger.
type Insight struct {
	Summary       string  `json:"summary"`
	SavingsTip    string  `json:"savingsTip"`
	SpendingTrend string  `json:"spendingTrend"` // UP, DOWN or STABLE
	HealthScore   float64 `json:"healthScore"`   // 0-100
	FinancialRank string  `json:"financialRank"`
}

// Client wraps a genai client bound to a single model.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini client. The API key may be empty, in which case
// the genai SDK falls back to its own environment lookup.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Client{client: c, model: model}, nil
}

// ParseTransaction extracts a structured transaction from free-form text
// and/or a JPEG receipt image. At least one of the two must be provided.
func (c *Client) ParseTransaction(ctx context.Context, text string, imageJPEG []byte) (*ParsedTransaction, error) {
	parts := []*genai.Part{}
	if len(imageJPEG) > 0 {
		parts = append(parts,
			&genai.Part{InlineData: &genai.Blob{MIMEType: "image/jpeg", Data: imageJPEG}},
			&genai.Part{Text: "Analyze this receipt/slip image."},
		)
	}
	if text != "" {
		parts = append(parts, &genai.Part{Text: fmt.Sprintf("Analyze this text: %q", text)})
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("gemini: no capture input")
	}

	contents := []*genai.Content{{Role: "user", Parts: parts}}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: captureSystemInstruction()}}},
		ResponseMIMEType:  "application/json",
		ResponseSchema:    parsedTransactionSchema(),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: generate content: %w", err)
	}
	raw := resp.Text()
	if raw == "" {
		return nil, fmt.Errorf("gemini: empty response from model")
	}

	return decodeParsedTransaction(raw)
}

// GenerateInsight analyzes the given transactions and returns a gamified
// summary with a health score and rank.
func (c *Client) GenerateInsight(ctx context.Context, transactions []models.Transaction) (*Insight, error) {
	txData, err := json.Marshal(transactions)
	if err != nil {
		return nil, fmt.Errorf("gemini: marshal transactions: %w", err)
	}

	contents := []*genai.Content{{
		Role: "user",
		Parts: []*genai.Part{
			{Text: "Analyze my spending and give me my rank.\n\nTransaction history:\n" + string(txData)},
		},
	}}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: insightSystemInstruction}}},
		ResponseMIMEType:  "application/json",
		ResponseSchema:    insightSchema(),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: generate content: %w", err)
	}
	raw := resp.Text()
	if raw == "" {
		return nil, fmt.Errorf("gemini: empty response from model")
	}

	return decodeInsight(raw)
}

func decodeParsedTransaction(raw string) (*ParsedTransaction, error) {
	var parsed ParsedTransaction
	if err := json.Unmarshal([]byte(cleanModelJSON(raw)), &parsed); err != nil {
		return nil, fmt.Errorf("gemini: unmarshal transaction JSON: %w", err)
	}
	if parsed.Amount < 0 {
		return nil, fmt.Errorf("gemini: model returned negative amount %v", parsed.Amount)
	}
	if parsed.Type != string(models.TransactionTypeIncome) && parsed.Type != string(models.TransactionTypeExpense) {
		return nil, fmt.Errorf("gemini: model returned unknown transaction type %q", parsed.Type)
	}
	return &parsed, nil
}

func decodeInsight(raw string) (*Insight, error) {
	var insight Insight
	if err := json.Unmarshal([]byte(cleanModelJSON(raw)), &insight); err != nil {
		return nil, fmt.Errorf("gemini: unmarshal insight JSON: %w", err)
	}
	if insight.HealthScore < 0 {
		insight.HealthScore = 0
	}
	if insight.HealthScore > 100 {
		insight.HealthScore = 100
	}
	switch insight.SpendingTrend {
	case "UP", "DOWN", "STABLE":
	default:
		insight.SpendingTrend = "STABLE"
	}
	return &insight, nil
}

// cleanModelJSON strips markdown fences and surrounding junk when the model
// ignores the strict-JSON instruction.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		// Drop the first line (``` or ```json).
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	// Keep only from the first '{' to the last '}' if junk remains.
	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}

func parsedTransactionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"amount":      {Type: genai.TypeNumber},
			"merchant":    {Type: genai.TypeString},
			"date":        {Type: genai.TypeString, Description: "ISO 8601 format YYYY-MM-DD"},
			"description": {Type: genai.TypeString},
			"category":    {Type: genai.TypeString},
			"type":        {Type: genai.TypeString, Enum: []string{"INCOME", "EXPENSE"}},
		},
		Required: []string{"amount", "merchant", "date", "description", "category", "type"},
	}
}

func insightSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary":       {Type: genai.TypeString, Description: "Brief analysis"},
			"savingsTip":    {Type: genai.TypeString, Description: "Specific advice"},
			"spendingTrend": {Type: genai.TypeString, Enum: []string{"UP", "DOWN", "STABLE"}},
			"healthScore":   {Type: genai.TypeNumber, Description: "0-100"},
			"financialRank": {Type: genai.TypeString, Description: "The gamified title based on score"},
		},
		Required: []string{"summary", "savingsTip", "spendingTrend", "healthScore", "financialRank"},
	}
}
