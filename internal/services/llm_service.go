package services

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// LLMService extracts a draft job payload from pasted posting HTML so the
// client can prefill the posting form.
type LLMService struct {
	Client llms.Model
}

func NewLLMService(ctx context.Context, apiKey string) (*LLMService, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel("gemini-2.5-flash"),
	)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &LLMService{Client: llm}, nil
}

const jobExtractionPrompt = `
You are an expert Job Data Extraction Agent. Your task is to analyze the provided raw HTML/Text from a job posting and extract structured data.

### INSTRUCTIONS:
1. **Analyze** the text to identify the core job details.
2. **Ignore** navigation menus, footers, "similar jobs" lists, and site advertisements.
3. **Extract** the following fields strictly.
4. **Format** the output as valid JSON only. Do not wrap the output in markdown code blocks.

### OUTPUT SCHEMA:
{
    "title": "Job title (e.g., Senior Backend Engineer)",
    "company": "Name of the company (e.g., Google, StartupInc)",
    "type": "One of: full-time, part-time, contract, internship",
    "location": "Job location or 'Remote'",
    "description": "A clean summary of the job. Focus on Responsibilities. Remove HTML tags.",
    "requirements": ["Array", "of", "requirement", "bullet", "points"],
    "salary": "The salary string if explicitly mentioned (e.g., '$100k - $150k'), otherwise null",
    "contactEmail": "Contact or application email address if present, otherwise null"
}

### CONSTRAINT:
If a piece of information is missing, set the value to null. Do not hallucinate or guess.

### RAW CONTENT:
%s
`

// ExtractJobDetails takes raw HTML and returns the extracted payload as a
// JSON string.
func (s *LLMService) ExtractJobDetails(ctx context.Context, rawHTML string) (string, error) {
	if len(rawHTML) > 20000 {
		rawHTML = rawHTML[:20000]
	}

	prompt := fmt.Sprintf(jobExtractionPrompt, rawHTML)
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		return "", err
	}
	return resp, nil
}
