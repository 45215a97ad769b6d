// Package match turns a résumé and a job description into a 0-100 fit score
// by way of a single text-generation call.
package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
)

var ErrUnconfigured = errors.New("text generation service unconfigured")

// Generator is one outbound prompt-to-completion call. Implementations may be
// unavailable or fail transiently; the estimator absorbs both.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Result struct {
	MatchScore  int    `json:"matchScore"`
	Explanation string `json:"explanation"`
}

const (
	maxInputChars  = 3000
	DefaultTimeout = 30 * time.Second

	failedExplanation = "AI matching failed."
)

const promptTemplate = `
You are an AI Job Matcher. Compare the following Resume and Job Description.

Resume:
%s

Job Description:
%s

Output a JSON object ONLY:
{
    "matchScore": <number 0-100>,
    "explanation": "<short 1 sentence reason>"
}
`

type Estimator struct {
	gen     Generator
	timeout time.Duration
	logger  *log.Logger
}

func NewEstimator(gen Generator, timeout time.Duration, logger *log.Logger) *Estimator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Estimator{gen: gen, timeout: timeout, logger: logger}
}

// Score makes one bounded generation call and parses the constrained JSON
// reply. Service, network and parse failures all degrade to the zero-score
// safe default; the only error a caller can observe is ErrUnconfigured.
func (e *Estimator) Score(ctx context.Context, resumeText, jobDescription string) (Result, error) {
	if e == nil || e.gen == nil {
		return Result{}, ErrUnconfigured
	}

	prompt := fmt.Sprintf(promptTemplate, truncate(resumeText, maxInputChars), truncate(jobDescription, maxInputChars))

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	raw, err := e.gen.Generate(ctx, prompt)
	if err != nil {
		if e.logger != nil {
			e.logger.Printf("match | generation error: %v", err)
		}
		return Result{MatchScore: 0, Explanation: failedExplanation}, nil
	}

	res, err := parseResult(raw)
	if err != nil {
		if e.logger != nil {
			e.logger.Printf("match | parse error: %v", err)
		}
		return Result{MatchScore: 0, Explanation: failedExplanation}, nil
	}
	return res, nil
}

func parseResult(raw string) (Result, error) {
	var res Result
	if err := json.Unmarshal([]byte(StripFences(raw)), &res); err != nil {
		return Result{}, err
	}
	if res.MatchScore < 0 {
		res.MatchScore = 0
	}
	if res.MatchScore > 100 {
		res.MatchScore = 100
	}
	return res, nil
}

// StripFences removes Markdown code-fence wrappers models like to add around
// JSON replies.
func StripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
