package match

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubGenerator struct {
	reply  string
	err    error
	prompt string
	calls  int
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.calls++
	g.prompt = prompt
	return g.reply, g.err
}

func TestScore_ParsesFencedJSON(t *testing.T) {
	gen := &stubGenerator{reply: "```json\n{\"matchScore\": 85, \"explanation\": \"Good fit\"}\n```"}
	e := NewEstimator(gen, 0, nil)

	res, err := e.Score(context.Background(), "resume", "job")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.MatchScore != 85 || res.Explanation != "Good fit" {
		t.Fatalf("got %+v", res)
	}
}

func TestScore_PlainJSON(t *testing.T) {
	gen := &stubGenerator{reply: `{"matchScore": 42, "explanation": "Partial overlap"}`}
	e := NewEstimator(gen, 0, nil)

	res, err := e.Score(context.Background(), "resume", "job")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.MatchScore != 42 {
		t.Fatalf("got %+v", res)
	}
}

func TestScore_GenerationFailureDegradesToZero(t *testing.T) {
	gen := &stubGenerator{err: errors.New("upstream down")}
	e := NewEstimator(gen, 0, nil)

	res, err := e.Score(context.Background(), "resume", "job")
	if err != nil {
		t.Fatalf("failure must not propagate, got %v", err)
	}
	if res.MatchScore != 0 || res.Explanation != "AI matching failed." {
		t.Fatalf("got %+v", res)
	}
}

func TestScore_MalformedReplyDegradesToZero(t *testing.T) {
	gen := &stubGenerator{reply: "I think this candidate is great!"}
	e := NewEstimator(gen, 0, nil)

	res, err := e.Score(context.Background(), "resume", "job")
	if err != nil {
		t.Fatalf("parse failure must not propagate, got %v", err)
	}
	if res.MatchScore != 0 || res.Explanation != "AI matching failed." {
		t.Fatalf("got %+v", res)
	}
}

func TestScore_Unconfigured(t *testing.T) {
	e := NewEstimator(nil, 0, nil)
	_, err := e.Score(context.Background(), "resume", "job")
	if !errors.Is(err, ErrUnconfigured) {
		t.Fatalf("expected ErrUnconfigured, got %v", err)
	}
}

func TestScore_TruncatesInputs(t *testing.T) {
	long := strings.Repeat("x", 10000)
	gen := &stubGenerator{reply: `{"matchScore": 1, "explanation": "ok"}`}
	e := NewEstimator(gen, 0, nil)

	if _, err := e.Score(context.Background(), long, long); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if strings.Count(gen.prompt, "x") > 2*maxInputChars {
		t.Fatalf("inputs were not truncated to %d chars each", maxInputChars)
	}
}

func TestScore_ClampsOutOfRangeScore(t *testing.T) {
	gen := &stubGenerator{reply: `{"matchScore": 150, "explanation": "enthusiastic"}`}
	e := NewEstimator(gen, 0, nil)

	res, _ := e.Score(context.Background(), "r", "j")
	if res.MatchScore != 100 {
		t.Fatalf("expected clamp to 100, got %d", res.MatchScore)
	}
}

func TestStripFences(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"a\":1}\n```": `{"a":1}`,
		"```\n{\"a\":1}\n```":     `{"a":1}`,
		`{"a":1}`:                 `{"a":1}`,
		"  {\"a\":1}\n":           `{"a":1}`,
	}
	for in, want := range cases {
		if got := StripFences(in); got != want {
			t.Fatalf("StripFences(%q) = %q, want %q", in, got, want)
		}
	}
}
