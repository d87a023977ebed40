package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/lexiz/internal/store"
)

func TestPrintEventList(t *testing.T) {
	var buf bytes.Buffer
	printEventList(&buf, nil)
	assert.Equal(t, "No LLM events found.\n", buf.String())

	buf.Reset()
	printEventList(&buf, []store.LLMRequestEventRecord{{
		ID: 7, Timestamp: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		LLMRequestEventData: store.LLMRequestEventData{
			Model: "gemini-2.5-flash-preview-tts-with-a-very-long-suffix", Purpose: "pronunciation",
			LatencyMs: 420, Success: false,
		},
	}})
	out := buf.String()
	assert.Contains(t, out, "pronunciation")
	assert.Contains(t, out, "gemini-2.5-flash-preview-tts  ")
	assert.NotContains(t, out, "-with-")
	assert.Contains(t, out, "✗")
}

func TestPrintEvent(t *testing.T) {
	var buf bytes.Buffer
	printEvent(&buf, &store.LLMRequestEventRecord{
		ID: 3,
		LLMRequestEventData: store.LLMRequestEventData{
			Provider: "gemini-2.5-flash", Model: "gemini-2.5-flash", Purpose: "question-gen",
			Success: false, ErrorMessage: "rate limited", RequestBody: "[user]\nWrite 30 questions.",
		},
	})
	out := buf.String()
	assert.Contains(t, out, "Result:    failed: rate limited")
	assert.NotContains(t, out, "Provider:")
	assert.Contains(t, out, "Write 30 questions.")
	assert.Contains(t, out, "(not captured)")
}

func TestPrintModelCost(t *testing.T) {
	var buf bytes.Buffer
	printModelCost(&buf, []store.LLMModelUsage{
		{Model: "gpt-4o-mini", Calls: 2, InputTokens: 1_000_000, OutputTokens: 1_000_000},
		{Model: "homegrown-model", Calls: 1},
	})
	out := buf.String()
	assert.Contains(t, out, "$0.75")
	assert.Contains(t, out, "TOTAL (partial)")
	assert.Contains(t, out, "Pricing unavailable for: homegrown-model")
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.0012", formatCost(0.0012))
	assert.Equal(t, "$1.50", formatCost(1.5))
}
