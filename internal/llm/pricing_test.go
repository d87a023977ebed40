package llm

import "testing"

func TestLookupCost(t *testing.T) {
	c := LookupCost("gemini-2.5-flash")
	if c == nil {
		t.Fatal("expected pricing for gemini-2.5-flash")
	}
	// 1M in at $0.30 + 1M out at $2.50.
	if got := c.Cost(1_000_000, 1_000_000); got < 2.79 || got > 2.81 {
		t.Fatalf("cost = %f, want 2.80", got)
	}
	if LookupCost("no-such-model") != nil {
		t.Fatal("expected nil for unknown model")
	}
	if LookupCost(resolveModel("gemini-tts", geminiModels)) == nil {
		t.Fatal("default speech model should be priced")
	}
}
