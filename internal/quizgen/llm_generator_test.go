package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/abhisek/lexiz/internal/llm"
	"github.com/abhisek/lexiz/internal/track"
)

func hskTrack(t *testing.T) *track.Track {
	t.Helper()
	tr, err := track.Get(track.HSK)
	if err != nil {
		t.Fatalf("get track: %v", err)
	}
	return tr
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Rand = rand.New(rand.NewPCG(1, 2))
	return cfg
}

const validBatch = `{"questions":[
	{"question":"学习 (xuéxí)","options":["to study","to eat","to sleep","to run"],"correctAnswer":"to study","level":1,"context":""},
	{"question":"经济 (jīngjì)","options":["economy","weather","history","music"],"correctAnswer":"economy","level":"4","context":"中国经济发展很快。"},
	{"question":"bad","options":["a","b","c"],"correctAnswer":"a","level":"2","context":""},
	{"question":"missing","options":["a","b","c","d"],"correctAnswer":"z","level":"3","context":""}
]}`

func TestGenerate_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validBatch)})
	gen := New(mock, testConfig())

	qs, err := gen.Generate(context.Background(), hskTrack(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("expected 2 valid questions, got %d", len(qs))
	}
	if qs[0].Level != "1" {
		t.Errorf("numeric level not normalized: %q", qs[0].Level)
	}
	if qs[1].Context == "" {
		t.Error("expected context to survive")
	}
	for _, q := range qs {
		if !q.Valid() {
			t.Errorf("invalid question returned: %+v", q)
		}
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != BatchSchema {
		t.Error("expected the batch schema on the request")
	}
	if !strings.Contains(req.Messages[0].Content, "Number of questions: 30") {
		t.Errorf("user message missing batch size:\n%s", req.Messages[0].Content)
	}
	if !strings.Contains(req.Messages[0].Content, "1, 2, 3, 4, 5, 6") {
		t.Errorf("user message missing level order:\n%s", req.Messages[0].Content)
	}
}

func TestGenerate_NoProvider(t *testing.T) {
	gen := New(nil, testConfig())

	_, err := gen.Generate(context.Background(), hskTrack(t))
	var ue *UserError
	if !errors.As(err, &ue) {
		t.Fatalf("expected *UserError, got %T (%v)", err, err)
	}
	if !errors.Is(err, ErrNoCredential) {
		t.Fatalf("expected ErrNoCredential in chain, got %v", err)
	}
}

func TestGenerate_Failures(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"provider error", llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("503")}}},
		{"empty response", llm.MockResponse{Content: json.RawMessage(``)}},
		{"malformed response", llm.MockResponse{Content: json.RawMessage(`{"questions":`)}},
		{"nothing usable", llm.MockResponse{Content: json.RawMessage(`{"questions":[{"question":"x","options":["a"],"correctAnswer":"a","level":"1","context":""}]}`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := New(llm.NewMockProvider(tt.resp), testConfig())
			_, err := gen.Generate(context.Background(), hskTrack(t))

			var ue *UserError
			if !errors.As(err, &ue) {
				t.Fatalf("expected *UserError, got %T (%v)", err, err)
			}
			if ue.Message == "" || ue.Err == nil {
				t.Fatalf("user error incomplete: %+v", ue)
			}
			if ue.Error() == ue.Err.Error() {
				t.Error("user-facing message should differ from the raw error")
			}
		})
	}
}

func TestGenerate_ProviderErrorIsUnwrappable(t *testing.T) {
	gen := New(llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("429")}}), testConfig())
	_, err := gen.Generate(context.Background(), hskTrack(t))

	var rl *llm.ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit in chain, got %v", err)
	}
}

func TestPrepare_EveryQuestionHasFourOptionsWithAnswer(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	var in []Question
	for n := 0; n <= 6; n++ {
		opts := make([]string, n)
		for i := range opts {
			opts[i] = string(rune('a' + i))
		}
		in = append(in,
			Question{Text: "with answer", Options: opts, Answer: "a"},
			Question{Text: "without answer", Options: opts, Answer: "zz"},
		)
	}

	for i := 0; i < 50; i++ {
		out := Prepare(in, r)
		if len(out) != 1 {
			t.Fatalf("expected exactly 1 survivor, got %d", len(out))
		}
		for _, q := range out {
			if len(q.Options) != OptionCount {
				t.Fatalf("options = %d, want %d", len(q.Options), OptionCount)
			}
			if q.AnswerIndex() < 0 {
				t.Fatalf("answer %q missing from %v", q.Answer, q.Options)
			}
		}
	}
}

func TestPrepare_DoesNotMutateInput(t *testing.T) {
	in := []Question{{Options: []string{"a", "b", "c", "d"}, Answer: "a"}}
	Prepare(in, rand.New(rand.NewPCG(3, 4)))
	if strings.Join(in[0].Options, "") != "abcd" {
		t.Fatalf("input options mutated: %v", in[0].Options)
	}
}

func TestPrepare_ShufflesOptions(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 13))
	q := Question{Options: []string{"a", "b", "c", "d"}, Answer: "a"}

	firsts := map[string]bool{}
	for i := 0; i < 100; i++ {
		out := Prepare([]Question{q}, r)
		firsts[out[0].Options[0]] = true
	}
	if len(firsts) < 2 {
		t.Fatalf("options never reordered across 100 shuffles")
	}
}
