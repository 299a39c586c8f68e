package service

import (
	"context"
	"errors"
	"testing"

	"airline-support-be/internal/constant"
	"airline-support-be/internal/pkg/logger"
	"airline-support-be/pkg/llm"
)

// stubProvider returns a canned answer (or error) for every call.
type stubProvider struct {
	response string
	err      error
}

func (p *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return p.response, p.err
}

func (p *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.response, p.err
}

// noopLogger keeps service tests quiet.
type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }
func (noopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}

func TestClassifyParsesProviderOutput(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     []string
	}{
		{
			name:     "single intent",
			response: "Cancel Trip",
			want:     []string{constant.IntentCancelTrip},
		},
		{
			name:     "bulleted list",
			response: "- Flight Status\n- Seat Availability",
			want:     []string{constant.IntentFlightStatus, constant.IntentSeatAvailability},
		},
		{
			name:     "noise lines are dropped",
			response: "Here are the intents:\nPet Travel\n",
			want:     []string{constant.IntentPetTravel},
		},
		{
			name:     "unrecognized output falls back to keywords",
			response: "Something Else Entirely",
			want:     []string{constant.IntentGeneralInquiry},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewIntentService(&stubProvider{response: tt.response}, noopLogger{})
			got := svc.Classify(context.Background(), "does not matter here")
			if len(got) != len(tt.want) {
				t.Fatalf("Classify() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Classify()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestClassifyKeywordFallback(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"cancel request", "I want to cancel my flight", constant.IntentCancelTrip},
		{"cancellation fee question", "what is the cancellation fee", constant.IntentCancellationPolicy},
		{"pet overrides cancel", "can I cancel my dog's ticket", constant.IntentPetTravel},
		{"flight status", "is my flight on time", constant.IntentFlightStatus},
		{"seat availability", "show me the seat map", constant.IntentSeatAvailability},
		{"baggage policy", "what is the baggage allowance", constant.IntentBaggagePolicy},
		{"conversational reply", "thanks", constant.IntentGeneralInquiry},
		{"anything else", "tell me about your loyalty program", constant.IntentGeneralInquiry},
	}

	svc := NewIntentService(&stubProvider{err: errors.New("provider down")}, noopLogger{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Classify(context.Background(), tt.query)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("Classify(%q) = %v, want [%q]", tt.query, got, tt.want)
			}
		})
	}
}

func TestIsInScopeProviderAnswer(t *testing.T) {
	svc := NewIntentService(&stubProvider{response: "YES"}, noopLogger{})
	if !svc.IsInScope(context.Background(), "when does my flight leave") {
		t.Error("IsInScope() = false, want true for YES answer")
	}

	svc = NewIntentService(&stubProvider{response: "NO"}, noopLogger{})
	if svc.IsInScope(context.Background(), "write me a poem") {
		t.Error("IsInScope() = true, want false for NO answer")
	}
}

func TestIsInScopeKeywordFallback(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"airline keyword", "when does my flight leave", true},
		{"short conversational reply", "ok", true},
		{"short but unrelated", "buy milk", false},
		{"long unrelated query", "write me a poem about the sea and the stars tonight", false},
	}

	svc := NewIntentService(&stubProvider{err: errors.New("provider down")}, noopLogger{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.IsInScope(context.Background(), tt.query); got != tt.want {
				t.Errorf("IsInScope(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestExtractFallsBackToNotFound(t *testing.T) {
	svc := NewIntentService(&stubProvider{err: errors.New("provider down")}, noopLogger{})
	got := svc.Extract(context.Background(), "cancel ABC123", "PNR or booking reference")
	if got != constant.ExtractNotFound {
		t.Errorf("Extract() = %q, want %q", got, constant.ExtractNotFound)
	}
}

func TestGenerateReplyFallsBackToApology(t *testing.T) {
	svc := NewIntentService(&stubProvider{err: errors.New("provider down")}, noopLogger{})
	got := svc.GenerateReply(context.Background(), "context", "query")
	if got != constant.ProviderApologyMessage {
		t.Errorf("GenerateReply() = %q, want apology message", got)
	}
}
