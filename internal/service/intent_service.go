package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"airline-support-be/internal/constant"
	"airline-support-be/internal/pkg/logger"
	"airline-support-be/pkg/llm"
)

type IIntentService interface {
	// IsInScope reports whether the query belongs to the airline domain.
	IsInScope(ctx context.Context, query string) bool

	// Classify maps a query onto the closed intent set. Never returns
	// an empty slice.
	Classify(ctx context.Context, query string) []string

	// Extract pulls a named piece of information out of the query and
	// returns constant.ExtractNotFound when absent.
	Extract(ctx context.Context, query, informationType string) string

	// GenerateReply produces a free-form answer for general inquiries.
	GenerateReply(ctx context.Context, context_, query string) string
}

type intentService struct {
	provider llm.LLMProvider
	logger   logger.ILogger
	timeout  time.Duration
}

func NewIntentService(provider llm.LLMProvider, log logger.ILogger) IIntentService {
	return &intentService{
		provider: provider,
		logger:   log,
		timeout:  20 * time.Second,
	}
}

func (s *intentService) IsInScope(ctx context.Context, query string) bool {
	prompt := fmt.Sprintf(constant.ScopeValidationPromptTemplate, query)

	answer, err := s.generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("intent", "scope validation fell back to keywords", map[string]interface{}{
			"error": err.Error(),
		})
		return s.keywordScopeValidation(query)
	}

	result := strings.ToUpper(strings.TrimSpace(answer))
	if strings.Contains(result, "YES") {
		return true
	}
	if strings.Contains(result, "NO") {
		return false
	}
	return s.keywordScopeValidation(query)
}

func (s *intentService) Classify(ctx context.Context, query string) []string {
	prompt := fmt.Sprintf(constant.IntentClassificationPromptTemplate, query)

	answer, err := s.generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("intent", "classification fell back to keywords", map[string]interface{}{
			"error": err.Error(),
		})
		return s.keywordClassification(query)
	}

	var detected []string
	for _, line := range strings.Split(answer, "\n") {
		line = strings.TrimSpace(line)
		line = strings.Trim(line, "-*")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, intent := range constant.Intents {
			if line == intent {
				detected = append(detected, intent)
				break
			}
		}
	}

	if len(detected) == 0 {
		detected = s.keywordClassification(query)
	}
	if len(detected) == 0 {
		detected = []string{constant.IntentGeneralInquiry}
	}
	return detected
}

func (s *intentService) Extract(ctx context.Context, query, informationType string) string {
	prompt := fmt.Sprintf(constant.InformationExtractionPromptTemplate, informationType, query)

	answer, err := s.generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("intent", "extraction failed", map[string]interface{}{
			"information_type": informationType,
			"error":            err.Error(),
		})
		return constant.ExtractNotFound
	}
	return strings.TrimSpace(answer)
}

func (s *intentService) GenerateReply(ctx context.Context, context_, query string) string {
	var queryLine string
	if query != "" {
		queryLine = "Customer query: " + query
	}
	prompt := fmt.Sprintf(constant.ResponseGenerationPromptTemplate, context_, queryLine)

	answer, err := s.generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("intent", "reply generation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return constant.ProviderApologyMessage
	}
	return strings.TrimSpace(answer)
}

// generate bounds every provider call so a hung backend degrades to the
// keyword path instead of stalling the turn.
func (s *intentService) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.provider.Generate(ctx, prompt, llm.WithTemperature(0.2))
}

func (s *intentService) keywordScopeValidation(query string) bool {
	queryLower := strings.ToLower(query)

	for _, keyword := range constant.AirlineKeywords {
		if strings.Contains(queryLower, keyword) {
			return true
		}
	}

	// Short conversational responses are allowed through; they are
	// likely part of an ongoing conversation.
	if len(strings.Fields(query)) <= 3 {
		for _, word := range constant.ShortScopeResponses {
			if strings.Contains(queryLower, word) {
				return true
			}
		}
	}

	return false
}

func (s *intentService) keywordClassification(query string) []string {
	queryLower := strings.ToLower(strings.TrimSpace(query))

	for _, response := range constant.ConversationalResponses {
		if queryLower == response {
			return []string{constant.IntentGeneralInquiry}
		}
	}

	containsAny := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(queryLower, w) {
				return true
			}
		}
		return false
	}

	// Pet travel takes precedence over everything else.
	switch {
	case containsAny(constant.PetKeywords...):
		return []string{constant.IntentPetTravel}
	case strings.Contains(queryLower, "cancel"):
		if containsAny("policy", "fee", "charge", "cost", "what is") {
			return []string{constant.IntentCancellationPolicy}
		}
		return []string{constant.IntentCancelTrip}
	case containsAny("flight status", "is my flight", "flight delayed", "on time"):
		return []string{constant.IntentFlightStatus}
	case containsAny("seat", "available seats", "seat map", "seating"):
		return []string{constant.IntentSeatAvailability}
	case containsAny("baggage", "luggage", "bag", "carry-on", "checked bag",
		"overweight", "oversized", "bag fee", "luggage fee", "bag allowance"):
		return []string{constant.IntentBaggagePolicy}
	}

	return []string{constant.IntentGeneralInquiry}
}
