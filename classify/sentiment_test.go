package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gunal77/web-hackathon/classify"
	"github.com/Gunal77/web-hackathon/models"
)

func TestAnalyzeSentiment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.Sentiment
	}{
		{"empty", "", models.SentimentPositive},
		{"no keywords", "Thank you for fixing the street light.", models.SentimentPositive},
		{"neutral request", "Request for improved public facilities.", models.SentimentNeutral},
		{"neutral please", "Please look into the bus timings", models.SentimentNeutral},
		{"negative issue", "Water logging issue near the market", models.SentimentNegative},
		{"negative beats neutral", "Please act on my complaint", models.SentimentNegative},
		{"case insensitive", "CORRUPTION at the ration shop", models.SentimentNegative},
		{"severe no hope", "I have no hope left, feeling suicidal", models.SentimentSevereDistress},
		{"severe beats negative", "angry complaint, I will commit suicide", models.SentimentSevereDistress},
		{"severe threat", "Received a threat from the contractor", models.SentimentSevereDistress},
		{"substring match", "the issues keep piling up", models.SentimentNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify.AnalyzeSentiment(tt.text))
		})
	}
}

func TestAnalyzeSentimentSuicideAlwaysSevere(t *testing.T) {
	texts := []string{
		"suicide",
		"Please support, I am thinking of suicide",
		"issue issue issue SUICIDE request",
		"harassment and corruption drive people to suicide, please help",
	}
	for _, text := range texts {
		assert.Equal(t, models.SentimentSevereDistress, classify.AnalyzeSentiment(text), text)
	}
}

func TestSentimentKeywords(t *testing.T) {
	assert.Contains(t, classify.SentimentKeywords(models.SentimentSevereDistress), "kill myself")
	assert.Contains(t, classify.SentimentKeywords(models.SentimentNeutral), "support")
	assert.Empty(t, classify.SentimentKeywords(models.SentimentPositive))
}

func TestCriticalSentimentType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *models.CriticalSentimentType
	}{
		{"none", "Road repair request", nil},
		{"suicide", "I want to die", ptr(models.CriticalSuicideRisk)},
		{"frustration", "Extremely frustrated with water supply. Nothing works.", ptr(models.CriticalExtremeFrustration)},
		{"mental", "Mental distress and anxiety from harassment", ptr(models.CriticalMentalDistress)},
		{"health", "Health emergency - father had stroke", ptr(models.CriticalHealthEmergency)},
		{"suicide wins over health", "urgent: no hope left", ptr(models.CriticalSuicideRisk)},
		{"frustration wins over mental", "helpless and under stress", ptr(models.CriticalExtremeFrustration)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify.CriticalSentimentType(tt.text))
		})
	}
}

func ptr(t models.CriticalSentimentType) *models.CriticalSentimentType {
	return &t
}
