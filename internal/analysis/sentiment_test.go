package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/botscope/internal/models"
)

func TestScoreTextLabels(t *testing.T) {
	score, label := ScoreText("I love this, it is wonderful and great!")
	assert.Equal(t, "positive", label)
	assert.Greater(t, score, 0.20)

	score, label = ScoreText("This is horrible, a disgusting disaster.")
	assert.Equal(t, "negative", label)
	assert.Less(t, score, -0.20)

	_, label = ScoreText("The vote is on Tuesday.")
	assert.Equal(t, "neutral", label)
}

func TestRemoveLinks(t *testing.T) {
	assert.Equal(t, "read this ", RemoveLinks("read this https://t.co/abc123"))
}

func TestSummarizeSentiment(t *testing.T) {
	retweets := []models.Retweet{
		{StatusText: "I love this, it is wonderful and great!"},
		{StatusText: "This is horrible, a disgusting disaster."},
		{StatusText: "The vote is on Tuesday."},
	}

	summary := SummarizeSentiment(7, retweets)

	assert.Equal(t, 7, summary.CommunityID)
	assert.Equal(t, 3, summary.StatusCount)
	assert.Equal(t, 1, summary.PositiveCount)
	assert.Equal(t, 1, summary.NegativeCount)
	assert.Equal(t, 1, summary.NeutralCount)
}

func TestSummarizeSentimentEmpty(t *testing.T) {
	summary := SummarizeSentiment(0, nil)
	assert.Zero(t, summary.StatusCount)
	assert.Zero(t, summary.MeanScore)
}
