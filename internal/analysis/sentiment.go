package analysis

import (
	"github.com/jonreiter/govader"

	"github.com/spacesedan/botscope/internal/models"
)

var analyzer = govader.NewSentimentIntensityAnalyzer()

// RemoveLinks strips URLs so they don't skew VADER scoring.
func RemoveLinks(input string) string {
	return urlPattern.ReplaceAllString(input, "")
}

// ScoreText runs VADER over the text and maps the compound score to a
// label.
func ScoreText(text string) (float64, string) {
	sentiment := analyzer.PolarityScores(RemoveLinks(text))
	score := sentiment.Compound

	var label string
	if score >= 0.20 {
		label = "positive"
	} else if score <= -0.20 {
		label = "negative"
	} else {
		label = "neutral"
	}

	return score, label
}

// SummarizeSentiment aggregates per-status VADER scores over one
// community's retweets.
func SummarizeSentiment(communityID int, retweets []models.Retweet) models.SentimentSummary {
	summary := models.SentimentSummary{CommunityID: communityID}

	var total float64
	for _, rt := range retweets {
		score, label := ScoreText(rt.StatusText)
		total += score
		summary.StatusCount++

		switch label {
		case "positive":
			summary.PositiveCount++
		case "negative":
			summary.NegativeCount++
		default:
			summary.NeutralCount++
		}
	}

	if summary.StatusCount > 0 {
		summary.MeanScore = total / float64(summary.StatusCount)
	}
	return summary
}
