package tweetparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatusRetweet(t *testing.T) {
	status := APIStatus{
		IDStr:     "100",
		Text:      "RT @potus: short text",
		Truncated: true,
		ExtendedTweet: &Extended{
			FullText: "RT @potus: the full\ntext of the original",
		},
		CreatedAt: "Mon Jan 27 20:00:00 +0000 2020",
		User: APIUser{
			IDStr:       "7",
			ScreenName:  "some_bot",
			Description: "definitely\r\nnot a bot",
		},
		RetweetedStatus: &APIStatus{
			IDStr: "99",
			User:  APIUser{IDStr: "8", ScreenName: "potus"},
		},
	}

	row := ParseStatus(status)

	assert.Equal(t, "100", row.StatusID)
	assert.Equal(t, "RT @potus: the full text of the original", row.StatusText)
	assert.Equal(t, "99", row.RetweetedStatusID)
	assert.Equal(t, "8", row.RetweetedUserID)
	assert.Equal(t, "potus", row.RetweetedUserScreenName)
	assert.Equal(t, "2020-01-27 20:00:00", row.CreatedAt)
	assert.Equal(t, "definitely  not a bot", row.UserDescription)
}

func TestParseStatusOriginalTweet(t *testing.T) {
	status := APIStatus{
		IDStr: "200",
		Text:  "an original thought",
		User:  APIUser{IDStr: "9", ScreenName: "organic_user"},
	}

	row := ParseStatus(status)

	require.Empty(t, row.RetweetedStatusID)
	require.Empty(t, row.RetweetedUserID)
	require.Empty(t, row.RetweetedUserScreenName)
	assert.Equal(t, "an original thought", row.StatusText)
}

func TestFullTextPrecedence(t *testing.T) {
	assert.Equal(t, "full", FullText(APIStatus{FullText: "full", Text: "short"}))
	assert.Equal(t, "extended", FullText(APIStatus{ExtendedTweet: &Extended{FullText: "extended"}, Text: "short"}))
	assert.Equal(t, "short", FullText(APIStatus{Text: "short"}))
}

func TestCleanString(t *testing.T) {
	assert.Equal(t, "a b c", CleanString(" a\nb\rc "))
	assert.Equal(t, "", CleanString("\n\r"))
}
