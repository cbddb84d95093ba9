package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/botscope/internal/models"
)

func testRetweets() []models.Retweet {
	return []models.Retweet{
		{CommunityID: 0, UserID: "1", RetweetedUserScreenName: "potus", StatusID: "a"},
		{CommunityID: 0, UserID: "2", RetweetedUserScreenName: "potus", StatusID: "b"},
		{CommunityID: 0, UserID: "2", RetweetedUserScreenName: "potus", StatusID: "b"}, // dup status + user
		{CommunityID: 0, UserID: "3", RetweetedUserScreenName: "senator_x", StatusID: "c"},
		{CommunityID: 1, UserID: "4", RetweetedUserScreenName: "pundit_y", StatusID: "d"},
		{CommunityID: 1, UserID: "4", RetweetedUserScreenName: ""}, // not a retweet
	}
}

func TestTopRetweetedByStatusCount(t *testing.T) {
	ranks := TopRetweetedByStatusCount(testRetweets())

	require.Len(t, ranks, 3)
	assert.Equal(t, models.UserRank{ScreenName: "potus", Count: 2}, ranks[0])
	// ties resolved by name
	assert.Equal(t, "pundit_y", ranks[1].ScreenName)
	assert.Equal(t, "senator_x", ranks[2].ScreenName)
}

func TestTopRetweetedByRetweeterCount(t *testing.T) {
	ranks := TopRetweetedByRetweeterCount(testRetweets())

	require.Len(t, ranks, 3)
	assert.Equal(t, models.UserRank{ScreenName: "potus", Count: 2}, ranks[0])
}

func TestTopN(t *testing.T) {
	ranks := TopRetweetedByStatusCount(testRetweets())

	assert.Len(t, TopN(ranks, 2), 2)
	assert.Len(t, TopN(ranks, 10), 3)
}

func TestCommunityIDsAndFilter(t *testing.T) {
	retweets := testRetweets()

	assert.Equal(t, []int{0, 1}, CommunityIDs(retweets))

	community := FilterCommunity(retweets, 1)
	require.Len(t, community, 2)
	for _, rt := range community {
		assert.Equal(t, 1, rt.CommunityID)
	}
}
