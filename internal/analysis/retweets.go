package analysis

import (
	"sort"

	"github.com/spacesedan/botscope/internal/models"
)

// TopRetweetedByStatusCount ranks retweeted users by how many distinct
// statuses of theirs were retweeted.
func TopRetweetedByStatusCount(retweets []models.Retweet) []models.UserRank {
	return rankDistinct(retweets, func(rt models.Retweet) string { return rt.StatusID })
}

// TopRetweetedByRetweeterCount ranks retweeted users by how many distinct
// users retweeted them.
func TopRetweetedByRetweeterCount(retweets []models.Retweet) []models.UserRank {
	return rankDistinct(retweets, func(rt models.Retweet) string { return rt.UserID })
}

func rankDistinct(retweets []models.Retweet, key func(models.Retweet) string) []models.UserRank {
	distinct := make(map[string]map[string]struct{})
	for _, rt := range retweets {
		if rt.RetweetedUserScreenName == "" {
			continue
		}
		set, ok := distinct[rt.RetweetedUserScreenName]
		if !ok {
			set = make(map[string]struct{})
			distinct[rt.RetweetedUserScreenName] = set
		}
		set[key(rt)] = struct{}{}
	}

	ranks := make([]models.UserRank, 0, len(distinct))
	for name, set := range distinct {
		ranks = append(ranks, models.UserRank{ScreenName: name, Count: len(set)})
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Count != ranks[j].Count {
			return ranks[i].Count > ranks[j].Count
		}
		return ranks[i].ScreenName < ranks[j].ScreenName
	})
	return ranks
}

// TopN truncates a ranking to its first n rows.
func TopN(ranks []models.UserRank, n int) []models.UserRank {
	if n < len(ranks) {
		return ranks[:n]
	}
	return ranks
}

// CommunityIDs returns the distinct community ids present, ascending.
func CommunityIDs(retweets []models.Retweet) []int {
	seen := make(map[int]struct{})
	for _, rt := range retweets {
		seen[rt.CommunityID] = struct{}{}
	}

	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// FilterCommunity returns the retweets belonging to one community.
func FilterCommunity(retweets []models.Retweet, communityID int) []models.Retweet {
	var filtered []models.Retweet
	for _, rt := range retweets {
		if rt.CommunityID == communityID {
			filtered = append(filtered, rt)
		}
	}
	return filtered
}
