package analysis

import (
	"sort"

	"github.com/spacesedan/botscope/internal/models"
)

// SummarizeTokenFrequencies counts tokens across all documents and returns
// stats sorted by count descending. Pct is each token's share of the total
// token volume; ranks are dense starting from 1, with equal counts sharing
// a rank.
func SummarizeTokenFrequencies(docs [][]string) []models.TokenStat {
	counts := make(map[string]int)
	total := 0
	for _, doc := range docs {
		for _, token := range doc {
			counts[token]++
			total++
		}
	}
	if total == 0 {
		return nil
	}

	stats := make([]models.TokenStat, 0, len(counts))
	for token, count := range counts {
		stats = append(stats, models.TokenStat{
			Token: token,
			Count: count,
			Pct:   float64(count) / float64(total),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Token < stats[j].Token
	})

	rank := 0
	lastCount := -1
	for i := range stats {
		if stats[i].Count != lastCount {
			rank++
			lastCount = stats[i].Count
		}
		stats[i].Rank = rank
	}
	return stats
}

// TopTokens returns the stats ranked at or above topN.
func TopTokens(stats []models.TokenStat, topN int) []models.TokenStat {
	var top []models.TokenStat
	for _, s := range stats {
		if s.Rank <= topN {
			top = append(top, s)
		}
	}
	return top
}
