package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spacesedan/botscope/config"
	"github.com/spacesedan/botscope/internal/analysis"
	"github.com/spacesedan/botscope/internal/charts"
	"github.com/spacesedan/botscope/internal/logging"
	"github.com/spacesedan/botscope/internal/models"
	"github.com/spacesedan/botscope/internal/storage"
	"github.com/spacesedan/botscope/internal/utils"
	"github.com/spacesedan/botscope/internal/warehouse"
)

// Analyzes each bot community's retweet behavior: who they retweet most,
// what they talk about (token frequency, LDA topics), and how the text
// scores on sentiment. One artifact directory per community.
func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	retweetsLimit, _ := config.GetOptionalInt("RETWEETS_LIMIT")
	topN := config.GetInt("TOP_N", 10)
	tokensTopN := config.GetInt("TOKENS_TOP_N", 20)
	topicsEnabled := config.GetBool("TOPICS_ENABLED", false)
	topicCount := config.GetInt("TOPIC_COUNT", analysis.DefaultTopicCount)
	rulesPath := config.GetString("TOKENIZER_RULES", "")

	ctx := context.Background()

	fs, err := storage.NewFileStorage(ctx, "retweet_analysis")
	if err != nil {
		fatal("Failed to init storage", err)
	}
	defer fs.Close()

	retweets := loadOrDownloadRetweets(ctx, fs, retweetsLimit)
	slog.Info("[RetweetAnalyzer] Retweets ready", slog.String("count", utils.FormatNumber(len(retweets))))

	tokenizer := analysis.NewTokenizer()
	if rulesPath != "" {
		if err := tokenizer.LoadCustomRules(rulesPath); err != nil {
			fatal("Failed to load tokenizer rules", err)
		}
	}

	var sentimentSummaries []models.SentimentSummary

	for _, communityID := range analysis.CommunityIDs(retweets) {
		community := analysis.FilterCommunity(retweets, communityID)
		slog.Info("[RetweetAnalyzer] Analyzing community",
			slog.Int("community_id", communityID),
			slog.String("retweets", utils.FormatNumber(len(community))))

		cfs, err := storage.NewFileStorage(ctx, filepath.Join("retweet_analysis", fmt.Sprintf("community-%d", communityID)))
		if err != nil {
			fatal("Failed to init community storage", err)
		}

		analyzeCommunity(ctx, cfs, tokenizer, communityID, community, topN, tokensTopN, topicsEnabled, topicCount)
		sentimentSummaries = append(sentimentSummaries, analysis.SummarizeSentiment(communityID, community))

		cfs.Close()
	}

	if err := fs.SaveCSV("sentiment.csv", &sentimentSummaries); err != nil {
		fatal("Failed to write sentiment summary", err)
	}
	uploadIfConfigured(ctx, fs, "sentiment.csv")
}

func loadOrDownloadRetweets(ctx context.Context, fs *storage.FileStorage, limit int) []models.Retweet {
	var retweets []models.Retweet

	if fs.Exists("retweets.csv") {
		slog.Info("[RetweetAnalyzer] Loading retweets from checkpoint...")
		if err := fs.LoadCSV("retweets.csv", &retweets); err != nil {
			fatal("Failed to load retweets checkpoint", err)
		}
		return retweets
	}

	slog.Info("[RetweetAnalyzer] Downloading retweets...")
	bq, err := warehouse.NewService(ctx)
	if err != nil {
		fatal("Failed to connect to warehouse", err)
	}
	defer bq.Close()

	retweets, err = bq.FetchRetweets(ctx, limit)
	if err != nil {
		fatal("Failed downloading retweets", err)
	}

	if err := fs.SaveCSV("retweets.csv", &retweets); err != nil {
		fatal("Failed to write retweets checkpoint", err)
	}
	return retweets
}

func analyzeCommunity(ctx context.Context, fs *storage.FileStorage, tokenizer *analysis.Tokenizer,
	communityID int, community []models.Retweet, topN, tokensTopN int, topicsEnabled bool, topicCount int,
) {
	mostRetweets := analysis.TopN(analysis.TopRetweetedByStatusCount(community), topN)
	title := fmt.Sprintf("Users Most Retweeted by Bot Community %d", communityID)
	if err := charts.RenderUserRankChart(title, mostRetweets, fs.LocalPath("most-retweets.png")); err != nil {
		fatal("Failed to render most-retweets chart", err)
	}
	uploadIfConfigured(ctx, fs, "most-retweets.png")

	mostRetweeters := analysis.TopN(analysis.TopRetweetedByRetweeterCount(community), topN)
	title = fmt.Sprintf("Users with Most Retweeters from Bot Community %d", communityID)
	if err := charts.RenderUserRankChart(title, mostRetweeters, fs.LocalPath("most-retweeters.png")); err != nil {
		fatal("Failed to render most-retweeters chart", err)
	}
	uploadIfConfigured(ctx, fs, "most-retweeters.png")

	docs := make([][]string, 0, len(community))
	for _, rt := range community {
		docs = append(docs, tokenizer.Tokenize(rt.StatusText))
	}

	tokenStats := analysis.SummarizeTokenFrequencies(docs)
	if err := fs.SaveCSV("top-tokens.csv", &tokenStats); err != nil {
		fatal("Failed to write token stats", err)
	}
	uploadIfConfigured(ctx, fs, "top-tokens.csv")

	topTokens := analysis.TopTokens(tokenStats, tokensTopN)
	title = fmt.Sprintf("Word Cloud for Community %d (n=%s)", communityID, utils.FormatNumber(len(community)))
	if err := charts.RenderTokenTreemap(title, topTokens, fs.LocalPath("top-tokens-wordcloud.png")); err != nil {
		fatal("Failed to render word cloud", err)
	}
	uploadIfConfigured(ctx, fs, "top-tokens-wordcloud.png")

	if !topicsEnabled {
		return
	}

	// topic modeling over the cleaned token stream; slow on full history,
	// gated behind TOPICS_ENABLED for daily slices
	cleaned := make([]string, 0, len(docs))
	for _, doc := range docs {
		if len(doc) > 0 {
			cleaned = append(cleaned, strings.Join(doc, " "))
		}
	}

	model, err := analysis.TrainTopicModel(cleaned, topicCount, analysis.DefaultLDAIterations)
	if err != nil {
		fatal("Failed to train topic model", err)
	}

	topicTerms := model.TopTerms(10)
	if err := fs.SaveCSV("topics.csv", &topicTerms); err != nil {
		fatal("Failed to write topics", err)
	}
	uploadIfConfigured(ctx, fs, "topics.csv")
}

func uploadIfConfigured(ctx context.Context, fs *storage.FileStorage, name string) {
	if !fs.HasBucket() {
		return
	}
	if err := fs.Upload(ctx, name); err != nil {
		fatal("Failed to upload "+name, err)
	}
}

func fatal(msg string, err error) {
	slog.Error("[RetweetAnalyzer] "+msg, slog.String("error", err.Error()))
	os.Exit(1)
}
