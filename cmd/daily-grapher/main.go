package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spacesedan/botscope/config"
	"github.com/spacesedan/botscope/internal/graphs"
	"github.com/spacesedan/botscope/internal/jobs"
	"github.com/spacesedan/botscope/internal/logging"
	"github.com/spacesedan/botscope/internal/models"
	"github.com/spacesedan/botscope/internal/storage"
	"github.com/spacesedan/botscope/internal/utils"
	"github.com/spacesedan/botscope/internal/warehouse"
)

// Builds the friend graph of one day's active tweeters, with node-level bot
// scores. Both stages checkpoint to disk: the tweet download is skipped when
// tweets.csv exists, the graph build when graph.gob exists, unless the
// corresponding destructive flag forces a rebuild.
func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	date := config.GetString("DATE", "2020-01-23")
	tweetMin := config.GetInt("TWEET_MIN", 1)
	limit, _ := config.GetOptionalInt("LIMIT")
	batchSize := config.GetInt("BATCH_SIZE", 100000)
	destructive := config.GetBool("DESTRUCTIVE", false)
	graphBatchSize := config.GetInt("GRAPH_BATCH_SIZE", 10000)
	graphDestructive := config.GetBool("GRAPH_DESTRUCTIVE", false)

	slog.Info("[DailyGrapher] Config",
		slog.String("date", date),
		slog.Int("tweet_min", tweetMin),
		slog.Int("limit", limit),
		slog.Int("batch_size", batchSize),
		slog.Bool("destructive", destructive),
		slog.Int("graph_batch_size", graphBatchSize),
		slog.Bool("graph_destructive", graphDestructive))

	ctx := context.Background()

	dirpath := filepath.Join("daily_active_friend_graphs", date, "tweet_min", fmt.Sprint(tweetMin))
	fs, err := storage.NewFileStorage(ctx, dirpath)
	if err != nil {
		fatal("Failed to init storage", err)
	}
	defer fs.Close()

	bq, err := warehouse.NewService(ctx)
	if err != nil {
		fatal("Failed to connect to warehouse", err)
	}
	defer bq.Close()

	job := jobs.NewJob("")

	statuses := loadOrDownloadStatuses(ctx, bq, fs, job, date, tweetMin, limit, batchSize, destructive)
	slog.Info("[DailyGrapher] Statuses ready", slog.String("count", utils.FormatNumber(len(statuses))))

	if fs.Exists("graph.gob") && !graphDestructive {
		slog.Info("[DailyGrapher] Loading graph checkpoint...")
		graph, err := graphs.ReadGraph(fs.LocalPath("graph.gob"))
		if err != nil {
			fatal("Failed to load graph checkpoint", err)
		}
		slog.Info("[DailyGrapher] Graph loaded",
			slog.String("nodes", utils.FormatNumber(graph.NodeCount())),
			slog.String("edges", utils.FormatNumber(graph.EdgeCount())))
		return
	}

	graph := buildGraph(ctx, bq, job, statuses, date, tweetMin, limit, graphBatchSize)

	slog.Info("[DailyGrapher] Graph constructed",
		slog.String("nodes", utils.FormatNumber(graph.NodeCount())),
		slog.String("edges", utils.FormatNumber(graph.EdgeCount())))

	if err := graphs.WriteGraph(graph, fs.LocalPath("graph.gob")); err != nil {
		fatal("Failed to write graph", err)
	}
	if fs.HasBucket() {
		if err := fs.Upload(ctx, "graph.gob"); err != nil {
			fatal("Failed to upload graph", err)
		}
	}
}

func loadOrDownloadStatuses(ctx context.Context, bq *warehouse.Service, fs *storage.FileStorage, job *jobs.Job,
	date string, tweetMin, limit, batchSize int, destructive bool,
) []models.DailyStatus {
	var statuses []models.DailyStatus

	if fs.Exists("tweets.csv") && !destructive {
		slog.Info("[DailyGrapher] Loading tweets from checkpoint...")
		if err := fs.LoadCSV("tweets.csv", &statuses); err != nil {
			fatal("Failed to load tweets checkpoint", err)
		}
		return statuses
	}

	slog.Info("[DailyGrapher] Downloading tweets...")
	job.Start()
	err := bq.FetchDailyActiveTweeterStatuses(ctx, date, tweetMin, limit, func(row models.DailyStatus) error {
		statuses = append(statuses, row)
		job.Counter++
		if job.Counter%batchSize == 0 {
			job.ProgressReport(0)
		}
		return nil
	})
	if err != nil {
		fatal("Failed downloading tweets", err)
	}
	job.End()

	if err := fs.SaveCSV("tweets.csv", &statuses); err != nil {
		fatal("Failed to write tweets checkpoint", err)
	}
	return statuses
}

func buildGraph(ctx context.Context, bq *warehouse.Service, job *jobs.Job,
	statuses []models.DailyStatus, date string, tweetMin, limit, graphBatchSize int,
) *graphs.UserGraph {
	graph := graphs.NewUserGraph()

	slog.Info("[DailyGrapher] Adding nodes...")
	job.Start()
	seen := make(map[string]struct{}, len(statuses))
	for _, status := range statuses {
		if _, dup := seen[status.ScreenName]; dup {
			continue
		}
		seen[status.ScreenName] = struct{}{}
		graph.AddNodeAttrs(status.ScreenName, status.UserID, status.Rate, status.Bot)

		job.Counter++
		if job.Counter%graphBatchSize == 0 {
			job.ProgressReport(graph.EdgeCount())
		}
	}
	job.End()

	slog.Info("[DailyGrapher] Adding edges...")
	job.Start()
	err := bq.FetchDailyActiveUserFriends(ctx, date, tweetMin, limit, func(row models.UserFriends) error {
		for _, friend := range row.FriendNames {
			graph.AddEdge(row.ScreenName, friend)
		}

		job.Counter++
		if job.Counter%graphBatchSize == 0 {
			job.ProgressReport(graph.EdgeCount())
		}
		return nil
	})
	if err != nil {
		fatal("Failed streaming user friends", err)
	}
	job.End()

	return graph
}

func fatal(msg string, err error) {
	slog.Error("[DailyGrapher] "+msg, slog.String("error", err.Error()))
	os.Exit(1)
}
