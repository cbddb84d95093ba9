package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spacesedan/botscope/config"
	"github.com/spacesedan/botscope/internal/clients"
	"github.com/spacesedan/botscope/internal/graphs"
	"github.com/spacesedan/botscope/internal/jobs"
	"github.com/spacesedan/botscope/internal/logging"
	"github.com/spacesedan/botscope/internal/models"
	"github.com/spacesedan/botscope/internal/storage"
	"github.com/spacesedan/botscope/internal/utils"
	"github.com/spacesedan/botscope/internal/warehouse"
)

// expectedEdges sizes the edge dedupe filter; a full scan of the collected
// friend lists lands in the tens of millions of edges.
const expectedEdges = 50_000_000

// Streams every collected friend list out of the warehouse in one paginated
// scan, accumulates the edge list with batched progress reporting, then
// constructs the directed graph and checkpoints everything locally and to
// the bucket.
func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	dryRun := config.GetBool("DRY_RUN", true)
	batchSize := config.GetInt("BATCH_SIZE", 100)
	usersLimit, _ := config.GetOptionalInt("USERS_LIMIT")
	valkeyEnabled := config.GetBool("VALKEY_ENABLED", false)

	job := jobs.NewJob(os.Getenv("JOB_ID"))
	slog.Info("[FriendGrapher] Config",
		slog.String("job_id", job.ID),
		slog.Bool("dry_run", dryRun),
		slog.Int("batch_size", batchSize),
		slog.Int("users_limit", usersLimit))

	ctx := context.Background()

	fs, err := storage.NewFileStorage(ctx, filepath.Join("graphs", "archived", job.ID))
	if err != nil {
		fatal("Failed to init storage", err)
	}
	defer fs.Close()

	bq, err := warehouse.NewService(ctx)
	if err != nil {
		fatal("Failed to connect to warehouse", err)
	}
	defer bq.Close()

	var valkeyClient *clients.ValkeyClient
	if valkeyEnabled {
		valkeyClient = clients.InitValkey()
		defer clients.CloseValkey()
	}

	metadata := models.JobMetadata{
		AppEnv:     env,
		JobID:      job.ID,
		DryRun:     dryRun,
		BatchSize:  batchSize,
		UsersLimit: usersLimit,
	}
	if err := fs.SaveJSON("metadata.json", metadata); err != nil {
		fatal("Failed to write metadata", err)
	}
	uploadIfConfigured(ctx, fs, "metadata.json")

	job.Start()
	edgeList := graphs.NewEdgeList(expectedEdges, 0.001)

	err = bq.FetchUserFriendsInBatches(ctx, usersLimit, func(row models.UserFriends) error {
		job.Counter++

		if valkeyClient != nil && valkeyClient.IsGraphed(ctx, row.ScreenName) {
			return nil
		}

		if !dryRun {
			edgeList.AppendFriends(row.ScreenName, row.FriendNames)
		}

		if valkeyClient != nil {
			if err := valkeyClient.MarkGraphed(ctx, row.ScreenName); err != nil {
				slog.Warn("[FriendGrapher] Failed to mark user graphed",
					slog.String("screen_name", row.ScreenName),
					slog.String("error", err.Error()))
			}
		}

		if job.Counter%batchSize == 0 {
			job.ProgressReport(edgeList.Len())
		}
		return nil
	})
	if err != nil {
		fatal("Failed streaming user friends", err)
	}
	job.End()

	samples := job.Samples()
	if err := fs.SaveCSV("results.csv", &samples); err != nil {
		fatal("Failed to write results", err)
	}
	uploadIfConfigured(ctx, fs, "results.csv")

	// edge list goes to disk before the graph object is assembled
	if err := graphs.WriteEdges(edgeList.Edges(), fs.LocalPath("edges.gob")); err != nil {
		fatal("Failed to write edges", err)
	}
	uploadIfConfigured(ctx, fs, "edges.gob")

	slog.Info("[FriendGrapher] Constructing graph object...")
	graph := edgeList.BuildGraph()
	slog.Info("[FriendGrapher] Graph constructed",
		slog.String("nodes", utils.FormatNumber(graph.NodeCount())),
		slog.String("edges", utils.FormatNumber(graph.EdgeCount())))

	ranked := graph.PageRank(0.85, 1e-6)
	if err := fs.SaveCSV("pagerank.csv", &ranked); err != nil {
		fatal("Failed to write pagerank", err)
	}
	uploadIfConfigured(ctx, fs, "pagerank.csv")

	if err := graphs.WriteGraph(graph, fs.LocalPath("graph.gob")); err != nil {
		fatal("Failed to write graph", err)
	}
	uploadIfConfigured(ctx, fs, "graph.gob")
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
	slog.Error("[FriendGrapher] "+msg, slog.String("error", err.Error()))
	os.Exit(1)
}
