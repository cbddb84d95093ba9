package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spacesedan/botscope/config"
	"github.com/spacesedan/botscope/internal/logging"
	"github.com/spacesedan/botscope/internal/utils"
	"github.com/spacesedan/botscope/internal/warehouse"
)

// Reports dataset counts and collection progress, creating the derived
// users and user_friends tables on first run.
func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx := context.Background()

	bq, err := warehouse.NewService(ctx)
	if err != nil {
		slog.Error("[WarehouseStatus] Failed to connect", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer bq.Close()

	slog.Info("[WarehouseStatus] Dataset", slog.String("address", bq.DatasetAddress()))

	tweetCount, userCount, err := bq.CountTweetsAndUsers(ctx)
	if err != nil {
		slog.Error("[WarehouseStatus] Failed to count tweets and users", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.Info("[WarehouseStatus] Corpus",
		slog.String("tweets", utils.FormatNumber(int(tweetCount))),
		slog.String("users", utils.FormatNumber(int(userCount))))

	if err := bq.MigratePopulateUsers(ctx); err != nil {
		slog.Error("[WarehouseStatus] Failed to migrate users table", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := bq.MigrateUserFriends(ctx); err != nil {
		slog.Error("[WarehouseStatus] Failed to migrate user_friends table", slog.String("error", err.Error()))
		os.Exit(1)
	}

	graphedCount, err := bq.CountGraphedUsers(ctx)
	if err != nil {
		slog.Error("[WarehouseStatus] Failed to count graphed users", slog.String("error", err.Error()))
		os.Exit(1)
	}

	percentCollected := 0.0
	if userCount > 0 {
		percentCollected = float64(graphedCount) / float64(userCount)
	}
	slog.Info("[WarehouseStatus] Friend collection",
		slog.String("users_with_friend_graphs", utils.FormatNumber(int(graphedCount))),
		slog.Float64("percent_collected", percentCollected*100),
		slog.Float64("percent_remaining", (1-percentCollected)*100))
}
