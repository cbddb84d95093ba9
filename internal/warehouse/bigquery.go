// Package warehouse wraps the BigQuery dataset holding the tweet corpus and
// the derived relationship tables.
package warehouse

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	"github.com/spacesedan/botscope/config"
	"github.com/spacesedan/botscope/internal/models"
	"github.com/spacesedan/botscope/internal/utils"
)

type Service struct {
	client      *bigquery.Client
	projectName string
	datasetName string
}

func NewService(ctx context.Context) (*Service, error) {
	projectName := config.GetString("BIGQUERY_PROJECT_NAME", "tweet-collector-py")
	datasetName := config.GetString("BIGQUERY_DATASET_NAME", "impeachment_development")

	client, err := bigquery.NewClient(ctx, projectName)
	if err != nil {
		return nil, fmt.Errorf("[BigQuery] failed to create client: %w", err)
	}

	slog.Info("[BigQuery] Connected",
		slog.String("project", projectName),
		slog.String("dataset", datasetName))

	return &Service{
		client:      client,
		projectName: projectName,
		datasetName: datasetName,
	}, nil
}

func (s *Service) Close() error {
	return s.client.Close()
}

// DatasetAddress is the fully qualified "project.dataset" prefix used in
// every query.
func (s *Service) DatasetAddress() string {
	return fmt.Sprintf("%s.%s", s.projectName, s.datasetName)
}

func (s *Service) ExecuteQuery(ctx context.Context, sql string) (*bigquery.RowIterator, error) {
	slog.Debug("[BigQuery] Executing query", slog.String("sql", sql))
	return s.client.Query(sql).Read(ctx)
}

func (s *Service) runDDL(ctx context.Context, sql string) error {
	job, err := s.client.Query(sql).Run(ctx)
	if err != nil {
		return fmt.Errorf("[BigQuery] failed to run statement: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return fmt.Errorf("[BigQuery] failed waiting for statement: %w", err)
	}
	return status.Err()
}

// MigratePopulateUsers creates the derived users table from distinct
// tweeters, if it does not exist yet.
func (s *Service) MigratePopulateUsers(ctx context.Context) error {
	return s.runDDL(ctx, migrateUsersSQL(s.DatasetAddress()))
}

// MigrateUserFriends creates the user_friends table for collected friend
// lists, if it does not exist yet.
func (s *Service) MigrateUserFriends(ctx context.Context) error {
	return s.runDDL(ctx, migrateUserFriendsSQL(s.DatasetAddress()))
}

func (s *Service) CountTweetsAndUsers(ctx context.Context) (tweetCount, userCount int64, err error) {
	it, err := s.ExecuteQuery(ctx, countTweetsAndUsersSQL(s.DatasetAddress()))
	if err != nil {
		return 0, 0, err
	}

	var row struct {
		TweetCount int64 `bigquery:"tweet_count"`
		UserCount  int64 `bigquery:"user_count"`
	}
	if err := it.Next(&row); err != nil {
		return 0, 0, fmt.Errorf("[BigQuery] failed to read counts: %w", err)
	}
	return row.TweetCount, row.UserCount, nil
}

func (s *Service) CountGraphedUsers(ctx context.Context) (int64, error) {
	it, err := s.ExecuteQuery(ctx, countGraphedUsersSQL(s.DatasetAddress()))
	if err != nil {
		return 0, err
	}

	var row struct {
		UserCount int64 `bigquery:"user_count"`
	}
	if err := it.Next(&row); err != nil {
		return 0, fmt.Errorf("[BigQuery] failed to read graphed count: %w", err)
	}
	return row.UserCount, nil
}

// FetchRemainingUsers returns users with no collected friend list, bounded
// either by an id range or by a row limit.
func (s *Service) FetchRemainingUsers(ctx context.Context, minID, maxID int64, limit int) ([]models.RemainingUser, error) {
	it, err := s.ExecuteQuery(ctx, remainingUsersSQL(s.DatasetAddress(), minID, maxID, limit))
	if err != nil {
		return nil, err
	}

	var users []models.RemainingUser
	for {
		var row models.RemainingUser
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("[BigQuery] failed to read remaining user: %w", err)
		}
		users = append(users, row)
	}
	return users, nil
}

// FetchUserFriendsInBatches streams every collected friend list to fn in a
// single paginated scan.
func (s *Service) FetchUserFriendsInBatches(ctx context.Context, limit int, fn func(models.UserFriends) error) error {
	it, err := s.ExecuteQuery(ctx, userFriendsSQL(s.DatasetAddress(), limit))
	if err != nil {
		return err
	}
	return streamRows(it, fn)
}

func (s *Service) FetchDailyActiveTweeterStatuses(ctx context.Context, date string, tweetMin, limit int, fn func(models.DailyStatus) error) error {
	it, err := s.ExecuteQuery(ctx, dailyActiveTweeterStatusesSQL(s.DatasetAddress(), date, tweetMin, limit))
	if err != nil {
		return err
	}
	return streamRows(it, fn)
}

func (s *Service) FetchDailyActiveUserFriends(ctx context.Context, date string, tweetMin, limit int, fn func(models.UserFriends) error) error {
	it, err := s.ExecuteQuery(ctx, dailyActiveUserFriendsSQL(s.DatasetAddress(), date, tweetMin, limit))
	if err != nil {
		return err
	}
	return streamRows(it, fn)
}

func (s *Service) FetchRetweets(ctx context.Context, limit int) ([]models.Retweet, error) {
	it, err := s.ExecuteQuery(ctx, retweetsSQL(s.DatasetAddress(), limit))
	if err != nil {
		return nil, err
	}

	var retweets []models.Retweet
	err = streamRows(it, func(row models.Retweet) error {
		retweets = append(retweets, row)
		return nil
	})
	return retweets, err
}

// insertBatchSize keeps each streaming insert request well under the API's
// per-request row cap.
const insertBatchSize = 500

// AppendUserFriends inserts collected friend lists via the streaming
// inserter, in batches.
func (s *Service) AppendUserFriends(ctx context.Context, rows []models.UserFriends) error {
	inserter := s.client.Dataset(s.datasetName).Table("user_friends").Inserter()
	for _, batch := range utils.SplitIntoBatches(rows, insertBatchSize) {
		if err := inserter.Put(ctx, batch); err != nil {
			return fmt.Errorf("[BigQuery] failed to append user friends: %w", err)
		}
	}
	return nil
}

func streamRows[T any](it *bigquery.RowIterator, fn func(T) error) error {
	for {
		var row T
		err := it.Next(&row)
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return fmt.Errorf("[BigQuery] failed to read row: %w", err)
		}
		if err := fn(row); err != nil {
			return err
		}
	}
}
