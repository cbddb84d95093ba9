package warehouse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testDataset = "tweet-collector-py.impeachment_test"

func TestRemainingUsersSQLWithRange(t *testing.T) {
	sql := remainingUsersSQL(testDataset, 17, 9999, 0)

	assert.Contains(t, sql, "LEFT JOIN `tweet-collector-py.impeachment_test.user_friends`")
	assert.Contains(t, sql, "WHERE f.user_id IS NULL")
	assert.Contains(t, sql, "BETWEEN 17 AND 9999")
	assert.Contains(t, sql, "ORDER BY u.user_id;")
	assert.NotContains(t, sql, "LIMIT")
}

func TestRemainingUsersSQLWithLimit(t *testing.T) {
	sql := remainingUsersSQL(testDataset, 0, 0, 500)

	assert.Contains(t, sql, "LIMIT 500;")
	assert.Contains(t, sql, "ORDER BY u.user_id")
	assert.NotContains(t, sql, "BETWEEN")
}

func TestRemainingUsersSQLUnbounded(t *testing.T) {
	sql := remainingUsersSQL(testDataset, 0, 0, 0)

	assert.Contains(t, sql, "ORDER BY u.user_id;")
	assert.NotContains(t, sql, "BETWEEN")
	assert.NotContains(t, sql, "LIMIT")
}

func TestMigrationSQL(t *testing.T) {
	usersSQL := migrateUsersSQL(testDataset)
	assert.Contains(t, usersSQL, "CREATE TABLE IF NOT EXISTS tweet-collector-py.impeachment_test.users")
	assert.Contains(t, usersSQL, "SELECT distinct(user_id) as user_id")

	friendsSQL := migrateUserFriendsSQL(testDataset)
	assert.Contains(t, friendsSQL, "CREATE TABLE IF NOT EXISTS `tweet-collector-py.impeachment_test.user_friends`")
	assert.Contains(t, friendsSQL, "friend_names ARRAY<STRING>")
}

func TestUserFriendsSQLLimit(t *testing.T) {
	assert.Contains(t, userFriendsSQL(testDataset, 1000), "LIMIT 1000;")
	assert.NotContains(t, userFriendsSQL(testDataset, 0), "LIMIT")
}

func TestDailyActiveSQL(t *testing.T) {
	sql := dailyActiveTweeterStatusesSQL(testDataset, "2020-01-23", 5, 0)
	assert.Contains(t, sql, "t.date = '2020-01-23'")
	assert.Contains(t, sql, "t.tweet_count >= 5")

	joined := dailyActiveUserFriendsSQL(testDataset, "2020-01-23", 5, 100)
	assert.Contains(t, joined, "JOIN `tweet-collector-py.impeachment_test.user_friends` f")
	assert.Contains(t, joined, "LIMIT 100;")
}
