package warehouse

import (
	"fmt"
	"strings"
)

// SQL builders for the warehouse. Every query is addressed against a fully
// qualified dataset ("project.dataset"). Builders are plain functions so the
// generated text is testable without a client.

func migrateUsersSQL(dataset string) string {
	return fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s.users as (
			SELECT distinct(user_id) as user_id
			FROM `+"`%s.tweets`"+`
			ORDER BY 1
		);`, dataset, dataset)
}

func migrateUserFriendsSQL(dataset string) string {
	return fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS `+"`%s.user_friends`"+` (
			user_id STRING,
			screen_name STRING,
			friends_count INT64,
			friend_names ARRAY<STRING>
		);`, dataset)
}

func countTweetsAndUsersSQL(dataset string) string {
	return fmt.Sprintf(`
		SELECT
			count(distinct status_id) as tweet_count
			,count(distinct user_id) as user_count
		FROM `+"`%s.tweets`"+`;`, dataset)
}

func countGraphedUsersSQL(dataset string) string {
	return fmt.Sprintf(`
		SELECT count(distinct user_id) as user_count
		FROM `+"`%s.user_friends`"+`;`, dataset)
}

// remainingUsersSQL anti-joins users against user_friends to find users
// whose friend lists have not been collected. A min/max id range and a
// limit are mutually exclusive clause forms.
func remainingUsersSQL(dataset string, minID, maxID int64, limit int) string {
	var b strings.Builder
	fmt.Fprintf(&b, `
		SELECT u.user_id
		FROM `+"`%s.users`"+` u
		LEFT JOIN `+"`%s.user_friends`"+` f ON u.user_id = f.user_id
		WHERE f.user_id IS NULL
	`, dataset, dataset)

	switch {
	case minID > 0 && maxID > 0:
		fmt.Fprintf(&b, "  AND CAST(u.user_id as int64) BETWEEN %d AND %d\n", minID, maxID)
		b.WriteString("		ORDER BY u.user_id;")
	case limit > 0:
		b.WriteString("		ORDER BY u.user_id\n")
		fmt.Fprintf(&b, "		LIMIT %d;", limit)
	default:
		b.WriteString("		ORDER BY u.user_id;")
	}
	return b.String()
}

func userFriendsSQL(dataset string, limit int) string {
	sql := fmt.Sprintf(`
		SELECT user_id, screen_name, friends_count, friend_names
		FROM `+"`%s.user_friends`"+`
		ORDER BY user_id`, dataset)
	return withLimit(sql, limit)
}

// dailyActiveTweeterStatusesSQL selects the statuses of users who tweeted at
// least tweetMin times on the given date, with their daily rate and bot score.
func dailyActiveTweeterStatusesSQL(dataset, date string, tweetMin, limit int) string {
	sql := fmt.Sprintf(`
		SELECT
			t.status_id, t.status_text, t.user_id, t.screen_name,
			t.rate, t.bot, t.created_at
		FROM `+"`%s.daily_active_tweets`"+` t
		WHERE t.date = '%s' AND t.tweet_count >= %d
		ORDER BY t.user_id`, dataset, date, tweetMin)
	return withLimit(sql, limit)
}

func dailyActiveUserFriendsSQL(dataset, date string, tweetMin, limit int) string {
	sql := fmt.Sprintf(`
		SELECT f.user_id, f.screen_name, f.friends_count, f.friend_names
		FROM `+"`%s.daily_active_tweets`"+` t
		JOIN `+"`%s.user_friends`"+` f ON t.user_id = f.user_id
		WHERE t.date = '%s' AND t.tweet_count >= %d
		ORDER BY f.user_id`, dataset, dataset, date, tweetMin)
	return withLimit(sql, limit)
}

func retweetsSQL(dataset string, limit int) string {
	sql := fmt.Sprintf(`
		SELECT
			rt.community_id, rt.user_id, rt.user_screen_name,
			rt.retweeted_user_screen_name, rt.status_id, rt.status_text
		FROM `+"`%s.retweets`"+` rt
		ORDER BY rt.community_id, rt.status_id`, dataset)
	return withLimit(sql, limit)
}

func withLimit(sql string, limit int) string {
	if limit > 0 {
		return fmt.Sprintf("%s\n		LIMIT %d;", sql, limit)
	}
	return sql + ";"
}
