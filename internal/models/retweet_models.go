package models

// Retweet is one retweet event attributed to a bot community.
type Retweet struct {
	CommunityID             int    `json:"community_id" bigquery:"community_id" csv:"community_id"`
	UserID                  string `json:"user_id" bigquery:"user_id" csv:"user_id"`
	UserScreenName          string `json:"user_screen_name" bigquery:"user_screen_name" csv:"user_screen_name"`
	RetweetedUserScreenName string `json:"retweeted_user_screen_name" bigquery:"retweeted_user_screen_name" csv:"retweeted_user_screen_name"`
	StatusID                string `json:"status_id" bigquery:"status_id" csv:"status_id"`
	StatusText              string `json:"status_text" bigquery:"status_text" csv:"status_text"`
}

// UserRank is an aggregate over retweets: a retweeted user and how many
// distinct statuses or distinct retweeters point at them.
type UserRank struct {
	ScreenName string `json:"screen_name" csv:"screen_name"`
	Count      int    `json:"count" csv:"count"`
}

type TokenStat struct {
	Token string  `json:"token" csv:"token"`
	Count int     `json:"count" csv:"count"`
	Pct   float64 `json:"pct" csv:"pct"`
	Rank  int     `json:"rank" csv:"rank"`
}

// TopicTerm is one weighted term within an LDA topic.
type TopicTerm struct {
	Topic  int     `json:"topic" csv:"topic"`
	Term   string  `json:"term" csv:"term"`
	Weight float64 `json:"weight" csv:"weight"`
}

// SentimentSummary aggregates VADER scores over a community's retweets.
type SentimentSummary struct {
	CommunityID   int     `json:"community_id" csv:"community_id"`
	StatusCount   int     `json:"status_count" csv:"status_count"`
	MeanScore     float64 `json:"mean_score" csv:"mean_score"`
	PositiveCount int     `json:"positive_count" csv:"positive_count"`
	NeutralCount  int     `json:"neutral_count" csv:"neutral_count"`
	NegativeCount int     `json:"negative_count" csv:"negative_count"`
}
