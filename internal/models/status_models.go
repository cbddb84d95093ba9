package models

// Status is a flattened tweet row, one row per status with the author's
// user attributes denormalized onto it.
type Status struct {
	StatusID   string `json:"status_id" bigquery:"status_id" csv:"status_id"`
	StatusText string `json:"status_text" bigquery:"status_text" csv:"status_text"`
	Truncated  bool   `json:"truncated" bigquery:"truncated" csv:"truncated"`

	RetweetedStatusID       string `json:"retweeted_status_id" bigquery:"retweeted_status_id" csv:"retweeted_status_id"`
	RetweetedUserID         string `json:"retweeted_user_id" bigquery:"retweeted_user_id" csv:"retweeted_user_id"`
	RetweetedUserScreenName string `json:"retweeted_user_screen_name" bigquery:"retweeted_user_screen_name" csv:"retweeted_user_screen_name"`

	ReplyStatusID string `json:"reply_status_id" bigquery:"reply_status_id" csv:"reply_status_id"`
	ReplyUserID   string `json:"reply_user_id" bigquery:"reply_user_id" csv:"reply_user_id"`
	IsQuote       bool   `json:"is_quote" bigquery:"is_quote" csv:"is_quote"`
	Geo           string `json:"geo" bigquery:"geo" csv:"geo"`
	CreatedAt     string `json:"created_at" bigquery:"created_at" csv:"created_at"`

	UserID          string `json:"user_id" bigquery:"user_id" csv:"user_id"`
	UserName        string `json:"user_name" bigquery:"user_name" csv:"user_name"`
	UserScreenName  string `json:"user_screen_name" bigquery:"user_screen_name" csv:"user_screen_name"`
	UserDescription string `json:"user_description" bigquery:"user_description" csv:"user_description"`
	UserLocation    string `json:"user_location" bigquery:"user_location" csv:"user_location"`
	UserVerified    bool   `json:"user_verified" bigquery:"user_verified" csv:"user_verified"`
	UserCreatedAt   string `json:"user_created_at" bigquery:"user_created_at" csv:"user_created_at"`
}

// DailyStatus is the slimmer row used by the daily active tweeter graph:
// one row per status, with the author's daily tweet rate and bot score.
type DailyStatus struct {
	StatusID   string  `json:"status_id" bigquery:"status_id" csv:"status_id"`
	StatusText string  `json:"status_text" bigquery:"status_text" csv:"status_text"`
	UserID     string  `json:"user_id" bigquery:"user_id" csv:"user_id"`
	ScreenName string  `json:"screen_name" bigquery:"screen_name" csv:"screen_name"`
	Rate       float64 `json:"rate" bigquery:"rate" csv:"rate"`
	Bot        bool    `json:"bot" bigquery:"bot" csv:"bot"`
	CreatedAt  string  `json:"created_at" bigquery:"created_at" csv:"created_at"`
}

// UserFriends is one user's outbound friend list, as collected.
type UserFriends struct {
	UserID       string   `json:"user_id" bigquery:"user_id"`
	ScreenName   string   `json:"screen_name" bigquery:"screen_name"`
	FriendsCount int      `json:"friends_count" bigquery:"friends_count"`
	FriendNames  []string `json:"friend_names" bigquery:"friend_names"`
}

// RemainingUser is a user with no collected friend list yet.
type RemainingUser struct {
	UserID string `json:"user_id" bigquery:"user_id"`
}
