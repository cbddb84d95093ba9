// Package tweetparse flattens raw Twitter API status payloads into the
// denormalized rows the warehouse stores.
package tweetparse

import (
	"strings"
	"time"
)

// APIUser is the subset of the API user object we keep.
type APIUser struct {
	IDStr       string `json:"id_str"`
	Name        string `json:"name"`
	ScreenName  string `json:"screen_name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Verified    bool   `json:"verified"`
	CreatedAt   string `json:"created_at"`
}

// APIStatus is the nested status structure as returned by the API.
// Extended and retweeted fields are optional.
type APIStatus struct {
	IDStr                string     `json:"id_str"`
	Text                 string     `json:"text"`
	FullText             string     `json:"full_text"`
	ExtendedTweet        *Extended  `json:"extended_tweet"`
	Truncated            bool       `json:"truncated"`
	RetweetedStatus      *APIStatus `json:"retweeted_status"`
	InReplyToStatusIDStr string     `json:"in_reply_to_status_id_str"`
	InReplyToUserIDStr   string     `json:"in_reply_to_user_id_str"`
	IsQuoteStatus        bool       `json:"is_quote_status"`
	Geo                  string     `json:"geo"`
	CreatedAt            string     `json:"created_at"`
	User                 APIUser    `json:"user"`
}

type Extended struct {
	FullText string `json:"full_text"`
}

// FlatStatus is the flattened row produced by ParseStatus. It mirrors the
// warehouse tweets table column for column.
type FlatStatus struct {
	StatusID                string `json:"status_id"`
	StatusText              string `json:"status_text"`
	Truncated               bool   `json:"truncated"`
	RetweetedStatusID       string `json:"retweeted_status_id"`
	RetweetedUserID         string `json:"retweeted_user_id"`
	RetweetedUserScreenName string `json:"retweeted_user_screen_name"`
	ReplyStatusID           string `json:"reply_status_id"`
	ReplyUserID             string `json:"reply_user_id"`
	IsQuote                 bool   `json:"is_quote"`
	Geo                     string `json:"geo"`
	CreatedAt               string `json:"created_at"`
	UserID                  string `json:"user_id"`
	UserName                string `json:"user_name"`
	UserScreenName          string `json:"user_screen_name"`
	UserDescription         string `json:"user_description"`
	UserLocation            string `json:"user_location"`
	UserVerified            bool   `json:"user_verified"`
	UserCreatedAt           string `json:"user_created_at"`
}

const apiTimeLayout = time.RubyDate // "Mon Jan 02 15:04:05 -0700 2006"

// ParseStatus converts a nested status into a flat row of non-normalized
// status and user attributes.
func ParseStatus(status APIStatus) FlatStatus {
	row := FlatStatus{
		StatusID:      status.IDStr,
		StatusText:    CleanString(FullText(status)),
		Truncated:     status.Truncated,
		ReplyStatusID: status.InReplyToStatusIDStr,
		ReplyUserID:   status.InReplyToUserIDStr,
		IsQuote:       status.IsQuoteStatus,
		Geo:           status.Geo,
		CreatedAt:     normalizeTimestamp(status.CreatedAt),

		UserID:          status.User.IDStr,
		UserName:        status.User.Name,
		UserScreenName:  status.User.ScreenName,
		UserDescription: CleanString(status.User.Description),
		UserLocation:    status.User.Location,
		UserVerified:    status.User.Verified,
		UserCreatedAt:   normalizeTimestamp(status.User.CreatedAt),
	}

	if rt := status.RetweetedStatus; rt != nil {
		row.RetweetedStatusID = rt.IDStr
		row.RetweetedUserID = rt.User.IDStr
		row.RetweetedUserScreenName = rt.User.ScreenName
	}

	return row
}

// FullText resolves the status body, preferring the extended forms the API
// uses for statuses over 140 characters.
func FullText(status APIStatus) string {
	if status.FullText != "" {
		return status.FullText
	}
	if status.ExtendedTweet != nil {
		return status.ExtendedTweet.FullText
	}
	return status.Text
}

// CleanString removes line breaks for cleaner CSV storage.
func CleanString(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.TrimSpace(s)
}

// normalizeTimestamp rewrites the API's ruby-style timestamp into the
// sortable form the warehouse stores. Unparseable input passes through.
func normalizeTimestamp(s string) string {
	t, err := time.Parse(apiTimeLayout, s)
	if err != nil {
		return s
	}
	return t.UTC().Format("2006-01-02 15:04:05")
}
