package models

// JobMetadata describes one job run, saved as metadata.json next to the
// job's artifacts and mirrored to the bucket.
type JobMetadata struct {
	AppEnv     string `json:"app_env"`
	JobID      string `json:"job_id"`
	DryRun     bool   `json:"dry_run"`
	BatchSize  int    `json:"batch_size"`
	UsersLimit int    `json:"users_limit,omitempty"`
}

// ProgressSample is one row of the running results collected at each
// reporting interval during a graph build.
type ProgressSample struct {
	Timestamp string `json:"ts" csv:"ts"`
	Counter   int    `json:"counter" csv:"counter"`
	EdgeCount int    `json:"edges" csv:"edges"`
}
