package redis

const (
	// KeyServeHistory is the list of recent serve summaries, newest first
	KeyServeHistory = "watched:history:serves"
	// KeyLastServe holds the most recent serve summary
	KeyLastServe = "watched:history:last"
)

// ServeHistoryKey returns the Redis key for the serve-summary list
func ServeHistoryKey() string {
	return KeyServeHistory
}

// LastServeKey returns the Redis key for the latest serve summary
func LastServeKey() string {
	return KeyLastServe
}
