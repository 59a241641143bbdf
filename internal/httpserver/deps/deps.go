package deps

import (
	"time"

	"github.com/mlutra/watched/internal/logger"
	redisstore "github.com/mlutra/watched/internal/store/redis"
)

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	TimeNow       func() time.Time  // for testing, defaults to time.Now
	AllowedHosts  []string          // Host headers allowed to access the server
	AllowedCIDRS  []string          // IPs/CIDRs allowed to access the server
	TrustProxy    bool              // true if running behind a trusted reverse proxy
	BookmarksPath string            // path to the Chrome Bookmarks file
	FolderName    string            // watched folder name to extract
	History       *redisstore.Store // serve-history store (nil when redis is disabled)
	HistoryLimit  int               // serve summaries returned by the stats endpoint
}

// Now returns the injected clock, falling back to time.Now.
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}
