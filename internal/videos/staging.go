package videos

import "time"

// StagingRepository manages the transient local files multipart uploads are
// decoded into. All callers treat Remove as best-effort; the reclaimer's
// sweep eventually collects anything left behind.
type StagingRepository interface {
	Remove(path string) error
	SweepOlderThan(maxAge time.Duration) (int, error)
}
