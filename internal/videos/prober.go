package videos

import "context"

// DurationProber computes the playable duration, in seconds, of an uploaded
// video reference.
type DurationProber interface {
	Probe(ctx context.Context, ref string) (float64, error)
}
