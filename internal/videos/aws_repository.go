package videos

import "context"

// AWSRepository is the object storage client. PutFile uploads one staged
// local file and returns the durable remote reference; RemoveObject deletes
// by reference and is idempotent (removing an absent object is not an error).
type AWSRepository interface {
	PutFile(ctx context.Context, localPath string) (string, error)
	RemoveObject(ctx context.Context, ref string) error
}
