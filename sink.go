package doccorpus

import "context"

// UploadSink accepts a finished output file for archival or
// distribution. Sink failures are fatal to the upload only; the local
// output file is always kept regardless of sink outcome.
type UploadSink interface {
	// Upload publishes the local file. Implementations archive prior
	// files sharing the same name prefix before publishing the new
	// one.
	Upload(ctx context.Context, localPath string) error
}
