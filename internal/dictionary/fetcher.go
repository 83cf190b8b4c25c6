package dictionary

import (
	"context"
	"io"
)

//go:generate mockgen -source=fetcher.go -destination=../mocks/dictionary/mock_fetcher.go -package=mock_dictionary

// Fetcher retrieves the dictionary file from a remote location.
type Fetcher interface {
	// Fetch opens the resource at url. size is the announced length of the
	// body in bytes, or -1 when unknown. The caller closes body.
	Fetch(ctx context.Context, url string) (body io.ReadCloser, size int64, err error)
}

// Progress observes the bytes of a dictionary download. It is presentation
// only; implementations must not fail the download.
type Progress interface {
	Start(total int64)
	Advance(n int64)
	Finish()
}

type progressReader struct {
	reader   io.Reader
	progress Progress
}

func (r *progressReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	if n > 0 {
		r.progress.Advance(int64(n))
	}
	return n, err
}
