package dictionary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// LoaderConfig locates the dictionary file. URL is optional; when it is
// empty a missing file is reported instead of fetched.
type LoaderConfig struct {
	Path string
	URL  string
}

type Loader struct {
	config    LoaderConfig
	fileCache *FileCache
	fetcher   Fetcher
	progress  Progress
}

type LoaderOption func(*Loader)

// WithFetcher enables downloading the dictionary when the local file is missing.
func WithFetcher(fetcher Fetcher) LoaderOption {
	return func(l *Loader) {
		l.fetcher = fetcher
	}
}

// WithProgress reports download progress to p.
func WithProgress(p Progress) LoaderOption {
	return func(l *Loader) {
		l.progress = p
	}
}

func NewLoader(config LoaderConfig, opts ...LoaderOption) *Loader {
	l := &Loader{
		config:    config,
		fileCache: NewFileCache(config.Path),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the dictionary file, downloading it first if it does not exist
// and a fetcher is configured, and decodes it.
//
// The returned error is ErrDictionaryNotFound, *IOError, *FetchError or
// *DecodeError.
func (l *Loader) Load(ctx context.Context) (*Dictionary, error) {
	var fill func(w io.Writer) error
	if l.fetcher != nil && l.config.URL != "" {
		fill = func(w io.Writer) error {
			return l.fetch(ctx, w)
		}
	}

	contents, cached, err := l.fileCache.cache(fill)
	if err != nil {
		return nil, err
	}
	slog.Default().Debug("dictionary file read",
		"path", l.config.Path,
		"cached", cached,
		"bytes", len(contents))

	entries, err := Decode(contents)
	if err != nil {
		return nil, err
	}
	slog.Default().Debug("dictionary decoded", "entries", len(entries))

	return New(entries), nil
}

func (l *Loader) fetch(ctx context.Context, w io.Writer) error {
	url := l.config.URL
	slog.Default().Debug("fetching dictionary", "url", url, "path", l.config.Path)

	body, size, err := l.fetcher.Fetch(ctx, url)
	if err != nil {
		var fetchErr *FetchError
		if errors.As(err, &fetchErr) {
			return err
		}
		return &FetchError{URL: url, Err: err}
	}
	defer func() {
		_ = body.Close()
	}()

	var reader io.Reader = body
	if l.progress != nil {
		l.progress.Start(size)
		defer l.progress.Finish()
		reader = &progressReader{reader: body, progress: l.progress}
	}

	n, err := io.Copy(w, reader)
	if err != nil {
		return &FetchError{URL: url, Err: err}
	}
	if size >= 0 && n != size {
		return &FetchError{URL: url, Err: fmt.Errorf("received %d of %d bytes: %w", n, size, io.ErrUnexpectedEOF)}
	}
	slog.Default().Debug("dictionary fetched", "url", url, "bytes", n)
	return nil
}
