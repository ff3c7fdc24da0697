package profile

import (
	"errors"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

const (
	defaultExtension      = "xml"
	defaultMaxConcurrency = 10
)

// NotFoundError reports a profile name whose document could not be read.
type NotFoundError struct {
	Profile string
	Path    string
	Err     error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("profile %q not found at %s: %v", e.Profile, e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// Option configures a Repository.
type Option func(*Repository)

// WithExtension overrides the profile file extension. Empty values are
// ignored.
func WithExtension(ext string) Option {
	return func(r *Repository) {
		if ext != "" {
			r.ext = ext
		}
	}
}

// WithMaxConcurrency sets the maximum number of documents parsed in
// parallel by ResolveAll. Values less than 1 are ignored.
func WithMaxConcurrency(n int) Option {
	return func(r *Repository) {
		if n > 0 {
			r.maxConcurrency = n
		}
	}
}

// Repository resolves profile names to parsed documents using the fixed
// naming convention <dir>/<name>.<ext>. It keeps no cache; every resolution
// re-reads and re-parses the file.
type Repository struct {
	dir            string
	ext            string
	maxConcurrency int
}

// NewRepository creates a Repository rooted at the given profiles directory.
func NewRepository(dir string, opts ...Option) *Repository {
	r := &Repository{
		dir:            dir,
		ext:            defaultExtension,
		maxConcurrency: defaultMaxConcurrency,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Path returns the file path a profile name resolves to.
func (r *Repository) Path(name string) string {
	return filepath.Join(r.dir, name+"."+r.ext)
}

// Resolve reads and parses the document for the given profile name.
// A missing or unreadable file is a *NotFoundError; a malformed document is
// a *ParseError.
func (r *Repository) Resolve(name string) (*Document, error) {
	path := r.Path(name)

	doc, err := ParseFile(path)
	if err != nil {
		if isReadError(err) {
			return nil, &NotFoundError{Profile: name, Path: path, Err: err}
		}
		return nil, err
	}

	return doc, nil
}

// ResolveAll resolves several profile names, parsing documents concurrently
// with bounded parallelism. The returned slice preserves the input order;
// the first failure aborts the whole resolution.
func (r *Repository) ResolveAll(names []string) ([]*Document, error) {
	docs := make([]*Document, len(names))

	g := new(errgroup.Group)
	g.SetLimit(r.maxConcurrency)

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			doc, err := r.Resolve(name)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return docs, nil
}

// isReadError distinguishes filesystem failures from parse failures so
// Resolve can classify them as NotFoundError.
func isReadError(err error) bool {
	var parseErr *ParseError
	return !errors.As(err, &parseErr)
}
