// Package entropy opens the file whose content is hashed into a key seed.
// Nothing here interprets the bytes; every failure is reported as an
// unavailable entropy source.
package entropy

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Stdin is the path that selects standard input as the entropy source.
const Stdin = "-"

// ErrSource is matched by every error from this package.
var ErrSource = errors.New("entropy source unavailable")

// SourceError is an entropy source failure for a given path.
type SourceError struct {
	Path st
	Err  er
}

func (e *SourceError) Error() st {
	return ErrSource.Error() + ": " + e.Path + ": " + e.Err.Error()
}

// Is makes errors.Is(err, ErrSource) true for any SourceError.
func (e *SourceError) Is(target error) bool { return target == ErrSource }

func (e *SourceError) Unwrap() error { return e.Err }

// Open returns a reader over the content of path, or standard input if path
// is Stdin. Directories and missing files are refused.
func Open(path st) (rc io.ReadCloser, err er) {
	if path == Stdin {
		log.D.Ln("reading entropy from standard input")
		rc = io.NopCloser(os.Stdin)
		return
	}
	var fi os.FileInfo
	if fi, err = os.Stat(path); chk.D(err) {
		err = &SourceError{Path: path, Err: cause(err)}
		return
	}
	if fi.IsDir() {
		err = &SourceError{Path: path, Err: errors.New("is a directory")}
		return
	}
	var f *os.File
	if f, err = os.Open(path); chk.D(err) {
		err = &SourceError{Path: path, Err: cause(err)}
		return
	}
	log.D.F("reading entropy from %s (%d bytes)", path, fi.Size())
	rc = f
	return
}

// cause strips the path from an *os.PathError, since SourceError already
// carries it, keeping the operation and the underlying error.
func cause(err er) er {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return errors.Wrap(pe.Err, pe.Op)
	}
	return errors.WithStack(err)
}

// Limit wraps r so that reading more than limit bytes fails instead of
// silently truncating the entropy. A limit of zero or less means none.
func Limit(r io.Reader, path st, limit int64) io.Reader {
	if limit < 0 {
		limit = 0
	}
	return &reader{r: r, path: path, limit: limit}
}

// reader reports read failures as SourceError and enforces the byte limit.
type reader struct {
	r     io.Reader
	path  st
	n     int64
	limit int64
}

func (l *reader) Read(p by) (n int, err er) {
	if l.limit > 0 {
		if l.n > l.limit {
			err = l.overLimit()
			return
		}
		// one byte past the limit is enough to tell the source is too long
		if int64(len(p)) > l.limit-l.n+1 {
			p = p[:l.limit-l.n+1]
		}
	}
	n, err = l.r.Read(p)
	l.n += int64(n)
	if l.limit > 0 && l.n > l.limit {
		n -= int(l.n - l.limit)
		err = l.overLimit()
		return
	}
	if err != nil && err != io.EOF {
		err = &SourceError{Path: l.path, Err: errors.Wrap(err, "read")}
	}
	return
}

func (l *reader) overLimit() er {
	return &SourceError{Path: l.path,
		Err: errors.Errorf("more than the limit of %d bytes", l.limit)}
}
