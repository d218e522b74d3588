package textfile

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/linecol"
)

// ErrNoSuchFile is flagged whenever a path does not denote a regular file.
const ErrNoSuchFile = linecol.Error("path does not denote a regular file")

// Document is an immutable text file held in memory together with its
// line/column index. Documents are created by Load or LoadAsync and are safe
// for concurrent queries.
type Document struct {
	path string
	ix   linecol.Index
}

// Load reads a file, which must be a regular UTF-8 text file, and returns it
// as an indexed document. The whole file content is read before the index is
// built; there is no partial loading.
func Load(name string) (*Document, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchFile, name)
	}
	content, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("error loading text file: %w", err)
	}
	tracer().Infof("loaded %q, %d bytes", name, len(content))
	return &Document{
		path: name,
		ix:   linecol.FromString(string(content)),
	}, nil
}

// Path returns the file path this document has been loaded from.
func (doc *Document) Path() string {
	return doc.path
}

// Text returns the document content.
func (doc *Document) Text() string {
	return doc.ix.Text()
}

// Index returns the document's line/column index.
func (doc *Document) Index() linecol.Index {
	return doc.ix
}

// Locate resolves a byte offset into the document to its 1-based
// (line, column) location.
func (doc *Document) Locate(offset uint64) linecol.Location {
	return doc.ix.Locate(offset)
}

// --- Asynchronous loading --------------------------------------------------

// Loading is a handle for a file load running in the background. Any number
// of goroutines may Wait on the same handle; all of them receive the single
// load result.
type Loading struct {
	cast *caster.Caster
	mu   sync.Mutex
	doc  *Document
	err  error
	done bool
}

type loadResult struct {
	doc *Document
	err error
}

// LoadAsync starts loading a file in the background and returns immediately.
// Clients collect the result with Wait.
func LoadAsync(name string) *Loading {
	l := &Loading{
		cast: caster.New(nil), // we will broadcast the load result to all waiters
	}
	go func() {
		doc, err := Load(name)
		l.mu.Lock()
		l.doc, l.err = doc, err
		l.done = true
		l.mu.Unlock()
		l.cast.Pub(loadResult{doc: doc, err: err})
		l.cast.Close()
	}()
	return l
}

// Wait blocks until the background load has finished, or until ctx is
// cancelled, and returns the loaded document. Wait may be called from
// multiple goroutines and repeatedly; every call returns the same result.
func (l *Loading) Wait(ctx context.Context) (*Document, error) {
	if r, done := l.stored(); done {
		return r.doc, r.err
	}
	ch, ok := l.cast.Sub(ctx, 1)
	if !ok { // broadcaster already closed, result has been stored
		return l.waitStored(ctx)
	}
	defer l.cast.Unsub(ch)
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case m, open := <-ch:
		if !open { // missed the publication or got unsubscribed
			return l.waitStored(ctx)
		}
		r := m.(loadResult)
		return r.doc, r.err
	}
}

// waitStored returns the stored load result. The subscription channel only
// closes after publication or because ctx unsubscribed us, so when the
// result is not stored yet the context must have been cancelled.
func (l *Loading) waitStored(ctx context.Context) (*Document, error) {
	if r, done := l.stored(); done {
		return r.doc, r.err
	}
	<-ctx.Done()
	return nil, ctx.Err()
}

func (l *Loading) stored() (loadResult, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return loadResult{doc: l.doc, err: l.err}, l.done
}
