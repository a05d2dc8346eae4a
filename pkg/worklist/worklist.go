// Package worklist implements the deduplicated FIFO of pending module
// paths discovered while parsing import/export-from directives. It owns
// no file I/O — draining it and feeding the resulting paths back into
// parseFile is the host's job.
//
// The design is grounded in the dependency-dedup discipline of a module
// registry (paserati's pkg/modules/registry.go caches ModuleRecord by
// resolved specifier so the same file is never parsed twice); here the
// same discipline is applied to a plain path queue instead of a cache of
// parsed records, since resolution and I/O live outside the parser.
package worklist

// WorkList is the FIFO of normalized paths pending host-side retrieval,
// plus a companion set ("seenlog") of every path ever enqueued or parsed.
// Invariant: every path in the queue is in seenlog; no path is enqueued
// twice over the lifetime of a WorkList.
type WorkList struct {
	backlog []string
	seenlog map[string]bool
}

// New creates an empty WorkList.
func New() *WorkList {
	return &WorkList{
		seenlog: make(map[string]bool),
	}
}

// MarkSeen records a normalized path as seen without enqueuing it — used
// when a Source is parsed directly (e.g. the entry file) rather than
// discovered through an import.
func (w *WorkList) MarkSeen(normalizedPath string) {
	w.seenlog[normalizedPath] = true
}

// Seen reports whether normalizedPath has ever been enqueued or marked
// seen.
func (w *WorkList) Seen(normalizedPath string) bool {
	return w.seenlog[normalizedPath]
}

// Enqueue adds normalizedPath to the backlog unless it has already been
// seen, in which case it is a silent no-op — the dedup contract callers
// rely on. Returns true if the path was newly enqueued.
func (w *WorkList) Enqueue(normalizedPath string) bool {
	if w.seenlog[normalizedPath] {
		return false
	}
	w.seenlog[normalizedPath] = true
	w.backlog = append(w.backlog, normalizedPath)
	return true
}

// Next dequeues and returns the head of the backlog (FIFO order), or ""
// with ok=false if the backlog is empty.
func (w *WorkList) Next() (path string, ok bool) {
	if len(w.backlog) == 0 {
		return "", false
	}
	path = w.backlog[0]
	w.backlog = w.backlog[1:]
	return path, true
}

// Empty reports whether the backlog has been fully drained.
func (w *WorkList) Empty() bool {
	return len(w.backlog) == 0
}

// Len reports the number of paths still pending in the backlog.
func (w *WorkList) Len() int {
	return len(w.backlog)
}
