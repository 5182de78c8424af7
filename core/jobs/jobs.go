// Package jobs tracks parsed pipelines under the job IDs a job control
// engine would assign to them.
package jobs

import (
	"sync"

	"github.com/jobline-sh/jobline/core/pipeline"
)

// Table is an insertion-ordered registry of pipeline requests. It manages
// identifiers and bookkeeping only; starting and reaping processes is the
// execution engine's concern.
type Table struct {
	mu    sync.Mutex
	next  int
	byID  map[int]*pipeline.Request
	order []int
}

// NewTable returns an empty table. Job IDs start at one and are never
// reused.
func NewTable() *Table {
	return &Table{
		next: 1,
		byID: make(map[int]*pipeline.Request),
	}
}

// Add assigns the next job ID to req and stores it. The ID reaches the
// request's job field and every stage's group ID before any other table
// reader can observe the request.
func (t *Table) Add(req *pipeline.Request) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.next
	t.next++
	req.SetJobID(id)
	t.byID[id] = req
	t.order = append(t.order, id)
	return id
}

// Get returns the request stored under id.
func (t *Table) Get(id int) (*pipeline.Request, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	req, ok := t.byID[id]
	return req, ok
}

// Remove drops the request stored under id and reports whether it existed.
func (t *Table) Remove(id int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.byID[id]; !ok {
		return false
	}
	delete(t.byID, id)
	for i, other := range t.order {
		if other == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// List returns the stored requests in insertion order.
func (t *Table) List() []*pipeline.Request {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]*pipeline.Request, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.byID[id])
	}
	return out
}

// Len returns the number of stored requests.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.byID)
}
