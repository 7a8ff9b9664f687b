package progress

import (
	"sync"
	"sync/atomic"

	"github.com/frenchnum/frenchnum/internal/namer/usecase"
)

type counter struct {
	done  atomic.Uint64
	total uint64
}

// Handler counts named rows per dialect. Workers add to counters concurrently,
// the map itself only changes while a task is being prepared.
type Handler struct {
	mutex    sync.RWMutex
	counters map[string]*counter
}

func NewHandler() *Handler {
	return &Handler{
		counters: make(map[string]*counter),
	}
}

// Create registers a dialect with total rows to name. Dialects without rows are not tracked.
func (p *Handler) Create(name string, total uint64) {
	if total == 0 {
		return
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.counters[name] = &counter{total: total}
}

// Add counts done more rows for a dialect. Unknown names are ignored.
func (p *Handler) Add(name string, done uint64) {
	p.mutex.RLock()
	c, ok := p.counters[name]
	p.mutex.RUnlock()

	if ok {
		c.done.Add(done)
	}
}

// GetAll returns a snapshot of every counter, done never exceeds total.
func (p *Handler) GetAll() map[string]usecase.Progress {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	results := make(map[string]usecase.Progress, len(p.counters))
	for name, c := range p.counters {
		results[name] = usecase.Progress{
			Done:  min(c.done.Load(), c.total),
			Total: c.total,
		}
	}

	return results
}
