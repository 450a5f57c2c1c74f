package selector

import (
	"golang.org/x/exp/rand"

	"github.com/photopane/photo-saver/internal/model"
)

// History tracks which photos have already been shown. Each category keeps a
// shuffled queue of not-yet-shown photo identities so no photo repeats until
// its category is exhausted; a separate set tracks identities used inside the
// layout instance currently being assembled so no photo appears in two panes
// at once.
type History struct {
	rng      *rand.Rand
	queues   map[model.Category][]string
	inLayout map[string]struct{}
}

// NewHistory creates a history using the given random source for queue
// shuffling. A nil source seeds from the global generator.
func NewHistory(src rand.Source) *History {
	var rng *rand.Rand
	if src != nil {
		rng = rand.New(src)
	} else {
		rng = rand.New(rand.NewSource(rand.Uint64()))
	}
	return &History{
		rng:      rng,
		queues:   make(map[model.Category][]string),
		inLayout: make(map[string]struct{}),
	}
}

// Seed fills every category queue from the pool, shuffled
func (h *History) Seed(pool *model.Pool) {
	for _, c := range pool.Categories() {
		h.refill(c, pool)
	}
}

// BeginLayout clears the current-layout used set. Called at every rotation
// tick before panes are assigned.
func (h *History) BeginLayout() {
	h.inLayout = make(map[string]struct{})
}

// MarkInLayout records an identity as used by the layout instance being built
func (h *History) MarkInLayout(path string) {
	h.inLayout[path] = struct{}{}
}

// UsedInLayout reports whether an identity is already assigned to a pane of
// the current layout instance
func (h *History) UsedInLayout(path string) bool {
	_, ok := h.inLayout[path]
	return ok
}

// Candidates returns the not-yet-shown photos of a category that are free to
// use in the current layout instance. An exhausted queue is refilled from the
// full pool (reshuffled) and retried once. A queue whose remaining photos are
// all held by the current layout is not refilled; that would restore consumed
// identities early.
func (h *History) Candidates(c model.Category, pool *model.Pool) []model.PhotoRecord {
	out := h.pending(c, pool)
	if len(out) == 0 && len(h.queues[c]) == 0 && pool.CategoryCount(c) > 0 {
		h.refill(c, pool)
		out = h.pending(c, pool)
	}
	return out
}

// Consume removes a chosen photo's identity from its category queue
func (h *History) Consume(photo model.PhotoRecord) {
	q := h.queues[photo.Category]
	for i, path := range q {
		if path == photo.Path {
			h.queues[photo.Category] = append(q[:i], q[i+1:]...)
			return
		}
	}
}

// QueueLen returns the number of not-yet-shown identities for a category
func (h *History) QueueLen(c model.Category) int {
	return len(h.queues[c])
}

func (h *History) pending(c model.Category, pool *model.Pool) []model.PhotoRecord {
	queued := make(map[string]struct{}, len(h.queues[c]))
	for _, path := range h.queues[c] {
		queued[path] = struct{}{}
	}

	var out []model.PhotoRecord
	for _, photo := range pool.ByCategory(c) {
		if _, ok := queued[photo.Path]; !ok {
			continue
		}
		if h.UsedInLayout(photo.Path) {
			continue
		}
		out = append(out, photo)
	}
	return out
}

func (h *History) refill(c model.Category, pool *model.Pool) {
	photos := pool.ByCategory(c)
	queue := make([]string, len(photos))
	for i, p := range photos {
		queue[i] = p.Path
	}
	h.rng.Shuffle(len(queue), func(i, j int) {
		queue[i], queue[j] = queue[j], queue[i]
	})
	h.queues[c] = queue
}
