package crawl

import (
	"container/heap"
	"strings"
	"sync"

	"github.com/fwojciec/doccorpus"
	"github.com/fwojciec/doccorpus/bloom"
)

// Compile-time interface verification.
var _ doccorpus.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory URL frontier: a priority queue with Bloom
// filter deduplication. It is safe for concurrent use.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue *linkHeap
}

// NewFrontier creates a Frontier sized for n expected URLs with the
// given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	h := &linkHeap{}
	heap.Init(h)
	return &Frontier{
		seen:  bloom.NewFilter(n, fpRate),
		queue: h,
	}
}

// Push adds a link to the frontier. It returns false if the URL has
// already been seen. Fragments are stripped first, so URLs differing
// only by fragment are duplicates of each other.
func (f *Frontier) Push(link doccorpus.DiscoveredLink) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	url := link.URL
	if idx := strings.Index(url, "#"); idx != -1 {
		url = url[:idx]
	}

	if f.seen.Test(url) {
		return false
	}
	f.seen.Add(url)

	link.URL = url
	heap.Push(f.queue, link)
	return true
}

// Pop returns the highest-priority link. The bool result is false when
// the frontier is empty.
func (f *Frontier) Pop() (doccorpus.DiscoveredLink, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.queue.Len() == 0 {
		return doccorpus.DiscoveredLink{}, false
	}
	link, _ := heap.Pop(f.queue).(doccorpus.DiscoveredLink)
	return link, true
}

// Len returns the number of queued links.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queue.Len()
}

// linkHeap is a max-heap of DiscoveredLink by priority.
type linkHeap []doccorpus.DiscoveredLink

func (h linkHeap) Len() int { return len(h) }

func (h linkHeap) Less(i, j int) bool {
	return h[i].Priority > h[j].Priority
}

func (h linkHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *linkHeap) Push(x any) {
	link, _ := x.(doccorpus.DiscoveredLink)
	*h = append(*h, link)
}

func (h *linkHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}
