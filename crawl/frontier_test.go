package crawl_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/doccorpus"
	"github.com/fwojciec/doccorpus/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontier_PushPop(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	assert.True(t, f.Push(doccorpus.DiscoveredLink{URL: "https://example.com/a", Priority: doccorpus.PriorityContent}))
	assert.Equal(t, 1, f.Len())

	link, ok := f.Pop()
	require.True(t, ok)
	assert.Equal(t, "https://example.com/a", link.URL)
	assert.Equal(t, 0, f.Len())

	_, ok = f.Pop()
	assert.False(t, ok)
}

func TestFrontier_PopsByPriority(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)
	f.Push(doccorpus.DiscoveredLink{URL: "https://example.com/footer", Priority: doccorpus.PriorityFooter})
	f.Push(doccorpus.DiscoveredLink{URL: "https://example.com/nav", Priority: doccorpus.PriorityNavigation})
	f.Push(doccorpus.DiscoveredLink{URL: "https://example.com/content", Priority: doccorpus.PriorityContent})

	first, _ := f.Pop()
	second, _ := f.Pop()
	third, _ := f.Pop()

	assert.Equal(t, "https://example.com/nav", first.URL)
	assert.Equal(t, "https://example.com/content", second.URL)
	assert.Equal(t, "https://example.com/footer", third.URL)
}

func TestFrontier_DeduplicatesURLs(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	assert.True(t, f.Push(doccorpus.DiscoveredLink{URL: "https://example.com/a"}))
	assert.False(t, f.Push(doccorpus.DiscoveredLink{URL: "https://example.com/a"}))
	assert.Equal(t, 1, f.Len())
}

func TestFrontier_StripsFragments(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	assert.True(t, f.Push(doccorpus.DiscoveredLink{URL: "https://example.com/a#intro"}))
	assert.False(t, f.Push(doccorpus.DiscoveredLink{URL: "https://example.com/a#usage"}))
	assert.False(t, f.Push(doccorpus.DiscoveredLink{URL: "https://example.com/a"}))

	link, ok := f.Pop()
	require.True(t, ok)
	assert.Equal(t, "https://example.com/a", link.URL)
}

func TestFrontier_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(10000, 0.01)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				f.Push(doccorpus.DiscoveredLink{
					URL: fmt.Sprintf("https://example.com/%d/%d", i, j),
				})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1000, f.Len())
}
