package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/doccorpus"
	"github.com/fwojciec/doccorpus/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_ExtractMain(t *testing.T) {
	t.Parallel()

	t.Run("extracts main content and drops boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav class="main-nav"><a href="/">Home</a><a href="/docs">Docs</a></nav>
<article>
<h1>Documentation</h1>
<p>This is important documentation content that should be extracted.</p>
</article>
<footer><p>Copyright 2024 Example Corp</p></footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		_, content, err := ext.ExtractMain(html)

		require.NoError(t, err)
		assert.Contains(t, content, "important documentation content")
		assert.NotContains(t, content, "Copyright 2024 Example Corp")
	})

	t.Run("extracts title from metadata", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Getting Started - My Docs</title>
<meta property="og:title" content="Getting Started Guide">
</head>
<body>
<main>
<h1>Getting Started</h1>
<p>This is the main content of the documentation page.</p>
</main>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		title, _, err := ext.ExtractMain(html)

		require.NoError(t, err)
		assert.NotEmpty(t, title)
	})

	t.Run("preserves code blocks", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article>
<h1>Code Examples</h1>
<p>Here is a code example:</p>
<pre><code>fmt.Println("Hello, World!")</code></pre>
</article></body></html>`

		ext := trafilatura.NewExtractor()
		_, content, err := ext.ExtractMain(html)

		require.NoError(t, err)
		assert.Contains(t, content, "fmt.Println")
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, _, err := ext.ExtractMain("")

		require.Error(t, err)
		assert.Equal(t, doccorpus.EINVALID, doccorpus.ErrorCode(err))
	})
}
