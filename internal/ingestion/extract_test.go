package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPosting(t *testing.T) {
	html := `<html>
	<head>
		<title>Careers | Initech</title>
		<meta property="og:title" content="Senior Software Engineer">
		<meta property="og:site_name" content="Initech">
	</head>
	<body>
		<nav>Home | Jobs</nav>
		<div class="job-description">
			<p>Build   distributed systems.</p>
			<p>Requires 5+ years of Go.</p>
		</div>
		<footer>Copyright Initech</footer>
	</body>
	</html>`

	posting, err := ExtractPosting(html)
	require.NoError(t, err)
	assert.Equal(t, "Senior Software Engineer", posting.Title)
	assert.Equal(t, "Initech", posting.CompanyName)
	assert.Contains(t, posting.Description, "Build distributed systems.")
	assert.Contains(t, posting.Description, "Requires 5+ years of Go.")
	assert.NotContains(t, posting.Description, "Home | Jobs", "nav content is noise")
	assert.NotContains(t, posting.Description, "Copyright", "footer content is noise")
}

func TestExtractPostingTitleFallbacks(t *testing.T) {
	// No og:title, h1 wins.
	posting, err := ExtractPosting(`<html><body><h1>Data Analyst</h1><p>Work with data.</p></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "Data Analyst", posting.Title)
	assert.Empty(t, posting.CompanyName)

	// No h1 either, document title wins.
	posting, err = ExtractPosting(`<html><head><title>Product Manager</title></head><body><p>Ship things.</p></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "Product Manager", posting.Title)
}

func TestExtractPostingNoTitle(t *testing.T) {
	_, err := ExtractPosting(`<html><body><p>Just some text.</p></body></html>`)
	assert.Error(t, err)
}

func TestCleanText(t *testing.T) {
	input := "Line  one\t here\n\n\n\n\nLine two\n   \n"
	assert.Equal(t, "Line one here\n\nLine two", CleanText(input))
}
