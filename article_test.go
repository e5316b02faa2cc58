package monsoon_test

import (
	"testing"

	monsoon "github.com/AIDMI-DataHub/monsoon-news-extraction"
	"github.com/stretchr/testify/assert"
)

func TestArticleID(t *testing.T) {
	t.Parallel()

	a := monsoon.ArticleID("https://example.com/story", "Flood in Kerala")
	b := monsoon.ArticleID("https://example.com/story", "Flood in Kerala")
	c := monsoon.ArticleID("https://example.com/story", "Different title")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 16)
}

func TestArticleValidate(t *testing.T) {
	t.Parallel()

	article := &monsoon.Article{
		FinalURL: "https://example.com/story",
		Text:     "Some body text.",
	}
	assert.NoError(t, article.Validate())

	assert.Equal(t, monsoon.EINVALID,
		monsoon.ErrorCode((&monsoon.Article{Text: "x"}).Validate()))
	assert.Equal(t, monsoon.EINVALID,
		monsoon.ErrorCode((&monsoon.Article{FinalURL: "x"}).Validate()))
}

func TestResultRowValidate(t *testing.T) {
	t.Parallel()

	row := &monsoon.ResultRow{Link: "https://example.com/a", Region: "kerala"}
	assert.NoError(t, row.Validate())

	assert.Equal(t, monsoon.EINVALID,
		monsoon.ErrorCode((&monsoon.ResultRow{Region: "kerala"}).Validate()))
	assert.Equal(t, monsoon.EINVALID,
		monsoon.ErrorCode((&monsoon.ResultRow{Link: "x"}).Validate()))
}
