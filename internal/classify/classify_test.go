package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonesrussell/gofresh/internal/classify"
	"github.com/jonesrussell/gofresh/internal/domain"
)

func TestClassify_EditorialList(t *testing.T) {
	c := classify.New()

	result := c.Classify("techradar.com")
	assert.Equal(t, domain.TierEditorial, result.Tier)
	assert.Equal(t, classify.MethodDomainList, result.Method)
	assert.Equal(t, "techradar.com", result.Reason)
}

func TestClassify_SubdomainMatches(t *testing.T) {
	c := classify.New()

	assert.Equal(t, domain.TierPlatform, c.Tier("en.wikipedia.org"))
	assert.Equal(t, domain.TierRetailer, c.Tier("www.amazon.com"))
	assert.Equal(t, domain.TierEditorial, c.Tier("www.theverge.com"))
}

func TestClassify_PlatformAndRetailer(t *testing.T) {
	c := classify.New()

	assert.Equal(t, domain.TierPlatform, c.Tier("reddit.com"))
	assert.Equal(t, domain.TierRetailer, c.Tier("bestbuy.com"))
}

func TestClassify_HostHeuristic(t *testing.T) {
	c := classify.New()

	result := c.Classify("news.ycombinator.com")
	assert.Equal(t, domain.TierEditorial, result.Tier)
	assert.Equal(t, classify.MethodHostHeuristic, result.Method)

	assert.Equal(t, domain.TierEditorial, c.Tier("tech-news.example.com"))
}

func TestClassify_UnknownHost(t *testing.T) {
	c := classify.New()

	result := c.Classify("example.com")
	assert.Equal(t, domain.TierUnknown, result.Tier)
	assert.Equal(t, classify.MethodDefault, result.Method)
}

func TestClassify_EmptyHost(t *testing.T) {
	c := classify.New()

	result := c.Classify("  ")
	assert.Equal(t, domain.TierUnknown, result.Tier)
	assert.Equal(t, classify.MethodDefault, result.Method)
}

func TestClassify_CaseInsensitive(t *testing.T) {
	c := classify.New()

	assert.Equal(t, domain.TierEditorial, c.Tier("CNET.com"))
}

func TestClassify_NoBareSuffixCapture(t *testing.T) {
	c := classify.New()

	assert.Equal(t, domain.TierUnknown, c.Tier("notcnn.com"), "suffix overlap is not a subdomain")
}
