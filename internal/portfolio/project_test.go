package portfolio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProjects() []Project {
	return []Project{
		{ID: "a", Name: "Booking Platform", Description: "Venue booking", Tags: []string{"React", "Full Stack"}},
		{ID: "b", Name: "Finance", Description: "AI receipts", Tags: []string{"AI", "Full Stack"}},
		{ID: "c", Name: "Stego", Description: "Deep learning detection", Tags: []string{"Machine Learning"}},
		{ID: "d", Name: "DrConnect", Description: "Healthcare appointments", Tags: []string{"Healthcare", "Full Stack"}},
		{ID: "e", Name: "Recommender", Description: "TF-IDF movies", Tags: []string{"Machine Learning", "Full Stack"}},
		{ID: "f", Name: "V-Server", Description: "C++ HTTP server"},
	}
}

func ids(projects []Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.ID)
	}
	return out
}

func strPtr(s string) *string { return &s }

func TestFilter_EmptyQueryMatchesAll(t *testing.T) {
	list := sampleProjects()
	assert.Equal(t, ids(list), ids(Filter(list, "", nil)))
}

func TestFilter_QueryMatchesNameOrDescriptionIgnoringCase(t *testing.T) {
	list := sampleProjects()

	for _, q := range []string{"healthcare", "HTTP", "book", "tf-idf", "zzz"} {
		got := Filter(list, q, nil)
		for _, p := range got {
			matched := strings.Contains(strings.ToLower(p.Name), strings.ToLower(q)) ||
				strings.Contains(strings.ToLower(p.Description), strings.ToLower(q))
			assert.True(t, matched, "query %q returned %s", q, p.ID)
		}
	}

	assert.Equal(t, []string{"d"}, ids(Filter(list, "healthcare", nil)))
	assert.Equal(t, []string{"a"}, ids(Filter(list, "BOOKING", nil)))
	assert.Empty(t, Filter(list, "zzz", nil))
}

func TestFilter_TagMatchesExactly(t *testing.T) {
	list := sampleProjects()

	assert.Equal(t, []string{"a", "b", "d", "e"}, ids(Filter(list, "", strPtr("Full Stack"))))
	assert.Equal(t, []string{"c", "e"}, ids(Filter(list, "", strPtr("Machine Learning"))))
	assert.Empty(t, Filter(list, "", strPtr("full stack")))
}

func TestFilter_QueryAndTagCombine(t *testing.T) {
	list := sampleProjects()
	assert.Equal(t, []string{"d"}, ids(Filter(list, "health", strPtr("Full Stack"))))
	assert.Empty(t, Filter(list, "health", strPtr("AI")))
}

func TestBrowser_DefaultPaging(t *testing.T) {
	b := NewBrowser(sampleProjects())

	assert.Len(t, b.Visible(), 6)
	assert.Len(t, b.Displayed(), 4)
	assert.True(t, b.HasMore())
	assert.Equal(t, 2, b.Remaining())

	b.ToggleShowAll()
	assert.True(t, b.ShowAll())
	assert.Len(t, b.Displayed(), 6)

	b.ToggleShowAll()
	assert.Len(t, b.Displayed(), 4)
}

func TestBrowser_DisplayedNeverExceedsPageSizeWithoutShowAll(t *testing.T) {
	b := NewBrowser(sampleProjects())
	for _, q := range []string{"", "e", "health", "server", "nothing"} {
		b.SetQuery(q)
		visible := b.Visible()
		assert.Len(t, b.Displayed(), min(len(visible), PageSize), "query %q", q)
		assert.Equal(t, len(visible) > PageSize, b.HasMore(), "query %q", q)
	}
}

func TestBrowser_ToggleShowAllNoopWithoutMore(t *testing.T) {
	b := NewBrowser(sampleProjects())
	b.SetQuery("healthcare")
	require.False(t, b.HasMore())

	b.ToggleShowAll()
	assert.False(t, b.ShowAll())
	assert.Equal(t, 0, b.Remaining())
}

func TestBrowser_SetShowAllSurvivesFilterChanges(t *testing.T) {
	b := NewBrowser(sampleProjects())
	b.SetShowAll(true)
	b.SetQuery("healthcare")
	require.False(t, b.HasMore())
	assert.True(t, b.ShowAll())

	b.SetQuery("")
	assert.Len(t, b.Displayed(), 6)

	b.SetShowAll(false)
	assert.Len(t, b.Displayed(), PageSize)
}

func TestBrowser_SetTagTwiceClears(t *testing.T) {
	b := NewBrowser(sampleProjects())
	before := ids(b.Visible())

	b.SetTag("AI")
	tag, ok := b.Tag()
	require.True(t, ok)
	assert.Equal(t, "AI", tag)
	assert.Equal(t, []string{"b"}, ids(b.Visible()))

	b.SetTag("AI")
	_, ok = b.Tag()
	assert.False(t, ok)
	assert.Equal(t, before, ids(b.Visible()))
}

func TestBrowser_SetTagSwitchesSelection(t *testing.T) {
	b := NewBrowser(sampleProjects())
	b.SetTag("AI")
	b.SetTag("Machine Learning")

	assert.True(t, b.TagSelected("Machine Learning"))
	assert.False(t, b.TagSelected("AI"))
	assert.Equal(t, []string{"c", "e"}, ids(b.Visible()))

	b.ClearTag()
	assert.Len(t, b.Visible(), 6)
}

func TestBrowser_DefaultCatalog(t *testing.T) {
	b := DefaultCatalog().NewBrowser()

	assert.Len(t, b.Visible(), 6)
	assert.Len(t, b.Displayed(), 4)
	assert.True(t, b.HasMore())

	b.SetQuery("healthcare")
	assert.Equal(t, []string{"drconnect"}, ids(b.Visible()))

	b.SetQuery("")
	b.SetTag("Full Stack")
	assert.Equal(t, []string{"quick-court", "wealth-watcher", "drconnect"}, ids(b.Visible()))
	assert.False(t, b.HasMore())
}
