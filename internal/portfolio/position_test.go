package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countActive(s *Selector) int {
	n := 0
	for _, p := range s.Positions() {
		if s.IsActive(p.ID) {
			n++
		}
	}
	return n
}

func TestSelector_StartsUnset(t *testing.T) {
	s := DefaultCatalog().NewSelector()

	_, ok := s.ActiveID()
	assert.False(t, ok)
	assert.False(t, s.IsActive(0))
	assert.Equal(t, 0, s.CurrentIndex())
	assert.Equal(t, 0, countActive(s))
}

func TestSelector_ActivateOnVisibleSelectsFirst(t *testing.T) {
	s := DefaultCatalog().NewSelector()
	s.ActivateOnVisible()

	id, ok := s.ActiveID()
	require.True(t, ok)
	assert.Equal(t, 0, id)
	assert.True(t, s.IsActive(0))
	assert.True(t, s.Visible())

	active, ok := s.Active()
	require.True(t, ok)
	assert.Equal(t, "Member, Algorithmus Club", active.Title)
}

func TestSelector_ActivateOnVisibleKeepsExistingSelection(t *testing.T) {
	s := DefaultCatalog().NewSelector()
	require.True(t, s.Select(2))
	s.ActivateOnVisible()

	id, _ := s.ActiveID()
	assert.Equal(t, 2, id)
	assert.Equal(t, 2, s.CurrentIndex())
}

func TestSelector_ActivateOnVisibleFiresOnce(t *testing.T) {
	s := NewSelector(nil)
	s.ActivateOnVisible()
	assert.True(t, s.Visible())
	_, ok := s.Active()
	assert.False(t, ok)

	s = DefaultCatalog().NewSelector()
	s.ActivateOnVisible()
	require.True(t, s.Select(1))
	s.ActivateOnVisible()
	assert.True(t, s.IsActive(1))
}

func TestSelector_SelectZeroIsASelection(t *testing.T) {
	s := DefaultCatalog().NewSelector()
	require.True(t, s.Select(1))
	require.True(t, s.Select(0))

	id, ok := s.ActiveID()
	require.True(t, ok)
	assert.Equal(t, 0, id)

	target, ok := s.ScrollTarget()
	require.True(t, ok)
	assert.Equal(t, 0, target)
}

func TestSelector_AtMostOneActive(t *testing.T) {
	s := DefaultCatalog().NewSelector()
	for _, p := range s.Positions() {
		require.True(t, s.Select(p.ID))
		assert.Equal(t, 1, countActive(s))
		assert.True(t, s.IsActive(p.ID))
	}
}

func TestSelector_UnknownIDIgnored(t *testing.T) {
	s := DefaultCatalog().NewSelector()
	require.True(t, s.Select(1))

	assert.False(t, s.Select(42))
	assert.True(t, s.IsActive(1))
}
