package pathstore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/augfold/nfold/pathstore"
)

func TestAddAndPath(t *testing.T) {
	var s pathstore.Store
	root := s.Add(10, pathstore.NoParent) // root's own value is a sentinel, never part of any path.
	a := s.Add(20, root)
	b := s.Add(30, a)

	require.Equal(t, []int64{}, s.Path(root))
	require.Equal(t, []int64{20}, s.Path(a))
	require.Equal(t, []int64{20, 30}, s.Path(b))
}

func TestRemoveCascadeDeletesDeadAncestors(t *testing.T) {
	var s pathstore.Store
	root := s.Add(1, pathstore.NoParent)
	child := s.Add(2, root)
	leaf := s.Add(3, child)

	require.Equal(t, 3, s.Len())
	s.Remove(leaf, true)
	// child had exactly one child (leaf); removing it cascades to child,
	// and child was root's only child, so root is cascaded away too.
	require.Equal(t, 0, s.Len())
}

func TestRemoveCascadeStopsAtSharedAncestor(t *testing.T) {
	var s pathstore.Store
	root := s.Add(1, pathstore.NoParent)
	a := s.Add(2, root)
	b := s.Add(3, root)

	s.Remove(a, true)
	// root still has child b alive, so root survives.
	require.Equal(t, []int64{3}, s.Path(b))
	require.Equal(t, 2, s.Len())
}

func TestRemoveNoCascadePreservesParent(t *testing.T) {
	var s pathstore.Store
	root := s.Add(1, pathstore.NoParent)
	only := s.Add(2, root)

	s.Remove(only, false)
	// Parent must still be alive and addable-to, since the caller is about
	// to attach a replacement child under the same parent.
	replacement := s.Add(9, root)
	require.Equal(t, []int64{9}, s.Path(replacement))
}

func TestClearResetsStore(t *testing.T) {
	var s pathstore.Store
	s.Add(1, pathstore.NoParent)
	s.Add(2, 0)
	s.Clear()
	require.Equal(t, 0, s.Len())

	root := s.Add(5, pathstore.NoParent)
	require.Equal(t, []int64{}, s.Path(root))
}

func TestAddReusesFreedIndices(t *testing.T) {
	var s pathstore.Store
	root := s.Add(1, pathstore.NoParent)
	a := s.Add(2, root)
	s.Remove(a, true)
	// a's slot (and root's, if cascaded) should be reusable; confirm no
	// unbounded growth by checking a fresh root reuses slot 0.
	root2 := s.Add(9, pathstore.NoParent)
	require.Equal(t, 0, root2)
	require.Equal(t, []int64{}, s.Path(root2))
}
