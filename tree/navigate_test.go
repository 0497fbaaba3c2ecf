package tree

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildExample(t *testing.T) *Node[int] {
	t.Helper()
	root, err := BuildSingle(context.Background(), exampleRecords(), 0, nil, deptAdapter())
	require.NoError(t, err)
	return root
}

func TestFindByID(t *testing.T) {
	root := buildExample(t)

	t.Run("finds nested node", func(t *testing.T) {
		n := FindByID(root, 3)
		require.NotNil(t, n)
		assert.Equal(t, "R&D Dept 1", n.Name)
	})

	t.Run("matches the root itself", func(t *testing.T) {
		assert.Same(t, root, FindByID(root, 0))
	})

	t.Run("absent id yields nil", func(t *testing.T) {
		assert.Nil(t, FindByID(root, 99))
	})

	t.Run("nil node yields nil", func(t *testing.T) {
		assert.Nil(t, FindByID[int](nil, 1))
	})

	t.Run("first match in child order wins", func(t *testing.T) {
		r := NewNode(0)
		left := NewNode(1)
		left.Name = "left"
		right := NewNode(1)
		right.Name = "right"
		r.AddChild(left)
		r.AddChild(right)
		found := FindByID(r, 1)
		require.NotNil(t, found)
		assert.Equal(t, "left", found.Name)
	})
}

func TestAncestors(t *testing.T) {
	root := buildExample(t)
	n3 := FindByID(root, 3)
	require.NotNil(t, n3)

	t.Run("names exclude self and synthetic root", func(t *testing.T) {
		assert.Equal(t, []string{"R&D Center", "Tech Center"}, AncestorNames(n3, false))
	})

	t.Run("ids include self when asked", func(t *testing.T) {
		assert.Equal(t, []int{3, 2, 1}, AncestorIDs(n3, true))
	})

	t.Run("ids exclude self when not asked", func(t *testing.T) {
		assert.Equal(t, []int{2, 1}, AncestorIDs(n3, false))
	})

	t.Run("top-level node has no ancestors", func(t *testing.T) {
		n1 := FindByID(root, 1)
		require.NotNil(t, n1)
		assert.Empty(t, AncestorIDs(n1, false))
		assert.Empty(t, AncestorNames(n1, false))
	})

	t.Run("synthetic root emits nothing even for itself", func(t *testing.T) {
		assert.Empty(t, AncestorIDs(root, true))
		assert.Empty(t, AncestorNames(root, true))
	})

	t.Run("nil node yields empty chains", func(t *testing.T) {
		assert.Empty(t, AncestorIDs[int](nil, true))
		assert.Empty(t, AncestorNames[int](nil, true))
	})

	t.Run("zero-valued id on a genuine node is still emitted", func(t *testing.T) {
		// A hand-built hierarchy whose real top node happens to carry the
		// zero id: the exclusion rule keys on syntheticness, not on value.
		top := NewNode(0)
		child := NewNode(5)
		top.AddChild(child)
		assert.Equal(t, []int{0}, AncestorIDs(child, false))
		assert.Equal(t, []string{""}, AncestorNames(child, false))
	})
}
