package frontier_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rollingdie/frontier"
)

// entry is a minimal queue item with a mutable cost.
type entry struct {
	name string
	cost float64
}

func (e *entry) Priority() float64 { return e.cost }

// assertHeap checks cost(i) >= cost(parent(i)) for every non-root index.
func assertHeap(t *testing.T, q *frontier.Queue[*entry]) {
	t.Helper()
	items := q.Items()
	for i := 1; i < len(items); i++ {
		parent := (i - 1) / 2
		if items[i].cost < items[parent].cost {
			t.Fatalf("heap violated at %d: %v < parent %v", i, items[i].cost, items[parent].cost)
		}
	}
}

func TestQueue_EmptyPreconditions(t *testing.T) {
	q := frontier.New[*entry](0)
	assert.True(t, q.IsEmpty())

	_, err := q.PopMin()
	assert.ErrorIs(t, err, frontier.ErrEmpty)

	err = q.DecreaseKey(&entry{name: "ghost"})
	assert.ErrorIs(t, err, frontier.ErrNotFound)

	assert.Equal(t, 0, q.Inserted())
	assert.Equal(t, 0, q.Popped())
}

func TestQueue_PopsInPriorityOrder(t *testing.T) {
	q := frontier.New[*entry](4)
	for _, e := range []*entry{{"d", 4}, {"a", 1}, {"c", 3}, {"b", 2}, {"e", 5}} {
		q.Insert(e)
		assertHeap(t, q)
	}

	var got []string
	for !q.IsEmpty() {
		e, err := q.PopMin()
		require.NoError(t, err)
		got = append(got, e.name)
		assertHeap(t, q)
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, got)
	assert.Equal(t, 5, q.Inserted())
	assert.Equal(t, 5, q.Popped())
}

// TestQueue_IdentityMembership makes sure equal-valued but distinct items
// are not confused.
func TestQueue_IdentityMembership(t *testing.T) {
	var q frontier.Queue[*entry]
	a := &entry{"x", 1}
	b := &entry{"x", 1}
	q.Insert(a)

	assert.True(t, q.Contains(a))
	assert.False(t, q.Contains(b))
	assert.Equal(t, 0, q.IndexOf(a))
	assert.Equal(t, -1, q.IndexOf(b))
}

func TestQueue_DecreaseKey(t *testing.T) {
	q := frontier.New[*entry](8)
	items := []*entry{{"a", 5}, {"b", 6}, {"c", 7}, {"d", 8}, {"e", 9}}
	for _, e := range items {
		q.Insert(e)
	}

	last := items[4]
	last.cost = 0
	require.NoError(t, q.DecreaseKey(last))
	assertHeap(t, q)
	assert.Equal(t, 0, q.IndexOf(last))

	top, err := q.PopMin()
	require.NoError(t, err)
	assert.Same(t, last, top)
}

// TestQueue_TiesPreferParentThenLeft pins the sift-down tie rule.
func TestQueue_TiesPreferParentThenLeft(t *testing.T) {
	q := frontier.New[*entry](4)
	root := &entry{"root", 0}
	left := &entry{"left", 2}
	right := &entry{"right", 2}
	tail := &entry{"tail", 2}
	for _, e := range []*entry{root, left, right, tail} {
		q.Insert(e)
	}

	_, err := q.PopMin()
	require.NoError(t, err)
	// tail moved to the root and ties with both children: it stays.
	assert.Same(t, tail, q.Items()[0])
}

// TestQueue_RandomOperations keeps the heap invariant under a random mix of
// inserts, pops and decrease-keys.
func TestQueue_RandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	q := frontier.New[*entry](0)
	var live []*entry

	for step := 0; step < 2000; step++ {
		switch op := rng.Intn(3); {
		case op == 0 || len(live) == 0:
			e := &entry{cost: float64(rng.Intn(100))}
			q.Insert(e)
			live = append(live, e)
		case op == 1:
			minCost := live[0].cost
			for _, e := range live {
				if e.cost < minCost {
					minCost = e.cost
				}
			}
			e, err := q.PopMin()
			require.NoError(t, err)
			assert.Equal(t, minCost, e.cost)
			for i, l := range live {
				if l == e {
					live = append(live[:i], live[i+1:]...)
					break
				}
			}
		default:
			e := live[rng.Intn(len(live))]
			e.cost -= float64(rng.Intn(10))
			require.NoError(t, q.DecreaseKey(e))
		}
		assertHeap(t, q)
		require.Equal(t, len(live), q.Len())
	}
	assert.Equal(t, q.Inserted()-q.Popped(), q.Len())
}
