package slotlru

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntryOccupiedGetReplaceRemove(t *testing.T) {
	c := New[NativeOrdered[int], string, uint8](3)
	c.Insert(ik(1), "a")
	c.Insert(ik(2), "b")

	e := c.Entry(ik(1))
	require.True(t, e.Occupied())
	require.Equal(t, ik(1), e.Key())
	require.Equal(t, "a", *e.GetUntouched())

	old := e.Replace("a2")
	require.Equal(t, "a", old)
	checkInvariants(t, c)
	v, _ := c.GetUntouched(ik(1))
	require.Equal(t, "a2", v)

	e2 := c.Entry(ik(2))
	k, v2 := e2.Remove()
	require.Equal(t, ik(2), k)
	require.Equal(t, "b", v2)
	checkInvariants(t, c)
	require.False(t, c.Contains(ik(2)))
}

func TestEntryVacantInsert(t *testing.T) {
	c := New[NativeOrdered[int], string, uint8](3)
	c.Insert(ik(1), "a")

	e := c.Entry(ik(2))
	require.False(t, e.Occupied())
	p, res := e.Insert("b")
	require.Nil(t, res)
	require.Equal(t, "b", *p)
	checkInvariants(t, c)
	require.Equal(t, []int{2, 1}, recencyKeys(t, c))
}

func TestEntryVacantInsertEvicts(t *testing.T) {
	c := New[NativeOrdered[int], string, uint8](2)
	c.Insert(ik(1), "a")
	c.Insert(ik(2), "b")

	e := c.Entry(ik(3))
	require.False(t, e.Occupied())
	p, res := e.Insert("c")
	require.NotNil(t, res)
	require.True(t, res.Evicted)
	require.Equal(t, ik(1), res.EvictedKey)
	require.Equal(t, "c", *p)
	checkInvariants(t, c)
}

func TestEntryOrInsertWithKey(t *testing.T) {
	c := New[NativeOrdered[int], int, uint8](3)

	calls := 0
	v := *c.Entry(ik(5)).OrInsertWithKey(func(k NativeOrdered[int]) int {
		calls++
		return k.Val * 10
	})
	require.Equal(t, 50, v)
	require.Equal(t, 1, calls)
	checkInvariants(t, c)

	// Second call on the now-occupied entry must not invoke f again.
	v2 := *c.Entry(ik(5)).OrInsertWithKey(func(k NativeOrdered[int]) int {
		calls++
		return -1
	})
	require.Equal(t, 50, v2)
	require.Equal(t, 1, calls)
}

func TestEntryOrInsertDefault(t *testing.T) {
	c := New[NativeOrdered[int], string, uint8](2)
	v := c.Entry(ik(1)).OrInsert("x")
	require.Equal(t, "x", *v)
	*v = "y"
	got, _ := c.GetUntouched(ik(1))
	require.Equal(t, "y", got)
}

func TestEntryPanicsOnWrongState(t *testing.T) {
	c := New[NativeOrdered[int], string, uint8](2)
	c.Insert(ik(1), "a")

	occupied := c.Entry(ik(1))
	require.Panics(t, func() { occupied.Insert("x") })

	vacant := c.Entry(ik(2))
	require.Panics(t, func() { vacant.Get() })
	require.Panics(t, func() { vacant.Remove() })
}
