package sink

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFunc_Append(t *testing.T) {
	var got []int
	var s Sink[int] = Func[int](func(i int) {
		got = append(got, i)
	})
	s.Append(1)
	s.Append(2)
	assert.Equal(t, []int{1, 2}, got)
}

// sequence is a Sink of ints that can also report its contents from head to tail.
type sequence struct {
	Sink[int]
	contents func() []int
}

func sequences() map[string]func() sequence {
	return map[string]func() sequence{
		"slice": func() sequence {
			var s []int
			return sequence{Sink: Slice(&s), contents: func() []int { return s }}
		},
		"deque": func() sequence {
			var d Deque[int]
			return sequence{Sink: &d, contents: d.Slice}
		},
	}
}

func TestSink_sequence(t *testing.T) {
	for name, newSequence := range sequences() {
		t.Run(name, func(t *testing.T) {
			s := newSequence()
			for i := 0; i < 20; i++ {
				before := slices.Clone(s.contents())
				s.Append(i * 10)
				after := s.contents()

				assert.Len(t, after, len(before)+1)
				assert.True(t, slices.Equal(before, after[:len(before)]))
				assert.Equal(t, i*10, after[len(after)-1])
			}
		})
	}
}

// set is a Sink of ints that can also report its members in ascending order.
type set struct {
	Sink[int]
	members func() []int
}

func sets() map[string]func() set {
	return map[string]func() set{
		"hash": func() set {
			m := map[int]struct{}{}
			return set{Sink: Set(m), members: func() []int {
				ms := make([]int, 0, len(m))
				for e := range m {
					ms = append(ms, e)
				}
				slices.Sort(ms)
				return ms
			}}
		},
		"ordered": func() set {
			var s OrderedSet[int]
			return set{Sink: &s, members: func() []int {
				return slices.Collect(s.All())
			}}
		},
	}
}

func TestSink_set(t *testing.T) {
	for name, newSet := range sets() {
		t.Run(name, func(t *testing.T) {
			t.Run("idempotent", func(t *testing.T) {
				once, twice := newSet(), newSet()
				for _, e := range []int{5, 3, 8} {
					once.Append(e)
					twice.Append(e)
					twice.Append(e)
				}
				assert.Equal(t, once.members(), twice.members())
			})

			t.Run("grows by at most one", func(t *testing.T) {
				s := newSet()
				for _, e := range []int{3, 1, 2, 1, 3, 4} {
					before := len(s.members())
					s.Append(e)
					after := len(s.members())
					assert.GreaterOrEqual(t, after, before)
					assert.LessOrEqual(t, after, before+1)
					assert.Contains(t, s.members(), e)
				}
				assert.Equal(t, []int{1, 2, 3, 4}, s.members())
			})
		})
	}
}

// mapping is a Sink of string-int pairs that can also look up keys.
type mapping struct {
	Sink[Pair[string, int]]
	get func(string) (int, bool)
	len func() int
}

func mappings() map[string]func() mapping {
	return map[string]func() mapping{
		"hash": func() mapping {
			m := map[string]int{}
			return mapping{
				Sink: Map(m),
				get: func(k string) (int, bool) {
					v, ok := m[k]
					return v, ok
				},
				len: func() int { return len(m) },
			}
		},
		"ordered": func() mapping {
			var m OrderedMap[string, int]
			return mapping{Sink: &m, get: m.Get, len: m.Len}
		},
	}
}

func TestSink_mapping(t *testing.T) {
	for name, newMapping := range mappings() {
		t.Run(name, func(t *testing.T) {
			t.Run("last write wins", func(t *testing.T) {
				m := newMapping()
				m.Append(KV("k", 1))
				m.Append(KV("k", 2))

				v, ok := m.get("k")
				assert.True(t, ok)
				assert.Equal(t, 2, v)
				assert.Equal(t, 1, m.len())
			})

			t.Run("disjoint keys", func(t *testing.T) {
				m := newMapping()
				m.Append(KV("k1", 1))
				m.Append(KV("k2", 2))

				v, ok := m.get("k1")
				assert.True(t, ok)
				assert.Equal(t, 1, v)
				v, ok = m.get("k2")
				assert.True(t, ok)
				assert.Equal(t, 2, v)
				assert.Equal(t, 2, m.len())
			})

			t.Run("scenario", func(t *testing.T) {
				m := newMapping()
				m.Append(KV("a", 1))
				m.Append(KV("b", 2))
				m.Append(KV("a", 3))

				v, _ := m.get("a")
				assert.Equal(t, 3, v)
				v, _ = m.get("b")
				assert.Equal(t, 2, v)
				assert.Equal(t, 2, m.len())
			})
		})
	}
}
