package rbtree

import (
	"cmp"
	"iter"
	"slices"
)

type color int8

const (
	red color = iota
	black
)

// Map is a map backed by a binary search tree.
// Each tree node is stored in an internal slice and addressed by its index.
// Insertion follows the red-black tree from Purely Functional Data Structures by Okasaki,
// except that the nodes on the search path are rewired in place instead of copied.
// The zero value for Map is an empty map ready to use.
type Map[K cmp.Ordered, V any] struct {
	nodes []node[K, V]
	root  int // index+1 of the root node. 0 means empty.
}

type node[K cmp.Ordered, V any] struct {
	color       color
	left, right int
	key         K
	value       V
}

const nilNode = -1

// Len returns the number of entries.
func (t *Map[K, V]) Len() int {
	return len(t.nodes)
}

// Cap returns the number of entries the map can hold without growing the node slice.
func (t *Map[K, V]) Cap() int {
	return cap(t.nodes)
}

// Grow increases the node slice's capacity to hold n more entries.
func (t *Map[K, V]) Grow(n int) {
	t.nodes = slices.Grow(t.nodes, n)
}

// Set stores a pair of key and value. If the key is already present, its value is replaced.
// It returns true if the key was not present before.
func (t *Map[K, V]) Set(key K, value V) bool {
	id, added := t.insert(t.root-1, key, value)
	t.nodes[id].color = black
	t.root = id + 1
	return added
}

// Get returns the associated value for a key.
func (t *Map[K, V]) Get(key K) (V, bool) {
	id := t.root - 1
	for id != nilNode {
		n := &t.nodes[id]
		switch c := cmp.Compare(key, n.key); {
		case c < 0:
			id = n.left
		case c > 0:
			id = n.right
		default:
			return n.value, true
		}
	}
	var zero V
	return zero, false
}

// All returns an iterator over the entries in ascending order of keys.
func (t *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stack := make([]int, 0, 64)
		id := t.root - 1
		for id != nilNode || len(stack) > 0 {
			for id != nilNode {
				stack = append(stack, id)
				id = t.nodes[id].left
			}
			id, stack = stack[len(stack)-1], stack[:len(stack)-1]
			n := t.nodes[id]
			if !yield(n.key, n.value) {
				return
			}
			id = n.right
		}
	}
}

func (t *Map[K, V]) insert(id int, key K, value V) (int, bool) {
	if id == nilNode {
		t.nodes = append(t.nodes, node[K, V]{
			color: red,
			left:  nilNode,
			right: nilNode,
			key:   key,
			value: value,
		})
		return len(t.nodes) - 1, true
	}
	switch c := cmp.Compare(key, t.nodes[id].key); {
	case c < 0:
		l, added := t.insert(t.nodes[id].left, key, value)
		t.nodes[id].left = l
		return t.balance(id), added
	case c > 0:
		r, added := t.insert(t.nodes[id].right, key, value)
		t.nodes[id].right = r
		return t.balance(id), added
	default:
		t.nodes[id].value = value
		return id, false
	}
}

// balance resolves a red node with a red child below the black node id.
// The three nodes involved keep their entries and are rewired into a red node with two black children.
// It returns the index of the subtree's new root.
func (t *Map[K, V]) balance(id int) int {
	if t.nodes[id].color != black {
		return id
	}

	var x, y, z, a, b, c, d int
	switch n := t.nodes[id]; {
	case t.isRed(n.left) && t.isRed(t.nodes[n.left].left):
		l := t.nodes[n.left]
		ll := t.nodes[l.left]
		x, y, z = l.left, n.left, id
		a, b, c, d = ll.left, ll.right, l.right, n.right
	case t.isRed(n.left) && t.isRed(t.nodes[n.left].right):
		l := t.nodes[n.left]
		lr := t.nodes[l.right]
		x, y, z = n.left, l.right, id
		a, b, c, d = l.left, lr.left, lr.right, n.right
	case t.isRed(n.right) && t.isRed(t.nodes[n.right].left):
		r := t.nodes[n.right]
		rl := t.nodes[r.left]
		x, y, z = id, r.left, n.right
		a, b, c, d = n.left, rl.left, rl.right, r.right
	case t.isRed(n.right) && t.isRed(t.nodes[n.right].right):
		r := t.nodes[n.right]
		rr := t.nodes[r.right]
		x, y, z = id, n.right, r.right
		a, b, c, d = n.left, r.left, rr.left, rr.right
	default:
		return id
	}

	t.nodes[x].color, t.nodes[x].left, t.nodes[x].right = black, a, b
	t.nodes[z].color, t.nodes[z].left, t.nodes[z].right = black, c, d
	t.nodes[y].color, t.nodes[y].left, t.nodes[y].right = red, x, z
	return y
}

func (t *Map[K, V]) isRed(id int) bool {
	return id != nilNode && t.nodes[id].color == red
}
