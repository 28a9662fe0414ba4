package automaton

import (
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// StateSet is a sorted set of state indices. Two StateSets hold the same
// states iff they are Equal, which makes the sorted form a canonical identity
// for subsets discovered during determinization.
type StateSet []int

type stateMap map[int]struct{}

func (m stateMap) add(q int) bool {
	if _, ok := m[q]; ok {
		return false
	}
	m[q] = struct{}{}
	return true
}

func (m stateMap) toSet() StateSet {
	ids := maps.Keys(m)
	slices.Sort(ids)
	return StateSet(ids)
}

func (s StateSet) Contains(q int) bool {
	_, ok := slices.BinarySearch(s, q)
	return ok
}

func (s StateSet) Equal(o StateSet) bool { return slices.Equal(s, o) }

// intersects reports whether any state of s is marked in flags.
func (s StateSet) intersects(flags []bool) bool {
	for _, q := range s {
		if flags[q] {
			return true
		}
	}
	return false
}

func (s StateSet) key() string {
	var sb strings.Builder
	for i, q := range s {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(q))
	}
	return sb.String()
}

func (s StateSet) String() string { return "{" + s.key() + "}" }

// insertState adds q to the sorted slice s if missing.
func insertState(s StateSet, q int) StateSet {
	i, ok := slices.BinarySearch(s, q)
	if ok {
		return s
	}
	return slices.Insert(s, i, q)
}
