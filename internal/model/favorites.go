package model

import (
	"cmp"
	"slices"
	"strconv"
)

// FavoriteSet is the set of channel ids the user has marked as favorite
type FavoriteSet map[ChannelID]struct{}

// NewFavoriteSet builds a set from ids, dropping duplicates and empty ids
func NewFavoriteSet(ids ...ChannelID) FavoriteSet {
	set := make(FavoriteSet, len(ids))
	for _, id := range ids {
		if id != "" {
			set[id] = struct{}{}
		}
	}
	return set
}

// Contains reports whether id is a favorite
func (s FavoriteSet) Contains(id ChannelID) bool {
	_, ok := s[id]
	return ok
}

// Toggle removes id if present, adds it otherwise, and reports the new membership
func (s FavoriteSet) Toggle(id ChannelID) bool {
	if s.Contains(id) {
		delete(s, id)
		return false
	}
	s[id] = struct{}{}
	return true
}

// IDs returns the members in a deterministic order: numeric ids by value first,
// then the remaining ids lexically.
func (s FavoriteSet) IDs() []ChannelID {
	ids := make([]ChannelID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, compareIDs)
	return ids
}

// Clone returns an independent copy of the set
func (s FavoriteSet) Clone() FavoriteSet {
	out := make(FavoriteSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

func compareIDs(a, b ChannelID) int {
	na, errA := strconv.ParseInt(string(a), 10, 64)
	nb, errB := strconv.ParseInt(string(b), 10, 64)
	switch {
	case errA == nil && errB == nil:
		if c := cmp.Compare(na, nb); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return cmp.Compare(a, b)
	}
}
