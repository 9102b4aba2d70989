package selection

import "iter"

// Selection is an immutable snapshot of the selected candidates. The zero
// value is an empty selection.
type Selection struct {
	members map[Candidate]struct{}
}

func newSelection(members map[Candidate]struct{}) Selection {
	return Selection{members: members}
}

// Len returns the number of selected candidates.
func (s Selection) Len() int {
	return len(s.members)
}

// Contains reports whether c is selected.
func (s Selection) Contains(c Candidate) bool {
	_, ok := s.members[c]
	return ok
}

// All iterates over the selected candidates in no particular order.
func (s Selection) All() iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		for c := range s.members {
			if !yield(c) {
				return
			}
		}
	}
}

// Slice returns the selected candidates as a new slice.
func (s Selection) Slice() []Candidate {
	out := make([]Candidate, 0, len(s.members))
	for c := range s.members {
		out = append(out, c)
	}
	return out
}

// Equal reports whether both selections hold the same members.
func (s Selection) Equal(other Selection) bool {
	if len(s.members) != len(other.members) {
		return false
	}
	for c := range s.members {
		if _, ok := other.members[c]; !ok {
			return false
		}
	}
	return true
}

// membershipChanged reports whether next differs from old: a member was
// dropped, or the sizes differ. With nothing dropped and equal sizes every
// member of next was already in old, so a same-size swap is always caught by
// the first check.
func membershipChanged(old, next map[Candidate]struct{}) bool {
	for c := range old {
		if _, ok := next[c]; !ok {
			return true
		}
	}
	return len(old) != len(next)
}
