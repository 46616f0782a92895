package domain

// Disposition is a user's current vote state on a sauce.
type Disposition int

const (
	None Disposition = iota
	Liked
	Disliked
)

func (d Disposition) String() string {
	switch d {
	case Liked:
		return "liked"
	case Disliked:
		return "disliked"
	default:
		return "none"
	}
}

// VoteOp is one of the four legal single-step transitions. A like can never
// flip straight to a dislike (or back): the caller must clear first, so every
// operation adjusts exactly one counter and one membership set.
type VoteOp int

const (
	AddLike VoteOp = iota
	RemoveLike
	AddDislike
	RemoveDislike
)

func (op VoteOp) String() string {
	switch op {
	case AddLike:
		return "add_like"
	case RemoveLike:
		return "remove_like"
	case AddDislike:
		return "add_dislike"
	default:
		return "remove_dislike"
	}
}

// ParseVoteValue maps the wire encoding (-1 dislike, 0 clear, +1 like) to a
// requested disposition. Any other value is a malformed request.
func ParseVoteValue(v int) (Disposition, error) {
	switch v {
	case 1:
		return Liked, nil
	case -1:
		return Disliked, nil
	case 0:
		return None, nil
	default:
		return None, ErrInvalidVoteValue
	}
}

// Transition implements the rating decision table. Given the current and the
// requested disposition it returns the operation to apply, or
// ErrVoteNotAllowed when the table rejects the request:
//
//	current\requested  clear          like           dislike
//	none               reject         AddLike        AddDislike
//	liked              RemoveLike     reject         reject
//	disliked           RemoveDislike  reject         reject
//
// The returned operation is a specification for the store's conditional
// mutation, which re-checks the same precondition atomically.
func Transition(current, requested Disposition) (VoteOp, error) {
	switch requested {
	case None:
		switch current {
		case Liked:
			return RemoveLike, nil
		case Disliked:
			return RemoveDislike, nil
		}
	case Liked:
		if current == None {
			return AddLike, nil
		}
	case Disliked:
		if current == None {
			return AddDislike, nil
		}
	}
	return 0, ErrVoteNotAllowed
}
