package domain

// Vote is a user's current vote on a post.
type Vote string

const (
	VoteNone Vote = "none"
	VoteUp   Vote = "up"
	VoteDown Vote = "down"
)

// ParseVoteDirection accepts only "up" or "down".
func ParseVoteDirection(s string) (Vote, error) {
	switch v := Vote(s); v {
	case VoteUp, VoteDown:
		return v, nil
	}
	return "", ErrInvalidVote
}

// ApplyVote toggles direction against current. Clicking the active direction
// clears the vote; clicking the other direction moves it. The returned deltas
// are the changes to apply to the upvote and downvote counters.
func ApplyVote(current, direction Vote) (next Vote, upDelta, downDelta int) {
	switch current {
	case VoteUp:
		upDelta--
	case VoteDown:
		downDelta--
	}

	if current == direction {
		return VoteNone, upDelta, downDelta
	}

	switch direction {
	case VoteUp:
		upDelta++
	case VoteDown:
		downDelta++
	}
	return direction, upDelta, downDelta
}
