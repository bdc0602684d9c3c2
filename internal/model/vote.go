package model

import "fmt"

// Direction of a vote.
type Direction int8

const (
	Up Direction = iota + 1
	Down
)

// ParseDirection maps the route verb ("upvote", "downvote") to a Direction.
func ParseDirection(verb string) (Direction, error) {
	switch verb {
	case "upvote":
		return Up, nil
	case "downvote":
		return Down, nil
	}

	return 0, fmt.Errorf("unknown vote direction %q", verb)
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "upvote"
	case Down:
		return "downvote"
	}

	return "unknown"
}

// Votes holds the two voter sets shared by articles and comments.
// A username appears in at most one of them.
type Votes struct {
	UpvotedBy   []string `json:"upvotedBy"`
	DownvotedBy []string `json:"downvotedBy"`
}

// NewVotes returns empty, non-nil voter sets.
func NewVotes() Votes {
	return Votes{UpvotedBy: []string{}, DownvotedBy: []string{}}
}

func (v Votes) Clone() Votes {
	return Votes{
		UpvotedBy:   cloneStrings(v.UpvotedBy),
		DownvotedBy: cloneStrings(v.DownvotedBy),
	}
}

// ApplyVote removes username from the opposite set, then adds it to the
// requested one unless it is already there. The input is not modified.
func ApplyVote(v Votes, username string, d Direction) Votes {
	out := v.Clone()

	switch d {
	case Up:
		out.DownvotedBy = without(out.DownvotedBy, username)
		if !contains(out.UpvotedBy, username) {
			out.UpvotedBy = append(out.UpvotedBy, username)
		}
	case Down:
		out.UpvotedBy = without(out.UpvotedBy, username)
		if !contains(out.DownvotedBy, username) {
			out.DownvotedBy = append(out.DownvotedBy, username)
		}
	}

	return out
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}

	return false
}

func without(names []string, name string) []string {
	out := names[:0]
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}

	return out
}
