// Package route classifies request paths into route keys.
//
// Matching is purely structural: the path is split on "/", empty segments
// are dropped, and the key is chosen from the segment count and a couple of
// fixed positions. It never looks at the HTTP method.
package route

import (
	"errors"
	"strconv"
	"strings"
)

// Route keys known to the forum API.
const (
	Users           = "/users"
	User            = "/users/:username"
	Articles        = "/articles"
	Article         = "/articles/:id"
	ArticleUpvote   = "/articles/:id/upvote"
	ArticleDownvote = "/articles/:id/downvote"
	Comments        = "/comments"
	Comment         = "/comments/:id"
	CommentUpvote   = "/comments/:id/upvote"
	CommentDownvote = "/comments/:id/downvote"
)

var ErrInvalidID = errors.New("id must be a positive integer")

// Route is the result of matching a path.
type Route struct {
	Key      string
	Path     string
	Segments []string
}

// Match returns the route for path. A path without segments has an empty key.
func Match(path string) Route {
	segments := split(path)
	r := Route{Path: path, Segments: segments}

	switch {
	case len(segments) == 0:
	case len(segments) == 1:
		r.Key = "/" + segments[0]
	case len(segments) > 2 && (segments[2] == "upvote" || segments[2] == "downvote"):
		r.Key = "/" + segments[0] + "/:id/" + segments[2]
	case segments[0] == "users":
		r.Key = "/" + segments[0] + "/:username"
	default:
		r.Key = "/" + segments[0] + "/:id"
	}

	return r
}

func split(path string) []string {
	parts := strings.Split(path, "/")
	segments := parts[:0]
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}

	return segments
}

// ID parses the :id parameter.
func (r Route) ID() (int, error) {
	if len(r.Segments) < 2 {
		return 0, ErrInvalidID
	}
	id, err := strconv.Atoi(r.Segments[1])
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}

	return id, nil
}

// Username returns the :username parameter, or "" when absent.
func (r Route) Username() string {
	if len(r.Segments) < 2 {
		return ""
	}

	return r.Segments[1]
}

// Verb returns the trailing action segment of vote routes ("upvote", "downvote").
func (r Route) Verb() string {
	if len(r.Segments) < 3 {
		return ""
	}

	return r.Segments[2]
}

// Pattern converts a route key into a chi pattern, e.g. "/articles/{id}".
func Pattern(key string) string {
	segments := split(key)
	for i, s := range segments {
		if strings.HasPrefix(s, ":") {
			segments[i] = "{" + s[1:] + "}"
		}
	}

	return "/" + strings.Join(segments, "/")
}
