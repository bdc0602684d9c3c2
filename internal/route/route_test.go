package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		path string
		key  string
	}{
		{"/users", Users},
		{"/users/", Users},
		{"//articles//", Articles},
		{"/comments", Comments},
		{"/users/alice", User},
		{"/users/alice/extra", User},
		{"/articles/1", Article},
		{"/articles/abc", Article},
		{"/articles/1/upvote", ArticleUpvote},
		{"/articles/1/downvote/", ArticleDownvote},
		{"/comments/3", Comment},
		{"/comments/3/upvote", CommentUpvote},
		{"/comments/3/downvote", CommentDownvote},
		{"/users/alice/upvote", "/users/:id/upvote"},
		{"/widgets", "/widgets"},
		{"/widgets/7", "/widgets/:id"},
		{"/", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.key, Match(tt.path).Key)
		})
	}
}

func TestRouteID(t *testing.T) {
	id, err := Match("/articles/42").ID()
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	for _, p := range []string{"/articles", "/articles/0", "/articles/-1", "/articles/x", "/articles/1.5"} {
		_, err := Match(p).ID()
		assert.ErrorIs(t, err, ErrInvalidID, p)
	}
}

func TestRouteParams(t *testing.T) {
	r := Match("/users/alice")
	assert.Equal(t, "alice", r.Username())
	assert.Equal(t, "/users/alice", r.Path)
	assert.Empty(t, Match("/users").Username())

	assert.Equal(t, "downvote", Match("/comments/2/downvote").Verb())
	assert.Empty(t, Match("/comments/2").Verb())
}

func TestPattern(t *testing.T) {
	assert.Equal(t, "/articles/{id}/upvote", Pattern(ArticleUpvote))
	assert.Equal(t, "/users/{username}", Pattern(User))
	assert.Equal(t, "/comments", Pattern(Comments))
}
