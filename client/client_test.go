// client_test.go
//go:build !integration
// +build !integration

package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/forum/internal/forum"
	"github.com/SergeyParamoshkin/forum/internal/httpapi"
	"github.com/SergeyParamoshkin/forum/internal/store"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	logger := zap.NewNop().Sugar()
	st := store.New()
	ts := httptest.NewServer(httpapi.NewRouter(httpapi.Config{
		Dispatcher: forum.NewDispatcher(forum.NewHandlers(st, logger)),
		Store:      st,
		Logger:     logger,
	}))
	t.Cleanup(ts.Close)

	return &Client{Client: *ts.Client(), Addr: ts.URL}
}

func TestClientEndToEnd(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	_, created, err := c.CreateUser(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, created)
	_, created, err = c.CreateUser(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, created)
	_, _, err = c.CreateUser(ctx, "bob")
	require.NoError(t, err)

	_, err = c.CreateArticle(ctx, "t", "u", "nobody")
	assert.True(t, IsStatus(err, http.StatusBadRequest))

	a, err := c.CreateArticle(ctx, "t", "u", "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, a.ID)

	a, err = c.UpdateArticle(ctx, a.ID, "", "u2")
	require.NoError(t, err)
	assert.Equal(t, "t", a.Title)
	assert.Equal(t, "u2", a.URL)

	a, err = c.VoteArticle(ctx, a.ID, "bob", Downvote)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, a.DownvotedBy)

	cm, err := c.CreateComment(ctx, "nice", a.ID, "bob")
	require.NoError(t, err)
	cm, err = c.VoteComment(ctx, cm.ID, "alice", Upvote)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, cm.UpvotedBy)
	cm, err = c.UpdateComment(ctx, cm.ID, "nicer")
	require.NoError(t, err)
	assert.Equal(t, "nicer", cm.Body)

	detail, err := c.GetArticle(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "nicer", detail.Comments[0].Body)

	posts, err := c.GetUser(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []int{cm.ID}, posts.User.CommentIDs)
	require.Len(t, posts.Comments, 1)
	assert.Equal(t, []string{"alice"}, posts.Comments[0].UpvotedBy)
	assert.Empty(t, posts.Articles)

	require.NoError(t, c.DeleteArticle(ctx, a.ID))
	_, err = c.GetArticle(ctx, a.ID)
	assert.True(t, IsStatus(err, http.StatusNotFound))
	assert.True(t, IsStatus(c.DeleteComment(ctx, cm.ID), http.StatusNotFound))
	assert.True(t, IsStatus(c.DeleteArticle(ctx, a.ID), http.StatusBadRequest))

	posts, err = c.GetUser(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, posts.User.CommentIDs)

	articles, err := c.ListArticles(ctx)
	require.NoError(t, err)
	assert.Empty(t, articles)
}
