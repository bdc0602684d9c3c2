package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeArticleRequest(t *testing.T) {
	var req ArticleRequest
	err := Decode([]byte(`{"article":{"title":"t","url":"u","username":"alice"}}`), &req)
	require.NoError(t, err)
	assert.Equal(t, ArticleFields{Title: "t", URL: "u", Username: "alice"}, *req.Article)

	tests := map[string]string{
		"empty body":     ``,
		"blank body":     "  \n",
		"null":           `null`,
		"no article":     `{}`,
		"missing title":  `{"article":{"url":"u","username":"alice"}}`,
		"missing owner":  `{"article":{"title":"t","url":"u"}}`,
		"wrong type":     `{"article":{"title":1,"url":"u","username":"alice"}}`,
		"malformed json": `{"article":`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			var req ArticleRequest
			assert.Error(t, Decode([]byte(body), &req))
		})
	}
}

func TestDecodePatchAllowsEmptyFields(t *testing.T) {
	var req ArticlePatchRequest
	require.NoError(t, Decode([]byte(`{"article":{}}`), &req))
	assert.Equal(t, ArticlePatch{}, *req.Article)

	assert.Error(t, Decode([]byte(`{"title":"x"}`), &ArticlePatchRequest{}))

	var c CommentPatchRequest
	require.NoError(t, Decode([]byte(`{"comment":{"body":"b"}}`), &c))
	assert.Equal(t, "b", c.Comment.Body)
}

func TestDecodeCommentRequest(t *testing.T) {
	var req CommentRequest
	require.NoError(t, Decode([]byte(`{"comment":{"body":"b","articleId":3,"username":"bob"}}`), &req))
	assert.Equal(t, 3, req.Comment.ArticleID)

	assert.Error(t, Decode([]byte(`{"comment":{"body":"b","articleId":0,"username":"bob"}}`), &CommentRequest{}))
	assert.Error(t, Decode([]byte(`{"comment":{"body":"b","articleId":-2,"username":"bob"}}`), &CommentRequest{}))
	assert.Error(t, Decode([]byte(`{"comment":{"articleId":1,"username":"bob"}}`), &CommentRequest{}))
}

func TestDecodeUserRequest(t *testing.T) {
	var req UserRequest
	require.NoError(t, Decode([]byte(`{"username":"alice"}`), &req))
	assert.Equal(t, "alice", req.Username)

	assert.Error(t, Decode([]byte(`{"username":""}`), &UserRequest{}))
	assert.ErrorIs(t, Decode(nil, &UserRequest{}), ErrEmptyBody)
}
