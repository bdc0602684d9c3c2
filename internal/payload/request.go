// Package payload holds the request and response bodies of the forum API.
//
// Requests are decoded with render.DecodeJSON and validated with ozzo
// rules; a decoding or validation failure always means a malformed request.
// Responses implement render.Renderer so the HTTP layer can hand them to
// render.Render unchanged.
package payload

import (
	"bytes"
	"errors"

	"github.com/go-chi/render"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var ErrEmptyBody = errors.New("request body is empty")

// Decode unmarshals body into v and runs its validation rules.
func Decode(body []byte, v validation.Validatable) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return ErrEmptyBody
	}
	if err := render.DecodeJSON(bytes.NewReader(body), v); err != nil {
		return err
	}

	return v.Validate()
}

// UserRequest is the body of POST /users and of the vote routes.
type UserRequest struct {
	Username string `json:"username"`
}

func (u *UserRequest) Validate() error {
	return validation.ValidateStruct(u,
		validation.Field(&u.Username, validation.Required),
	)
}

// ArticleFields are the fields of a new article.
type ArticleFields struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Username string `json:"username"`
}

func (a *ArticleFields) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Title, validation.Required),
		validation.Field(&a.URL, validation.Required),
		validation.Field(&a.Username, validation.Required),
	)
}

// ArticleRequest is the body of POST /articles.
type ArticleRequest struct {
	Article *ArticleFields `json:"article"`
}

func (a *ArticleRequest) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Article, validation.Required),
	)
}

// ArticlePatch carries optional replacements; empty fields are ignored.
type ArticlePatch struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ArticlePatchRequest is the body of PUT /articles/:id.
type ArticlePatchRequest struct {
	Article *ArticlePatch `json:"article"`
}

func (a *ArticlePatchRequest) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Article, validation.NotNil),
	)
}

type CommentFields struct {
	Body      string `json:"body"`
	ArticleID int    `json:"articleId"`
	Username  string `json:"username"`
}

func (c *CommentFields) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Body, validation.Required),
		validation.Field(&c.ArticleID, validation.Required, validation.Min(1)),
		validation.Field(&c.Username, validation.Required),
	)
}

// CommentRequest is the body of POST /comments.
type CommentRequest struct {
	Comment *CommentFields `json:"comment"`
}

func (c *CommentRequest) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Comment, validation.Required),
	)
}

type CommentPatch struct {
	Body string `json:"body"`
}

// CommentPatchRequest is the body of PUT /comments/:id.
type CommentPatchRequest struct {
	Comment *CommentPatch `json:"comment"`
}

func (c *CommentPatchRequest) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Comment, validation.NotNil),
	)
}
