// Package client is a Go client for the forum API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

type Client struct {
	http.Client
	Addr string
}

// StatusError is returned for any response outside 2xx.
type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.Code)
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	se, ok := err.(*StatusError)

	return ok && se.Code == code
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) (int, error) {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.Addr+path, body)
	if err != nil {
		return 0, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, &StatusError{Method: method, Path: path, Code: resp.StatusCode}
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, nil
	}

	return resp.StatusCode, json.NewDecoder(resp.Body).Decode(out)
}

// CreateUser gets or creates the user. created is false when it already existed.
func (c *Client) CreateUser(ctx context.Context, username string) (user User, created bool, err error) {
	var out struct {
		User User `json:"user"`
	}
	code, err := c.do(ctx, http.MethodPost, "/users", userBody{Username: username}, &out)
	if err != nil {
		return User{}, false, err
	}

	return out.User, code == http.StatusCreated, nil
}

func (c *Client) GetUser(ctx context.Context, username string) (*UserPosts, error) {
	var out UserPosts
	if _, err := c.do(ctx, http.MethodGet, "/users/"+username, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) ListArticles(ctx context.Context) ([]Article, error) {
	var out struct {
		Articles []Article `json:"articles"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/articles", nil, &out); err != nil {
		return nil, err
	}

	return out.Articles, nil
}

func (c *Client) GetArticle(ctx context.Context, id int) (ArticleDetail, error) {
	var out struct {
		Article ArticleDetail `json:"article"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/articles/"+strconv.Itoa(id), nil, &out); err != nil {
		return ArticleDetail{}, err
	}

	return out.Article, nil
}

func (c *Client) CreateArticle(ctx context.Context, title, url, username string) (Article, error) {
	in := articleBody{Article: articleFields{Title: title, URL: url, Username: username}}

	return c.article(ctx, http.MethodPost, "/articles", in)
}

// UpdateArticle sends a partial update; empty fields are left unchanged.
func (c *Client) UpdateArticle(ctx context.Context, id int, title, url string) (Article, error) {
	in := articleBody{Article: articleFields{Title: title, URL: url}}

	return c.article(ctx, http.MethodPut, "/articles/"+strconv.Itoa(id), in)
}

func (c *Client) DeleteArticle(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, "/articles/"+strconv.Itoa(id), nil, nil)

	return err
}

func (c *Client) VoteArticle(ctx context.Context, id int, username string, v Vote) (Article, error) {
	path := "/articles/" + strconv.Itoa(id) + "/" + string(v)

	return c.article(ctx, http.MethodPut, path, userBody{Username: username})
}

func (c *Client) article(ctx context.Context, method, path string, in interface{}) (Article, error) {
	var out struct {
		Article Article `json:"article"`
	}
	if _, err := c.do(ctx, method, path, in, &out); err != nil {
		return Article{}, err
	}

	return out.Article, nil
}

func (c *Client) CreateComment(ctx context.Context, body string, articleID int, username string) (Comment, error) {
	in := commentBody{Comment: commentFields{Body: body, ArticleID: articleID, Username: username}}

	return c.comment(ctx, http.MethodPost, "/comments", in)
}

func (c *Client) UpdateComment(ctx context.Context, id int, body string) (Comment, error) {
	in := commentBody{Comment: commentFields{Body: body}}

	return c.comment(ctx, http.MethodPut, "/comments/"+strconv.Itoa(id), in)
}

func (c *Client) DeleteComment(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, "/comments/"+strconv.Itoa(id), nil, nil)

	return err
}

func (c *Client) VoteComment(ctx context.Context, id int, username string, v Vote) (Comment, error) {
	path := "/comments/" + strconv.Itoa(id) + "/" + string(v)

	return c.comment(ctx, http.MethodPut, path, userBody{Username: username})
}

func (c *Client) comment(ctx context.Context, method, path string, in interface{}) (Comment, error) {
	var out struct {
		Comment Comment `json:"comment"`
	}
	if _, err := c.do(ctx, method, path, in, &out); err != nil {
		return Comment{}, err
	}

	return out.Comment, nil
}
