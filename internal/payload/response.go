package payload

import (
	"net/http"

	"github.com/SergeyParamoshkin/forum/internal/model"
)

// UserResponse wraps a single user: {"user": {...}}.
type UserResponse struct {
	User model.User `json:"user"`
}

func (u *UserResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// UserPostsResponse is a user with everything it has written.
type UserPostsResponse struct {
	User         model.User      `json:"user"`
	UserArticles []model.Article `json:"userArticles"`
	UserComments []model.Comment `json:"userComments"`
}

func (u *UserPostsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type ArticleResponse struct {
	Article model.Article `json:"article"`
}

func (a *ArticleResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// ArticleDetail is an article with its comments embedded.
type ArticleDetail struct {
	model.Article
	Comments []model.Comment `json:"comments"`
}

type ArticleDetailResponse struct {
	Article ArticleDetail `json:"article"`
}

func (a *ArticleDetailResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// ArticleListResponse lists articles, newest first.
type ArticleListResponse struct {
	Articles []model.Article `json:"articles"`
}

func (a *ArticleListResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if a.Articles == nil {
		a.Articles = []model.Article{}
	}

	return nil
}

type CommentResponse struct {
	Comment model.Comment `json:"comment"`
}

func (c *CommentResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
