package forum

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/forum/internal/model"
	"github.com/SergeyParamoshkin/forum/internal/payload"
	"github.com/SergeyParamoshkin/forum/internal/store"
)

// Handlers validates requests, calls the store and builds results.
// Every failure is turned into a status code here; none escape.
type Handlers struct {
	store  *store.Store
	logger *zap.SugaredLogger
}

func NewHandlers(s *store.Store, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{store: s, logger: logger}
}

func (h *Handlers) reject(req Request, status int, err error) Result {
	h.logger.Debugw("request rejected",
		"route", req.Route.Key,
		"method", req.Method,
		"path", req.Route.Path,
		"status", status,
		"error", err,
	)

	return Result{Status: status}
}

// statusOf maps store errors: not found gets notFound, everything else 400.
func statusOf(err error, notFound int) int {
	if errors.Is(err, store.ErrNotFound) {
		return notFound
	}

	return http.StatusBadRequest
}

// GetOrCreateUser handles POST /users.
func (h *Handlers) GetOrCreateUser(req Request) Result {
	var data payload.UserRequest
	if err := payload.Decode(req.Body, &data); err != nil {
		return h.reject(req, http.StatusBadRequest, err)
	}

	user, created, err := h.store.GetOrCreateUser(data.Username)
	if err != nil {
		return h.reject(req, http.StatusBadRequest, err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	return Result{Status: status, Body: &payload.UserResponse{User: user}}
}

// GetUser handles GET /users/:username.
func (h *Handlers) GetUser(req Request) Result {
	user, articles, comments, err := h.store.GetUser(req.Route.Username())
	if err != nil {
		return h.reject(req, statusOf(err, http.StatusNotFound), err)
	}

	return Result{Status: http.StatusOK, Body: &payload.UserPostsResponse{
		User:         user,
		UserArticles: articles,
		UserComments: comments,
	}}
}

// ListArticles handles GET /articles.
func (h *Handlers) ListArticles(req Request) Result {
	return Result{Status: http.StatusOK, Body: &payload.ArticleListResponse{
		Articles: h.store.ListArticles(),
	}}
}

// GetArticle handles GET /articles/:id.
func (h *Handlers) GetArticle(req Request) Result {
	id, err := req.Route.ID()
	if err != nil {
		return h.reject(req, http.StatusBadRequest, err)
	}

	article, comments, err := h.store.GetArticle(id)
	if err != nil {
		return h.reject(req, statusOf(err, http.StatusNotFound), err)
	}

	return Result{Status: http.StatusOK, Body: &payload.ArticleDetailResponse{
		Article: payload.ArticleDetail{Article: article, Comments: comments},
	}}
}

// CreateArticle handles POST /articles. An unknown owner is a bad request.
func (h *Handlers) CreateArticle(req Request) Result {
	var data payload.ArticleRequest
	if err := payload.Decode(req.Body, &data); err != nil {
		return h.reject(req, http.StatusBadRequest, err)
	}

	a := data.Article
	article, err := h.store.CreateArticle(a.Title, a.URL, a.Username)
	if err != nil {
		return h.reject(req, http.StatusBadRequest, err)
	}

	return Result{Status: http.StatusCreated, Body: &payload.ArticleResponse{Article: article}}
}

// UpdateArticle handles PUT /articles/:id.
func (h *Handlers) UpdateArticle(req Request) Result {
	id, err := req.Route.ID()
	if err != nil {
		return h.reject(req, http.StatusBadRequest, err)
	}

	var data payload.ArticlePatchRequest
	if err := payload.Decode(req.Body, &data); err != nil {
		return h.reject(req, http.StatusBadRequest, err)
	}

	article, err := h.store.UpdateArticle(id, data.Article.Title, data.Article.URL)
	if err != nil {
		return h.reject(req, statusOf(err, http.StatusNotFound), err)
	}

	return Result{Status: http.StatusOK, Body: &payload.ArticleResponse{Article: article}}
}

// DeleteArticle handles DELETE /articles/:id. Every failure, including an
// unknown id, answers 400.
func (h *Handlers) DeleteArticle(req Request) Result {
	id, err := req.Route.ID()
	if err != nil {
		return h.reject(req, http.StatusBadRequest, err)
	}

	if err := h.store.DeleteArticle(id); err != nil {
		return h.reject(req, http.StatusBadRequest, err)
	}

	return Result{Status: http.StatusNoContent}
}

// VoteArticle handles PUT /articles/:id/upvote and /downvote. Every failure
// answers 400.
func (h *Handlers) VoteArticle(req Request) Result {
	id, username, dir, err := h.voteParams(req)
	if err != nil {
		return h.reject(req, http.StatusBadRequest, err)
	}

	article, err := h.store.VoteArticle(id, username, dir)
	if err != nil {
		return h.reject(req, http.StatusBadRequest, err)
	}

	return Result{Status: http.StatusOK, Body: &payload.ArticleResponse{Article: article}}
}

// CreateComment handles POST /comments.
func (h *Handlers) CreateComment(req Request) Result {
	var data payload.CommentRequest
	if err := payload.Decode(req.Body, &data); err != nil {
		return h.reject(req, http.StatusBadRequest, err)
	}

	c := data.Comment
	comment, err := h.store.CreateComment(c.Body, c.ArticleID, c.Username)
	if err != nil {
		return h.reject(req, http.StatusBadRequest, err)
	}

	return Result{Status: http.StatusCreated, Body: &payload.CommentResponse{Comment: comment}}
}

// UpdateComment handles PUT /comments/:id.
func (h *Handlers) UpdateComment(req Request) Result {
	id, err := req.Route.ID()
	if err != nil {
		return h.reject(req, http.StatusBadRequest, err)
	}

	var data payload.CommentPatchRequest
	if err := payload.Decode(req.Body, &data); err != nil {
		return h.reject(req, http.StatusBadRequest, err)
	}

	comment, err := h.store.UpdateComment(id, data.Comment.Body)
	if err != nil {
		return h.reject(req, statusOf(err, http.StatusNotFound), err)
	}

	return Result{Status: http.StatusOK, Body: &payload.CommentResponse{Comment: comment}}
}

// DeleteComment handles DELETE /comments/:id. A malformed id cannot name a
// comment, so it answers 404 like an unknown one.
func (h *Handlers) DeleteComment(req Request) Result {
	id, err := req.Route.ID()
	if err != nil {
		return h.reject(req, http.StatusNotFound, err)
	}

	if err := h.store.DeleteComment(id); err != nil {
		return h.reject(req, http.StatusNotFound, err)
	}

	return Result{Status: http.StatusNoContent}
}

// VoteComment handles PUT /comments/:id/upvote and /downvote.
func (h *Handlers) VoteComment(req Request) Result {
	id, username, dir, err := h.voteParams(req)
	if err != nil {
		return h.reject(req, http.StatusBadRequest, err)
	}

	comment, err := h.store.VoteComment(id, username, dir)
	if err != nil {
		return h.reject(req, http.StatusBadRequest, err)
	}

	return Result{Status: http.StatusOK, Body: &payload.CommentResponse{Comment: comment}}
}

func (h *Handlers) voteParams(req Request) (int, string, model.Direction, error) {
	id, err := req.Route.ID()
	if err != nil {
		return 0, "", 0, err
	}
	dir, err := model.ParseDirection(req.Route.Verb())
	if err != nil {
		return 0, "", 0, err
	}

	var data payload.UserRequest
	if err := payload.Decode(req.Body, &data); err != nil {
		return 0, "", 0, err
	}

	return id, data.Username, dir, nil
}
