package store

import (
	"fmt"

	"github.com/SergeyParamoshkin/forum/internal/model"
)

// CreateArticle stores a new article owned by username and links it to
// the owner's article list.
func (s *Store) CreateArticle(title, url, username string) (model.Article, error) {
	if title == "" || url == "" || username == "" {
		return model.Article{}, fmt.Errorf("title, url and username are required: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	owner, ok := s.users[username]
	if !ok {
		return model.Article{}, fmt.Errorf("user %q: %w", username, ErrNotFound)
	}

	a := &model.Article{
		ID:         s.nextArticleID,
		Title:      title,
		URL:        url,
		Username:   username,
		CommentIDs: []int{},
		Votes:      model.NewVotes(),
	}
	s.nextArticleID++
	s.articles[a.ID] = a
	owner.ArticleIDs = append(owner.ArticleIDs, a.ID)

	return a.Clone(), nil
}

// ListArticles returns every live article, newest first.
func (s *Store) ListArticles() []model.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Article, 0, len(s.articles))
	for _, id := range idsDesc(s.articles) {
		out = append(out, s.articles[id].Clone())
	}

	return out
}

// GetArticle returns the article and its comments in attachment order.
func (s *Store) GetArticle(id int) (model.Article, []model.Comment, error) {
	if id <= 0 {
		return model.Article{}, nil, fmt.Errorf("article id %d: %w", id, ErrInvalidInput)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.articles[id]
	if !ok {
		return model.Article{}, nil, fmt.Errorf("article %d: %w", id, ErrNotFound)
	}

	return a.Clone(), s.resolveComments(a.CommentIDs), nil
}

// UpdateArticle applies a partial update. Empty title or url leave the
// stored value untouched.
func (s *Store) UpdateArticle(id int, title, url string) (model.Article, error) {
	if id <= 0 {
		return model.Article{}, fmt.Errorf("article id %d: %w", id, ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.articles[id]
	if !ok {
		return model.Article{}, fmt.Errorf("article %d: %w", id, ErrNotFound)
	}
	if title != "" {
		a.Title = title
	}
	if url != "" {
		a.URL = url
	}

	return a.Clone(), nil
}

// DeleteArticle removes the article, every comment attached to it, and all
// references to those records from their authors.
func (s *Store) DeleteArticle(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.articles[id]
	if !ok {
		return fmt.Errorf("article %d: %w", id, ErrNotFound)
	}

	for _, cid := range a.CommentIDs {
		c, ok := s.comments[cid]
		if !ok {
			continue
		}
		if author, ok := s.users[c.Username]; ok {
			author.CommentIDs = removeID(author.CommentIDs, cid)
		}
		delete(s.comments, cid)
	}

	if owner, ok := s.users[a.Username]; ok {
		owner.ArticleIDs = removeID(owner.ArticleIDs, id)
	}
	delete(s.articles, id)

	return nil
}

// VoteArticle records username's vote on the article. Both the article and
// the voter must exist.
func (s *Store) VoteArticle(id int, username string, d model.Direction) (model.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.articles[id]
	if !ok {
		return model.Article{}, fmt.Errorf("article %d: %w", id, ErrNotFound)
	}
	if _, ok := s.users[username]; !ok {
		return model.Article{}, fmt.Errorf("user %q: %w", username, ErrNotFound)
	}
	a.Votes = model.ApplyVote(a.Votes, username, d)

	return a.Clone(), nil
}
