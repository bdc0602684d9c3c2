package store

import (
	"fmt"

	"github.com/SergeyParamoshkin/forum/internal/model"
)

// GetOrCreateUser returns the user with the given name, creating it on first
// use. created reports whether this call made the record.
func (s *Store) GetOrCreateUser(username string) (user model.User, created bool, err error) {
	if username == "" {
		return model.User{}, false, fmt.Errorf("username is required: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.users[username]; ok {
		return u.Clone(), false, nil
	}

	u := model.NewUser(username)
	s.users[username] = &u

	return u.Clone(), true, nil
}

// GetUser returns the user together with the articles and comments it wrote,
// in the order they were created.
func (s *Store) GetUser(username string) (model.User, []model.Article, []model.Comment, error) {
	if username == "" {
		return model.User{}, nil, nil, fmt.Errorf("username is required: %w", ErrInvalidInput)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[username]
	if !ok {
		return model.User{}, nil, nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
	}

	return u.Clone(), s.resolveArticles(u.ArticleIDs), s.resolveComments(u.CommentIDs), nil
}
