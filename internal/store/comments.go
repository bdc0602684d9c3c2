package store

import (
	"fmt"

	"github.com/SergeyParamoshkin/forum/internal/model"
)

// CreateComment attaches a new comment to the article and the author.
func (s *Store) CreateComment(body string, articleID int, username string) (model.Comment, error) {
	if body == "" || articleID <= 0 || username == "" {
		return model.Comment{}, fmt.Errorf("body, articleId and username are required: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.articles[articleID]
	if !ok {
		return model.Comment{}, fmt.Errorf("article %d: %w", articleID, ErrNotFound)
	}
	author, ok := s.users[username]
	if !ok {
		return model.Comment{}, fmt.Errorf("user %q: %w", username, ErrNotFound)
	}

	c := &model.Comment{
		ID:        s.nextCommentID,
		Body:      body,
		ArticleID: articleID,
		Username:  username,
		Votes:     model.NewVotes(),
	}
	s.nextCommentID++
	s.comments[c.ID] = c
	a.CommentIDs = append(a.CommentIDs, c.ID)
	author.CommentIDs = append(author.CommentIDs, c.ID)

	return c.Clone(), nil
}

func (s *Store) GetComment(id int) (model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.comments[id]
	if !ok {
		return model.Comment{}, fmt.Errorf("comment %d: %w", id, ErrNotFound)
	}

	return c.Clone(), nil
}

// UpdateComment replaces the body unless the patch is empty.
func (s *Store) UpdateComment(id int, body string) (model.Comment, error) {
	if id <= 0 {
		return model.Comment{}, fmt.Errorf("comment id %d: %w", id, ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[id]
	if !ok {
		return model.Comment{}, fmt.Errorf("comment %d: %w", id, ErrNotFound)
	}
	if body != "" {
		c.Body = body
	}

	return c.Clone(), nil
}

// DeleteComment removes the comment and unlinks it from its article and author.
func (s *Store) DeleteComment(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[id]
	if !ok {
		return fmt.Errorf("comment %d: %w", id, ErrNotFound)
	}
	if a, ok := s.articles[c.ArticleID]; ok {
		a.CommentIDs = removeID(a.CommentIDs, id)
	}
	if author, ok := s.users[c.Username]; ok {
		author.CommentIDs = removeID(author.CommentIDs, id)
	}
	delete(s.comments, id)

	return nil
}

func (s *Store) VoteComment(id int, username string, d model.Direction) (model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[id]
	if !ok {
		return model.Comment{}, fmt.Errorf("comment %d: %w", id, ErrNotFound)
	}
	if _, ok := s.users[username]; !ok {
		return model.Comment{}, fmt.Errorf("user %q: %w", username, ErrNotFound)
	}
	c.Votes = model.ApplyVote(c.Votes, username, d)

	return c.Clone(), nil
}
