// Package store is the in-memory relational store behind the forum API.
//
// Users, articles and comments reference each other by username and id.
// Every mutating operation runs under a single write lock and updates both
// sides of each link before it returns, so callers never observe a half
// applied change. Deleted records are removed from their map while the id
// counters keep growing, which means an id is never handed out twice.
package store

import (
	"errors"
	"slices"
	"sort"
	"sync"

	"github.com/SergeyParamoshkin/forum/internal/model"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Store owns every entity record. The zero value is not usable; call New.
type Store struct {
	mu sync.RWMutex

	users    map[string]*model.User
	articles map[int]*model.Article
	comments map[int]*model.Comment

	nextArticleID int
	nextCommentID int
}

func New() *Store {
	return &Store{
		users:         map[string]*model.User{},
		articles:      map[int]*model.Article{},
		comments:      map[int]*model.Comment{},
		nextArticleID: 1,
		nextCommentID: 1,
	}
}

// Stats is a point-in-time count of live records.
type Stats struct {
	Users    int
	Articles int
	Comments int
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		Users:    len(s.users),
		Articles: len(s.articles),
		Comments: len(s.comments),
	}
}

// resolveComments must be called with the lock held.
func (s *Store) resolveComments(ids []int) []model.Comment {
	out := make([]model.Comment, 0, len(ids))
	for _, id := range ids {
		if c, ok := s.comments[id]; ok {
			out = append(out, c.Clone())
		}
	}

	return out
}

func (s *Store) resolveArticles(ids []int) []model.Article {
	out := make([]model.Article, 0, len(ids))
	for _, id := range ids {
		if a, ok := s.articles[id]; ok {
			out = append(out, a.Clone())
		}
	}

	return out
}

func removeID(ids []int, id int) []int {
	if i := slices.Index(ids, id); i >= 0 {
		return slices.Delete(ids, i, i+1)
	}

	return ids
}

func idsDesc(m map[int]*model.Article) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))

	return keys
}
