package store

import (
	"slices"

	"github.com/SergeyParamoshkin/forum/internal/model"
)

// Snapshot is the serialisable form of the store.
type Snapshot struct {
	Users         map[string]model.User `json:"users"`
	Articles      map[int]model.Article `json:"articles"`
	Comments      map[int]model.Comment `json:"comments"`
	NextArticleID int                   `json:"nextArticleId"`
	NextCommentID int                   `json:"nextCommentId"`
}

// Snapshot copies the whole store under a read lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Users:         make(map[string]model.User, len(s.users)),
		Articles:      make(map[int]model.Article, len(s.articles)),
		Comments:      make(map[int]model.Comment, len(s.comments)),
		NextArticleID: s.nextArticleID,
		NextCommentID: s.nextCommentID,
	}
	for k, u := range s.users {
		snap.Users[k] = u.Clone()
	}
	for k, a := range s.articles {
		snap.Articles[k] = a.Clone()
	}
	for k, c := range s.comments {
		snap.Comments[k] = c.Clone()
	}

	return snap
}

// Restore replaces the store contents with snap. Sections missing from the
// snapshot keep their current value. Afterwards dangling references are
// dropped and the id counters are lifted above every known id.
func (s *Store) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if snap.Users != nil {
		s.users = make(map[string]*model.User, len(snap.Users))
		for k, u := range snap.Users {
			u = u.Clone()
			u.Username = k
			s.users[k] = &u
		}
	}
	if snap.Articles != nil {
		s.articles = make(map[int]*model.Article, len(snap.Articles))
		for k, a := range snap.Articles {
			a = a.Clone()
			a.ID = k
			s.articles[k] = &a
		}
	}
	if snap.Comments != nil {
		s.comments = make(map[int]*model.Comment, len(snap.Comments))
		for k, c := range snap.Comments {
			c = c.Clone()
			c.ID = k
			s.comments[k] = &c
		}
	}
	if snap.NextArticleID > 0 {
		s.nextArticleID = snap.NextArticleID
	}
	if snap.NextCommentID > 0 {
		s.nextCommentID = snap.NextCommentID
	}

	s.repair()
}

// repair must be called with the write lock held. Counters are lifted
// before pruning so that ids of dropped records are not reused either.
// Child lists are rebuilt from the owner fields of live records, and a user
// found in both vote sets of a record loses both votes.
func (s *Store) repair() {
	for id := range s.articles {
		if id >= s.nextArticleID {
			s.nextArticleID = id + 1
		}
	}
	for id := range s.comments {
		if id >= s.nextCommentID {
			s.nextCommentID = id + 1
		}
	}

	for id, a := range s.articles {
		if _, ok := s.users[a.Username]; !ok {
			delete(s.articles, id)
		}
	}
	for id, c := range s.comments {
		_, articleOK := s.articles[c.ArticleID]
		_, userOK := s.users[c.Username]
		if !articleOK || !userOK {
			delete(s.comments, id)
		}
	}

	for _, u := range s.users {
		u.ArticleIDs = []int{}
		u.CommentIDs = []int{}
	}
	for id, a := range s.articles {
		owner := s.users[a.Username]
		owner.ArticleIDs = append(owner.ArticleIDs, id)
		a.CommentIDs = []int{}
		a.Votes = disjointVotes(a.Votes)
	}
	for id, c := range s.comments {
		article := s.articles[c.ArticleID]
		article.CommentIDs = append(article.CommentIDs, id)
		author := s.users[c.Username]
		author.CommentIDs = append(author.CommentIDs, id)
		c.Votes = disjointVotes(c.Votes)
	}

	// ids grow with creation time, so ascending order is creation order
	for _, u := range s.users {
		slices.Sort(u.ArticleIDs)
		slices.Sort(u.CommentIDs)
	}
	for _, a := range s.articles {
		slices.Sort(a.CommentIDs)
	}
}

func disjointVotes(v model.Votes) model.Votes {
	up := make([]string, 0, len(v.UpvotedBy))
	for _, name := range v.UpvotedBy {
		if !slices.Contains(v.DownvotedBy, name) && !slices.Contains(up, name) {
			up = append(up, name)
		}
	}
	down := make([]string, 0, len(v.DownvotedBy))
	for _, name := range v.DownvotedBy {
		if !slices.Contains(v.UpvotedBy, name) && !slices.Contains(down, name) {
			down = append(down, name)
		}
	}

	return model.Votes{UpvotedBy: up, DownvotedBy: down}
}
