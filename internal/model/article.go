package model

// Article data model. Comments and votes reference other records by id
// and username only; the store resolves them.
type Article struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	Username   string `json:"username"` // the author
	CommentIDs []int  `json:"commentIds"`
	Votes
}

// Clone returns a deep copy that shares no slices with a.
func (a Article) Clone() Article {
	a.CommentIDs = cloneInts(a.CommentIDs)
	a.Votes = a.Votes.Clone()

	return a
}
