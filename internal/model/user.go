package model

// User data model. Username is the primary key and never changes.
type User struct {
	Username   string `json:"username"`
	ArticleIDs []int  `json:"articleIds"`
	CommentIDs []int  `json:"commentIds"`
}

// NewUser returns a user with empty, non-nil id lists.
func NewUser(username string) User {
	return User{
		Username:   username,
		ArticleIDs: []int{},
		CommentIDs: []int{},
	}
}

func (u User) Clone() User {
	u.ArticleIDs = cloneInts(u.ArticleIDs)
	u.CommentIDs = cloneInts(u.CommentIDs)

	return u
}

// cloneInts always returns a non-nil slice so that empty lists encode as [].
func cloneInts(ids []int) []int {
	out := make([]int, len(ids))
	copy(out, ids)

	return out
}

func cloneStrings(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)

	return out
}
