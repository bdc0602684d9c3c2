package model

// Comment data model.
type Comment struct {
	ID        int    `json:"id"`
	Body      string `json:"body"`
	ArticleID int    `json:"articleId"`
	Username  string `json:"username"`
	Votes
}

func (c Comment) Clone() Comment {
	c.Votes = c.Votes.Clone()

	return c
}
