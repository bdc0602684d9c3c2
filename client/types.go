package client

type User struct {
	Username   string `json:"username"`
	ArticleIDs []int  `json:"articleIds"`
	CommentIDs []int  `json:"commentIds"`
}

type Votes struct {
	UpvotedBy   []string `json:"upvotedBy"`
	DownvotedBy []string `json:"downvotedBy"`
}

type Article struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	Username   string `json:"username"`
	CommentIDs []int  `json:"commentIds"`
	Votes
}

type Comment struct {
	ID        int    `json:"id"`
	Body      string `json:"body"`
	ArticleID int    `json:"articleId"`
	Username  string `json:"username"`
	Votes
}

// ArticleDetail is an article with its comments, as returned by GetArticle.
type ArticleDetail struct {
	Article
	Comments []Comment `json:"comments"`
}

// UserPosts is a user with everything it has written.
type UserPosts struct {
	User     User      `json:"user"`
	Articles []Article `json:"userArticles"`
	Comments []Comment `json:"userComments"`
}

// Vote is the direction of a vote; its value is the last path segment of the vote routes.
type Vote string

const (
	Upvote   Vote = "upvote"
	Downvote Vote = "downvote"
)

type userBody struct {
	Username string `json:"username"`
}

type articleFields struct {
	Title    string `json:"title,omitempty"`
	URL      string `json:"url,omitempty"`
	Username string `json:"username,omitempty"`
}

type articleBody struct {
	Article articleFields `json:"article"`
}

type commentFields struct {
	Body      string `json:"body,omitempty"`
	ArticleID int    `json:"articleId,omitempty"`
	Username  string `json:"username,omitempty"`
}

type commentBody struct {
	Comment commentFields `json:"comment"`
}
