// Package forum maps (route, method) pairs to the handlers that operate on
// the entity store.
package forum

import (
	"net/http"
	"sort"

	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/forum/internal/route"
)

// Request is what a handler sees: the matched route (with the raw path for
// parameter extraction) and, for POST and PUT, the raw JSON body.
type Request struct {
	Method string
	Route  route.Route
	Body   []byte
}

// Result is a status code and an optional body. A nil Body means the
// response has no content.
type Result struct {
	Status int
	Body   render.Renderer
}

type HandlerFunc func(Request) Result

// Endpoint is one entry of the dispatch table.
type Endpoint struct {
	Key     string
	Method  string
	Handler HandlerFunc
}

// Dispatcher holds the fixed route key × method table.
type Dispatcher struct {
	table map[string]map[string]HandlerFunc
}

func NewDispatcher(h *Handlers) *Dispatcher {
	return &Dispatcher{table: map[string]map[string]HandlerFunc{
		route.Users: {
			http.MethodPost: h.GetOrCreateUser,
		},
		route.User: {
			http.MethodGet: h.GetUser,
		},
		route.Articles: {
			http.MethodGet:  h.ListArticles,
			http.MethodPost: h.CreateArticle,
		},
		route.Article: {
			http.MethodGet:    h.GetArticle,
			http.MethodPut:    h.UpdateArticle,
			http.MethodDelete: h.DeleteArticle,
		},
		route.ArticleUpvote: {
			http.MethodPut: h.VoteArticle,
		},
		route.ArticleDownvote: {
			http.MethodPut: h.VoteArticle,
		},
		route.Comments: {
			http.MethodPost: h.CreateComment,
		},
		route.Comment: {
			http.MethodPut:    h.UpdateComment,
			http.MethodDelete: h.DeleteComment,
		},
		route.CommentUpvote: {
			http.MethodPut: h.VoteComment,
		},
		route.CommentDownvote: {
			http.MethodPut: h.VoteComment,
		},
	}}
}

// Dispatch matches path, selects the handler for method and runs it.
// Unknown (route, method) pairs yield 400 with no body.
func (d *Dispatcher) Dispatch(method, path string, body []byte) Result {
	r := route.Match(path)

	h, ok := d.table[r.Key][method]
	if !ok {
		return Result{Status: http.StatusBadRequest}
	}

	req := Request{Method: method, Route: r}
	if method != http.MethodGet && method != http.MethodDelete {
		req.Body = body
	}

	return h(req)
}

// Endpoints lists the table sorted by key, then method.
func (d *Dispatcher) Endpoints() []Endpoint {
	var out []Endpoint
	for key, methods := range d.table {
		for method, h := range methods {
			out = append(out, Endpoint{Key: key, Method: method, Handler: h})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Key != out[j].Key {
			return out[i].Key < out[j].Key
		}

		return out[i].Method < out[j].Method
	})

	return out
}
