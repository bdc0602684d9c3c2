// client_integration_test.go
//go:build integration
// +build integration

package client

import (
	"context"
	"net/http"
	"testing"
)

var c = Client{
	Addr:   "http://localhost:4000",
	Client: http.Client{},
}

func TestListArticlesAgainstRunningServer(t *testing.T) {
	if _, err := c.ListArticles(context.Background()); err != nil {
		t.Fatal(err)
	}
}
