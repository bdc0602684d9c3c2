package main

import (
	"fmt"

	"github.com/go-chi/docgen"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/forum/internal/forum"
	"github.com/SergeyParamoshkin/forum/internal/httpapi"
	"github.com/SergeyParamoshkin/forum/internal/store"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the route table as markdown",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(routesDoc())
	},
}

func routesDoc() string {
	st := store.New()
	r := httpapi.DocsRouter(httpapi.Config{
		Dispatcher: forum.NewDispatcher(forum.NewHandlers(st, zap.NewNop().Sugar())),
		Store:      st,
	})

	return docgen.MarkdownRoutesDoc(r, docgen.MarkdownOpts{
		ProjectPath: "github.com/SergeyParamoshkin/forum",
		Intro:       "Routes served by the forum API.",
	})
}
