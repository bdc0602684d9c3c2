//
// FORUM
// =====
// A small HTTP service for users, articles and comments backed by an
// in-memory store, optionally persisted to a JSON file after each write.
//
// Boot the server:
// ----------------
// $ go run . serve
//
// Client requests:
// ----------------
// $ curl -X POST -d '{"username":"alice"}' http://localhost:4000/users
// {"user":{"username":"alice","articleIds":[],"commentIds":[]}}
//
// $ curl -X POST -d '{"article":{"title":"Hi","url":"https://example.com","username":"alice"}}' http://localhost:4000/articles
// {"article":{"id":1,"title":"Hi","url":"https://example.com","username":"alice","commentIds":[],"upvotedBy":[],"downvotedBy":[]}}
//
// $ curl -X PUT -d '{"username":"alice"}' http://localhost:4000/articles/1/upvote
// {"article":{"id":1,...,"upvotedBy":["alice"],"downvotedBy":[]}}
//
// $ curl -X DELETE http://localhost:4000/articles/1
//
// $ curl http://localhost:4000/articles
// {"articles":[]}
//
// Print the route table as markdown with `go run . routes`.
//
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	ServiceName = "forum"
	Version     = "1.0.0"
)

var (
	rootCmd = &cobra.Command{
		Use:   ServiceName,
		Short: "forum API server",
		Long: fmt.Sprintf(`forum (v%s)

An HTTP service exposing users, articles and comments from an in-memory store.`, Version),
		SilenceUsage: true,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s v%s\n", ServiceName, Version)
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
