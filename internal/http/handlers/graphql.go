package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"github.com/resumehub/resumehub/internal/repo/postgres"
)

type GraphQLHandler struct {
	sessions *postgres.Sessions
	relay    *relay.Handler
}

func NewGraphQLHandler(schema *graphql.Schema, sessions *postgres.Sessions) *GraphQLHandler {
	return &GraphQLHandler{
		sessions: sessions,
		relay:    &relay.Handler{Schema: schema},
	}
}

// Query executes one GraphQL document. A fresh database session is acquired
// for the request and released when resolution finishes; every resolver in
// the response tree shares it through the context.
func (h *GraphQLHandler) Query(ctx *gin.Context) {
	sess, err := h.sessions.Acquire(ctx.Request.Context())

	if err != nil {
		RespondInternal(ctx, "could not open a database session")
		return
	}

	defer sess.Release()

	req := ctx.Request.WithContext(postgres.WithSession(ctx.Request.Context(), sess))

	h.relay.ServeHTTP(ctx.Writer, req)
}

// Playground serves a GraphiQL page on GET so the endpoint is explorable
// from a browser.
func (h *GraphQLHandler) Playground(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", graphiqlPage)
}

var graphiqlPage = []byte(`<!DOCTYPE html>
<html>
  <head>
    <title>Resume GraphQL API</title>
    <style>
      body { margin: 0; }
      #graphiql { height: 100vh; }
    </style>
    <link rel="stylesheet" href="https://unpkg.com/graphiql/graphiql.min.css" />
  </head>
  <body>
    <div id="graphiql">Loading...</div>
    <script src="https://unpkg.com/react@18/umd/react.production.min.js"></script>
    <script src="https://unpkg.com/react-dom@18/umd/react-dom.production.min.js"></script>
    <script src="https://unpkg.com/graphiql/graphiql.min.js"></script>
    <script>
      const fetcher = GraphiQL.createFetcher({ url: '/graphql' });
      ReactDOM.createRoot(document.getElementById('graphiql')).render(
        React.createElement(GraphiQL, { fetcher: fetcher })
      );
    </script>
  </body>
</html>
`)
