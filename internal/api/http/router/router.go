package router

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/dtroode/postboard-server/internal/api/http/handler"
	"github.com/dtroode/postboard-server/internal/api/http/middleware"
	"github.com/dtroode/postboard-server/internal/logger"
	"github.com/dtroode/postboard-server/internal/model"
	"github.com/dtroode/postboard-server/internal/service"
)

// Router wires HTTP handlers, middleware and CORS into a single handler.
type Router struct {
	authService    *service.Auth
	commentService *service.Comment
	catalogService *service.Catalog
	tokenManager   model.TokenManager
	contextManager model.ContextManager
	allowedOrigins []string
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	commentService *service.Comment,
	catalogService *service.Catalog,
	tokenManager model.TokenManager,
	contextManager model.ContextManager,
	allowedOrigins []string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		commentService: commentService,
		catalogService: catalogService,
		tokenManager:   tokenManager,
		contextManager: contextManager,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}

// Register builds the route table and returns the root handler with request
// logging and CORS applied. The x-token header is exposed cross-origin so
// browser clients can read issued tokens.
func (r *Router) Register() http.Handler {
	authHandler := handler.NewAuth(r.authService, r.logger)
	commentHandler := handler.NewComment(r.commentService, r.contextManager, r.logger)
	catalogHandler := handler.NewCatalog(r.catalogService, r.logger)

	authenticate := middleware.NewAuthenticate(r.tokenManager, r.contextManager, r.logger)
	logging := middleware.NewLogging(r.logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /sign-in", authHandler.SignIn)
	mux.HandleFunc("POST /sign-up", authHandler.SignUp)
	mux.Handle("GET /comments", authenticate.Handle(http.HandlerFunc(commentHandler.List)))
	mux.HandleFunc("GET /posts", catalogHandler.ListPosts)
	mux.HandleFunc("GET /users", catalogHandler.ListUsers)

	c := cors.New(cors.Options{
		AllowedOrigins: r.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"x-token"},
	})

	return c.Handler(logging.Handle(mux))
}
