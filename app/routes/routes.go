// Package routes wires repositories, services and controllers behind a
// gorilla/mux router.
package routes

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"commboard/app/controllers"
	"commboard/app/middleware"
	"commboard/app/repositories"
	"commboard/app/services"
	"commboard/app/sessions"
	"commboard/app/uploads"
)

// Options carries the deployment knobs the router needs.
type Options struct {
	AllowOrigin   string
	SecureCookies bool
}

// Setup builds the full application router on top of the relational store,
// the session store and the upload saver.
func Setup(db *sql.DB, store *sessions.Store, saver *uploads.Saver, opts Options) *mux.Router {
	userRepo := repositories.NewSQLUserRepository(db)
	postRepo := repositories.NewSQLPostRepository(db)
	commentRepo := repositories.NewSQLCommentRepository(db)
	likeRepo := repositories.NewSQLLikeRepository(db)

	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo, store)
	postService := services.NewPostService(postRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)
	likeService := services.NewLikeService(likeRepo)

	authController := controllers.NewAuthController(authService, store, saver, opts.SecureCookies)
	userController := controllers.NewUserController(userService, store, saver)
	postController := controllers.NewPostController(postService, likeService, saver)
	commentController := controllers.NewCommentController(commentService)

	router := mux.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.CORS(opts.AllowOrigin))

	requireAuth := middleware.RequireAuth(store)

	// Public endpoints.
	router.HandleFunc("/auth/signup", authController.Signup).Methods("POST")
	router.HandleFunc("/auth/login", authController.Login).Methods("POST")
	router.HandleFunc("/posts/{id:[0-9]+}/view", postController.View).Methods("GET")
	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(saver.BaseDir))))

	auth := router.PathPrefix("/auth").Subrouter()
	auth.Use(requireAuth)
	auth.HandleFunc("/current", authController.Current).Methods("GET")

	posts := router.PathPrefix("/posts").Subrouter()
	posts.Use(requireAuth)
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/{id:[0-9]+}", postController.Show).Methods("GET")
	posts.HandleFunc("/{id:[0-9]+}", postController.Edit).Methods("PUT")
	posts.HandleFunc("/{id:[0-9]+}", postController.Delete).Methods("DELETE")
	posts.HandleFunc("/{id:[0-9]+}/like", postController.LikeStatus).Methods("GET")
	posts.HandleFunc("/{id:[0-9]+}/like", postController.LikeToggle).Methods("POST")
	posts.HandleFunc("/{id:[0-9]+}/comment", postController.CommentCount).Methods("GET")

	comments := router.PathPrefix("/comments").Subrouter()
	comments.Use(requireAuth)
	comments.HandleFunc("/{postId:[0-9]+}", commentController.Index).Methods("GET")
	comments.HandleFunc("/{postId:[0-9]+}", commentController.Create).Methods("POST")
	comments.HandleFunc("/{postId:[0-9]+}/{commentId:[0-9]+}", commentController.Edit).Methods("PATCH")
	comments.HandleFunc("/{postId:[0-9]+}/{commentId:[0-9]+}", commentController.Delete).Methods("DELETE")

	users := router.PathPrefix("/users").Subrouter()
	users.Use(requireAuth)
	users.HandleFunc("/profile/{userId:[0-9]+}", userController.Profile).Methods("GET")
	users.HandleFunc("/profile/{userId:[0-9]+}", userController.UpdateProfile).Methods("PUT")
	users.HandleFunc("/password/{userId:[0-9]+}", userController.ChangePassword).Methods("PATCH")
	users.HandleFunc("/logout", userController.Logout).Methods("POST")
	users.HandleFunc("/{userId:[0-9]+}", userController.Withdraw).Methods("DELETE")

	return router
}

const shutdownTimeout = 10 * time.Second

// StartServer runs the HTTP server on addr until ctx is canceled, then
// drains in-flight requests before returning.
func StartServer(ctx context.Context, addr string, router http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: router}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != http.ErrServerClosed {
		return err
	}
	return nil
}
