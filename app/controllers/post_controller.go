package controllers

import (
	"net/http"

	"commboard/app/middleware"
	"commboard/app/models"
	"commboard/app/services"
	"commboard/app/uploads"
)

// PostController handles board posts and their like/view/comment counters.
type PostController struct {
	posts   *services.PostService
	likes   *services.LikeService
	uploads *uploads.Saver
}

// NewPostController creates a new PostController.
func NewPostController(posts *services.PostService, likes *services.LikeService, saver *uploads.Saver) *PostController {
	return &PostController{posts: posts, likes: likes, uploads: saver}
}

// Index handles GET /posts, returning every post oldest first with author
// fields joined in.
func (c *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := c.posts.ListPosts()
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{"posts": posts})
}

// Show handles GET /posts/{id}.
func (c *PostController) Show(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	post, err := c.posts.GetPost(postID)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{"post": post})
}

// Create handles POST /posts. The body is multipart form data with an
// optional image file part.
func (c *PostController) Create(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFrom(r)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		sendError(w, http.StatusBadRequest, "multipart form data required")
		return
	}

	image := ""
	if f, fh, err := r.FormFile("image"); err == nil {
		f.Close()
		path, err := c.uploads.Save(uploads.PostDir, fh)
		if err != nil {
			sendServiceError(w, err)
			return
		}
		image = path
	}

	post := &models.Post{
		UserID:  session.UserID,
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
		Image:   image,
	}
	if err := c.posts.CreatePost(post); err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "post created",
		"post":    post,
	})
}

// Edit handles PUT /posts/{id}. The stored image survives unless a new file
// part is uploaded.
func (c *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFrom(r)
	postID, err := pathID(r, "id")
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalid post id")
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		sendError(w, http.StatusBadRequest, "multipart form data required")
		return
	}

	var image *string
	if f, fh, err := r.FormFile("image"); err == nil {
		f.Close()
		path, err := c.uploads.Save(uploads.PostDir, fh)
		if err != nil {
			sendServiceError(w, err)
			return
		}
		image = &path
	}

	err = c.posts.UpdatePost(postID, session.UserID, r.FormValue("title"), r.FormValue("content"), image)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]string{"message": "post updated"})
}

// Delete handles DELETE /posts/{id}, removing the post with its likes and
// comments.
func (c *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFrom(r)
	postID, err := pathID(r, "id")
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	if err := c.posts.DeletePost(postID, session.UserID); err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]string{"message": "post deleted"})
}

// View handles GET /posts/{id}/view. Every call counts; no session needed.
func (c *PostController) View(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	views, err := c.posts.RegisterView(postID)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]int64{"view": views})
}

// LikeStatus handles GET /posts/{id}/like, reporting the count and whether
// the session user has liked the post.
func (c *PostController) LikeStatus(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFrom(r)
	postID, err := pathID(r, "id")
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	count, liked, err := c.likes.Status(postID, session.UserID)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{
		"like":  count,
		"liked": liked,
	})
}

// LikeToggle handles POST /posts/{id}/like. One call likes, the next call
// unlikes.
func (c *PostController) LikeToggle(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFrom(r)
	postID, err := pathID(r, "id")
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	action, count, err := c.likes.Toggle(postID, session.UserID)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{
		"action": action,
		"like":   count,
	})
}

// CommentCount handles GET /posts/{id}/comment, reading the stored counter.
func (c *PostController) CommentCount(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	count, err := c.posts.CommentCount(postID)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]int64{"comment": count})
}
