package controllers

import (
	"encoding/json"
	"net/http"

	"commboard/app/middleware"
	"commboard/app/models"
	"commboard/app/services"
)

// CommentController handles comments, addressed as /comments/{postId} and
// /comments/{postId}/{commentId}.
type CommentController struct {
	comments *services.CommentService
}

// NewCommentController creates a new CommentController.
func NewCommentController(comments *services.CommentService) *CommentController {
	return &CommentController{comments: comments}
}

// Index handles GET /comments/{postId}, oldest first with author fields.
func (c *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "postId")
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	comments, err := c.comments.ListPostComments(postID)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{"comments": comments})
}

// Create handles POST /comments/{postId}.
func (c *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFrom(r)
	postID, err := pathID(r, "postId")
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	comment := &models.Comment{
		PostID:  postID,
		UserID:  session.UserID,
		Content: body.Content,
	}
	if err := c.comments.CreateComment(comment); err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "comment created",
		"comment": comment,
	})
}

// Edit handles PATCH /comments/{postId}/{commentId}.
func (c *CommentController) Edit(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFrom(r)
	commentID, err := pathID(r, "commentId")
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := c.comments.UpdateComment(commentID, session.UserID, body.Content); err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]string{"message": "comment updated"})
}

// Delete handles DELETE /comments/{postId}/{commentId}.
func (c *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFrom(r)
	postID, err := pathID(r, "postId")
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalid post id")
		return
	}
	commentID, err := pathID(r, "commentId")
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	if err := c.comments.DeleteComment(commentID, postID, session.UserID); err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]string{"message": "comment deleted"})
}
