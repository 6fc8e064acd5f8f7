package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/blogem/linkedin-agent/models"
	"github.com/blogem/linkedin-agent/services"
)

const maxPostBody = 64 << 10

// PostController handles post publishing requests
type PostController struct {
	services *services.Services
}

// NewPostController creates a new post controller
func NewPostController(services *services.Services) *PostController {
	return &PostController{services: services}
}

type createPostResponse struct {
	Status          string `json:"status"`
	PublishedPostID string `json:"publishedPostId"`
	Text            string `json:"text"`
}

// Create handles POST /posts
func (c *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.PostForm
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPostBody)).Decode(&form); err != nil {
		writeError(w, r, models.ValidationErrors{{Field: "body", Message: "request body must be JSON: " + err.Error()}})
		return
	}

	post, err := c.services.Posts.CreatePost(r.Context(), &form)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createPostResponse{
		Status:          "success",
		PublishedPostID: post.ID,
		Text:            post.Text,
	})
}
