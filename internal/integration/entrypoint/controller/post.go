// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fishmate/backend/internal/application/usecase/community"
	domainerror "github.com/fishmate/backend/internal/domain/error"
	"github.com/fishmate/backend/internal/integration/entrypoint/dto"
)

// PostController handles community post endpoints.
type PostController struct {
	createUseCase *community.CreatePostUseCase
	listUseCase   *community.ListPostsUseCase
	likeUseCase   *community.LikePostUseCase
	deleteUseCase *community.DeletePostUseCase
}

// NewPostController creates a new post controller instance.
func NewPostController(
	createUseCase *community.CreatePostUseCase,
	listUseCase *community.ListPostsUseCase,
	likeUseCase *community.LikePostUseCase,
	deleteUseCase *community.DeletePostUseCase,
) *PostController {
	return &PostController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		likeUseCase:   likeUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /posts requests.
func (c *PostController) Create(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeContentRequired),
		})
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user id",
		})
		return
	}

	input := community.CreatePostInput{
		UserID:    userID,
		Content:   req.Content,
		ImageURLs: req.ImageURLs,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePostError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPostResponse(output.Post))
}

// List handles GET /posts requests.
func (c *PostController) List(ctx *gin.Context) {
	input := community.ListPostsInput{}

	// Optional author filter
	if userIDStr := ctx.Query("user_id"); userIDStr != "" {
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid user_id filter",
			})
			return
		}
		input.UserID = &userID
	}

	input.Page, _ = strconv.Atoi(ctx.DefaultQuery("page", "1"))
	input.Limit, _ = strconv.Atoi(ctx.DefaultQuery("limit", "0"))

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePostError(ctx, err)
		return
	}

	posts := make([]dto.PostResponse, len(output.Posts))
	for i, p := range output.Posts {
		posts[i] = dto.ToPostResponse(p)
	}

	ctx.JSON(http.StatusOK, dto.PostListResponse{
		Posts:      posts,
		Total:      output.Total,
		Page:       output.Page,
		Limit:      output.Limit,
		TotalPages: output.TotalPages,
	})
}

// Like handles POST /posts/:id/like requests.
func (c *PostController) Like(ctx *gin.Context) {
	postID, ok := c.parsePostID(ctx)
	if !ok {
		return
	}

	output, err := c.likeUseCase.Execute(ctx.Request.Context(), community.LikePostInput{PostID: postID})
	if err != nil {
		c.handlePostError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LikePostResponse{
		ID:    postID.String(),
		Likes: output.Likes,
	})
}

// Delete handles DELETE /posts/:id requests.
func (c *PostController) Delete(ctx *gin.Context) {
	postID, ok := c.parsePostID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), community.DeletePostInput{PostID: postID}); err != nil {
		c.handlePostError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parsePostID validates the :id path parameter.
func (c *PostController) parsePostID(ctx *gin.Context) (uuid.UUID, bool) {
	postID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid post id",
		})
		return uuid.Nil, false
	}
	return postID, true
}

// handlePostError handles post errors and returns appropriate HTTP responses.
func (c *PostController) handlePostError(ctx *gin.Context, err error) {
	var postErr *domainerror.PostError
	if errors.As(err, &postErr) {
		statusCode := c.getStatusCodeForPostError(postErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: postErr.Message,
			Code:  string(postErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForPostError maps post error codes to HTTP status codes.
func (c *PostController) getStatusCodeForPostError(code domainerror.PostErrorCode) int {
	switch code {
	case domainerror.ErrCodePostNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeContentRequired,
		domainerror.ErrCodeContentTooLong:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
