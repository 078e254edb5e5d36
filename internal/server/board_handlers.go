package server

import (
	"gochurch/internal/middleware"
	"gochurch/internal/models"
	"gochurch/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateBoardRequest is the body of POST /boards.
type CreateBoardRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
}

// UpdateBoardRequest is a partial board update.
type UpdateBoardRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description"`
}

// CreatePostRequest is the body of POST /boards/:boardId/posts.
type CreatePostRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Contents string `json:"contents" validate:"required"`
}

// UpdatePostRequest is a partial post update.
type UpdatePostRequest struct {
	Title    *string `json:"title" validate:"omitempty,max=200"`
	Contents *string `json:"contents"`
}

// CreateCommentRequest is the body of POST /boards/posts/:postId/comments.
type CreateCommentRequest struct {
	Contents string `json:"contents" validate:"required"`
	ParentID *uint  `json:"parent_id"`
}

// UpdateCommentRequest replaces a comment's text.
type UpdateCommentRequest struct {
	Contents string `json:"contents" validate:"required"`
}

// authorFromQuery reads the mandatory author_id query parameter.
func authorFromQuery(c *fiber.Ctx) (uint, error) {
	id := c.QueryInt("author_id", 0)
	if id <= 0 {
		return 0, models.NewValidationError("author_id is required")
	}
	return uint(id), nil
}

// CreateBoard handles POST /api/boards
// @Summary Create a board
// @Tags boards
// @Accept json
// @Produce json
// @Param request body CreateBoardRequest true "Board"
// @Success 201 {object} models.Board
// @Failure 400 {object} models.ErrorResponse
// @Router /boards [post]
func (s *Server) CreateBoard(c *fiber.Ctx) error {
	var req CreateBoardRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	board, err := s.boardService.CreateBoard(c.UserContext(), service.CreateBoardInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(board)
}

// GetBoards handles GET /api/boards
// @Summary List boards
// @Tags boards
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {array} models.Board
// @Router /boards [get]
func (s *Server) GetBoards(c *fiber.Ctx) error {
	page := parsePagination(c)
	boards, err := s.boardService.ListBoards(c.UserContext(), page.Offset, page.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(boards)
}

// GetBoard handles GET /api/boards/:id
// @Summary Get a board
// @Tags boards
// @Produce json
// @Param id path int true "Board ID"
// @Success 200 {object} models.Board
// @Failure 404 {object} models.ErrorResponse
// @Router /boards/{id} [get]
func (s *Server) GetBoard(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	board, err := s.boardService.GetBoard(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(board)
}

// UpdateBoard handles PUT /api/boards/:id
// @Summary Update a board
// @Tags boards
// @Accept json
// @Produce json
// @Param id path int true "Board ID"
// @Param request body UpdateBoardRequest true "Fields to change"
// @Success 200 {object} models.Board
// @Failure 404 {object} models.ErrorResponse
// @Router /boards/{id} [put]
func (s *Server) UpdateBoard(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req UpdateBoardRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	board, err := s.boardService.UpdateBoard(c.UserContext(), id, service.UpdateBoardInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(board)
}

// DeleteBoard handles DELETE /api/boards/:id
// @Summary Delete a board and its posts
// @Tags boards
// @Param id path int true "Board ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /boards/{id} [delete]
func (s *Server) DeleteBoard(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.boardService.DeleteBoard(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreatePost handles POST /api/boards/:boardId/posts
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Param boardId path int true "Board ID"
// @Param author_id query int true "Author user ID"
// @Param request body CreatePostRequest true "Post"
// @Success 201 {object} models.Post
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /boards/{boardId}/posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	boardID, err := s.parseID(c, "boardId")
	if err != nil {
		return nil
	}
	authorID, err := authorFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	var req CreatePostRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		BoardID:  boardID,
		AuthorID: authorID,
		Title:    req.Title,
		Contents: req.Contents,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts handles GET /api/boards/:boardId/posts
// @Summary List a board's posts, newest first
// @Tags posts
// @Produce json
// @Param boardId path int true "Board ID"
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {array} models.Post
// @Router /boards/{boardId}/posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	boardID, err := s.parseID(c, "boardId")
	if err != nil {
		return nil
	}
	page := parsePagination(c)
	posts, err := s.postService.ListPosts(c.UserContext(), boardID, page.Offset, page.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/boards/posts/:postId
// @Summary Read a post
// @Description Increments view_count before returning the post.
// @Tags posts
// @Produce json
// @Param postId path int true "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} models.ErrorResponse
// @Router /boards/posts/{postId} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	viewerID, _ := middleware.OptionalUserID(c, s.config.JWTSecret, s.redis)

	post, err := s.postService.GetPost(c.UserContext(), id, viewerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// UpdatePost handles PUT /api/boards/posts/:postId
// @Summary Update a post
// @Tags posts
// @Accept json
// @Produce json
// @Param postId path int true "Post ID"
// @Param request body UpdatePostRequest true "Fields to change"
// @Success 200 {object} models.Post
// @Failure 404 {object} models.ErrorResponse
// @Router /boards/posts/{postId} [put]
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	var req UpdatePostRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	post, err := s.postService.UpdatePost(c.UserContext(), id, service.UpdatePostInput{
		Title:    req.Title,
		Contents: req.Contents,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/boards/posts/:postId
// @Summary Delete a post
// @Tags posts
// @Param postId path int true "Post ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /boards/posts/{postId} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	if err := s.postService.DeletePost(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LikePost handles POST /api/boards/posts/:postId/like
// @Summary Increment a post's like counter
// @Tags posts
// @Produce json
// @Param postId path int true "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} models.ErrorResponse
// @Router /boards/posts/{postId}/like [post]
func (s *Server) LikePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	post, err := s.postService.LikePost(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// UnlikePost handles DELETE /api/boards/posts/:postId/like
// @Summary Decrement a post's like counter
// @Description The counter never drops below zero.
// @Tags posts
// @Produce json
// @Param postId path int true "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} models.ErrorResponse
// @Router /boards/posts/{postId}/like [delete]
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	post, err := s.postService.UnlikePost(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// CreateComment handles POST /api/boards/posts/:postId/comments
// @Summary Comment on a post
// @Tags comments
// @Accept json
// @Produce json
// @Param postId path int true "Post ID"
// @Param author_id query int true "Author user ID"
// @Param request body CreateCommentRequest true "Comment"
// @Success 201 {object} models.Comment
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /boards/posts/{postId}/comments [post]
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	authorID, err := authorFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	var req CreateCommentRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	comment, err := s.commentService.CreateComment(c.UserContext(), service.CreateCommentInput{
		PostID:   postID,
		AuthorID: authorID,
		Contents: req.Contents,
		ParentID: req.ParentID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments handles GET /api/boards/posts/:postId/comments
// @Summary List a post's comments, oldest first
// @Tags comments
// @Produce json
// @Param postId path int true "Post ID"
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {array} models.Comment
// @Router /boards/posts/{postId}/comments [get]
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	page := parsePagination(c)
	comments, err := s.commentService.ListComments(c.UserContext(), postID, page.Offset, page.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comments)
}

// GetComment handles GET /api/boards/comments/:id
// @Summary Get a comment
// @Tags comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} models.Comment
// @Failure 404 {object} models.ErrorResponse
// @Router /boards/comments/{id} [get]
func (s *Server) GetComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	comment, err := s.commentService.GetComment(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comment)
}

// UpdateComment handles PUT /api/boards/comments/:id
// @Summary Edit a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param request body UpdateCommentRequest true "New text"
// @Success 200 {object} models.Comment
// @Failure 404 {object} models.ErrorResponse
// @Router /boards/comments/{id} [put]
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req UpdateCommentRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	comment, err := s.commentService.UpdateComment(c.UserContext(), id, req.Contents)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comment)
}

// AddTag handles POST /api/boards/posts/:postId/tags
// @Summary Tag a post
// @Tags tags
// @Produce json
// @Param postId path int true "Post ID"
// @Param tag query string true "Tag"
// @Success 201 {object} models.PostTag
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /boards/posts/{postId}/tags [post]
func (s *Server) AddTag(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	tag, err := s.postService.AddTag(c.UserContext(), postID, c.Query("tag"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tag)
}

// GetTags handles GET /api/boards/posts/:postId/tags
// @Summary List a post's tags
// @Tags tags
// @Produce json
// @Param postId path int true "Post ID"
// @Success 200 {array} models.PostTag
// @Router /boards/posts/{postId}/tags [get]
func (s *Server) GetTags(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	tags, err := s.postService.ListTags(c.UserContext(), postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tags)
}

// RemoveTag handles DELETE /api/boards/posts/:postId/tags/:tag
// @Summary Remove a tag from a post
// @Tags tags
// @Param postId path int true "Post ID"
// @Param tag path string true "Tag"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /boards/posts/{postId}/tags/{tag} [delete]
func (s *Server) RemoveTag(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	if err := s.postService.RemoveTag(c.UserContext(), postID, c.Params("tag")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
