package server

import (
	"gochurch/internal/seed"
	"gochurch/internal/tasks"

	"github.com/gofiber/fiber/v2"
)

// SampleDataRequest sizes a sample data run. Zero fields use the defaults.
type SampleDataRequest struct {
	Churches int   `json:"churches" validate:"gte=0,lte=100"`
	Users    int   `json:"users" validate:"gte=0,lte=1000"`
	Posts    int   `json:"posts" validate:"gte=0,lte=5000"`
	Comments int   `json:"comments" validate:"gte=0,lte=20000"`
	Clean    bool  `json:"clean"`
	Seed     int64 `json:"seed"`
}

// StartSampleData handles POST /api/tasks/sample-data
// @Summary Generate sample data in the background
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body SampleDataRequest false "Sizes"
// @Success 202 {object} object{task_id=string}
// @Router /tasks/sample-data [post]
func (s *Server) StartSampleData(c *fiber.Ctx) error {
	var req SampleDataRequest
	if len(c.Body()) > 0 {
		if err := parseBody(c, &req); err != nil {
			return nil
		}
	}

	opts := seed.Options{
		Churches: req.Churches,
		Users:    req.Users,
		Posts:    req.Posts,
		Comments: req.Comments,
		Clean:    req.Clean,
		Seed:     req.Seed,
	}
	task, err := s.tasks.Submit(c.UserContext(), tasks.SampleDataTask, tasks.SampleData(s.db, opts))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"task_id": task.ID})
}

// StartCleanup handles POST /api/tasks/cleanup
// @Summary Delete all community data in the background
// @Tags tasks
// @Produce json
// @Success 202 {object} object{task_id=string}
// @Router /tasks/cleanup [post]
func (s *Server) StartCleanup(c *fiber.Ctx) error {
	task, err := s.tasks.Submit(c.UserContext(), tasks.CleanupTask, tasks.Cleanup(s.db))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"task_id": task.ID})
}

// GetTask handles GET /api/tasks/:id
// @Summary Task status and result
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} models.TaskResult
// @Failure 404 {object} models.ErrorResponse
// @Router /tasks/{id} [get]
func (s *Server) GetTask(c *fiber.Ctx) error {
	task, err := s.tasks.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(task)
}
