package handler

import (
	"taskpulse/dto"
	"taskpulse/model"
	"taskpulse/usecase"
	"taskpulse/utils"

	"github.com/gin-gonic/gin"
)

type TodoHandler struct {
	service *usecase.TodosService
}

func NewTodoHandler(service *usecase.TodosService) *TodoHandler {
	return &TodoHandler{service: service}
}

func (h *TodoHandler) CreateTodo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req model.TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackError("validation", "todo_create")
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	todo, err := h.service.CreateTodo(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, dto.ToTodoResponse(todo))
}

// GetUserTodos lists todos, filtered by the optional tag, status, priority
// and selectedDate query parameters.
func (h *TodoHandler) GetUserTodos(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var query model.TodoQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.BadRequest(c, "Invalid query parameters")
		return
	}

	todos, err := h.service.ListTodos(c.Request.Context(), userID, query)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToTodoResponses(todos))
}

func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	todoID := c.Param("id")
	if todoID == "" {
		utils.BadRequest(c, "Missing todo ID")
		return
	}

	var patch model.TodoPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.TrackError("validation", "todo_update")
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	todo, err := h.service.UpdateTodo(c.Request.Context(), userID, todoID, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToTodoResponse(todo))
}

func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	todoID := c.Param("id")
	if todoID == "" {
		utils.BadRequest(c, "Missing todo ID")
		return
	}

	if err := h.service.DeleteTodo(c.Request.Context(), userID, todoID); err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessMessage(c, "Todo deleted successfully", nil)
}

func (h *TodoHandler) DeleteAllTodos(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	n, err := h.service.DeleteAllTodos(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessMessage(c, "Todos deleted successfully", gin.H{"deleted": n})
}
