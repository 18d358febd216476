package handler

import (
	"taskpulse/usecase"
	"taskpulse/utils"

	"github.com/gin-gonic/gin"
)

type GoalHandler struct {
	service *usecase.GoalsService
}

func NewGoalHandler(service *usecase.GoalsService) *GoalHandler {
	return &GoalHandler{service: service}
}

func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req usecase.GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	goal, err := h.service.CreateGoal(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, goal)
}

func (h *GoalHandler) GetUserGoals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	goals, err := h.service.ListGoals(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, goals)
}

func (h *GoalHandler) ToggleGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	goal, err := h.service.ToggleGoal(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, goal)
}

func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteGoal(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessMessage(c, "Goal deleted successfully", nil)
}
