package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ticket-slash/internal/api"
	"ticket-slash/internal/domain"
	"ticket-slash/internal/errors"
	"ticket-slash/internal/server/apierrors"
	"ticket-slash/internal/server/dto"
	"ticket-slash/internal/server/mapper"
	"ticket-slash/internal/server/middleware"
	"ticket-slash/internal/translator"
	"ticket-slash/internal/validation"
)

type TaskHandler struct {
	businessAPI api.BusinessAPI
	translator  *translator.Translator
	validator   *validation.SearchValidator
	location    *time.Location
}

func NewTaskHandler(businessAPI api.BusinessAPI, tr *translator.Translator, validator *validation.SearchValidator) *TaskHandler {
	return &TaskHandler{
		businessAPI: businessAPI,
		translator:  tr,
		validator:   validator,
		location:    time.Local,
	}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		tasks []domain.Task
		err   error
	)
	if raw := c.Query("tab"); raw != "" {
		tab, parseErr := domain.ParseTab(raw)
		if parseErr != nil {
			h.fail(c, "list tasks", errors.NewInvalidInputError("tab", raw, "expected todos or completed"))
			return
		}
		tasks, err = h.businessAPI.ListTab(ctx, tab)
	} else {
		tasks, err = h.businessAPI.ListTasks(ctx)
	}
	if err != nil {
		h.fail(c, "list tasks", err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, "create task", errors.NewInvalidInputError("body", nil, "expected JSON object with a text field"))
		return
	}

	task, err := h.businessAPI.AddTask(c.Request.Context(), req.Text)
	if err != nil {
		h.fail(c, "create task", err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(*task))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.businessAPI.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get task", err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(*task))
}

func (h *TaskHandler) ToggleTask(c *gin.Context) {
	task, err := h.businessAPI.ToggleTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "toggle task", err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(*task))
}

// DeleteTask requires ?confirm=true; without it the task is left in place and 409 is returned.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id := c.Param("id")

	confirmed, _ := strconv.ParseBool(c.Query("confirm"))
	if !confirmed {
		h.fail(c, "delete task", errors.NewConfirmRequiredError(id))
		return
	}

	if err := h.businessAPI.DeleteTask(c.Request.Context(), id); err != nil {
		h.fail(c, "delete task", err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{ID: id, Deleted: true})
}

func (h *TaskHandler) Search(c *gin.Context) {
	opts, err := h.validator.ParseOptions(c.Query("status"), c.Query("from"), c.Query("to"), h.location)
	if err != nil {
		h.fail(c, "search tasks", err)
		return
	}

	result, err := h.businessAPI.Search(c.Request.Context(), opts)
	if err != nil {
		h.fail(c, "search tasks", err)
		return
	}

	prefix := h.translator.Localize(middleware.GetLang(c), translator.MsgFilteredBy, nil)
	c.JSON(http.StatusOK, mapper.ToSearchResponse(result, prefix))
}

func (h *TaskHandler) fail(c *gin.Context, operation string, err error) {
	if errors.ShouldLogError(err) {
		zap.L().Error("failed to "+operation, zap.Error(err))
	}
	_ = c.Error(err)

	status, body := apierrors.FromError(h.translator, err, middleware.GetLang(c))
	c.JSON(status, body)
}
