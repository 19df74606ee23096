package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/portfolio-backend/internal/http/response"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/services"
)

type CourseHandler struct {
	log           *logger.Logger
	courseService services.CourseService
}

func NewCourseHandler(log *logger.Logger, courseService services.CourseService) *CourseHandler {
	return &CourseHandler{
		log:           log.With("handler", "CourseHandler"),
		courseService: courseService,
	}
}

func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courseService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, "fetch courses", err)
		return
	}
	response.RespondOK(c, courses)
}

func (h *CourseHandler) GetByCode(c *gin.Context) {
	course, err := h.courseService.GetByCode(c.Request.Context(), c.Param("code"))
	if errors.Is(err, services.ErrNotFound) {
		response.RespondMessage(c, http.StatusNotFound, "Course not found")
		return
	}
	if err != nil {
		respondServiceError(c, h.log, "fetch course", err)
		return
	}
	response.RespondOK(c, course)
}

func (h *CourseHandler) Create(c *gin.Context) {
	var req struct {
		Code       string `json:"code"`
		Title      string `json:"title"`
		Image      string `json:"image"`
		University string `json:"university"`
	}
	if !bindBody(c, &req) {
		return
	}
	res, err := h.courseService.Create(c.Request.Context(), services.CourseInput{
		Code:       req.Code,
		Title:      req.Title,
		Image:      req.Image,
		University: req.University,
	})
	if err != nil {
		respondServiceError(c, h.log, "add course", err)
		return
	}
	response.RespondCreated(c, res)
}

func (h *CourseHandler) Update(c *gin.Context) {
	var fields map[string]interface{}
	if !bindBody(c, &fields) {
		return
	}
	res, err := h.courseService.Patch(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		respondServiceError(c, h.log, "update course details", err)
		return
	}
	response.RespondOK(c, res)
}

func (h *CourseHandler) Delete(c *gin.Context) {
	err := h.courseService.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrNotFound) {
		response.RespondMessage(c, http.StatusNotFound, "Course not found")
		return
	}
	if err != nil {
		respondServiceError(c, h.log, "delete course", err)
		return
	}
	response.RespondMessage(c, http.StatusOK, "Course deleted successfully")
}
