package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/portfolio-backend/internal/http/response"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/services"
)

// FileFormField is the multipart part carrying the uploaded document.
const FileFormField = "file"

type FileHandler struct {
	log         *logger.Logger
	fileService services.FileService
}

func NewFileHandler(log *logger.Logger, fileService services.FileService) *FileHandler {
	return &FileHandler{log: log.With("handler", "FileHandler"), fileService: fileService}
}

func (h *FileHandler) List(c *gin.Context) {
	files, err := h.fileService.List(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		respondServiceError(c, h.log, "fetch files", err)
		return
	}
	response.RespondOK(c, files)
}

func (h *FileHandler) Create(c *gin.Context) {
	in, closeFn, err := readFileForm(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "Invalid upload", err)
		return
	}
	defer closeFn()
	res, err := h.fileService.Create(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, h.log, "add file", err)
		return
	}
	response.RespondCreated(c, res)
}

func (h *FileHandler) Update(c *gin.Context) {
	in, closeFn, err := readFileForm(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "Invalid upload", err)
		return
	}
	defer closeFn()
	res, err := h.fileService.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondServiceError(c, h.log, "update file", err)
		return
	}
	response.RespondOK(c, res)
}

func (h *FileHandler) Delete(c *gin.Context) {
	res, err := h.fileService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, h.log, "delete file", err)
		return
	}
	response.RespondOK(c, res)
}

// readFileForm collects the metadata fields and, when present, opens the
// file part. The returned close func is always safe to call.
func readFileForm(c *gin.Context) (services.FileInput, func(), error) {
	noop := func() {}
	in := services.FileInput{
		Title:  c.PostForm("title"),
		Type:   c.PostForm("type"),
		Course: c.PostForm("course"),
		Link:   c.PostForm("link"),
	}
	fh, err := c.FormFile(FileFormField)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return in, noop, nil
	}
	if err != nil {
		return in, noop, err
	}
	f, err := fh.Open()
	if err != nil {
		return in, noop, err
	}
	in.Upload = &services.UploadInput{
		Filename: fh.Filename,
		MimeType: partMimeType(fh),
		Body:     f,
	}
	return in, func() { _ = f.Close() }, nil
}

func partMimeType(fh *multipart.FileHeader) string {
	if ct := fh.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
