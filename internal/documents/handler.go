package documents

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-insight/internal/catalog"
	"resume-insight/internal/resume"
	"resume-insight/internal/shared/server/middleware"
	"resume-insight/internal/shared/server/respond"
)

// multipart overhead on top of the file itself
const maxRequestSize = MaxUploadSize + 1<<20

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.upload)
	rg.GET("/documents/current", h.current)
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "validation_error", "file exceeds 10MB", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	res, err := h.Svc.Upload(c.Request.Context(), userID, fileHeader.Filename, file, c.PostForm("jobId"))
	if err != nil {
		var perr *resume.ParseError
		switch {
		case errors.As(err, &perr):
			respond.Error(c, http.StatusUnprocessableEntity, "parse_error", "could not parse resume", gin.H{"kind": perr.Kind})
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, catalog.ErrNotFound):
			respond.Error(c, http.StatusBadRequest, "validation_error", "unknown jobId", gin.H{"jobId": c.PostForm("jobId")})
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			respond.Error(c, http.StatusServiceUnavailable, "canceled", "request canceled", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to upload resume", nil)
		}
		return
	}

	c.Set("documentId", res.Document.ID)
	c.Set("sessionId", res.Session.ID)
	c.Set("jobId", res.Session.JobID)
	respond.Created(c, toUploadResponse(res))
}

func (h *Handler) current(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	doc, err := h.Svc.Current(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch document", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(doc))
}
