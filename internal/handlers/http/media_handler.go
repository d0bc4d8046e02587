package http

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renaspress/renaspress-backend/internal/domain/entities"
	"github.com/renaspress/renaspress-backend/internal/domain/errors"
	"github.com/renaspress/renaspress-backend/internal/handlers/dto"
	"github.com/renaspress/renaspress-backend/internal/services"
)

// multipartOverhead leaves room for boundaries and headers around the file.
const multipartOverhead int64 = 1 << 20

type MediaHandler struct {
	mediaService *services.MediaService
}

func NewMediaHandler(mediaService *services.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// UploadImage
// @Summary Upload image
// @Description JPEG, PNG, GIF or WebP up to 10MB.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /upload/image [post]
func (h *MediaHandler) UploadImage(c *gin.Context) {
	h.upload(c, entities.MediaImage, "message.image_uploaded")
}

// UploadVideo
// @Summary Upload video
// @Description MP4, WebM, OGG, AVI or MOV up to 100MB.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Video"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /upload/video [post]
func (h *MediaHandler) UploadVideo(c *gin.Context) {
	h.upload(c, entities.MediaVideo, "message.video_uploaded")
}

func (h *MediaHandler) upload(c *gin.Context, kind entities.MediaType, message string) {
	maxSize, limitLabel := services.UploadLimit(kind)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize+multipartOverhead)

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			dto.WriteError(c, errors.ErrFileTooLarge.WithParams(map[string]any{"Limit": limitLabel}))
			return
		}
		dto.WriteError(c, errors.ErrNoFile)
		return
	}

	file, err := header.Open()
	if err != nil {
		dto.WriteError(c, err)
		return
	}
	defer file.Close()

	result, err := h.mediaService.Upload(c.Request.Context(), kind, &services.UploadFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUploadResponse(result, dto.T(c, message)))
}
