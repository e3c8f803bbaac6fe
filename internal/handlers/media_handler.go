package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/navalha-studio/booking-api/internal/httperr"
	"github.com/navalha-studio/booking-api/internal/media"
)

const maxUploadBytes = 5 << 20 // 5MB

type MediaHandler struct {
	uploader *media.Uploader
}

func NewMediaHandler(uploader *media.Uploader) *MediaHandler {
	return &MediaHandler{uploader: uploader}
}

// Upload recebe multipart (campo "imagem") e devolve a URL pública do
// webp gerado.
func (h *MediaHandler) Upload(c *gin.Context) {
	if !h.uploader.Enabled() {
		httperr.Internal(c, "media_not_configured", "Upload de mídia não configurado.")
		return
	}

	fileHeader, err := c.FormFile("imagem")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Arquivo de imagem ausente.")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Imagem acima de 5MB.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler o arquivo.")
		return
	}
	defer file.Close()

	url, err := h.uploader.UploadImage(c.Request.Context(), file)
	if err != nil {
		httperr.Internal(c, "failed_to_upload", "Erro ao processar a imagem.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
