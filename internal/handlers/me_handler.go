package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-crm/internal/middleware"
	"github.com/BruksfildServices01/barber-crm/internal/models"
	"github.com/BruksfildServices01/barber-crm/internal/storage"
	"github.com/BruksfildServices01/barber-crm/internal/validators"
)

const maxAvatarBytes = 5 << 20 // 5 MiB

type MeHandler struct {
	db       *gorm.DB
	uploader *storage.S3Uploader
}

func NewMeHandler(db *gorm.DB, uploader *storage.S3Uploader) *MeHandler {
	return &MeHandler{db: db, uploader: uploader}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(string)

	var user models.User
	if err := h.db.First(&user, "id = ?", ownerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
		return
	}

	c.JSON(http.StatusOK, userPayload(&user))
}

type UpdateMeRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(string)

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", ownerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
		return
	}

	if req.Name != nil && *req.Name != "" {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone, _ = validators.NormalizePhone(*req.Phone)
	}

	if err := h.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_user"})
		return
	}

	c.JSON(http.StatusOK, userPayload(&user))
}

// UploadAvatar recebe a imagem em multipart, reduz, converte para webp
// e publica no bucket; a URL fica no perfil.
func (h *MeHandler) UploadAvatar(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextOwnerID).(string)

	file, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "avatar_file_required"})
		return
	}
	if file.Size > maxAvatarBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "avatar_too_large"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_avatar_file"})
		return
	}
	defer src.Close()

	encoded, err := storage.EncodeAvatarWebP(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported_image_format"})
		return
	}

	key := fmt.Sprintf("avatars/%s.webp", ownerID)
	url, err := h.uploader.Upload(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "upload_unavailable"})
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("id = ?", ownerID).
		Update("avatar_url", url).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}
