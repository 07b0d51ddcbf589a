// Package uploads is the blob-store collaborator: it accepts an image,
// stores it under the public uploads directory, and hands back a path.
// The rest of the system treats that path as opaque.
package uploads

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tutorialhub/auth"
)

const uploadsDir = "./public/uploads"

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type UploadsModule struct {
	dir string
}

func NewUploadsModule() *UploadsModule {
	return &UploadsModule{dir: uploadsDir}
}

func (u *UploadsModule) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/uploads", auth.RequireAuth, u.upload)
}

func (u *UploadsModule) upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Image file is required!"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unsupported image type!"})
		return
	}

	name := uuid.NewString() + ext
	dest := filepath.Join(u.dir, name)
	if err := c.SaveUploadedFile(file, dest); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error saving uploaded file."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": "/public/uploads/" + name})
}
