package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tutorialhub/store"
)

type tagRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (m *ApiModule) createTag(c *gin.Context) {
	var req tagRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Tag name cannot be empty!"})
		return
	}

	tag, err := m.tags.Create(req.Name, req.Slug)
	if err != nil {
		var dup *store.DuplicateError
		if errors.As(err, &dup) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Tag with this " + dup.Field + " already exists!"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error occurred while creating tag."})
		return
	}
	c.JSON(http.StatusCreated, tag)
}

func (m *ApiModule) listTags(c *gin.Context) {
	var err error
	var tags interface{}
	if c.Query("withCount") == "true" {
		tags, err = m.tags.GetAllWithCount()
	} else {
		tags, err = m.tags.GetAll()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error occurred while retrieving tags."})
		return
	}
	c.JSON(http.StatusOK, tags)
}

func (m *ApiModule) popularTags(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	tags, err := m.tags.GetPopular(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error occurred while retrieving popular tags."})
		return
	}
	c.JSON(http.StatusOK, tags)
}

func (m *ApiModule) findTag(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid tag id!"})
		return
	}

	tag, err := m.tags.FindByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Tag not found with id " + c.Param("id") + "."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving tag with id " + c.Param("id")})
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (m *ApiModule) updateTag(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid tag id!"})
		return
	}

	var req tagRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Tag name cannot be empty!"})
		return
	}

	tag, err := m.tags.UpdateByID(id, req.Name, req.Slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Tag not found with id " + c.Param("id") + "."})
			return
		}
		var dup *store.DuplicateError
		if errors.As(err, &dup) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Tag with this " + dup.Field + " already exists!"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating tag with id " + c.Param("id")})
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (m *ApiModule) deleteTag(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid tag id!"})
		return
	}

	if err := m.tags.Remove(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Tag not found with id " + c.Param("id") + "."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete tag with id " + c.Param("id")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tag deleted successfully!"})
}
