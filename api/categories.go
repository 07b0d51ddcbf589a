package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tutorialhub/store"
)

type categoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func (m *ApiModule) createCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Category name cannot be empty!"})
		return
	}

	category, err := m.categories.Create(req.Name, req.Slug, req.Description)
	if err != nil {
		var dup *store.DuplicateError
		if errors.As(err, &dup) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Category with this " + dup.Field + " already exists!"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error occurred while creating category."})
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (m *ApiModule) listCategories(c *gin.Context) {
	var err error
	var categories interface{}
	if c.Query("withCount") == "true" {
		categories, err = m.categories.GetAllWithCount()
	} else {
		categories, err = m.categories.GetAll()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error occurred while retrieving categories."})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (m *ApiModule) findCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category id!"})
		return
	}

	category, err := m.categories.FindByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found with id " + c.Param("id") + "."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving category with id " + c.Param("id")})
		return
	}
	c.JSON(http.StatusOK, category)
}

func (m *ApiModule) updateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category id!"})
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Category name cannot be empty!"})
		return
	}

	category, err := m.categories.UpdateByID(id, req.Name, req.Slug, req.Description)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found with id " + c.Param("id") + "."})
			return
		}
		var dup *store.DuplicateError
		if errors.As(err, &dup) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Category with this " + dup.Field + " already exists!"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating category with id " + c.Param("id")})
		return
	}
	c.JSON(http.StatusOK, category)
}

func (m *ApiModule) deleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category id!"})
		return
	}

	if err := m.categories.Remove(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found with id " + c.Param("id") + "."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete category with id " + c.Param("id")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully!"})
}
