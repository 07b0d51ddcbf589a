package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tutorialhub/store"
)

type tutorialRequest struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Published   interface{} `json:"published"`
	Image       string      `json:"image"`
	CategoryID  *int        `json:"category_id"`
	Tags        interface{} `json:"tags"`
}

func (r tutorialRequest) input() store.TutorialInput {
	return store.TutorialInput{
		Title:       r.Title,
		Description: r.Description,
		Published:   coercePublished(r.Published),
		Image:       r.Image,
		CategoryID:  r.CategoryID,
		Tags:        parseTagNames(r.Tags),
	}
}

func (m *ApiModule) createTutorial(c *gin.Context) {
	var req tutorialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Content can not be empty!"})
		return
	}
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title can not be empty!"})
		return
	}

	tutorial, err := m.tutorials.Create(req.input())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, tutorial)
}

// listTutorials builds the filter from query parameters: title
// substring, published tri-state, category id, tag id, page and limit.
func (m *ApiModule) listTutorials(c *gin.Context) {
	filter := store.TutorialFilter{
		Title: c.Query("title"),
	}

	switch c.Query("published") {
	case "true":
		published := true
		filter.Published = &published
	case "false":
		published := false
		filter.Published = &published
	}
	if v, err := strconv.Atoi(c.Query("category")); err == nil {
		filter.CategoryID = &v
	}
	if v, err := strconv.Atoi(c.Query("tag")); err == nil {
		filter.TagID = &v
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil {
		filter.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		filter.Limit = v
	}

	page, err := m.tutorials.GetAll(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Some error occurred while retrieving tutorials."})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (m *ApiModule) listPublishedTutorials(c *gin.Context) {
	published := true
	filter := store.TutorialFilter{Published: &published}
	if v, err := strconv.Atoi(c.Query("page")); err == nil {
		filter.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		filter.Limit = v
	}

	page, err := m.tutorials.GetAll(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Some error occurred while retrieving tutorials."})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (m *ApiModule) findTutorial(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid tutorial id!"})
		return
	}

	tutorial, err := m.tutorials.FindByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not found Tutorial with id " + c.Param("id") + "."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving Tutorial with id " + c.Param("id")})
		return
	}
	c.JSON(http.StatusOK, tutorial)
}

func (m *ApiModule) updateTutorial(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid tutorial id!"})
		return
	}

	var req tutorialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Content can not be empty!"})
		return
	}
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title can not be empty!"})
		return
	}

	tutorial, err := m.tutorials.UpdateByID(id, req.input())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not found Tutorial with id " + c.Param("id") + "."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating Tutorial with id " + c.Param("id")})
		return
	}
	c.JSON(http.StatusOK, tutorial)
}

func (m *ApiModule) deleteTutorial(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid tutorial id!"})
		return
	}

	if err := m.tutorials.Remove(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not found Tutorial with id " + c.Param("id") + "."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete Tutorial with id " + c.Param("id")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tutorial was deleted successfully!"})
}

func (m *ApiModule) deleteAllTutorials(c *gin.Context) {
	if err := m.tutorials.RemoveAll(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Some error occurred while removing all tutorials."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All Tutorials were deleted successfully!"})
}
