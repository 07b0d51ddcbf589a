// Package api exposes the programmatic JSON surface. It parses loose
// request values into typed inputs, invokes the repositories, and maps
// typed failures to transport status codes.
package api

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tutorialhub/auth"
	"tutorialhub/store"
)

type ApiModule struct {
	db         *gorm.DB
	tutorials  *store.TutorialRepo
	tags       *store.TagRepo
	categories *store.CategoryRepo
}

func NewApiModule(db *gorm.DB, tutorials *store.TutorialRepo, tags *store.TagRepo, categories *store.CategoryRepo) *ApiModule {
	return &ApiModule{
		db:         db,
		tutorials:  tutorials,
		tags:       tags,
		categories: categories,
	}
}

func (m *ApiModule) RegisterRoutes(router *gin.Engine) {
	tutorials := router.Group("/api/tutorials")
	tutorials.Use(auth.RequireAuth)
	{
		tutorials.POST("", m.createTutorial)
		tutorials.GET("", m.listTutorials)
		tutorials.GET("/published", m.listPublishedTutorials)
		tutorials.GET("/:id", m.findTutorial)
		tutorials.PUT("/:id", m.updateTutorial)
		tutorials.DELETE("/:id", m.deleteTutorial)
		tutorials.DELETE("", m.deleteAllTutorials)
	}

	tags := router.Group("/api/tags")
	tags.Use(auth.RequireAuth)
	{
		tags.POST("", m.createTag)
		tags.GET("", m.listTags)
		tags.GET("/popular", m.popularTags)
		tags.GET("/:id", m.findTag)
		tags.PUT("/:id", m.updateTag)
		tags.DELETE("/:id", m.deleteTag)
	}

	categories := router.Group("/api/categories")
	categories.Use(auth.RequireAuth)
	{
		categories.POST("", m.createCategory)
		categories.GET("", m.listCategories)
		categories.GET("/:id", m.findCategory)
		categories.PUT("/:id", m.updateCategory)
		categories.DELETE("/:id", m.deleteCategory)
	}
}

// coercePublished accepts the loose published representations the
// clients send: a JSON bool, or the string "true". Anything else is
// unpublished.
func coercePublished(v interface{}) bool {
	switch p := v.(type) {
	case bool:
		return p
	case string:
		return p == "true"
	default:
		return false
	}
}

// parseTagNames accepts either a comma-delimited string or an explicit
// list; entries are trimmed and empties dropped. Nil means "tags not
// supplied" and leaves associations untouched.
func parseTagNames(v interface{}) []string {
	switch t := v.(type) {
	case string:
		names := store.SplitTagNames(t)
		if names == nil {
			return []string{}
		}
		return names
	case []interface{}:
		names := []string{}
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				continue
			}
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			names = append(names, s)
		}
		return names
	default:
		return nil
	}
}
