// Package web serves the interactive tutorial pages. It is a thin
// consumer of the same repositories the API uses; tutorial descriptions
// are written in Markdown and rendered server-side.
package web

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
	"gorm.io/gorm"

	"tutorialhub/auth"
	"tutorialhub/models"
	"tutorialhub/store"
)

// markdown renderer configured with Goldmark and useful extensions
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Linkify,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithUnsafe(),
	),
)

type WebModule struct {
	db         *gorm.DB
	tutorials  *store.TutorialRepo
	categories *store.CategoryRepo
	tags       *store.TagRepo
	users      *store.UserRepo
}

func NewWebModule(db *gorm.DB, tutorials *store.TutorialRepo, categories *store.CategoryRepo, tags *store.TagRepo, users *store.UserRepo) *WebModule {
	return &WebModule{
		db:         db,
		tutorials:  tutorials,
		categories: categories,
		tags:       tags,
		users:      users,
	}
}

func (w *WebModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/tutorials")
	})

	pages := router.Group("/tutorials")
	pages.Use(auth.RequireAuth, auth.AttachUser(w.users))
	{
		pages.GET("", w.index)
		pages.GET("/create", w.createPage)
		pages.GET("/:id/edit", w.editPage)
	}
}

func (w *WebModule) index(c *gin.Context) {
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

	page, err := w.tutorials.GetAll(filter)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "web_error.html", gin.H{
			"error": "Error loading tutorials",
		})
		return
	}

	type tutorialView struct {
		models.Tutorial
		DescriptionHTML template.HTML
	}
	views := make([]tutorialView, 0, len(page.Tutorials))
	for _, t := range page.Tutorials {
		views = append(views, tutorialView{
			Tutorial:        t,
			DescriptionHTML: template.HTML(renderMarkdown(t.Description)),
		})
	}

	popular, _ := w.tags.GetPopular(0)

	c.HTML(http.StatusOK, "web_index.html", gin.H{
		"tutorials":   views,
		"pagination":  page.Pagination,
		"popularTags": popular,
		"currentUser": currentUser(c),
	})
}

func (w *WebModule) createPage(c *gin.Context) {
	categories, err := w.categories.GetAll()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "web_error.html", gin.H{
			"error": "Error loading categories",
		})
		return
	}

	c.HTML(http.StatusOK, "web_create.html", gin.H{
		"categories":  categories,
		"currentUser": currentUser(c),
	})
}

func (w *WebModule) editPage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "web_error.html", gin.H{
			"error": "Tutorial not found",
		})
		return
	}

	tutorial, err := w.tutorials.FindByID(id)
	if err != nil {
		c.HTML(http.StatusNotFound, "web_error.html", gin.H{
			"error": "Tutorial not found",
		})
		return
	}

	categories, err := w.categories.GetAll()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "web_error.html", gin.H{
			"error": "Error loading categories",
		})
		return
	}

	c.HTML(http.StatusOK, "web_edit.html", gin.H{
		"tutorial":    tutorial,
		"categories":  categories,
		"currentUser": currentUser(c),
	})
}

func currentUser(c *gin.Context) *models.User {
	if v, ok := c.Get("current_user"); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

func renderMarkdown(content string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		// on renderer failure fall back to the raw content
		return content
	}
	return buf.String()
}
