package notebook

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/notebook/nav"
)

// pageCategory classifies the request path once; handlers pass the result
// down to the views.
func pageCategory(c echo.Context) nav.Category {
	return nav.Classify(c.Request().URL.Path)
}

func (a *App) handleHome(c echo.Context) error {
	tag := c.QueryParam("tag")
	posts, err := a.Cache.ListPosts(tag)
	if err != nil {
		return err
	}
	tags, err := a.Cache.ListTags()
	if err != nil {
		return err
	}
	return Render(c, a.Views.Home(posts, tag, tags, pageCategory(c)))
}

func (a *App) handleBlogIndex(c echo.Context) error {
	tag := c.QueryParam("tag")
	posts, err := a.Cache.ListSeries("")
	if err != nil {
		return err
	}
	if tag != "" {
		posts = FilterByTag(posts, tag)
	}
	tags, err := a.Cache.ListTags()
	if err != nil {
		return err
	}
	return Render(c, a.Views.BlogIndex(posts, tag, tags, pageCategory(c)))
}

func (a *App) handleNotebookIndex(c echo.Context) error {
	posts, err := a.Cache.ListSeries(nav.NotebookSeries)
	if err != nil {
		return err
	}
	return Render(c, a.Views.NotebookIndex(posts, pageCategory(c)))
}

func (a *App) handlePost(c echo.Context) error {
	return a.renderPost(c, "")
}

func (a *App) handleNotebookPost(c echo.Context) error {
	return a.renderPost(c, nav.NotebookSeries)
}

// renderPost serves a post only under the path of its own series, so a
// notebook entry is not reachable as a plain blog post and vice versa.
func (a *App) renderPost(c echo.Context, series string) error {
	page := pageCategory(c)
	post, err := a.Cache.GetPost(c.Param("slug"))
	if err == nil && post.Series != series {
		err = ErrNotFound
	}
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(page))
		}
		return err
	}
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	return Render(c, a.Views.Post(post, FilterRelatedPosts(post, posts), page))
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s\n", strings.TrimRight(a.Config.URL, "/")+"/sitemap.xml")
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(pageCategory(c)))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
