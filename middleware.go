package notebook

import (
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/eringen/notebook/nav"
)

const (
	adminSession = "admin_session"
	adminKey     = "authenticated"
)

// contentSecurityPolicy allows post images from the weserv proxy and the
// newsletter iframe under blog posts.
const contentSecurityPolicy = "default-src 'self'; script-src 'self'; style-src 'self' 'unsafe-inline'; " +
	"img-src 'self' https://images.weserv.nl data:; font-src 'self'; connect-src 'self'; frame-src https:"

func (a *App) setupMiddleware() {
	e := a.Echo
	e.IPExtractor = echo.ExtractIPFromXFFHeader(
		echo.TrustLoopback(true),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(true),
	)
	e.HTTPErrorHandler = a.httpErrorHandler

	e.Pre(middleware.NonWWWRedirect())
	e.Use(
		requestLogger(),
		middleware.Recover(),
		middleware.GzipWithConfig(middleware.GzipConfig{Level: 5, Skipper: isAsset}),
		middleware.SecureWithConfig(middleware.SecureConfig{
			XSSProtection:         "1; mode=block",
			ContentTypeNosniff:    "nosniff",
			XFrameOptions:         "DENY",
			ReferrerPolicy:        "strict-origin-when-cross-origin",
			ContentSecurityPolicy: contentSecurityPolicy,
			HSTSMaxAge:            31536000,
		}),
		session.Middleware(a.newSessionStore()),
		middleware.CSRFWithConfig(a.csrfConfig()),
		middleware.AddTrailingSlashWithConfig(middleware.TrailingSlashConfig{
			RedirectCode: http.StatusMovedPermanently,
			Skipper:      keepsBarePath,
		}),
		cacheControl,
	)
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			c.Logger().Infof("%s %s -> %d (%s)", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	})
}

// csrfConfig accepts the token from the admin forms (_csrf) or from
// admin.js (X-CSRF-Token).
func (a *App) csrfConfig() middleware.CSRFConfig {
	return middleware.CSRFConfig{
		ContextKey:     middleware.DefaultCSRFConfig.ContextKey,
		TokenLookup:    "header:X-CSRF-Token,form:_csrf",
		CookieName:     "_csrf",
		CookiePath:     "/",
		CookieSameSite: http.SameSiteLaxMode,
		CookieSecure:   a.Config.CookieSecure,
		ErrorHandler: func(err error, c echo.Context) error {
			return c.String(http.StatusForbidden, "Forbidden")
		},
	}
}

func isAsset(c echo.Context) bool {
	return strings.HasPrefix(c.Request().URL.Path, "/public/")
}

func isFeed(path string) bool {
	return path == "/sitemap.xml" || path == "/feed.xml" || path == "/robots.txt"
}

// keepsBarePath lists paths served without a trailing slash. "/blog/" would
// classify as a blog post, so the listings stay bare.
func keepsBarePath(c echo.Context) bool {
	path := c.Request().URL.Path
	return strings.HasPrefix(path, "/public") || isFeed(path) ||
		path == nav.BlogPath || path == nav.NotebookPath
}

// cachePolicy is the Cache-Control value for a request path.
func cachePolicy(path string) string {
	switch {
	case strings.HasPrefix(path, "/public/"):
		return "public, max-age=31536000, immutable"
	case isFeed(path):
		return "public, max-age=86400"
	case strings.HasPrefix(path, "/admin"):
		return "no-store"
	default:
		return "public, max-age=3600"
	}
}

func cacheControl(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Cache-Control", cachePolicy(c.Request().URL.Path))
		return next(c)
	}
}

func (a *App) newSessionStore() *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(a.Config.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   12 * 60 * 60,
		SameSite: http.SameSiteLaxMode,
		Secure:   a.Config.CookieSecure,
	}
	return store
}

// IsAdmin reports whether the request carries a logged-in admin session.
func IsAdmin(c echo.Context) bool {
	sess, err := session.Get(adminSession, c)
	if err != nil {
		return false
	}
	ok, _ := sess.Values[adminKey].(bool)
	return ok
}

// saveAdminSession marks the session as logged in, or expires it when
// loggedIn is false.
func saveAdminSession(c echo.Context, loggedIn bool) error {
	sess, err := session.Get(adminSession, c)
	if err != nil {
		return err
	}
	if loggedIn {
		sess.Values[adminKey] = true
	} else {
		sess.Options.MaxAge = -1
	}
	return sess.Save(c.Request(), c.Response())
}

// CsrfToken returns the token the CSRF middleware stored for this request.
func CsrfToken(c echo.Context) string {
	token, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	return token
}
