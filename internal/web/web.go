// Package web serves the HTML shells behind the login, admin and dashboard
// page paths. The shells talk to the JSON API from the browser.
package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

type Link struct {
	Path  string
	Title string
	API   string
}

var adminSections = []Link{
	{Path: "/admin", Title: "Overview", API: "/api/admin/stats"},
	{Path: "/admin/gyms", Title: "Gyms", API: "/api/admin/gyms"},
	{Path: "/admin/plans", Title: "Plans", API: "/api/admin/plans"},
}

var dashboardSections = []Link{
	{Path: "/dashboard", Title: "Overview", API: "/api/dashboard/overview"},
	{Path: "/dashboard/clients", Title: "Clients", API: "/api/dashboard/clients"},
	{Path: "/dashboard/payments", Title: "Payments", API: "/api/dashboard/payments"},
	{Path: "/dashboard/trainers", Title: "Trainers", API: "/api/dashboard/trainers"},
	{Path: "/dashboard/attendance", Title: "Attendance", API: "/api/dashboard/attendance"},
	{Path: "/dashboard/notifications", Title: "Notifications", API: "/api/dashboard/notifications"},
	{Path: "/dashboard/reports", Title: "Reports"},
	{Path: "/dashboard/settings", Title: "Settings", API: "/api/dashboard/settings"},
}

var reportKinds = []string{"clients", "payments", "attendance"}

type shell struct {
	Title    string
	Area     string
	Current  Link
	Sections []Link
	Reports  []string
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// Register installs the templates on r and mounts every page route.
func Register(r *gin.Engine) error {
	tmpl, err := Templates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/login")
	})
	r.GET("/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{"Title": "Sign in"})
	})

	mount(r, "Admin", adminSections)
	mount(r, "Dashboard", dashboardSections)
	return nil
}

func mount(r *gin.Engine, area string, sections []Link) {
	for _, s := range sections {
		page := shell{Title: area + " - " + s.Title, Area: area, Current: s, Sections: sections}
		if s.API == "" {
			page.Reports = reportKinds
		}
		r.GET(s.Path, func(c *gin.Context) {
			c.HTML(http.StatusOK, "shell.html", page)
		})
	}
}
