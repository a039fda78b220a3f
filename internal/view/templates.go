package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/threadline-erp/threadline/internal/analytics"
	"github.com/threadline-erp/threadline/internal/orders"
	"github.com/threadline-erp/threadline/internal/reports"
)

//go:embed templates/*.html
var templateFS embed.FS

// Engine renders printable HTML views.
type Engine struct {
	templates *template.Template
}

// StatusReportData feeds the printable status report.
type StatusReportData struct {
	Title       string
	GeneratedAt time.Time
	Rows        []reports.StatusRow
}

// DashboardData feeds the printable dashboard summary.
type DashboardData struct {
	Title       string
	GeneratedAt time.Time
	Summary     analytics.Summary
	Statuses    []orders.Status
}

// NewEngine parses templates at build-time.
func NewEngine(formatter *Formatter) (*Engine, error) {
	funcMap := template.FuncMap{
		"formatDate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("02 Jan 2006")
		},
		"formatINR": formatter.INR,
		"formatQty": formatter.Quantity,
	}
	tpl, err := template.New("root").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Engine{templates: tpl}, nil
}

// Render executes a named template.
func (e *Engine) Render(w io.Writer, name string, data any) error {
	if e == nil {
		return fmt.Errorf("template engine not initialised")
	}
	return e.templates.ExecuteTemplate(w, name, data)
}
