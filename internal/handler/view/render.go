package view

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"

	"evcontrol/internal/domain/reservation"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

//go:embed templates/*.html
var templatesFS embed.FS

const IndexTemplate = "index.html"

// raw HTML in notes is escaped since WithUnsafe is not set
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

func Funcs() template.FuncMap {
	return template.FuncMap{
		"markdown": RenderMarkdown,
		"brl":      func(d decimal.Decimal) string { return reservation.FormatBRL(d) },
		"dateBR":   reservation.FormatDateBR,
	}
}

func RenderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		slog.Warn("markdown render failed", "error", err.Error())
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

func Templates() *template.Template {
	return template.Must(template.New("").Funcs(Funcs()).ParseFS(templatesFS, "templates/*.html"))
}

// Install registers the page templates on engine
func Install(engine *gin.Engine) {
	engine.SetHTMLTemplate(Templates())
}
