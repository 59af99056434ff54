package http

import (
	"embed"
	"html/template"
	"io/fs"
	stdhttp "net/http"

	"github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/rfm-dashboard/internal/domain/entity"
	"github.com/jhoicas/rfm-dashboard/pkg/format"
)

//go:embed views/*.html
var viewsFS embed.FS

// NewViews motor de plantillas sobre las vistas embebidas en el binario.
func NewViews() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic("views: " + err.Error())
	}
	engine := html.NewFileSystem(stdhttp.FS(sub), ".html")
	engine.AddFuncMap(template.FuncMap{
		"int":        format.Int,
		"money":      format.Money,
		"moneyf":     format.MoneyFloat,
		"millions":   func(d decimal.Decimal) string { return format.Millions(d, 2) },
		"millions1":  func(d decimal.Decimal) string { return format.Millions(d, 1) },
		"pct":        func(f float64) string { return format.Percent(f, 1) },
		"fixed":      format.Fixed,
		"days":       format.Days,
		"optDays":    optional(format.Days),
		"optMoney":   optional(format.MoneyFloat),
		"optFixed":   optionalDecimals(format.Fixed),
		"optGrouped": optionalDecimals(format.Grouped),
		"color":      entity.ColorFor,
		"selected":   contains,
	})
	return engine
}

func optional(fn func(float64) string) func(*float64) string {
	return func(f *float64) string {
		if f == nil {
			return format.Placeholder
		}
		return fn(*f)
	}
}

func optionalDecimals(fn func(float64, int) string) func(*float64, int) string {
	return func(f *float64, decimals int) string {
		if f == nil {
			return format.Placeholder
		}
		return fn(*f, decimals)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
