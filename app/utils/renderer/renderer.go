package renderer

import (
	"html/template"

	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
	"github.com/zeylcoffee/qrmenu/app/models"
	"github.com/zeylcoffee/qrmenu/app/utils/format"
)

func New() *render.Render {
	return render.New(render.Options{
		Directory:  "templates",
		Layout:     "layout",
		Extensions: []string{".html"},
		Funcs: []template.FuncMap{
			{
				"formatTL": func(p models.Price) string {
					return format.PriceTL(p)
				},
				"tl": func(d decimal.Decimal) string {
					return format.TL(d)
				},
				"add": func(a, b int) int { return a + b },
				"sub": func(a, b int) int { return a - b },
			},
		},
	})
}
