package storefront

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// pages maps a page name to its parsed template. Each page shares the layout
// and defines its own "content" block.
var pages = func() map[string]*template.Template {
	names := []string{"home", "products", "login", "cart", "checkout", "confirm", "slow"}
	out := make(map[string]*template.Template, len(names))
	for _, name := range names {
		out[name] = template.Must(template.ParseFS(templateFS,
			"templates/layout.html", "templates/"+name+".html"))
	}
	return out
}()

func (s *Server) render(w http.ResponseWriter, page string, data pageData) {
	tmpl, ok := pages[page]
	if !ok {
		http.Error(w, "unknown page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		s.log.Errorf("render %s: %v", page, err)
	}
}
