package engine

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/jsvensson/swatch"
	"github.com/jsvensson/swatch/internal/color"
	"github.com/jsvensson/swatch/internal/render"
)

// PageTemplate is the file name looked up in TemplatesDir.
const PageTemplate = "page.html.tmpl"

//go:embed templates/*.tmpl
var defaultTemplates embed.FS

// Engine renders the swatch HTML page. The template is parsed once by Load and
// is safe to execute from many goroutines.
type Engine struct {
	TemplatesDir string // if non-empty, PageTemplate is read from here instead of the embedded default

	tmpl *template.Template
}

// PageData is the data passed to the page template.
type PageData struct {
	Code        string // canonical 8-digit hex code
	ImageBase64 string
	Size        int
	Color       color.Color
	Conversion  *swatch.Conversion
}

// Load parses the page template.
func Load(templatesDir string) (*Engine, error) {
	e := &Engine{TemplatesDir: templatesDir}

	tmpl := template.New(PageTemplate).Funcs(funcMap())
	var err error
	if e.TemplatesDir == "" {
		tmpl, err = tmpl.ParseFS(defaultTemplates, "templates/"+PageTemplate)
	} else {
		path := filepath.Join(e.TemplatesDir, PageTemplate)
		if _, statErr := os.Stat(path); statErr != nil {
			return nil, fmt.Errorf("page template: %w", statErr)
		}
		tmpl, err = tmpl.ParseFiles(path)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	e.tmpl = tmpl
	return e, nil
}

// Render executes the page template with data.
func (e *Engine) Render(w io.Writer, data PageData) error {
	if e.tmpl == nil {
		return fmt.Errorf("engine not loaded")
	}
	if err := e.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("executing page template: %w", err)
	}
	return nil
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"hex": func(c color.Color) string {
			return c.Hex()
		},
		"css": func(c color.Color, n string) string {
			return c.CSS(color.Notation(n))
		},
		"code": func(c color.Color, n string) string {
			return c.Code(color.Notation(n))
		},
		"notations": func() []color.Notation {
			return color.Notations
		},
		"dataURI": func(b64 string) template.URL {
			return template.URL(render.DataURIPrefix + b64)
		},
	}
}
