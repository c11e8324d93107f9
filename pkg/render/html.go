package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
)

var blockClasses = map[string]string{
	"secondary": "rm-bg-secondary bg-secondary",
	"white":     "rm-bg-white",
}

var htmlTemplate = template.Must(template.New("grid").Funcs(template.FuncMap{
	"bg": func(name string) string { return blockClasses[name] },
}).Parse(`<div class="{{bg .Theme.Block}} rm-testimonials-block">
  <div class="rm-container rm-flex rm-flex-col rm-gap-14 rm-py-14">
    <h2 class="rm-mb-20 rm-text-center rm-text-2xl rm-font-bold">{{.Heading}}</h2>
    <div class="rm-grid rm-grid-cols-1 rm-gap-24 md:rm-grid-cols-2">
{{- range .Cards}}
      <div class="{{bg $.Theme.Card}} rm-space-y-8 rm-rounded-3xl rm-px-8 rm-pb-10 rm-text-center">
{{- if .ShowImageRow}}
        <div class="rm-testimonial-media">
          <img src="{{.Image}}" alt="{{.ImageAlt}}" class="rm-h-32 rm-w-32 rm-rounded-full rm-object-cover">
          <div class="stars" aria-label="{{.Stars}}/5">{{.StarString}}</div>
        </div>
{{- end}}
        <p class="rm-text-xl">{{.Quote}}</p>
        <div>
          <p class="rm-text-base rm-font-bold">{{.Author}}</p>
          <p class="rm-text-sm">{{.Title}}</p>
          <p class="rm-text-sm">{{.Subtitle}}</p>
        </div>
      </div>
{{- end}}
    </div>
  </div>
</div>
`))

// WriteHTML renders g as an HTML fragment
func WriteHTML(w io.Writer, g Grid) error {
	if err := htmlTemplate.Execute(w, g); err != nil {
		return fmt.Errorf("failed to render HTML: %w", err)
	}
	return nil
}

// HTML renders g to a string
func HTML(g Grid) (string, error) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, g); err != nil {
		return "", err
	}
	return buf.String(), nil
}
