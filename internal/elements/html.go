package elements

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/Samit-B/school-management/internal/models"
)

var turnTemplate = template.Must(template.New("turns").Parse(
	`{{range .}}<div class="mb-2"><p class="{{.Style}}"><strong>{{.Sender}}:</strong> {{.Body}}</p></div>
{{end}}`))

// RenderHTML renders turns as the markup of the browser widget.
// Bodies are escaped, so text that looks like markup shows up literally.
func RenderHTML(turns []models.Turn) (string, error) {
	var buf bytes.Buffer
	if err := turnTemplate.Execute(&buf, turns); err != nil {
		return "", fmt.Errorf("failed to render transcript: %w", err)
	}
	return buf.String(), nil
}
