package border

import (
	"fmt"
	"strings"
	"text/template"
)

// The property order inside each rule is relied upon by consumers of the
// exported document and must not change.
const snippetSource = `<html>
<head>
  <style>
    .image-container {
      background: {{.Background}};
      border-radius: {{.OuterRadius}}px;
      padding: {{.Padding}}px;
      display: inline-flex;
      justify-content: center;
      align-items: center;
      {{.AspectRatioStyle}}
    }

    .image {
      border-radius: {{.ImageRadius}}px;
      box-shadow: {{.BoxShadow}};
      {{.ImageStyles}}
      display: block;
    }
  </style>
</head>
<body>
  <div class="image-container">
    <img src="your-image.png" alt="Image" class="image" />
  </div>
</body>
</html>`

var snippetTemplate = template.Must(template.New("snippet").Option("missingkey=error").Parse(snippetSource))

type snippetData struct {
	Background       string
	OuterRadius      int
	Padding          int
	AspectRatioStyle string
	ImageRadius      int
	BoxShadow        string
	ImageStyles      string
}

// GenerateSnippet renders a standalone HTML document reproducing the preview
// for s. The output depends only on s, so equal states yield identical bytes.
func GenerateSnippet(s State) string {
	layout := s.Layout()

	data := snippetData{
		Background:  s.Fill(),
		OuterRadius: s.OuterRadiusPx,
		Padding:     s.PaddingPx,
		ImageRadius: s.ImageRadiusPx,
		BoxShadow:   s.Shadow().ExportCSS(),
		ImageStyles: exportSizing(layout.Export),
	}
	if layout.ContainerRatio != "" {
		data.AspectRatioStyle = fmt.Sprintf("aspect-ratio: %s;", layout.ContainerRatio)
	}

	var b strings.Builder
	if err := snippetTemplate.Execute(&b, data); err != nil {
		// The template is fixed and data is fully populated.
		panic(fmt.Sprintf("render snippet: %v", err))
	}
	return b.String()
}
