package report

import _ "embed"

//go:embed templates/preview.tmpl
var previewTemplateHTML string
