package report

import (
	"bytes"
	"fmt"
	"html/template"
)

const (
	footerTemplateName      = "footer"
	footerPrefixText        = "Preview of"
	guildConfigHrefPattern  = "/edit/%s"
	guildMemberHrefPattern  = "/edit/%s/member/"
	guildHistoryHrefPattern = "/edit/%s/history"
)

// FooterLink is a dashboard page listed in the report footer.
type FooterLink struct {
	Label string
	URL   string
}

type footerTemplateData struct {
	PrefixText string
	Path       string
	Links      []FooterLink
}

var footerTemplate = template.Must(template.New(footerTemplateName).Parse(`<footer class="preview-report-footer">
  <span class="preview-report-footer-prefix">{{.PrefixText}}</span> <code>{{.Path}}</code>
  {{- if .Links}}
  <ul class="preview-report-footer-links">
    {{- range .Links}}
    <li><a href="{{.URL}}">{{.Label}}</a></li>
    {{- end}}
  </ul>
  {{- end}}
</footer>`))

// GuildLinks returns the dashboard pages of a guild, or nil without a guild.
func GuildLinks(guildID string) []FooterLink {
	if guildID == "" {
		return nil
	}
	return []FooterLink{
		{Label: "Configuration", URL: fmt.Sprintf(guildConfigHrefPattern, guildID)},
		{Label: "Members", URL: fmt.Sprintf(guildMemberHrefPattern, guildID)},
		{Label: "History", URL: fmt.Sprintf(guildHistoryHrefPattern, guildID)},
	}
}

// RenderFooter returns the footer markup of a snapshot report.
func RenderFooter(snapshot Snapshot) (template.HTML, error) {
	var buffer bytes.Buffer
	data := footerTemplateData{PrefixText: footerPrefixText, Path: snapshot.Path, Links: GuildLinks(snapshot.GuildID)}
	if err := footerTemplate.Execute(&buffer, data); err != nil {
		return "", err
	}
	return template.HTML(buffer.String()), nil
}
