// Package report renders snapshots of a mounted panel's preview cards as a
// standalone HTML page or as JSON.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"github.com/MarkoPoloResearchLab/guildpanel/internal/panel"
	"github.com/MarkoPoloResearchLab/guildpanel/internal/preview"
)

const (
	previewTemplateName = "preview"
	jsonIndent          = "  "

	errorMessageRenderHTML = "report: render html"
	errorMessageRenderJSON = "report: render json"
)

var (
	// ErrRenderHTML indicates the HTML report could not be written.
	ErrRenderHTML = errors.New(errorMessageRenderHTML)
	// ErrRenderJSON indicates the JSON report could not be written.
	ErrRenderJSON = errors.New(errorMessageRenderJSON)

	previewTemplate = template.Must(template.New(previewTemplateName).Parse(previewTemplateHTML))
)

// Snapshot is the rendered state of a panel at one moment.
type Snapshot struct {
	GuildID    string              `json:"guild_id"`
	Path       string              `json:"path"`
	ActivePane string              `json:"active_pane,omitempty"`
	Cards      []Card              `json:"cards"`
	Submission map[string][]string `json:"submission,omitempty"`
}

// Card is one preview card. Markup fields hold transformer output.
type Card struct {
	Group       string `json:"group"`
	Label       string `json:"label"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Footer      string `json:"footer"`
	Thumbnail   Image  `json:"thumbnail"`
	Image       Image  `json:"image"`
	BorderColor string `json:"border_color"`
}

type Image struct {
	Visible bool   `json:"visible"`
	Source  string `json:"source,omitempty"`
}

type cardTemplateData struct {
	Group       string
	Label       string
	Title       template.HTML
	Description template.HTML
	Footer      template.HTML
	Thumbnail   Image
	Image       Image
	BorderColor string
}

type pageTemplateData struct {
	GuildID    string
	Path       string
	Cards      []cardTemplateData
	FooterHTML template.HTML
}

// NewSnapshot captures the cards of a panel. A nil submission is left out.
func NewSnapshot(guildID string, path string, source *panel.Panel, submission url.Values) Snapshot {
	snapshot := Snapshot{GuildID: guildID, Path: path, Cards: []Card{}}
	if source == nil {
		return snapshot
	}
	if tabs := source.Tabs(); tabs != nil {
		snapshot.ActivePane = tabs.ActivePane()
	}
	for _, card := range source.Cards() {
		snapshot.Cards = append(snapshot.Cards, Card{
			Group:       card.Group,
			Label:       card.Label,
			Title:       card.Title,
			Description: card.Description,
			Footer:      card.Footer,
			Thumbnail:   imageFromView(card.Thumbnail),
			Image:       imageFromView(card.Image),
			BorderColor: card.BorderColor,
		})
	}
	if submission != nil {
		snapshot.Submission = map[string][]string(submission)
	}
	return snapshot
}

// Render writes the snapshot as a standalone HTML page. Card markup is
// inserted verbatim, the way the dashboard writes it into the page.
func Render(writer io.Writer, snapshot Snapshot) error {
	footerHTML, footerErr := RenderFooter(snapshot)
	if footerErr != nil {
		return fmt.Errorf("%w: %v", ErrRenderHTML, footerErr)
	}
	data := pageTemplateData{GuildID: snapshot.GuildID, Path: snapshot.Path, FooterHTML: footerHTML}
	for _, card := range snapshot.Cards {
		data.Cards = append(data.Cards, cardTemplateData{
			Group:       card.Group,
			Label:       card.Label,
			Title:       template.HTML(card.Title),
			Description: template.HTML(card.Description),
			Footer:      template.HTML(card.Footer),
			Thumbnail:   card.Thumbnail,
			Image:       card.Image,
			BorderColor: card.BorderColor,
		})
	}
	if executeErr := previewTemplate.Execute(writer, data); executeErr != nil {
		return fmt.Errorf("%w: %v", ErrRenderHTML, executeErr)
	}
	return nil
}

// RenderJSON writes the snapshot as indented JSON.
func RenderJSON(writer io.Writer, snapshot Snapshot) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", jsonIndent)
	encoder.SetEscapeHTML(false)
	if encodeErr := encoder.Encode(snapshot); encodeErr != nil {
		return fmt.Errorf("%w: %v", ErrRenderJSON, encodeErr)
	}
	return nil
}

func imageFromView(image preview.ImageView) Image {
	return Image{Visible: image.Visible, Source: image.Source}
}
