package panel

import (
	"fmt"
	"strings"

	"github.com/MarkoPoloResearchLab/guildpanel/internal/page"
	"github.com/MarkoPoloResearchLab/guildpanel/internal/preview"
	"github.com/MarkoPoloResearchLab/guildpanel/internal/widgets"
)

const (
	ConfigFormElementID = "config-form"

	embedCardClass          = "discord-embed"
	embedTitleClass         = "discord-embed-title"
	embedDescriptionClass   = "discord-embed-description"
	embedFooterClass        = "discord-embed-footer"
	embedThumbnailClass     = "discord-embed-thumbnail"
	embedImageClass         = "discord-embed-image"
	textareaWrapperClass    = "textarea-wrapper"
	textareaWrapperSuffix   = "-wrapper"
	textareaToggleSuffix    = "-toggle"
	defaultTextareaHeight   = 96
	sidebarLinkIDTemplate   = "nav-%s"
	tabLinkIDTemplate       = "tab-link-%s"
	tabPaneIDTemplate       = "tab-%s"
	tabTargetTemplate       = "#tab-%s"
	guildPathTemplate       = "/edit/%s"
	memberPathTemplate      = "/edit/%s/member/"
	historyPathTemplate     = "/edit/%s/history"
	serversPath             = "/"
	placeholderHref         = "#"
	fieldElementIDSeparator = "-"
)

// Tab names of the configuration page, in display order.
const (
	TabGeneral  = "general"
	TabShop     = "shop"
	TabMessages = "messages"
	TabQnA      = "qna"
)

// TabTarget returns the data-target a tab link of the named tab carries.
func TabTarget(tabName string) string {
	return fmt.Sprintf(tabTargetTemplate, tabName)
}

// LayoutOptions parameterizes the standard configuration page.
type LayoutOptions struct {
	GuildID        string
	AvailableRoles []page.Option
	SelectedRoles  []page.Option
}

type fieldSpec struct {
	name     string
	textarea bool
	color    bool
}

var layoutFields = []fieldSpec{
	{name: FieldShopChannelID},
	{name: FieldLeaderboardThreadID},
	{name: FieldEmbedColor, color: true},
	{name: FieldShopTitle},
	{name: FieldShopDescription, textarea: true},
	{name: FieldShopThumbnailURL},
	{name: FieldShopImageURL},
	{name: FieldShopFooter},
	{name: FieldAccountTitle},
	{name: FieldAccountDescription, textarea: true},
	{name: FieldAccountThumbnailURL},
	{name: FieldAccountFooter},
	{name: FieldRatesTitle},
	{name: FieldRatesMessageSection, textarea: true},
	{name: FieldRatesVoiceSection, textarea: true},
	{name: FieldRatesFooter},
	{name: FieldLeaderboardTitle},
	{name: FieldLeaderboardBody, textarea: true},
	{name: FieldLeaderboardImageURL},
	{name: FieldLeaderboardFooter},
}

// BuildDocument assembles the configuration page: sidebar, tabs, form
// controls, role lists, preview cards, row templates and row containers.
func BuildDocument(options LayoutOptions) (*page.Document, error) {
	document := page.NewDocument()

	var specs []page.ElementSpec
	specs = append(specs, sidebarSpecs(options.GuildID)...)
	specs = append(specs, tabSpecs()...)
	specs = append(specs, page.ElementSpec{Tag: "form", ID: ConfigFormElementID})
	for _, field := range layoutFields {
		specs = append(specs, field.elementSpecs()...)
	}
	specs = append(specs,
		page.ElementSpec{Tag: "select", ID: widgets.AvailableRolesElementID, Options: options.AvailableRoles},
		page.ElementSpec{Tag: "select", ID: widgets.SelectedRolesElementID, Name: FieldSelectedRoles, Options: options.SelectedRoles},
		page.ElementSpec{Tag: "button", ID: widgets.AddRoleButtonElementID, Text: "→"},
		page.ElementSpec{Tag: "button", ID: widgets.RemoveRoleButtonID, Text: "←"},
	)
	for _, group := range StaticGroups() {
		specs = append(specs, previewRegionSpecs(group.Layout)...)
	}

	elements := make([]*page.Element, 0, len(specs))
	for _, spec := range specs {
		elements = append(elements, page.NewElement(spec))
	}
	if addErr := document.Add(elements...); addErr != nil {
		return nil, fmt.Errorf("build page: %w", addErr)
	}

	for _, kind := range RowKinds() {
		definition := rowDefinitions[kind]
		if registerErr := document.RegisterTemplate(RowTemplate(kind)); registerErr != nil {
			return nil, fmt.Errorf("build page: %w", registerErr)
		}
		if _, registerErr := document.RegisterContainer(definition.containerID); registerErr != nil {
			return nil, fmt.Errorf("build page: %w", registerErr)
		}
	}
	return document, nil
}

// FieldNames returns the top-level control names of the standard page in form order.
func FieldNames() []string {
	names := make([]string, 0, len(layoutFields))
	for _, field := range layoutFields {
		names = append(names, field.name)
	}
	return names
}

// FieldElementID derives the element id of a top-level form control.
func FieldElementID(fieldName string) string {
	replacer := strings.NewReplacer("[", fieldElementIDSeparator, "]", "", "_", fieldElementIDSeparator)
	return strings.ToLower(replacer.Replace(fieldName))
}

func (field fieldSpec) elementSpecs() []page.ElementSpec {
	elementID := FieldElementID(field.name)
	switch {
	case field.textarea:
		return textareaSpecs(elementID, field.name)
	case field.color:
		return []page.ElementSpec{{
			Tag:        "input",
			ID:         elementID,
			Name:       field.name,
			Value:      preview.DefaultAccentColor,
			Attributes: map[string]string{widgets.ColorPickerAttribute: ""},
		}}
	default:
		return []page.ElementSpec{{Tag: "input", ID: elementID, Name: field.name}}
	}
}

// textareaSpecs returns a wrapped textarea with its expand toggle.
func textareaSpecs(elementID string, fieldName string) []page.ElementSpec {
	wrapperID := elementID + textareaWrapperSuffix
	return []page.ElementSpec{
		{Tag: "div", ID: wrapperID, Classes: []string{textareaWrapperClass}},
		{Tag: "textarea", ID: elementID, Name: fieldName, ScrollHeight: defaultTextareaHeight},
		{
			Tag:     "button",
			ID:      elementID + textareaToggleSuffix,
			Text:    "+",
			Classes: []string{widgets.ExpandToggleClass},
			Attributes: map[string]string{
				widgets.AttributeToggleWrapper:  wrapperID,
				widgets.AttributeToggleTextarea: elementID,
			},
		},
	}
}

// previewRegionSpecs returns the card root and every region the layout names.
func previewRegionSpecs(layout EmbedLayout) []page.ElementSpec {
	specs := []page.ElementSpec{{Tag: "div", ID: layout.Root, Classes: []string{embedCardClass}}}
	for _, region := range []struct {
		id    string
		tag   string
		class string
	}{
		{layout.Title, "div", embedTitleClass},
		{layout.Description, "div", embedDescriptionClass},
		{layout.Footer, "div", embedFooterClass},
		{layout.Thumbnail, "img", embedThumbnailClass},
		{layout.Image, "img", embedImageClass},
	} {
		if region.id == "" {
			continue
		}
		specs = append(specs, page.ElementSpec{Tag: region.tag, ID: region.id, Classes: []string{region.class}})
	}
	return specs
}

func sidebarSpecs(guildID string) []page.ElementSpec {
	links := []struct {
		key  string
		text string
		href string
	}{
		{"servers", "Servers", serversPath},
		{"config", "Configuration", fmt.Sprintf(guildPathTemplate, guildID)},
		{"members", "Members", fmt.Sprintf(memberPathTemplate, guildID)},
		{"history", "History", fmt.Sprintf(historyPathTemplate, guildID)},
		{"docs", "Documentation", placeholderHref},
	}
	specs := make([]page.ElementSpec, 0, len(links))
	for _, link := range links {
		specs = append(specs, page.ElementSpec{
			Tag:        "a",
			ID:         fmt.Sprintf(sidebarLinkIDTemplate, link.key),
			Text:       link.text,
			Classes:    []string{widgets.SidebarLinkClass},
			Attributes: map[string]string{page.AttributeHref: link.href},
		})
	}
	return specs
}

func tabSpecs() []page.ElementSpec {
	specs := []page.ElementSpec{{Tag: "ul", ID: widgets.TabContainerElementID}}
	for index, tabName := range []string{TabGeneral, TabShop, TabMessages, TabQnA} {
		linkClasses := []string{widgets.TabLinkClass}
		paneClasses := []string{widgets.TabPaneClass}
		if index == 0 {
			linkClasses = append(linkClasses, widgets.ActiveClass)
			paneClasses = append(paneClasses, widgets.ActiveClass)
		}
		specs = append(specs,
			page.ElementSpec{
				Tag:        "a",
				ID:         fmt.Sprintf(tabLinkIDTemplate, tabName),
				Classes:    linkClasses,
				Attributes: map[string]string{page.AttributeDataTarget: TabTarget(tabName)},
			},
			page.ElementSpec{Tag: "div", ID: fmt.Sprintf(tabPaneIDTemplate, tabName), Classes: paneClasses},
		)
	}
	return specs
}
