// Package panel assembles the guild configuration page: it mounts the live
// embed previews, the interactive widgets and the repeatable rows onto a
// document and collects the form submission.
package panel

import (
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/MarkoPoloResearchLab/guildpanel/internal/page"
	"github.com/MarkoPoloResearchLab/guildpanel/internal/preview"
	"github.com/MarkoPoloResearchLab/guildpanel/internal/widgets"
)

const (
	errorMessageNilDocument      = "panel: document is required"
	errorMessageUnknownRowKind   = "panel: unknown row kind"
	errorMessageUnknownRowField  = "panel: unknown row field"
	errorMessageUnknownRow       = "panel: unknown row"
	errorMessageMissingTemplate  = "panel: row template not mounted"
	errorMessageMissingContainer = "panel: row container not mounted"
	errorMessageUnknownField     = "panel: unknown field"

	logEventGroupMounted = "preview_group_mounted"
	logEventGroupInert   = "preview_group_inert"
	logEventRowCreated   = "panel_row_created"
	logEventRowRemoved   = "panel_row_removed"
	logEventWidgetAbsent = "panel_widget_absent"
	logEventSubmitted    = "panel_submitted"

	logFieldGroup     = "group"
	logFieldRowKind   = "row_kind"
	logFieldRowID     = "row_id"
	logFieldWidget    = "widget"
	logFieldTemplate  = "template"
	logFieldContainer = "container"
	logFieldValues    = "values"

	widgetTabs         = "tabs"
	widgetRoleSelector = "role_selector"
	widgetNavigation   = "navigation"
	widgetConfigForm   = "config_form"

	tagButton = "button"
	tagSelect = "select"
)

var (
	// ErrNilDocument indicates the panel was created without a document.
	ErrNilDocument = errors.New(errorMessageNilDocument)
	// ErrUnknownRowKind indicates a row kind outside RowKinds.
	ErrUnknownRowKind = errors.New(errorMessageUnknownRowKind)
	// ErrUnknownRowField indicates a field key the row kind does not define.
	ErrUnknownRowField = errors.New(errorMessageUnknownRowField)
	// ErrUnknownRow indicates a row id that is not mounted.
	ErrUnknownRow = errors.New(errorMessageUnknownRow)
	// ErrMissingTemplate indicates the row kind's template is absent from the page.
	ErrMissingTemplate = errors.New(errorMessageMissingTemplate)
	// ErrMissingContainer indicates the row kind's container is absent from the page.
	ErrMissingContainer = errors.New(errorMessageMissingContainer)
	// ErrUnknownField indicates a top-level control name absent from the page.
	ErrUnknownField = errors.New(errorMessageUnknownField)
)

// Options configures a Panel.
type Options struct {
	Logger      *zap.Logger
	Transformer *preview.Transformer
	Path        string
	GuildID     string
}

// Card is the rendered state of one preview card.
type Card struct {
	Group       string
	Label       string
	Title       string
	Description string
	Footer      string
	Thumbnail   preview.ImageView
	Image       preview.ImageView
	BorderColor string
}

// Panel owns the widgets and preview binders mounted on one document.
type Panel struct {
	document      *page.Document
	logger        *zap.Logger
	transformer   *preview.Transformer
	locator       documentLocator
	groups        []GroupDefinition
	binders       map[string]*preview.Binder
	rows          []*RowHandle
	tabs          *widgets.Tabs
	roleSelector  *widgets.RoleSelector
	textareas     *widgets.ExpandableTextareas
	colorPicker   *widgets.ColorPicker
	activeSidebar *page.Element
}

// New mounts every widget and static preview group the document supports.
// Pieces whose elements are absent stay inert and are logged at debug level.
func New(document *page.Document, options Options) (*Panel, error) {
	if document == nil {
		return nil, ErrNilDocument
	}
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	transformer := options.Transformer
	if transformer == nil {
		transformer = preview.NewTransformer()
	}

	panel := &Panel{
		document:    document,
		logger:      logger,
		transformer: transformer,
		locator:     documentLocator{document: document},
		binders:     make(map[string]*preview.Binder),
	}

	for _, group := range StaticGroups() {
		if panel.mountGroup(group) {
			panel.groups = append(panel.groups, group)
		}
	}

	if tabs, mounted := widgets.MountTabs(document); mounted {
		panel.tabs = tabs
	} else {
		logger.Debug(logEventWidgetAbsent, zap.String(logFieldWidget, widgetTabs))
	}
	panel.textareas = widgets.NewExpandableTextareas(document)
	if roleSelector, mounted := widgets.MountRoleSelector(document); mounted {
		panel.roleSelector = roleSelector
	} else {
		logger.Debug(logEventWidgetAbsent, zap.String(logFieldWidget, widgetRoleSelector))
	}
	if form, found := document.ElementByID(ConfigFormElementID); found {
		form.Listen(page.EventSubmit, func(page.Event) {
			if panel.roleSelector != nil {
				panel.roleSelector.PrepareSubmit()
			}
		})
	} else {
		logger.Debug(logEventWidgetAbsent, zap.String(logFieldWidget, widgetConfigForm))
	}
	panel.colorPicker = widgets.NewColorPicker(document, widgets.DefaultColorPickerOptions())
	panel.activeSidebar = widgets.HighlightNavigation(document, options.Path, options.GuildID)
	if panel.activeSidebar == nil {
		logger.Debug(logEventWidgetAbsent, zap.String(logFieldWidget, widgetNavigation))
	}

	return panel, nil
}

func (panel *Panel) mountGroup(group GroupDefinition) bool {
	binder, mounted := preview.TryCreateBinder(group.Spec, panel.transformer, panel.locator)
	if !mounted {
		panel.logger.Debug(logEventGroupInert, zap.String(logFieldGroup, group.Spec.Name))
		return false
	}
	panel.binders[group.Spec.Name] = binder
	panel.logger.Debug(logEventGroupMounted, zap.String(logFieldGroup, group.Spec.Name))
	return true
}

func (panel *Panel) Document() *page.Document { return panel.document }
func (panel *Panel) Tabs() *widgets.Tabs { return panel.tabs }
func (panel *Panel) RoleSelector() *widgets.RoleSelector { return panel.roleSelector }
func (panel *Panel) ColorPicker() *widgets.ColorPicker { return panel.colorPicker }
func (panel *Panel) ActiveSidebarLink() *page.Element { return panel.activeSidebar }

// Binder returns the mounted binder of a static group.
func (panel *Panel) Binder(groupName string) (*preview.Binder, bool) {
	binder, found := panel.binders[groupName]
	return binder, found
}

// SetField types a value into a top-level control.
func (panel *Panel) SetField(fieldName string, value string) error {
	control, found := panel.document.ElementByName(fieldName)
	if !found {
		return fmt.Errorf("%w: %s", ErrUnknownField, fieldName)
	}
	control.SetValue(value)
	return nil
}

// CreateRow clones a row of the given kind into its container. Q&A rows get
// their own preview binder that already reflects the current accent color.
func (panel *Panel) CreateRow(kind RowKind) (*RowHandle, error) {
	definition, known := rowDefinitions[kind]
	if !known {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRowKind, kind)
	}
	template, found := panel.document.Template(definition.templateName)
	if !found {
		panel.logger.Warn(logEventWidgetAbsent, zap.String(logFieldTemplate, definition.templateName))
		return nil, fmt.Errorf("%w: %s", ErrMissingTemplate, definition.templateName)
	}
	container, found := panel.document.Container(definition.containerID)
	if !found {
		panel.logger.Warn(logEventWidgetAbsent, zap.String(logFieldContainer, definition.containerID))
		return nil, fmt.Errorf("%w: %s", ErrMissingContainer, definition.containerID)
	}

	fragment, appendErr := container.Append(template)
	if appendErr != nil {
		return nil, appendErr
	}
	handle := &RowHandle{definition: definition, fragment: fragment, document: panel.document}

	if definition.previewGroup != nil {
		group := definition.previewGroup(fragment.RowID)
		handle.group = &group
		if binder, mounted := preview.TryCreateBinder(group.Spec, panel.transformer, panel.locator); mounted {
			handle.binder = binder
		} else {
			panel.logger.Debug(logEventGroupInert, zap.String(logFieldGroup, group.Spec.Name))
		}
	}
	if removeButton, hasButton := handle.RemoveButton(); hasButton {
		rowID := fragment.RowID
		removeButton.Listen(page.EventClick, func(page.Event) {
			_ = panel.RemoveRow(rowID)
		})
	}
	panel.textareas.Scan()
	if definition.refreshColorPicker {
		panel.colorPicker.Refresh()
	}

	panel.rows = append(panel.rows, handle)
	panel.logger.Info(logEventRowCreated, zap.String(logFieldRowKind, string(kind)), zap.String(logFieldRowID, fragment.RowID))
	return handle, nil
}

// RemoveRow detaches a row, its listeners and its preview binder.
func (panel *Panel) RemoveRow(rowID string) error {
	for index, handle := range panel.rows {
		if handle.ID() != rowID {
			continue
		}
		if handle.binder != nil {
			handle.binder.Close()
		}
		if container, found := panel.document.Container(handle.definition.containerID); found {
			container.Remove(rowID)
		}
		panel.rows = append(panel.rows[:index:index], panel.rows[index+1:]...)
		if handle.definition.refreshColorPicker {
			panel.colorPicker.Refresh()
		}
		panel.logger.Info(logEventRowRemoved, zap.String(logFieldRowKind, string(handle.definition.kind)), zap.String(logFieldRowID, rowID))
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownRow, rowID)
}

// Rows returns the mounted rows of a kind in creation order.
func (panel *Panel) Rows(kind RowKind) []*RowHandle {
	var handles []*RowHandle
	for _, handle := range panel.rows {
		if handle.definition.kind == kind {
			handles = append(handles, handle)
		}
	}
	return handles
}

// Cards returns the current state of every mounted preview card: static
// groups first, then Q&A rows in creation order.
func (panel *Panel) Cards() []Card {
	cards := make([]Card, 0, len(panel.groups))
	for _, group := range panel.groups {
		cards = append(cards, cardFromView(group, panel.binders[group.Spec.Name].View()))
	}
	for _, handle := range panel.rows {
		if handle.binder == nil || handle.group == nil {
			continue
		}
		cards = append(cards, cardFromView(*handle.group, handle.binder.View()))
	}
	return cards
}

// Submission dispatches the form submit event and collects every named control
// the way a browser would encode the form.
func (panel *Panel) Submission() url.Values {
	if form, found := panel.document.ElementByID(ConfigFormElementID); found {
		form.Dispatch(page.EventSubmit)
	}

	values := url.Values{}
	for _, element := range panel.document.Elements() {
		if element.Name() == "" {
			continue
		}
		switch element.Tag() {
		case tagButton:
			continue
		case tagSelect:
			for _, option := range element.SelectedOptions() {
				values.Add(element.Name(), option.Value)
			}
		default:
			values.Add(element.Name(), element.Value())
		}
	}
	panel.logger.Info(logEventSubmitted, zap.Int(logFieldValues, len(values)))
	return values
}

func cardFromView(group GroupDefinition, view preview.View) Card {
	return Card{
		Group:       view.Group,
		Label:       group.Label,
		Title:       view.Texts[group.Layout.Title],
		Description: view.Texts[group.Layout.Description],
		Footer:      view.Texts[group.Layout.Footer],
		Thumbnail:   view.Images[group.Layout.Thumbnail],
		Image:       view.Images[group.Layout.Image],
		BorderColor: view.Borders[group.Layout.Root],
	}
}

// documentLocator resolves preview controls and regions against a document.
type documentLocator struct {
	document *page.Document
}

func (locator documentLocator) Control(name string) (preview.Control, bool) {
	element, found := locator.document.ElementByName(name)
	if !found {
		return nil, false
	}
	return element, true
}

func (locator documentLocator) Region(id string) (preview.Region, bool) {
	element, found := locator.document.ElementByID(id)
	if !found {
		return nil, false
	}
	return element, true
}
