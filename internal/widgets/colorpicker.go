package widgets

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/MarkoPoloResearchLab/guildpanel/internal/page"
)

const (
	ColorPickerAttribute = "data-coloris"
	ColorThemeDark       = "dark"

	errorMessageColorControlNotAttached = "widgets: color control not attached"
	errorMessageInvalidColor            = "widgets: invalid color"
)

var (
	// ErrColorControlNotAttached indicates a pick on a control the picker does not manage.
	ErrColorControlNotAttached = errors.New(errorMessageColorControlNotAttached)
	// ErrInvalidColor indicates a picked value that is not a hex colour.
	ErrInvalidColor = errors.New(errorMessageInvalidColor)

	hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
)

// ColorPickerOptions configures the colour picker.
type ColorPickerOptions struct {
	ThemeMode string
	Alpha     bool
	Attribute string
}

// DefaultColorPickerOptions matches the panel's dark theme without alpha.
func DefaultColorPickerOptions() ColorPickerOptions {
	return ColorPickerOptions{ThemeMode: ColorThemeDark, Alpha: false, Attribute: ColorPickerAttribute}
}

// ColorPicker manages every control carrying the picker attribute.
type ColorPicker struct {
	document *page.Document
	options  ColorPickerOptions
	attached map[*page.Element]struct{}
	controls []*page.Element
}

// NewColorPicker attaches the picker to the controls already on the page.
func NewColorPicker(document *page.Document, options ColorPickerOptions) *ColorPicker {
	if options.Attribute == "" {
		options.Attribute = ColorPickerAttribute
	}
	picker := &ColorPicker{
		document: document,
		options:  options,
		attached: make(map[*page.Element]struct{}),
	}
	picker.Refresh()
	return picker
}

// Refresh attaches controls added since the last refresh and drops detached ones.
func (picker *ColorPicker) Refresh() {
	mounted := picker.document.ElementsWithAttribute(picker.options.Attribute)
	mountedSet := make(map[*page.Element]struct{}, len(mounted))
	for _, control := range mounted {
		mountedSet[control] = struct{}{}
	}

	retained := picker.controls[:0]
	for _, control := range picker.controls {
		if _, stillMounted := mountedSet[control]; stillMounted {
			retained = append(retained, control)
			continue
		}
		delete(picker.attached, control)
	}
	picker.controls = retained

	for _, control := range mounted {
		if _, known := picker.attached[control]; known {
			continue
		}
		picker.attached[control] = struct{}{}
		picker.controls = append(picker.controls, control)
	}
}

// Pick commits a colour to an attached control, dispatching input then change.
func (picker *ColorPicker) Pick(control *page.Element, color string) error {
	if _, known := picker.attached[control]; !known {
		return ErrColorControlNotAttached
	}
	normalized, normalizeErr := picker.normalize(color)
	if normalizeErr != nil {
		return normalizeErr
	}
	control.Commit(normalized)
	return nil
}

// Controls returns the attached controls in attachment order.
func (picker *ColorPicker) Controls() []*page.Element {
	return append([]*page.Element(nil), picker.controls...)
}

func (picker *ColorPicker) Options() ColorPickerOptions {
	return picker.options
}

func (picker *ColorPicker) normalize(color string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(color))
	if trimmed == "" {
		return "", nil
	}
	if !hexColorPattern.MatchString(trimmed) {
		return "", fmt.Errorf("%w: %s", ErrInvalidColor, color)
	}
	if !picker.options.Alpha && len(trimmed) == 9 {
		trimmed = trimmed[:7]
	}
	return trimmed, nil
}
