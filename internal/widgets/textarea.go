package widgets

import (
	"strconv"

	"github.com/MarkoPoloResearchLab/guildpanel/internal/page"
)

const (
	ExpandToggleClass        = "expand-toggle-btn"
	ExpandedClass            = "expanded"
	AttributeToggleTextarea  = "data-textarea"
	AttributeToggleWrapper   = "data-wrapper"
	expandToggleCollapsed    = "+"
	expandToggleExpanded     = "−"
	expandedHeightPadding    = 5
	expandedHeightUnitSuffix = "px"
)

// ExpandableTextareas grows a textarea to its content height when its toggle
// button is clicked and shrinks it back on the next click.
type ExpandableTextareas struct {
	document *page.Document
	attached map[*page.Element]struct{}
}

// NewExpandableTextareas creates the widget and attaches every toggle already on the page.
func NewExpandableTextareas(document *page.Document) *ExpandableTextareas {
	textareas := &ExpandableTextareas{
		document: document,
		attached: make(map[*page.Element]struct{}),
	}
	textareas.Scan()
	return textareas
}

// Scan attaches toggles added since the last scan and returns how many were attached.
func (textareas *ExpandableTextareas) Scan() int {
	attachedCount := 0
	for _, button := range textareas.document.ElementsByClass(ExpandToggleClass) {
		if _, known := textareas.attached[button]; known {
			continue
		}
		button := button
		textareas.attached[button] = struct{}{}
		button.Listen(page.EventClick, func(page.Event) {
			textareas.Toggle(button)
		})
		attachedCount++
	}
	return attachedCount
}

// Toggle flips the expanded state of the textarea the button controls. Buttons
// whose wrapper or textarea is missing do nothing.
func (textareas *ExpandableTextareas) Toggle(button *page.Element) {
	wrapperID, _ := button.Attribute(AttributeToggleWrapper)
	wrapper, wrapperFound := textareas.document.ElementByID(wrapperID)
	if !wrapperFound {
		return
	}
	textareaID, _ := button.Attribute(AttributeToggleTextarea)
	textarea, textareaFound := textareas.document.ElementByID(textareaID)
	if !textareaFound {
		return
	}

	if wrapper.ToggleClass(ExpandedClass) {
		button.SetText(expandToggleExpanded)
		textarea.SetStyle(page.StylePropertyHeight, strconv.Itoa(textarea.ScrollHeight()+expandedHeightPadding)+expandedHeightUnitSuffix)
		return
	}
	button.SetText(expandToggleCollapsed)
	textarea.SetStyle(page.StylePropertyHeight, "")
}
