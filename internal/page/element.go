package page

import (
	"sort"
	"strings"
)

// EventType names an event dispatched to element listeners.
type EventType string

const (
	EventInput       EventType = "input"
	EventChange      EventType = "change"
	EventClick       EventType = "click"
	EventDoubleClick EventType = "dblclick"
	EventSubmit      EventType = "submit"
)

const (
	StylePropertyDisplay     = "display"
	StylePropertyBorderColor = "border-color"
	StylePropertyHeight      = "height"
	AttributeSource          = "src"
	AttributeHref            = "href"
	AttributeDataTarget      = "data-target"
)

// Event describes a dispatched event and the element it was dispatched on.
type Event struct {
	Type   EventType
	Target *Element
}

// Listener handles an event.
type Listener func(Event)

type listenerEntry struct {
	listener Listener
	active   bool
}

// Option is a single entry of a select element.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// ElementSpec holds the raw values used to construct an Element.
type ElementSpec struct {
	Tag          string
	ID           string
	Name         string
	Classes      []string
	Attributes   map[string]string
	Value        string
	Text         string
	Options      []Option
	ScrollHeight int
}

// Element is a node of the in-memory document: a form control, a display
// region, or a navigation element.
type Element struct {
	tag          string
	id           string
	name         string
	classes      map[string]struct{}
	attributes   map[string]string
	style        map[string]string
	value        string
	innerHTML    string
	text         string
	options      []*Option
	scrollHeight int
	listeners    map[EventType][]*listenerEntry
}

// NewElement constructs an Element with normalized identifiers.
func NewElement(spec ElementSpec) *Element {
	element := &Element{
		tag:          strings.ToLower(strings.TrimSpace(spec.Tag)),
		id:           strings.TrimSpace(spec.ID),
		name:         strings.TrimSpace(spec.Name),
		classes:      make(map[string]struct{}, len(spec.Classes)),
		attributes:   make(map[string]string, len(spec.Attributes)),
		style:        make(map[string]string),
		value:        spec.Value,
		text:         spec.Text,
		scrollHeight: spec.ScrollHeight,
		listeners:    make(map[EventType][]*listenerEntry),
	}
	for _, className := range spec.Classes {
		element.AddClass(className)
	}
	for attributeName, attributeValue := range spec.Attributes {
		element.attributes[attributeName] = attributeValue
	}
	for _, option := range spec.Options {
		optionCopy := option
		element.options = append(element.options, &optionCopy)
	}
	return element
}

func (element *Element) Tag() string { return element.tag }
func (element *Element) ID() string { return element.id }
func (element *Element) Name() string { return element.name }

// Value returns the current control value.
func (element *Element) Value() string {
	return element.value
}

// SetValue stores a new value and dispatches an input event, as a keystroke would.
func (element *Element) SetValue(value string) {
	element.value = value
	element.Dispatch(EventInput)
}

// Commit stores a new value and dispatches input followed by change, as a
// picker or select would when the user confirms a choice.
func (element *Element) Commit(value string) {
	element.value = value
	element.Dispatch(EventInput)
	element.Dispatch(EventChange)
}

// Listen registers a listener for the event type and returns a func that
// detaches it.
func (element *Element) Listen(eventType EventType, listener Listener) func() {
	entry := &listenerEntry{listener: listener, active: true}
	element.listeners[eventType] = append(element.listeners[eventType], entry)
	return func() {
		entry.active = false
		entries := element.listeners[eventType]
		for index, candidate := range entries {
			if candidate == entry {
				element.listeners[eventType] = append(entries[:index:index], entries[index+1:]...)
				return
			}
		}
	}
}

// OnInput registers a callback for input events.
func (element *Element) OnInput(callback func()) func() {
	return element.Listen(EventInput, func(Event) {
		callback()
	})
}

// Dispatch synchronously invokes every listener registered for the event type,
// in registration order. Listeners detached during dispatch are skipped.
func (element *Element) Dispatch(eventType EventType) {
	entries := append([]*listenerEntry(nil), element.listeners[eventType]...)
	event := Event{Type: eventType, Target: element}
	for _, entry := range entries {
		if !entry.active {
			continue
		}
		entry.listener(event)
	}
}

// ListenerCount reports how many listeners are attached for the event type.
func (element *Element) ListenerCount(eventType EventType) int {
	return len(element.listeners[eventType])
}

func (element *Element) InnerHTML() string {
	return element.innerHTML
}

func (element *Element) SetInnerHTML(markup string) {
	element.innerHTML = markup
}

func (element *Element) Text() string {
	return element.text
}

func (element *Element) SetText(text string) {
	element.text = text
}

// Style returns an inline style property, or "" when unset.
func (element *Element) Style(property string) string {
	return element.style[property]
}

// SetStyle sets an inline style property; an empty value removes it.
func (element *Element) SetStyle(property string, value string) {
	if value == "" {
		delete(element.style, property)
		return
	}
	element.style[property] = value
}

func (element *Element) Attribute(name string) (string, bool) {
	value, found := element.attributes[name]
	return value, found
}

func (element *Element) SetAttribute(name string, value string) {
	element.attributes[name] = value
}

func (element *Element) HasAttribute(name string) bool {
	_, found := element.attributes[name]
	return found
}

func (element *Element) HasClass(className string) bool {
	_, found := element.classes[className]
	return found
}

func (element *Element) AddClass(className string) {
	trimmed := strings.TrimSpace(className)
	if trimmed == "" {
		return
	}
	element.classes[trimmed] = struct{}{}
}

func (element *Element) RemoveClass(className string) {
	delete(element.classes, className)
}

// ToggleClass flips the class and reports whether it is now present.
func (element *Element) ToggleClass(className string) bool {
	if element.HasClass(className) {
		element.RemoveClass(className)
		return false
	}
	element.AddClass(className)
	return true
}

// Classes returns the element classes in sorted order.
func (element *Element) Classes() []string {
	classNames := make([]string, 0, len(element.classes))
	for className := range element.classes {
		classNames = append(classNames, className)
	}
	sort.Strings(classNames)
	return classNames
}

// Options returns the live option list of a select element.
func (element *Element) Options() []*Option {
	return append([]*Option(nil), element.options...)
}

// SelectedOptions returns the options currently marked selected, in list order.
func (element *Element) SelectedOptions() []*Option {
	var selected []*Option
	for _, option := range element.options {
		if option.Selected {
			selected = append(selected, option)
		}
	}
	return selected
}

// AppendOption moves an option to the end of this element's list.
func (element *Element) AppendOption(option *Option) {
	element.options = append(element.options, option)
}

// RemoveOption detaches the option and reports whether it was present.
func (element *Element) RemoveOption(option *Option) bool {
	for index, candidate := range element.options {
		if candidate == option {
			element.options = append(element.options[:index:index], element.options[index+1:]...)
			return true
		}
	}
	return false
}

func (element *Element) ScrollHeight() int {
	return element.scrollHeight
}

func (element *Element) SetScrollHeight(height int) {
	element.scrollHeight = height
}
