package page

import (
	"errors"
	"fmt"
)

const (
	errorMessageNilElement           = "page: nil element"
	errorMessageDuplicateElementID   = "page: duplicate element id"
	errorMessageDuplicateElementName = "page: duplicate element name"
	errorMessageDuplicateTemplate    = "page: duplicate template"
	errorMessageDuplicateContainer   = "page: duplicate container"
)

var (
	// ErrNilElement indicates a nil element was added to a document.
	ErrNilElement = errors.New(errorMessageNilElement)
	// ErrDuplicateElementID indicates an element id is already in use.
	ErrDuplicateElementID = errors.New(errorMessageDuplicateElementID)
	// ErrDuplicateElementName indicates an element name is already in use.
	ErrDuplicateElementName = errors.New(errorMessageDuplicateElementName)
	// ErrDuplicateTemplate indicates a template name is already registered.
	ErrDuplicateTemplate = errors.New(errorMessageDuplicateTemplate)
	// ErrDuplicateContainer indicates a container id is already registered.
	ErrDuplicateContainer = errors.New(errorMessageDuplicateContainer)
)

// Document is the in-memory page the panel renders into. It indexes elements
// by id and by form name; lookups never fail loudly.
type Document struct {
	elements   []*Element
	byID       map[string]*Element
	byName     map[string]*Element
	templates  map[string]Template
	containers map[string]*Container
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{
		byID:       make(map[string]*Element),
		byName:     make(map[string]*Element),
		templates:  make(map[string]Template),
		containers: make(map[string]*Container),
	}
}

// Add mounts elements in order. Nothing is mounted when any element conflicts.
func (document *Document) Add(elements ...*Element) error {
	pendingIDs := make(map[string]struct{}, len(elements))
	pendingNames := make(map[string]struct{}, len(elements))
	for _, element := range elements {
		if element == nil {
			return ErrNilElement
		}
		if element.id != "" {
			if _, taken := document.byID[element.id]; taken {
				return fmt.Errorf("%w: %s", ErrDuplicateElementID, element.id)
			}
			if _, taken := pendingIDs[element.id]; taken {
				return fmt.Errorf("%w: %s", ErrDuplicateElementID, element.id)
			}
			pendingIDs[element.id] = struct{}{}
		}
		if element.name != "" {
			if _, taken := document.byName[element.name]; taken {
				return fmt.Errorf("%w: %s", ErrDuplicateElementName, element.name)
			}
			if _, taken := pendingNames[element.name]; taken {
				return fmt.Errorf("%w: %s", ErrDuplicateElementName, element.name)
			}
			pendingNames[element.name] = struct{}{}
		}
	}

	for _, element := range elements {
		document.elements = append(document.elements, element)
		if element.id != "" {
			document.byID[element.id] = element
		}
		if element.name != "" {
			document.byName[element.name] = element
		}
	}
	return nil
}

// Remove detaches the element from the document.
func (document *Document) Remove(element *Element) {
	if element == nil {
		return
	}
	for index, candidate := range document.elements {
		if candidate == element {
			document.elements = append(document.elements[:index:index], document.elements[index+1:]...)
			break
		}
	}
	if document.byID[element.id] == element {
		delete(document.byID, element.id)
	}
	if document.byName[element.name] == element {
		delete(document.byName, element.name)
	}
}

// ElementByID looks up a mounted element by id.
func (document *Document) ElementByID(id string) (*Element, bool) {
	element, found := document.byID[id]
	return element, found
}

// ElementByName looks up a mounted form control by name.
func (document *Document) ElementByName(name string) (*Element, bool) {
	element, found := document.byName[name]
	return element, found
}

// ElementsByClass returns mounted elements carrying the class, in mount order.
func (document *Document) ElementsByClass(className string) []*Element {
	var matches []*Element
	for _, element := range document.elements {
		if element.HasClass(className) {
			matches = append(matches, element)
		}
	}
	return matches
}

// ElementsWithAttribute returns mounted elements carrying the attribute, in mount order.
func (document *Document) ElementsWithAttribute(attributeName string) []*Element {
	var matches []*Element
	for _, element := range document.elements {
		if element.HasAttribute(attributeName) {
			matches = append(matches, element)
		}
	}
	return matches
}

// Elements returns every mounted element in mount order.
func (document *Document) Elements() []*Element {
	return append([]*Element(nil), document.elements...)
}

// RegisterTemplate makes a row template available by name.
func (document *Document) RegisterTemplate(template Template) error {
	if _, taken := document.templates[template.Name]; taken {
		return fmt.Errorf("%w: %s", ErrDuplicateTemplate, template.Name)
	}
	document.templates[template.Name] = template
	return nil
}

// Template looks up a registered row template.
func (document *Document) Template(name string) (Template, bool) {
	template, found := document.templates[name]
	return template, found
}

// RegisterContainer creates an empty row container bound to this document.
func (document *Document) RegisterContainer(id string) (*Container, error) {
	if _, taken := document.containers[id]; taken {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateContainer, id)
	}
	container := &Container{id: id, document: document}
	document.containers[id] = container
	return container, nil
}

// Container looks up a registered row container.
func (document *Document) Container(id string) (*Container, bool) {
	container, found := document.containers[id]
	return container, found
}
