package page

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// RowPlaceholder is replaced with the row id in every id, name and attribute
// value of a template when it is cloned.
const RowPlaceholder = "{row}"

// Template is a named prototype for a repeated group of elements.
type Template struct {
	Name     string
	Elements []ElementSpec
}

// Fragment is one cloned template instance.
type Fragment struct {
	RowID    string
	Elements []*Element
}

// Clone instantiates the template for the row id.
func (template Template) Clone(rowID string) Fragment {
	elements := make([]*Element, 0, len(template.Elements))
	for _, spec := range template.Elements {
		elements = append(elements, NewElement(expandElementSpec(spec, rowID)))
	}
	return Fragment{RowID: rowID, Elements: elements}
}

// Element returns the cloned element whose id matches the template id pattern.
func (fragment Fragment) Element(idPattern string) (*Element, bool) {
	expectedID := ExpandRowPattern(idPattern, fragment.RowID)
	for _, element := range fragment.Elements {
		if element.ID() == expectedID {
			return element, true
		}
	}
	return nil, false
}

// ExpandRowPattern substitutes the row id into a template pattern.
func ExpandRowPattern(pattern string, rowID string) string {
	return strings.ReplaceAll(pattern, RowPlaceholder, rowID)
}

func expandElementSpec(spec ElementSpec, rowID string) ElementSpec {
	expanded := spec
	expanded.ID = ExpandRowPattern(spec.ID, rowID)
	expanded.Name = ExpandRowPattern(spec.Name, rowID)
	if spec.Attributes != nil {
		expanded.Attributes = make(map[string]string, len(spec.Attributes))
		for attributeName, attributeValue := range spec.Attributes {
			expanded.Attributes[attributeName] = ExpandRowPattern(attributeValue, rowID)
		}
	}
	expanded.Classes = append([]string(nil), spec.Classes...)
	expanded.Options = append([]Option(nil), spec.Options...)
	return expanded
}

// Container holds the ordered rows cloned into one region of the document.
type Container struct {
	id       string
	document *Document
	rows     []Fragment
}

func (container *Container) ID() string {
	return container.id
}

// Append clones the template under a fresh row id and mounts it after the
// existing rows.
func (container *Container) Append(template Template) (Fragment, error) {
	fragment := template.Clone(uuid.NewString())
	if addErr := container.document.Add(fragment.Elements...); addErr != nil {
		return Fragment{}, fmt.Errorf("append %s row: %w", template.Name, addErr)
	}
	container.rows = append(container.rows, fragment)
	return fragment, nil
}

// Remove detaches the row and its elements; it reports whether the row existed.
func (container *Container) Remove(rowID string) bool {
	for index, fragment := range container.rows {
		if fragment.RowID != rowID {
			continue
		}
		for _, element := range fragment.Elements {
			container.document.Remove(element)
		}
		container.rows = append(container.rows[:index:index], container.rows[index+1:]...)
		return true
	}
	return false
}

// Rows returns the mounted rows in order.
func (container *Container) Rows() []Fragment {
	return append([]Fragment(nil), container.rows...)
}

func (container *Container) Len() int {
	return len(container.rows)
}
