package widgets

import "github.com/MarkoPoloResearchLab/guildpanel/internal/page"

const (
	AvailableRolesElementID = "available-roles"
	SelectedRolesElementID  = "selected-roles"
	AddRoleButtonElementID  = "add-role-btn"
	RemoveRoleButtonID      = "remove-role-btn"
)

// RoleSelector moves roles between the available and selected lists.
type RoleSelector struct {
	available *page.Element
	selected  *page.Element
}

// MountRoleSelector wires the buttons and double-click handlers of the dual
// list. It returns false when either list is missing; missing buttons only
// disable their own action.
func MountRoleSelector(document *page.Document) (*RoleSelector, bool) {
	available, availableFound := document.ElementByID(AvailableRolesElementID)
	selected, selectedFound := document.ElementByID(SelectedRolesElementID)
	if !availableFound || !selectedFound {
		return nil, false
	}

	selector := &RoleSelector{available: available, selected: selected}
	if addButton, found := document.ElementByID(AddRoleButtonElementID); found {
		addButton.Listen(page.EventClick, func(page.Event) { selector.Add() })
	}
	if removeButton, found := document.ElementByID(RemoveRoleButtonID); found {
		removeButton.Listen(page.EventClick, func(page.Event) { selector.Remove() })
	}
	available.Listen(page.EventDoubleClick, func(page.Event) { selector.Add() })
	selected.Listen(page.EventDoubleClick, func(page.Event) { selector.Remove() })
	return selector, true
}

// Add moves the highlighted available roles to the selected list.
func (selector *RoleSelector) Add() {
	moveSelectedOptions(selector.available, selector.selected)
}

// Remove moves the highlighted selected roles back to the available list.
func (selector *RoleSelector) Remove() {
	moveSelectedOptions(selector.selected, selector.available)
}

// PrepareSubmit marks every selected-list option so the whole list is submitted.
func (selector *RoleSelector) PrepareSubmit() {
	for _, option := range selector.selected.Options() {
		option.Selected = true
	}
}

// Highlight marks the options of the list whose values are given, the way a
// user would before clicking add or remove.
func Highlight(list *page.Element, values ...string) {
	wanted := make(map[string]struct{}, len(values))
	for _, value := range values {
		wanted[value] = struct{}{}
	}
	for _, option := range list.Options() {
		_, option.Selected = wanted[option.Value]
	}
}

func (selector *RoleSelector) Available() *page.Element { return selector.available }
func (selector *RoleSelector) Selected() *page.Element { return selector.selected }

func moveSelectedOptions(source *page.Element, destination *page.Element) {
	for _, option := range source.SelectedOptions() {
		source.RemoveOption(option)
		destination.AppendOption(option)
	}
}
