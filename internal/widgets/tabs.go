// Package widgets implements the small interactive controls of the guild
// configuration panel on top of the in-memory page document.
package widgets

import (
	"strings"

	"github.com/MarkoPoloResearchLab/guildpanel/internal/page"
)

const (
	TabContainerElementID = "configTabs"
	TabLinkClass          = "nav-link"
	TabPaneClass          = "tab-pane"
	ActiveClass           = "active"

	elementIDSelectorPrefix = "#"
)

// Tabs switches the active navigation link and content pane.
type Tabs struct {
	document *page.Document
	links    []*page.Element
	panes    []*page.Element
}

// MountTabs wires click handling for every tab link. It returns false when
// the page has no tab container.
func MountTabs(document *page.Document) (*Tabs, bool) {
	if _, found := document.ElementByID(TabContainerElementID); !found {
		return nil, false
	}

	tabs := &Tabs{
		document: document,
		links:    document.ElementsByClass(TabLinkClass),
		panes:    document.ElementsByClass(TabPaneClass),
	}
	for _, link := range tabs.links {
		link := link
		link.Listen(page.EventClick, func(page.Event) {
			tabs.Activate(link)
		})
	}
	return tabs, true
}

// Activate marks the link and its target pane active and deactivates the rest.
// A link with an unknown target still becomes the active link.
func (tabs *Tabs) Activate(link *page.Element) {
	for _, candidate := range tabs.links {
		candidate.RemoveClass(ActiveClass)
	}
	link.AddClass(ActiveClass)

	for _, pane := range tabs.panes {
		pane.RemoveClass(ActiveClass)
	}
	target, hasTarget := link.Attribute(page.AttributeDataTarget)
	if !hasTarget {
		return
	}
	targetPane, found := tabs.document.ElementByID(strings.TrimPrefix(target, elementIDSelectorPrefix))
	if !found {
		return
	}
	targetPane.AddClass(ActiveClass)
}

// ActivateTarget clicks the link whose data-target matches and reports whether one did.
func (tabs *Tabs) ActivateTarget(target string) bool {
	for _, link := range tabs.links {
		linkTarget, _ := link.Attribute(page.AttributeDataTarget)
		if linkTarget == target {
			link.Dispatch(page.EventClick)
			return true
		}
	}
	return false
}

// ActivePane returns the id of the active pane, or "" when none is active.
func (tabs *Tabs) ActivePane() string {
	for _, pane := range tabs.panes {
		if pane.HasClass(ActiveClass) {
			return pane.ID()
		}
	}
	return ""
}
