package widgets

import (
	"strings"

	"github.com/MarkoPoloResearchLab/guildpanel/internal/page"
)

const (
	SidebarLinkClass = "sidebar-nav-link"

	placeholderHref     = "#"
	guildConfigPathStem = "/edit/"
	memberPathMarker    = "/member/"
	historyPathMarker   = "/history"
	memberHrefMarker    = "member"
	historyHrefMarker   = "history"
)

// HighlightNavigation marks the sidebar link matching the current path active
// and returns it, or nil when no link matched.
func HighlightNavigation(document *page.Document, currentPath string, guildID string) *page.Element {
	links := document.ElementsByClass(SidebarLinkClass)
	var activeLink *page.Element

	for _, link := range links {
		href, _ := link.Attribute(page.AttributeHref)
		if href == "" || href == placeholderHref || !strings.Contains(currentPath, href) {
			continue
		}
		activateOnly(links, link)
		activeLink = link
	}

	if guildID == "" {
		return activeLink
	}
	configPath := guildConfigPathStem + guildID
	if !strings.Contains(currentPath, configPath) || strings.Contains(currentPath, memberPathMarker) || strings.Contains(currentPath, historyPathMarker) {
		return activeLink
	}
	for _, link := range links {
		href, _ := link.Attribute(page.AttributeHref)
		if !strings.Contains(href, configPath) {
			continue
		}
		if strings.Contains(href, memberHrefMarker) || strings.Contains(href, historyHrefMarker) {
			return activeLink
		}
		activateOnly(links, link)
		return link
	}
	return activeLink
}

func activateOnly(links []*page.Element, active *page.Element) {
	for _, link := range links {
		link.RemoveClass(ActiveClass)
	}
	active.AddClass(ActiveClass)
}
