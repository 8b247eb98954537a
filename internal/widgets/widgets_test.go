package widgets_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MarkoPoloResearchLab/guildpanel/internal/page"
	"github.com/MarkoPoloResearchLab/guildpanel/internal/widgets"
)

const (
	testGuildID = "42"
)

func mustAdd(testingT *testing.T, document *page.Document, specs ...page.ElementSpec) []*page.Element {
	testingT.Helper()
	elements := make([]*page.Element, 0, len(specs))
	for _, spec := range specs {
		elements = append(elements, page.NewElement(spec))
	}
	require.NoError(testingT, document.Add(elements...))
	return elements
}

func TestTabsActivateTargetPane(testingT *testing.T) {
	document := page.NewDocument()
	elements := mustAdd(testingT, document,
		page.ElementSpec{Tag: "ul", ID: widgets.TabContainerElementID},
		page.ElementSpec{Tag: "a", ID: "link-general", Classes: []string{widgets.TabLinkClass, widgets.ActiveClass}, Attributes: map[string]string{page.AttributeDataTarget: "#tab-general"}},
		page.ElementSpec{Tag: "a", ID: "link-shop", Classes: []string{widgets.TabLinkClass}, Attributes: map[string]string{page.AttributeDataTarget: "#tab-shop"}},
		page.ElementSpec{Tag: "a", ID: "link-broken", Classes: []string{widgets.TabLinkClass}, Attributes: map[string]string{page.AttributeDataTarget: "#tab-missing"}},
		page.ElementSpec{Tag: "div", ID: "tab-general", Classes: []string{widgets.TabPaneClass, widgets.ActiveClass}},
		page.ElementSpec{Tag: "div", ID: "tab-shop", Classes: []string{widgets.TabPaneClass}},
	)
	generalLink, shopLink, brokenLink := elements[1], elements[2], elements[3]

	tabs, mounted := widgets.MountTabs(document)
	require.True(testingT, mounted)

	shopLink.Dispatch(page.EventClick)
	require.True(testingT, shopLink.HasClass(widgets.ActiveClass))
	require.False(testingT, generalLink.HasClass(widgets.ActiveClass))
	require.Equal(testingT, "tab-shop", tabs.ActivePane())

	brokenLink.Dispatch(page.EventClick)
	require.True(testingT, brokenLink.HasClass(widgets.ActiveClass))
	require.Empty(testingT, tabs.ActivePane())

	require.True(testingT, tabs.ActivateTarget("#tab-general"))
	require.Equal(testingT, "tab-general", tabs.ActivePane())
	require.False(testingT, tabs.ActivateTarget("#nowhere"))
}

func TestMountTabsWithoutContainerIsInert(testingT *testing.T) {
	tabs, mounted := widgets.MountTabs(page.NewDocument())
	require.False(testingT, mounted)
	require.Nil(testingT, tabs)
}

func TestExpandableTextareaToggle(testingT *testing.T) {
	document := page.NewDocument()
	elements := mustAdd(testingT, document,
		page.ElementSpec{Tag: "div", ID: "description-wrapper"},
		page.ElementSpec{Tag: "textarea", ID: "description", ScrollHeight: 120},
		page.ElementSpec{Tag: "button", ID: "description-toggle", Text: "+", Classes: []string{widgets.ExpandToggleClass}, Attributes: map[string]string{
			widgets.AttributeToggleWrapper:  "description-wrapper",
			widgets.AttributeToggleTextarea: "description",
		}},
	)
	wrapper, textarea, button := elements[0], elements[1], elements[2]

	textareas := widgets.NewExpandableTextareas(document)
	require.Zero(testingT, textareas.Scan())

	button.Dispatch(page.EventClick)
	require.True(testingT, wrapper.HasClass(widgets.ExpandedClass))
	require.Equal(testingT, "−", button.Text())
	require.Equal(testingT, "125px", textarea.Style(page.StylePropertyHeight))

	button.Dispatch(page.EventClick)
	require.False(testingT, wrapper.HasClass(widgets.ExpandedClass))
	require.Equal(testingT, "+", button.Text())
	require.Empty(testingT, textarea.Style(page.StylePropertyHeight))

	mustAdd(testingT, document, page.ElementSpec{Tag: "button", ID: "late-toggle", Classes: []string{widgets.ExpandToggleClass}})
	require.Equal(testingT, 1, textareas.Scan())
}

func TestRoleSelectorMovesHighlightedRoles(testingT *testing.T) {
	document := page.NewDocument()
	elements := mustAdd(testingT, document,
		page.ElementSpec{Tag: "select", ID: widgets.AvailableRolesElementID, Options: []page.Option{
			{Value: "1", Label: "VIP"}, {Value: "2", Label: "Member"}, {Value: "3", Label: "Booster"},
		}},
		page.ElementSpec{Tag: "select", ID: widgets.SelectedRolesElementID, Name: "SELECTED_ROLES"},
		page.ElementSpec{Tag: "button", ID: widgets.AddRoleButtonElementID},
		page.ElementSpec{Tag: "button", ID: widgets.RemoveRoleButtonID},
	)
	available, selected, addButton, removeButton := elements[0], elements[1], elements[2], elements[3]

	selector, mounted := widgets.MountRoleSelector(document)
	require.True(testingT, mounted)

	widgets.Highlight(available, "1", "3")
	addButton.Dispatch(page.EventClick)
	require.Equal(testingT, []string{"2"}, optionValues(available))
	require.Equal(testingT, []string{"1", "3"}, optionValues(selected))

	widgets.Highlight(selected, "3")
	removeButton.Dispatch(page.EventClick)
	require.Equal(testingT, []string{"2", "3"}, optionValues(available))
	require.Equal(testingT, []string{"1"}, optionValues(selected))

	widgets.Highlight(available, "2")
	available.Dispatch(page.EventDoubleClick)
	require.Equal(testingT, []string{"1", "2"}, optionValues(selected))

	widgets.Highlight(selected)
	selector.PrepareSubmit()
	require.Len(testingT, selected.SelectedOptions(), 2)
}

func TestMountRoleSelectorRequiresBothLists(testingT *testing.T) {
	document := page.NewDocument()
	mustAdd(testingT, document, page.ElementSpec{Tag: "select", ID: widgets.AvailableRolesElementID})

	selector, mounted := widgets.MountRoleSelector(document)
	require.False(testingT, mounted)
	require.Nil(testingT, selector)
}

func TestHighlightNavigation(testingT *testing.T) {
	testCases := []struct {
		name         string
		currentPath  string
		expectedLink string
	}{
		{name: "config page prefers config link", currentPath: "/edit/42", expectedLink: "nav-config"},
		{name: "member page", currentPath: "/edit/42/member/7", expectedLink: "nav-members"},
		{name: "history page", currentPath: "/edit/42/history", expectedLink: "nav-history"},
		{name: "unknown page", currentPath: "/other", expectedLink: ""},
	}

	for _, testCase := range testCases {
		testCase := testCase
		testingT.Run(testCase.name, func(t *testing.T) {
			document := page.NewDocument()
			mustAdd(t, document,
				page.ElementSpec{Tag: "a", ID: "nav-placeholder", Classes: []string{widgets.SidebarLinkClass}, Attributes: map[string]string{page.AttributeHref: "#"}},
				page.ElementSpec{Tag: "a", ID: "nav-config", Classes: []string{widgets.SidebarLinkClass}, Attributes: map[string]string{page.AttributeHref: "/edit/42"}},
				page.ElementSpec{Tag: "a", ID: "nav-members", Classes: []string{widgets.SidebarLinkClass}, Attributes: map[string]string{page.AttributeHref: "/edit/42/member/"}},
				page.ElementSpec{Tag: "a", ID: "nav-history", Classes: []string{widgets.SidebarLinkClass}, Attributes: map[string]string{page.AttributeHref: "/edit/42/history"}},
			)

			active := widgets.HighlightNavigation(document, testCase.currentPath, testGuildID)

			var activeIDs []string
			for _, link := range document.ElementsByClass(widgets.SidebarLinkClass) {
				if link.HasClass(widgets.ActiveClass) {
					activeIDs = append(activeIDs, link.ID())
				}
			}
			if testCase.expectedLink == "" {
				require.Nil(t, active)
				require.Empty(t, activeIDs)
				return
			}
			require.NotNil(t, active)
			require.Equal(t, testCase.expectedLink, active.ID())
			require.Equal(t, []string{testCase.expectedLink}, activeIDs)
		})
	}
}

func TestColorPickerCommitsNormalizedColor(testingT *testing.T) {
	document := page.NewDocument()
	elements := mustAdd(testingT, document,
		page.ElementSpec{Tag: "input", Name: "EMBED_COLOR", Attributes: map[string]string{widgets.ColorPickerAttribute: ""}},
		page.ElementSpec{Tag: "input", Name: "PLAIN"},
	)
	colorInput, plainInput := elements[0], elements[1]

	picker := widgets.NewColorPicker(document, widgets.DefaultColorPickerOptions())
	require.Equal(testingT, []*page.Element{colorInput}, picker.Controls())
	require.Equal(testingT, widgets.ColorThemeDark, picker.Options().ThemeMode)

	var events []page.EventType
	colorInput.Listen(page.EventInput, func(event page.Event) { events = append(events, event.Type) })
	colorInput.Listen(page.EventChange, func(event page.Event) { events = append(events, event.Type) })

	require.NoError(testingT, picker.Pick(colorInput, " #AABBCCDD "))
	require.Equal(testingT, "#aabbcc", colorInput.Value())
	require.Equal(testingT, []page.EventType{page.EventInput, page.EventChange}, events)

	require.ErrorIs(testingT, picker.Pick(colorInput, "teal"), widgets.ErrInvalidColor)
	require.ErrorIs(testingT, picker.Pick(plainInput, "#ffffff"), widgets.ErrColorControlNotAttached)
}

func TestColorPickerRefreshTracksMountedControls(testingT *testing.T) {
	document := page.NewDocument()
	picker := widgets.NewColorPicker(document, widgets.ColorPickerOptions{})
	require.Empty(testingT, picker.Controls())

	elements := mustAdd(testingT, document, page.ElementSpec{Tag: "input", Name: "ROLE_COLOR", Attributes: map[string]string{widgets.ColorPickerAttribute: ""}})
	picker.Refresh()
	require.Len(testingT, picker.Controls(), 1)

	document.Remove(elements[0])
	picker.Refresh()
	require.Empty(testingT, picker.Controls())
}

func optionValues(list *page.Element) []string {
	values := make([]string, 0)
	for _, option := range list.Options() {
		values = append(values, option.Value)
	}
	return values
}
