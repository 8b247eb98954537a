package page_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MarkoPoloResearchLab/guildpanel/internal/page"
)

func TestSetValueDispatchesInputOnly(testingT *testing.T) {
	element := page.NewElement(page.ElementSpec{Tag: "input", Name: "EMBED_COLOR"})

	var received []page.EventType
	element.Listen(page.EventInput, func(event page.Event) {
		require.Same(testingT, element, event.Target)
		received = append(received, event.Type)
	})
	element.Listen(page.EventChange, func(event page.Event) {
		received = append(received, event.Type)
	})

	element.SetValue("#00ff00")
	require.Equal(testingT, "#00ff00", element.Value())
	require.Equal(testingT, []page.EventType{page.EventInput}, received)

	received = nil
	element.Commit("#0000ff")
	require.Equal(testingT, []page.EventType{page.EventInput, page.EventChange}, received)
}

func TestListenReturnsDetachFunc(testingT *testing.T) {
	element := page.NewElement(page.ElementSpec{Tag: "input"})

	callCount := 0
	detach := element.OnInput(func() { callCount++ })
	element.SetValue("a")
	detach()
	element.SetValue("b")

	require.Equal(testingT, 1, callCount)
	require.Zero(testingT, element.ListenerCount(page.EventInput))
}

func TestListenerDetachedDuringDispatchIsSkipped(testingT *testing.T) {
	element := page.NewElement(page.ElementSpec{Tag: "input"})

	secondCalls := 0
	var detachSecond func()
	element.OnInput(func() { detachSecond() })
	detachSecond = element.OnInput(func() { secondCalls++ })

	element.SetValue("x")
	require.Zero(testingT, secondCalls)
}

func TestStyleClassAndOptionHelpers(testingT *testing.T) {
	element := page.NewElement(page.ElementSpec{
		Tag:     "select",
		Classes: []string{"form-select", " "},
		Options: []page.Option{{Value: "1", Label: "One"}, {Value: "2", Label: "Two", Selected: true}},
	})

	element.SetStyle(page.StylePropertyDisplay, "none")
	require.Equal(testingT, "none", element.Style(page.StylePropertyDisplay))
	element.SetStyle(page.StylePropertyDisplay, "")
	require.Empty(testingT, element.Style(page.StylePropertyDisplay))

	require.Equal(testingT, []string{"form-select"}, element.Classes())
	require.True(testingT, element.ToggleClass("expanded"))
	require.False(testingT, element.ToggleClass("expanded"))

	selected := element.SelectedOptions()
	require.Len(testingT, selected, 1)
	require.Equal(testingT, "2", selected[0].Value)

	require.True(testingT, element.RemoveOption(selected[0]))
	require.False(testingT, element.RemoveOption(selected[0]))
	require.Len(testingT, element.Options(), 1)
}
