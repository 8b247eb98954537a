package preview

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// BalancePlaceholder is the template token the bot replaces with a member balance.
	BalancePlaceholder = "{balance}"
	// SampleBalance is the value shown in place of BalancePlaceholder in previews.
	SampleBalance = 9999

	sectionSeparator = "\n\n"
	emojiSeparator   = " "
)

var sampleBalanceText = message.NewPrinter(language.English).Sprintf("%d", SampleBalance)

// Composer derives the raw text of one preview region from the group state.
type Composer func(State) string

// FieldText reads a single field verbatim.
func FieldText(fieldName string) Composer {
	return func(state State) string {
		return state.Get(fieldName)
	}
}

// BalanceText reads a field and fills in the sample balance.
func BalanceText(fieldName string) Composer {
	return func(state State) string {
		return FillBalance(state.Get(fieldName))
	}
}

// SectionsText joins two fields with a blank line so they render as separate blocks.
func SectionsText(firstFieldName string, secondFieldName string) Composer {
	return func(state State) string {
		return state.Get(firstFieldName) + sectionSeparator + state.Get(secondFieldName)
	}
}

// LeadingEmojiText prefixes a field with an optional emoji field.
func LeadingEmojiText(emojiFieldName string, textFieldName string) Composer {
	return func(state State) string {
		return strings.TrimSpace(state.Get(emojiFieldName) + emojiSeparator + state.Get(textFieldName))
	}
}

// FillBalance replaces every balance placeholder with the formatted sample balance.
func FillBalance(text string) string {
	return strings.ReplaceAll(text, BalancePlaceholder, sampleBalanceText)
}
