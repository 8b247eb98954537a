package panel

import "github.com/MarkoPoloResearchLab/guildpanel/internal/preview"

// Form control names shared with the bot's configuration schema.
const (
	FieldEmbedColor = "EMBED_COLOR"

	FieldShopChannelID       = "SHOP_CHANNEL_ID"
	FieldLeaderboardThreadID = "LEADERBOARD_THREAD_ID"
	FieldSelectedRoles       = "SELECTED_ROLES"
	FieldShopTitle           = "MESSAGES[SHOP_EMBED_TITLE]"
	FieldShopDescription     = "MESSAGES[SHOP_EMBED_DESCRIPTION]"
	FieldShopThumbnailURL    = "SHOP_EMBED_THUMBNAIL_URL"
	FieldShopImageURL        = "SHOP_EMBED_IMAGE_URL"
	FieldShopFooter          = "FOOTER_MESSAGES[SHOP_PANEL]"
	FieldAccountTitle        = "MESSAGES[ACCOUNT_EMBED_TITLE]"
	FieldAccountDescription  = "MESSAGES[ACCOUNT_EMBED_DESCRIPTION]"
	FieldAccountThumbnailURL = "ACCOUNT_EMBED_THUMBNAIL_URL"
	FieldAccountFooter       = "FOOTER_MESSAGES[ACCOUNT_PANEL]"
	FieldRatesTitle          = "MESSAGES[RATES_EMBED_TITLE]"
	FieldRatesMessageSection = "MESSAGES[RATES_MESSAGE_SECTION]"
	FieldRatesVoiceSection   = "MESSAGES[RATES_VOICE_SECTION]"
	FieldRatesFooter         = "FOOTER_MESSAGES[RATES_PANEL]"
	FieldLeaderboardTitle    = "MESSAGES[LEADERBOARD_EMBED_TITLE]"
	FieldLeaderboardBody     = "MESSAGES[LEADERBOARD_EMBED_DESCRIPTION]"
	FieldLeaderboardImageURL = "LEADERBOARD_EMBED_IMAGE_URL"
	FieldLeaderboardFooter   = "FOOTER_MESSAGES[LEADERBOARD_PANEL]"
)

// Preview group names.
const (
	GroupShop        = "shop"
	GroupAccount     = "account"
	GroupRates       = "rates"
	GroupLeaderboard = "leaderboard"
	GroupQnA         = "qna"
)

// EmbedLayout names the regions of one embed card mockup.
type EmbedLayout struct {
	Root        string
	Title       string
	Description string
	Footer      string
	Thumbnail   string
	Image       string
}

func (layout EmbedLayout) withPrefix(prefix string) EmbedLayout {
	prefixed := EmbedLayout{Root: prefix + layout.Root}
	for _, pair := range []struct {
		source string
		target *string
	}{
		{layout.Title, &prefixed.Title},
		{layout.Description, &prefixed.Description},
		{layout.Footer, &prefixed.Footer},
		{layout.Thumbnail, &prefixed.Thumbnail},
		{layout.Image, &prefixed.Image},
	} {
		if pair.source != "" {
			*pair.target = prefix + pair.source
		}
	}
	return prefixed
}

// GroupDefinition couples a preview group spec with the card layout it renders into.
type GroupDefinition struct {
	Label  string
	Spec   preview.GroupSpec
	Layout EmbedLayout
}

var shopLayout = EmbedLayout{
	Root:        "discord-embed-preview",
	Title:       "preview-title",
	Description: "preview-description",
	Footer:      "preview-footer",
	Thumbnail:   "preview-thumbnail",
	Image:       "preview-image",
}

var cardLayout = EmbedLayout{
	Root:        "embed-preview",
	Title:       "preview-title",
	Description: "preview-description",
	Footer:      "preview-footer",
}

// StaticGroups returns the preview groups mounted once per page, in display order.
func StaticGroups() []GroupDefinition {
	accountLayout := cardLayout.withPrefix("account-")
	accountLayout.Thumbnail = "account-preview-thumbnail"
	ratesLayout := cardLayout.withPrefix("rates-")
	leaderboardLayout := cardLayout.withPrefix("leaderboard-")
	leaderboardLayout.Image = "leaderboard-preview-image"

	return []GroupDefinition{
		{
			Label:  "Shop panel",
			Layout: shopLayout,
			Spec: preview.GroupSpec{
				Name:        GroupShop,
				Fields:      []string{FieldShopTitle, FieldShopDescription, FieldShopFooter},
				AccentField: FieldEmbedColor,
				Texts: []preview.TextBinding{
					{Region: shopLayout.Title, Compose: preview.FieldText(FieldShopTitle)},
					{Region: shopLayout.Description, Compose: preview.FieldText(FieldShopDescription)},
					{Region: shopLayout.Footer, Compose: preview.FieldText(FieldShopFooter)},
				},
				Images: []preview.ImageBinding{
					{Region: shopLayout.Thumbnail, Field: FieldShopThumbnailURL},
					{Region: shopLayout.Image, Field: FieldShopImageURL},
				},
				Accents: []string{shopLayout.Root},
			},
		},
		{
			Label:  "Account panel",
			Layout: accountLayout,
			Spec: preview.GroupSpec{
				Name:        GroupAccount,
				Fields:      []string{FieldAccountTitle, FieldAccountDescription, FieldAccountFooter},
				AccentField: FieldEmbedColor,
				Texts: []preview.TextBinding{
					{Region: accountLayout.Title, Compose: preview.FieldText(FieldAccountTitle)},
					{Region: accountLayout.Description, Compose: preview.BalanceText(FieldAccountDescription)},
					{Region: accountLayout.Footer, Compose: preview.FieldText(FieldAccountFooter)},
				},
				Images: []preview.ImageBinding{
					{Region: accountLayout.Thumbnail, Field: FieldAccountThumbnailURL},
				},
				Accents: []string{accountLayout.Root},
			},
		},
		{
			Label:  "Rates message",
			Layout: ratesLayout,
			Spec: preview.GroupSpec{
				Name:        GroupRates,
				Fields:      []string{FieldRatesTitle, FieldRatesMessageSection, FieldRatesVoiceSection, FieldRatesFooter},
				AccentField: FieldEmbedColor,
				Texts: []preview.TextBinding{
					{Region: ratesLayout.Title, Compose: preview.FieldText(FieldRatesTitle)},
					{Region: ratesLayout.Description, Compose: preview.SectionsText(FieldRatesMessageSection, FieldRatesVoiceSection)},
					{Region: ratesLayout.Footer, Compose: preview.FieldText(FieldRatesFooter)},
				},
				Accents: []string{ratesLayout.Root},
			},
		},
		{
			Label:  "Leaderboard",
			Layout: leaderboardLayout,
			Spec: preview.GroupSpec{
				Name:        GroupLeaderboard,
				Fields:      []string{FieldLeaderboardTitle, FieldLeaderboardBody, FieldLeaderboardFooter},
				AccentField: FieldEmbedColor,
				Texts: []preview.TextBinding{
					{Region: leaderboardLayout.Title, Compose: preview.FieldText(FieldLeaderboardTitle)},
					{Region: leaderboardLayout.Description, Compose: preview.FieldText(FieldLeaderboardBody)},
					{Region: leaderboardLayout.Footer, Compose: preview.FieldText(FieldLeaderboardFooter)},
				},
				Images: []preview.ImageBinding{
					{Region: leaderboardLayout.Image, Field: FieldLeaderboardImageURL},
				},
				Accents: []string{leaderboardLayout.Root},
			},
		},
	}
}

// QnARowGroup returns the preview group of one Q&A row.
func QnARowGroup(rowID string) GroupDefinition {
	layout := EmbedLayout{
		Root:        qnaRowElementID(rowID, qnaRegionRoot),
		Title:       qnaRowElementID(rowID, qnaRegionTitle),
		Description: qnaRowElementID(rowID, qnaRegionDescription),
	}
	emojiField := rowFieldName(rowPrefixQnA, rowID, RowFieldEmoji)
	questionField := rowFieldName(rowPrefixQnA, rowID, RowFieldQuestion)
	answerField := rowFieldName(rowPrefixQnA, rowID, RowFieldAnswer)

	return GroupDefinition{
		Label:  "Q&A",
		Layout: layout,
		Spec: preview.GroupSpec{
			Name:        GroupQnA + ":" + rowID,
			Fields:      []string{emojiField, questionField, answerField},
			AccentField: FieldEmbedColor,
			Texts: []preview.TextBinding{
				{Region: layout.Title, Compose: preview.LeadingEmojiText(emojiField, questionField)},
				{Region: layout.Description, Compose: preview.FieldText(answerField)},
			},
			Accents: []string{layout.Root},
		},
	}
}
