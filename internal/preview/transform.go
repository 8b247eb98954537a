// Package preview renders Discord-style embed previews from panel form state.
//
// The Transformer turns user-authored text into markup the way Discord would
// display it: custom emoji tokens become CDN images and the rest is rendered as
// a constrained markdown dialect. Group specs describe which form fields feed
// which preview regions, and a Binder keeps a mounted group in sync with its
// controls.
package preview

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	goldmarktext "github.com/yuin/goldmark/text"
)

const (
	emojiCDNURLTemplate      = "https://cdn.discordapp.com/emojis/%s.%s?size=48&quality=lossless"
	emojiImageMarkupTemplate = `<img class="discord-emoji" src="%s" alt=":%s:">`
	animatedEmojiTokenPrefix = "<a:"
	animatedEmojiExtension   = "gif"
	staticEmojiExtension     = "png"
	paragraphOpenTag         = "<p>"
	paragraphCloseTag        = "</p>\n"
)

var emojiTokenPattern = regexp.MustCompile(`<a?:(\w+):(\d+)>`)

// Transformer converts raw text into preview markup. It holds no per-call
// state and may be shared by every preview group of a panel.
type Transformer struct {
	markdown goldmark.Markdown
}

// NewTransformer builds a Transformer with GFM, soft breaks rendered as <br>,
// no heading ids and raw HTML passed through.
func NewTransformer() *Transformer {
	return &Transformer{
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(
				html.WithHardWraps(),
				html.WithUnsafe(),
			),
		),
	}
}

// Transform renders text as preview markup. Empty input yields "".
func (transformer *Transformer) Transform(text string) string {
	if text == "" {
		return ""
	}

	source := []byte(SubstituteEmoji(text))
	document := transformer.markdown.Parser().Parse(goldmarktext.NewReader(source))

	var buffer bytes.Buffer
	if renderErr := transformer.markdown.Renderer().Render(&buffer, source, document); renderErr != nil {
		return template.HTMLEscapeString(string(source))
	}

	rendered := buffer.String()
	if isSingleParagraph(document) {
		return unwrapParagraph(rendered)
	}
	return rendered
}

// SubstituteEmoji replaces every custom emoji token with an inline CDN image.
// Tokens whose id is not purely numeric are left as they are.
func SubstituteEmoji(text string) string {
	return emojiTokenPattern.ReplaceAllStringFunc(text, func(token string) string {
		submatches := emojiTokenPattern.FindStringSubmatch(token)
		emojiName, emojiID := submatches[1], submatches[2]
		extensionName := staticEmojiExtension
		if strings.HasPrefix(token, animatedEmojiTokenPrefix) {
			extensionName = animatedEmojiExtension
		}
		return EmojiImageMarkup(emojiName, emojiID, extensionName)
	})
}

// EmojiImageMarkup builds the inline image used in place of an emoji token.
func EmojiImageMarkup(emojiName string, emojiID string, extensionName string) string {
	imageURL := fmt.Sprintf(emojiCDNURLTemplate, emojiID, extensionName)
	return fmt.Sprintf(emojiImageMarkupTemplate, imageURL, emojiName)
}

func isSingleParagraph(document ast.Node) bool {
	return document.ChildCount() == 1 && document.FirstChild().Kind() == ast.KindParagraph
}

// unwrapParagraph strips exactly one enclosing paragraph spanning the whole output.
func unwrapParagraph(rendered string) string {
	if !strings.HasPrefix(rendered, paragraphOpenTag) || !strings.HasSuffix(rendered, paragraphCloseTag) {
		return rendered
	}
	if len(rendered) < len(paragraphOpenTag)+len(paragraphCloseTag) {
		return rendered
	}
	return rendered[len(paragraphOpenTag) : len(rendered)-len(paragraphCloseTag)]
}
