package panel

import (
	"fmt"
	"strings"

	"github.com/MarkoPoloResearchLab/guildpanel/internal/page"
	"github.com/MarkoPoloResearchLab/guildpanel/internal/preview"
	"github.com/MarkoPoloResearchLab/guildpanel/internal/widgets"
)

// RowKind identifies a repeatable row group of the panel.
type RowKind string

const (
	RowShopRole     RowKind = "shop-role"
	RowCategoryRate RowKind = "category-rate"
	RowChannelRate  RowKind = "channel-rate"
	RowQnA          RowKind = "qna"
)

// Row field keys.
const (
	RowFieldRoleID     = "ROLE_ID"
	RowFieldPrice      = "PRICE"
	RowFieldColor      = "COLOR"
	RowFieldCategoryID = "CATEGORY_ID"
	RowFieldChannelID  = "CHANNEL_ID"
	RowFieldRate       = "RATE"
	RowFieldEmoji      = "EMOJI"
	RowFieldQuestion   = "QUESTION"
	RowFieldAnswer     = "ANSWER"
)

const (
	rowPrefixShopRole     = "SHOP_ROLES"
	rowPrefixCategoryRate = "CATEGORY_RATES"
	rowPrefixChannelRate  = "CHANNEL_RATES"
	rowPrefixQnA          = "QNA"

	rowFieldNameTemplate = "%s[%s][%s]"
	rowElementIDTemplate = "%s-%s-%s"
	rowRootIDTemplate    = "%s-%s"

	DynamicRowClass  = "dynamic-row"
	RemoveRowClass   = "remove-row-btn"
	rowRemoveSuffix  = "remove"
	qnaElementPrefix = "qna"

	qnaRegionRoot        = "preview"
	qnaRegionTitle       = "preview-title"
	qnaRegionDescription = "preview-description"
)

type rowDefinition struct {
	kind               RowKind
	templateName       string
	containerID        string
	fieldPrefix        string
	elementPrefix      string
	fields             []string
	colorFields        []string
	textareaFields     []string
	refreshColorPicker bool
	previewGroup       func(rowID string) GroupDefinition
}

var rowDefinitions = map[RowKind]rowDefinition{
	RowShopRole: {
		kind:               RowShopRole,
		templateName:       "shop-role-template",
		containerID:        "shop-roles-container",
		fieldPrefix:        rowPrefixShopRole,
		elementPrefix:      "shop-role",
		fields:             []string{RowFieldRoleID, RowFieldPrice, RowFieldColor},
		colorFields:        []string{RowFieldColor},
		refreshColorPicker: true,
	},
	RowCategoryRate: {
		kind:          RowCategoryRate,
		templateName:  "category-rate-template",
		containerID:   "category-rates-container",
		fieldPrefix:   rowPrefixCategoryRate,
		elementPrefix: "category-rate",
		fields:        []string{RowFieldCategoryID, RowFieldRate},
	},
	RowChannelRate: {
		kind:          RowChannelRate,
		templateName:  "channel-rate-template",
		containerID:   "channel-rates-container",
		fieldPrefix:   rowPrefixChannelRate,
		elementPrefix: "channel-rate",
		fields:        []string{RowFieldChannelID, RowFieldRate},
	},
	RowQnA: {
		kind:           RowQnA,
		templateName:   "qna-template",
		containerID:    "qna-container",
		fieldPrefix:    rowPrefixQnA,
		elementPrefix:  qnaElementPrefix,
		fields:         []string{RowFieldEmoji, RowFieldQuestion, RowFieldAnswer},
		textareaFields: []string{RowFieldAnswer},
		previewGroup:   QnARowGroup,
	},
}

// RowKinds returns every row kind in panel order.
func RowKinds() []RowKind {
	return []RowKind{RowShopRole, RowCategoryRate, RowChannelRate, RowQnA}
}

// RowFields returns the field keys of a row kind.
func RowFields(kind RowKind) []string {
	return append([]string(nil), rowDefinitions[kind].fields...)
}

func rowFieldName(prefix string, rowID string, field string) string {
	return fmt.Sprintf(rowFieldNameTemplate, prefix, rowID, field)
}

func qnaRowElementID(rowID string, suffix string) string {
	return fmt.Sprintf(rowElementIDTemplate, qnaElementPrefix, rowID, suffix)
}

// RowTemplate builds the clone template of a row kind.
func RowTemplate(kind RowKind) page.Template {
	definition := rowDefinitions[kind]
	rowPlaceholder := page.RowPlaceholder
	elementID := func(suffix string) string {
		return fmt.Sprintf(rowElementIDTemplate, definition.elementPrefix, rowPlaceholder, suffix)
	}

	specs := []page.ElementSpec{
		{Tag: "div", ID: fmt.Sprintf(rowRootIDTemplate, definition.elementPrefix, rowPlaceholder), Classes: []string{DynamicRowClass}},
	}
	for _, field := range definition.fields {
		fieldID := elementID(strings.ToLower(field))
		fieldName := rowFieldName(definition.fieldPrefix, rowPlaceholder, field)
		switch {
		case containsString(definition.textareaFields, field):
			specs = append(specs, textareaSpecs(fieldID, fieldName)...)
		case containsString(definition.colorFields, field):
			specs = append(specs, page.ElementSpec{Tag: "input", ID: fieldID, Name: fieldName, Attributes: map[string]string{widgets.ColorPickerAttribute: ""}})
		default:
			specs = append(specs, page.ElementSpec{Tag: "input", ID: fieldID, Name: fieldName})
		}
	}
	if definition.previewGroup != nil {
		specs = append(specs, previewRegionSpecs(definition.previewGroup(rowPlaceholder).Layout)...)
	}
	specs = append(specs, page.ElementSpec{Tag: "button", ID: elementID(rowRemoveSuffix), Classes: []string{RemoveRowClass}, Text: "×"})

	return page.Template{Name: definition.templateName, Elements: specs}
}

// RowHandle exposes the controls and preview binder of one mounted row.
type RowHandle struct {
	definition rowDefinition
	fragment   page.Fragment
	document   *page.Document
	binder     *preview.Binder
	group      *GroupDefinition
}

func (handle *RowHandle) Kind() RowKind {
	return handle.definition.kind
}

func (handle *RowHandle) ID() string {
	return handle.fragment.RowID
}

// Control returns the row's control for a field key.
func (handle *RowHandle) Control(field string) (*page.Element, bool) {
	return handle.document.ElementByName(rowFieldName(handle.definition.fieldPrefix, handle.fragment.RowID, field))
}

// FieldName returns the submitted form name of a row field.
func (handle *RowHandle) FieldName(field string) string {
	return rowFieldName(handle.definition.fieldPrefix, handle.fragment.RowID, field)
}

// SetField types a value into a row field.
func (handle *RowHandle) SetField(field string, value string) error {
	control, found := handle.Control(field)
	if !found {
		return fmt.Errorf("%w: %s %s", ErrUnknownRowField, handle.definition.kind, field)
	}
	control.SetValue(value)
	return nil
}

// RemoveButton returns the row's remove button.
func (handle *RowHandle) RemoveButton() (*page.Element, bool) {
	return handle.fragment.Element(fmt.Sprintf(rowElementIDTemplate, handle.definition.elementPrefix, page.RowPlaceholder, rowRemoveSuffix))
}

// Binder returns the row's preview binder when the row kind has a preview.
func (handle *RowHandle) Binder() (*preview.Binder, bool) {
	return handle.binder, handle.binder != nil
}

func containsString(values []string, candidate string) bool {
	for _, value := range values {
		if value == candidate {
			return true
		}
	}
	return false
}
