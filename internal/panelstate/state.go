// Package panelstate loads YAML snapshots of a guild configuration form and
// replays them onto a mounted panel as user input.
package panelstate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/MarkoPoloResearchLab/guildpanel/internal/page"
	"github.com/MarkoPoloResearchLab/guildpanel/internal/panel"
	"github.com/MarkoPoloResearchLab/guildpanel/internal/preview"
)

const (
	errorMessageReadState      = "panelstate: read state file"
	errorMessageDecodeState    = "panelstate: decode state"
	errorMessageMissingGuildID = "panelstate: guild_id is required"
	errorMessageUnknownField   = "panelstate: unknown field"
	errorMessageUnknownTab     = "panelstate: unknown tab"
	errorMessageInvalidRole    = "panelstate: role id is required"
	errorMessageApplyState     = "panelstate: apply state"

	configPathTemplate = "/edit/%s"
	tabTargetPrefix    = "#"
	tabPanePrefix      = "tab-"

	logEventStateApplied = "panel_state_applied"
	logFieldGuildID      = "guild_id"
	logFieldRowCount     = "row_count"
)

var (
	// ErrReadState indicates the state file could not be read.
	ErrReadState = errors.New(errorMessageReadState)
	// ErrDecodeState indicates the state document is not valid YAML for a State.
	ErrDecodeState = errors.New(errorMessageDecodeState)
	// ErrMissingGuildID indicates the state names no guild.
	ErrMissingGuildID = errors.New(errorMessageMissingGuildID)
	// ErrUnknownField indicates a field the configuration page does not have.
	ErrUnknownField = errors.New(errorMessageUnknownField)
	// ErrUnknownTab indicates an active tab with no matching tab link.
	ErrUnknownTab = errors.New(errorMessageUnknownTab)
	// ErrInvalidRole indicates a role entry without an id.
	ErrInvalidRole = errors.New(errorMessageInvalidRole)
	// ErrApplyState indicates the panel rejected a replayed value.
	ErrApplyState = errors.New(errorMessageApplyState)
)

// State is a saved configuration form.
type State struct {
	GuildID       string            `yaml:"guild_id"`
	Path          string            `yaml:"path"`
	ActiveTab     string            `yaml:"active_tab"`
	Fields        map[string]string `yaml:"fields"`
	Roles         Roles             `yaml:"roles"`
	QnA           []QnARow          `yaml:"qna"`
	ShopRoles     []ShopRoleRow     `yaml:"shop_roles"`
	CategoryRates []RateRow         `yaml:"category_rates"`
	ChannelRates  []RateRow         `yaml:"channel_rates"`
}

// Roles lists the guild roles on each side of the dual-list selector.
type Roles struct {
	Available []Role `yaml:"available"`
	Selected  []Role `yaml:"selected"`
}

type Role struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type QnARow struct {
	Emoji    string `yaml:"emoji"`
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type ShopRoleRow struct {
	RoleID string `yaml:"role_id"`
	Price  string `yaml:"price"`
	Color  string `yaml:"color"`
}

// RateRow is a category or channel earning rate.
type RateRow struct {
	ID   string `yaml:"id"`
	Rate string `yaml:"rate"`
}

// Load reads and validates a state file.
func Load(path string) (State, error) {
	content, readErr := os.ReadFile(path)
	if readErr != nil {
		return State{}, fmt.Errorf("%w: %s: %v", ErrReadState, path, readErr)
	}
	return Parse(content)
}

// Parse decodes and validates a state document. Unknown keys are rejected.
func Parse(content []byte) (State, error) {
	var state State
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if decodeErr := decoder.Decode(&state); decodeErr != nil && !errors.Is(decodeErr, io.EOF) {
		return State{}, fmt.Errorf("%w: %v", ErrDecodeState, decodeErr)
	}
	if validateErr := state.Validate(); validateErr != nil {
		return State{}, validateErr
	}
	return state, nil
}

// Validate checks the state against the configuration page.
func (state State) Validate() error {
	if strings.TrimSpace(state.GuildID) == "" {
		return ErrMissingGuildID
	}
	knownFields := make(map[string]struct{})
	for _, fieldName := range panel.FieldNames() {
		knownFields[fieldName] = struct{}{}
	}
	for fieldName := range state.Fields {
		if _, known := knownFields[fieldName]; !known {
			return fmt.Errorf("%w: %s", ErrUnknownField, fieldName)
		}
	}
	for _, role := range append(append([]Role(nil), state.Roles.Available...), state.Roles.Selected...) {
		if strings.TrimSpace(role.ID) == "" {
			return fmt.Errorf("%w: %q", ErrInvalidRole, role.Name)
		}
	}
	return nil
}

// ConfigPath returns the page path the panel is shown on.
func (state State) ConfigPath() string {
	if state.Path != "" {
		return state.Path
	}
	return fmt.Sprintf(configPathTemplate, state.GuildID)
}

// LayoutOptions returns the page layout for the state's guild and roles.
func (state State) LayoutOptions() panel.LayoutOptions {
	return panel.LayoutOptions{
		GuildID:        state.GuildID,
		AvailableRoles: roleOptions(state.Roles.Available),
		SelectedRoles:  roleOptions(state.Roles.Selected),
	}
}

// Mount builds the standard page for the state, mounts a panel on it and
// replays the state.
func Mount(state State, logger *zap.Logger, transformer *preview.Transformer) (*panel.Panel, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	document, buildErr := panel.BuildDocument(state.LayoutOptions())
	if buildErr != nil {
		return nil, buildErr
	}
	mountedPanel, mountErr := panel.New(document, panel.Options{
		Logger:      logger,
		Transformer: transformer,
		Path:        state.ConfigPath(),
		GuildID:     state.GuildID,
	})
	if mountErr != nil {
		return nil, mountErr
	}
	if applyErr := Apply(mountedPanel, state); applyErr != nil {
		return nil, applyErr
	}
	logger.Info(logEventStateApplied,
		zap.String(logFieldGuildID, state.GuildID),
		zap.Int(logFieldRowCount, len(state.QnA)+len(state.ShopRoles)+len(state.CategoryRates)+len(state.ChannelRates)),
	)
	return mountedPanel, nil
}

// Apply replays the state onto the panel as input events: fields in page
// order, then rows, then the active tab. Colours go through the colour picker.
func Apply(target *panel.Panel, state State) error {
	for _, fieldName := range panel.FieldNames() {
		value, present := state.Fields[fieldName]
		if !present {
			continue
		}
		if applyErr := applyField(target, fieldName, value); applyErr != nil {
			return applyErr
		}
	}

	for _, row := range state.ShopRoles {
		if applyErr := applyRow(target, panel.RowShopRole, map[string]string{
			panel.RowFieldRoleID: row.RoleID,
			panel.RowFieldPrice:  row.Price,
			panel.RowFieldColor:  row.Color,
		}); applyErr != nil {
			return applyErr
		}
	}
	for _, row := range state.CategoryRates {
		if applyErr := applyRow(target, panel.RowCategoryRate, map[string]string{
			panel.RowFieldCategoryID: row.ID,
			panel.RowFieldRate:       row.Rate,
		}); applyErr != nil {
			return applyErr
		}
	}
	for _, row := range state.ChannelRates {
		if applyErr := applyRow(target, panel.RowChannelRate, map[string]string{
			panel.RowFieldChannelID: row.ID,
			panel.RowFieldRate:      row.Rate,
		}); applyErr != nil {
			return applyErr
		}
	}
	for _, row := range state.QnA {
		if applyErr := applyRow(target, panel.RowQnA, map[string]string{
			panel.RowFieldEmoji:    row.Emoji,
			panel.RowFieldQuestion: row.Question,
			panel.RowFieldAnswer:   row.Answer,
		}); applyErr != nil {
			return applyErr
		}
	}

	if state.ActiveTab == "" || target.Tabs() == nil {
		return nil
	}
	if !target.Tabs().ActivateTarget(activeTabTarget(state.ActiveTab)) {
		return fmt.Errorf("%w: %s", ErrUnknownTab, state.ActiveTab)
	}
	return nil
}

// activeTabTarget accepts a tab name ("qna"), a pane id ("tab-qna") or a
// link target ("#tab-qna").
func activeTabTarget(activeTab string) string {
	tabName := strings.TrimPrefix(strings.TrimSpace(activeTab), tabTargetPrefix)
	return panel.TabTarget(strings.TrimPrefix(tabName, tabPanePrefix))
}

func applyField(target *panel.Panel, fieldName string, value string) error {
	control, found := target.Document().ElementByName(fieldName)
	if !found {
		return fmt.Errorf("%w: %s", ErrUnknownField, fieldName)
	}
	if control.HasAttribute(target.ColorPicker().Options().Attribute) {
		if pickErr := target.ColorPicker().Pick(control, value); pickErr != nil {
			return fmt.Errorf("%w: %s: %v", ErrApplyState, fieldName, pickErr)
		}
		return nil
	}
	control.SetValue(value)
	return nil
}

func applyRow(target *panel.Panel, kind panel.RowKind, values map[string]string) error {
	row, createErr := target.CreateRow(kind)
	if createErr != nil {
		return fmt.Errorf("%w: %v", ErrApplyState, createErr)
	}
	for _, field := range panel.RowFields(kind) {
		value := values[field]
		if value == "" {
			continue
		}
		control, found := row.Control(field)
		if !found {
			return fmt.Errorf("%w: %s %s", ErrApplyState, kind, field)
		}
		if control.HasAttribute(target.ColorPicker().Options().Attribute) {
			if pickErr := target.ColorPicker().Pick(control, value); pickErr != nil {
				return fmt.Errorf("%w: %s %s: %v", ErrApplyState, kind, field, pickErr)
			}
			continue
		}
		control.SetValue(value)
	}
	return nil
}

func roleOptions(roles []Role) []page.Option {
	options := make([]page.Option, 0, len(roles))
	for _, role := range roles {
		options = append(options, page.Option{Value: role.ID, Label: role.Name})
	}
	return options
}
