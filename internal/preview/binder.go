package preview

const (
	styleDisplay     = "display"
	styleBorderColor = "border-color"
	attributeSource  = "src"
	displayBlock     = "block"
	displayNone      = "none"
)

// Control is a source form field.
type Control interface {
	Value() string
	OnInput(callback func()) (detach func())
}

// Region is an output element written by a binder.
type Region interface {
	SetInnerHTML(markup string)
	SetStyle(property string, value string)
	SetAttribute(name string, value string)
}

// Locator resolves controls by form name and regions by element id.
type Locator interface {
	Control(name string) (Control, bool)
	Region(id string) (Region, bool)
}

// Binder keeps one mounted preview group in sync with its source controls.
type Binder struct {
	spec        GroupSpec
	transformer *Transformer
	controls    map[string]Control
	regions     map[string]Region
	state       State
	view        View
	detachers   []func()
}

// TryCreateBinder mounts a binder for the group. It returns false, and mounts
// nothing, when any output region is missing. Missing controls read as empty.
// The binder renders once before it starts listening.
func TryCreateBinder(spec GroupSpec, transformer *Transformer, locator Locator) (*Binder, bool) {
	if transformer == nil || locator == nil {
		return nil, false
	}

	regions := make(map[string]Region, len(spec.Regions()))
	for _, regionID := range spec.Regions() {
		region, found := locator.Region(regionID)
		if !found || region == nil {
			return nil, false
		}
		regions[regionID] = region
	}

	controls := make(map[string]Control)
	for _, fieldName := range spec.SourceFields() {
		control, found := locator.Control(fieldName)
		if !found || control == nil {
			continue
		}
		controls[fieldName] = control
	}

	binder := &Binder{
		spec:        spec,
		transformer: transformer,
		controls:    controls,
		regions:     regions,
	}
	binder.Refresh()

	for _, fieldName := range spec.SourceFields() {
		control, bound := controls[fieldName]
		if !bound {
			continue
		}
		binder.detachers = append(binder.detachers, control.OnInput(binder.Refresh))
	}

	return binder, true
}

// Refresh re-reads every control and rewrites every region.
func (binder *Binder) Refresh() {
	state := make(State, len(binder.controls))
	for fieldName, control := range binder.controls {
		state[fieldName] = control.Value()
	}
	binder.state = state
	binder.view = binder.spec.Render(binder.transformer, state)
	binder.apply(binder.view)
}

func (binder *Binder) apply(view View) {
	for regionID, markup := range view.Texts {
		binder.regions[regionID].SetInnerHTML(markup)
	}
	for regionID, image := range view.Images {
		region := binder.regions[regionID]
		if !image.Visible {
			region.SetStyle(styleDisplay, displayNone)
			continue
		}
		region.SetAttribute(attributeSource, image.Source)
		region.SetStyle(styleDisplay, displayBlock)
	}
	for regionID, color := range view.Borders {
		binder.regions[regionID].SetStyle(styleBorderColor, color)
	}
}

// Close detaches every listener; the regions keep their last rendering.
func (binder *Binder) Close() {
	for _, detach := range binder.detachers {
		detach()
	}
	binder.detachers = nil
}

// Name returns the group name.
func (binder *Binder) Name() string {
	return binder.spec.Name
}

// Spec returns the group spec the binder was created from.
func (binder *Binder) Spec() GroupSpec {
	return binder.spec
}

// State returns a copy of the state used for the latest render.
func (binder *Binder) State() State {
	stateCopy := make(State, len(binder.state))
	for fieldName, value := range binder.state {
		stateCopy[fieldName] = value
	}
	return stateCopy
}

// View returns the latest rendered view.
func (binder *Binder) View() View {
	return binder.view
}
