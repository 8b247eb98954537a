package preview

// State holds the current value of every source field of one preview group.
type State map[string]string

// Get returns the field value, or "" for an unknown field.
func (state State) Get(fieldName string) string {
	return state[fieldName]
}

// TextBinding renders one markup region from composed field text.
type TextBinding struct {
	Region  string
	Compose Composer
}

// ImageBinding shows an image region when its URL field is set.
type ImageBinding struct {
	Region string
	Field  string
}

// GroupSpec declares how one preview group maps source fields to output regions.
type GroupSpec struct {
	Name        string
	Fields      []string
	AccentField string
	Texts       []TextBinding
	Images      []ImageBinding
	Accents     []string
}

// ImageView is the rendered state of an image region.
type ImageView struct {
	Visible bool
	Source  string
}

// View is the complete rendered output of one preview group.
type View struct {
	Group   string
	Texts   map[string]string
	Images  map[string]ImageView
	Borders map[string]string
}

// SourceFields returns every control name that triggers a recompute, with the
// accent field last.
func (spec GroupSpec) SourceFields() []string {
	fieldNames := make([]string, 0, len(spec.Fields)+1)
	seen := make(map[string]struct{}, len(spec.Fields)+1)
	appendUnique := func(fieldName string) {
		if fieldName == "" {
			return
		}
		if _, duplicate := seen[fieldName]; duplicate {
			return
		}
		seen[fieldName] = struct{}{}
		fieldNames = append(fieldNames, fieldName)
	}
	for _, fieldName := range spec.Fields {
		appendUnique(fieldName)
	}
	for _, image := range spec.Images {
		appendUnique(image.Field)
	}
	appendUnique(spec.AccentField)
	return fieldNames
}

// Regions returns every output region the group writes to.
func (spec GroupSpec) Regions() []string {
	regionIDs := make([]string, 0, len(spec.Texts)+len(spec.Images)+len(spec.Accents))
	for _, text := range spec.Texts {
		regionIDs = append(regionIDs, text.Region)
	}
	for _, image := range spec.Images {
		regionIDs = append(regionIDs, image.Region)
	}
	regionIDs = append(regionIDs, spec.Accents...)
	return regionIDs
}

// Render computes the full view of the group from state. It reads nothing but
// its arguments.
func (spec GroupSpec) Render(transformer *Transformer, state State) View {
	view := View{
		Group:   spec.Name,
		Texts:   make(map[string]string, len(spec.Texts)),
		Images:  make(map[string]ImageView, len(spec.Images)),
		Borders: make(map[string]string, len(spec.Accents)),
	}

	for _, text := range spec.Texts {
		view.Texts[text.Region] = transformer.Transform(text.Compose(state))
	}

	for _, image := range spec.Images {
		imageURL := state.Get(image.Field)
		if imageURL == "" {
			view.Images[image.Region] = ImageView{}
			continue
		}
		view.Images[image.Region] = ImageView{Visible: true, Source: imageURL}
	}

	accentColor := ResolveAccentColor(state.Get(spec.AccentField))
	for _, regionID := range spec.Accents {
		view.Borders[regionID] = accentColor
	}

	return view
}
