package catalog

// Module is a top-level content category. Its ID never changes after
// creation and its guides keep insertion order, which is the display order.
type Module struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Guides      []Guide `json:"guides"`
}

// Guide is a single instructional unit owned by exactly one module. Steps
// are opaque rich-text fragments whose order is meaningful and preserved
// verbatim.
type Guide struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	VideoURL    string   `json:"videoUrl"`
	Steps       []string `json:"steps"`
}

// FindGuide returns the guide with the given ID, or false if the module does
// not contain it.
func (m *Module) FindGuide(guideID string) (*Guide, bool) {
	for i := range m.Guides {
		if m.Guides[i].ID == guideID {
			return &m.Guides[i], true
		}
	}
	return nil, false
}

// Clone returns a deep copy so callers can never reach into the service's
// in-memory state.
func (m Module) Clone() Module {
	out := m
	out.Guides = make([]Guide, len(m.Guides))
	for i, g := range m.Guides {
		out.Guides[i] = g.Clone()
	}
	return out
}

// Clone returns a deep copy of the guide, including its step slice.
func (g Guide) Clone() Guide {
	out := g
	out.Steps = append([]string(nil), g.Steps...)
	return out
}

func cloneModules(modules []Module) []Module {
	out := make([]Module, len(modules))
	for i, m := range modules {
		out[i] = m.Clone()
	}
	return out
}
