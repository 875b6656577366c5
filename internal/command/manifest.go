package command

// Manifest describes the registered commands for the hosting platform and
// for operators. Both surfaces are listed from the same descriptors.
type Manifest struct {
	Prefix   string          `json:"prefix"`
	Commands []ManifestEntry `json:"commands"`
}

// ManifestEntry is one command in a Manifest.
type ManifestEntry struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Usage       string          `json:"usage"`
	Options     []ManifestParam `json:"options,omitempty"`
}

// ManifestParam is one parameter of a ManifestEntry.
type ManifestParam struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Default     string `json:"default,omitempty"`
}

// Manifest lists every registered command with its free-text usage.
func (r *Router) Manifest(prefix string) Manifest {
	m := Manifest{Prefix: prefix}
	for _, d := range r.Descriptors() {
		entry := ManifestEntry{
			Name:        d.Name,
			Description: d.Description,
			Usage:       d.Usage(prefix),
		}
		for _, p := range d.Params {
			mp := ManifestParam{
				Name:        p.Name,
				Description: p.Description,
				Type:        p.Kind.String(),
				Required:    !p.Optional,
			}
			if p.Default == DefaultCaller {
				mp.Default = "caller"
			}
			entry.Options = append(entry.Options, mp)
		}
		m.Commands = append(m.Commands, entry)
	}
	return m
}
