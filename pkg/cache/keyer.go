package cache

// Keyer builds cache keys. Keys embed a hash of every option that affects the
// cached value.
type Keyer interface {
	// TreeKey identifies a grown tree by the hash of its settings.
	TreeKey(settingsHash string, opts TreeKeyOpts) string
	// ArtifactKey identifies a rendered artifact of a tree.
	ArtifactKey(treeHash string, opts ArtifactKeyOpts) string
}

// TreeKeyOpts carries inputs to growth that are not part of the settings.
type TreeKeyOpts struct {
	// Engine versions the growth algorithm. Bumping it invalidates every
	// cached tree.
	Engine string `json:"engine"`
}

// ArtifactKeyOpts carries every render option.
type ArtifactKeyOpts struct {
	Format    string  `json:"format"`
	View      string  `json:"view,omitempty"`
	Width     float64 `json:"width,omitempty"`
	Height    float64 `json:"height,omitempty"`
	Colour    string  `json:"colour,omitempty"`
	Thickness float64 `json:"thickness,omitempty"`
	Detailed  bool    `json:"detailed,omitempty"`
	Settings  string  `json:"settings,omitempty"` // hash of settings embedded in the artifact
}

// DefaultKeyer produces unscoped keys of the form "kind:sha256".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// TreeKey implements Keyer.
func (DefaultKeyer) TreeKey(settingsHash string, opts TreeKeyOpts) string {
	return hashKey("tree", settingsHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(treeHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", treeHash, opts)
}
