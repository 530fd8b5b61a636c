package aggregate

type ProductVersion struct {
	Branch    string `json:"branch"`
	HostDocs  bool   `json:"hostDocs"`
	VDropdown bool   `json:"v-dropdown,omitempty"`

	// DocsDir is the content root inside the product repository.
	DocsDir string `json:"docsDir,omitempty"`

	// Sidebar is the product sidebar file, relative to DocsDir.
	Sidebar string `json:"sidebar,omitempty"`
}

type Product struct {
	Name          string           `json:"-"`
	URL           string           `json:"url"`
	Versions      []ProductVersion `json:"versions"`
	LatestVersion string           `json:"latestVersion"`
	GithubURL     string           `json:"githubUrl"`
}

type DocAggregator struct {
	// Base is the shared sidebar file every product is layered onto.
	Base string `json:"base"`

	// Content is the shared content root paired with Base.
	Content string `json:"content,omitempty"`

	Products map[string]Product `json:"products"`
}
