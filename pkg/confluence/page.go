package confluence

// Fallback literals substituted for missing optional fields.
const (
	FallbackTitle       = "No Title"
	FallbackLastUpdated = "N/A"
)

// Page is the subset of the content-by-id payload this tool reads.
// Values are transient: fetched per URL, consumed by the formatter,
// never mutated after decoding.
type Page struct {
	Title   string  `json:"title"`
	Space   Space   `json:"space"`
	Body    Body    `json:"body"`
	Version Version `json:"version"`
	History History `json:"history"`
	Links   Links   `json:"_links"`
}

// Space identifies the space a page belongs to.
type Space struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Body wraps the storage-format representation of the page body.
type Body struct {
	Storage Storage `json:"storage"`
}

// Storage carries the storage-format HTML of the page body.
type Storage struct {
	Value string `json:"value"`
}

// Version carries the human-readable last-updated string.
type Version struct {
	FriendlyWhen string `json:"friendlyWhen"`
}

// History carries the page creation history.
type History struct {
	CreatedBy User `json:"createdBy"`
}

// User is a Confluence user, as embedded in page history or returned by
// the user-by-accountId endpoint.
type User struct {
	AccountID   string `json:"accountId"`
	DisplayName string `json:"displayName"`
}

// Links carries the page's web UI link.
type Links struct {
	WebUI string `json:"webui"`
}

// DisplayTitle returns the page title, or "No Title" when absent.
func (p *Page) DisplayTitle() string {
	if p.Title == "" {
		return FallbackTitle
	}
	return p.Title
}

// SpaceName returns the space name, falling back to the space key.
func (p *Page) SpaceName() string {
	if p.Space.Name == "" {
		return p.Space.Key
	}
	return p.Space.Name
}

// LastUpdated returns the friendly last-updated string, or "N/A" when absent.
func (p *Page) LastUpdated() string {
	if p.Version.FriendlyWhen == "" {
		return FallbackLastUpdated
	}
	return p.Version.FriendlyWhen
}

// WebLink returns the page's web UI link, or fallback (normally the input
// URL) when the payload carries none.
func (p *Page) WebLink(fallback string) string {
	if p.Links.WebUI == "" {
		return fallback
	}
	return p.Links.WebUI
}
