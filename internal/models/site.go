package models

// PlaceholderImage is used wherever a content image is missing.
const PlaceholderImage = "/static/img/placeholder.svg"

// Site is the complete page content
type Site struct {
	Meta      Meta      `yaml:"meta"`
	Brand     string    `yaml:"brand"`
	Nav       []Link    `yaml:"nav"`
	CTA       Link      `yaml:"cta"`
	Hero      Hero      `yaml:"hero"`
	Approach  Approach  `yaml:"approach"`
	Showcase  Showcase  `yaml:"showcase"`
	Partners  Partners  `yaml:"partners"`
	Portfolio Portfolio `yaml:"portfolio"`
	Social    Social    `yaml:"social"`
	Contact   Contact   `yaml:"contact"`
	Footer    Footer    `yaml:"footer"`
}

// Meta holds document metadata
type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	FontFamily  string `yaml:"font_family"`
	FontURL     string `yaml:"font_url"`
}

// Link is an anchor with optional accessible label
type Link struct {
	Text  string `yaml:"text"`
	Href  string `yaml:"href"`
	Label string `yaml:"label"`
}

// Hero is the landing section
type Hero struct {
	Wordmark string  `yaml:"wordmark"`
	Headline string  `yaml:"headline"`
	Tagline  string  `yaml:"tagline"`
	Actions  []Link  `yaml:"actions"`
	Slashes  []Slash `yaml:"slashes"`
}

// Slash is one red slash of the hero visual
type Slash struct {
	Image        string `yaml:"image"`
	Alt          string `yaml:"alt"`
	Illustration int    `yaml:"illustration"`
}

// Approach is the numbered approach section
type Approach struct {
	Heading string `yaml:"heading"`
	Intro   string `yaml:"intro"`
	Steps   []Step `yaml:"steps"`
}

// Step is one numbered approach card
type Step struct {
	Number  string `yaml:"number"`
	Heading string `yaml:"heading"`
	Text    string `yaml:"text"`
}

// Showcase is the partners headline with scroll buttons
type Showcase struct {
	Lines   []string        `yaml:"lines"`
	Anchors []PartnerAnchor `yaml:"anchors"`
}

// PartnerAnchor is a button that scrolls to a partner card
type PartnerAnchor struct {
	Name   string `yaml:"name"`
	Target string `yaml:"target"`
	Label  string `yaml:"label"`
	Lead   bool   `yaml:"lead"`
}

// Partners is the partners detail section
type Partners struct {
	Heading    string     `yaml:"heading"`
	Intro      string     `yaml:"intro"`
	Categories []Category `yaml:"categories"`
}

// Category is one portfolio category block
type Category struct {
	ID           string   `yaml:"id"`
	Title        string   `yaml:"title"`
	CompanyName  string   `yaml:"company_name"`
	Tagline      string   `yaml:"tagline"`
	TaglineColor string   `yaml:"tagline_color"`
	Bullets      []string `yaml:"bullets"`
	Image        string   `yaml:"image"`
}

// ImagePath returns the category image, or the placeholder when unset.
func (c Category) ImagePath() string {
	if c.Image == "" {
		return PlaceholderImage
	}
	return c.Image
}

// Social is the social feed section
type Social struct {
	Heading string `yaml:"heading"`
	Intro   string `yaml:"intro"`
	Feeds   []Feed `yaml:"feeds"`
}

// Feed is one embedded social feed column
type Feed struct {
	Platform string `yaml:"platform"`
	Title    string `yaml:"title"`
	Accent   string `yaml:"accent"`
	Follow   Link   `yaml:"follow"`
}

// Contact is the call-to-action section
type Contact struct {
	Heading string `yaml:"heading"`
	Text    string `yaml:"text"`
	Actions []Link `yaml:"actions"`
}

// Footer is the page footer
type Footer struct {
	Blurb     string         `yaml:"blurb"`
	Columns   []FooterColumn `yaml:"columns"`
	Copyright string         `yaml:"copyright"`
	Legal     []Link         `yaml:"legal"`
}

// FooterColumn is a titled list of footer links
type FooterColumn struct {
	Title string `yaml:"title"`
	Links []Link `yaml:"links"`
}
