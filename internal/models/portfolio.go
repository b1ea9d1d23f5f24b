package models

// PortfolioItem represents a portfolio company
type PortfolioItem struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Year  int    `json:"year" yaml:"year"`
	Stage string `json:"stage" yaml:"stage"`
	URL   string `json:"url,omitempty" yaml:"url"`
}

// Portfolio wraps the portfolio grid section
type Portfolio struct {
	Heading string          `yaml:"heading"`
	Intro   string          `yaml:"intro"`
	Items   []PortfolioItem `yaml:"items"`
	ViewAll Link            `yaml:"view_all"`
}
