package assets

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var siteYAML []byte

// Stat is one animated counter.
type Stat struct {
	End    int     `yaml:"end"`
	Suffix string  `yaml:"suffix"`
	Label  string  `yaml:"label"`
	Delay  float32 `yaml:"delay"`
}

type Section struct {
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
}

// Page is the copy of one static page.
type Page struct {
	Title    string    `yaml:"title"`
	Subtitle string    `yaml:"subtitle"`
	Sections []Section `yaml:"sections"`
	Stats    []Stat    `yaml:"stats"`
}

type Project struct {
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	Location    string   `yaml:"location"`
	Description string   `yaml:"description"`
	Details     string   `yaml:"details"`
	Image       string   `yaml:"image"`
	Gallery     []string `yaml:"gallery"`
}

type Member struct {
	Name  string   `yaml:"name"`
	Title string   `yaml:"title"`
	Image string   `yaml:"image"`
	Links []string `yaml:"links"`
}

type Team struct {
	Coordinator Member   `yaml:"coordinator"`
	Core        []Member `yaml:"core"`
	Board       []Member `yaml:"board"`
}

// Site is all page content.
type Site struct {
	Home     Page      `yaml:"home"`
	Story    Page      `yaml:"story"`
	Impact   Page      `yaml:"impact"`
	Gallery  Page      `yaml:"gallery"`
	Join     Page      `yaml:"join"`
	Demo     Page      `yaml:"demo"`
	Projects []Project `yaml:"projects"`
	Team     Team      `yaml:"team"`
}

// ParseSite decodes site content from YAML.
func ParseSite(data []byte) (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse site content: %w", err)
	}
	return &s, nil
}

var site *Site

// MustLoadSite returns the embedded site content, parsing it on first use.
func MustLoadSite() *Site {
	if site != nil {
		return site
	}
	s, err := ParseSite(siteYAML)
	if err != nil {
		panic(err)
	}
	site = s
	return site
}
