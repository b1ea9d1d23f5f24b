package feed

import (
	"fmt"
	"strings"
)

// Platform identifies a social network with an embeddable feed.
type Platform int

const (
	LinkedIn Platform = iota
	Twitter
)

const (
	twitterTimelineURL = "https://twitter.com/G1_Ventures?ref_src=twsrc%5Etfw"
	twitterScriptURL   = "https://platform.twitter.com/widgets.js"
	linkedInEmbedURL   = "https://www.linkedin.com/company/embed/g1vc/"
)

// ParsePlatform maps a platform name such as "twitter" to a Platform.
func ParsePlatform(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linkedin":
		return LinkedIn, nil
	case "twitter":
		return Twitter, nil
	default:
		return 0, fmt.Errorf("unknown feed platform %q", name)
	}
}

func (p Platform) String() string {
	switch p {
	case LinkedIn:
		return "linkedin"
	case Twitter:
		return "twitter"
	default:
		return fmt.Sprintf("platform(%d)", int(p))
	}
}

// Label is the display name of the platform.
func (p Platform) Label() string {
	if p == Twitter {
		return "Twitter"
	}
	return "LinkedIn"
}

// EmbedURL is the external address the live embed points at.
func (p Platform) EmbedURL() string {
	if p == Twitter {
		return twitterTimelineURL
	}
	return linkedInEmbedURL
}

// ScriptURL is the third-party script that upgrades the embed markup, if any.
func (p Platform) ScriptURL() string {
	if p == Twitter {
		return twitterScriptURL
	}
	return ""
}
