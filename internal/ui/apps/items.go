package apps

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/tuikit/internal/ui/navtree"
)

// itemSpec is the TOML form of a menu item.
type itemSpec struct {
	ID       string     `toml:"id"`
	Label    string     `toml:"label"`
	Href     string     `toml:"href"`
	Icon     string     `toml:"icon"`
	Disabled bool       `toml:"disabled"`
	Children []itemSpec `toml:"children"`
}

type itemFile struct {
	Items []itemSpec `toml:"item"`
}

// LoadItems reads a menu from a TOML file of nested [[item]] tables:
//
//	[[item]]
//	id = "settings"
//	label = "Settings"
//	  [[item.children]]
//	  id = "profile"
//	  label = "Profile"
//	  href = "https://example.com/profile"
//
// Items without an id use their label.
func LoadItems(path string) ([]navtree.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}
	return ParseItems(string(data))
}

// ParseItems decodes the LoadItems format.
func ParseItems(content string) ([]navtree.Item, error) {
	var f itemFile
	if _, err := toml.Decode(content, &f); err != nil {
		return nil, fmt.Errorf("parse menu file: %w", err)
	}
	if len(f.Items) == 0 {
		return nil, fmt.Errorf("menu file has no [[item]] entries")
	}
	items, err := convertItems(f.Items, "item")
	if err != nil {
		return nil, err
	}
	return items, nil
}

func convertItems(specs []itemSpec, path string) ([]navtree.Item, error) {
	items := make([]navtree.Item, 0, len(specs))
	for i, s := range specs {
		if s.Label == "" {
			return nil, fmt.Errorf("%s[%d]: label is required", path, i)
		}
		children, err := convertItems(s.Children, fmt.Sprintf("%s[%d].children", path, i))
		if err != nil {
			return nil, err
		}
		id := s.ID
		if id == "" {
			id = s.Label
		}
		items = append(items, navtree.Item{
			ID:       id,
			Label:    s.Label,
			Href:     s.Href,
			Icon:     s.Icon,
			Disabled: s.Disabled,
			Children: children,
		})
	}
	return items, nil
}

// DemoItems is the built-in menu used when no file is given.
func DemoItems() []navtree.Item {
	return []navtree.Item{
		{ID: "home", Label: "Home"},
		{ID: "account", Label: "Account", Children: []navtree.Item{
			{ID: "profile", Label: "Profile"},
			{ID: "security", Label: "Security", Children: []navtree.Item{
				{ID: "password", Label: "Change password"},
				{ID: "sessions", Label: "Active sessions"},
				{ID: "2fa", Label: "Two-factor authentication", Disabled: true},
			}},
			{ID: "billing", Label: "Billing", Disabled: true},
		}},
		{ID: "projects", Label: "Projects", Children: []navtree.Item{
			{ID: "tuikit", Label: "tuikit"},
			{ID: "archive", Label: "Archived projects"},
		}},
		{ID: "docs", Label: "Documentation", Href: "https://github.com/raphi011/tuikit"},
		{ID: "signout", Label: "Sign out"},
	}
}
