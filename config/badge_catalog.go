package config

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed badges.yaml
var defaultBadgeCatalog []byte

// BadgeThreshold is one XP milestone that unlocks a named badge.
type BadgeThreshold struct {
	Name          string `yaml:"name"`
	Description   string `yaml:"description"`
	XPRequirement int    `yaml:"xp_requirement"`
}

// BadgeCatalog is the ordered threshold table, lowest requirement first.
type BadgeCatalog struct {
	Badges []BadgeThreshold `yaml:"badges"`
}

// LoadBadgeCatalog reads the catalog from path, or the embedded default when
// path is empty.
func LoadBadgeCatalog(path string) (BadgeCatalog, error) {
	raw := defaultBadgeCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return BadgeCatalog{}, fmt.Errorf("read badge catalog %s: %w", path, err)
		}
		raw = b
	}
	return ParseBadgeCatalog(raw)
}

// ParseBadgeCatalog decodes and validates a YAML catalog. Entries are sorted
// by ascending requirement; ties keep file order.
func ParseBadgeCatalog(raw []byte) (BadgeCatalog, error) {
	var catalog BadgeCatalog
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return BadgeCatalog{}, fmt.Errorf("parse badge catalog: %w", err)
	}

	seen := make(map[string]bool, len(catalog.Badges))
	for i := range catalog.Badges {
		b := &catalog.Badges[i]
		b.Name = strings.TrimSpace(b.Name)
		if b.Name == "" {
			return BadgeCatalog{}, fmt.Errorf("badge catalog entry %d has no name", i)
		}
		if b.XPRequirement < 0 {
			return BadgeCatalog{}, fmt.Errorf("badge %q has negative xp_requirement %d", b.Name, b.XPRequirement)
		}
		if seen[b.Name] {
			return BadgeCatalog{}, fmt.Errorf("badge %q is listed twice", b.Name)
		}
		seen[b.Name] = true
	}

	sort.SliceStable(catalog.Badges, func(i, j int) bool {
		return catalog.Badges[i].XPRequirement < catalog.Badges[j].XPRequirement
	})
	return catalog, nil
}
