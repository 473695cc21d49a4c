package config

import "testing"

func TestDefaultBadgeCatalog(t *testing.T) {
	catalog, err := LoadBadgeCatalog("")
	if err != nil {
		t.Fatalf("LoadBadgeCatalog: %v", err)
	}

	want := []struct {
		name string
		xp   int
	}{
		{"Seedling", 0},
		{"Sprout", 50},
		{"Growing Strong", 100},
		{"Climate Champion", 250},
		{"Farming Expert", 500},
	}
	if len(catalog.Badges) != len(want) {
		t.Fatalf("got %d badges, want %d", len(catalog.Badges), len(want))
	}
	for i, w := range want {
		got := catalog.Badges[i]
		if got.Name != w.name || got.XPRequirement != w.xp {
			t.Errorf("badge %d = %s/%d, want %s/%d", i, got.Name, got.XPRequirement, w.name, w.xp)
		}
	}
}

func TestParseBadgeCatalogSortsByRequirement(t *testing.T) {
	raw := []byte(`
badges:
  - name: Big
    xp_requirement: 900
  - name: Small
    xp_requirement: 10
`)
	catalog, err := ParseBadgeCatalog(raw)
	if err != nil {
		t.Fatalf("ParseBadgeCatalog: %v", err)
	}
	if catalog.Badges[0].Name != "Small" || catalog.Badges[1].Name != "Big" {
		t.Fatalf("unexpected order: %+v", catalog.Badges)
	}
}

func TestParseBadgeCatalogRejectsBadEntries(t *testing.T) {
	cases := map[string]string{
		"duplicate": "badges:\n  - name: A\n    xp_requirement: 1\n  - name: A\n    xp_requirement: 2\n",
		"negative":  "badges:\n  - name: A\n    xp_requirement: -1\n",
		"unnamed":   "badges:\n  - name: \"  \"\n    xp_requirement: 1\n",
		"malformed": "badges: [",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseBadgeCatalog([]byte(raw)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
