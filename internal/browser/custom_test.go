package browser

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestArgTemplateConstructArgs(t *testing.T) {
	tmpl := ArgTemplate{
		Args:         []string{"-P", "{profile}", "--new-tab", "{uri}", "--fast"},
		ProfileIndex: 1,
		URIIndex:     3,
	}

	got := tmpl.ConstructArgs("/data/work", "https://example.com")
	want := []string{"-P", "/data/work", "--new-tab", "https://example.com", "--fast"}
	if !slices.Equal(got, want) {
		t.Errorf("ConstructArgs() = %v, want %v", got, want)
	}
	if tmpl.Args[1] != "{profile}" || tmpl.Args[3] != "{uri}" {
		t.Errorf("ConstructArgs() modified the template: %v", tmpl.Args)
	}
}

func TestArgTemplateValidate(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    ArgTemplate
		wantErr bool
	}{
		{"valid", ArgTemplate{Args: []string{"a", "b"}, ProfileIndex: 0, URIIndex: 1}, false},
		{"profile out of range", ArgTemplate{Args: []string{"a", "b"}, ProfileIndex: 2, URIIndex: 1}, true},
		{"negative uri", ArgTemplate{Args: []string{"a", "b"}, ProfileIndex: 0, URIIndex: -1}, true},
		{"shared index", ArgTemplate{Args: []string{"a", "b"}, ProfileIndex: 1, URIIndex: 1}, true},
		{"empty", ArgTemplate{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tmpl.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrTemplateIndex) {
				t.Errorf("Validate() error = %v, want ErrTemplateIndex", err)
			}
		})
	}
}

func TestCustomValidate(t *testing.T) {
	tmpl := ArgTemplate{Args: []string{"{profile}", "{uri}"}, ProfileIndex: 0, URIIndex: 1}

	c := &Custom{Executable: "floorp", DisplayName: "Floorp", Template: tmpl}
	if err := c.Validate(); !errors.Is(err, ErrNoProfileSource) {
		t.Errorf("Validate() without profile source = %v, want ErrNoProfileSource", err)
	}

	c.StaticProfiles = []Profile{{Name: "Work", Path: "/data/work"}}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	c.Executable = ""
	if err := c.Validate(); err == nil {
		t.Error("Validate() without executable should fail")
	}
}

func TestCustomProfiles(t *testing.T) {
	dir := t.TempDir()
	registry := writeRegistry(t, dir, "[Profile0]\nName=reg\nIsRelative=0\nPath=/reg\n[End]\n")

	c := &Custom{
		Executable:     "floorp",
		DisplayName:    "Floorp",
		RegistryFile:   registry,
		StaticProfiles: []Profile{{Name: "Work", Path: "/data/work"}},
		IconPath:       filepath.Join("icons", "floorp.png"),
	}

	got := c.Profiles(dir, nil)
	want := []Profile{{Name: "reg", Path: "/reg"}, {Name: "Work", Path: "/data/work"}}
	if !slices.Equal(got, want) {
		t.Errorf("Profiles() = %v, want %v", got, want)
	}

	if icon := c.Icon(dir); icon != filepath.Join(dir, "icons", "floorp.png") {
		t.Errorf("Icon() = %q", icon)
	}
	if c.ID() != KindCustom || c.Name() != "Floorp" {
		t.Errorf("ID/Name = %q/%q", c.ID(), c.Name())
	}
}
