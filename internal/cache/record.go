package cache

import (
	"github.com/thoreinstein/plinks/internal/browser"
	"github.com/thoreinstein/plinks/internal/errors"
)

type document struct {
	Version       int                  `toml:"version"`
	Installations []installationRecord `toml:"installations"`
}

type installationRecord struct {
	Name       string            `toml:"name,omitempty"`
	Kind       browser.KindID    `toml:"kind"`
	Executable string            `toml:"executable"`
	Aliases    []string          `toml:"aliases,omitempty"`
	Preferred  map[string]string `toml:"preferred,omitempty"`
	Profiles   []profileRecord   `toml:"profiles"`
	LastUsed   *profileRecord    `toml:"last_used,omitempty"`
	Custom     *customRecord     `toml:"custom,omitempty"`
}

type profileRecord struct {
	Name string `toml:"name"`
	Path string `toml:"path"`
}

type customRecord struct {
	Name         string          `toml:"name"`
	Executable   string          `toml:"executable"`
	Args         []string        `toml:"args"`
	ProfileIndex int             `toml:"profile_index"`
	URIIndex     int             `toml:"uri_index"`
	Icon         string          `toml:"icon,omitempty"`
	RegistryFile string          `toml:"registry_file,omitempty"`
	Profiles     []profileRecord `toml:"profiles,omitempty"`
}

func newRecord(inst *browser.Installation) installationRecord {
	rec := installationRecord{
		Name:       inst.NameOverride,
		Kind:       inst.Kind.ID(),
		Executable: inst.ExePath,
		Aliases:    inst.Aliases,
		Preferred:  inst.Preferred,
		Profiles:   toProfileRecords(inst.Profiles),
	}
	if inst.LastUsed != nil {
		rec.LastUsed = &profileRecord{Name: inst.LastUsed.Name, Path: inst.LastUsed.Path}
	}
	if c, ok := inst.Kind.(*browser.Custom); ok {
		rec.Custom = &customRecord{
			Name:         c.DisplayName,
			Executable:   c.Executable,
			Args:         c.Template.Args,
			ProfileIndex: c.Template.ProfileIndex,
			URIIndex:     c.Template.URIIndex,
			Icon:         c.IconPath,
			RegistryFile: c.RegistryFile,
			Profiles:     toProfileRecords(c.StaticProfiles),
		}
	}
	return rec
}

func (r installationRecord) installation() (browser.Installation, error) {
	kind, err := r.kind()
	if err != nil {
		return browser.Installation{}, err
	}
	if len(r.Profiles) == 0 {
		return browser.Installation{}, errors.Newf("installation %s has no profiles", r.Executable)
	}

	inst := browser.Installation{
		NameOverride: r.Name,
		Kind:         kind,
		ExePath:      r.Executable,
		Aliases:      r.Aliases,
		Preferred:    make(map[string]string, len(r.Preferred)),
		Profiles:     fromProfileRecords(r.Profiles),
	}
	for profile, exe := range r.Preferred {
		if inst.HasProfile(profile) {
			inst.Preferred[profile] = exe
		}
	}
	if r.LastUsed != nil && inst.HasProfile(r.LastUsed.Path) {
		inst.LastUsed = &browser.Profile{Name: r.LastUsed.Name, Path: r.LastUsed.Path}
	}
	return inst, nil
}

func (r installationRecord) kind() (browser.Kind, error) {
	if r.Kind != browser.KindCustom {
		kind, ok := browser.ByID(r.Kind)
		if !ok {
			return nil, errors.Newf("unknown browser kind %q", r.Kind)
		}
		return kind, nil
	}

	if r.Custom == nil {
		return nil, errors.New("custom installation without a definition")
	}
	c := &browser.Custom{
		Executable:  r.Custom.Executable,
		DisplayName: r.Custom.Name,
		Template: browser.ArgTemplate{
			Args:         r.Custom.Args,
			ProfileIndex: r.Custom.ProfileIndex,
			URIIndex:     r.Custom.URIIndex,
		},
		IconPath:       r.Custom.Icon,
		RegistryFile:   r.Custom.RegistryFile,
		StaticProfiles: fromProfileRecords(r.Custom.Profiles),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func toProfileRecords(profiles []browser.Profile) []profileRecord {
	if len(profiles) == 0 {
		return nil
	}
	out := make([]profileRecord, len(profiles))
	for i, p := range profiles {
		out[i] = profileRecord(p)
	}
	return out
}

func fromProfileRecords(records []profileRecord) []browser.Profile {
	if len(records) == 0 {
		return nil
	}
	out := make([]browser.Profile, len(records))
	for i, r := range records {
		out[i] = browser.Profile(r)
	}
	return out
}
