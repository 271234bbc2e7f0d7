package selection

import (
	"slices"
	"testing"

	"github.com/thoreinstein/plinks/internal/browser"
)

func intPtr(i int) *int { return &i }

func TestAssemble(t *testing.T) {
	insts := testInstallations()
	profile := defaultProfile

	tests := []struct {
		name    string
		session Session
		wantOK  bool
	}{
		{"complete", Session{URI: testURI, Installations: &insts, Index: intPtr(0), Profile: &profile, Executable: "/opt/firefox/firefox"}, true},
		{"no index", Session{URI: testURI, Installations: &insts, Profile: &profile, Executable: "/x"}, false},
		{"index out of range", Session{URI: testURI, Installations: &insts, Index: intPtr(5), Profile: &profile, Executable: "/x"}, false},
		{"negative index", Session{URI: testURI, Installations: &insts, Index: intPtr(-1), Profile: &profile, Executable: "/x"}, false},
		{"no profile", Session{URI: testURI, Installations: &insts, Index: intPtr(0), Executable: "/x"}, false},
		{"no executable", Session{URI: testURI, Installations: &insts, Index: intPtr(0), Profile: &profile}, false},
		{"no installations", Session{URI: testURI, Index: intPtr(0), Profile: &profile, Executable: "/x"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, ok := Assemble(&tt.session)
			if ok != tt.wantOK {
				t.Fatalf("Assemble() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				if desc != nil {
					t.Errorf("Assemble() = %+v, want nil", desc)
				}
				return
			}
			if desc.Kind != browser.Firefox || desc.Executable != "/opt/firefox/firefox" || desc.Profile != profile {
				t.Errorf("Assemble() = %+v", desc)
			}
		})
	}
}

func TestDescriptorArgsCustom(t *testing.T) {
	custom := &browser.Custom{
		Executable:  "floorp",
		DisplayName: "Floorp",
		Template: browser.ArgTemplate{
			Args:         []string{"-P", "", "--new-tab", ""},
			ProfileIndex: 1,
			URIIndex:     3,
		},
	}
	desc := &Descriptor{URI: testURI, Kind: custom, Executable: "/opt/floorp/floorp", Profile: workProfile}

	want := []string{"-P", workProfile.Path, "--new-tab", testURI}
	if got := desc.Args(); !slices.Equal(got, want) {
		t.Errorf("Args() = %v, want %v", got, want)
	}
}
