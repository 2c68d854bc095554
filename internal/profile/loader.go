// ABOUTME: YAML profile override loading from global and project files.
// ABOUTME: Overrides overlay the builtin table; malformed files fail loudly with their path.

package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/keywire/pkg/keyseq"
)

// overrideFile is the on-disk YAML schema:
//
//	profiles:
//	  - name: myapp
//	    aliases: [ma]
//	    schemes: [csi-u, literal]
//	    notes: "..."
type overrideFile struct {
	Profiles []overrideProfile `yaml:"profiles"`
}

type overrideProfile struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
	Schemes []string `yaml:"schemes"`
	Notes   string   `yaml:"notes"`
}

// Load builds the registry from the builtin table overlaid with the given
// override files in order, later files winning. Missing files are skipped;
// malformed ones fail with their path.
func Load(paths ...string) (*Registry, error) {
	profiles := Builtin()
	for _, path := range paths {
		if path == "" {
			continue
		}
		overrides, err := loadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		profiles = append(profiles, overrides...)
	}
	return newRegistry(profiles), nil
}

func loadFile(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file overrideFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	profiles := make([]Profile, 0, len(file.Profiles))
	for _, op := range file.Profiles {
		if op.Name == "" {
			return nil, fmt.Errorf("%s: profile entry with no name", path)
		}
		p := Profile{Name: op.Name, Aliases: op.Aliases, Notes: op.Notes}
		if op.Schemes != nil {
			p.Schemes = make([]keyseq.Scheme, 0, len(op.Schemes))
			for _, name := range op.Schemes {
				s, err := keyseq.ParseScheme(name)
				if err != nil {
					return nil, fmt.Errorf("%s: profile %q: %w", path, op.Name, err)
				}
				p.Schemes = append(p.Schemes, s)
			}
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}
