package conformance

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadedFixture pairs a Fixture with the path of the file it came from,
// relative to the directory LoadFixtures walked.
type LoadedFixture struct {
	File    string
	Fixture Fixture
}

// LoadFixtures walks dir for *.yaml files and parses each as a Fixture,
// mirroring the teacher's LoadAllTests directory walk.
func LoadFixtures(dir string) ([]LoadedFixture, error) {
	var loaded []LoadedFixture

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		var fx Fixture
		if err := yaml.Unmarshal(data, &fx); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}

		relPath, _ := filepath.Rel(dir, path)
		loaded = append(loaded, LoadedFixture{File: relPath, Fixture: fx})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return loaded, nil
}
