// Package seed decodes the bundled demo data written to storage on first start.
package seed

import (
	"embed"

	"autosphere/internal/domain/entity"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var files embed.FS

// Load decodes the embedded seed files. Each call returns independent values.
func Load() (*entity.SeedCatalog, error) {
	catalog := new(entity.SeedCatalog)

	for name, target := range map[string]any{
		"data/cars.yaml":         &catalog.Cars,
		"data/users.yaml":        &catalog.Users,
		"data/site_content.yaml": &catalog.SiteContent,
		"data/test_drives.yaml":  &catalog.TestDrives,
		"data/purchases.yaml":    &catalog.Purchases,
	} {
		if err := decode(name, target); err != nil {
			return nil, err
		}
	}

	return catalog, nil
}

func decode(name string, target any) error {
	raw, err := files.ReadFile(name)
	if err != nil {
		return errors.Wrapf(err, "read seed %s", name)
	}
	if err := yaml.Unmarshal(raw, target); err != nil {
		return errors.Wrapf(err, "decode seed %s", name)
	}

	return nil
}
