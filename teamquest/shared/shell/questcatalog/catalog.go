package questcatalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

//go:embed default_catalog.yaml
var defaultCatalogYAML []byte

// ErrLoadingCatalogFailed is returned when a catalog cannot be read or parsed.
var ErrLoadingCatalogFailed = errors.New("loading quest catalog failed")

type catalogFile struct {
	Quests []core.Quest `yaml:"quests"`
}

// Catalog is a validated, immutable list of quests.
type Catalog struct {
	quests []core.Quest
}

// Default returns the embedded catalog.
func Default() (Catalog, error) {
	return Parse(defaultCatalogYAML)
}

// Load reads the catalog at path, or the embedded one if path is empty.
func Load(path string) (Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, errors.Join(ErrLoadingCatalogFailed, err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML catalog. Unknown fields are rejected, and every
// difficulty must have enough active quests for a daily set.
func Parse(data []byte) (Catalog, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var file catalogFile
	if err := decoder.Decode(&file); err != nil {
		return Catalog{}, errors.Join(ErrLoadingCatalogFailed, err)
	}

	if err := core.ValidateCatalog(file.Quests); err != nil {
		return Catalog{}, errors.Join(ErrLoadingCatalogFailed, err)
	}

	catalog := Catalog{quests: file.Quests}

	for _, difficulty := range []core.Difficulty{core.DifficultyEasy, core.DifficultyNormal, core.DifficultyHard} {
		if n := catalog.ActiveCount(difficulty); n < core.QuestsPerDay {
			return Catalog{}, errors.Join(
				ErrLoadingCatalogFailed,
				fmt.Errorf("%w: %s has %d", core.ErrNotEnoughQuests, difficulty, n),
			)
		}
	}

	return catalog, nil
}

// Quests returns a copy of all quests.
func (c Catalog) Quests() []core.Quest {
	return append([]core.Quest(nil), c.quests...)
}

// ActiveCount counts the active quests of a difficulty.
func (c Catalog) ActiveCount(difficulty core.Difficulty) int {
	n := 0
	for _, q := range c.quests {
		if q.Active && q.Difficulty == difficulty {
			n++
		}
	}

	return n
}
