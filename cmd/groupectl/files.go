package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Moefedaily/Brief-creation-groupe/internal/domain/model"
)

var errRoster = errors.New("invalid roster file")

type rosterFile struct {
	People []*model.Person `yaml:"people"`
}

type historyFile struct {
	Draws []model.Draw `yaml:"draws"`
}

type partitionFile struct {
	Groups   []model.Group  `yaml:"groups"`
	Criteria model.Criteria `yaml:"criteria"`
}

func readYAML(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// loadRoster reads and checks a roster. Ids must be positive and unique.
func loadRoster(path string) ([]*model.Person, error) {
	var rf rosterFile
	if err := readYAML(path, &rf); err != nil {
		return nil, err
	}
	seen := make(map[int]struct{}, len(rf.People))
	for i, p := range rf.People {
		if p == nil {
			return nil, fmt.Errorf("%w: entry %d is empty", errRoster, i+1)
		}
		if p.ID < 1 {
			return nil, fmt.Errorf("%w: %q has no id", errRoster, p.Name)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: id %d used twice", errRoster, p.ID)
		}
		seen[p.ID] = struct{}{}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%w: id %d: %w", errRoster, p.ID, err)
		}
	}
	return rf.People, nil
}

func loadHistory(path string) ([]model.Draw, error) {
	if path == "" {
		return nil, nil
	}
	var hf historyFile
	if err := readYAML(path, &hf); err != nil {
		return nil, err
	}
	return hf.Draws, nil
}

// parseMix turns attribute names into criteria. "all" selects every one.
func parseMix(names []string) (model.Criteria, error) {
	attrs := make([]model.Attribute, 0, len(names))
	for _, n := range names {
		if strings.EqualFold(strings.TrimSpace(n), "all") {
			return model.AllCriteria(), nil
		}
		a, err := model.ParseAttribute(n)
		if err != nil {
			return model.Criteria{}, err
		}
		attrs = append(attrs, a)
	}
	return model.CriteriaFor(attrs...), nil
}
