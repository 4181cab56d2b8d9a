package roster

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arnavshah/camp-scheduler-api/pkg/models"
	"gopkg.in/yaml.v3"
)

// Decode reads a YAML roster snapshot
func Decode(r io.Reader) (models.Roster, error) {
	var in models.RosterInput
	if err := yaml.NewDecoder(r).Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return models.NewRoster(), nil
		}
		return models.Roster{}, fmt.Errorf("decode roster: %w", err)
	}
	return FromInput(in)
}

// Encode writes a YAML roster snapshot
func Encode(w io.Writer, r models.Roster) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ToInput(r)); err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	return enc.Close()
}

// LoadFile reads a roster snapshot from path
func LoadFile(path string) (models.Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Roster{}, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// SaveFile writes a roster snapshot to path
func SaveFile(path string, r models.Roster) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create roster: %w", err)
	}
	if err := Encode(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
