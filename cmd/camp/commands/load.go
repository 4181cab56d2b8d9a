package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/arnavshah/camp-scheduler-api/pkg/models"
	"github.com/arnavshah/camp-scheduler-api/pkg/printer"
	"github.com/arnavshah/camp-scheduler-api/pkg/roster"
)

// loadRoster reads the roster file named by --roster
func loadRoster() (models.Roster, error) {
	r, err := roster.LoadFile(rosterPath)
	if errors.Is(err, fs.ErrNotExist) {
		return r, printer.Error(
			"Roster file not found",
			fmt.Sprintf("No roster at %s.", rosterPath),
			[]string{
				"Add staff with: camp roster set <group> <slot> <name>",
				"Point at an existing file with --roster",
			},
		)
	}
	if err != nil {
		return r, printer.Error("Could not read roster", err.Error(), nil)
	}
	return r, nil
}

// loadOrCreateRoster is loadRoster but starts empty when the file does not exist yet
func loadOrCreateRoster() (models.Roster, error) {
	r, err := roster.LoadFile(rosterPath)
	if errors.Is(err, fs.ErrNotExist) {
		return models.NewRoster(), nil
	}
	if err != nil {
		return r, printer.Error("Could not read roster", err.Error(), nil)
	}
	return r, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
