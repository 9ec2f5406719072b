// Package output renders detection results as json, yaml or a table.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pkg/errors"
	"github.com/vercel/pmdetect/internal/packagemanager"
	"gopkg.in/yaml.v3"
)

// Format selects how results are printed.
type Format string

const (
	JSON  Format = "json"
	YAML  Format = "yaml"
	Table Format = "table"
)

// ParseFormat validates a format name.
func ParseFormat(raw string) (Format, error) {
	switch format := Format(raw); format {
	case JSON, YAML, Table:
		return format, nil
	default:
		return "", errors.Errorf("invalid format %q: expected one of json, yaml, table", raw)
	}
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// WriteCommands prints a command set.
func WriteCommands(w io.Writer, format Format, commands packagemanager.CommandSet) error {
	if format != Table {
		return write(w, format, commands)
	}
	rows := [][]string{
		{"name", commands.Name},
		{"agent", string(commands.Agent)},
	}
	for _, action := range packagemanager.Actions {
		command, _ := commands.Command(action)
		rows = append(rows, []string{string(action), command})
	}
	return writeTable(w, []string{"action", "command"}, rows)
}

// WriteIdentity prints a detected package manager. The version is left out
// when it is unknown.
func WriteIdentity(w io.Writer, format Format, id packagemanager.Identity) error {
	if format != Table {
		return write(w, format, id)
	}
	rows := [][]string{{"name", string(id.Name)}}
	if id.Version != "" {
		rows = append(rows, []string{"version", id.Version})
	}
	return writeTable(w, []string{"field", "value"}, rows)
}

func write(w io.Writer, format Format, v interface{}) error {
	switch format {
	case JSON:
		payload, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", payload)
		return err
	case YAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return errors.Errorf("invalid format %q", format)
	}
}

func writeTable(w io.Writer, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
