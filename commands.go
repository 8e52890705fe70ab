package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/olivier-w/rope/internal/carousel"
	"github.com/olivier-w/rope/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00BFA6"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})
}

func focusMark(ring *carousel.State, i int) string {
	if i == ring.ActiveIndex() {
		return "●"
	}
	return ""
}

func (o *options) runSystems(cmd *cobra.Command, _ []string) error {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return err
	}
	cat, ring, err := loadRing(cfg)
	if err != nil {
		return err
	}

	if o.systemsYAML {
		data, err := catalog.Marshal(catalog.Catalog{Default: ring.ActiveID(), Systems: cat.Systems})
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	t := newTable("", "ID", "LABEL", "STATUS", "VALUE")
	for i, sys := range ring.Systems() {
		t.Row(focusMark(ring, i), sys.ID, sys.Label, sys.Status, sys.Value)
	}
	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return nil
}

func (o *options) runLayout(cmd *cobra.Command, _ []string) error {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return err
	}
	_, ring, err := loadRing(cfg)
	if err != nil {
		return err
	}
	if o.layoutActive != "" {
		if err := ring.SelectByID(o.layoutActive); err != nil {
			return err
		}
	}
	ring.SetRotation(o.layoutRotation)

	t := newTable("", "#", "ID", "X", "Y", "Z")
	systems := ring.Systems()
	for i, pos := range ring.Positions() {
		sys := systems[i]
		t.Row(focusMark(ring, i), strconv.Itoa(i), sys.ID, coord(pos.X), coord(pos.Y), coord(pos.Z))
	}
	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return nil
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
