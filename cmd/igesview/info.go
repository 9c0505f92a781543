package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/zooyer/iges/config"
	"github.com/zooyer/iges/core"
	"github.com/zooyer/iges/store"
	"github.com/zooyer/iges/utils"
)

var (
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	titleStyle = lipgloss.NewStyle().Bold(true)
)

func newInfoCmd() *cobra.Command {
	var gap float64

	cmd := &cobra.Command{
		Use:   "info [file]",
		Short: "Print the global header, entities and diagnostics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := open(cmd, args)
			if err != nil {
				return err
			}

			if getConfig(cmd.Context()).Output == config.OutputJSON {
				return writeJSON(cmd.OutOrStdout(), c)
			}
			writeInfo(cmd.OutOrStdout(), c, gap)
			return nil
		},
	}
	cmd.Flags().Float64Var(&gap, "gap", 0, "distance under which drawing regions are merged")

	return cmd
}

func writeInfo(w io.Writer, c store.Catalog, gap float64) {
	var (
		doc = c.Document
		g   = doc.Global
	)

	_, _ = fmt.Fprintln(w, titleStyle.Render(c.Source))
	_, _ = fmt.Fprintf(w, "  sender: %s\n  file:   %s\n  system: %s\n  units:  %s (scale %g)\n  author: %s, %s\n  date:   %s\n",
		g.SenderID, g.FileName, g.SystemID, g.Units, g.ScaleValue(), g.Author, g.Organization, g.Created)
	_, _ = fmt.Fprintln(w)

	var (
		prims = c.Primitives()
		t     = table.NewWriter()
	)
	style := table.StyleLight
	style.Format.Footer = text.FormatDefault
	t.SetOutputMirror(w)
	t.SetStyle(style)
	t.AppendHeader(table.Row{"DE", "Type", "Name", "Form", "Level", "Color", "Label", "Primitives"})
	for _, rec := range doc.Records {
		dir := rec.Directory
		t.AppendRow(table.Row{
			dir.Sequence, int(dir.Type), dir.Type.String(), dir.Form,
			utils.GetAttr(dir, "level"), utils.GetAttr(dir, "color"), utils.GetAttr(dir, "label"),
			len(prims[dir.Sequence]),
		})
	}
	t.AppendFooter(table.Row{"", "", fmt.Sprintf("%d entities", len(doc.Records)), "", "", "", "", len(c.Scene.Children)})
	t.Render()

	box := utils.GroupBBoxWCS(c.Scene)
	if !box.Empty() {
		var (
			size    = utils.Size(box)
			boxes   = utils.PrimitiveBoxes(c.Scene)
			regions = utils.MergeBoxes(boxes, gap)
		)
		_, _ = fmt.Fprintf(w, "\nextent: %g x %g x %g, %d region(s)\n", size.X, size.Y, size.Z, len(regions))
		for i, region := range regions {
			var (
				count int
				rs    = utils.Size(region)
			)
			for _, b := range boxes {
				if utils.InBox(region, utils.Center(b)) {
					count++
				}
			}
			_, _ = fmt.Fprintf(w, "  region %d: %g x %g, %d primitive(s)\n", i+1, rs.X, rs.Y, count)
		}
	}

	if len(c.Diagnostics) == 0 {
		return
	}
	_, _ = fmt.Fprintf(w, "\n%s\n", titleStyle.Render(fmt.Sprintf("%d diagnostic(s)", len(c.Diagnostics))))
	for _, d := range c.Diagnostics {
		_, _ = fmt.Fprintln(w, "  "+severityStyle(d.Severity).Render(d.String()))
	}
}

func severityStyle(s core.Severity) lipgloss.Style {
	switch s {
	case core.SeverityWarn:
		return warnStyle
	case core.SeverityInfo:
		return infoStyle
	default:
		return mutedStyle
	}
}

type entityJSON struct {
	Sequence   int    `json:"seq"`
	Type       int    `json:"type"`
	Name       string `json:"name"`
	Form       int    `json:"form"`
	Label      string `json:"label,omitempty"`
	Primitives int    `json:"primitives"`
}

type diagnosticJSON struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Line     int    `json:"line,omitempty"`
	Entity   int    `json:"entity,omitempty"`
	Message  string `json:"message"`
}

type infoJSON struct {
	Source      string           `json:"source"`
	Sender      string           `json:"sender"`
	FileName    string           `json:"file_name"`
	Units       string           `json:"units"`
	Entities    []entityJSON     `json:"entities"`
	Primitives  int              `json:"primitives"`
	Diagnostics []diagnosticJSON `json:"diagnostics"`
}

func writeJSON(w io.Writer, c store.Catalog) error {
	var (
		prims = c.Primitives()
		out   = infoJSON{
			Source:      c.Source,
			Sender:      c.Document.Global.SenderID,
			FileName:    c.Document.Global.FileName,
			Units:       c.Document.Global.Units,
			Entities:    make([]entityJSON, 0, len(c.Document.Records)),
			Primitives:  len(c.Scene.Children),
			Diagnostics: make([]diagnosticJSON, 0, len(c.Diagnostics)),
		}
	)

	for _, rec := range c.Document.Records {
		dir := rec.Directory
		out.Entities = append(out.Entities, entityJSON{
			Sequence:   dir.Sequence,
			Type:       int(dir.Type),
			Name:       dir.Type.String(),
			Form:       dir.Form,
			Label:      dir.Label,
			Primitives: len(prims[dir.Sequence]),
		})
	}
	for _, d := range c.Diagnostics {
		out.Diagnostics = append(out.Diagnostics, diagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code,
			Line:     d.Line,
			Entity:   d.Entity,
			Message:  d.Message,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
