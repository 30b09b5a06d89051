package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/folio"
	"github.com/tsawler/folio/model"
)

var (
	pageWidth  float64
	pageHeight float64
	margin     float64
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.html>",
	Short: "Reconstruct lines and pages from an HTML document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		analyzer := folio.FromHTML(args[0]).
			PageWidth(pageWidth).
			PageHeight(pageHeight).
			Margin(margin)

		doc, warnings, err := analyzer.Document()
		if err != nil {
			return err
		}

		for _, w := range warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
		}

		return writeReport(cmd, buildReport(doc))
	},
}

func init() {
	analyzeCmd.Flags().Float64Var(&pageWidth, "page-width", 800, "page width in document units")
	analyzeCmd.Flags().Float64Var(&pageHeight, "page-height", 600, "page height in document units")
	analyzeCmd.Flags().Float64Var(&margin, "margin", 40, "page margin in document units")
}

// rectReport is the serializable view of a rectangle.
type rectReport struct {
	Left   float64 `json:"left" yaml:"left"`
	Top    float64 `json:"top" yaml:"top"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
}

// lineReport is the serializable view of a reconstructed line.
type lineReport struct {
	Text  string     `json:"text" yaml:"text"`
	Rect  rectReport `json:"rect" yaml:"rect"`
	Words int        `json:"words" yaml:"words"`
}

// pageReport is the serializable view of a reconstructed page.
type pageReport struct {
	Index int          `json:"index" yaml:"index"`
	Lines []lineReport `json:"lines" yaml:"lines"`
}

// docReport is the top-level analyze output.
type docReport struct {
	PageCount int          `json:"pageCount" yaml:"pageCount"`
	LineCount int          `json:"lineCount" yaml:"lineCount"`
	Pages     []pageReport `json:"pages" yaml:"pages"`
}

func buildReport(doc *model.Document) docReport {
	report := docReport{
		PageCount: doc.PageCount(),
		LineCount: doc.LineCount(),
		Pages:     make([]pageReport, 0, doc.PageCount()),
	}

	for _, page := range doc.Pages {
		pr := pageReport{
			Index: page.Index,
			Lines: make([]lineReport, 0, page.LineCount()),
		}
		for _, line := range page.Lines {
			pr.Lines = append(pr.Lines, lineReport{
				Text: line.Text,
				Rect: rectReport{
					Left:   line.Rect.Left,
					Top:    line.Rect.Top,
					Right:  line.Rect.Right,
					Bottom: line.Rect.Bottom,
				},
				Words: line.FragmentCount(),
			})
		}
		report.Pages = append(report.Pages, pr)
	}

	return report
}

func writeReport(cmd *cobra.Command, report docReport) error {
	out := cmd.OutOrStdout()

	switch outputFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)

	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(report)

	case "text":
		for _, page := range report.Pages {
			fmt.Fprintf(out, "--- page %d (%d lines)\n", page.Index, len(page.Lines))
			for _, line := range page.Lines {
				fmt.Fprintln(out, line.Text)
			}
		}
		return nil

	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", outputFormat)
	}
}
