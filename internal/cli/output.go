package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/aretw0/najia/internal/presentation/chart"
	"github.com/aretw0/najia/internal/presentation/tui"
	"github.com/aretw0/najia/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// Formats lists the accepted --format values.
var Formats = []string{FormatText, FormatMarkdown, FormatJSON, FormatYAML}

// WriteReading prints one reading in the requested format.
func WriteReading(w io.Writer, r *domain.Reading, format string) error {
	switch format {
	case FormatText, "":
		_, err := fmt.Fprintf(w, "%s\nVerdict: %s\n", chart.Text(r), tui.Verdict(w, r.Analysis.Evaluation.Verdict))
		return err
	case FormatMarkdown:
		out, err := tui.NewRenderer(w)(chart.Markdown(r))
		if err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		_, err = io.WriteString(w, out)
		return err
	default:
		return WriteData(w, r, format)
	}
}

// WriteEntry prints one catalog entry.
func WriteEntry(w io.Writer, e domain.CatalogEntry, format string) error {
	switch format {
	case FormatText, FormatMarkdown, "":
		_, err := fmt.Fprintf(w, "#%d %s %s (%s)\n%s over %s · %s palace (%s), %s generation · World %d, Response %d\n%s\n",
			e.Number, e.Name, e.Pinyin, e.Title,
			e.Upper, e.Lower, e.Palace, e.Element, e.Generation, e.World, e.Response,
			e.Meaning)
		return err
	default:
		return WriteData(w, e, format)
	}
}

// WriteHistory prints a one-line summary per reading.
func WriteHistory(w io.Writer, readings []*domain.Reading, format string) error {
	switch format {
	case FormatText, FormatMarkdown, "":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tCAST AT\tMETHOD\tHEXAGRAM\tVERDICT\tQUERY")
		for _, r := range readings {
			c := r.Case
			fmt.Fprintf(tw, "%s\t%s\t%s\t#%d %s\t%s\t%s\n",
				c.ID, c.CastAt.Format("2006-01-02 15:04"), c.Method,
				c.Original.Number, c.Original.Name, r.Analysis.Evaluation.Verdict, c.Query)
		}
		return tw.Flush()
	default:
		return WriteData(w, readings, format)
	}
}

// WriteData encodes v as JSON or YAML.
func WriteData(w io.Writer, v any, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// ParseNumbers reads cast numbers from arguments; each argument may itself be
// a comma-separated list.
func ParseNumbers(args []string) ([]int, error) {
	var out []int
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, domain.InvalidInput(domain.MethodNumbers, "%q is not an integer", field)
			}
			out = append(out, n)
		}
	}
	return out, nil
}
