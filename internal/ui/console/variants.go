package console

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/mediasearch/mediasearch-cli/internal/config"
)

// RunVariantsImperative prints the configured variants as a table.
func RunVariantsImperative(cfg config.Config) error {
	fmt.Print(renderVariants(cfg))
	return nil
}

func renderVariants(cfg config.Config) string {
	var b strings.Builder
	b.WriteString(text.Bold.Sprint("variants") + "\n")
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Name", "Endpoint", "Query field", "Items key", "Items required", "Timeout"})
	for _, v := range cfg.Variants {
		name := v.Name
		if v.Name == cfg.DefaultVariant {
			name = colorGreen(v.Name + " *")
		}
		timeout := "-"
		if v.Timeout != 0 {
			timeout = v.Timeout.Std().String()
		}
		tw.AppendRow(table.Row{name, v.Endpoint, v.QueryField, v.ItemsKey, yesNo(v.RequiresItems()), timeout})
	}
	b.WriteString(tw.Render())
	b.WriteString("\n")
	if ep := cfg.Telemetry.ExporterEndpoint; ep != "" {
		b.WriteString(text.FgHiBlack.Sprint("trace exporter: "+ep) + "\n")
	}
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func colorGreen(s string) string { return text.FgGreen.Sprint(s) }
