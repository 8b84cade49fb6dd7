package console

import (
	"fmt"
	"strings"

	survey "github.com/AlecAivazis/survey/v2"

	"github.com/mediasearch/mediasearch-cli/internal/config"
)

// AskQuery asks for a single query on the terminal.
func AskQuery() (string, error) {
	var q string
	if err := survey.AskOne(&survey.Input{Message: strings.TrimSpace(Prompt)}, &q); err != nil {
		return "", err
	}
	return q, nil
}

// PickVariant lets the user choose among the configured variants.
func PickVariant(cfg config.Config) (config.Variant, error) {
	labels, byLabel, def := variantLabels(cfg)
	if len(labels) == 0 {
		return config.Variant{}, fmt.Errorf("no variants configured")
	}
	var picked string
	sel := &survey.Select{Message: "Select search backend", Options: labels, Default: def}
	if err := survey.AskOne(sel, &picked); err != nil {
		return config.Variant{}, err
	}
	return byLabel[picked], nil
}

func variantLabels(cfg config.Config) ([]string, map[string]config.Variant, string) {
	labels := make([]string, 0, len(cfg.Variants))
	byLabel := map[string]config.Variant{}
	def := ""
	for _, v := range cfg.Variants {
		lbl := fmt.Sprintf("%s (%s)", v.Name, v.Endpoint)
		labels = append(labels, lbl)
		byLabel[lbl] = v
		if v.Name == cfg.DefaultVariant {
			def = lbl
		}
	}
	if def == "" && len(labels) > 0 {
		def = labels[0]
	}
	return labels, byLabel, def
}
