package formatter

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/sozercan/textlens/apimodels"
	"github.com/sozercan/textlens/internal/console"
)

const (
	FormatHuman = "human"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// DisplayResults writes the analysis to w in the requested format
func DisplayResults(w io.Writer, resp *apimodels.AnalysisResponse, format string) error {
	switch format {
	case FormatJSON:
		return displayJSON(w, resp)
	case FormatYAML:
		return displayYAML(w, resp)
	case FormatHuman, "":
		_, err := fmt.Fprintln(w, console.RenderResult(resp))
		return err
	default:
		return fmt.Errorf("unknown output format %q (supported: human, json, yaml)", format)
	}
}

func displayJSON(w io.Writer, resp *apimodels.AnalysisResponse) error {
	output, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

func displayYAML(w io.Writer, resp *apimodels.AnalysisResponse) error {
	output, err := yaml.Marshal(resp)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, string(output))
	return err
}
