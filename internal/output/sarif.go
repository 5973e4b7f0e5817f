package output

import (
	"encoding/json"
	"io"

	"github.com/SureshAIOrigin/automatic-eureka/internal/scanner"
)

// ToolVersion is the eureka version reported in SARIF output.
var ToolVersion = "dev"

// SARIFFormatter outputs findings in SARIF 2.1.0 format for code scanning.
type SARIFFormatter struct{}

type sarifLog struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version"`
	Rules   []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string             `json:"id"`
	ShortDescription sarifMessage       `json:"shortDescription"`
	DefaultConfig    sarifDefaultConfig `json:"defaultConfiguration"`
}

type sarifDefaultConfig struct {
	Level string `json:"level"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	RuleIndex int             `json:"ruleIndex"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           sarifRegion           `json:"region"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
}

func sarifLevel(sev scanner.Severity) string {
	switch sev {
	case scanner.SeverityError, scanner.SeverityHigh:
		return "error"
	case scanner.SeverityMedium:
		return "warning"
	default:
		return "note"
	}
}

func (f *SARIFFormatter) Format(w io.Writer, rep *scanner.Report) error {
	ruleIndex := map[string]int{}
	var rules []sarifRule
	results := make([]sarifResult, 0, len(rep.Findings))
	for _, fd := range rep.Findings {
		idx, ok := ruleIndex[fd.RuleID]
		if !ok {
			idx = len(rules)
			ruleIndex[fd.RuleID] = idx
			rules = append(rules, sarifRule{
				ID:               fd.RuleID,
				ShortDescription: sarifMessage{Text: string(fd.Category)},
				DefaultConfig:    sarifDefaultConfig{Level: sarifLevel(fd.Severity)},
			})
		}
		results = append(results, sarifResult{
			RuleID:    fd.RuleID,
			RuleIndex: idx,
			Level:     sarifLevel(fd.Severity),
			Message:   sarifMessage{Text: fd.Message},
			Locations: []sarifLocation{{
				PhysicalLocation: sarifPhysicalLocation{
					ArtifactLocation: sarifArtifactLocation{URI: fd.Filename},
					Region:           sarifRegion{StartLine: fd.Line, StartColumn: fd.Column},
				},
			}},
		})
	}

	log := sarifLog{
		Schema:  "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json",
		Version: "2.1.0",
		Runs: []sarifRun{{
			Tool:    sarifTool{Driver: sarifDriver{Name: "eureka", Version: ToolVersion, Rules: rules}},
			Results: results,
		}},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(log)
}
