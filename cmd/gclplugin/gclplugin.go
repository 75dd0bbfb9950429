// Package gclplugin registers casecheck as a golangci-lint module plugin, so
// template problems show up in a golangci-lint run. Settings from
// .golangci.yml are applied as casecheck flags, e.g.
//
//	linters-settings:
//	  custom:
//	    casecheck:
//	      type: module
//	      settings:
//	        misordered: "false"
//
// See https://golangci-lint.run/plugins/module-plugins/.
package gclplugin

import (
	"fmt"

	"github.com/golangci/plugin-module-register/register"
	"github.com/tmc/casegen/casecheck"
	"golang.org/x/tools/go/analysis"
)

func init() {
	register.Plugin("casecheck", New)
}

// New returns the golangci-lint plugin that wraps the casecheck analyzer.
func New(settings any) (register.LinterPlugin, error) {
	// No settings section in .golangci.yml decodes to nil.
	if settings == nil {
		return &CaseCheckPlugin{}, nil
	}
	s, ok := settings.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expect casecheck's configurations to be a map from string to "+
			"string (similar to command line flags), got %T", settings)
	}
	conf := make(map[string]string, len(s))
	for k, v := range s {
		vStr, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expect casecheck's configuration values for %q to be strings, got %T", k, v)
		}
		conf[k] = vStr
	}

	return &CaseCheckPlugin{conf: conf}, nil
}

// CaseCheckPlugin is the casecheck plugin wrapper for golangci-lint.
type CaseCheckPlugin struct {
	conf map[string]string
}

// BuildAnalyzers builds the casecheck analyzer with the configurations applied to its flags.
func (p *CaseCheckPlugin) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	for k, v := range p.conf {
		if err := casecheck.Analyzer.Flags.Set(k, v); err != nil {
			return nil, fmt.Errorf("set casecheck flag %s with %s: %w", k, v, err)
		}
	}

	return []*analysis.Analyzer{casecheck.Analyzer}, nil
}

// GetLoadMode returns the load mode of the casecheck plugin. Templates are checked on syntax alone.
func (p *CaseCheckPlugin) GetLoadMode() string { return register.LoadModeSyntax }
