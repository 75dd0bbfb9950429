package casegen

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"text/template"

	"golang.org/x/tools/txtar"
)

//go:embed templates.txt
var defaultTemplates string

func (g *Generator) loadTemplates() error {
	if g.fileTemplate != nil && g.namespaceTemplate != nil {
		return nil
	}
	templateData := defaultTemplates

	// A custom template archive replaces the embedded one entirely.
	if g.Template != "" {
		data, err := os.ReadFile(g.Template)
		if err != nil {
			return fmt.Errorf("reading template archive: %w", err)
		}
		templateData = string(data)
	}

	archive := txtar.Parse([]byte(templateData))
	templates := make(map[string]string)
	for _, file := range archive.Files {
		templates[file.Name] = string(file.Data)
	}

	fileTmpl, ok := templates["file.tmpl"]
	if !ok {
		return fmt.Errorf("template archive %s has no file.tmpl", g.templateName())
	}
	nsTmpl, ok := templates["namespace.tmpl"]
	if !ok {
		return fmt.Errorf("template archive %s has no namespace.tmpl", g.templateName())
	}

	var err error
	if g.fileTemplate, err = template.New("file").Parse(fileTmpl); err != nil {
		return fmt.Errorf("parsing file.tmpl: %w", err)
	}
	if g.namespaceTemplate, err = template.New("namespace").Parse(nsTmpl); err != nil {
		return fmt.Errorf("parsing namespace.tmpl: %w", err)
	}
	return nil
}

func (g *Generator) templateName() string {
	if g.Template == "" {
		return "(embedded)"
	}
	return g.Template
}

// renderNamespace renders ns with the namespace template.
func (g *Generator) renderNamespace(ns *Namespace) (string, error) {
	var buf bytes.Buffer
	if err := g.namespaceTemplate.Execute(&buf, ns); err != nil {
		return "", fmt.Errorf("rendering %s: %w", ns.Name, err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// renderFile renders the complete Go file around the rewritten content.
func (g *Generator) renderFile(source, content string) (string, error) {
	data := struct {
		Source  string
		Content string
	}{
		Source:  source,
		Content: content,
	}

	var buf bytes.Buffer
	if err := g.fileTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering file: %w", err)
	}
	return buf.String(), nil
}
