package weburl

import (
	"bytes"
	"fmt"
	"text/template"
)

// Builder generates browsable web URLs for remote records.
type Builder struct {
	productTemplate *template.Template
}

// NewBuilder creates a new Builder instance with the given product URL template.
func NewBuilder(productURLTemplate string) (*Builder, error) {
	tmpl, err := template.New("productURL").Parse(productURLTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse product URL template: %w", err)
	}

	return &Builder{productTemplate: tmpl}, nil
}

// ProductURL generates the web URL for a product id.
func (b *Builder) ProductURL(id int) (string, error) {
	var buf bytes.Buffer
	data := struct {
		ID int
	}{
		ID: id,
	}

	if err := b.productTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute product URL template: %w", err)
	}

	return buf.String(), nil
}
