package servers

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yml
var openAPIDocument []byte

// GetSwagger parses and validates the embedded OpenAPI document.
// Every call returns a fresh copy that callers may modify.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}

	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}

	return doc, nil
}
