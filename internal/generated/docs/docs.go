// Package docs registers the warehouse OpenAPI document with swag so that
// echo-swagger can serve it next to the Swagger UI.
package docs

import (
	"fmt"

	"warehouse/internal/generated/servers"

	"github.com/swaggo/swag"
)

// SwaggerInfo holds the registered document. It is nil until Register succeeds.
var SwaggerInfo *swag.Spec

// Register publishes the embedded OpenAPI document under swag.Name, the
// instance echo-swagger reads by default. Registering twice is a no-op.
func Register() error {
	if SwaggerInfo != nil {
		return nil
	}

	doc, err := servers.GetSwagger()
	if err != nil {
		return err
	}

	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode OpenAPI document: %w", err)
	}

	SwaggerInfo = &swag.Spec{
		Version:          doc.Info.Version,
		Title:            doc.Info.Title,
		Description:      doc.Info.Description,
		InfoInstanceName: swag.Name,
		SwaggerTemplate:  string(raw),
		LeftDelim:        "{{",
		RightDelim:       "}}",
	}
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
	return nil
}
