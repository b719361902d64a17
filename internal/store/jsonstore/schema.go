package jsonstore

import (
	_ "embed"
	"errors"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed tasks.schema.json
var schemaSource string

const schemaURL = "https://github.com/idilsaglam/todolist/tasks.schema.json"

var documentSchema = jsonschema.MustCompileString(schemaURL, schemaSource)

// validate checks a decoded JSON value against the store document schema.
func validate(doc any) error {
	err := documentSchema.Validate(doc)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if errors.As(err, &ve) {
		return fmt.Errorf("%w: %s", ErrInvalidDocument, firstCause(ve))
	}
	return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
}

// firstCause walks to the deepest leaf so the message names the offending field.
func firstCause(ve *jsonschema.ValidationError) string {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	loc := ve.InstanceLocation
	if loc == "" {
		loc = "/"
	}
	return loc + ": " + ve.Message
}
