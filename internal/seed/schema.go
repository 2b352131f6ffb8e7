package seed

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// checkSchema validates a decoded YAML document against schema/<name>.json.
func checkSchema(schemas fs.FS, name string, doc interface{}) error {
	raw, err := fs.ReadFile(schemas, "schema/"+name+".json")
	if err != nil {
		return fmt.Errorf("reading schema %s: %w", name, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(raw),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("validating %s: %w", name, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%s does not match its schema: %s", name, strings.Join(msgs, "; "))
}
