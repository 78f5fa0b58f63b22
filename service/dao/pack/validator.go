package pack

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

const schemaURL = "pack.schema.json"

//go:embed schema/pack.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// Issue is a single schema violation
type Issue struct {
	// Path is the instance location, e.g. /blocks/0/ports/1/direction
	Path    string
	Keyword string
	Message string
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// Validation is the outcome of a schema validation
type Validation struct {
	Valid  bool
	Issues []Issue
}

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("failed to decode pack schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err = compiler.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("failed to add pack schema: %w", err)
			return
		}
		if compiledSchema, err = compiler.Compile(schemaURL); err != nil {
			compileErr = fmt.Errorf("failed to compile pack schema: %w", err)
		}
	})
	return compiledSchema, compileErr
}

// Validate checks a YAML pack document against the pack schema. The returned
// error reports decoding or schema failures; violations are listed in Validation.
func Validate(data []byte) (*Validation, error) {
	packSchema, err := schema()
	if err != nil {
		return nil, err
	}
	var raw interface{}
	if err = yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode pack YAML: %w", err)
	}
	encoded, err := json.Marshal(normalize(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to encode pack as JSON: %w", err)
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	err = packSchema.Validate(instance)
	if err == nil {
		return &Validation{Valid: true}, nil
	}
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return nil, err
	}
	ret := &Validation{}
	seen := map[string]bool{}
	collectIssues(validationErr, func(issue Issue) {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			ret.Issues = append(ret.Issues, issue)
		}
	})
	if len(ret.Issues) == 0 {
		ret.Issues = append(ret.Issues, Issue{Message: validationErr.Error()})
	}
	return ret, nil
}

func collectIssues(validationErr *jsonschema.ValidationError, add func(issue Issue)) {
	if len(validationErr.Causes) > 0 {
		for _, cause := range validationErr.Causes {
			collectIssues(cause, add)
		}
		return
	}
	if validationErr.ErrorKind == nil {
		return
	}
	keywordPath := validationErr.ErrorKind.KeywordPath()
	if len(keywordPath) == 0 {
		return
	}
	keyword := keywordPath[len(keywordPath)-1]
	if keyword == "$ref" || keyword == "allOf" {
		return
	}
	path := ""
	if len(validationErr.InstanceLocation) > 0 {
		path = "/" + strings.Join(validationErr.InstanceLocation, "/")
	}
	add(Issue{Path: path, Keyword: keyword, Message: validationErr.ErrorKind.LocalizedString(printer)})
}

// normalize converts YAML decoded maps with non-string keys into JSON compatible maps
func normalize(value interface{}) interface{} {
	switch actual := value.(type) {
	case map[string]interface{}:
		for k, v := range actual {
			actual[k] = normalize(v)
		}
		return actual
	case map[interface{}]interface{}:
		ret := make(map[string]interface{}, len(actual))
		for k, v := range actual {
			ret[fmt.Sprint(k)] = normalize(v)
		}
		return ret
	case []interface{}:
		for i, v := range actual {
			actual[i] = normalize(v)
		}
		return actual
	}
	return value
}
