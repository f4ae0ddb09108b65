// Package schema validates the persisted documents against embedded CUE
// schemas before typed decoding. The documents are schema-less on disk, so
// this is the gate that turns a corrupted or hand-edited file into a readable
// error instead of silent misbehavior.
package schema

import (
	"embed"
	"fmt"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// Validator holds the compiled document schemas.
type Validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
}

// NewValidator compiles the embedded schemas.
func NewValidator() (*Validator, error) {
	v := &Validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}

	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil, fmt.Errorf("could not read embedded schemas: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cue" {
			continue
		}
		content, err := schemaFS.ReadFile(filepath.Join("schemas", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("could not read schema %s: %w", entry.Name(), err)
		}
		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if instErr := inst.Err(); instErr != nil {
			return nil, fmt.Errorf("could not compile schema %s: %w", entry.Name(), instErr)
		}
		name := entry.Name()[:len(entry.Name())-len(".cue")]
		v.schemas[name] = inst.Value()
	}
	if len(v.schemas) == 0 {
		return nil, fmt.Errorf("no document schemas loaded")
	}
	return v, nil
}

// ValidateSites checks a decoded sites document.
func (v *Validator) ValidateSites(doc any) error {
	return v.validate("sites", "#Sites", doc)
}

// ValidateLedger checks a decoded certification ledger document.
func (v *Validator) ValidateLedger(doc any) error {
	return v.validate("certifications", "#Certifications", doc)
}

func (v *Validator) validate(schemaName, defName string, doc any) error {
	schema, ok := v.schemas[schemaName]
	if !ok {
		return fmt.Errorf("schema %s not loaded", schemaName)
	}

	dataValue := v.ctx.Encode(doc)
	if encErr := dataValue.Err(); encErr != nil {
		return fmt.Errorf("error encoding document: %w", encErr)
	}

	def := schema.LookupPath(cue.ParsePath(defName))
	if !def.Exists() {
		return fmt.Errorf("schema %s has no %s definition", schemaName, defName)
	}

	unified := def.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return fmt.Errorf("%s document failed schema validation: %w", schemaName, err)
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%s document failed schema validation: %w", schemaName, err)
	}
	return nil
}
