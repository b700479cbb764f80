package domain

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"internhasha/internal/adapters/internhasha"
	perr "internhasha/internal/platform/errors"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed profile.schema.json
var profileSchema []byte

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func loadSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(profileSchema))
	})
	return schema, schemaErr
}

// CheckPayload validates the upsert body against the embedded JSON schema
func CheckPayload(p internhasha.ApplicantProfile) error {
	s, err := loadSchema()
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "load applicant schema")
	}
	res, err := s.Validate(gojsonschema.NewGoLoader(p))
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeJSON, "validate applicant payload")
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	field := ""
	for _, e := range res.Errors() {
		if field == "" {
			field = e.Field()
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
	}
	return perr.WithField(perr.Newf(perr.ErrorCodeValidation, "applicant payload: %s", strings.Join(msgs, "; ")), field)
}
