// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/edforge/qconvert/ent/conversionrun"
	"github.com/edforge/qconvert/ent/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	conversionrunFields := schema.ConversionRun{}.Fields()
	_ = conversionrunFields
	// conversionrunDescRunID is the schema descriptor for run_id field.
	conversionrunDescRunID := conversionrunFields[0].Descriptor()
	// conversionrun.DefaultRunID holds the default value on creation for the run_id field.
	conversionrun.DefaultRunID = conversionrunDescRunID.Default.(func() uuid.UUID)
	// conversionrunDescStartedAt is the schema descriptor for started_at field.
	conversionrunDescStartedAt := conversionrunFields[1].Descriptor()
	// conversionrun.DefaultStartedAt holds the default value on creation for the started_at field.
	conversionrun.DefaultStartedAt = conversionrunDescStartedAt.Default.(func() time.Time)
	// conversionrunDescDryRun is the schema descriptor for dry_run field.
	conversionrunDescDryRun := conversionrunFields[5].Descriptor()
	// conversionrun.DefaultDryRun holds the default value on creation for the dry_run field.
	conversionrun.DefaultDryRun = conversionrunDescDryRun.Default.(bool)
}
