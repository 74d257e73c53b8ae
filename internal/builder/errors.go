package builder

import (
	"errors"
	"fmt"
)

// Stage sentinels; a VariantError matches the sentinel of the stage that failed.
var (
	ErrTransform = errors.New("transform failed")
	ErrTemplate  = errors.New("template failed")
	ErrSerialize = errors.New("serialize failed")
	ErrWrite     = errors.New("write failed")
)

// Stage names a step of a variant build.
type Stage string

const (
	StageTransform Stage = "transform"
	StageTemplate  Stage = "template"
	StageSerialize Stage = "serialize"
	StageWrite     Stage = "write"
)

func (s Stage) sentinel() error {
	switch s {
	case StageTransform:
		return ErrTransform
	case StageTemplate:
		return ErrTemplate
	case StageSerialize:
		return ErrSerialize
	default:
		return ErrWrite
	}
}

// VariantError reports the failure of a single variant.
type VariantError struct {
	Variant string
	Stage   Stage
	Err     error
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("variant %s: %v: %v", e.Variant, e.Stage.sentinel(), e.Err)
}

func (e *VariantError) Unwrap() []error {
	return []error{e.Stage.sentinel(), e.Err}
}
