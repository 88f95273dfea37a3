package docgen

import (
	"errors"

	"github.com/alnah/go-docgen/internal/assets"
	"github.com/alnah/go-docgen/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrPageBuild   = errors.New("standalone page build failed")
	ErrInvalidPage = errors.New("invalid page options")

	// Page options validation errors.
	ErrInvalidTitle = errors.New("invalid page title")

	// Asset loading errors, shared with the embedded loader so errors.Is
	// matches whichever layer produced them.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrInvalidAssetName = assets.ErrInvalidAssetName

	// Intro conversion errors.
	ErrIntroConversion = pipeline.ErrIntroConversion
)
