package renderer

import "errors"

var (
	ErrInvalidDimensions = errors.New("renderer: width and height must be positive")
	ErrInvalidBounces    = errors.New("renderer: bounce limit must not be negative")
	ErrInvalidTileSize   = errors.New("renderer: tile size must be positive")
	ErrCameraNotDefined  = errors.New("renderer: no camera defined")
)
