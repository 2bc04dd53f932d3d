package heightbrush

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned when an image handle is missing or a
	// parameter describes a degenerate configuration.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is returned when a query region does not intersect the image.
	ErrOutOfRange = errors.New("out of range")
)

// checkImages makes sure none of the provided images is nil.
func checkImages(imgs ...*Image) error {
	for i, img := range imgs {
		if img == nil {
			return errors.Wrapf(ErrInvalidArgument, "image argument #%d is nil", i)
		}
	}
	return nil
}
