package gifdecode

// DefaultMaxPixels is the canvas limit of DefaultOptions, 4096x4096.
const DefaultMaxPixels = 1 << 24

// Options configures DecodeWithOptions.
type Options struct {
	// MaxPixels limits canvas width*height. Zero or less means no limit.
	MaxPixels int
	// Strict makes an early stop of the block stream an error, and rejects
	// versions other than 87a and 89a. The partial GIF is still returned.
	Strict bool
}

// DefaultOptions returns options for lenient decoding: canvases up to
// DefaultMaxPixels, partial results reported through GIF.Status only.
func DefaultOptions() *Options {
	return &Options{MaxPixels: DefaultMaxPixels}
}

// StrictOptions returns DefaultOptions that also surface every early stop
// as an error.
func StrictOptions() *Options {
	return &Options{MaxPixels: DefaultMaxPixels, Strict: true}
}

func exceedsPixels(width, height, maxPixels int) bool {
	if maxPixels <= 0 {
		return false
	}
	return int64(width)*int64(height) > int64(maxPixels)
}
