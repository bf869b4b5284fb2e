package sprite

import "fmt"

// Handle encodes the bucket id (upper 32 bits) and the sprite's serial within
// that bucket (lower 32 bits). Serials start at 1, so the zero Handle never
// refers to a sprite.
type Handle uint64

func newHandle(bucket uint32, serial uint32) Handle {
	return Handle(uint64(bucket)<<32 | uint64(serial))
}

// Bucket extracts the bucket id.
func (h Handle) Bucket() uint32 {
	return uint32(h >> 32)
}

// Serial extracts the per-bucket serial.
func (h Handle) Serial() uint32 {
	return uint32(h & 0xFFFFFFFF)
}

func (h Handle) String() string {
	return fmt.Sprintf("%d:%d", h.Bucket(), h.Serial())
}
