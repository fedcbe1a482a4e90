package colors

import (
	"hash/crc32"
	"image/color"
)

var colorMap = map[string]color.RGBA{
	"demo.rpm":  {33, 153, 243, 255},
	"demo.load": {64, 216, 140, 255},
	"demo.temp": {247, 127, 10, 255},
	"demo.amps": {244, 251, 18, 255},
}

// ForTopic returns a stable color for a bus topic. Well known topics get
// hand picked colors, everything else hashes to one.
func ForTopic(name string) color.RGBA {
	if c, ok := colorMap[name]; ok {
		return c
	}
	return hashToRGB(name)
}

func hashToRGB(input string) color.RGBA {
	// Calculate CRC32 hash
	hash := crc32.ChecksumIEEE([]byte(input))
	// Map the hash value to RGB color space
	return color.RGBA{byte(hash >> 8), byte(hash >> 16), byte(hash), 255}
}
