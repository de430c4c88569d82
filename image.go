package rout

import "sort"

const (
	// WordSize is the address stride between consecutive words on a dump line.
	WordSize = 4

	// WordsPerLine is the number of words carried by one dump line.
	WordsPerLine = 4

	// Sentinel terminates JSON output, one word past the highest address.
	Sentinel uint32 = 0xDEADBEEF
)

// Entry is a single addressed word
type Entry struct {
	Addr  uint32
	Value uint32
}

// Image maps word addresses to word values.
// Later writes to the same address replace earlier ones.
type Image map[uint32]uint32

// Set stores value at addr
func (img Image) Set(addr, value uint32) {
	img[addr] = value
}

// Len returns the number of addressed words
func (img Image) Len() int {
	return len(img)
}

// Max returns the highest address, or false if the image is empty.
func (img Image) Max() (uint32, bool) {
	var hi uint32
	found := false
	for addr := range img {
		if !found || addr > hi {
			hi = addr
			found = true
		}
	}
	return hi, found
}

// Sorted returns the image entries in ascending address order.
func (img Image) Sorted() []Entry {
	entries := make([]Entry, 0, len(img))
	for addr, value := range img {
		entries = append(entries, Entry{Addr: addr, Value: value})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Addr < entries[j].Addr })
	return entries
}

// Equal reports whether both images hold the same entries
func (img Image) Equal(other Image) bool {
	if len(img) != len(other) {
		return false
	}
	for addr, value := range img {
		v, ok := other[addr]
		if !ok || v != value {
			return false
		}
	}
	return true
}
