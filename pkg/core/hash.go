package core

import "unicode/utf16"

// Cyrb53 hashes s into a 53-bit integer. The string is consumed as UTF-16
// code units so that seeds match values produced by browser tooling.
func Cyrb53(s string, seed uint32) int64 {
	h1 := uint32(0xdeadbeef) ^ seed
	h2 := uint32(0x41c6ce57) ^ seed
	for _, ch := range utf16.Encode([]rune(s)) {
		h1 = (h1 ^ uint32(ch)) * 2654435761
		h2 = (h2 ^ uint32(ch)) * 1597334677
	}
	h1 = (h1 ^ (h1 >> 16)) * 2246822507
	h1 ^= (h2 ^ (h2 >> 13)) * 3266489909
	h2 = (h2 ^ (h2 >> 16)) * 2246822507
	h2 ^= (h1 ^ (h1 >> 13)) * 3266489909
	return int64(h2&0x1fffff)<<32 | int64(h1)
}
