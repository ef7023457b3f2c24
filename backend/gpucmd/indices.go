package gpucmd

// appendFan appends a triangle list for a fan of n vertices at base.
func appendFan(dst []uint32, base uint32, n int) []uint32 {
	for i := 0; i+2 < n; i++ {
		dst = append(dst, base, base+uint32(i+1), base+uint32(i+2))
	}
	return dst
}

// appendStrip appends a triangle list for a strip of n vertices at base,
// flipping every other triangle to keep the winding.
func appendStrip(dst []uint32, base uint32, n int) []uint32 {
	for i := 0; i+2 < n; i++ {
		a, b, c := base+uint32(i), base+uint32(i+1), base+uint32(i+2)
		if i%2 == 0 {
			dst = append(dst, a, b, c)
		} else {
			dst = append(dst, b, a, c)
		}
	}
	return dst
}

// appendList appends a triangle list of n vertices at base. A trailing
// partial triangle is dropped.
func appendList(dst []uint32, base uint32, n int) []uint32 {
	for i := 0; i+2 < n; i += 3 {
		dst = append(dst, base+uint32(i), base+uint32(i+1), base+uint32(i+2))
	}
	return dst
}
