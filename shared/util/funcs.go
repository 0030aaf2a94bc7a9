package util

// Lerp realiza interpolação linear entre dois floats.
func Lerp(start, end, amount float32) float32 {
	return start + amount*(end-start)
}

// Clamp limita v ao intervalo [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// InChunk verifica se uma coordenada local está dentro de um chunk.
func InChunk(x, y, z int) bool {
	return x >= 0 && x < ChunkSize && y >= 0 && y < ChunkSize && z >= 0 && z < ChunkSize
}
