package content

// Find returns the first block tagged disc.
func Find(blocks []Block, disc string) (Block, bool) {
	for _, b := range blocks {
		if b.Discriminant == disc {
			return b, true
		}
	}
	return Block{}, false
}

// Filter returns the blocks tagged with any of discs, in their original order.
func Filter(blocks []Block, discs ...string) []Block {
	var out []Block
	for _, b := range blocks {
		for _, d := range discs {
			if b.Discriminant == d {
				out = append(out, b)
				break
			}
		}
	}
	return out
}

// Payload returns the typed payload of b, if it holds a T.
func Payload[T any](b Block) (T, bool) {
	v, ok := b.Value.(T)
	return v, ok
}

// BlocksOf returns the blocks of p, tolerating a nil page.
func BlocksOf(p *Page) []Block {
	if p == nil {
		return nil
	}
	return p.Blocks
}
