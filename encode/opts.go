package encode

type EncodeOption func(*EncState)

// Width sets the maximum line width for fit decisions.
func Width(n int) EncodeOption {
	return func(es *EncState) { es.width = n }
}

// Col sets the starting column, for rendering a fragment mid-line.
func Col(n int) EncodeOption {
	return func(es *EncState) { es.col = n }
}

// EncodeColors enables syntax coloring.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
