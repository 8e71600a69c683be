package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color style.
type Color uint8

// Predefined colors. Tile colors follow the classic 2048 palette
// from low (Tile2) to high (TileSuper) values.
const (
	ColorDefault Color = iota
	ColorGray
	ColorBorder
	ColorTitle
	ColorHighlight
	ColorTile2
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTile256
	ColorTile512
	ColorTile1024
	ColorTile2048
	ColorTileSuper
)

// TileColor returns the color used to draw a tile with the given value.
func TileColor(value int) Color {
	c := ColorTile2
	for v := 2; v < value && c < ColorTileSuper; v *= 2 {
		c++
	}
	return c
}
