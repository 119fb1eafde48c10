package reciclamack

import "github.com/vovakirdan/reciclamack/internal/core"

// ItemType is the kind of a falling item.
type ItemType int

const (
	ItemMetal   ItemType = iota // Recyclable metal, +2
	ItemBattery                 // Hazard, costs a life
	ItemPlastic                 // Recyclable plastic, +1
	ItemReuse                   // Reusable object, +3
	itemTypeCount
)

// Effect is what catching an item does to the session.
type Effect struct {
	Score int
	Lives int
}

type itemInfo struct {
	name   string
	effect Effect
	color  core.Color
	glyph  rune
}

var itemTable = [itemTypeCount]itemInfo{
	ItemMetal:   {name: "METAL", effect: Effect{Score: 2}, color: core.ColorSilver, glyph: 'M'},
	ItemBattery: {name: "BATTERY", effect: Effect{Lives: -1}, color: core.ColorCrimson, glyph: 'B'},
	ItemPlastic: {name: "PLASTIC", effect: Effect{Score: 1}, color: core.ColorDeepSkyBlue, glyph: 'P'},
	ItemReuse:   {name: "REUSE", effect: Effect{Score: 3}, color: core.ColorGold, glyph: 'R'},
}

func (t ItemType) info() itemInfo {
	if t < 0 || t >= itemTypeCount {
		return itemInfo{name: "?", glyph: '?'}
	}
	return itemTable[t]
}

// String returns the item type name.
func (t ItemType) String() string { return t.info().name }

// Effect returns the score and life change applied on catch.
func (t ItemType) Effect() Effect { return t.info().effect }

// Color returns the fallback color used when no sprite is drawn.
func (t ItemType) Color() core.Color { return t.info().color }

// Glyph returns the terminal character for the item.
func (t ItemType) Glyph() rune { return t.info().glyph }

// Hazard reports whether catching the item costs a life.
func (t ItemType) Hazard() bool { return t.info().effect.Lives < 0 }

// ItemTypes returns all item types in a stable order.
func ItemTypes() []ItemType {
	return []ItemType{ItemMetal, ItemBattery, ItemPlastic, ItemReuse}
}

// Item is a falling object. X, Y is the top-left corner in world pixels.
type Item struct {
	Type ItemType
	X, Y float64
	Size float64
}

// Bounds returns the square hitbox of the item.
func (it Item) Bounds() core.Rect {
	return core.NewRect(it.X, it.Y, it.Size, it.Size)
}

// Fall moves the item down by dy pixels.
func (it *Item) Fall(dy float64) {
	it.Y += dy
}
