package palette

// Built-in palette tables. Codes are classX*10 + classY: the tens digit
// walks the X hue ramp, the ones digit the Y hue ramp.

// DkViolet is the classic grey-to-violet scheme: teal along Y, magenta
// along X, converging on dark violet at high/high.
var dkViolet3 = map[int]string{
	11: "#E8E8E8", 12: "#ADE2E5", 13: "#5AC8C9",
	21: "#DEB0D5", 22: "#A4ADD1", 23: "#5399B8",
	31: "#BE64AC", 32: "#8C62AA", 33: "#3A4893",
}

// dkViolet4 extends the family to 4x4, bilinearly interpolated between
// the 3x3 anchors so the corners stay identical.
var dkViolet4 = map[int]string{
	11: "#E8E8E8", 12: "#C1E4E6", 13: "#91D9DC", 14: "#5AC8C9",
	21: "#E1C3DB", 22: "#BAC0D9", 23: "#8CB7CF", 24: "#55A9BE",
	31: "#D397C7", 32: "#AE95C5", 33: "#818DBC", 34: "#4B7EAC",
	41: "#BE64AC", 42: "#9D63AB", 43: "#7159A2", 44: "#3A4893",
}

// blOrGn is the older blue/orange/green scheme kept for maps styled
// before DkViolet became the default.
var blOrGn3 = map[int]string{
	11: "#D3D3D3", 12: "#7FBBD2", 13: "#149ED0",
	21: "#D9A386", 22: "#819084", 23: "#147884",
	31: "#DE692A", 32: "#855E28", 33: "#164E28",
}

var goldBlue3 = map[int]string{
	11: "#E9E9EB", 12: "#A3C6DA", 13: "#55A5C7",
	21: "#ECD088", 22: "#A6B37E", 23: "#579574",
	31: "#F5B903", 32: "#AEA003", 33: "#5D8103",
}

func builtinPalettes() []*Palette {
	return []*Palette{
		MustNew("DkViolet", "purple-blue", 3, false, dkViolet3),
		MustNew("DkViolet", "purple-blue", 4, false, dkViolet4),
		MustNew("BlOrGn", "orange-green", 3, true, blOrGn3),
		MustNew("GoldBlue", "gold-blue", 3, false, goldBlue3),
	}
}
