package xcf

import "fmt"

// blendModeNames maps a PROP_MODE wire value to GIMP's display label for
// it. Modes below 24ish are the pre-2.10 "legacy" set kept for backward
// compatible loading; the rest are the default layer modes introduced
// with GIMP 2.10's new blending engine.
var blendModeNames = map[uint32]string{
	0:  "Normal (legacy)",
	1:  "Dissolve (legacy)",
	2:  "Behind (legacy)",
	3:  "Multiply (legacy)",
	4:  "Screen (legacy)",
	5:  "Old broken Overlay",
	6:  "Difference (legacy)",
	7:  "Addition (legacy)",
	8:  "Subtract (legacy)",
	9:  "Darken only (legacy)",
	10: "Lighten only (legacy)",
	11: "Hue (HSV) (legacy)",
	12: "Saturation (HSV) (legacy)",
	13: "Color (HSL) (legacy)",
	14: "Value (HSV) (legacy)",
	15: "Divide (legacy)",
	16: "Dodge (legacy)",
	17: "Burn (legacy)",
	18: "Hard light (legacy)",
	19: "Soft light (legacy)",
	20: "Grain extract (legacy)",
	21: "Grain merge (legacy)",
	22: "Color erase (legacy)",
	23: "Overlay",
	24: "Hue (LCh)",
	25: "Chroma (LCh)",
	26: "Color (LCh)",
	27: "Lightness (LCh)",
	28: "Normal",
	29: "Behind",
	30: "Multiply",
	31: "Screen",
	32: "Difference",
	33: "Addition",
	34: "Subtract",
	35: "Darken only",
	36: "Lighten only",
	37: "Hue (HSV)",
	38: "Saturation (HSV)",
	39: "Color (HSL)",
	40: "Value (HSV)",
	41: "Divide",
	42: "Dodge",
	43: "Burn",
	44: "Hard light",
	45: "Soft light",
	46: "Grain extract",
	47: "Grain merge",
	48: "Vivid light",
	49: "Pin light",
	50: "Linear light",
	51: "Hard mix",
	52: "Exclusion",
	53: "Linear burn",
	54: "Luma darken only",
	55: "Luma lighten only",
	56: "Luminance",
	57: "Color erase",
	58: "Erase",
	59: "Merge",
}

// BlendModeName returns the display label GIMP uses for a PROP_MODE
// value, or a synthetic placeholder for values this table doesn't know.
func BlendModeName(mode uint32) string {
	if name, ok := blendModeNames[mode]; ok {
		return name
	}
	return fmt.Sprintf("Unknown blend mode %d", mode)
}
