package svg

import (
	"github.com/tdewolff/unsvg"
)

// cssColors are the CSS color keywords, minification replaces hexadecimal colors by these when shorter.
var cssColors = map[string]unsvg.Color{
	"aliceblue":            unsvg.RGB(240, 248, 255),
	"antiquewhite":         unsvg.RGB(250, 235, 215),
	"aqua":                 unsvg.RGB(0, 255, 255),
	"aquamarine":           unsvg.RGB(127, 255, 212),
	"azure":                unsvg.RGB(240, 255, 255),
	"beige":                unsvg.RGB(245, 245, 220),
	"bisque":               unsvg.RGB(255, 228, 196),
	"black":                unsvg.RGB(0, 0, 0),
	"blanchedalmond":       unsvg.RGB(255, 235, 205),
	"blue":                 unsvg.RGB(0, 0, 255),
	"blueviolet":           unsvg.RGB(138, 43, 226),
	"brown":                unsvg.RGB(165, 42, 42),
	"burlywood":            unsvg.RGB(222, 184, 135),
	"cadetblue":            unsvg.RGB(95, 158, 160),
	"chartreuse":           unsvg.RGB(127, 255, 0),
	"chocolate":            unsvg.RGB(210, 105, 30),
	"coral":                unsvg.RGB(255, 127, 80),
	"cornflowerblue":       unsvg.RGB(100, 149, 237),
	"cornsilk":             unsvg.RGB(255, 248, 220),
	"crimson":              unsvg.RGB(220, 20, 60),
	"cyan":                 unsvg.RGB(0, 255, 255),
	"darkblue":             unsvg.RGB(0, 0, 139),
	"darkcyan":             unsvg.RGB(0, 139, 139),
	"darkgoldenrod":        unsvg.RGB(184, 134, 11),
	"darkgray":             unsvg.RGB(169, 169, 169),
	"darkgreen":            unsvg.RGB(0, 100, 0),
	"darkgrey":             unsvg.RGB(169, 169, 169),
	"darkkhaki":            unsvg.RGB(189, 183, 107),
	"darkmagenta":          unsvg.RGB(139, 0, 139),
	"darkolivegreen":       unsvg.RGB(85, 107, 47),
	"darkorange":           unsvg.RGB(255, 140, 0),
	"darkorchid":           unsvg.RGB(153, 50, 204),
	"darkred":              unsvg.RGB(139, 0, 0),
	"darksalmon":           unsvg.RGB(233, 150, 122),
	"darkseagreen":         unsvg.RGB(143, 188, 143),
	"darkslateblue":        unsvg.RGB(72, 61, 139),
	"darkslategray":        unsvg.RGB(47, 79, 79),
	"darkslategrey":        unsvg.RGB(47, 79, 79),
	"darkturquoise":        unsvg.RGB(0, 206, 209),
	"darkviolet":           unsvg.RGB(148, 0, 211),
	"deeppink":             unsvg.RGB(255, 20, 147),
	"deepskyblue":          unsvg.RGB(0, 191, 255),
	"dimgray":              unsvg.RGB(105, 105, 105),
	"dimgrey":              unsvg.RGB(105, 105, 105),
	"dodgerblue":           unsvg.RGB(30, 144, 255),
	"firebrick":            unsvg.RGB(178, 34, 34),
	"floralwhite":          unsvg.RGB(255, 250, 240),
	"forestgreen":          unsvg.RGB(34, 139, 34),
	"fuchsia":              unsvg.RGB(255, 0, 255),
	"gainsboro":            unsvg.RGB(220, 220, 220),
	"ghostwhite":           unsvg.RGB(248, 248, 255),
	"gold":                 unsvg.RGB(255, 215, 0),
	"goldenrod":            unsvg.RGB(218, 165, 32),
	"gray":                 unsvg.RGB(128, 128, 128),
	"green":                unsvg.RGB(0, 128, 0),
	"greenyellow":          unsvg.RGB(173, 255, 47),
	"grey":                 unsvg.RGB(128, 128, 128),
	"honeydew":             unsvg.RGB(240, 255, 240),
	"hotpink":              unsvg.RGB(255, 105, 180),
	"indianred":            unsvg.RGB(205, 92, 92),
	"indigo":               unsvg.RGB(75, 0, 130),
	"ivory":                unsvg.RGB(255, 255, 240),
	"khaki":                unsvg.RGB(240, 230, 140),
	"lavender":             unsvg.RGB(230, 230, 250),
	"lavenderblush":        unsvg.RGB(255, 240, 245),
	"lawngreen":            unsvg.RGB(124, 252, 0),
	"lemonchiffon":         unsvg.RGB(255, 250, 205),
	"lightblue":            unsvg.RGB(173, 216, 230),
	"lightcoral":           unsvg.RGB(240, 128, 128),
	"lightcyan":            unsvg.RGB(224, 255, 255),
	"lightgoldenrodyellow": unsvg.RGB(250, 250, 210),
	"lightgray":            unsvg.RGB(211, 211, 211),
	"lightgreen":           unsvg.RGB(144, 238, 144),
	"lightgrey":            unsvg.RGB(211, 211, 211),
	"lightpink":            unsvg.RGB(255, 182, 193),
	"lightsalmon":          unsvg.RGB(255, 160, 122),
	"lightseagreen":        unsvg.RGB(32, 178, 170),
	"lightskyblue":         unsvg.RGB(135, 206, 250),
	"lightslategray":       unsvg.RGB(119, 136, 153),
	"lightslategrey":       unsvg.RGB(119, 136, 153),
	"lightsteelblue":       unsvg.RGB(176, 196, 222),
	"lightyellow":          unsvg.RGB(255, 255, 224),
	"lime":                 unsvg.RGB(0, 255, 0),
	"limegreen":            unsvg.RGB(50, 205, 50),
	"linen":                unsvg.RGB(250, 240, 230),
	"magenta":              unsvg.RGB(255, 0, 255),
	"maroon":               unsvg.RGB(128, 0, 0),
	"mediumaquamarine":     unsvg.RGB(102, 205, 170),
	"mediumblue":           unsvg.RGB(0, 0, 205),
	"mediumorchid":         unsvg.RGB(186, 85, 211),
	"mediumpurple":         unsvg.RGB(147, 112, 219),
	"mediumseagreen":       unsvg.RGB(60, 179, 113),
	"mediumslateblue":      unsvg.RGB(123, 104, 238),
	"mediumspringgreen":    unsvg.RGB(0, 250, 154),
	"mediumturquoise":      unsvg.RGB(72, 209, 204),
	"mediumvioletred":      unsvg.RGB(199, 21, 133),
	"midnightblue":         unsvg.RGB(25, 25, 112),
	"mintcream":            unsvg.RGB(245, 255, 250),
	"mistyrose":            unsvg.RGB(255, 228, 225),
	"moccasin":             unsvg.RGB(255, 228, 181),
	"navajowhite":          unsvg.RGB(255, 222, 173),
	"navy":                 unsvg.RGB(0, 0, 128),
	"oldlace":              unsvg.RGB(253, 245, 230),
	"olive":                unsvg.RGB(128, 128, 0),
	"olivedrab":            unsvg.RGB(107, 142, 35),
	"orange":               unsvg.RGB(255, 165, 0),
	"orangered":            unsvg.RGB(255, 69, 0),
	"orchid":               unsvg.RGB(218, 112, 214),
	"palegoldenrod":        unsvg.RGB(238, 232, 170),
	"palegreen":            unsvg.RGB(152, 251, 152),
	"paleturquoise":        unsvg.RGB(175, 238, 238),
	"palevioletred":        unsvg.RGB(219, 112, 147),
	"papayawhip":           unsvg.RGB(255, 239, 213),
	"peachpuff":            unsvg.RGB(255, 218, 185),
	"peru":                 unsvg.RGB(205, 133, 63),
	"pink":                 unsvg.RGB(255, 192, 203),
	"plum":                 unsvg.RGB(221, 160, 221),
	"powderblue":           unsvg.RGB(176, 224, 230),
	"purple":               unsvg.RGB(128, 0, 128),
	"red":                  unsvg.RGB(255, 0, 0),
	"rosybrown":            unsvg.RGB(188, 143, 143),
	"royalblue":            unsvg.RGB(65, 105, 225),
	"saddlebrown":          unsvg.RGB(139, 69, 19),
	"salmon":               unsvg.RGB(250, 128, 114),
	"sandybrown":           unsvg.RGB(244, 164, 96),
	"seagreen":             unsvg.RGB(46, 139, 87),
	"seashell":             unsvg.RGB(255, 245, 238),
	"sienna":               unsvg.RGB(160, 82, 45),
	"silver":               unsvg.RGB(192, 192, 192),
	"skyblue":              unsvg.RGB(135, 206, 235),
	"slateblue":            unsvg.RGB(106, 90, 205),
	"slategray":            unsvg.RGB(112, 128, 144),
	"slategrey":            unsvg.RGB(112, 128, 144),
	"snow":                 unsvg.RGB(255, 250, 250),
	"springgreen":          unsvg.RGB(0, 255, 127),
	"steelblue":            unsvg.RGB(70, 130, 180),
	"tan":                  unsvg.RGB(210, 180, 140),
	"teal":                 unsvg.RGB(0, 128, 128),
	"thistle":              unsvg.RGB(216, 191, 216),
	"tomato":               unsvg.RGB(255, 99, 71),
	"turquoise":            unsvg.RGB(64, 224, 208),
	"violet":               unsvg.RGB(238, 130, 238),
	"wheat":                unsvg.RGB(245, 222, 179),
	"white":                unsvg.RGB(255, 255, 255),
	"whitesmoke":           unsvg.RGB(245, 245, 245),
	"yellow":               unsvg.RGB(255, 255, 0),
	"yellowgreen":          unsvg.RGB(154, 205, 50),
}
