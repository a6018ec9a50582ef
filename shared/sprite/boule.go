package sprite

import "image/color"

// Boule returns the 32x48 idle frame.
//
// Palette: 1 cap dark, 2 cap, 3 skin, 4 eye, 5 beard dark, 6 beard, 7 shirt dark,
// 8 shirt, 9 pants dark, A pants, B shoe dark, C shoe, D skin shadow, E beard mid,
// F cap highlight.
func Boule() *Sprite {
	return &Sprite{
		Cols:    32,
		Rows:    48,
		Lines:   bouleIdle,
		Palette: boulePalette(),
	}
}

func boulePalette() map[byte]color.RGBA {
	return map[byte]color.RGBA{
		'1': MustHex("#1a1a2e"),
		'2': MustHex("#2d3a6e"),
		'3': MustHex("#e8b88a"),
		'4': MustHex("#1a1a1a"),
		'5': MustHex("#3d2b1f"),
		'6': MustHex("#5c3d2e"),
		'7': MustHex("#2a4a3a"),
		'8': MustHex("#3d6b52"),
		'9': MustHex("#1a1a2e"),
		'A': MustHex("#2a2a4e"),
		'B': MustHex("#1a1a1a"),
		'C': MustHex("#3a3a3a"),
		'D': MustHex("#c49a6c"),
		'E': MustHex("#4a3528"),
		'F': MustHex("#243555"),
	}
}

// Some rows are shorter than 32 cells; Key treats the missing tail as empty.
var bouleIdle = []string{
	"00000000000000000000000000000000",
	"00000000000000000000000000000000",
	"00000000000000000000000000000000",
	"00000000000000000000000000000000",
	"00000000000112222211000000000000",
	"00000000001222222222100000000000",
	"00000000012222222222210000000000",
	"00000000122222222222221000000000",
	"00000000122222222222221000000000",
	"00000001111111111111111111100000",
	"00000001111111111111111111100000",
	"00000000011133333333110000000000",
	"00000000001333333333100000000000",
	"00000000013333333333310000000000",
	"00000000013304333043310000000000",
	"00000000013333333333310000000000",
	"00000000001333333333100000000000",
	"00000000001335666533100000000000",
	"00000000000156666651000000000000",
	"00000000001566666665100000000000",
	"00000000015666666666510000000000",
	"0000000005666EEEE66665000000000",
	"000000000566EEEEEEE665000000000",
	"00000000566666666666650000000000",
	"00000000056666666666500000000000",
	"00000000005666666665000000000000",
	"00000000000788888870000000000000",
	"00000000007888888887000000000000",
	"00000000078888888888700000000000",
	"00000000788888888888870000000000",
	"00000007888888888888887000000000",
	"00000078887888888878887000000000",
	"00000078870788888707887000000000",
	"00000007700788888700770000000000",
	"00000000000788888700000000000000",
	"00000000000799999700000000000000",
	"0000000000099AAAA9900000000000",
	"000000000009AAAAAA900000000000",
	"00000000009AAAAAAAA90000000000",
	"00000000009AAAAAAAA90000000000",
	"0000000000AAAAAAAAAA0000000000",
	"0000000000AA99AA99AA0000000000",
	"0000000000990000009900000000000",
	"0000000000990000009900000000000",
	"000000000099000000990000000000",
	"00000000009B000000B90000000000",
	"0000000000BBB0000BBB0000000000",
	"0000000000CCC0000CCC0000000000",
}
