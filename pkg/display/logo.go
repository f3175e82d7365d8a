package display

import "strings"

// logos maps distribution ids to their ASCII art. The generic penguin
// covers any Linux id without its own entry.
var logos = map[string][]string{
	"linux": {
		"    .--.    ",
		"   |o_o |   ",
		"   |:_/ |   ",
		"  //   \\ \\  ",
		" (|     | ) ",
		"/'\\_   _/'\\ ",
		"\\___)=(___/ ",
	},
	"ubuntu": {
		"         _  ",
		"     ---(_) ",
		" _/  ---  \\ ",
		"(_) |   |   ",
		"  \\  --- _/ ",
		"     ---(_) ",
	},
	"arch": {
		"      /\\      ",
		"     /  \\     ",
		"    /\\   \\    ",
		"   /      \\   ",
		"  /   ,,   \\  ",
		" /   |  |  -\\ ",
		"/_-''    ''-_\\",
	},
	"debian": {
		"  _____   ",
		" /  __ \\  ",
		"|  /    | ",
		"|  \\___-  ",
		"-_        ",
		"  --_     ",
	},
	"macos": {
		"       .:'    ",
		"    _ :'_     ",
		" .'' '-' ''.  ",
		":________.-'  ",
		":_______:     ",
		" :_______'-;  ",
		"  '._.-._.'   ",
	},
}

// Logo returns the ASCII art for a distribution id, falling back to the
// generic penguin. Ids are matched case-insensitively.
func Logo(id string) []string {
	if l, ok := logos[strings.ToLower(id)]; ok {
		return l
	}
	return logos["linux"]
}
