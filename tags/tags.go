package tags

import "github.com/yohamta/donburi"

var (
	Icon = donburi.NewTag().SetName("Icon")
	Zone = donburi.NewTag().SetName("Zone")
)

// Resolv tags for hit testing
const (
	ResolvIcon   = "icon"
	ResolvCursor = "cursor"
)
