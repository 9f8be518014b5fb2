package i18n

// Language is one of the four locales the product ships.
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
	French  Language = "fr"
	Darija  Language = "dz"
)

// Direction is the text direction of a locale.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// Descriptor carries the display metadata of a language.
type Descriptor struct {
	Name       string
	NativeName string
	Direction  Direction
}

// Languages is the immutable descriptor table. Every supported
// language has an entry.
var Languages = map[Language]Descriptor{
	English: {Name: "English", NativeName: "English", Direction: LTR},
	Arabic:  {Name: "Arabic", NativeName: "العربية", Direction: RTL},
	French:  {Name: "French", NativeName: "Français", Direction: LTR},
	Darija:  {Name: "Darija", NativeName: "الدارجة", Direction: RTL},
}

// All returns the supported languages in a stable order.
func All() []Language {
	return []Language{English, Arabic, French, Darija}
}

// Valid reports whether l is a supported language.
func Valid(l Language) bool {
	_, ok := Languages[l]
	return ok
}

// IsRTL reports whether l renders right-to-left.
func IsRTL(l Language) bool {
	return Languages[l].Direction == RTL
}
