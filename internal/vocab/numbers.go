package vocab

import "fmt"

// Number module bounds.
const (
	NumberMaxLimit   = 1_000_000
	NumberDefaultMax = 1_000
	NumberCycleSize  = 20
)

// NumberComponent classifies a number by the spelling skill it exercises.
// Number cycles can be restricted to a subset of components.
type NumberComponent string

const (
	ComponentBasic              NumberComponent = "basic"
	ComponentTeens              NumberComponent = "teens"
	ComponentTens               NumberComponent = "tens"
	ComponentCompositeTens      NumberComponent = "composite_tens"
	ComponentHundreds           NumberComponent = "hundreds"
	ComponentCompositeHundreds  NumberComponent = "composite_hundreds"
	ComponentThousands          NumberComponent = "thousands"
	ComponentCompositeThousands NumberComponent = "composite_thousands"
)

// AllNumberComponents lists the components in difficulty order.
func AllNumberComponents() []NumberComponent {
	return []NumberComponent{
		ComponentBasic, ComponentTeens, ComponentTens, ComponentCompositeTens,
		ComponentHundreds, ComponentCompositeHundreds,
		ComponentThousands, ComponentCompositeThousands,
	}
}

var numberBasic = map[int]string{
	0: "null", 1: "eins", 2: "zwei", 3: "drei", 4: "vier",
	5: "fünf", 6: "sechs", 7: "sieben", 8: "acht", 9: "neun",
	10: "zehn", 11: "elf", 12: "zwölf", 13: "dreizehn", 14: "vierzehn",
	15: "fünfzehn", 16: "sechzehn", 17: "siebzehn", 18: "achtzehn", 19: "neunzehn",
}

var numberTens = map[int]string{
	20: "zwanzig", 30: "dreißig", 40: "vierzig", 50: "fünfzig",
	60: "sechzig", 70: "siebzig", 80: "achtzig", 90: "neunzig",
}

// NumberToGerman spells a cardinal number in German words.
// Supported range is [0, 1_000_000].
func NumberToGerman(value int) (string, error) {
	if value < 0 {
		return "", fmt.Errorf("number must be non-negative: %d", value)
	}
	if value > NumberMaxLimit {
		return "", fmt.Errorf("number too large: %d", value)
	}
	return spellNumber(value), nil
}

// spellNumber assumes value is within [0, NumberMaxLimit].
func spellNumber(value int) string {
	if word, ok := numberBasic[value]; ok {
		return word
	}
	switch {
	case value < 100:
		tens := (value / 10) * 10
		ones := value % 10
		tensWord := numberTens[tens]
		if ones == 0 {
			return tensWord
		}
		onesWord := numberBasic[ones]
		if ones == 1 {
			onesWord = "ein" // "einundzwanzig", not "einsundzwanzig"
		}
		return onesWord + "und" + tensWord
	case value < 1000:
		hundreds := value / 100
		remainder := value % 100
		prefix := numberBasic[hundreds]
		if hundreds == 1 {
			prefix = "ein"
		}
		base := prefix + "hundert"
		if remainder == 0 {
			return base
		}
		return base + spellNumber(remainder)
	case value < 1_000_000:
		thousands := value / 1000
		remainder := value % 1000
		prefix := spellNumber(thousands)
		if thousands == 1 {
			prefix = "ein"
		}
		base := prefix + "tausend"
		if remainder == 0 {
			return base
		}
		return base + spellNumber(remainder)
	}
	return "eine Million"
}

// ComponentOf returns the spelling component a number belongs to.
func ComponentOf(value int) NumberComponent {
	switch {
	case value <= 12:
		return ComponentBasic
	case value <= 19:
		return ComponentTeens
	case value < 100:
		if value%10 == 0 {
			return ComponentTens
		}
		return ComponentCompositeTens
	case value < 1000:
		if value%100 == 0 {
			return ComponentHundreds
		}
		return ComponentCompositeHundreds
	default:
		if value%1000 == 0 {
			return ComponentThousands
		}
		return ComponentCompositeThousands
	}
}

// NumberItem builds the flashcard for a number, with the German spelling as
// its single solution.
func NumberItem(value int, stats ItemStats) (Item, error) {
	word, err := NumberToGerman(value)
	if err != nil {
		return Item{}, err
	}
	return Item{
		ID:          int64(value),
		Translation: fmt.Sprintf("%d", value),
		Labels:      NumberLabels,
		Solution:    []string{word},
		Stats:       stats,
	}, nil
}
