package intent

import (
	"strconv"
	"strings"
)

var (
	units = map[string]int{
		"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
		"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11,
		"twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
		"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	}
	tens = map[string]int{
		"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
		"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
	}
	ordinalUnits = map[string]int{
		"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
		"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10,
		"eleventh": 11, "twelfth": 12, "thirteenth": 13, "fourteenth": 14,
		"fifteenth": 15, "sixteenth": 16, "seventeenth": 17,
		"eighteenth": 18, "nineteenth": 19,
	}
	ordinalTens = map[string]int{
		"twentieth": 20, "thirtieth": 30, "fortieth": 40, "fiftieth": 50,
		"sixtieth": 60, "seventieth": 70, "eightieth": 80, "ninetieth": 90,
	}
	fillers = map[string]bool{
		"number": true, "no": true, "nr": true, "num": true, "index": true,
		"the": true, "option": true, "choice": true, "word": true, "sense": true,
		"i": true, "choose": true, "pick": true, "take": true, "want": true,
		"please": true, "a": true, "it": true, "is": true, "let": true,
		"s": true, "go": true, "with": true, "and": true,
	}
)

// ParsePositiveInteger reads a single positive integer written as digits
// ("2", "#3", "2nd"), an ordinal ("second") or number words ("twenty one").
// Surrounding filler such as "number" or "the" is ignored.
func ParsePositiveInteger(text string) (int, bool) {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '-' || r == ',' || r == '.' || r == '!' || r == '?' || r == '#' || r == '\''
	})

	found, value := false, 0
	pendingTens := 0
	flush := func(n int) bool {
		if found {
			return false
		}
		found, value = true, n
		return true
	}

	for _, w := range words {
		if w == "one" && found && pendingTens == 0 {
			// "the second one"
			continue
		}
		if n, ok := parseDigits(w); ok {
			if pendingTens > 0 || !flush(n) {
				return 0, false
			}
			continue
		}
		if t, ok := tens[w]; ok {
			if pendingTens > 0 {
				return 0, false
			}
			pendingTens = t
			continue
		}
		if t, ok := ordinalTens[w]; ok {
			if pendingTens > 0 || !flush(t) {
				return 0, false
			}
			continue
		}
		u, isUnit := units[w]
		if !isUnit {
			u, isUnit = ordinalUnits[w]
		}
		if isUnit {
			if pendingTens > 0 {
				if u > 9 {
					return 0, false
				}
				u += pendingTens
				pendingTens = 0
			}
			if !flush(u) {
				return 0, false
			}
			continue
		}
		if pendingTens > 0 {
			if !flush(pendingTens) {
				return 0, false
			}
			pendingTens = 0
		}
		if !fillers[w] {
			return 0, false
		}
	}
	if pendingTens > 0 && !flush(pendingTens) {
		return 0, false
	}
	if !found || value < 1 {
		return 0, false
	}
	return value, true
}

func parseDigits(w string) (int, bool) {
	for _, suffix := range []string{"st", "nd", "rd", "th"} {
		if len(w) > len(suffix) && strings.HasSuffix(w, suffix) {
			w = strings.TrimSuffix(w, suffix)
			break
		}
	}
	n, err := strconv.Atoi(w)
	if err != nil || w == "" || w[0] == '+' || w[0] == '-' {
		return 0, false
	}
	return n, true
}
