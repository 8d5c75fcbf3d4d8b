package election

import (
	"fmt"
	"strings"
	"unicode"
)

// Division is a House of Representatives electoral division.
// The zero value is not a valid division.
type Division int

// Divisions are declared grouped by state, in the order the AEC lists them.
// State relies on this ordering.
const (
	_ Division = iota

	// ACT
	Bean
	Canberra
	Fenner

	// NSW
	Banks
	Barton
	Bennelong
	Berowra
	Blaxland
	Bradfield
	Calare
	Chifley
	Cook
	Cowper
	Cunningham
	Dobell
	EdenMonaro
	Farrer
	Fowler
	Gilmore
	Grayndler
	Greenway
	Hughes
	Hume
	Hunter
	KingsfordSmith
	Lindsay
	Lyne
	Macarthur
	Mackellar
	Macquarie
	McMahon
	Mitchell
	NewEngland
	Newcastle
	NorthSydney
	Page
	Parkes
	Parramatta
	Paterson
	Reid
	Richmond
	Riverina
	Robertson
	Shortland
	Sydney
	Warringah
	Watson
	Wentworth
	Werriwa
	Whitlam

	// NT
	Lingiari
	Solomon

	// QLD
	Blair
	Bonner
	Bowman
	Brisbane
	Capricornia
	Dawson
	Dickson
	Fadden
	Fairfax
	Fisher
	Flynn
	Forde
	Griffith
	Groom
	Herbert
	Hinkler
	Kennedy
	Leichhardt
	Lilley
	Longman
	Maranoa
	McPherson
	Moncrieff
	Moreton
	Oxley
	Petrie
	Rankin
	Ryan
	WideBay
	Wright

	// SA
	Adelaide
	Barker
	Boothby
	Grey
	Hindmarsh
	Kingston
	Makin
	Mayo
	Spence
	Sturt

	// TAS
	Bass
	Braddon
	Clark
	Franklin
	Lyons

	// VIC
	Aston
	Ballarat
	Bendigo
	Bruce
	Calwell
	Casey
	Chisholm
	Cooper
	Corangamite
	Corio
	Deakin
	Dunkley
	Flinders
	Fraser
	Gellibrand
	Gippsland
	Goldstein
	Gorton
	Hawke
	Higgins
	Holt
	Hotham
	Indi
	Isaacs
	Jagajaga
	Kooyong
	LaTrobe
	Lalor
	Macnamara
	Mallee
	Maribyrnong
	McEwen
	Melbourne
	Menzies
	Monash
	Nicholls
	Scullin
	Wannon
	Wills

	// WA
	Brand
	Burt
	Canning
	Cowan
	Curtin
	Durack
	Forrest
	Fremantle
	Hasluck
	Moore
	OConnor
	Pearce
	Perth
	Swan
	Tangney

	divisionEnd
)

var divisionNames = [...]string{
	Bean: "Bean", Canberra: "Canberra", Fenner: "Fenner",

	Banks: "Banks", Barton: "Barton", Bennelong: "Bennelong", Berowra: "Berowra",
	Blaxland: "Blaxland", Bradfield: "Bradfield", Calare: "Calare", Chifley: "Chifley",
	Cook: "Cook", Cowper: "Cowper", Cunningham: "Cunningham", Dobell: "Dobell",
	EdenMonaro: "EdenMonaro", Farrer: "Farrer", Fowler: "Fowler", Gilmore: "Gilmore",
	Grayndler: "Grayndler", Greenway: "Greenway", Hughes: "Hughes", Hume: "Hume",
	Hunter: "Hunter", KingsfordSmith: "KingsfordSmith", Lindsay: "Lindsay", Lyne: "Lyne",
	Macarthur: "Macarthur", Mackellar: "Mackellar", Macquarie: "Macquarie", McMahon: "McMahon",
	Mitchell: "Mitchell", NewEngland: "NewEngland", Newcastle: "Newcastle",
	NorthSydney: "NorthSydney", Page: "Page", Parkes: "Parkes", Parramatta: "Parramatta",
	Paterson: "Paterson", Reid: "Reid", Richmond: "Richmond", Riverina: "Riverina",
	Robertson: "Robertson", Shortland: "Shortland", Sydney: "Sydney", Warringah: "Warringah",
	Watson: "Watson", Wentworth: "Wentworth", Werriwa: "Werriwa", Whitlam: "Whitlam",

	Lingiari: "Lingiari", Solomon: "Solomon",

	Blair: "Blair", Bonner: "Bonner", Bowman: "Bowman", Brisbane: "Brisbane",
	Capricornia: "Capricornia", Dawson: "Dawson", Dickson: "Dickson", Fadden: "Fadden",
	Fairfax: "Fairfax", Fisher: "Fisher", Flynn: "Flynn", Forde: "Forde",
	Griffith: "Griffith", Groom: "Groom", Herbert: "Herbert", Hinkler: "Hinkler",
	Kennedy: "Kennedy", Leichhardt: "Leichhardt", Lilley: "Lilley", Longman: "Longman",
	Maranoa: "Maranoa", McPherson: "McPherson", Moncrieff: "Moncrieff", Moreton: "Moreton",
	Oxley: "Oxley", Petrie: "Petrie", Rankin: "Rankin", Ryan: "Ryan",
	WideBay: "WideBay", Wright: "Wright",

	Adelaide: "Adelaide", Barker: "Barker", Boothby: "Boothby", Grey: "Grey",
	Hindmarsh: "Hindmarsh", Kingston: "Kingston", Makin: "Makin", Mayo: "Mayo",
	Spence: "Spence", Sturt: "Sturt",

	Bass: "Bass", Braddon: "Braddon", Clark: "Clark", Franklin: "Franklin", Lyons: "Lyons",

	Aston: "Aston", Ballarat: "Ballarat", Bendigo: "Bendigo", Bruce: "Bruce",
	Calwell: "Calwell", Casey: "Casey", Chisholm: "Chisholm", Cooper: "Cooper",
	Corangamite: "Corangamite", Corio: "Corio", Deakin: "Deakin", Dunkley: "Dunkley",
	Flinders: "Flinders", Fraser: "Fraser", Gellibrand: "Gellibrand", Gippsland: "Gippsland",
	Goldstein: "Goldstein", Gorton: "Gorton", Hawke: "Hawke", Higgins: "Higgins",
	Holt: "Holt", Hotham: "Hotham", Indi: "Indi", Isaacs: "Isaacs",
	Jagajaga: "Jagajaga", Kooyong: "Kooyong", LaTrobe: "LaTrobe", Lalor: "Lalor",
	Macnamara: "Macnamara", Mallee: "Mallee", Maribyrnong: "Maribyrnong", McEwen: "McEwen",
	Melbourne: "Melbourne", Menzies: "Menzies", Monash: "Monash", Nicholls: "Nicholls",
	Scullin: "Scullin", Wannon: "Wannon", Wills: "Wills",

	Brand: "Brand", Burt: "Burt", Canning: "Canning", Cowan: "Cowan",
	Curtin: "Curtin", Durack: "Durack", Forrest: "Forrest", Fremantle: "Fremantle",
	Hasluck: "Hasluck", Moore: "Moore", OConnor: "OConnor", Pearce: "Pearce",
	Perth: "Perth", Swan: "Swan", Tangney: "Tangney",
}

var divisionByName = func() map[string]Division {
	m := make(map[string]Division, len(divisionNames))
	for d := Division(1); d < divisionEnd; d++ {
		m[divisionNames[d]] = d
	}
	return m
}()

// DivisionDecodeError reports a division name that matches no known division.
type DivisionDecodeError struct {
	Value string
}

func (e *DivisionDecodeError) Error() string {
	return fmt.Sprintf("invalid enum for division: %q", e.Value)
}

// ParseDivision decodes a division name as published in result files.
// Every non-letter is removed before an exact, case-sensitive match, so
// "Eden-Monaro" and "O'Connor" resolve. There is no fallback: an unknown
// name is a *DivisionDecodeError.
func ParseDivision(s string) (Division, error) {
	key := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, s)

	if d, ok := divisionByName[key]; ok {
		return d, nil
	}
	return 0, &DivisionDecodeError{Value: s}
}

// Divisions returns every known division in declaration order.
func Divisions() []Division {
	out := make([]Division, 0, divisionEnd-1)
	for d := Division(1); d < divisionEnd; d++ {
		out = append(out, d)
	}
	return out
}

// Valid reports whether d is a known division.
func (d Division) Valid() bool {
	return d > 0 && d < divisionEnd
}

func (d Division) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Division(%d)", int(d))
	}
	return divisionNames[d]
}

// State returns the state or territory the division belongs to.
func (d Division) State() State {
	switch {
	case !d.Valid():
		return StateUnknown
	case d >= Brand:
		return WA
	case d >= Aston:
		return VIC
	case d >= Bass:
		return TAS
	case d >= Adelaide:
		return SA
	case d >= Blair:
		return QLD
	case d >= Lingiari:
		return NT
	case d >= Banks:
		return NSW
	default:
		return ACT
	}
}

// MarshalText encodes the division by name.
func (d Division) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("marshal division: invalid value %d", int(d))
	}
	return []byte(divisionNames[d]), nil
}

// UnmarshalText decodes a division name with the same rules as ParseDivision.
func (d *Division) UnmarshalText(text []byte) error {
	v, err := ParseDivision(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// State is an Australian state or territory.
type State int

const (
	StateUnknown State = iota
	ACT
	NSW
	NT
	QLD
	SA
	TAS
	VIC
	WA
)

var stateNames = [...]string{
	StateUnknown: "", ACT: "ACT", NSW: "NSW", NT: "NT", QLD: "QLD",
	SA: "SA", TAS: "TAS", VIC: "VIC", WA: "WA",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return ""
	}
	return stateNames[s]
}
