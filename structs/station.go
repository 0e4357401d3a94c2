package structs

import (
	"strings"
	"unicode"

	"golang.org/x/exp/slices"
)

// LINE_DELIMITER separates the station title from its line code.
const LINE_DELIMITER = "~"

//*******************************************
// station
//*******************************************

// Station is the parsed form of a station name like "Esplanade~BGP". The full
// name stays the identity key, Lines is the set of line ids encoded in the
// suffix.
type Station struct {
	Name  string  `json:"name" yaml:"name"`
	Title string  `json:"title" yaml:"title"`
	Lines LineSet `json:"lines" yaml:"lines"`
}

func ParseStation(name string) Station {
	idx := strings.LastIndex(name, LINE_DELIMITER)
	if idx < 0 {
		return Station{Name: name, Title: name, Lines: LineSet{}}
	}
	return Station{
		Name:  name,
		Title: name[:idx],
		Lines: NewLineSet(name[idx+len(LINE_DELIMITER):]),
	}
}

// MakeStationName builds the identity key of a station served by the given lines.
func MakeStationName(title string, lines LineSet) string {
	if len(lines) == 0 {
		return title
	}
	return title + LINE_DELIMITER + lines.String()
}

// IsInterchange is true for hubs served by two or more lines.
func (self Station) IsInterchange() bool {
	return len(self.Lines) >= 2
}

func (self Station) Code() string {
	return StationCode(self.Name)
}

//*******************************************
// line set
//*******************************************

// LineSet is a sorted set of single character line ids.
type LineSet []rune

func NewLineSet(code string) LineSet {
	lines := make(LineSet, 0, len(code))
	for _, c := range code {
		if unicode.IsSpace(c) || slices.Contains(lines, c) {
			continue
		}
		lines = append(lines, c)
	}
	slices.Sort(lines)
	return lines
}

func (self LineSet) Contains(line rune) bool {
	_, found := slices.BinarySearch(self, line)
	return found
}

func (self LineSet) Equals(other LineSet) bool {
	return slices.Equal(self, other)
}

func (self LineSet) Union(other LineSet) LineSet {
	return NewLineSet(string(self) + string(other))
}

func (self LineSet) String() string {
	return string(self)
}

func (self LineSet) MarshalText() ([]byte, error) {
	return []byte(string(self)), nil
}

func (self *LineSet) UnmarshalText(text []byte) error {
	*self = NewLineSet(string(text))
	return nil
}

//*******************************************
// station codes
//*******************************************

// StationCode derives the short code shown next to a station in listings:
// every word contributes its leading digits and the first following
// character. Codes shorter than two characters get the second character of
// the last word appended.
func StationCode(name string) string {
	var code strings.Builder
	words := strings.Fields(name)
	for _, word := range words {
		runes := []rune(word)
		j := 0
		for j < len(runes) && unicode.IsDigit(runes[j]) {
			code.WriteRune(runes[j])
			j += 1
		}
		if j < len(runes) && runes[j] < 123 {
			code.WriteRune(runes[j])
		}
	}
	result := code.String()
	if len(words) > 0 {
		last := []rune(words[len(words)-1])
		if len([]rune(result)) < 2 && len(last) > 1 {
			result += string(unicode.ToUpper(last[1]))
		}
	}
	return strings.ToUpper(result)
}
