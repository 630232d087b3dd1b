// Package diagram converts between the textual burrow drawing and burrow.State.
//
// A diagram looks like:
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// The hallway is the line framed by '#' with exactly 11 cells of '.' or
// 'A'..'D' inside. Every following line that is not pure wall is a room row;
// room cells sit in columns 3, 5, 7 and 9. Anything other than 'A'..'D' in a
// room cell reads as an empty slot. The number of room rows is the room depth.
package diagram

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/burrow/burrow"
)

// Sentinel errors returned by Parse and ParseLines.
var (
	// ErrEmptyDiagram is returned when the input holds no non-blank line.
	ErrEmptyDiagram = errors.New("diagram: empty diagram")

	// ErrBadHallway is returned when no hallway line can be recovered.
	ErrBadHallway = errors.New("diagram: hallway not found")

	// ErrNoRooms is returned when no room row follows the hallway.
	ErrNoRooms = errors.New("diagram: no room rows")

	// ErrTooDeep is returned when there are more room rows than burrow.MaxDepth.
	ErrTooDeep = errors.New("diagram: rooms too deep")

	// ErrUnfoldDepth is returned by Unfold for a state whose depth is not 2.
	ErrUnfoldDepth = errors.New("diagram: unfold needs depth 2")
)

// roomColumns are the text columns of rooms 0..3.
var roomColumns = [burrow.RoomCount]int{3, 5, 7, 9}

// Parse reads a diagram from r. Reading stops at EOF or at the first empty
// line, so a diagram can be followed by other input.
func Parse(r io.Reader) (burrow.State, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return burrow.State{}, fmt.Errorf("diagram: read: %w", err)
	}

	return ParseLines(lines)
}

// ParseLines parses a diagram given as lines. Whitespace-only lines are ignored.
//
// When no line looks like a framed hallway, the second line's columns 1..11
// are used instead, provided they hold only hallway cells.
func ParseLines(lines []string) (burrow.State, error) {
	kept := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		return burrow.State{}, ErrEmptyDiagram
	}

	hall, at, err := findHallway(kept)
	if err != nil {
		return burrow.State{}, err
	}

	var rows [][burrow.RoomCount]burrow.Kind
	for _, l := range kept[at+1:] {
		if isWall(l) {
			continue
		}
		rows = append(rows, roomRow(l))
	}
	switch {
	case len(rows) == 0:
		return burrow.State{}, ErrNoRooms
	case len(rows) > burrow.MaxDepth:
		return burrow.State{}, fmt.Errorf("%w: %d rows, max %d", ErrTooDeep, len(rows), burrow.MaxDepth)
	}

	var rooms [burrow.RoomCount][]burrow.Kind
	for r := 0; r < burrow.RoomCount; r++ {
		rooms[r] = make([]burrow.Kind, len(rows))
		for d, row := range rows {
			rooms[r][d] = row[r]
		}
	}

	return burrow.NewState(hall, rooms)
}

// findHallway returns the hallway and the index of the line it came from.
func findHallway(lines []string) ([burrow.HallwayLen]burrow.Kind, int, error) {
	for i, l := range lines {
		t := strings.TrimSpace(l)
		if len(t) != burrow.HallwayLen+2 || t[0] != '#' || t[len(t)-1] != '#' {
			continue
		}
		if hall, ok := hallwayCells(t[1 : len(t)-1]); ok {
			return hall, i, nil
		}
	}

	// Unframed fallback: the line right under the top wall.
	if len(lines) > 1 && len(lines[1]) >= burrow.HallwayLen+1 {
		if hall, ok := hallwayCells(lines[1][1 : burrow.HallwayLen+1]); ok {
			return hall, 1, nil
		}
	}

	var none [burrow.HallwayLen]burrow.Kind
	return none, 0, ErrBadHallway
}

// hallwayCells decodes 11 hallway cells. A string made only of '#' is
// rejected so the top wall is never mistaken for the hallway.
func hallwayCells(s string) ([burrow.HallwayLen]burrow.Kind, bool) {
	var hall [burrow.HallwayLen]burrow.Kind
	if len(s) != burrow.HallwayLen {
		return hall, false
	}
	for i := 0; i < len(s); i++ {
		k, ok := burrow.KindFromByte(s[i])
		if !ok {
			return hall, false
		}
		hall[i] = k
	}

	return hall, true
}

// roomRow reads the four room cells of one row.
func roomRow(l string) [burrow.RoomCount]burrow.Kind {
	var row [burrow.RoomCount]burrow.Kind
	for r, col := range roomColumns {
		if col >= len(l) {
			continue
		}
		if k, ok := burrow.KindFromByte(l[col]); ok {
			row[r] = k
		}
	}

	return row
}

// isWall reports whether l is made only of '#' and spaces.
func isWall(l string) bool {
	return strings.Trim(l, "# ") == ""
}

// Render draws s in the canonical diagram form. Parsing the result yields s.
func Render(s burrow.State) string {
	var sb strings.Builder
	sb.WriteString("#############\n#")
	for p := 0; p < burrow.HallwayLen; p++ {
		sb.WriteByte(s.Hall(p).Byte())
	}
	sb.WriteString("#\n")
	for d := 0; d < s.Depth(); d++ {
		if d == 0 {
			sb.WriteString("###")
		} else {
			sb.WriteString("  #")
		}
		for r := 0; r < burrow.RoomCount; r++ {
			sb.WriteByte(s.At(r, d).Byte())
			sb.WriteByte('#')
		}
		if d == 0 {
			sb.WriteString("##")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  #########\n")

	return sb.String()
}

// unfoldRows are the rows inserted between the first and the last room row.
var unfoldRows = [2][burrow.RoomCount]burrow.Kind{
	{burrow.Desert, burrow.Copper, burrow.Bronze, burrow.Amber},
	{burrow.Desert, burrow.Bronze, burrow.Amber, burrow.Copper},
}

// Unfold turns a depth-2 burrow into the depth-4 one by inserting the rows
//
//	#D#C#B#A#
//	#D#B#A#C#
//
// between its two room rows. The hallway is kept as is.
func Unfold(s burrow.State) (burrow.State, error) {
	if s.Depth() != 2 {
		return burrow.State{}, fmt.Errorf("%w: got depth %d", ErrUnfoldDepth, s.Depth())
	}
	var rooms [burrow.RoomCount][]burrow.Kind
	for r := 0; r < burrow.RoomCount; r++ {
		rooms[r] = []burrow.Kind{s.At(r, 0), unfoldRows[0][r], unfoldRows[1][r], s.At(r, 1)}
	}

	return burrow.NewState(s.Hallway(), rooms)
}
