package models

const (
	// NumDice is the number of dice in the pool
	NumDice = 5

	// DiceSides is the number of faces on each die
	DiceSides = 6

	// RollsPerTurn is the number of throws allowed in a turn outside single-throw mode
	RollsPerTurn = 3

	// RerollsPerTurn is the number of throws left after the first roll of a turn
	RerollsPerTurn = RollsPerTurn - 1
)

// Dice holds the face values of the five dice. A zero face means the die
// has not been rolled yet.
type Dice [NumDice]int

// HoldMask marks which dice are kept across a re-roll
type HoldMask [NumDice]bool

// Sum returns the total number of pips showing
func (d Dice) Sum() int {
	sum := 0
	for _, v := range d {
		sum += v
	}
	return sum
}

// Counts returns the multiplicity of each face, indexed by face value.
// Index 0 is unused; faces outside 1..6 are not counted.
func (d Dice) Counts() [DiceSides + 1]int {
	var counts [DiceSides + 1]int
	for _, v := range d {
		if v >= 1 && v <= DiceSides {
			counts[v]++
		}
	}
	return counts
}

// IsRolled reports whether every die shows a face
func (d Dice) IsRolled() bool {
	for _, v := range d {
		if v < 1 || v > DiceSides {
			return false
		}
	}
	return true
}

// AllSame reports whether all five dice show the same rolled face
func (d Dice) AllSame() bool {
	if !d.IsRolled() {
		return false
	}
	for _, v := range d[1:] {
		if v != d[0] {
			return false
		}
	}
	return true
}
