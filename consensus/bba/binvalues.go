package bba

// BinValues is the 2-bit "binary value" lattice over the powerset of
// {false, true}: None, {false}, {true}, or {false, true}. It is a cheap
// value type, never a pointer, so state-machine logic stays side-effect
// free when passing it around.
type BinValues uint8

const (
	// BinNone is the empty set: nothing known viable yet this epoch.
	BinNone BinValues = 0
	binFalseBit BinValues = 1 << 0
	binTrueBit  BinValues = 1 << 1
	// BinBoth is {false, true}.
	BinBoth = binFalseBit | binTrueBit
)

// FromBool returns the singleton set {b}.
func FromBool(b bool) BinValues {
	if b {
		return binTrueBit
	}
	return binFalseBit
}

// Insert adds b to the set and reports whether the set actually grew.
func (v *BinValues) Insert(b bool) bool {
	bit := FromBool(b)
	if *v&bit == bit {
		return false
	}
	*v |= bit
	return true
}

// Contains reports whether b is a member.
func (v BinValues) Contains(b bool) bool {
	return v&FromBool(b) != 0
}

// IsSubset reports whether v is a subset of other (bitwise containment).
func (v BinValues) IsSubset(other BinValues) bool {
	return v&other == v
}

// Union returns the set union of v and other.
func (v BinValues) Union(other BinValues) BinValues {
	return v | other
}

// Definite returns the sole member and true iff the set has exactly one
// element; otherwise (false, false) for the empty or the full set.
func (v BinValues) Definite() (bool, bool) {
	switch v {
	case binFalseBit:
		return false, true
	case binTrueBit:
		return true, true
	default:
		return false, false
	}
}

// Clear resets the set to None.
func (v *BinValues) Clear() {
	*v = BinNone
}

func (v BinValues) String() string {
	switch v {
	case BinNone:
		return "{}"
	case binFalseBit:
		return "{false}"
	case binTrueBit:
		return "{true}"
	default:
		return "{false,true}"
	}
}
