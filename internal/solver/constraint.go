package solver

// Level is the strongest evidence learned for one position.
type Level uint8

const (
	LevelNone Level = iota
	LevelPartial
	LevelExact
)

func (l Level) String() string {
	switch l {
	case LevelPartial:
		return "partial"
	case LevelExact:
		return "exact"
	default:
		return "none"
	}
}

// Constraints holds one Level per position.
type Constraints [WordLength]Level

// UpdateConstraints folds one round of feedback into current. Levels may only
// rise; if any position would drop (a green letter later reported gray or
// yellow) the whole round is rejected and current is returned unchanged.
func UpdateConstraints(current Constraints, fb Feedback) (Constraints, bool) {
	next := current
	for i, tok := range fb {
		var target Level
		switch tok.Symbol {
		case SymbolGreen:
			target = LevelExact
		case SymbolSkip:
			target = current[i]
		default:
			target = LevelNone
		}
		if target < current[i] {
			return current, false
		}
		next[i] = target
	}
	return next, true
}
