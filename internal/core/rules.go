package core

// ValidateCode reports whether s is exactly six ASCII digits with a nonzero
// leading digit.
func ValidateCode(s string) bool {
	if len(s) != CodeLength || s[0] == '0' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MeetsCriteria reports whether the suit is usable without repair.
func MeetsCriteria(s Suit) bool {
	switch s.Category {
	case CategoryPower:
		return s.Durability >= 70
	case CategoryStealth:
		return s.Durability >= 50
	case CategoryDisguise:
		last := s.Durability % 10
		return last != 3 && last != 7
	default:
		return false
	}
}

// Repair raises the suit's durability by increment, capped at MaxDurability.
// Negative increments are ignored so repair never lowers durability.
func Repair(s *Suit, increment int) {
	if increment < 0 {
		increment = 0
	}
	s.Durability = min(MaxDurability, s.Durability+increment)
}

// Repaired returns a copy of s after Repair.
func (s Suit) Repaired(increment int) Suit {
	Repair(&s, increment)
	return s
}
