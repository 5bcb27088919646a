package token

// Direction selects which link FindNearestToken follows.
type Direction int

const (
	// Left walks Previous links, toward the start of the statement.
	Left Direction = iota
	// Right walks Next links, toward the end of the statement.
	Right
)

// Attribute selects which field of a token FindNearestToken compares.
type Attribute int

const (
	// AttributeValue compares the raw token value.
	AttributeValue Attribute = iota
	// AttributeNormalized compares the normalized (uppercased, unspaced) value.
	AttributeNormalized
	// AttributeLastKeyword compares the normalized last keyword.
	AttributeLastKeyword
)

func (a Attribute) of(t *Token) string {
	switch a {
	case AttributeNormalized:
		return t.Normalized()
	case AttributeLastKeyword:
		return t.LastKeywordNormalized()
	default:
		return t.Value
	}
}

// GetNthPrevious walks level hops backward through Previous links and
// returns the token it lands on, or Empty if the chain runs out first.
// Calling it with level < 1 is a programming error and panics.
func (t *Token) GetNthPrevious(level int) *Token {
	if level < 1 {
		panic("token: GetNthPrevious called with level < 1")
	}
	cur := t
	for i := 0; i < level; i++ {
		if cur.Previous == nil {
			return Empty
		}
		cur = cur.Previous
	}
	return cur
}

// FindNearestToken walks one link at a time in the given direction and
// returns the first neighbor whose attribute equals one of values, or Empty
// if the chain ends without a match. The sentinel's nil links guarantee
// termination, and its empty value and false flags let callers treat a
// miss like any other token instead of a special "no result" case.
func (t *Token) FindNearestToken(dir Direction, attr Attribute, values ...string) *Token {
	cur := t
	for {
		var neighbor *Token
		if dir == Left {
			neighbor = cur.Previous
		} else {
			neighbor = cur.Next
		}
		if neighbor == nil {
			return Empty
		}
		got := attr.of(neighbor)
		for _, want := range values {
			if got == want {
				return neighbor
			}
		}
		cur = neighbor
	}
}

// FindNearestMatching is the predicate form of FindNearestToken, used when
// the search criterion is a flag rather than a string attribute.
func (t *Token) FindNearestMatching(dir Direction, match func(*Token) bool) *Token {
	cur := t
	for {
		var neighbor *Token
		if dir == Left {
			neighbor = cur.Previous
		} else {
			neighbor = cur.Next
		}
		if neighbor == nil {
			return Empty
		}
		if match(neighbor) {
			return neighbor
		}
		cur = neighbor
	}
}
