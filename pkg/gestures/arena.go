package gestures

// ArenaMember is a recognizer competing for a pointer.
type ArenaMember interface {
	// AcceptGesture tells the member it won the arena for the pointer.
	AcceptGesture(pointer int64)
	// RejectGesture tells the member it lost the arena for the pointer.
	RejectGesture(pointer int64)
}

// GestureArena disambiguates between recognizers tracking the same
// pointer. The first member to claim a pointer wins; everyone else is
// rejected. If no member claims the pointer by the time it goes up,
// Sweep hands the win to the first remaining member.
//
// The arena is single-threaded like the rest of the event model.
type GestureArena struct {
	members map[int64][]ArenaMember
	winners map[int64]ArenaMember
}

// DefaultArena is the arena shared by widget-created recognizers.
var DefaultArena = NewGestureArena()

// NewGestureArena creates an empty arena.
func NewGestureArena() *GestureArena {
	return &GestureArena{
		members: make(map[int64][]ArenaMember),
		winners: make(map[int64]ArenaMember),
	}
}

// Add enters member into the arena for pointer.
func (a *GestureArena) Add(pointer int64, member ArenaMember) {
	a.members[pointer] = append(a.members[pointer], member)
}

// Claim resolves the arena in favor of member. All other members are
// rejected. Claiming an already resolved pointer has no effect.
func (a *GestureArena) Claim(pointer int64, member ArenaMember) {
	if _, done := a.winners[pointer]; done {
		return
	}
	a.winners[pointer] = member
	for _, m := range a.members[pointer] {
		if m == member {
			continue
		}
		m.RejectGesture(pointer)
	}
	member.AcceptGesture(pointer)
}

// Withdraw removes member from the arena without resolving it.
func (a *GestureArena) Withdraw(pointer int64, member ArenaMember) {
	entries := a.members[pointer]
	for i, m := range entries {
		if m == member {
			a.members[pointer] = append(entries[:i], entries[i+1:]...)
			break
		}
	}
	member.RejectGesture(pointer)
}

// Winner returns the member that claimed pointer, or nil.
func (a *GestureArena) Winner(pointer int64) ArenaMember {
	return a.winners[pointer]
}

// Sweep closes the arena for pointer. If no member claimed it, the
// first remaining member wins by default.
func (a *GestureArena) Sweep(pointer int64) {
	if _, done := a.winners[pointer]; !done {
		if entries := a.members[pointer]; len(entries) > 0 {
			a.Claim(pointer, entries[0])
		}
	}
	delete(a.members, pointer)
	delete(a.winners, pointer)
}
