package permissions

// Actor identifies the caller of a request. The zero value is an
// anonymous caller.
type Actor struct {
	ID        uint
	IsStaff   bool
	Anonymous bool
}

// CanRead reports whether actor may read a resource owned by ownerID.
// Staff-authored resources are readable by everyone.
func CanRead(actor Actor, ownerID uint, ownerIsStaff bool) bool {
	if ownerIsStaff || actor.IsStaff {
		return true
	}
	return !actor.Anonymous && actor.ID == ownerID
}

// CanWrite reports whether actor may modify a resource owned by ownerID.
func CanWrite(actor Actor, ownerID uint) bool {
	if actor.Anonymous {
		return false
	}
	return actor.IsStaff || actor.ID == ownerID
}

// Policy pairs the read and write predicates for one resource kind.
type Policy struct {
	Read  func(actor Actor, ownerID uint, ownerIsStaff bool) bool
	Write func(actor Actor, ownerID uint) bool
}

func anyRead(Actor, uint, bool) bool { return true }

func ownerOrStaffRead(actor Actor, ownerID uint, _ bool) bool {
	return !actor.Anonymous && (actor.IsStaff || actor.ID == ownerID)
}

func staffWrite(actor Actor, _ uint) bool {
	return !actor.Anonymous && actor.IsStaff
}

// Policies maps a resource kind to its ownership policy. Fridges have no
// staff-authored read fallback; recipes and the shared catalog resources
// are an open read surface.
var Policies = map[string]Policy{
	"ingredient": {Read: CanRead, Write: CanWrite},
	"fridge":     {Read: ownerOrStaffRead, Write: CanWrite},
	"measure":    {Read: anyRead, Write: staffWrite},
	"tag":        {Read: anyRead, Write: staffWrite},
	"conversion": {Read: anyRead, Write: staffWrite},
	"recipe":     {Read: anyRead, Write: CanWrite},
}
