package slide

// ShouldSimulate reports whether this instance is authoritative for the character: it must
// own and control it, and a server may only simulate its own host object. The testing flag
// bypasses every other condition.
func ShouldSimulate(o Ownership) bool {
	if o.IsTestingPlayer {
		return true
	}
	return o.IsOwner && o.IsControlled && (!o.IsServer || o.IsHostObject)
}
