package stats

// Melting temperature methods.
const (
	TmWallace     = "wallace"      // 2(A+T) + 4(G+C)
	TmGCCorrected = "gc-corrected" // 64.9 + 41((G+C) - 16.4)/length
)

// WallaceMaxLen is the longest sequence estimated with the Wallace rule.
const WallaceMaxLen = 14

// MeltingTemp estimates Tm in °C from base composition. Sequences up to
// WallaceMaxLen bp use the Wallace rule; longer ones use the GC-corrected
// formula with length = Total (N included). The estimate is NA only for an
// empty sequence, in which case method is "".
func MeltingTemp(c BaseCounts) (tm Maybe, method string) {
	if c.Total == 0 {
		return NA, ""
	}
	at := float64(c.A + c.T)
	gc := float64(c.G + c.C)
	if c.Total <= WallaceMaxLen {
		return Some(2*at + 4*gc), TmWallace
	}
	return Some(64.9 + 41*(gc-16.4)/float64(c.Total)), TmGCCorrected
}
