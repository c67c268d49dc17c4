package calendar

var tzolkinNames = [TzolkinDays]string{
	"Imix", "Ik", "Akbal", "Kan", "Chicchan", "Cimi", "Manik", "Lamat", "Muluc", "Oc",
	"Chuen", "Eb", "Ben", "Ix", "Men", "Cib", "Caban", "Etznab", "Cauac", "Ahau",
}

// Last entry is the five-day remainder month
var haabMonths = [19]string{
	"Pop", "Wo", "Sip", "Sotz", "Sek", "Xul", "Yaxkin", "Mol", "Chen", "Yax",
	"Sak", "Keh", "Mak", "Kankin", "Muan", "Pax", "Kayab", "Kumku", "Wayeb",
}

// VenusPhase is one of the four phases of the Venus synodic cycle.
type VenusPhase int

const (
	VenusMorningStar VenusPhase = iota
	VenusSuperiorConjunction
	VenusEveningStar
	VenusInferiorConjunction
)

func venusPhaseFor(day int) VenusPhase {
	switch {
	case day < 236:
		return VenusMorningStar
	case day < 326:
		return VenusSuperiorConjunction
	case day < 576:
		return VenusEveningStar
	default:
		return VenusInferiorConjunction
	}
}

// String returns the German display name of the phase.
func (v VenusPhase) String() string {
	switch v {
	case VenusMorningStar:
		return "Morgenstern"
	case VenusSuperiorConjunction:
		return "Obere Konjunktion"
	case VenusEveningStar:
		return "Abendstern"
	case VenusInferiorConjunction:
		return "Untere Konjunktion"
	default:
		return "Unbekannt"
	}
}

// TzolkinNames returns a copy of the 20 day names in cycle order.
func TzolkinNames() []string {
	out := make([]string, len(tzolkinNames))
	copy(out, tzolkinNames[:])
	return out
}

// HaabMonths returns a copy of the 19 month names in cycle order.
func HaabMonths() []string {
	out := make([]string, len(haabMonths))
	copy(out, haabMonths[:])
	return out
}
