package hexagram

// Entry is one row of the hexagram reference table.
type Entry struct {
	Number   int    `yaml:"number"`
	Name     string `yaml:"name"`
	Judgment string `yaml:"judgment"`
}

// Table maps hexagram numbers (1..64) to their entries.
type Table interface {
	Lookup(number int) (Entry, bool)
}

// builtinTable is the abbreviated table compiled into the binary, indexed by number-1.
type builtinTable [64]Entry

// Lookup returns the entry for number, or false when number is outside 1..64.
func (t *builtinTable) Lookup(number int) (Entry, bool) {
	if number < 1 || number > len(t) {
		return Entry{}, false
	}
	return t[number-1], true
}

// Builtin returns the built-in abbreviated table.
func Builtin() Table {
	return &builtin
}

var builtin = builtinTable{
	{1, "Das Schöpferische", "Das Schöpferische wirkt erhabenes Gelingen"},
	{2, "Das Empfangende", "Das Empfangende wirkt erhabenes Gelingen"},
	{3, "Die Anfangsschwierigkeit", "Die Anfangsschwierigkeit wirkt erhabenes Gelingen"},
	{4, "Die Jugendtorheit", "Jugendtorheit hat Gelingen"},
	{5, "Das Warten", "Das Warten. Wenn du wahrhaftig bist, so hast du Licht und Gelingen"},
	{6, "Der Streit", "Der Streit: Du bist wahrhaftig und wirst gehemmt"},
	{7, "Das Heer", "Das Heer braucht Beharrlichkeit"},
	{8, "Das Zusammenhalten", "Zusammenhalten bringt Heil"},
	{9, "Des Kleinen Zähmungskraft", "Des Kleinen Zähmungskraft hat Gelingen"},
	{10, "Das Auftreten", "Auftreten. Auf den Schwanz des Tigers treten"},
	{11, "Der Friede", "Der Friede. Das Kleine geht, das Große kommt. Heil!"},
	{12, "Die Stockung", "Stockung durch schlechte Menschen"},
	{13, "Gemeinschaft mit Menschen", "Gemeinschaft mit Menschen im Freien: Gelingen"},
	{14, "Der Besitz von Großem", "Der Besitz von Großem: erhabenes Gelingen"},
	{15, "Die Bescheidenheit", "Bescheidenheit schafft Gelingen"},
	{16, "Die Begeisterung", "Die Begeisterung. Fördernd ist es"},
	{17, "Die Nachfolge", "Die Nachfolge wirkt erhabenes Gelingen"},
	{18, "Die Arbeit am Verdorbenen", "Die Arbeit am Verdorbenen hat erhabenes Gelingen"},
	{19, "Die Annäherung", "Die Annäherung hat erhabenes Gelingen"},
	{20, "Die Betrachtung", "Die Betrachtung. Die Abwaschung ist vollzogen"},
	{21, "Das Durchbeißen", "Das Durchbeißen hat Gelingen"},
	{22, "Die Anmut", "Die Anmut hat Gelingen"},
	{23, "Die Zersplitterung", "Zersplitterung. Nicht fördernd ist es"},
	{24, "Die Wiederkehr", "Die Wiederkehr. Gelingen"},
	{25, "Die Unschuld", "Die Unschuld. Erhabenes Gelingen"},
	{26, "Des Großen Zähmungskraft", "Des Großen Zähmungskraft. Beharrlichkeit fördernd"},
	{27, "Die Ernährung", "Die Ernährung. Beharrlichkeit bringt Heil"},
	{28, "Des Großen Übergewicht", "Des Großen Übergewicht. Der Firstbalken biegt sich durch"},
	{29, "Das Abgründige", "Das Abgründige, wiederholt"},
	{30, "Das Haftende", "Das Haftende. Beharrlichkeit ist fördernd"},
	{31, "Die Einwirkung", "Die Einwirkung. Gelingen"},
	{32, "Die Dauer", "Die Dauer. Gelingen. Kein Makel"},
	{33, "Der Rückzug", "Der Rückzug. Gelingen"},
	{34, "Des Großen Macht", "Des Großen Macht. Beharrlichkeit ist fördernd"},
	{35, "Der Fortschritt", "Der Fortschritt. Der mächtige Fürst"},
	{36, "Die Verfinsterung des Lichts", "Die Verfinsterung des Lichts"},
	{37, "Die Sippe", "Die Sippe. Beharrlichkeit der Frau ist fördernd"},
	{38, "Der Gegensatz", "Der Gegensatz. In kleinen Dingen Gelingen"},
	{39, "Das Hemmnis", "Das Hemmnis. Fördernd ist der Südwesten"},
	{40, "Die Befreiung", "Die Befreiung. Fördernd ist der Südwesten"},
	{41, "Die Minderung", "Die Minderung mit Wahrhaftigkeit bringt erhabenes Heil"},
	{42, "Die Mehrung", "Die Mehrung. Fördernd ist es, etwas zu unternehmen"},
	{43, "Der Durchbruch", "Der Durchbruch. Man muss die Sache am Hof des Königs wahrhaftig kundtun"},
	{44, "Das Entgegenkommen", "Das Entgegenkommen. Das Weib ist mächtig"},
	{45, "Die Sammlung", "Die Sammlung. Gelingen"},
	{46, "Das Empordringen", "Das Empordringen hat erhabenes Gelingen"},
	{47, "Die Bedrängnis", "Die Bedrängnis. Gelingen. Beharrlichkeit"},
	{48, "Der Brunnen", "Der Brunnen. Man kann die Stadt wechseln"},
	{49, "Die Umwälzung", "Die Umwälzung. An deinem eigenen Tage wirst du geglaubt"},
	{50, "Der Tiegel", "Der Tiegel. Erhabenes Heil. Gelingen"},
	{51, "Das Erregende", "Das Erregende bringt Gelingen"},
	{52, "Das Stillehalten", "Stillehalten seines Rückens"},
	{53, "Die Entwicklung", "Die Entwicklung. Das Mädchen wird verheiratet. Heil!"},
	{54, "Das heiratende Mädchen", "Das heiratende Mädchen. Unternehmungen bringen Unheil"},
	{55, "Die Fülle", "Die Fülle hat Gelingen"},
	{56, "Der Wanderer", "Der Wanderer. Gelingen im Kleinen"},
	{57, "Das Sanfte", "Das Sanfte. Gelingen im Kleinen"},
	{58, "Das Heitere", "Das Heitere. Gelingen"},
	{59, "Die Auflösung", "Die Auflösung. Gelingen"},
	{60, "Die Beschränkung", "Beschränkung. Gelingen"},
	{61, "Innere Wahrheit", "Innere Wahrheit. Schweine und Fische. Heil!"},
	{62, "Des Kleinen Übergewicht", "Des Kleinen Übergewicht. Gelingen"},
	{63, "Nach der Vollendung", "Gelingen im Kleinen. Fördernd ist Beharrlichkeit"},
	{64, "Vor der Vollendung", "Vor der Vollendung. Gelingen"},
}

// Trigram is one of the eight three-line figures, numbered 0..7.
type Trigram int

var trigramSymbols = [8]string{"☷", "☶", "☵", "☴", "☳", "☲", "☱", "☰"}

var trigramNames = [8]string{"Erde", "Berg", "Wasser", "Wind", "Donner", "Feuer", "See", "Himmel"}

// Symbol returns the Unicode trigram glyph.
func (t Trigram) Symbol() string {
	if t < 0 || int(t) >= len(trigramSymbols) {
		return "?"
	}
	return trigramSymbols[t]
}

// Name returns the German trigram name.
func (t Trigram) Name() string {
	if t < 0 || int(t) >= len(trigramNames) {
		return "?"
	}
	return trigramNames[t]
}

func (t Trigram) String() string {
	return t.Symbol() + " " + t.Name()
}
