// Package viseme defines the phoneme-to-blendshape lookup table used to pose
// the avatar's mouth. Weights follow the Disney/Oculus/ARKit blendshape
// naming convention.
package viseme

// Silence is the phoneme symbol for silence and the fallback viseme for any
// unknown symbol.
const Silence = "sil"

// Weights is one complete set of mouth blendshape values, each in [0, 1].
type Weights struct {
	JawOpen     float64 `json:"jawOpen"`
	MouthClose  float64 `json:"mouthClose"`
	MouthPucker float64 `json:"mouthPucker"`
	MouthSmile  float64 `json:"mouthSmile"`
	MouthFunnel float64 `json:"mouthFunnel"`
}

// Table maps phoneme symbols to blendshape weights. It is built once at
// startup, shared by reference, and safe for unsynchronized concurrent reads.
type Table struct {
	entries map[string]Weights
}

// NewTable builds the standard viseme table.
func NewTable() *Table {
	return &Table{entries: map[string]Weights{
		Silence: {MouthClose: 1.0},

		// Vowels
		"AA": {JawOpen: 0.7},                                     // father
		"AE": {JawOpen: 0.5, MouthSmile: 0.4},                    // cat
		"AH": {JawOpen: 0.4},                                     // hut
		"AO": {JawOpen: 0.6, MouthPucker: 0.3, MouthFunnel: 0.2}, // caught
		"EH": {JawOpen: 0.4, MouthSmile: 0.3},                    // bed
		"ER": {JawOpen: 0.3, MouthPucker: 0.2},                   // bird
		"IH": {JawOpen: 0.3, MouthSmile: 0.5},                    // bit
		"IY": {JawOpen: 0.2, MouthSmile: 0.7},                    // beat
		"UH": {JawOpen: 0.3, MouthPucker: 0.3},                   // book
		"UW": {JawOpen: 0.3, MouthPucker: 0.7, MouthFunnel: 0.4}, // boot

		// Consonants
		"B":  {MouthClose: 1.0},                                  // big
		"P":  {MouthClose: 1.0},                                  // pin
		"M":  {MouthClose: 1.0},                                  // mat
		"F":  {JawOpen: 0.2},                                     // fun
		"V":  {JawOpen: 0.2},                                     // van
		"TH": {JawOpen: 0.2},                                     // thin
		"S":  {JawOpen: 0.1, MouthSmile: 0.3},                    // sit
		"Z":  {JawOpen: 0.1, MouthSmile: 0.3},                    // zip
		"SH": {JawOpen: 0.2, MouthPucker: 0.4, MouthFunnel: 0.3}, // ship
		"CH": {JawOpen: 0.2, MouthPucker: 0.4, MouthFunnel: 0.3}, // chip
		"T":  {JawOpen: 0.2},                                     // tip
		"D":  {JawOpen: 0.2},                                     // dip
		"N":  {JawOpen: 0.2},                                     // nip
		"L":  {JawOpen: 0.3, MouthSmile: 0.2},                    // lip
		"R":  {JawOpen: 0.3, MouthPucker: 0.3},                   // rip
		"K":  {JawOpen: 0.4},                                     // kit
		"G":  {JawOpen: 0.4},                                     // get
		"W":  {JawOpen: 0.3, MouthPucker: 0.6, MouthFunnel: 0.4}, // wet
		"Y":  {JawOpen: 0.3, MouthSmile: 0.5},                    // yet
	}}
}

// Lookup returns the weights for symbol, falling back to the silence entry
// for any symbol not in the table. It never fails.
func (t *Table) Lookup(symbol string) Weights {
	if w, ok := t.entries[symbol]; ok {
		return w
	}
	return t.entries[Silence]
}

// Has reports whether symbol is a defined phoneme.
func (t *Table) Has(symbol string) bool {
	_, ok := t.entries[symbol]
	return ok
}

// Entries returns a copy of the full phoneme-to-weights mapping for
// introspection.
func (t *Table) Entries() map[string]Weights {
	out := make(map[string]Weights, len(t.entries))
	for k, v := range t.entries {
		out[k] = v
	}
	return out
}

// Len returns the number of defined phoneme symbols.
func (t *Table) Len() int { return len(t.entries) }
