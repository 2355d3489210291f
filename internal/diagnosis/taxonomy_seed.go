package diagnosis

import "github.com/abhisek/stave/internal/quiz"

// seedMisconceptions maps every distractor tag to the misconception it
// stands for.
var seedMisconceptions = []Misconception{
	// Rhythm & beaming
	{
		ID:          "meter.family",
		Section:     quiz.SectionRhythm,
		Label:       "Simple or compound",
		Description: "Reads a compound meter as simple or the other way round; e.g., calls 6/8 simple duple",
		Examples:    []string{"6/8 called simple duple", "3/4 called compound"},
	},
	{
		ID:          "meter.count",
		Section:     quiz.SectionRhythm,
		Label:       "Beats per bar",
		Description: "Gets the family right but miscounts the beats; e.g., calls 9/8 compound duple",
		Examples:    []string{"9/8 called compound duple", "3/4 called simple duple"},
	},
	{
		ID:          "beaming.syncopation",
		Section:     quiz.SectionRhythm,
		Label:       "Beam hides the beat",
		Description: "Beams across the middle of the bar so the main beats are no longer visible",
		Examples:    []string{"4/4 quavers beamed 1-3-3-1"},
	},
	{
		ID:          "beaming.compound",
		Section:     quiz.SectionRhythm,
		Label:       "Compound grouping in simple time",
		Description: "Groups quavers in threes in a simple meter",
		Examples:    []string{"3/4 beamed as two groups of three"},
	},
	{
		ID:          "beaming.irregular",
		Section:     quiz.SectionRhythm,
		Label:       "Irregular grouping",
		Description: "Uses uneven groups that follow no beat of the meter",
		Examples:    []string{"6/8 beamed 2+4"},
	},
	{
		ID:          "beaming.bridge",
		Section:     quiz.SectionRhythm,
		Label:       "Beam crosses a beat",
		Description: "Extends a beam by one note into the next beat",
		Examples:    []string{"first beam taking a note of beat two"},
	},
	{
		ID:          "beaming.over-grouping",
		Section:     quiz.SectionRhythm,
		Label:       "Everything under one beam",
		Description: "Beams too many notes together, ignoring beat boundaries",
		Examples:    []string{"a whole bar of quavers under one beam"},
	},
	{
		ID:          "rest.merged",
		Section:     quiz.SectionRhythm,
		Label:       "One rest for the whole gap",
		Description: "Fills a gap with a single rest even where it hides a beat",
		Examples:    []string{"a minim rest starting on beat two of 4/4"},
	},
	{
		ID:          "rest.all-eighths",
		Section:     quiz.SectionRhythm,
		Label:       "Quaver rests only",
		Description: "Fills every gap with quaver rests instead of combining them by beat",
	},
	{
		ID:          "rest.ignores-grouping",
		Section:     quiz.SectionRhythm,
		Label:       "Rests ignore the beat",
		Description: "Chooses rest values that straddle a beat boundary",
	},
	{
		ID:          "rest.dotted-in-simple",
		Section:     quiz.SectionRhythm,
		Label:       "Dotted rest in simple time",
		Description: "Uses a dotted rest where simple time wants two rests",
	},
	{
		ID:          "rest.reordered",
		Section:     quiz.SectionRhythm,
		Label:       "Rests in the wrong order",
		Description: "Has the right rests but not completing the beat first",
	},
	{
		ID:          "rest.leading-eighth",
		Section:     quiz.SectionRhythm,
		Label:       "Stray quaver rest",
		Description: "Starts the gap with a quaver rest that is not needed",
	},
	{
		ID:          "rest.crosses-beat",
		Section:     quiz.SectionRhythm,
		Label:       "Missed a rest across the beat",
		Description: "Accepts a rest that crosses the middle of a 4/4 bar",
		Examples:    []string{"a minim rest on beat two passed as correct"},
	},
	{
		ID:          "rest.false-alarm",
		Section:     quiz.SectionRhythm,
		Label:       "Correct rests flagged",
		Description: "Marks conventionally written rests as wrong",
	},

	// Pitch
	{
		ID:          "pitch.read-as-treble",
		Section:     quiz.SectionPitch,
		Label:       "Read in the treble clef",
		Description: "Names a note in another clef as though it were on a treble staff",
		Examples:    []string{"bass clef G2 read as E"},
	},
	{
		ID:          "pitch.wrong-letter",
		Section:     quiz.SectionPitch,
		Label:       "Wrong line or space",
		Description: "Counts lines and spaces wrongly and lands on a neighbouring letter",
	},
	{
		ID:          "pitch.octave",
		Section:     quiz.SectionPitch,
		Label:       "Octave across clefs",
		Description: "Judges two notes in different clefs as the same pitch when only the letter matches",
		Examples:    []string{"treble C5 and bass C3 called the same pitch"},
	},
	{
		ID:          "pitch.octave-number",
		Section:     quiz.SectionPitch,
		Label:       "Octave number",
		Description: "Writes the right note name with the wrong octave number; middle C is C4",
		Examples:    []string{"D5 written for the D just above middle C"},
	},
	{
		ID:          "enharmonic.semitone-up",
		Section:     quiz.SectionPitch,
		Label:       "Enharmonic a semitone high",
		Description: "Picks a note one semitone above the given pitch as its enharmonic",
		Examples:    []string{"C# paired with D"},
	},
	{
		ID:          "enharmonic.semitone-down",
		Section:     quiz.SectionPitch,
		Label:       "Enharmonic a semitone low",
		Description: "Picks a note one semitone below the given pitch as its enharmonic",
		Examples:    []string{"Eb paired with D"},
	},
	{
		ID:          "enharmonic.same-spelling",
		Section:     quiz.SectionPitch,
		Label:       "Same note, not a respelling",
		Description: "Gives the note itself instead of a different spelling of the same pitch",
	},
	{
		ID:          "transpose.semitone",
		Section:     quiz.SectionPitch,
		Label:       "Transposed by the wrong amount",
		Description: "Misses a note that lands a semitone off the transposition",
	},
	{
		ID:          "transpose.spelling",
		Section:     quiz.SectionPitch,
		Label:       "Transposed spelling",
		Description: "Accepts the right pitch with the wrong letter name in the new key",
		Examples:    []string{"A# accepted where Bb is needed"},
	},
	{
		ID:          "transpose.key",
		Section:     quiz.SectionPitch,
		Label:       "Transposed key",
		Description: "Misses a wrong key signature after transposition",
	},

	// Keys & scales
	{
		ID:          "keysig.wrong-order",
		Section:     quiz.SectionScales,
		Label:       "Accidentals out of order",
		Description: "Accepts a key signature whose sharps or flats are not in circle-of-fifths order",
	},
	{
		ID:          "keysig.wrong-clef",
		Section:     quiz.SectionScales,
		Label:       "Key signature in the wrong octave",
		Description: "Accepts accidentals placed at the lines of another clef",
	},
	{
		ID:          "keysig.wrong-accidental",
		Section:     quiz.SectionScales,
		Label:       "Wrong accidentals",
		Description: "Mixes up the key signature with one a step away on the circle of fifths",
	},
	{
		ID:          "scale.semitone-up",
		Section:     quiz.SectionScales,
		Label:       "Scale note a semitone high",
		Description: "Raises a scale degree that should stay; e.g., raises the 3rd of a minor scale",
	},
	{
		ID:          "scale.semitone-down",
		Section:     quiz.SectionScales,
		Label:       "Scale note a semitone low",
		Description: "Forgets a raised degree; e.g., leaves the 7th of harmonic minor unraised",
		Examples:    []string{"A harmonic minor with G instead of G#"},
	},
	{
		ID:          "scale.unrelated",
		Section:     quiz.SectionScales,
		Label:       "Unrelated scale note",
		Description: "Picks a note that belongs to neither form of the scale",
	},
	{
		ID:          "scale.chromatic-spelling",
		Section:     quiz.SectionScales,
		Label:       "Chromatic spelling",
		Description: "Confuses sharps going up with flats coming down in a chromatic scale",
	},
	{
		ID:          "clef.confusion",
		Section:     quiz.SectionScales,
		Label:       "Clef confusion",
		Description: "Reads staff positions against the wrong clef",
	},
	{
		ID:          "key.relative",
		Section:     quiz.SectionScales,
		Label:       "Relative key",
		Description: "Chooses the relative major or minor and overlooks the raised leading note",
		Examples:    []string{"G minor melody with F# called Bb major"},
	},
	{
		ID:          "key.unrelated",
		Section:     quiz.SectionScales,
		Label:       "Unrelated key",
		Description: "Chooses a key whose signature does not match the melody",
	},
	{
		ID:          "scale.degree-name",
		Section:     quiz.SectionScales,
		Label:       "Technical names",
		Description: "Mixes up degree names such as submediant and subdominant",
	},

	// Intervals
	{
		ID:          "interval.quality",
		Section:     quiz.SectionIntervals,
		Label:       "Interval quality",
		Description: "Counts the number correctly but gets major, minor or perfect wrong",
		Examples:    []string{"C-Eb called a major 3rd"},
	},
	{
		ID:          "interval.number",
		Section:     quiz.SectionIntervals,
		Label:       "Interval number",
		Description: "Counts the letter names wrongly, usually by leaving out the first note",
		Examples:    []string{"C-G called a 4th"},
	},
	{
		ID:          "interval.compound",
		Section:     quiz.SectionIntervals,
		Label:       "Compound or simple",
		Description: "Names a compound interval by its simple form or the other way round",
		Examples:    []string{"C4-E5 called a major 3rd"},
	},

	// Chords & cadences
	{
		ID:          "cadence.confusion",
		Section:     quiz.SectionChords,
		Label:       "Cadence type",
		Description: "Confuses perfect, imperfect and plagal cadences",
		Examples:    []string{"IV-I called perfect", "I-V called perfect"},
	},
	{
		ID:          "chord.inversion",
		Section:     quiz.SectionChords,
		Label:       "Chord inversion",
		Description: "Names the right chord but reads the inversion from the wrong note",
		Examples:    []string{"Vb labelled Va"},
	},
	{
		ID:          "chord.degree",
		Section:     quiz.SectionChords,
		Label:       "Chord degree",
		Description: "Builds the chord on the wrong scale degree",
		Examples:    []string{"IV labelled V"},
	},

	// Music in context
	{
		ID:          "excerpt.wrong-octave",
		Section:     quiz.SectionContext,
		Label:       "Clef rewrite in the wrong octave",
		Description: "Rewrites in the new clef but shifts the octave",
	},
	{
		ID:          "excerpt.contour",
		Section:     quiz.SectionContext,
		Label:       "Melodic shape changed",
		Description: "Accepts a rewrite whose notes are reordered",
	},
	{
		ID:          "excerpt.range",
		Section:     quiz.SectionContext,
		Label:       "Instrument range",
		Description: "Chooses an instrument whose range does not suit the passage",
	},
	{
		ID:          "excerpt.count",
		Section:     quiz.SectionContext,
		Label:       "Miscounted",
		Description: "Miscounts notes or intervals across the excerpt, often by skipping one hand",
	},
	{
		ID:          "excerpt.bar",
		Section:     quiz.SectionContext,
		Label:       "Wrong bar",
		Description: "Locates a rhythm or a marking in the wrong bar",
	},
	{
		ID:          "context.dynamics",
		Section:     quiz.SectionContext,
		Label:       "Opening dynamic",
		Description: "Misreads the dynamic marking at the start of the excerpt",
	},
	{
		ID:          "context.cadence",
		Section:     quiz.SectionContext,
		Label:       "Closing harmony",
		Description: "Misidentifies the chord the excerpt ends on",
	},
	{
		ID:          "context.leap",
		Section:     quiz.SectionContext,
		Label:       "Largest leap",
		Description: "Misjudges the size of a melodic leap in a bar",
	},
	{
		ID:          "context.highest",
		Section:     quiz.SectionContext,
		Label:       "Highest note",
		Description: "Misses where the highest note of the excerpt falls",
	},
	{
		ID:          "context.quieter",
		Section:     quiz.SectionContext,
		Label:       "Hairpins",
		Description: "Confuses crescendo and diminuendo signs",
	},
	{
		ID:          "context.fourth",
		Section:     quiz.SectionContext,
		Label:       "Finding an interval",
		Description: "Misses or imagines a given interval in a bar",
	},

	// Terms, signs & instruments
	{
		ID:          "terms.same-category",
		Section:     quiz.SectionTerms,
		Label:       "Related term",
		Description: "Confuses a term with another of the same kind; e.g., two tempo markings",
		Examples:    []string{"lento read as allegro"},
	},
	{
		ID:          "terms.other-category",
		Section:     quiz.SectionTerms,
		Label:       "Unrelated term",
		Description: "Gives a definition from a different kind of marking",
	},
	{
		ID:          "ornament.confusion",
		Section:     quiz.SectionTerms,
		Label:       "Ornament",
		Description: "Confuses ornaments such as the acciaccatura and the appoggiatura",
	},
	{
		ID:          "instrument.fact",
		Section:     quiz.SectionTerms,
		Label:       "Instrument facts",
		Description: "Misremembers an instrument's family, clef or playing technique",
	},
}
