package catalog

import "github.com/abhisek/stave/internal/quiz"

func init() {
	g = buildGraph(seedTopics)
}

var seedTopics = []Topic{
	// Rhythm
	{
		Kind: "rhythm.time-signature", Name: "Time Signatures", Section: quiz.SectionRhythm, Level: LevelFoundation,
		Description: "Identify simple, compound and irregular meters from a bar of rhythm.",
		Keywords:    []string{"meter", "simple time", "compound time"},
	},
	{
		Kind: "rhythm.beaming", Name: "Beaming", Section: quiz.SectionRhythm, Level: LevelCore,
		Description:   "Beam eighth notes to show the beats of the bar.",
		Keywords:      []string{"beams", "grouping"},
		Prerequisites: []quiz.Kind{"rhythm.time-signature"},
	},
	{
		Kind: "rhythm.compound-beaming", Name: "Beaming in Compound Time", Section: quiz.SectionRhythm, Level: LevelApplied,
		Description:   "Beam 9/8, 12/8, 9/4 and 5/8 without bridging or over-grouping beats.",
		Keywords:      []string{"dotted beat", "compound"},
		Prerequisites: []quiz.Kind{"rhythm.beaming"},
	},
	{
		Kind: "rhythm.rest-completion", Name: "Completing a Bar with Rests", Section: quiz.SectionRhythm, Level: LevelCore,
		Description:   "Fill the end of a bar with rests that respect the beat grouping.",
		Keywords:      []string{"rests", "beat boundary"},
		Prerequisites: []quiz.Kind{"rhythm.time-signature"},
	},
	{
		Kind: "rhythm.rest-audit", Name: "Checking Rests", Section: quiz.SectionRhythm, Level: LevelCore,
		Description:   "Spot rests that hide the middle of the bar or a compound beat.",
		Keywords:      []string{"rests", "errors"},
		Prerequisites: []quiz.Kind{"rhythm.rest-completion"},
	},

	// Pitch
	{
		Kind: "pitch.naming", Name: "Naming Notes", Section: quiz.SectionPitch, Level: LevelFoundation,
		Description: "Read note letters in the treble, bass, alto and tenor clefs.",
		Keywords:    []string{"clefs", "ledger lines"},
	},
	{
		Kind: "pitch.enharmonic", Name: "Enharmonic Equivalents", Section: quiz.SectionPitch, Level: LevelFoundation,
		Description:   "Find another spelling of the same sounding pitch.",
		Keywords:      []string{"enharmonic", "accidentals"},
		Prerequisites: []quiz.Kind{"pitch.naming"},
	},
	{
		Kind: "pitch.comparison", Name: "Same Pitch, Different Clefs", Section: quiz.SectionPitch, Level: LevelCore,
		Description:   "Compare notes written in different clefs and octaves.",
		Keywords:      []string{"octave", "clefs"},
		Prerequisites: []quiz.Kind{"pitch.naming"},
	},
	{
		Kind: "pitch.transposition", Name: "Checking a Transposition", Section: quiz.SectionPitch, Level: LevelApplied,
		Description:   "Check a melody transposed down a minor third, note by note.",
		Keywords:      []string{"transposition", "key signature"},
		Prerequisites: []quiz.Kind{"pitch.enharmonic", "scales.key-signature"},
	},

	// Scales & keys
	{
		Kind: "scales.key-signature", Name: "Key Signatures", Section: quiz.SectionScales, Level: LevelCore,
		Description:   "Choose the key signature of a major or minor key in any clef.",
		Keywords:      []string{"sharps", "flats", "circle of fifths"},
		Prerequisites: []quiz.Kind{"pitch.naming"},
	},
	{
		Kind: "scales.completion", Name: "Completing a Scale", Section: quiz.SectionScales, Level: LevelCore,
		Description:   "Fill the missing degrees of a harmonic or melodic minor scale.",
		Keywords:      []string{"minor scales", "raised seventh"},
		Prerequisites: []quiz.Kind{"scales.key-signature"},
	},
	{
		Kind: "scales.chromatic-audit", Name: "Chromatic Scale Spelling", Section: quiz.SectionScales, Level: LevelCore,
		Description:   "Check that a chromatic scale uses sharps going up and flats coming down.",
		Keywords:      []string{"chromatic"},
		Prerequisites: []quiz.Kind{"pitch.enharmonic"},
	},
	{
		Kind: "scales.clef-identification", Name: "Which Clef?", Section: quiz.SectionScales, Level: LevelApplied,
		Description:   "Work out the clef from the staff positions of a known scale.",
		Keywords:      []string{"clefs", "harmonic minor"},
		Prerequisites: []quiz.Kind{"scales.completion", "pitch.comparison"},
	},
	{
		Kind: "scales.key-analysis", Name: "Finding the Key", Section: quiz.SectionScales, Level: LevelApplied,
		Description:   "Tell a key from its relative by the raised leading note.",
		Keywords:      []string{"relative keys", "leading note"},
		Prerequisites: []quiz.Kind{"scales.completion"},
	},
	{
		Kind: "scales.technical-names", Name: "Technical Names", Section: quiz.SectionScales, Level: LevelCore,
		Description:   "Name scale degrees from tonic to leading note.",
		Keywords:      []string{"dominant", "subdominant", "submediant"},
		Prerequisites: []quiz.Kind{"scales.key-signature"},
	},

	// Intervals
	{
		Kind: "intervals.naming", Name: "Naming Intervals", Section: quiz.SectionIntervals, Level: LevelCore,
		Description:   "Name number and quality, including compound intervals.",
		Keywords:      []string{"intervals", "compound"},
		Prerequisites: []quiz.Kind{"pitch.naming"},
	},
	{
		Kind: "intervals.quality", Name: "Interval Quality", Section: quiz.SectionIntervals, Level: LevelCore,
		Description:   "Decide the quality of an interval written across two clefs.",
		Keywords:      []string{"major", "minor", "perfect", "augmented", "diminished"},
		Prerequisites: []quiz.Kind{"intervals.naming"},
	},
	{
		Kind: "intervals.writer", Name: "Writing Intervals", Section: quiz.SectionIntervals, Level: LevelApplied,
		Description:   "Spell the note a given interval above another.",
		Keywords:      []string{"spelling", "intervals"},
		Prerequisites: []quiz.Kind{"intervals.quality"},
	},

	// Chords
	{
		Kind: "chords.cadence", Name: "Cadences", Section: quiz.SectionChords, Level: LevelApplied,
		Description:   "Name perfect, plagal and imperfect cadences.",
		Keywords:      []string{"cadence", "dominant"},
		Prerequisites: []quiz.Kind{"scales.technical-names"},
	},
	{
		Kind: "chords.analysis", Name: "Chord Analysis", Section: quiz.SectionChords, Level: LevelApplied,
		Description:   "Label triads on I, II, IV and V with their inversions.",
		Keywords:      []string{"roman numerals", "inversions"},
		Prerequisites: []quiz.Kind{"chords.cadence", "intervals.naming"},
	},

	// Music in context
	{
		Kind: "context.clef-transposition", Name: "Rewriting in Another Clef", Section: quiz.SectionContext, Level: LevelApplied,
		Description:   "Rewrite a bar of the score an octave lower in the alto clef.",
		Keywords:      []string{"alto clef", "octave"},
		Prerequisites: []quiz.Kind{"pitch.comparison"},
	},
	{
		Kind: "context.assertions", Name: "True or False", Section: quiz.SectionContext, Level: LevelApplied,
		Description:   "Check statements about dynamics, range, intervals and harmony in the score.",
		Keywords:      []string{"score reading"},
		Prerequisites: []quiz.Kind{"intervals.naming", "chords.cadence"},
	},
	{
		Kind: "context.instrument", Name: "Choosing an Instrument", Section: quiz.SectionContext, Level: LevelApplied,
		Description:   "Match a passage's register to an instrument.",
		Keywords:      []string{"range", "register"},
		Prerequisites: []quiz.Kind{"terms.instrument"},
	},
	{
		Kind: "context.mediant-count", Name: "Counting the Mediant", Section: quiz.SectionContext, Level: LevelApplied,
		Description:   "Count every appearance of the mediant in the left hand.",
		Keywords:      []string{"mediant", "scale degrees"},
		Prerequisites: []quiz.Kind{"scales.technical-names"},
	},
	{
		Kind: "context.structure", Name: "Rhythm and Symbols", Section: quiz.SectionContext, Level: LevelApplied,
		Description:   "Find matching rhythms and performance markings in the score.",
		Keywords:      []string{"diminuendo", "rhythm"},
		Prerequisites: []quiz.Kind{"rhythm.time-signature", "terms.definition"},
	},
	{
		Kind: "context.interval-count", Name: "Counting Intervals", Section: quiz.SectionContext, Level: LevelApplied,
		Description:   "Count melodic intervals of one size across the score.",
		Keywords:      []string{"melodic intervals"},
		Prerequisites: []quiz.Kind{"intervals.naming"},
	},

	// Terms, signs & instruments
	{
		Kind: "terms.definition", Name: "Musical Terms", Section: quiz.SectionTerms, Level: LevelFoundation,
		Description: "Match Italian tempo, dynamic and expression terms to their meaning.",
		Keywords:    []string{"tempo", "dynamics", "italian"},
	},
	{
		Kind: "terms.ornament", Name: "Ornaments", Section: quiz.SectionTerms, Level: LevelCore,
		Description:   "Recognise trills, turns, mordents and grace notes written out.",
		Keywords:      []string{"ornaments"},
		Prerequisites: []quiz.Kind{"terms.definition"},
	},
	{
		Kind: "terms.instrument", Name: "Instruments", Section: quiz.SectionTerms, Level: LevelFoundation,
		Description: "Families, reeds, pitch and range of orchestral instruments and voices.",
		Keywords:    []string{"orchestra", "voices"},
	},
}
