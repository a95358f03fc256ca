package model

// Question is a quiz question document. Callers ingest questions in
// whatever shape they like; the only field the backend itself reads is
// correctAnswer, everything else is stored and returned verbatim.
type Question map[string]interface{}

// CorrectAnswer returns the stored correct answer, if any.
func (q Question) CorrectAnswer() (interface{}, bool) {
	v, ok := q["correctAnswer"]
	return v, ok
}
