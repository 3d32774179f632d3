package domain

import "fmt"

// Question is immutable reference data describing one interview case.
// Loaded from the catalog at startup and never mutated.
type Question struct {
	ID          string
	Track       Track
	Type        QuestionType
	Title       string
	Description string
	Difficulty  Difficulty
	Company     string
}

// Validate checks that the question's identity fields are coherent.
func (q *Question) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("question id is required")
	}
	if !ValidTracks[string(q.Track)] {
		return fmt.Errorf("question %s: unknown track %q", q.ID, q.Track)
	}
	if !IsValidType(q.Track, q.Type) {
		return fmt.Errorf("question %s: type %q is not valid for track %q", q.ID, q.Type, q.Track)
	}
	if q.Title == "" {
		return fmt.Errorf("question %s: title is required", q.ID)
	}
	if q.Description == "" {
		return fmt.Errorf("question %s: description is required", q.ID)
	}
	return nil
}
