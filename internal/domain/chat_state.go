package domain

// ChatState is the dialogue focus of one session. Empty ids mean "none".
// It is owned by a single session loop and never persisted.
type ChatState struct {
	CurrentEntry  EntryID
	CurrentSense  SenseID
	CurrentSynset SynsetID

	PreviousEntry  EntryID
	PreviousSense  SenseID
	PreviousSynset SynsetID
}

// HasEntry reports whether an entry is in focus.
func (s *ChatState) HasEntry() bool { return s.CurrentEntry != "" }

// FocusEntry switches to a newly selected entry and clears sense and synset focus.
func (s *ChatState) FocusEntry(id EntryID) {
	s.Move(id, "", "")
}

// FocusSense sets the sense and its synset, keeping the entry.
func (s *ChatState) FocusSense(sense SenseID, synset SynsetID) {
	s.PreviousSense, s.CurrentSense = s.CurrentSense, sense
	s.PreviousSynset, s.CurrentSynset = s.CurrentSynset, synset
}

// Move shifts every current id into its previous slot and sets the new focus.
func (s *ChatState) Move(entry EntryID, sense SenseID, synset SynsetID) {
	s.PreviousEntry, s.CurrentEntry = s.CurrentEntry, entry
	s.PreviousSense, s.CurrentSense = s.CurrentSense, sense
	s.PreviousSynset, s.CurrentSynset = s.CurrentSynset, synset
}

// SwitchEntry changes the entry in focus without touching sense and synset.
func (s *ChatState) SwitchEntry(id EntryID) {
	if s.CurrentEntry != id {
		s.PreviousEntry, s.CurrentEntry = s.CurrentEntry, id
	}
}
