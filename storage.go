package syllabus

// Storage keeps saved drafts by name.
type Storage interface {
	// Save writes the given state under name, replacing an existing draft.
	Save(name string, s *FormState) error
	// Load reads the draft with the given name.
	// It returns a "not found" error if no such draft exists.
	Load(name string) (*FormState, error)
	// List returns the names of all drafts in alphabetical order.
	List() ([]string, error)
	// Delete removes a draft.
	Delete(name string) error
}
