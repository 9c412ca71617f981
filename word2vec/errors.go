package word2vec

import "errors"

var (
	// ErrEmptyDataset is returned when training is attempted on a dataset with no rows
	ErrEmptyDataset = errors.New("dataset is empty")

	// ErrInvalidColumns is returned when the dataset does not have exactly one text column
	ErrInvalidColumns = errors.New("dataset must have exactly one text column")

	// ErrInvalidParameter is returned when a training parameter violates its bounds
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNotFitted is returned when a query or transform is invoked before training completes
	ErrNotFitted = errors.New("model has not been fitted")

	// ErrNoKnownWords is returned when a similarity query contains no word present in the vocabulary
	ErrNoKnownWords = errors.New("no input word found in vocabulary")

	// ErrModelExists is returned when trying to create a model that already exists
	ErrModelExists = errors.New("model already exists")

	// ErrModelNotFound is returned when trying to access a non-existent model
	ErrModelNotFound = errors.New("model not found")
)
