package word2vec

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"word2vec-db/config"
)

/*
PersistenceManager handles saving and loading fitted models
*/
type PersistenceManager struct {
	basePath string
	mu       sync.RWMutex
}

// modelState is the on-disk representation of a fitted model. The output
// layer is discarded after training and is not persisted.
type modelState struct {
	Vocabulary  []*VocabEntry `json:"vocabulary"`
	Vectors     [][]float64   `json:"vectors"`
	VectorsNorm [][]float64   `json:"vectors_norm"`
}

/*
NewPersistenceManager creates a new persistence manager
*/
func NewPersistenceManager(basePath string) *PersistenceManager {
	return &PersistenceManager{
		basePath: basePath,
	}
}

/*
SaveModel saves a fitted model to disk.

Fails with ErrNotFitted for untrained models: there is nothing durable to
save before training completes.
*/
func (p *PersistenceManager) SaveModel(model *Model) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	model.mu.RLock()
	defer model.mu.RUnlock()

	if !model.W2V.Fitted() {
		return ErrNotFitted
	}

	// Create model directory if it doesn't exist
	modelPath := filepath.Join(p.basePath, model.Name)
	if err := os.MkdirAll(modelPath, 0755); err != nil {
		return err
	}

	// Save model configuration
	configPath := filepath.Join(modelPath, "config.json")
	configFile, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer configFile.Close()

	if err := json.NewEncoder(configFile).Encode(model.Config); err != nil {
		return err
	}

	// Save vocabulary and embedding matrices
	w2v := model.W2V
	state := modelState{
		Vocabulary:  make([]*VocabEntry, w2v.VocabCount()),
		Vectors:     w2v.vectors,
		VectorsNorm: w2v.vectorsNorm,
	}
	for _, word := range w2v.vocab.Words {
		entry := w2v.vocab.Entries[word]
		state.Vocabulary[entry.Index] = entry
	}

	statePath := filepath.Join(modelPath, "model.json")
	stateFile, err := os.Create(statePath)
	if err != nil {
		return err
	}
	defer stateFile.Close()

	return json.NewEncoder(stateFile).Encode(state)
}

/*
LoadModel loads a fitted model from disk
*/
func (p *PersistenceManager) LoadModel(name string) (*Model, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	modelPath := filepath.Join(p.basePath, name)

	// Load model configuration
	configPath := filepath.Join(modelPath, "config.json")
	configFile, err := os.Open(configPath)
	if err != nil {
		return nil, err
	}
	defer configFile.Close()

	var modelConfig config.ModelConfig
	if err := json.NewDecoder(configFile).Decode(&modelConfig); err != nil {
		return nil, err
	}

	// Load vocabulary and embedding matrices
	statePath := filepath.Join(modelPath, "model.json")
	stateFile, err := os.Open(statePath)
	if err != nil {
		return nil, err
	}
	defer stateFile.Close()

	var state modelState
	if err := json.NewDecoder(stateFile).Decode(&state); err != nil {
		return nil, err
	}

	w2v, err := NewWord2Vec(modelConfig.Word2Vec)
	if err != nil {
		return nil, err
	}

	vocab := &Vocabulary{
		Entries: make(map[string]*VocabEntry, len(state.Vocabulary)),
		Words:   make([]string, len(state.Vocabulary)),
	}
	for _, entry := range state.Vocabulary {
		vocab.Entries[entry.Word] = entry
		vocab.Words[entry.Index] = entry.Word
		vocab.TotalCount += entry.Count
	}

	w2v.vocab = vocab
	w2v.vectors = state.Vectors
	w2v.vectorsNorm = state.VectorsNorm
	w2v.lockFactor = make([]float64, len(state.Vocabulary))
	for i := range w2v.lockFactor {
		w2v.lockFactor[i] = 1
	}
	w2v.fitted = true

	return &Model{
		Name:   name,
		Config: modelConfig,
		W2V:    w2v,
	}, nil
}

/*
DeleteModel removes a model from disk
*/
func (p *PersistenceManager) DeleteModel(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	modelPath := filepath.Join(p.basePath, name)
	return os.RemoveAll(modelPath)
}

/*
ListModels returns a list of all saved models
*/
func (p *PersistenceManager) ListModels() ([]string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	entries, err := os.ReadDir(p.basePath)
	if err != nil {
		return nil, err
	}

	models := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			models = append(models, entry.Name())
		}
	}

	return models, nil
}
